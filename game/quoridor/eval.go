package quoridor

import "adversarial/game"

// DefaultWeights rewards a short own route and a long opponent route.
var DefaultWeights = game.Weights{1, 1.5, 0, 0, 0, 0}

// HeuristicBound keeps heuristic scores well below a decisive win.
const HeuristicBound = WinBonus / 2

// Features returns, from player's side: negated own path length, opponent
// path length, own walls left, opponent walls left, own rows advanced and
// opponent rows advanced. Unreachable paths appear as ±Inf.
func (q *Quoridor) Features(s State, player game.Player) []float64 {
	opponent := player.Opponent()
	return []float64{
		-q.PathLength(s, player),
		q.PathLength(s, opponent),
		float64(s.wallsLeft(player)),
		float64(s.wallsLeft(opponent)),
		float64(q.progress(s, player)),
		float64(q.progress(s, opponent)),
	}
}

func (q *Quoridor) progress(s State, p game.Player) int {
	if p == game.Player1 {
		return s.P1.Y
	}
	return q.size - 1 - s.P2.Y
}

// Evaluate scores s for player as the weighted sum of Features, clamped to
// ±HeuristicBound.
func (q *Quoridor) Evaluate(s game.State, player game.Player, weights game.Weights) float64 {
	return weights.Score(q.Features(s.(State), player), HeuristicBound)
}

// Evaluator binds weights into a game.Evaluate.
func (q *Quoridor) Evaluator(weights game.Weights) game.Evaluate {
	return func(s game.State, player game.Player) float64 {
		return q.Evaluate(s, player, weights)
	}
}
