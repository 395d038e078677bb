package searcher

import (
	"math"

	"adversarial/experiments/metrics"
	"adversarial/game"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// AlphaBeta is a depth-limited minimax searcher maximizing for one fixed
// player. Leaves at the depth limit are scored by the evaluation function.
type AlphaBeta struct {
	game     game.Game
	player   game.Player
	depth    int
	evaluate game.Evaluate
	pruning  bool
	metrics  metrics.Collector
}

type result struct {
	value  float64
	action game.Action
}

func NewAlphaBeta(g game.Game, player game.Player, options ...Option) (*AlphaBeta, error) {
	s := newSettings(options)
	if s.depth <= 0 {
		return nil, errors.Errorf("depth must be positive, got %d", s.depth)
	}
	if player != game.Player1 && player != game.Player2 {
		return nil, errors.Errorf("invalid player %d", player)
	}

	return &AlphaBeta{
		game:     g,
		player:   player,
		depth:    s.depth,
		evaluate: s.evaluate,
		pruning:  s.pruning,
		metrics:  s.metrics,
	}, nil
}

// Decide returns the first action, in enumeration order, that attains the
// minimax value of state.
func (ab *AlphaBeta) Decide(state game.State) (game.Action, metrics.SearchMetric, error) {
	if ab.game.IsEnd(state) {
		return nil, metrics.SearchMetric{}, errors.Wrap(ErrNoLegalActions, "state is terminal")
	}

	ab.metrics.Start("alphabeta", 1, 0, ab.depth)
	best, err := ab.value(state, ab.depth, math.Inf(-1), math.Inf(1))
	metric := ab.metrics.Complete()
	if err != nil {
		return nil, metric, err
	}

	log.Debug().Msgf("alphabeta chose %v with value %.3f at depth %d", best.action, best.value, ab.depth)
	return best.action, metric, nil
}

func (ab *AlphaBeta) value(state game.State, depth int, alpha, beta float64) (result, error) {
	ab.metrics.AddNode()
	if ab.game.IsEnd(state) {
		return result{value: ab.game.Utility(state, ab.player)}, nil
	}
	if depth == 0 {
		return result{value: ab.evaluate(state, ab.player)}, nil
	}

	actions := ab.game.Actions(state)
	if len(actions) == 0 {
		return result{}, errors.Wrapf(ErrNoLegalActions, "non-terminal state at ply %d", ab.depth-depth)
	}

	maximizing := ab.game.Player(state) == ab.player
	var best result
	for i, action := range actions {
		child, err := ab.value(ab.game.Successor(state, action), depth-1, alpha, beta)
		if err != nil {
			return result{}, err
		}

		// Strict comparisons keep the earliest extremal action
		if maximizing {
			if i == 0 || child.value > best.value {
				best = result{value: child.value, action: action}
			}
			alpha = math.Max(alpha, best.value)
		} else {
			if i == 0 || child.value < best.value {
				best = result{value: child.value, action: action}
			}
			beta = math.Min(beta, best.value)
		}

		if ab.pruning && alpha >= beta {
			break
		}
	}
	return best, nil
}
