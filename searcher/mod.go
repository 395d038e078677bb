// Package searcher implements the two decision engines: Monte Carlo tree
// search and depth-limited alpha-beta minimax.
package searcher

import (
	"math"

	"adversarial/experiments/metrics"
	"adversarial/game"

	"github.com/pkg/errors"
)

// Hyperparameters

const DefaultExploration = math.Sqrt2 // UCB1 exploration constant C
const DefaultRollouts = 100
const DefaultDepth = 2 // Alpha-beta plies

var (
	// ErrNoLegalActions is returned when a decision is requested on a terminal
	// state, or a non-terminal state has no legal actions.
	ErrNoLegalActions = errors.New("no legal actions")
	// ErrInvalidPolicy is returned for an unknown or unsupported rollout policy.
	ErrInvalidPolicy = errors.New("invalid rollout policy")
)

// Searcher picks an action for the player to move.
type Searcher interface {
	Decide(state game.State) (game.Action, metrics.SearchMetric, error)
}

// ucb1 = rewards/visits + C*sqrt(ln(N)/visits), where lnN is the log of the
// parent's visit count.
func ucb1(rewards float64, visits int, exploration, lnN float64) float64 {
	// Prioritize unexplored nodes
	if visits == 0 {
		return math.Inf(1)
	}

	return rewards/float64(visits) + exploration*math.Sqrt(lnN/float64(visits))
}
