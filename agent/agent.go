// Package agent wraps searchers, random play and console input behind one
// interface and a registry keyed by agent name.
package agent

import (
	"io"
	"maps"
	"os"
	"slices"

	"adversarial/experiments/metrics"
	"adversarial/game"

	"github.com/pkg/errors"
)

// Agent names
const (
	Random            = "random"
	Human             = "human"
	MCTS              = "mcts"
	QuoridorMCTS      = "quoridor-mcts"
	AlphaBeta         = "alphabeta"
	QuoridorAlphaBeta = "quoridor-alphabeta"
)

var ErrUnknownAgent = errors.New("unknown agent")

type Agent interface {
	// Action returns the move for the player to move in state and the search
	// metrics collected while finding it.
	Action(state game.State) (game.Action, metrics.SearchMetric, error)
}

// Config carries every knob an agent might use; each constructor reads the
// fields it needs.
type Config struct {
	Name       string
	Player     game.Player
	Depth      int // Playout cutoff for MCTS agents, search depth for alpha-beta agents
	Rollouts   int
	Policy     string
	Weights    game.Weights
	Goroutines int
	Seed       uint64 // 0 picks a time-based seed
	Metrics    bool
	Input      io.Reader // Human agents only
	Output     io.Writer // Human agents only
}

type constructor func(g game.Game, cfg Config) (Agent, error)

var registry = map[string]constructor{
	Random:            newRandom,
	Human:             newHuman,
	MCTS:              newMCTS,
	QuoridorMCTS:      newQuoridorMCTS,
	AlphaBeta:         newAlphaBeta,
	QuoridorAlphaBeta: newQuoridorAlphaBeta,
}

func New(g game.Game, cfg Config) (Agent, error) {
	build, ok := registry[cfg.Name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownAgent, "%q (choose from %v)", cfg.Name, Names())
	}
	if cfg.Input == nil {
		cfg.Input = os.Stdin
	}
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	a, err := build(g, cfg)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to create %s agent", cfg.Name)
	}
	return a, nil
}

// Names lists the registered agent names in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(registry))
}
