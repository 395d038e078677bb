package agent

import (
	"time"

	"adversarial/experiments/metrics"
	"adversarial/game"
	"adversarial/searcher"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// randomAgent plays a uniformly random legal action.
type randomAgent struct {
	game game.Game
	rng  *rand.Rand
}

func newRandom(g game.Game, cfg Config) (Agent, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &randomAgent{game: g, rng: rand.New(rand.NewSource(seed))}, nil
}

func (a *randomAgent) Action(state game.State) (game.Action, metrics.SearchMetric, error) {
	start := time.Now()
	actions := a.game.Actions(state)
	if a.game.IsEnd(state) || len(actions) == 0 {
		return nil, metrics.SearchMetric{}, errors.Wrap(searcher.ErrNoLegalActions, "random agent")
	}
	action := actions[a.rng.Intn(len(actions))]
	return action, metrics.SearchMetric{Searcher: Random, Duration: time.Since(start)}, nil
}
