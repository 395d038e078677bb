package agent

import (
	"adversarial/experiments/metrics"
	"adversarial/game"
	"adversarial/game/quoridor"
	"adversarial/searcher"

	"github.com/pkg/errors"
)

type searchAgent struct {
	searcher searcher.Searcher
}

func (a searchAgent) Action(state game.State) (game.Action, metrics.SearchMetric, error) {
	return a.searcher.Decide(state)
}

func commonOptions(cfg Config) []searcher.Option {
	var options []searcher.Option
	if cfg.Seed != 0 {
		options = append(options, searcher.WithSeed(cfg.Seed))
	}
	if cfg.Metrics {
		options = append(options, searcher.WithMetrics())
	}
	return options
}

func mctsOptions(cfg Config) []searcher.Option {
	options := commonOptions(cfg)
	options = append(options, searcher.WithCutoff(cfg.Depth))
	if cfg.Rollouts > 0 {
		options = append(options, searcher.WithRollouts(cfg.Rollouts))
	}
	if cfg.Policy != "" {
		options = append(options, searcher.WithPolicy(cfg.Policy))
	}
	if cfg.Goroutines > 1 {
		options = append(options, searcher.WithGoroutines(cfg.Goroutines))
	}
	return options
}

func alphaBetaOptions(cfg Config) []searcher.Option {
	options := commonOptions(cfg)
	if cfg.Depth > 0 {
		options = append(options, searcher.WithDepth(cfg.Depth))
	}
	return options
}

// quoridorEvaluator builds the static evaluator, falling back to the default
// pawn-race weights.
func quoridorEvaluator(g game.Game, weights game.Weights) (game.Evaluate, error) {
	q, ok := g.(*quoridor.Quoridor)
	if !ok {
		return nil, errors.Errorf("requires the quoridor game, got %T", g)
	}
	if len(weights) == 0 {
		weights = quoridor.DefaultWeights
	}
	if len(weights) != len(quoridor.DefaultWeights) {
		return nil, errors.Errorf("expected %d weights, got %d", len(quoridor.DefaultWeights), len(weights))
	}
	return q.Evaluator(weights), nil
}

func newMCTS(g game.Game, cfg Config) (Agent, error) {
	m, err := searcher.NewMCTS(g, mctsOptions(cfg)...)
	if err != nil {
		return nil, err
	}
	return searchAgent{searcher: m}, nil
}

func newQuoridorMCTS(g game.Game, cfg Config) (Agent, error) {
	evaluate, err := quoridorEvaluator(g, cfg.Weights)
	if err != nil {
		return nil, err
	}
	m, err := searcher.NewMCTS(g, append(mctsOptions(cfg), searcher.WithEvaluationFn(evaluate))...)
	if err != nil {
		return nil, err
	}
	return searchAgent{searcher: m}, nil
}

func newAlphaBeta(g game.Game, cfg Config) (Agent, error) {
	ab, err := searcher.NewAlphaBeta(g, cfg.Player, alphaBetaOptions(cfg)...)
	if err != nil {
		return nil, err
	}
	return searchAgent{searcher: ab}, nil
}

func newQuoridorAlphaBeta(g game.Game, cfg Config) (Agent, error) {
	evaluate, err := quoridorEvaluator(g, cfg.Weights)
	if err != nil {
		return nil, err
	}
	ab, err := searcher.NewAlphaBeta(g, cfg.Player, append(alphaBetaOptions(cfg), searcher.WithEvaluationFn(evaluate))...)
	if err != nil {
		return nil, err
	}
	return searchAgent{searcher: ab}, nil
}
