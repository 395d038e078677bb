package searcher

import (
	"time"

	"adversarial/experiments/metrics"
	"adversarial/game"
)

type settings struct {
	rollouts    int
	cutoff      int
	depth       int
	exploration float64
	goroutines  int
	policyName  string
	policy      Policy
	evaluate    game.Evaluate
	seed        uint64
	pruning     bool
	metrics     metrics.Collector
}

type Option func(s *settings)

func newSettings(options []Option) *settings {
	s := &settings{ // Default values
		rollouts:    DefaultRollouts,
		depth:       DefaultDepth,
		exploration: DefaultExploration,
		goroutines:  1,
		policyName:  PolicyRandom,
		evaluate:    game.Zero,
		seed:        uint64(time.Now().UnixNano()),
		pruning:     true,
		metrics:     metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// WithRollouts sets the number of MCTS iterations per decision.
func WithRollouts(rollouts int) Option {
	return func(s *settings) {
		s.rollouts = rollouts
	}
}

// WithCutoff caps the playout length. Zero means playouts run to the end.
func WithCutoff(depth int) Option {
	return func(s *settings) {
		s.cutoff = depth
	}
}

// WithDepth sets the alpha-beta search depth in plies.
func WithDepth(depth int) Option {
	return func(s *settings) {
		s.depth = depth
	}
}

func WithExploration(c float64) Option {
	return func(s *settings) {
		s.exploration = c
	}
}

// WithGoroutines runs n independent search trees and merges their root statistics.
func WithGoroutines(n int) Option {
	return func(s *settings) {
		s.goroutines = n
	}
}

// WithPolicy selects a registered rollout policy by name.
func WithPolicy(name string) Option {
	return func(s *settings) {
		s.policyName = name
		s.policy = nil
	}
}

// WithRolloutPolicy plugs in a custom rollout policy.
func WithRolloutPolicy(policy Policy) Option {
	return func(s *settings) {
		if policy != nil {
			s.policy = policy
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *settings) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(s *settings) {
		s.seed = seed
	}
}

// WithoutPruning turns alpha-beta into plain minimax.
func WithoutPruning() Option {
	return func(s *settings) {
		s.pruning = false
	}
}

func WithMetrics() Option {
	return func(s *settings) {
		s.metrics = metrics.NewCollector()
	}
}
