package engine

import "adversarial/experiments/metrics"

// MaxRounds caps a game; a round is one move by each player. A game still
// running after MaxRounds is a draw.
const MaxRounds = 200

type Engine interface {
	// Run plays one game till it ends or the round cap is reached
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
