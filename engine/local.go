package engine

import (
	"fmt"
	"time"

	"adversarial/agent"
	"adversarial/experiments/metrics"
	"adversarial/game"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Observer is called after every move with the resulting state.
type Observer func(step int, player game.Player, action game.Action, state game.State)

type Option func(e *Local)

func WithObserver(observer Observer) Option {
	return func(e *Local) {
		e.observer = observer
	}
}

func WithMaxRounds(rounds int) Option {
	return func(e *Local) {
		if rounds > 0 {
			e.maxRounds = rounds
		}
	}
}

// Local runs both agents in-process, alternating turns as the game dictates.
type Local struct {
	game      game.Game
	agents    [2]agent.Agent // Indexed by player ID - 1
	observer  Observer
	maxRounds int
}

var _ Engine = (*Local)(nil)

func NewLocal(g game.Game, agent1, agent2 agent.Agent, options ...Option) *Local {
	e := &Local{
		game:      g,
		agents:    [2]agent.Agent{agent1, agent2},
		maxRounds: MaxRounds,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the entire game loop until the game ends or the round cap is hit.
func (e *Local) Run() (metrics.GameMetric, []metrics.MoveMetric, error) {
	state := e.game.Start()
	gameMetric := metrics.GameMetric{
		StartingPlayer: int(e.game.Player(state)),
		StartTime:      time.Now(),
	}
	log.Debug().Msgf("player %d is starting", gameMetric.StartingPlayer)

	var moveMetrics []metrics.MoveMetric
	step := 0
	for !e.game.IsEnd(state) && step < 2*e.maxRounds {
		player := e.game.Player(state)

		start := time.Now()
		action, searchMetric, err := e.agents[player-1].Action(state)
		if err != nil {
			return gameMetric, moveMetrics, errors.WithMessagef(err, "player %d failed to move at step %d", player, step+1)
		}
		searchMetric.Duration = time.Since(start)

		step++
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       int(player),
			Action:       describe(e.game, action),
			SearchMetric: searchMetric,
		})

		state = e.game.Successor(state, action)
		if e.observer != nil {
			e.observer(step, player, action, state)
		}
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = step
	gameMetric.Utility = e.game.Utility(state, game.Player1)
	switch {
	case !e.game.IsEnd(state):
		log.Debug().Msgf("game called a draw after %d rounds", e.maxRounds)
	case gameMetric.Utility > 0:
		gameMetric.Winner = int(game.Player1)
	case gameMetric.Utility < 0:
		gameMetric.Winner = int(game.Player2)
	}
	return gameMetric, moveMetrics, nil
}

func describe(g game.Game, action game.Action) string {
	if parser, ok := g.(game.Parser); ok {
		return parser.FormatAction(action)
	}
	return fmt.Sprint(action)
}
