// Package experiments plays repeated games between two agents and reports
// win rates, move times and game lengths.
package experiments

import (
	"fmt"
	"strings"
	"time"

	"adversarial/agent"
	"adversarial/engine"
	"adversarial/experiments/metrics"
	"adversarial/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

type Summary struct {
	Player1     string
	Player2     string
	Trials      int
	Player1Wins float64 // Draws count half a win for each player
	Player2Wins float64
	Draws       int
	Player1Move time.Duration // Mean time per move
	Player2Move time.Duration
	MeanRounds  float64
	Games       []metrics.GameMetric
	RecordsDir  string // Empty when records were not written
	moveMetrics [][]metrics.MoveMetric
}

func (s Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Evaluation concluded! Outcomes:\n")
	fmt.Fprintf(&b, "\tGames played: %d.\n", s.Trials)
	fmt.Fprintf(&b, "\tPlayer 1: %s won %g games.\n", s.Player1, s.Player1Wins)
	fmt.Fprintf(&b, "\tPlayer 2: %s won %g games.\n", s.Player2, s.Player2Wins)
	fmt.Fprintf(&b, "\tDraws: %d.\n", s.Draws)
	fmt.Fprintf(&b, "\tOn average, player 1 took %.2f seconds per move.\n", s.Player1Move.Seconds())
	fmt.Fprintf(&b, "\tOn average, player 2 took %.2f seconds per move.\n", s.Player2Move.Seconds())
	fmt.Fprintf(&b, "\tThe average game was %.0f moves long.\n", s.MeanRounds)
	return b.String()
}

type trial struct {
	game  metrics.GameMetric
	moves []metrics.MoveMetric
}

// Run plays cfg.Trials games. Agents are rebuilt for every game with their own
// seeds, so trials are independent and can run in parallel.
func Run(cfg Config, observer engine.Observer) (Summary, error) {
	if err := cfg.Validate(); err != nil {
		return Summary{}, err
	}
	g, err := engine.NewGame(cfg.Game, cfg.Size, cfg.Walls)
	if err != nil {
		return Summary{}, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))
	seeds := make([][2]uint64, cfg.Trials)
	for i := range seeds {
		seeds[i] = [2]uint64{rng.Uint64() | 1, rng.Uint64() | 1}
	}

	// Build one pair up front so bad names fail before any game starts
	if _, _, err := newAgents(g, cfg, seeds[0]); err != nil {
		return Summary{}, err
	}

	workers := cfg.Workers
	if cfg.hasHuman() || observer != nil {
		workers = 1
	}

	log.Info().Msgf("starting %d games of %s between %s and %s...", cfg.Trials, cfg.Game, cfg.Player1.Name, cfg.Player2.Name)

	trials := make([]trial, cfg.Trials)
	var group errgroup.Group
	group.SetLimit(workers)
	for i := range trials {
		group.Go(func() error {
			a1, a2, err := newAgents(g, cfg, seeds[i])
			if err != nil {
				return err
			}

			var options []engine.Option
			if observer != nil {
				options = append(options, engine.WithObserver(observer))
			}
			if cfg.MaxRounds > 0 {
				options = append(options, engine.WithMaxRounds(cfg.MaxRounds))
			}
			gameMetric, moveMetrics, err := engine.NewLocal(g, a1, a2, options...).Run()
			if err != nil {
				return fmt.Errorf("game %d: %w", i+1, err)
			}

			trials[i] = trial{game: gameMetric, moves: moveMetrics}
			logOutcome(cfg, i+1, gameMetric)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return Summary{}, err
	}

	summary := summarize(cfg, trials)
	log.Info().Msgf("completed %d games", cfg.Trials)

	if cfg.Out != "" {
		dir, err := writeRecords(cfg, summary)
		if err != nil {
			return summary, err
		}
		summary.RecordsDir = dir
	}
	return summary, nil
}

func newAgents(g game.Game, cfg Config, seeds [2]uint64) (agent.Agent, agent.Agent, error) {
	a1, err := agent.New(g, cfg.agentConfig(cfg.Player1, game.Player1, seeds[0]))
	if err != nil {
		return nil, nil, fmt.Errorf("player 1: %w", err)
	}
	a2, err := agent.New(g, cfg.agentConfig(cfg.Player2, game.Player2, seeds[1]))
	if err != nil {
		return nil, nil, fmt.Errorf("player 2: %w", err)
	}
	return a1, a2, nil
}

func logOutcome(cfg Config, n int, m metrics.GameMetric) {
	event := log.Debug()
	if cfg.Verbose {
		event = log.Info()
	}
	rounds := (m.TotalMoves + 1) / 2
	switch m.Winner {
	case int(game.Player1):
		event.Msgf("game #%d has ended. player 1: %s won. the game lasted %d moves", n, cfg.Player1.Name, rounds)
	case int(game.Player2):
		event.Msgf("game #%d has ended. player 2: %s won. the game lasted %d moves", n, cfg.Player2.Name, rounds)
	default:
		event.Msgf("game #%d has ended in a draw after %d moves", n, rounds)
	}
}

// summarize aggregates outcomes. A game's length is counted in rounds, one
// move by each player.
func summarize(cfg Config, trials []trial) Summary {
	s := Summary{
		Player1: cfg.Player1.Name,
		Player2: cfg.Player2.Name,
		Trials:  len(trials),
	}

	var moveTimes [2]time.Duration
	var moveCounts [2]int
	rounds := 0
	for _, t := range trials {
		s.Games = append(s.Games, t.game)
		s.moveMetrics = append(s.moveMetrics, t.moves)
		switch t.game.Winner {
		case int(game.Player1):
			s.Player1Wins++
		case int(game.Player2):
			s.Player2Wins++
		default:
			s.Draws++
			s.Player1Wins += 0.5
			s.Player2Wins += 0.5
		}
		rounds += (t.game.TotalMoves + 1) / 2

		for _, m := range t.moves {
			moveTimes[m.Player-1] += m.Duration
			moveCounts[m.Player-1]++
		}
	}

	if moveCounts[0] > 0 {
		s.Player1Move = moveTimes[0] / time.Duration(moveCounts[0])
	}
	if moveCounts[1] > 0 {
		s.Player2Move = moveTimes[1] / time.Duration(moveCounts[1])
	}
	if len(trials) > 0 {
		s.MeanRounds = float64(rounds) / float64(len(trials))
	}
	return s
}

func writeRecords(cfg Config, s Summary) (string, error) {
	writer, err := metrics.NewWriter(cfg.Out, cfg.Name, cfg.Format)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	// Store experiment metadata
	err = writer.WriteAgentConfigs([]metrics.AgentConfig{cfg.Player1.record(1), cfg.Player2.record(2)})
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	// Store experiment results
	gameRecords := make([]metrics.GameRecord, len(s.Games))
	var moveRecords []metrics.MoveRecord
	for i, gm := range s.Games {
		gameRecords[i] = metrics.GameRecord{ID: i + 1, Agent1: 1, Agent2: 2, GameMetric: gm}
		for _, mm := range s.moveMetrics[i] {
			moveRecords = append(moveRecords, metrics.MoveRecord{Game: i + 1, MoveMetric: mm})
		}
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.BaseDir(), nil
}
