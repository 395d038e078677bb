package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"adversarial/agent"
	"adversarial/engine"
	"adversarial/experiments"
	"adversarial/game"
	"adversarial/meta"
	"adversarial/searcher"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Modes
const (
	modePlay     = "play"
	modeEvaluate = "evaluate"
)

type options struct {
	mode    string
	config  experiments.Config
	verbose bool
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("invalid arguments")
	}
	setLogLevel(opts.verbose)

	if err := run(opts); err != nil {
		log.Fatal().Err(err).Msgf("%s failed", opts.mode)
	}
}

func parseFlags(args []string) (options, error) {
	defaults := experiments.DefaultConfig()
	fs := flag.NewFlagSet("adversarial", flag.ContinueOnError)

	mode := fs.String("mode", modeEvaluate, "What to do: play (one rendered game) or evaluate (repeated trials)")
	configPath := fs.String("config", "", "YAML experiment file; overrides the game and player flags")
	gameName := fs.String("g", defaults.Game, fmt.Sprintf("Choice of game %v", engine.GameNames()))
	p1 := fs.String("p1", defaults.Player1.Name, fmt.Sprintf("Choice of player 1 %v", agent.Names()))
	p2 := fs.String("p2", defaults.Player2.Name, fmt.Sprintf("Choice of player 2 %v", agent.Names()))
	p1Depth := fs.Int("p1_depth", 0, "Playout cutoff for MCTS agents (0 = 75, negative = none) or search depth for alpha-beta agents (0 = 2)")
	p2Depth := fs.Int("p2_depth", 0, "Playout cutoff for MCTS agents (0 = 75, negative = none) or search depth for alpha-beta agents (0 = 2)")
	p1Rollouts := fs.Int("p1_rollouts", meta.ROLLOUTS, "Number of rollouts for MCTS agents")
	p2Rollouts := fs.Int("p2_rollouts", meta.ROLLOUTS, "Number of rollouts for MCTS agents")
	p1Policy := fs.String("p1_policy", meta.POLICY, fmt.Sprintf("Playout policy for MCTS agents %v", searcher.PolicyNames()))
	p2Policy := fs.String("p2_policy", meta.POLICY, fmt.Sprintf("Playout policy for MCTS agents %v", searcher.PolicyNames()))
	p1Weights := fs.String("p1_weights", "", "Comma-separated evaluator weights for quoridor agents")
	p2Weights := fs.String("p2_weights", "", "Comma-separated evaluator weights for quoridor agents")
	size := fs.Int("s", defaults.Size, fmt.Sprintf("Size of the quoridor board %v", meta.BOARD_SIZES))
	walls := fs.Int("w", defaults.Walls, "Number of walls per player")
	trials := fs.Int("trials", defaults.Trials, "Number of trials")
	verbose := fs.Bool("verbose", defaults.Verbose, "Print per game outcomes")
	seed := fs.Uint64("seed", 0, "Random seed (0 = time based)")
	workers := fs.Int("workers", defaults.Workers, "Number of games played at once")
	out := fs.String("out", "", "Directory for game and move records")
	format := fs.String("format", defaults.Format, "Record format: csv or parquet")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if *mode != modePlay && *mode != modeEvaluate {
		return options{}, fmt.Errorf("unknown mode %q", *mode)
	}

	cfg := defaults
	if *configPath != "" {
		loaded, err := experiments.LoadConfig(*configPath)
		if err != nil {
			return options{}, err
		}
		cfg = loaded
	} else {
		w1, err := game.ParseWeights(*p1Weights)
		if err != nil {
			return options{}, fmt.Errorf("p1_weights: %w", err)
		}
		w2, err := game.ParseWeights(*p2Weights)
		if err != nil {
			return options{}, fmt.Errorf("p2_weights: %w", err)
		}

		cfg.Game = strings.ToLower(*gameName)
		cfg.Size = *size
		cfg.Walls = *walls
		cfg.Player1 = experiments.AgentSpec{Name: *p1, Depth: *p1Depth, Rollouts: *p1Rollouts, Policy: *p1Policy, Weights: w1}
		cfg.Player2 = experiments.AgentSpec{Name: *p2, Depth: *p2Depth, Rollouts: *p2Rollouts, Policy: *p2Policy, Weights: w2}
		cfg.Trials = *trials
		cfg.Verbose = *verbose
		cfg.Seed = *seed
		cfg.Workers = *workers
		cfg.Out = *out
		cfg.Format = *format
	}

	if *mode == modePlay {
		cfg.Trials = 1
		cfg.Workers = 1
	}
	if err := cfg.Validate(); err != nil {
		return options{}, err
	}
	return options{mode: *mode, config: cfg, verbose: cfg.Verbose}, nil
}

func setLogLevel(verbose bool) {
	if verbose {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
}

func run(opts options) error {
	cfg := opts.config
	out := termenv.NewOutput(os.Stdout)

	var observer engine.Observer
	if opts.mode == modePlay {
		g, err := engine.NewGame(cfg.Game, cfg.Size, cfg.Walls)
		if err != nil {
			return err
		}
		c := newConsole(out, g)
		c.show(g.Start())
		observer = c.observe
	}

	summary, err := experiments.Run(cfg, observer)
	if err != nil {
		return err
	}

	if opts.mode == modePlay {
		newConsole(out, nil).outcome(summary)
		return nil
	}
	fmt.Fprint(out, summary.String())
	if summary.RecordsDir != "" {
		log.Info().Msgf("records written to %s", summary.RecordsDir)
	}
	return nil
}
