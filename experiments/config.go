package experiments

import (
	"fmt"
	"io"
	"os"
	"slices"

	"adversarial/agent"
	"adversarial/engine"
	"adversarial/experiments/metrics"
	"adversarial/game"
	"adversarial/meta"

	"gopkg.in/yaml.v3"
)

// AgentSpec describes one side of a match. Depth is the playout cutoff for
// MCTS agents (0 uses the default, negative means unbounded) and the search
// depth for alpha-beta agents (0 uses 2).
type AgentSpec struct {
	Name       string       `yaml:"name"`
	Depth      int          `yaml:"depth"`
	Rollouts   int          `yaml:"rollouts"`
	Policy     string       `yaml:"policy"`
	Weights    game.Weights `yaml:"weights"`
	Goroutines int          `yaml:"goroutines"`
}

type Config struct {
	Name      string    `yaml:"name"`
	Game      string    `yaml:"game"`
	Size      int       `yaml:"size"`
	Walls     int       `yaml:"walls"`
	Player1   AgentSpec `yaml:"player1"`
	Player2   AgentSpec `yaml:"player2"`
	Trials    int       `yaml:"trials"`
	Workers   int       `yaml:"workers"`
	Seed      uint64    `yaml:"seed"`
	Verbose   bool      `yaml:"verbose"`
	MaxRounds int       `yaml:"max_rounds"`
	Out       string    `yaml:"out"` // Records are written only when set
	Format    string    `yaml:"format"`

	Input  io.Reader `yaml:"-"` // Console for human agents
	Output io.Writer `yaml:"-"`
}

func DefaultConfig() Config {
	return Config{
		Name:    "evaluate",
		Game:    meta.GAME,
		Size:    meta.BOARD_SIZE,
		Walls:   meta.WALLS,
		Player1: AgentSpec{Name: meta.PLAYER1, Rollouts: meta.ROLLOUTS, Policy: meta.POLICY},
		Player2: AgentSpec{Name: meta.PLAYER2, Rollouts: meta.ROLLOUTS, Policy: meta.POLICY},
		Trials:  meta.TRIALS,
		Workers: meta.WORKERS,
		Verbose: true,
		Format:  meta.OUTPUT_FORMAT,
	}
}

// LoadConfig reads a YAML experiment file on top of the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings no game could be played with. Agent settings
// beyond the name are checked when the agents are built.
func (c Config) Validate() error {
	if c.Trials <= 0 {
		return fmt.Errorf("trials must be positive, got %d", c.Trials)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if c.MaxRounds < 0 {
		return fmt.Errorf("max rounds must not be negative, got %d", c.MaxRounds)
	}
	if !slices.Contains(engine.GameNames(), c.Game) {
		return fmt.Errorf("%w %q", engine.ErrUnknownGame, c.Game)
	}
	for i, name := range []string{c.Player1.Name, c.Player2.Name} {
		if !slices.Contains(agent.Names(), name) {
			return fmt.Errorf("player %d: %w %q", i+1, agent.ErrUnknownAgent, name)
		}
	}
	for i, seat := range []AgentSpec{c.Player1, c.Player2} {
		if (seat.Name == agent.AlphaBeta || seat.Name == agent.QuoridorAlphaBeta) && seat.Depth < 0 {
			return fmt.Errorf("player %d: alpha-beta depth must not be negative, got %d", i+1, seat.Depth)
		}
	}
	if c.Game == engine.Quoridor && !slices.Contains(meta.BOARD_SIZES, c.Size) {
		return fmt.Errorf("board size %d is not one of %v", c.Size, meta.BOARD_SIZES)
	}
	if c.Out != "" && c.Format != metrics.FormatCSV && c.Format != metrics.FormatParquet {
		return fmt.Errorf("unknown output format %q", c.Format)
	}
	return nil
}

// agentConfig resolves an AgentSpec for one seat.
func (c Config) agentConfig(seat AgentSpec, player game.Player, seed uint64) agent.Config {
	depth := seat.Depth
	if seat.Name == agent.MCTS || seat.Name == agent.QuoridorMCTS {
		switch {
		case depth == 0:
			depth = meta.CUTOFF
		case depth < 0:
			depth = 0 // Unbounded playouts
		}
	}
	return agent.Config{
		Name:       seat.Name,
		Player:     player,
		Depth:      depth,
		Rollouts:   seat.Rollouts,
		Policy:     seat.Policy,
		Weights:    seat.Weights,
		Goroutines: seat.Goroutines,
		Seed:       seed,
		Metrics:    c.Out != "",
		Input:      c.Input,
		Output:     c.Output,
	}
}

func (c Config) hasHuman() bool {
	return c.Player1.Name == agent.Human || c.Player2.Name == agent.Human
}

func (s AgentSpec) record(id int) metrics.AgentConfig {
	return metrics.AgentConfig{
		ID:         id,
		Name:       s.Name,
		Depth:      s.Depth,
		Rollouts:   s.Rollouts,
		Policy:     s.Policy,
		Weights:    s.Weights.String(),
		Goroutines: s.Goroutines,
	}
}
