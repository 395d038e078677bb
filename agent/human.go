package agent

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"adversarial/experiments/metrics"
	"adversarial/game"
	"adversarial/searcher"
	"adversarial/utils"

	"github.com/pkg/errors"
)

// humanAgent reads actions from a line-based console.
type humanAgent struct {
	parser  game.Parser
	game    game.Game
	scanner *bufio.Scanner
	out     io.Writer
}

func newHuman(g game.Game, cfg Config) (Agent, error) {
	parser, ok := g.(game.Parser)
	if !ok {
		return nil, errors.Errorf("game %T does not accept typed actions", g)
	}
	return &humanAgent{
		parser:  parser,
		game:    g,
		scanner: bufio.NewScanner(cfg.Input),
		out:     cfg.Output,
	}, nil
}

// Action prompts until the player enters a legal action. An empty line lists
// the legal actions.
func (a *humanAgent) Action(state game.State) (game.Action, metrics.SearchMetric, error) {
	start := time.Now()
	actions := a.game.Actions(state)
	if a.game.IsEnd(state) || len(actions) == 0 {
		return nil, metrics.SearchMetric{}, errors.Wrap(searcher.ErrNoLegalActions, "human agent")
	}

	for {
		fmt.Fprintf(a.out, "player %d> ", a.game.Player(state))
		if !a.scanner.Scan() {
			if err := a.scanner.Err(); err != nil {
				return nil, metrics.SearchMetric{}, errors.Wrap(err, "failed to read action")
			}
			return nil, metrics.SearchMetric{}, io.ErrUnexpectedEOF
		}

		line := strings.TrimSpace(a.scanner.Text())
		if line == "" {
			fmt.Fprintf(a.out, "legal actions: %s\n", a.format(actions))
			continue
		}

		action, err := a.parser.ParseAction(line)
		if err != nil {
			fmt.Fprintf(a.out, "%v\n", err)
			continue
		}
		if utils.FindIndex(actions, action) < 0 {
			fmt.Fprintf(a.out, "illegal action %q\n", line)
			continue
		}
		return action, metrics.SearchMetric{Searcher: Human, Duration: time.Since(start)}, nil
	}
}

func (a *humanAgent) format(actions []game.Action) string {
	texts := make([]string, len(actions))
	for i, action := range actions {
		texts[i] = a.parser.FormatAction(action)
	}
	return strings.Join(texts, ", ")
}
