package main

import (
	"fmt"

	"adversarial/experiments"
	"adversarial/game"

	"github.com/muesli/termenv"
)

var playerColors = map[game.Player]string{
	game.Player1: "4", // Blue
	game.Player2: "1", // Red
}

// console prints boards and outcomes for interactive play.
type console struct {
	out  *termenv.Output
	game game.Game
}

func newConsole(out *termenv.Output, g game.Game) *console {
	return &console{out: out, game: g}
}

func (c *console) show(state game.State) {
	if r, ok := c.game.(game.Renderer); ok {
		fmt.Fprintln(c.out, r.Render(state))
	}
}

func (c *console) observe(step int, player game.Player, action game.Action, state game.State) {
	text := fmt.Sprint(action)
	if p, ok := c.game.(game.Parser); ok {
		text = p.FormatAction(action)
	}
	header := fmt.Sprintf("move %d: player %d plays %s", step, player, text)
	fmt.Fprintln(c.out, c.out.String(header).Foreground(c.out.Color(playerColors[player])).Bold())
	c.show(state)
}

func (c *console) outcome(s experiments.Summary) {
	if len(s.Games) == 0 {
		return
	}
	g := s.Games[0]
	rounds := (g.TotalMoves + 1) / 2

	var text string
	color := "3" // Yellow
	switch game.Player(g.Winner) {
	case game.Player1:
		text = fmt.Sprintf("Player 1: %s won after %d moves.", s.Player1, rounds)
		color = playerColors[game.Player1]
	case game.Player2:
		text = fmt.Sprintf("Player 2: %s won after %d moves.", s.Player2, rounds)
		color = playerColors[game.Player2]
	default:
		text = fmt.Sprintf("The game was called a draw after %d moves.", rounds)
	}
	fmt.Fprintln(c.out, c.out.String(text).Foreground(c.out.Color(color)).Bold())
}
