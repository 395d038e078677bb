package quoridor

import (
	"fmt"
	"strings"

	"adversarial/game"
)

var typeNames = map[ActionType]string{Pawn: "pawn", HWall: "h", VWall: "v"}

// ParseAction reads "pawn x y", "h x y" or "v x y".
func (q *Quoridor) ParseAction(text string) (game.Action, error) {
	var name string
	var x, y int
	if _, err := fmt.Sscanf(strings.TrimSpace(text), "%s %d %d", &name, &x, &y); err != nil {
		return nil, fmt.Errorf("expected \"<pawn|h|v> x y\": %w", err)
	}
	for t, n := range typeNames {
		if n == name {
			return Action{Type: t, At: Pos{x, y}}, nil
		}
	}
	return nil, fmt.Errorf("unknown move type %q", name)
}

func (q *Quoridor) FormatAction(a game.Action) string {
	act := a.(Action)
	return fmt.Sprintf("%s %d %d", typeNames[act.Type], act.At.X, act.At.Y)
}

// Render draws the board with player 1's goal row on top.
func (q *Quoridor) Render(s game.State) string {
	st := s.(State)
	var b strings.Builder
	for y := q.size - 1; y >= 0; y-- {
		for x := 0; x < q.size; x++ {
			cell := Pos{x, y}
			switch cell {
			case st.P1:
				b.WriteString(" 1 ")
			case st.P2:
				b.WriteString(" 2 ")
			default:
				b.WriteString(" . ")
			}
			if x < q.size-1 {
				if q.open(st, cell, Pos{x + 1, y}) {
					b.WriteByte(' ')
				} else {
					b.WriteByte('|')
				}
			}
		}
		b.WriteByte('\n')
		if y == 0 {
			break
		}
		for x := 0; x < q.size; x++ {
			if q.open(st, Pos{x, y}, Pos{x, y - 1}) {
				b.WriteString("    ")
			} else {
				b.WriteString("--- ")
			}
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "walls left: player 1 = %d, player 2 = %d\n", st.Walls1, st.Walls2)
	return b.String()
}
