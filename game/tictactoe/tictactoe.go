// Package tictactoe implements the classic 3x3 game. Cells are numbered 1..9
// row by row; player 1 plays X and moves first.
package tictactoe

import (
	"fmt"
	"strconv"
	"strings"

	"adversarial/game"
)

const WinBonus = 1.0

// Move is the cell index (1..9) to mark.
type Move int

// State is a comparable snapshot of the board. Board[i] holds the player who
// marked cell i+1, or game.NoPlayer.
type State struct {
	Board [9]game.Player
	Turn  game.Player
}

var lines = [8][3]int{
	{1, 2, 3}, {4, 5, 6}, {7, 8, 9}, // rows
	{1, 4, 7}, {2, 5, 8}, {3, 6, 9}, // columns
	{1, 5, 9}, {7, 5, 3}, // diagonals
}

type TicTacToe struct{}

func New() *TicTacToe {
	return &TicTacToe{}
}

func (t *TicTacToe) Start() game.State {
	return State{Turn: game.Player1}
}

func (t *TicTacToe) Actions(s game.State) []game.Action {
	st := s.(State)
	actions := make([]game.Action, 0, 9)
	for cell := 1; cell <= 9; cell++ {
		if st.Board[cell-1] == game.NoPlayer {
			actions = append(actions, Move(cell))
		}
	}
	return actions
}

func (t *TicTacToe) Successor(s game.State, a game.Action) game.State {
	st := s.(State)
	m := a.(Move)
	next := st // arrays are copied by value
	next.Board[m-1] = st.Turn
	next.Turn = st.Turn.Opponent()
	return next
}

// Winner returns the player owning a full line, or game.NoPlayer.
func (t *TicTacToe) Winner(s game.State) game.Player {
	st := s.(State)
	for _, line := range lines {
		p := st.Board[line[0]-1]
		if p != game.NoPlayer && p == st.Board[line[1]-1] && p == st.Board[line[2]-1] {
			return p
		}
	}
	return game.NoPlayer
}

func (t *TicTacToe) IsEnd(s game.State) bool {
	if t.Winner(s) != game.NoPlayer {
		return true
	}
	for _, p := range s.(State).Board {
		if p == game.NoPlayer {
			return false
		}
	}
	return true
}

func (t *TicTacToe) Utility(s game.State, player game.Player) float64 {
	switch t.Winner(s) {
	case game.NoPlayer:
		return 0
	case player:
		return WinBonus
	default:
		return -WinBonus
	}
}

func (t *TicTacToe) Player(s game.State) game.Player {
	return s.(State).Turn
}

func (t *TicTacToe) WinBonus() float64 {
	return WinBonus
}

func (t *TicTacToe) ParseAction(text string) (game.Action, error) {
	cell, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return nil, fmt.Errorf("expected a cell number: %w", err)
	}
	if cell < 1 || cell > 9 {
		return nil, fmt.Errorf("cell %d is outside 1..9", cell)
	}
	return Move(cell), nil
}

func (t *TicTacToe) FormatAction(a game.Action) string {
	return strconv.Itoa(int(a.(Move)))
}

func (t *TicTacToe) Render(s game.State) string {
	st := s.(State)
	var b strings.Builder
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			switch st.Board[row*3+col] {
			case game.Player1:
				b.WriteString(" X ")
			case game.Player2:
				b.WriteString(" O ")
			default:
				b.WriteString(" - ")
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
