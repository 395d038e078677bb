// Package quoridor implements the pawn-and-walls race game: each player walks
// a pawn to the opposite side of an N×N board while placing two-cell walls to
// lengthen the opponent's route.
package quoridor

import (
	"fmt"

	"adversarial/game"
)

const (
	MinSize  = 3
	MaxSize  = 9
	WinBonus = 100.0
)

var directions = []Pos{{0, 1}, {0, -1}, {-1, 0}, {1, 0}}

type Quoridor struct {
	size  int
	walls int
}

// New returns a game on a size×size board with walls per player.
func New(size, walls int) (*Quoridor, error) {
	if size < MinSize || size > MaxSize {
		return nil, fmt.Errorf("board size %d outside %d..%d", size, MinSize, MaxSize)
	}
	if walls < 0 {
		return nil, fmt.Errorf("negative wall count %d", walls)
	}
	return &Quoridor{size: size, walls: walls}, nil
}

func (q *Quoridor) Size() int {
	return q.size
}

func (q *Quoridor) Start() game.State {
	mid := q.size / 2
	return State{
		P1:     Pos{mid, 0},
		P2:     Pos{mid, q.size - 1},
		Walls1: q.walls,
		Walls2: q.walls,
		Turn:   game.Player1,
	}
}

func (q *Quoridor) goalRow(p game.Player) int {
	if p == game.Player1 {
		return q.size - 1
	}
	return 0
}

func (q *Quoridor) Actions(s game.State) []game.Action {
	st := s.(State)
	actions := q.pawnMoves(st, st.Turn)
	if st.wallsLeft(st.Turn) == 0 {
		return actions
	}
	for _, t := range []ActionType{HWall, VWall} {
		for y := 0; y < q.size-1; y++ {
			for x := 0; x < q.size-1; x++ {
				if q.canPlace(st, t, Pos{x, y}) {
					actions = append(actions, Action{Type: t, At: Pos{x, y}})
				}
			}
		}
	}
	return actions
}

func (q *Quoridor) pawnMoves(st State, p game.Player) []game.Action {
	me, op := st.pawn(p), st.pawn(p.Opponent())
	moves := make([]game.Action, 0, 5)
	for _, d := range directions {
		to := me.add(d)
		if !q.open(st, me, to) {
			continue
		}
		if to != op {
			moves = append(moves, Action{Type: Pawn, At: to})
			continue
		}
		// Opponent is adjacent: jump straight over, or side-step if blocked.
		if jump := to.add(d); q.open(st, to, jump) {
			moves = append(moves, Action{Type: Pawn, At: jump})
			continue
		}
		for _, side := range []Pos{{d.Y, d.X}, {-d.Y, -d.X}} {
			if diag := to.add(side); q.open(st, to, diag) {
				moves = append(moves, Action{Type: Pawn, At: diag})
			}
		}
	}
	return moves
}

func (q *Quoridor) inBounds(p Pos) bool {
	return p.X >= 0 && p.X < q.size && p.Y >= 0 && p.Y < q.size
}

func (q *Quoridor) hasWall(bits uint64, anchor Pos) bool {
	if anchor.X < 0 || anchor.Y < 0 || anchor.X >= q.size-1 || anchor.Y >= q.size-1 {
		return false
	}
	return bits&anchorBit(anchor) != 0
}

// open reports whether a single orthogonal step from -> to stays on the board
// and crosses no wall.
func (q *Quoridor) open(st State, from, to Pos) bool {
	if !q.inBounds(to) {
		return false
	}
	switch {
	case to.Y == from.Y+1:
		return !q.hasWall(st.H, Pos{from.X, from.Y}) && !q.hasWall(st.H, Pos{from.X - 1, from.Y})
	case to.Y == from.Y-1:
		return !q.hasWall(st.H, Pos{from.X, to.Y}) && !q.hasWall(st.H, Pos{from.X - 1, to.Y})
	case to.X == from.X+1:
		return !q.hasWall(st.V, Pos{from.X, from.Y}) && !q.hasWall(st.V, Pos{from.X, from.Y - 1})
	case to.X == from.X-1:
		return !q.hasWall(st.V, Pos{to.X, from.Y}) && !q.hasWall(st.V, Pos{to.X, from.Y - 1})
	}
	return false
}

func (q *Quoridor) canPlace(st State, t ActionType, at Pos) bool {
	switch t {
	case HWall:
		if q.hasWall(st.H, at) || q.hasWall(st.H, Pos{at.X - 1, at.Y}) || q.hasWall(st.H, Pos{at.X + 1, at.Y}) {
			return false
		}
		if q.hasWall(st.V, at) {
			return false
		}
	case VWall:
		if q.hasWall(st.V, at) || q.hasWall(st.V, Pos{at.X, at.Y - 1}) || q.hasWall(st.V, Pos{at.X, at.Y + 1}) {
			return false
		}
		if q.hasWall(st.H, at) {
			return false
		}
	default:
		return false
	}
	next := st.WithWall(t, at)
	return q.hasPath(next, game.Player1) && q.hasPath(next, game.Player2)
}

// hasPath runs a breadth-first search over cells, ignoring pawns.
func (q *Quoridor) hasPath(st State, p game.Player) bool {
	start, goal := st.pawn(p), q.goalRow(p)
	seen := make([]bool, q.size*q.size)
	seen[start.Y*q.size+start.X] = true
	queue := []Pos{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.Y == goal {
			return true
		}
		for _, d := range directions {
			next := cur.add(d)
			if !q.open(st, cur, next) || seen[next.Y*q.size+next.X] {
				continue
			}
			seen[next.Y*q.size+next.X] = true
			queue = append(queue, next)
		}
	}
	return false
}

func (q *Quoridor) Successor(s game.State, a game.Action) game.State {
	st := s.(State)
	act := a.(Action)
	switch act.Type {
	case Pawn:
		st = st.withPawn(st.Turn, act.At)
	case HWall, VWall:
		st = st.WithWall(act.Type, act.At)
		if st.Turn == game.Player1 {
			st.Walls1--
		} else {
			st.Walls2--
		}
	}
	st.Turn = st.Turn.Opponent()
	return st
}

// Winner returns the player whose pawn reached its goal row, or game.NoPlayer.
func (q *Quoridor) Winner(s game.State) game.Player {
	st := s.(State)
	switch {
	case st.P1.Y == q.goalRow(game.Player1):
		return game.Player1
	case st.P2.Y == q.goalRow(game.Player2):
		return game.Player2
	}
	return game.NoPlayer
}

func (q *Quoridor) IsEnd(s game.State) bool {
	return q.Winner(s) != game.NoPlayer
}

func (q *Quoridor) Utility(s game.State, player game.Player) float64 {
	switch q.Winner(s) {
	case game.NoPlayer:
		return 0
	case player:
		return WinBonus
	default:
		return -WinBonus
	}
}

func (q *Quoridor) Player(s game.State) game.Player {
	return s.(State).Turn
}

func (q *Quoridor) WinBonus() float64 {
	return WinBonus
}

func (q *Quoridor) Kind(a game.Action) game.ActionKind {
	if a.(Action).Type == Pawn {
		return game.PawnMove
	}
	return game.WallPlacement
}

// ForwardAction returns the single step straight toward the mover's goal row
// when it is legal.
func (q *Quoridor) ForwardAction(s game.State) (game.Action, bool) {
	st := s.(State)
	me := st.pawn(st.Turn)
	step := Pos{0, 1}
	if st.Turn == game.Player2 {
		step = Pos{0, -1}
	}
	to := me.add(step)
	if !q.open(st, me, to) || to == st.pawn(st.Turn.Opponent()) {
		return nil, false
	}
	return Action{Type: Pawn, At: to}, true
}
