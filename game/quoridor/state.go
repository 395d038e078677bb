package quoridor

import "adversarial/game"

// Pos is a board cell. Y grows toward player 1's goal row.
type Pos struct {
	X, Y int
}

func (p Pos) add(d Pos) Pos {
	return Pos{X: p.X + d.X, Y: p.Y + d.Y}
}

func (p Pos) distance(o Pos) int {
	return abs(p.X-o.X) + abs(p.Y-o.Y)
}

// ActionType tags the three kinds of moves.
type ActionType int

const (
	Pawn ActionType = iota
	HWall
	VWall
)

// Action is a pawn destination or a wall anchor, depending on Type.
type Action struct {
	Type ActionType
	At   Pos
}

// State is a comparable snapshot of a position. Wall anchors are bitsets over
// the groove grid, indexed by y*anchorStride + x.
type State struct {
	P1, P2         Pos
	Walls1, Walls2 int
	Turn           game.Player
	H, V           uint64
}

const anchorStride = MaxSize - 1

func anchorBit(p Pos) uint64 {
	return 1 << uint(p.Y*anchorStride+p.X)
}

func (s State) pawn(p game.Player) Pos {
	if p == game.Player1 {
		return s.P1
	}
	return s.P2
}

func (s State) wallsLeft(p game.Player) int {
	if p == game.Player1 {
		return s.Walls1
	}
	return s.Walls2
}

// withPawn returns a copy with the given player's pawn moved to pos.
func (s State) withPawn(p game.Player, pos Pos) State {
	if p == game.Player1 {
		s.P1 = pos
	} else {
		s.P2 = pos
	}
	return s
}

// WithWall returns a copy with a wall anchored at pos, without any legality checks.
func (s State) WithWall(t ActionType, pos Pos) State {
	switch t {
	case HWall:
		s.H |= anchorBit(pos)
	case VWall:
		s.V |= anchorBit(pos)
	}
	return s
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
