package quoridor

import (
	"testing"

	"adversarial/game"

	"github.com/stretchr/testify/require"
)

func newGame(t *testing.T, size, walls int) *Quoridor {
	t.Helper()
	q, err := New(size, walls)
	require.NoError(t, err)
	return q
}

func pawnTargets(actions []game.Action) []Pos {
	var got []Pos
	for _, a := range actions {
		if act := a.(Action); act.Type == Pawn {
			got = append(got, act.At)
		}
	}
	return got
}

func TestNew(t *testing.T) {
	_, err := New(2, 0)
	require.Error(t, err, "Should reject boards smaller than 3")
	_, err = New(10, 0)
	require.Error(t, err, "Should reject boards larger than 9")
	_, err = New(5, -1)
	require.Error(t, err, "Should reject negative wall counts")
}

func TestStart(t *testing.T) {
	q := newGame(t, 5, 3)
	s := q.Start().(State)

	require.Equal(t, Pos{2, 0}, s.P1)
	require.Equal(t, Pos{2, 4}, s.P2)
	require.Equal(t, 3, s.Walls1)
	require.Equal(t, 3, s.Walls2)
	require.Equal(t, game.Player1, q.Player(s))
	require.False(t, q.IsEnd(s))
}

func TestPawnMoves(t *testing.T) {
	q := newGame(t, 5, 0)

	t.Run("open board steps", func(t *testing.T) {
		s := State{P1: Pos{2, 2}, P2: Pos{0, 4}, Turn: game.Player1}
		got := pawnTargets(q.Actions(s))
		require.ElementsMatch(t, []Pos{{2, 3}, {2, 1}, {1, 2}, {3, 2}}, got)
	})

	t.Run("board edge limits steps", func(t *testing.T) {
		s := State{P1: Pos{0, 0}, P2: Pos{4, 4}, Turn: game.Player1}
		got := pawnTargets(q.Actions(s))
		require.ElementsMatch(t, []Pos{{0, 1}, {1, 0}}, got)
	})

	t.Run("jump over adjacent opponent", func(t *testing.T) {
		s := State{P1: Pos{2, 1}, P2: Pos{2, 2}, Turn: game.Player1}
		got := pawnTargets(q.Actions(s))
		require.Contains(t, got, Pos{2, 3})
		require.NotContains(t, got, Pos{2, 2})
	})

	t.Run("side-step when jump is blocked by a wall", func(t *testing.T) {
		s := State{P1: Pos{2, 1}, P2: Pos{2, 2}, Turn: game.Player1}.WithWall(HWall, Pos{2, 2})
		got := pawnTargets(q.Actions(s))
		require.NotContains(t, got, Pos{2, 3})
		require.Contains(t, got, Pos{1, 2})
		require.Contains(t, got, Pos{3, 2})
	})

	t.Run("walls block steps", func(t *testing.T) {
		s := State{P1: Pos{2, 2}, P2: Pos{0, 4}, Turn: game.Player1}.
			WithWall(HWall, Pos{1, 2}).
			WithWall(VWall, Pos{2, 1})
		got := pawnTargets(q.Actions(s))
		require.ElementsMatch(t, []Pos{{2, 1}, {1, 2}}, got)
	})
}

func TestWallPlacement(t *testing.T) {
	q := newGame(t, 5, 2)
	start := q.Start().(State)

	t.Run("wall actions follow pawn moves", func(t *testing.T) {
		actions := q.Actions(start)
		seenWall := false
		for _, a := range actions {
			if a.(Action).Type == Pawn {
				require.False(t, seenWall, "Pawn moves should come first")
			} else {
				seenWall = true
			}
		}
		require.True(t, seenWall)
	})

	t.Run("overlapping and crossing walls are rejected", func(t *testing.T) {
		s := start.WithWall(HWall, Pos{1, 1})
		require.False(t, q.canPlace(s, HWall, Pos{1, 1}))
		require.False(t, q.canPlace(s, HWall, Pos{0, 1}))
		require.False(t, q.canPlace(s, HWall, Pos{2, 1}))
		require.False(t, q.canPlace(s, VWall, Pos{1, 1}))
		require.True(t, q.canPlace(s, HWall, Pos{3, 1}))
		require.True(t, q.canPlace(s, VWall, Pos{0, 1}))
	})

	t.Run("walls that cut off a goal are rejected", func(t *testing.T) {
		s := start.WithWall(HWall, Pos{0, 0}).WithWall(HWall, Pos{2, 0})
		require.False(t, q.canPlace(s, VWall, Pos{3, 0}), "Should keep player 1's path to row 4 open")
	})

	t.Run("placing a wall spends one wall and passes the turn", func(t *testing.T) {
		next := q.Successor(start, Action{Type: VWall, At: Pos{0, 0}}).(State)
		require.Equal(t, 1, next.Walls1)
		require.Equal(t, 2, next.Walls2)
		require.Equal(t, game.Player2, next.Turn)
		require.Equal(t, State{}.WithWall(VWall, Pos{0, 0}).V, next.V)
		require.Equal(t, 2, start.Walls1, "Should not mutate the input state")
	})

	t.Run("no walls in hand means pawn moves only", func(t *testing.T) {
		s := start
		s.Walls1 = 0
		for _, a := range q.Actions(s) {
			require.Equal(t, game.PawnMove, q.Kind(a))
		}
	})
}

func TestTermination(t *testing.T) {
	q := newGame(t, 3, 0)

	won := State{P1: Pos{1, 2}, P2: Pos{2, 2}, Turn: game.Player2}
	require.True(t, q.IsEnd(won))
	require.Equal(t, WinBonus, q.Utility(won, game.Player1))
	require.Equal(t, -WinBonus, q.Utility(won, game.Player2))

	lost := State{P1: Pos{1, 1}, P2: Pos{0, 0}, Turn: game.Player1}
	require.Equal(t, game.Player2, q.Winner(lost))

	playing := State{P1: Pos{1, 1}, P2: Pos{2, 2}, Turn: game.Player1}
	require.False(t, q.IsEnd(playing))
	require.Equal(t, 0.0, q.Utility(playing, game.Player1))
}

func TestForwardAction(t *testing.T) {
	q := newGame(t, 5, 0)

	t.Run("player 1 steps up", func(t *testing.T) {
		a, ok := q.ForwardAction(State{P1: Pos{2, 0}, P2: Pos{2, 4}, Turn: game.Player1})
		require.True(t, ok)
		require.Equal(t, Action{Type: Pawn, At: Pos{2, 1}}, a)
	})

	t.Run("player 2 steps down", func(t *testing.T) {
		a, ok := q.ForwardAction(State{P1: Pos{2, 0}, P2: Pos{2, 4}, Turn: game.Player2})
		require.True(t, ok)
		require.Equal(t, Action{Type: Pawn, At: Pos{2, 3}}, a)
	})

	t.Run("blocked by a wall", func(t *testing.T) {
		s := State{P1: Pos{2, 0}, P2: Pos{2, 4}, Turn: game.Player1}.WithWall(HWall, Pos{1, 0})
		_, ok := q.ForwardAction(s)
		require.False(t, ok)
	})

	t.Run("blocked by the opponent", func(t *testing.T) {
		_, ok := q.ForwardAction(State{P1: Pos{2, 1}, P2: Pos{2, 2}, Turn: game.Player1})
		require.False(t, ok)
	})
}

func TestParseAction(t *testing.T) {
	q := newGame(t, 5, 2)

	for _, text := range []string{"pawn 2 1", "h 0 3", "v 1 1"} {
		a, err := q.ParseAction(text)
		require.NoError(t, err)
		require.Equal(t, text, q.FormatAction(a))
	}

	_, err := q.ParseAction("diag 1 1")
	require.Error(t, err)
	_, err = q.ParseAction("pawn")
	require.Error(t, err)
}

func TestRender(t *testing.T) {
	q := newGame(t, 3, 1)
	s := q.Start().(State).WithWall(HWall, Pos{0, 0})
	out := q.Render(s)
	require.Contains(t, out, " 1 ")
	require.Contains(t, out, " 2 ")
	require.Contains(t, out, "---")
	require.Contains(t, out, "player 1 = 1")
}
