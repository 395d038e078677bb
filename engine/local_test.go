package engine

import (
	"testing"

	"adversarial/agent"
	"adversarial/experiments/metrics"
	"adversarial/game"
	"adversarial/game/quoridor"
	"adversarial/game/tictactoe"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

// scripted plays a fixed list of actions.
type scripted struct {
	actions []game.Action
}

func (a *scripted) Action(game.State) (game.Action, metrics.SearchMetric, error) {
	if len(a.actions) == 0 {
		return nil, metrics.SearchMetric{}, errors.New("script exhausted")
	}
	action := a.actions[0]
	a.actions = a.actions[1:]
	return action, metrics.SearchMetric{Searcher: "scripted"}, nil
}

func moves(cells ...int) []game.Action {
	actions := make([]game.Action, len(cells))
	for i, c := range cells {
		actions[i] = tictactoe.Move(c)
	}
	return actions
}

func TestLocalRun(t *testing.T) {
	g := tictactoe.New()

	t.Run("player 1 wins", func(t *testing.T) {
		steps := 0
		e := NewLocal(g, &scripted{moves(1, 2, 3)}, &scripted{moves(4, 5)},
			WithObserver(func(step int, player game.Player, action game.Action, state game.State) {
				steps++
				require.Equal(t, steps, step)
			}))

		gameMetric, moveMetrics, err := e.Run()
		require.NoError(t, err)
		require.Equal(t, 1, gameMetric.Winner)
		require.Equal(t, 1, gameMetric.StartingPlayer)
		require.Equal(t, 5, gameMetric.TotalMoves)
		require.InDelta(t, 1.0, gameMetric.Utility, 1e-9)
		require.Equal(t, 5, steps)

		require.Len(t, moveMetrics, 5)
		require.Equal(t, 2, moveMetrics[1].Player)
		require.Equal(t, "4", moveMetrics[1].Action)
		require.Equal(t, "scripted", moveMetrics[1].Searcher)
	})

	t.Run("drawn board", func(t *testing.T) {
		e := NewLocal(g, &scripted{moves(1, 3, 4, 8, 9)}, &scripted{moves(2, 5, 6, 7)})
		gameMetric, _, err := e.Run()
		require.NoError(t, err)
		require.Equal(t, 0, gameMetric.Winner)
		require.Equal(t, 9, gameMetric.TotalMoves)
	})

	t.Run("agent error stops the game", func(t *testing.T) {
		e := NewLocal(g, &scripted{moves(1)}, &scripted{})
		_, moveMetrics, err := e.Run()
		require.Error(t, err)
		require.Contains(t, err.Error(), "player 2")
		require.Len(t, moveMetrics, 1)
	})
}

func TestRoundCap(t *testing.T) {
	q, err := quoridor.New(5, 0)
	require.NoError(t, err)

	// Both pawns shuffle sideways forever.
	left := quoridor.Action{Type: quoridor.Pawn, At: quoridor.Pos{X: 1, Y: 0}}
	right := quoridor.Action{Type: quoridor.Pawn, At: quoridor.Pos{X: 2, Y: 0}}
	var p1 []game.Action
	for i := 0; i < 3; i++ {
		p1 = append(p1, left, right)
	}
	left2 := quoridor.Action{Type: quoridor.Pawn, At: quoridor.Pos{X: 1, Y: 4}}
	right2 := quoridor.Action{Type: quoridor.Pawn, At: quoridor.Pos{X: 2, Y: 4}}
	var p2 []game.Action
	for i := 0; i < 3; i++ {
		p2 = append(p2, left2, right2)
	}

	e := NewLocal(q, &scripted{p1}, &scripted{p2}, WithMaxRounds(3))
	gameMetric, moveMetrics, err := e.Run()
	require.NoError(t, err)
	require.Equal(t, 0, gameMetric.Winner, "Should call a draw at the cap")
	require.Zero(t, gameMetric.Utility)
	require.Len(t, moveMetrics, 6)
}

func TestSelfPlay(t *testing.T) {
	g := tictactoe.New()
	a1, err := agent.New(g, agent.Config{Name: agent.AlphaBeta, Player: game.Player1, Depth: 9})
	require.NoError(t, err)
	a2, err := agent.New(g, agent.Config{Name: agent.AlphaBeta, Player: game.Player2, Depth: 9})
	require.NoError(t, err)

	gameMetric, _, err := NewLocal(g, a1, a2).Run()
	require.NoError(t, err)
	require.Equal(t, 0, gameMetric.Winner, "Perfect play draws")
	require.Equal(t, 9, gameMetric.TotalMoves)
}

func TestNewGame(t *testing.T) {
	g, err := NewGame(Quoridor, 5, 3)
	require.NoError(t, err)
	require.IsType(t, &quoridor.Quoridor{}, g)

	_, err = NewGame(TicTacToe, 0, 0)
	require.NoError(t, err)

	_, err = NewGame(Quoridor, 4, 3)
	require.NoError(t, err)

	_, err = NewGame(Quoridor, 12, 3)
	require.Error(t, err)

	_, err = NewGame("chess", 0, 0)
	require.ErrorIs(t, err, ErrUnknownGame)
	require.Contains(t, err.Error(), "chess")
}
