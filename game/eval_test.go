package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWeightsScore(t *testing.T) {
	t.Run("weighted sum of features", func(t *testing.T) {
		w := Weights{1, 2, 0.5}
		got := w.Score([]float64{1, 1, 4}, 0)
		require.Equal(t, 5.0, got, "Should sum w[i]*f[i]")
	})

	t.Run("zero weight never meets an infinite feature", func(t *testing.T) {
		w := Weights{0, 1}
		got := w.Score([]float64{math.Inf(1), 3}, 10)
		require.False(t, math.IsNaN(got), "Should not produce NaN")
		require.Equal(t, 3.0, got)
	})

	t.Run("infinite feature is clamped to the bound", func(t *testing.T) {
		w := Weights{1}
		require.Equal(t, -50.0, w.Score([]float64{math.Inf(-1)}, 50))
		require.Equal(t, 50.0, w.Score([]float64{math.Inf(1)}, 50))
	})

	t.Run("opposing infinities cancel to zero", func(t *testing.T) {
		w := Weights{1, 1}
		got := w.Score([]float64{math.Inf(-1), math.Inf(1)}, 50)
		require.Equal(t, 0.0, got)
	})

	t.Run("all-zero weights degrade to a constant", func(t *testing.T) {
		w := Weights{0, 0, 0, 0, 0, 0}
		require.Equal(t, 0.0, w.Score([]float64{1, 2, 3, 4, 5, 6}, 50))
	})
}

func TestOpponent(t *testing.T) {
	require.Equal(t, Player2, Player1.Opponent())
	require.Equal(t, Player1, Player2.Opponent())
}

func TestParseWeights(t *testing.T) {
	w, err := ParseWeights(" 1, 1.5,0 ")
	require.NoError(t, err)
	require.Equal(t, Weights{1, 1.5, 0}, w)
	require.Equal(t, "1,1.5,0", w.String())

	w, err = ParseWeights("")
	require.NoError(t, err)
	require.Nil(t, w, "Empty text should mean no weights")

	_, err = ParseWeights("1,x")
	require.Error(t, err)
}
