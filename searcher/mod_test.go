package searcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUCB1(t *testing.T) {
	lnN := math.Log(10)

	t.Run("unvisited child scores infinity", func(t *testing.T) {
		require.True(t, math.IsInf(ucb1(0, 0, DefaultExploration, lnN), 1))
	})

	t.Run("higher mean reward ranks higher at equal visits", func(t *testing.T) {
		require.Greater(t, ucb1(3, 5, DefaultExploration, lnN), ucb1(1, 5, DefaultExploration, lnN))
	})

	t.Run("fewer visits ranks higher at equal mean", func(t *testing.T) {
		require.Greater(t, ucb1(1, 2, DefaultExploration, lnN), ucb1(4, 8, DefaultExploration, lnN))
	})

	t.Run("zero exploration is the mean", func(t *testing.T) {
		require.InDelta(t, 0.25, ucb1(1, 4, 0, lnN), 1e-9)
	})
}
