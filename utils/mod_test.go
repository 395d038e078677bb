package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 1, FindIndex([]string{"a", "b", "b"}, "b"), "Should return the first match")
	require.Equal(t, -1, FindIndex([]int{1, 2}, 3))
	require.Equal(t, -1, FindIndex([]float64(nil), 0.5))
}
