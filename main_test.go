package main

import (
	"testing"

	"adversarial/agent"
	"adversarial/game"

	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		opts, err := parseFlags(nil)
		require.NoError(t, err)
		require.Equal(t, modeEvaluate, opts.mode)
		require.Equal(t, "quoridor", opts.config.Game)
		require.Equal(t, agent.MCTS, opts.config.Player1.Name)
		require.Equal(t, agent.Random, opts.config.Player2.Name)
		require.Equal(t, 10, opts.config.Trials)
	})

	t.Run("player settings", func(t *testing.T) {
		opts, err := parseFlags([]string{
			"-g", "TicTacToe", "-p1", "alphabeta", "-p1_depth", "4",
			"-p2", "quoridor-mcts", "-p2_weights", "1,2,0,0,0,0", "-p2_policy", "forward_or_random",
			"-trials", "3", "-seed", "9",
		})
		require.NoError(t, err)
		require.Equal(t, "tictactoe", opts.config.Game)
		require.Equal(t, 4, opts.config.Player1.Depth)
		require.Equal(t, game.Weights{1, 2, 0, 0, 0, 0}, opts.config.Player2.Weights)
		require.Equal(t, "forward_or_random", opts.config.Player2.Policy)
		require.Equal(t, uint64(9), opts.config.Seed)
	})

	t.Run("play mode is a single game", func(t *testing.T) {
		opts, err := parseFlags([]string{"-mode", "play", "-trials", "5", "-workers", "4"})
		require.NoError(t, err)
		require.Equal(t, 1, opts.config.Trials)
		require.Equal(t, 1, opts.config.Workers)
	})

	t.Run("invalid choices", func(t *testing.T) {
		for _, args := range [][]string{
			{"-mode", "train"},
			{"-s", "7"},
			{"-trials", "0"},
			{"-p1_weights", "1,a"},
			{"-out", "records", "-format", "json"},
			{"-p2", "oracle"},
			{"-p1", "alphabeta", "-p1_depth", "-3"},
		} {
			_, err := parseFlags(args)
			require.Error(t, err, "%v", args)
		}
	})
}
