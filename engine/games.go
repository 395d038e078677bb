package engine

import (
	"maps"
	"slices"

	"adversarial/game"
	"adversarial/game/quoridor"
	"adversarial/game/tictactoe"

	"github.com/pkg/errors"
)

// Game names
const (
	Quoridor  = "quoridor"
	TicTacToe = "tictactoe"
)

var ErrUnknownGame = errors.New("unknown game")

var games = map[string]func(size, walls int) (game.Game, error){
	Quoridor: func(size, walls int) (game.Game, error) {
		return quoridor.New(size, walls)
	},
	TicTacToe: func(int, int) (game.Game, error) {
		return tictactoe.New(), nil
	},
}

// NewGame builds the named game. Size and walls only apply to quoridor.
func NewGame(name string, size, walls int) (game.Game, error) {
	build, ok := games[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownGame, "%q (choose from %v)", name, GameNames())
	}
	g, err := build(size, walls)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create %s", name)
	}
	return g, nil
}

func GameNames() []string {
	return slices.Sorted(maps.Keys(games))
}
