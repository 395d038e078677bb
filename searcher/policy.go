package searcher

import (
	"maps"
	"slices"

	"adversarial/game"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// Rollout policy names
const (
	PolicyRandom      = "random"
	PolicyRandomPawn  = "random_pmove"
	PolicyForward     = "forward_or_random"
	PolicyForwardPawn = "forward_or_random_pmove"
)

// Policy picks actions during playouts. Implementations must be safe for
// concurrent use; all randomness comes from rng.
type Policy interface {
	// Choose returns false when state has no legal actions.
	Choose(state game.State, rng *rand.Rand) (game.Action, bool)
}

var policies = map[string]func(g game.Game) (Policy, error){
	PolicyRandom: func(g game.Game) (Policy, error) {
		return uniform{game: g}, nil
	},
	PolicyRandomPawn: func(g game.Game) (Policy, error) {
		return newPawnOnly(g)
	},
	PolicyForward: func(g game.Game) (Policy, error) {
		return newForward(g, uniform{game: g})
	},
	PolicyForwardPawn: func(g game.Game) (Policy, error) {
		fallback, err := newPawnOnly(g)
		if err != nil {
			return nil, err
		}
		return newForward(g, fallback)
	},
}

// NewPolicy builds the named rollout policy for g.
func NewPolicy(name string, g game.Game) (Policy, error) {
	build, ok := policies[name]
	if !ok {
		return nil, errors.Wrapf(ErrInvalidPolicy, "unknown policy %q", name)
	}
	return build(g)
}

func PolicyNames() []string {
	return slices.Sorted(maps.Keys(policies))
}

// uniform picks any legal action with equal probability.
type uniform struct {
	game game.Game
}

func (p uniform) Choose(state game.State, rng *rand.Rand) (game.Action, bool) {
	actions := p.game.Actions(state)
	if len(actions) == 0 {
		return nil, false
	}
	return actions[rng.Intn(len(actions))], true
}

// restricted picks uniformly among actions of one kind, or among all actions
// when none of that kind are legal.
type restricted struct {
	game       game.Game
	classifier game.Classifier
	kind       game.ActionKind
}

func newPawnOnly(g game.Game) (Policy, error) {
	classifier, ok := g.(game.Classifier)
	if !ok {
		return nil, errors.Wrap(ErrInvalidPolicy, "game does not classify actions")
	}
	return restricted{game: g, classifier: classifier, kind: game.PawnMove}, nil
}

func (p restricted) Choose(state game.State, rng *rand.Rand) (game.Action, bool) {
	actions := p.game.Actions(state)
	if len(actions) == 0 {
		return nil, false
	}

	var matching []game.Action
	for _, action := range actions {
		if p.classifier.Kind(action) == p.kind {
			matching = append(matching, action)
		}
	}
	if len(matching) == 0 {
		matching = actions
	}
	return matching[rng.Intn(len(matching))], true
}

// forward takes the game's advancing action when there is one and otherwise
// defers to a fallback policy.
type forward struct {
	advancer game.Advancer
	fallback Policy
}

func newForward(g game.Game, fallback Policy) (Policy, error) {
	advancer, ok := g.(game.Advancer)
	if !ok {
		return nil, errors.Wrap(ErrInvalidPolicy, "game has no forward action")
	}
	return forward{advancer: advancer, fallback: fallback}, nil
}

func (p forward) Choose(state game.State, rng *rand.Rand) (game.Action, bool) {
	if action, ok := p.advancer.ForwardAction(state); ok {
		return action, true
	}
	return p.fallback.Choose(state, rng)
}
