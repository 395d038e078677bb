package searcher

import (
	"adversarial/experiments/metrics"
	"adversarial/game"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

// MCTS chooses actions by UCB1-guided Monte Carlo tree search. A fresh tree is
// built for every decision.
type MCTS struct {
	game        game.Game
	rollouts    int
	cutoff      int
	exploration float64
	goroutines  int
	policy      Policy
	evaluate    game.Evaluate
	rng         *rand.Rand
	metrics     metrics.Collector
}

func NewMCTS(g game.Game, options ...Option) (*MCTS, error) {
	s := newSettings(options)
	if s.rollouts <= 0 {
		return nil, errors.Errorf("rollouts must be positive, got %d", s.rollouts)
	}
	if s.cutoff < 0 {
		return nil, errors.Errorf("cutoff must not be negative, got %d", s.cutoff)
	}
	if s.goroutines <= 0 {
		return nil, errors.Errorf("goroutines must be positive, got %d", s.goroutines)
	}

	policy := s.policy
	if policy == nil {
		var err error
		if policy, err = NewPolicy(s.policyName, g); err != nil {
			return nil, err
		}
	}

	return &MCTS{
		game:        g,
		rollouts:    s.rollouts,
		cutoff:      s.cutoff,
		exploration: s.exploration,
		goroutines:  s.goroutines,
		policy:      policy,
		evaluate:    s.evaluate,
		rng:         rand.New(rand.NewSource(s.seed)),
		metrics:     s.metrics,
	}, nil
}

// Decide runs the configured number of rollouts from state and returns the
// most visited root action.
func (m *MCTS) Decide(state game.State) (game.Action, metrics.SearchMetric, error) {
	if m.game.IsEnd(state) {
		return nil, metrics.SearchMetric{}, errors.Wrap(ErrNoLegalActions, "state is terminal")
	}

	m.metrics.Start("mcts", m.goroutines, m.cutoff, 0)
	var actions []game.Action
	var visits []int
	if m.goroutines > 1 {
		var err error
		if actions, visits, err = m.searchParallel(state); err != nil {
			return nil, metrics.SearchMetric{}, err
		}
	} else {
		root, err := m.search(state, m.rollouts, m.rng)
		if err != nil {
			return nil, metrics.SearchMetric{}, err
		}
		actions, visits = root.actions, root.childVisits()
	}
	metric := m.metrics.Complete()

	best := mostVisited(visits)
	if best < 0 {
		return nil, metric, errors.Wrap(ErrNoLegalActions, "root was never expanded")
	}
	log.Debug().Msgf("mcts chose %v with %d of %d visits", actions[best], visits[best], m.rollouts)
	return actions[best], metric, nil
}

func (m *MCTS) search(state game.State, rollouts int, rng *rand.Rand) (*node, error) {
	root := newNode(nil, state)
	m.metrics.AddNode()
	for i := 0; i < rollouts; i++ {
		if err := m.simulate(root, rng); err != nil {
			return nil, err
		}
		m.metrics.AddRollout()
	}
	return root, nil
}

// searchParallel grows independent trees on separate goroutines and sums the
// visit counts of their root children. Every tree enumerates the same root
// actions, so children line up by index.
func (m *MCTS) searchParallel(state game.State) ([]game.Action, []int, error) {
	seeds := make([]uint64, m.goroutines)
	for i := range seeds {
		seeds[i] = m.rng.Uint64()
	}

	roots := make([]*node, m.goroutines)
	var group errgroup.Group
	for i := 0; i < m.goroutines; i++ {
		share := m.rollouts / m.goroutines
		if i < m.rollouts%m.goroutines {
			share++
		}
		group.Go(func() error {
			root, err := m.search(state, share, rand.New(rand.NewSource(seeds[i])))
			roots[i] = root
			return err
		})
	}
	if err := group.Wait(); err != nil {
		return nil, nil, err
	}

	var actions []game.Action
	var visits []int
	for _, root := range roots {
		if len(root.children) == 0 { // Worker had no rollouts to run
			continue
		}
		if actions == nil {
			actions = root.actions
			visits = make([]int, len(root.children))
		}
		for i, child := range root.children {
			visits[i] += child.visits
		}
	}
	return actions, visits, nil
}

// simulate runs one select, expand, rollout and backup iteration.
func (m *MCTS) simulate(root *node, rng *rand.Rand) error {
	leaf := selectLeaf(root, m.exploration)
	if !m.game.IsEnd(leaf.state) {
		if err := leaf.expand(m.game); err != nil {
			return err
		}
		for range leaf.children {
			m.metrics.AddNode()
		}
		leaf = selectLeaf(leaf, m.exploration)
	}

	reward, err := m.rollout(leaf.state, rng)
	if err != nil {
		return err
	}
	backup(leaf, reward)
	return nil
}

// rollout plays the policy from state until the game ends or the cutoff is
// reached. The returned reward is from the perspective of the player who moved
// into state.
func (m *MCTS) rollout(state game.State, rng *rand.Rand) (float64, error) {
	mover := m.game.Player(state)
	depth := 0
	for !m.game.IsEnd(state) && (m.cutoff == 0 || depth < m.cutoff) {
		action, ok := m.policy.Choose(state, rng)
		if !ok {
			return 0, errors.Wrapf(ErrNoLegalActions, "rollout stuck after %d moves", depth)
		}
		state = m.game.Successor(state, action)
		depth++
	}

	var score float64
	if m.game.IsEnd(state) {
		m.metrics.AddFullPlayout()
		score = m.game.Utility(state, mover)
	} else { // At cutoff state, fall back to the heuristic
		score = m.evaluate(state, mover)
	}
	return -m.discount(score, depth), nil
}

// discount normalizes score by the win bonus and, when playouts are capped,
// weights it by how early in the playout it was reached.
func (m *MCTS) discount(score float64, depth int) float64 {
	if bonus := m.game.WinBonus(); bonus > 0 {
		score /= bonus
	}
	if m.cutoff > 0 {
		score *= float64(m.cutoff-depth+1) / float64(m.cutoff)
	}
	return score
}
