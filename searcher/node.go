package searcher

import (
	"math"

	"adversarial/game"

	"github.com/pkg/errors"
)

// node is one explored position. A node is owned by the tree built for a
// single decision; parent is a back-reference used by backup and by ucb1's
// parent-visit term.
type node struct {
	state    game.State
	parent   *node
	actions  []game.Action // actions[i] leads to children[i]
	children []*node
	rewards  float64 // U, from the perspective of the player who moved into this node
	visits   int     // N
}

func newNode(parent *node, state game.State) *node {
	return &node{
		parent: parent,
		state:  state,
	}
}

// expand materializes one child per legal action, in enumeration order.
func (n *node) expand(g game.Game) error {
	actions := g.Actions(n.state)
	if len(actions) == 0 {
		return errors.Wrap(ErrNoLegalActions, "cannot expand non-terminal state")
	}

	n.actions = actions
	n.children = make([]*node, len(actions))
	for i, action := range actions {
		n.children[i] = newNode(n, g.Successor(n.state, action))
	}
	return nil
}

// pickChild returns the child with the highest UCB1 score. Unvisited children
// win immediately and ties go to the earliest child.
func (n *node) pickChild(exploration float64) *node {
	lnN := math.Log(float64(n.visits))

	var best *node
	maxScore := math.Inf(-1)
	for _, child := range n.children {
		score := ucb1(child.rewards, child.visits, exploration, lnN)
		if math.IsInf(score, 1) {
			return child
		}
		if best == nil || score > maxScore {
			maxScore = score
			best = child
		}
	}
	return best
}

// selectLeaf descends from n by UCB1 until it reaches a node without children.
func selectLeaf(n *node, exploration float64) *node {
	for len(n.children) > 0 {
		n = n.pickChild(exploration)
	}
	return n
}

// backup records a reward on every node from n up to the root. The sign flips
// at each level since consecutive levels belong to opposing players.
func backup(n *node, reward float64) {
	for n != nil {
		n.visits++
		n.rewards += reward
		reward = -reward
		n = n.parent
	}
}

func (n *node) childVisits() []int {
	visits := make([]int, len(n.children))
	for i, child := range n.children {
		visits[i] = child.visits
	}
	return visits
}

// mostVisited returns the index of the largest count, earliest on ties, or -1.
func mostVisited(visits []int) int {
	best := -1
	for i, v := range visits {
		if best == -1 || v > visits[best] {
			best = i
		}
	}
	return best
}
