package searcher

import (
	"testing"

	"adversarial/game"
	"adversarial/game/tictactoe"

	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	g := tictactoe.New()
	root := newNode(nil, g.Start())
	require.NoError(t, root.expand(g))

	require.Len(t, root.children, 9)
	require.Len(t, root.actions, 9)
	for i, child := range root.children {
		require.Same(t, root, child.parent)
		require.Equal(t, g.Successor(root.state, root.actions[i]), child.state)
	}
}

func TestPickChild(t *testing.T) {
	parent := &node{visits: 3}
	a := &node{parent: parent, visits: 1, rewards: 1}
	b := &node{parent: parent, visits: 1, rewards: 1}
	c := &node{parent: parent, visits: 1, rewards: -1}
	parent.children = []*node{a, b, c}

	require.Same(t, a, parent.pickChild(DefaultExploration), "Should keep the earliest child on ties")

	d := &node{parent: parent}
	parent.children = append(parent.children, d)
	require.Same(t, d, parent.pickChild(DefaultExploration), "Should prefer an unvisited child")
}

func TestBackup(t *testing.T) {
	root := &node{}
	child := &node{parent: root}
	grandChild := &node{parent: child}

	backup(grandChild, 1)
	backup(grandChild, 0.5)

	require.Equal(t, 2, grandChild.visits)
	require.Equal(t, 2, child.visits)
	require.Equal(t, 2, root.visits)
	require.InDelta(t, 1.5, grandChild.rewards, 1e-9)
	require.InDelta(t, -1.5, child.rewards, 1e-9, "Should flip sign for the opponent")
	require.InDelta(t, 1.5, root.rewards, 1e-9)
}

func TestMostVisited(t *testing.T) {
	require.Equal(t, -1, mostVisited(nil))
	require.Equal(t, 1, mostVisited([]int{2, 5, 5, 1}), "Should keep the earliest maximum")
}

func TestSelectLeaf(t *testing.T) {
	g := tictactoe.New()
	root := newNode(nil, g.Start())
	require.Same(t, root, selectLeaf(root, DefaultExploration))

	require.NoError(t, root.expand(g))
	leaf := selectLeaf(root, DefaultExploration)
	require.Same(t, root.children[0], leaf)
	require.Equal(t, tictactoe.Move(1), root.actions[0])
	require.Equal(t, game.Player2, g.Player(leaf.state))
}
