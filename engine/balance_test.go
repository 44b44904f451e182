package engine

import (
	"cmp"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func height(n *item) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.Left()), height(n.Right()))
}

func TestBalanceSmallTrees(t *testing.T) {
	for n := 0; n < 3; n++ {
		tree := newIntTree(t)
		fill(t, tree, span(0, n)...)
		root := tree.Root()
		var l, r int
		if root != nil {
			l, r = root.Counts()
		}
		assert.Equal(t, 0, tree.Balance(), "tree of %d entries", n)
		assert.True(t, root == tree.Root(), "tree of %d entries changed its root", n)
		if root != nil {
			gotL, gotR := root.Counts()
			assert.Equal(t, l, gotL)
			assert.Equal(t, r, gotR)
			if n == 2 { // 1 is the root, 0 its left child
				assert.Equal(t, 0, root.Left().key)
				assert.Nil(t, root.Right())
			}
		}
		assert.Equal(t, span(0, n), keysOrEmpty(tree))
	}
}

func keysOrEmpty(tree *Tree[*item, int]) []int {
	keys := treeKeys(tree)
	if keys == nil {
		return []int{}
	}
	return keys
}

func TestBalanceDegenerateChain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "splay")
	defer teardown()

	tree := newIntTree(t)
	fill(t, tree, span(0, 32)...) // ascending inserts leave a left chain
	require.Equal(t, 32, height(tree.Root()))
	depth := tree.Balance()
	assert.Equal(t, 6, depth)
	assert.Equal(t, 6, height(tree.Root()))
	require.NoError(t, tree.Check())
	assert.Equal(t, span(0, 32), treeKeys(tree))
	l, r := tree.Root().Counts()
	assert.LessOrEqual(t, abs(l-r), 1)
}

func TestBalanceRespectsDepthLimit(t *testing.T) {
	tree, err := New(Config[*item, int]{
		Key:               itemKey,
		Compare:           cmp.Compare[int],
		MaxRecursionDepth: 3,
		Paranoid:          true,
	})
	require.NoError(t, err)
	fill(t, tree, span(0, 64)...)
	assert.LessOrEqual(t, tree.Balance(), 3)
	require.NoError(t, tree.Check())
	assert.Equal(t, span(0, 64), treeKeys(tree))
}
