package engine

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/require"
)

type item struct {
	Hook[*item]
	key int
}

func itemKey(it *item) int {
	return it.key
}

func newIntTree(t *testing.T) *Tree[*item, int] {
	t.Helper()
	tree, err := New(Config[*item, int]{
		Key:      itemKey,
		Compare:  cmp.Compare[int],
		Paranoid: true,
	})
	require.NoError(t, err)
	return tree
}

// fill inserts keys in the given order and checks invariants after each insert.
func fill(t *testing.T, tree *Tree[*item, int], keys ...int) map[int]*item {
	t.Helper()
	items := make(map[int]*item, len(keys))
	for _, k := range keys {
		it := &item{key: k}
		require.NoError(t, tree.Insert(it))
		require.NoError(t, tree.Check())
		items[k] = it
	}
	return items
}

func span(from, to int) []int {
	keys := make([]int, 0, to-from)
	for k := from; k < to; k++ {
		keys = append(keys, k)
	}
	return keys
}

func keysOf(items []*item) []int {
	keys := make([]int, len(items))
	for i, it := range items {
		keys[i] = it.key
	}
	return keys
}

func treeKeys(tree *Tree[*item, int]) []int {
	var keys []int
	tree.Walk(func(it *item) bool {
		keys = append(keys, it.key)
		return true
	})
	return keys
}

// adopt hand-wires a tree for tests of special shapes.
func adopt(tree *Tree[*item, int], root *item, count int, nodes ...*item) {
	for _, n := range nodes {
		n.owner = tree.id
	}
	tree.root = root
	tree.count = count
}

func assertDetached(t *testing.T, it *item) {
	t.Helper()
	require.False(t, it.Attached(), "node %d still attached", it.key)
	require.Nil(t, it.Parent())
	require.Nil(t, it.Left())
	require.Nil(t, it.Right())
	l, r := it.Counts()
	require.Zero(t, l)
	require.Zero(t, r)
}
