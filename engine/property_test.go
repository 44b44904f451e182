package engine

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// model is a sorted slice of keys the tree is compared against.
type model []int

func (m model) index(k int) (int, bool) {
	i := sort.SearchInts(m, k)
	return i, i < len(m) && m[i] == k
}

func (m model) insert(k int) model {
	i, _ := m.index(k)
	m = append(m, 0)
	copy(m[i+1:], m[i:])
	m[i] = k
	return m
}

func (m model) remove(k int) model {
	i, _ := m.index(k)
	return append(m[:i], m[i+1:]...)
}

func TestRandomOperationsAgainstModel(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for trial := 0; trial < 50; trial++ {
		tree := newIntTree(t)
		items := make(map[int]*item)
		var m model
		for op := 0; op < 200; op++ {
			k := rnd.Intn(101)
			_, present := m.index(k)
			switch r := rnd.Float64(); {
			case r < 0.55:
				it := &item{key: k}
				err := tree.Insert(it)
				if present {
					require.ErrorIs(t, err, ErrDuplicateKey)
					continue
				}
				require.NoError(t, err)
				items[k] = it
				m = m.insert(k)
			case r < 0.85:
				_, err := tree.RemoveKey(k)
				if !present {
					require.ErrorIs(t, err, ErrNotFound)
					continue
				}
				require.NoError(t, err)
				assertDetached(t, items[k])
				delete(items, k)
				m = m.remove(k)
			case r < 0.95:
				rank, err := tree.RankOf(k)
				if !present {
					require.ErrorIs(t, err, ErrNotFound)
					continue
				}
				require.NoError(t, err)
				i, _ := m.index(k)
				require.Equal(t, i, rank)
			default:
				tree.Balance()
			}
			require.Equal(t, len(m), tree.Len())
		}
		require.NoError(t, tree.Check())
		require.Equal(t, append([]int{}, m...), keysOrEmpty(tree))
		for i, k := range m {
			near := keysOf(tree.NearBy(items[k], 2, 3))
			lo, hi := max(i-2, 0), min(i+4, len(m))
			require.Equal(t, []int(m[lo:hi]), near)
		}
		if len(m) > 0 {
			target := rnd.Intn(len(m) + 1)
			removed := tree.Prune(target, nil)
			require.Equal(t, len(m)-removed, tree.Len())
			require.NoError(t, tree.Check())
			if target > 0 {
				require.Equal(t, target, tree.Len())
			}
		}
	}
}
