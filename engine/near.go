package engine

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// NearBy splays n to the root and returns n together with up to before
// predecessors and up to after successors, in ascending key order. Fewer
// neighbors than requested are not an error.
func (t *Tree[N, K]) NearBy(n N, before, after int) []N {
	if absent(n) {
		return nil
	}
	invariant(t.Owns(n), "NearBy called with a node of another tree")
	t.splay(n)
	h := hook(n)
	result := make([]N, 0, 1+max(before, 0)+max(after, 0))
	result = append(result, n)
	if before > 0 && !absent(h.left) {
		prev := h.left
		for !absent(hook(prev).right) {
			prev = hook(prev).right
		}
		walkFrom(prev, reverse, func(x N) bool {
			result = append(result, x)
			before--
			return before > 0
		})
	}
	if after > 0 && !absent(h.right) {
		next := h.right
		for !absent(hook(next).left) {
			next = hook(next).left
		}
		walkFrom(next, forward, func(x N) bool {
			result = append(result, x)
			after--
			return after > 0
		})
	}
	slices.SortFunc(result, func(a, b N) int {
		return t.cfg.Compare(t.cfg.Key(a), t.cfg.Key(b))
	})
	return result
}

// Rank splays n to the root and returns the number of entries with keys
// smaller than n's.
func (t *Tree[N, K]) Rank(n N) (int, error) {
	if !t.Owns(n) {
		return 0, fmt.Errorf("%w: cannot rank node", ErrForeignNode)
	}
	t.splay(n)
	return hook(n).leftCount, nil
}

// RankOf returns the rank of the entry with key k, or ErrNotFound.
func (t *Tree[N, K]) RankOf(k K) (int, error) {
	n := t.find(k)
	if absent(n) {
		return 0, fmt.Errorf("%w: %v", ErrNotFound, k)
	}
	return t.Rank(n)
}
