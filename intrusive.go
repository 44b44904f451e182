package splay

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/npillmayer/splay/engine"
)

// Hook carries the tree links and weights of an intrusive node. Embed it into
// the node type:
//
//	type Player struct {
//	    splay.Hook[*Player]
//	    Name  string
//	    Score int
//	}
type Hook[N any] = engine.Hook[N]

// Node is satisfied by pointer types embedding a Hook.
type Node[N any] = engine.Node[N]

// Intrusive is a splay tree over client-owned nodes of type N, ordered by keys
// of type K. Clients may hold on to nodes as stable handles across mutations.
type Intrusive[N Node[N], K any] struct {
	tree *engine.Tree[N, K]
}

// NewIntrusive creates an empty intrusive tree. key extracts the ordering key
// of a node, compare is a three-way comparison of keys.
func NewIntrusive[N Node[N], K any](key func(N) K, compare func(a, b K) int,
	opts ...Option) (*Intrusive[N, K], error) {
	o := collect(opts)
	tree, err := engine.New(engine.Config[N, K]{
		Key:               key,
		Compare:           compare,
		MaxRecursionDepth: o.maxDepth,
		Paranoid:          o.paranoid,
	})
	if err != nil {
		return nil, err
	}
	return &Intrusive[N, K]{tree: tree}, nil
}

// Detached returns a copy of n made by dup, with its hook cleared. The copy is
// independent of the tree n may belong to and can be inserted anywhere.
func Detached[N Node[N]](n N, dup func(N) N) N {
	c := dup(n)
	*c.SplayHook() = Hook[N]{}
	return c
}

// Len returns the number of nodes in the tree.
func (t *Intrusive[N, K]) Len() int {
	return t.tree.Len()
}

// Insert attaches n and makes it the root. It fails with ErrForeignNode if n
// is attached to any tree, and with ErrDuplicateKey if n's key is present.
func (t *Intrusive[N, K]) Insert(n N) error {
	return t.tree.Insert(n)
}

// Remove detaches n. It fails with ErrForeignNode if n is not attached to t.
func (t *Intrusive[N, K]) Remove(n N) error {
	return t.tree.Remove(n)
}

// RemoveKey detaches the node with key k and returns it.
func (t *Intrusive[N, K]) RemoveKey(k K) (N, bool) {
	n, err := t.tree.RemoveKey(k)
	return n, err == nil
}

// Find returns the node with key k.
func (t *Intrusive[N, K]) Find(k K) (N, bool) {
	return t.tree.Find(k)
}

// FindNear returns the node with key k, or the last node on the search path
// for k if k is not present. It reports false for an empty tree only.
func (t *Intrusive[N, K]) FindNear(k K) (N, bool) {
	return t.tree.FindNear(k)
}

// Contains reports whether a node with key k is present. A node found is
// splayed to the root.
func (t *Intrusive[N, K]) Contains(k K) bool {
	n, ok := t.tree.Find(k)
	if ok {
		t.tree.Splay(n)
	}
	return ok
}

// Owns reports whether n is attached to t.
func (t *Intrusive[N, K]) Owns(n N) bool {
	return t.tree.Owns(n)
}

// NearBy returns n together with up to before predecessors and up to after
// successors, in ascending order. A nil n yields an empty result.
func (t *Intrusive[N, K]) NearBy(n N, before, after int) ([]N, error) {
	var zero N
	if n == zero {
		return []N{}, nil
	}
	if !t.tree.Owns(n) {
		return nil, fmt.Errorf("%w: cannot query neighbors", ErrForeignNode)
	}
	return t.tree.NearBy(n, before, after), nil
}

// Forward calls f for n and all greater nodes in ascending order, until f
// returns false.
func (t *Intrusive[N, K]) Forward(n N, f func(N) bool) error {
	if !t.tree.Owns(n) {
		return fmt.Errorf("%w: cannot walk", ErrForeignNode)
	}
	t.tree.Forward(n, f)
	return nil
}

// Reverse calls f for n and all smaller nodes in descending order, until f
// returns false.
func (t *Intrusive[N, K]) Reverse(n N, f func(N) bool) error {
	if !t.tree.Owns(n) {
		return fmt.Errorf("%w: cannot walk", ErrForeignNode)
	}
	t.tree.Reverse(n, f)
	return nil
}

// Rank returns the number of nodes with keys smaller than n's.
func (t *Intrusive[N, K]) Rank(n N) (int, error) {
	return t.tree.Rank(n)
}

// Best returns the node with the smallest key, or nil for an empty tree.
func (t *Intrusive[N, K]) Best() N {
	n, _ := t.tree.First()
	return n
}

// Worst returns the node with the largest key, or nil for an empty tree.
func (t *Intrusive[N, K]) Worst() N {
	n, _ := t.tree.Last()
	return n
}

// Balance rebalances the tree by weight and returns the depth reached.
func (t *Intrusive[N, K]) Balance() int {
	return t.tree.Balance()
}

// Prune removes nodes until at most target nodes remain. Nodes for which
// locked returns true are never removed; locked may be nil. Removed nodes are
// detached and may be inserted again.
func (t *Intrusive[N, K]) Prune(target int, locked func(N) bool) int {
	return t.tree.Prune(target, locked)
}

// Clear detaches all nodes.
func (t *Intrusive[N, K]) Clear() {
	t.tree.Clear()
}

// All returns an iterator over all nodes in ascending key order.
func (t *Intrusive[N, K]) All() iter.Seq[N] {
	return func(yield func(N) bool) {
		t.tree.Walk(yield)
	}
}

// AppendTo appends all nodes in ascending order to dst.
func (t *Intrusive[N, K]) AppendTo(dst []N) []N {
	t.tree.Walk(func(n N) bool {
		dst = append(dst, n)
		return true
	})
	return dst
}

// AppendKeysTo appends the keys of all nodes in ascending order to dst.
func (t *Intrusive[N, K]) AppendKeysTo(dst []K) []K {
	key := t.tree.Config().Key
	t.tree.Walk(func(n N) bool {
		dst = append(dst, key(n))
		return true
	})
	return dst
}

// Check validates the structural invariants of the tree.
func (t *Intrusive[N, K]) Check() error {
	return t.tree.Check()
}

// Dump writes an indented rendering of the tree to w (for debugging purposes).
func (t *Intrusive[N, K]) Dump(w io.Writer) error {
	return t.tree.WriteConsole(w)
}

// String returns the tree in Graphviz DOT format (for debugging purposes).
func (t *Intrusive[N, K]) String() string {
	var b strings.Builder
	if err := t.tree.WriteDot(&b); err != nil {
		tracer().Errorf("intrusive: cannot write DOT: %v", err)
	}
	return b.String()
}
