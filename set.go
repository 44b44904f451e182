package splay

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/npillmayer/splay/engine"
	"golang.org/x/exp/constraints"
)

type entry[T any] struct {
	engine.Hook[*entry[T]]
	value T
}

func entryValue[T any](e *entry[T]) T {
	return e.value
}

// Set is an ordered set of values, stored in a splay tree. Nodes are allocated
// and owned by the set; entries are addressed by value.
//
// Values are ordered by a three-way comparison function and must be unique
// with respect to it.
type Set[T any] struct {
	tree *engine.Tree[*entry[T], T]
}

// New creates an empty set ordered by compare. compare(a, b) must return a
// negative number for a < b, zero for a == b and a positive number otherwise.
func New[T any](compare func(a, b T) int, opts ...Option) (*Set[T], error) {
	o := collect(opts)
	tree, err := engine.New(engine.Config[*entry[T], T]{
		Key:               entryValue[T],
		Compare:           compare,
		MaxRecursionDepth: o.maxDepth,
		Paranoid:          o.paranoid,
	})
	if err != nil {
		return nil, err
	}
	return &Set[T]{tree: tree}, nil
}

// NewOrdered creates an empty set for a type with a natural order. Floating
// point values are ordered as by cmp.Compare: NaN sorts before all other
// values and all NaNs are equal.
func NewOrdered[T constraints.Ordered](opts ...Option) *Set[T] {
	set, err := New(cmp.Compare[T], opts...)
	invariant(err == nil, "NewOrdered: cannot create tree")
	return set
}

// Len returns the number of values in the set.
func (s *Set[T]) Len() int {
	return s.tree.Len()
}

// Add inserts v. If an equal value is present, Add returns ErrDuplicateKey and
// leaves the set unchanged.
func (s *Set[T]) Add(v T) error {
	return s.tree.Insert(&entry[T]{value: v})
}

// Remove deletes v from the set and reports whether it was present.
func (s *Set[T]) Remove(v T) bool {
	_, err := s.tree.RemoveKey(v)
	return err == nil
}

// Contains reports whether v is in the set. A value found is splayed to the
// root.
func (s *Set[T]) Contains(v T) bool {
	e, ok := s.tree.Find(v)
	if ok {
		s.tree.Splay(e)
	}
	return ok
}

// Clear removes all values.
func (s *Set[T]) Clear() {
	s.tree.Clear()
}

// Best returns the smallest value. It panics with ErrEmptyCollection on an
// empty set.
func (s *Set[T]) Best() T {
	e, ok := s.tree.First()
	if !ok {
		panic(fmt.Errorf("%w: no best value", ErrEmptyCollection))
	}
	return e.value
}

// Worst returns the largest value. It panics with ErrEmptyCollection on an
// empty set.
func (s *Set[T]) Worst() T {
	e, ok := s.tree.Last()
	if !ok {
		panic(fmt.Errorf("%w: no worst value", ErrEmptyCollection))
	}
	return e.value
}

// NearBy returns the value v, or the value nearest to v on v's search path if
// v is not present, together with up to before smaller and up to after greater
// values, in ascending order. An empty set yields an empty result.
func (s *Set[T]) NearBy(v T, before, after int) []T {
	anchor, ok := s.tree.FindNear(v)
	if !ok {
		return []T{}
	}
	near := s.tree.NearBy(anchor, before, after)
	values := make([]T, len(near))
	for i, e := range near {
		values[i] = e.value
	}
	return values
}

// ForwardFrom calls f for values in ascending order, starting at v or the
// value nearest to v on its search path, until f returns false.
func (s *Set[T]) ForwardFrom(v T, f func(T) bool) {
	if anchor, ok := s.tree.FindNear(v); ok {
		s.tree.Forward(anchor, func(e *entry[T]) bool {
			return f(e.value)
		})
	}
}

// ReverseFrom calls f for values in descending order, starting at v or the
// value nearest to v on its search path, until f returns false.
func (s *Set[T]) ReverseFrom(v T, f func(T) bool) {
	if anchor, ok := s.tree.FindNear(v); ok {
		s.tree.Reverse(anchor, func(e *entry[T]) bool {
			return f(e.value)
		})
	}
}

// Rank returns the number of values smaller than v. It reports false if v is
// not in the set.
func (s *Set[T]) Rank(v T) (int, bool) {
	rank, err := s.tree.RankOf(v)
	return rank, err == nil
}

// Balance rebalances the set's tree by weight and returns the depth reached.
// Sets with fewer than 3 values are left alone and report 0.
func (s *Set[T]) Balance() int {
	return s.tree.Balance()
}

// Prune removes values until at most target values remain. Values for which
// keep returns true are never removed; keep may be nil. Prune returns the
// number of values removed, which may be less than requested.
func (s *Set[T]) Prune(target int, keep func(T) bool) int {
	var locked func(*entry[T]) bool
	if keep != nil {
		locked = func(e *entry[T]) bool {
			return keep(e.value)
		}
	}
	removed := s.tree.Prune(target, locked)
	tracer().Debugf("set: pruned %d values, %d remain", removed, s.tree.Len())
	return removed
}

// All returns an iterator over all values in ascending order.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		s.tree.Walk(func(e *entry[T]) bool {
			return yield(e.value)
		})
	}
}

// AppendTo appends all values in ascending order to dst and returns the
// extended slice.
func (s *Set[T]) AppendTo(dst []T) []T {
	s.tree.Walk(func(e *entry[T]) bool {
		dst = append(dst, e.value)
		return true
	})
	return dst
}

// Check validates the structural invariants of the set's tree.
func (s *Set[T]) Check() error {
	return s.tree.Check()
}

// Dump writes an indented rendering of the tree to w (for debugging purposes).
func (s *Set[T]) Dump(w io.Writer) error {
	return s.tree.WriteConsole(w)
}

// String returns the tree in Graphviz DOT format (for debugging purposes).
func (s *Set[T]) String() string {
	var b strings.Builder
	if err := s.tree.WriteDot(&b); err != nil {
		tracer().Errorf("set: cannot write DOT: %v", err)
	}
	return b.String()
}
