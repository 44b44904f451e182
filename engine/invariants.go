package engine

import (
	"errors"
	"fmt"
)

// Check validates structural tree invariants: symmetric parent/child links,
// exact cached weights, strictly ascending keys, node ownership and the
// tree's total count.
//
// Check is meant for tests and debugging. It is never called on regular code
// paths unless the tree is configured to be paranoid (or built with tag
// 'splaydebug').
func (t *Tree[N, K]) Check() (err error) {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if absent(t.root) {
		if t.count != 0 {
			return fmt.Errorf("%w: empty tree has count %d", ErrCorrupted, t.count)
		}
		return nil
	}
	root := hook(t.root)
	if !absent(root.parent) {
		return fmt.Errorf("%w: root has a parent", ErrCorrupted)
	}
	if root.weight() != t.count {
		return fmt.Errorf("%w: root weight %d != count %d", ErrCorrupted, root.weight(), t.count)
	}
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok && errors.Is(e, ErrInvalidTree) {
				err = fmt.Errorf("%w: %v", ErrCorrupted, e)
				return
			}
			panic(r)
		}
	}()
	seen := make(map[N]struct{}, t.count)
	var prev N
	t.Walk(func(n N) bool {
		if _, ok := seen[n]; ok {
			err = fmt.Errorf("%w: node %v visited twice", ErrCorrupted, t.cfg.Key(n))
			return false
		}
		seen[n] = struct{}{}
		err = t.checkNode(n, prev)
		prev = n
		return err == nil
	})
	if err == nil && len(seen) != t.count {
		err = fmt.Errorf("%w: visited %d nodes, count is %d", ErrCorrupted, len(seen), t.count)
	}
	return err
}

func (t *Tree[N, K]) checkNode(n, prev N) error {
	h := hook(n)
	k := t.cfg.Key(n)
	if h.owner != t.id {
		return fmt.Errorf("%w: node %v is not tagged with this tree", ErrCorrupted, k)
	}
	if !absent(prev) && t.cfg.Compare(t.cfg.Key(prev), k) >= 0 {
		return fmt.Errorf("%w: keys out of order at %v", ErrCorrupted, k)
	}
	if err := checkChild(h.left, h.leftCount, n); err != nil {
		return fmt.Errorf("left of %v: %w", k, err)
	}
	if err := checkChild(h.right, h.rightCount, n); err != nil {
		return fmt.Errorf("right of %v: %w", k, err)
	}
	return nil
}

// checkChild compares a cached count with the child's own weights and checks
// the child's back-reference.
func checkChild[N Node[N]](child N, count int, parent N) error {
	if absent(child) {
		if count != 0 {
			return fmt.Errorf("%w: count %d without child", ErrCorrupted, count)
		}
		return nil
	}
	ch := hook(child)
	if ch.parent != parent {
		return fmt.Errorf("%w: child does not link back to parent", ErrCorrupted)
	}
	if count != ch.weight() {
		return fmt.Errorf("%w: cached count %d != child weight %d", ErrCorrupted, count, ch.weight())
	}
	return nil
}
