package engine

// Prune removes entries until at most target entries remain, preferring to
// keep entries for which locked returns true. locked may be nil.
//
// The tree is balanced first. Then, starting at the root, the number of
// entries to remove is apportioned to the two subtrees of a node in proportion
// to their weights; the heavier side takes the remainder of the integer
// division, the right side on ties. Subtrees with more than one entry are
// pruned recursively, single-entry children are removed directly unless
// locked. The root of each pruned subtree is never removed itself.
//
// Prune returns the number of entries removed. It may be less than requested
// if entries are locked, or if removals would need recursion deeper than
// Config.MaxRecursionDepth. Locked entries are never removed.
func (t *Tree[N, K]) Prune(target int, locked func(N) bool) int {
	if t.count == 0 || target >= t.count {
		return 0
	}
	target = max(target, 0)
	t.Balance()
	removed := t.prune(t.root, t.count-target, locked, 1)
	t.count -= removed
	tracer().Debugf("splay: pruned %d of %d requested entries, %d remain",
		removed, t.count+removed-target, t.count)
	t.verify("prune")
	return removed
}

func (t *Tree[N, K]) prune(n N, toRemove int, locked func(N) bool, depth int) int {
	invariant(toRemove > 0, "prune called without anything to remove")
	h := hook(n)
	total := h.leftCount + h.rightCount
	if total == 0 || depth >= t.cfg.MaxRecursionDepth {
		return 0
	}
	var removeLeft, removeRight int
	if h.leftCount <= h.rightCount {
		removeLeft = int(int64(toRemove) * int64(h.leftCount) / int64(total))
		removeRight = toRemove - removeLeft
	} else {
		removeRight = int(int64(toRemove) * int64(h.rightCount) / int64(total))
		removeLeft = toRemove - removeRight
	}
	removed := 0
	if removeLeft > 0 && h.leftCount > 1 {
		r := t.prune(h.left, removeLeft, locked, depth+1)
		h.leftCount -= r
		removed += r
		toRemove -= r
	}
	if removeRight > 0 && h.rightCount > 1 {
		r := t.prune(h.right, removeRight, locked, depth+1)
		h.rightCount -= r
		removed += r
		toRemove -= r
	}
	// children may have shrunk to single entries; take them if still short
	var zero N
	if toRemove > 0 && h.rightCount == 1 && (locked == nil || !locked(h.right)) {
		hook(h.right).reset()
		h.right, h.rightCount = zero, 0
		removed++
		toRemove--
	}
	if toRemove > 0 && h.leftCount == 1 && (locked == nil || !locked(h.left)) {
		hook(h.left).reset()
		h.left, h.leftCount = zero, 0
		removed++
	}
	return removed
}
