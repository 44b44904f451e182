package engine

// Balance rebalances the tree by subtree weight and returns the depth reached.
//
// This is not a strict height balance. Each visited node rotates while the
// weights of its children differ by more than one and a rotation strictly
// reduces the difference, before and after its children are balanced.
// Recursion stops at Config.MaxRecursionDepth; subtrees below that depth stay
// as they are, and repeated calls converge further. Trees with fewer than 3
// entries are left alone and report 0.
func (t *Tree[N, K]) Balance() int {
	if t.count < 3 || absent(t.root) {
		return 0
	}
	depth := t.balance(t.root, 1)
	tracer().Debugf("splay: balanced %d entries, depth %d", t.count, depth)
	t.verify("balance")
	return depth
}

func (t *Tree[N, K]) balance(n N, depth int) int {
	if absent(n) || depth >= t.cfg.MaxRecursionDepth {
		return depth
	}
	if h := hook(n); absent(h.left) && absent(h.right) {
		return depth
	}
	// balancing the children may expose new opportunities, so do it before
	// and after descending
	n = t.balanceChildren(n)
	ld := t.balance(hook(n).left, depth+1)
	rd := t.balance(hook(n).right, depth+1)
	n = t.balanceChildren(n)
	return max(ld, rd)
}

// balanceChildren rotates at n while this strictly improves the weight
// difference of n's children. It returns the node now occupying n's position.
func (t *Tree[N, K]) balanceChildren(n N) N {
	for {
		h := hook(n)
		diff := h.leftCount - h.rightCount
		switch {
		case diff > 1: // left is heavier
			l := hook(h.left)
			newDiff := abs(l.leftCount - (1 + l.rightCount + h.rightCount))
			if newDiff >= diff {
				return n
			}
			promoted := h.left
			t.rotateRight(n)
			n = promoted
		case diff < -1: // right is heavier
			r := hook(h.right)
			newDiff := abs(r.rightCount - (1 + r.leftCount + h.leftCount))
			if newDiff >= -diff {
				return n
			}
			promoted := h.right
			t.rotateLeft(n)
			n = promoted
		default:
			return n
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
