package engine

// weightAt returns the weight recorded for the tree position x occupies: the
// tree's total for the root, otherwise the parent's count for x's side.
func (t *Tree[N, K]) weightAt(x N) int {
	h := hook(x)
	if absent(h.parent) {
		return hook(t.root).weight()
	}
	ph := hook(h.parent)
	if ph.left == x {
		return ph.leftCount
	}
	return ph.rightCount
}

// replaceChild points the link which referenced old at n instead. A nil
// parent means old was the root.
func (t *Tree[N, K]) replaceChild(parent, old, n N) {
	if absent(parent) {
		t.root = n
		return
	}
	if ph := hook(parent); ph.left == old {
		ph.left = n
	} else {
		ph.right = n
	}
}

// rotateLeft promotes x's right child into x's position.
//
//	    x                r
//	   / \              / \
//	  a   r     =>     x   c
//	     / \          / \
//	    b   c        a   b
func (t *Tree[N, K]) rotateLeft(x N) {
	xh := hook(x)
	invariant(!absent(xh.right), "rotateLeft requires a right child")
	var before int
	if t.paranoid() {
		before = t.weightAt(x)
	}
	r := xh.right
	rh := hook(r)
	parent := xh.parent

	xh.right, xh.rightCount = rh.left, rh.leftCount
	if !absent(rh.left) {
		hook(rh.left).parent = x
	}
	rh.parent = parent
	t.replaceChild(parent, x, r)
	rh.left = x
	rh.leftCount = xh.weight()
	xh.parent = r

	if t.paranoid() {
		invariant(before == t.weightAt(r), "rotateLeft changed subtree weight")
	}
}

// rotateRight promotes x's left child into x's position.
//
//	      x            l
//	     / \          / \
//	    l   c  =>    a   x
//	   / \              / \
//	  a   b            b   c
func (t *Tree[N, K]) rotateRight(x N) {
	xh := hook(x)
	invariant(!absent(xh.left), "rotateRight requires a left child")
	var before int
	if t.paranoid() {
		before = t.weightAt(x)
	}
	l := xh.left
	lh := hook(l)
	parent := xh.parent

	xh.left, xh.leftCount = lh.right, lh.rightCount
	if !absent(lh.right) {
		hook(lh.right).parent = x
	}
	lh.parent = parent
	t.replaceChild(parent, x, l)
	lh.right = x
	lh.rightCount = xh.weight()
	xh.parent = l

	if t.paranoid() {
		invariant(before == t.weightAt(l), "rotateRight changed subtree weight")
	}
}
