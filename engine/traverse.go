package engine

// direction selects the order of a walk.
type direction bool

const (
	forward direction = true
	reverse direction = false
)

// near returns the child a walk in direction d visits first, far the other one.
func (h *Hook[N]) near(d direction) N {
	if d == forward {
		return h.left
	}
	return h.right
}

func (h *Hook[N]) far(d direction) N {
	if d == forward {
		return h.right
	}
	return h.left
}

// walk is the iterative in-order traversal engine.
//
// ln is the node visited before n. Comparing it with n's parent and children
// tells whether the walk is descending, or ascending from the near or far
// side. The walk needs neither recursion nor a stack. It stops as soon as
// visit returns false or the walk leaves the tree above its root.
//
// Links which fit none of the three cases mean a corrupted tree (e.g. a
// cycle); walk panics with ErrInvalidTree then.
func walk[N Node[N]](n, ln N, d direction, visit func(N) bool) {
	for !absent(n) {
		h := hook(n)
		switch ln {
		case h.parent: // descending
			ln = n
			if near := h.near(d); !absent(near) {
				n = near
				continue
			}
			if !visit(n) {
				return
			}
			if far := h.far(d); !absent(far) {
				n = far
				continue
			}
			n = h.parent
		case h.near(d): // ascending from the near side
			if !visit(n) {
				return
			}
			ln = n
			if far := h.far(d); !absent(far) {
				n = far
				continue
			}
			n = h.parent
		case h.far(d): // ascending from the far side
			ln = n
			n = h.parent
		default:
			panic(ErrInvalidTree)
		}
	}
}

// walkFrom walks in direction d, starting with n itself and continuing through
// all following nodes of the tree.
func walkFrom[N Node[N]](n N, d direction, visit func(N) bool) {
	if absent(n) {
		return
	}
	h := hook(n)
	ln := h.near(d) // pretend to come up from the near side, n is next
	if absent(ln) {
		ln = h.parent // pretend to descend into n
	}
	walk(n, ln, d, visit)
}

// Walk visits all nodes in ascending key order until visit returns false.
// The tree is not restructured.
func (t *Tree[N, K]) Walk(visit func(N) bool) {
	if absent(t.root) {
		return
	}
	walk(t.root, hook(t.root).parent, forward, visit)
}

// Forward visits n and all nodes with greater keys in ascending order, until
// visit returns false. The tree is not restructured.
func (t *Tree[N, K]) Forward(n N, visit func(N) bool) {
	walkFrom(n, forward, visit)
}

// Reverse visits n and all nodes with smaller keys in descending order, until
// visit returns false. The tree is not restructured.
func (t *Tree[N, K]) Reverse(n N, visit func(N) bool) {
	walkFrom(n, reverse, visit)
}
