package engine

// Splay moves x to the root. x must be attached to t.
func (t *Tree[N, K]) Splay(x N) {
	invariant(t.Owns(x), "Splay called with a node of another tree")
	t.splay(x)
}

func (t *Tree[N, K]) splay(x N) {
	for {
		p := hook(x).parent
		if absent(p) {
			return
		}
		xIsLeft := hook(p).left == x
		g := hook(p).parent
		if absent(g) { // zig
			if xIsLeft {
				t.rotateRight(p)
			} else {
				t.rotateLeft(p)
			}
			continue
		}
		pIsLeft := hook(g).left == p
		switch {
		case xIsLeft && pIsLeft: // zig-zig
			t.rotateRight(g)
			t.rotateRight(p)
		case !xIsLeft && !pIsLeft: // zig-zig
			t.rotateLeft(g)
			t.rotateLeft(p)
		case xIsLeft: // zig-zag
			t.rotateRight(p)
			t.rotateLeft(g)
		default: // zig-zag
			t.rotateLeft(p)
			t.rotateRight(g)
		}
	}
}
