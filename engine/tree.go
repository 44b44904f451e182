package engine

import (
	"fmt"

	"github.com/hashicorp/go-uuid"
)

// Tree is a splay tree with weight-augmented nodes.
//
// N is the node type, K the key type nodes are ordered by. Keys are unique.
// Invariant: count is 0 iff root is nil, otherwise
// count == 1 + root.leftCount + root.rightCount.
type Tree[N Node[N], K any] struct {
	cfg   Config[N, K]
	root  N
	count int
	id    string // tags attached nodes
}

// New creates an empty tree with validated configuration.
func New[N Node[N], K any](cfg Config[N, K]) (*Tree[N, K], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	id, err := uuid.GenerateUUID()
	if err != nil {
		return nil, fmt.Errorf("splay: cannot create tree id: %w", err)
	}
	return &Tree[N, K]{cfg: cfg.normalized(), id: id}, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[N, K]) Config() Config[N, K] {
	return t.cfg
}

// ID returns the identity token attached nodes are tagged with.
func (t *Tree[N, K]) ID() string {
	return t.id
}

// Len returns the number of entries in the tree.
func (t *Tree[N, K]) Len() int {
	if t == nil {
		return 0
	}
	return t.count
}

// Root returns the current root node, or nil for an empty tree.
func (t *Tree[N, K]) Root() N {
	return t.root
}

// Owns reports whether n is attached to this tree.
func (t *Tree[N, K]) Owns(n N) bool {
	return !absent(n) && hook(n).owner == t.id
}

// Clear detaches all nodes and empties the tree.
//
// Nodes are unlinked bottom-up without recursion or auxiliary storage, which
// makes them available for insertion into any tree afterwards.
func (t *Tree[N, K]) Clear() {
	var zero N
	n := t.root
	for !absent(n) {
		h := hook(n)
		switch {
		case !absent(h.left):
			n = h.left
		case !absent(h.right):
			n = h.right
		default:
			p := h.parent
			if !absent(p) {
				ph := hook(p)
				if ph.left == n {
					ph.left = zero
				} else {
					ph.right = zero
				}
			}
			h.reset()
			n = p
		}
	}
	t.root = zero
	t.count = 0
}

func (t *Tree[N, K]) compare(n N, k K) int {
	return t.cfg.Compare(t.cfg.Key(n), k)
}

// find descends to the node with key k, without touching the tree's shape.
func (t *Tree[N, K]) find(k K) N {
	u := t.root
	for !absent(u) {
		c := t.compare(u, k)
		if c == 0 {
			return u
		}
		if c < 0 {
			u = hook(u).right
		} else {
			u = hook(u).left
		}
	}
	return u
}

// Find returns the node with key k. The tree is not restructured.
func (t *Tree[N, K]) Find(k K) (N, bool) {
	n := t.find(k)
	return n, !absent(n)
}

// FindNear returns the node with key k if present. Otherwise it returns the
// last node visited on the search path for k, i.e. the node k would be
// attached to on insertion. This is not necessarily the node with the closest
// key. FindNear reports false only for an empty tree.
func (t *Tree[N, K]) FindNear(k K) (N, bool) {
	u, p := t.root, t.root
	for !absent(u) {
		c := t.compare(u, k)
		if c == 0 {
			return u, true
		}
		p = u
		if c < 0 {
			u = hook(u).right
		} else {
			u = hook(u).left
		}
	}
	return p, !absent(p)
}

// Insert attaches a detached node and splays it to the root.
//
// Weights of all ancestors are incremented during the descent. Insert fails
// with ErrForeignNode if n is attached to any tree, and with ErrDuplicateKey
// if a node with an equal key is present. In both cases the tree is unchanged.
func (t *Tree[N, K]) Insert(n N) error {
	invariant(!absent(n), "Insert called with nil node")
	z := hook(n)
	if z.owner != "" {
		return fmt.Errorf("%w: cannot insert attached node", ErrForeignNode)
	}
	invariant(z.leftCount == 0 && z.rightCount == 0, "detached node carries weights")
	k := t.cfg.Key(n)
	if !absent(t.find(k)) {
		return fmt.Errorf("%w: %v", ErrDuplicateKey, k)
	}
	var p N
	right := false
	for u := t.root; !absent(u); {
		p = u
		h := hook(u)
		if right = t.compare(u, k) < 0; right {
			h.rightCount++
			u = h.right
		} else {
			h.leftCount++
			u = h.left
		}
	}
	z.parent = p
	z.owner = t.id
	switch {
	case absent(p):
		t.root = n
	case right:
		invariant(absent(hook(p).right), "insert position is occupied")
		hook(p).right = n
	default:
		invariant(absent(hook(p).left), "insert position is occupied")
		hook(p).left = n
	}
	t.count++
	t.splay(n)
	t.verify("insert")
	return nil
}

// First returns the node with the smallest key.
func (t *Tree[N, K]) First() (N, bool) {
	x := t.root
	for !absent(x) && !absent(hook(x).left) {
		x = hook(x).left
	}
	return x, !absent(x)
}

// Last returns the node with the largest key.
func (t *Tree[N, K]) Last() (N, bool) {
	x := t.root
	for !absent(x) && !absent(hook(x).right) {
		x = hook(x).right
	}
	return x, !absent(x)
}

// paranoid reports whether invariants are checked after mutations.
func (t *Tree[N, K]) paranoid() bool {
	return debugChecks || t.cfg.Paranoid
}

// verify runs Check in paranoid mode and panics on violations.
func (t *Tree[N, K]) verify(op string) {
	if !t.paranoid() {
		return
	}
	if err := t.Check(); err != nil {
		panic(fmt.Sprintf("after %s: %v", op, err))
	}
}
