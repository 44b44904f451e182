package engine

// Node is the capability the engine needs from a node type: a comparable
// (pointer) type which carries a Hook. Embedding Hook[*T] into a struct T
// makes *T a Node[*T].
//
//	type player struct {
//	    engine.Hook[*player]
//	    name  string
//	    score int
//	}
type Node[N any] interface {
	comparable
	SplayHook() *Hook[N]
}

// Hook holds the linkage and weight fields the engine maintains on a node.
// The zero value is a detached node.
//
// Left and right links own their subtrees, the parent link is a
// back-reference for navigation only. leftCount and rightCount cache the number
// of entries in the respective subtree, not including the node itself.
type Hook[N any] struct {
	parent, left, right   N
	leftCount, rightCount int
	owner                 string // id of the tree this node is attached to
}

// SplayHook returns the hook itself. It is promoted to types embedding Hook.
func (h *Hook[N]) SplayHook() *Hook[N] {
	return h
}

// Parent returns the parent node, or nil for the root and detached nodes.
func (h *Hook[N]) Parent() N {
	return h.parent
}

// Left returns the left child.
func (h *Hook[N]) Left() N {
	return h.left
}

// Right returns the right child.
func (h *Hook[N]) Right() N {
	return h.right
}

// Counts returns the cached weights of the left and right subtree.
func (h *Hook[N]) Counts() (left, right int) {
	return h.leftCount, h.rightCount
}

// Attached reports whether the node is currently a member of a tree.
func (h *Hook[N]) Attached() bool {
	return h.owner != ""
}

// weight is the number of entries in the subtree rooted at this node.
func (h *Hook[N]) weight() int {
	return 1 + h.leftCount + h.rightCount
}

func (h *Hook[N]) reset() {
	*h = Hook[N]{}
}

func hook[N Node[N]](n N) *Hook[N] {
	return n.SplayHook()
}
