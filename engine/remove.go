package engine

import "fmt"

// Remove detaches n from the tree.
//
// n is splayed to the root first. If it has two children, the minimum of the
// right subtree is promoted to the root directly, decrementing weights along
// its descent path, so no second splay is needed. The removed node is reset
// to the detached state.
func (t *Tree[N, K]) Remove(n N) error {
	if !t.Owns(n) {
		return fmt.Errorf("%w: cannot remove node", ErrForeignNode)
	}
	t.splay(n)
	z := hook(n)
	var before int
	if t.paranoid() {
		before = z.weight()
	}
	var zero N
	switch {
	case absent(z.left):
		t.root = z.right
	case absent(z.right):
		t.root = z.left
	default:
		zR, zL := z.right, z.left
		u := zR
		for !absent(hook(u).left) {
			hook(u).leftCount-- // loses u from its left subtree
			u = hook(u).left
		}
		uh := hook(u)
		if uP := uh.parent; uP != n {
			uR := uh.right
			uPh := hook(uP)
			uPh.leftCount = uh.rightCount
			uPh.left = uR
			if !absent(uR) {
				hook(uR).parent = uP
			}
			uh.right = zR
			hook(zR).parent = u
			uh.rightCount = z.rightCount - 1
		} else {
			invariant(u == zR, "successor is not the right child")
		}
		t.root = u
		uh.left = zL
		hook(zL).parent = u
		uh.leftCount = z.leftCount
	}
	if !absent(t.root) {
		hook(t.root).parent = zero
	}
	z.reset()
	t.count--
	if t.paranoid() {
		after := 0
		if !absent(t.root) {
			after = hook(t.root).weight()
		}
		invariant(after == before-1, "remove did not decrease weight by one")
	}
	t.verify("remove")
	return nil
}

// RemoveKey removes the entry with key k and returns its node.
func (t *Tree[N, K]) RemoveKey(k K) (N, error) {
	n := t.find(k)
	if absent(n) {
		return n, fmt.Errorf("%w: %v", ErrNotFound, k)
	}
	return n, t.Remove(n)
}
