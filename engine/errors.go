package engine

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("splay: invalid configuration")
	// ErrDuplicateKey signals an insert of a key which is already present.
	ErrDuplicateKey = errors.New("splay: duplicate key")
	// ErrNotFound signals that a key is not present in the tree.
	ErrNotFound = errors.New("splay: key not found")
	// ErrForeignNode signals a node which belongs to another tree, or which is
	// still attached to a tree when it is inserted.
	ErrForeignNode = errors.New("splay: node belongs to another tree")
	// ErrEmptyCollection is raised by operations which need at least one entry.
	ErrEmptyCollection = errors.New("splay: empty collection")
	// ErrInvalidTree is the panic value of a traversal which hits links that
	// are inconsistent with any ascend or descend step. It indicates a
	// corrupted tree and is never returned as a regular error.
	ErrInvalidTree = errors.New("splay: invalid tree")
	// ErrCorrupted is returned by Check for violated structural invariants.
	ErrCorrupted = errors.New("splay: tree invariant violated")
)
