package engine

import "fmt"

// DefaultMaxRecursionDepth bounds the recursion of Balance and Prune.
const DefaultMaxRecursionDepth = 80

// Config configures a tree.
type Config[N Node[N], K any] struct {
	// Key extracts the ordering key from a node. Required.
	Key func(N) K
	// Compare is a three-way comparison of keys. Required.
	Compare func(a, b K) int
	// MaxRecursionDepth caps the recursion of Balance and Prune.
	// Zero selects DefaultMaxRecursionDepth.
	MaxRecursionDepth int
	// Paranoid enables invariant checks after every mutation. Violations panic.
	// Results are the same with or without it.
	Paranoid bool
}

func (cfg Config[N, K]) normalized() Config[N, K] {
	if cfg.MaxRecursionDepth == 0 {
		cfg.MaxRecursionDepth = DefaultMaxRecursionDepth
	}
	return cfg
}

func (cfg Config[N, K]) validate() error {
	cfg = cfg.normalized()
	if cfg.Key == nil {
		return fmt.Errorf("%w: key accessor is required", ErrInvalidConfig)
	}
	if cfg.Compare == nil {
		return fmt.Errorf("%w: comparator is required", ErrInvalidConfig)
	}
	if cfg.MaxRecursionDepth < 1 {
		return fmt.Errorf("%w: max recursion depth must be positive, is %d",
			ErrInvalidConfig, cfg.MaxRecursionDepth)
	}
	return nil
}
