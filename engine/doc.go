/*
Package engine implements the algorithms behind package splay: a splay tree
whose nodes cache the weight (number of entries) of their left and right
subtrees.

The engine is written once over an abstract node capability: any comparable
pointer type which embeds a Hook and therefore exposes SplayHook(). Package
splay builds both of its storage flavors on top of it, a by-value set where
nodes are allocated internally, and an intrusive tree where clients own the
nodes.

Layers, bottom-up:
  - linkage and weight bookkeeping (Hook),
  - single rotations which repair the two affected weights in O(1),
  - the splay primitive (zig, zig-zig, zig-zag),
  - an iterative in-order walker which needs neither recursion nor a stack,
  - rank, neighborhood, removal, weight balancing and proportional pruning.

Every mutation keeps parent/child links symmetric and all cached weights
exact. Balance and Prune recurse, but never deeper than
Config.MaxRecursionDepth; everything else is iterative, as trees may degrade
to linear chains before the first balancing pass.

Trees are not safe for concurrent use. Even read-like operations (rank,
neighborhood queries) restructure the tree by splaying.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package engine

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'splay'
func tracer() tracing.Trace {
	return tracing.Select("splay")
}

// invariant panics with msg if condition does not hold.
func invariant(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

// absent reports whether n is the nil node.
func absent[N comparable](n N) bool {
	var zero N
	return n == zero
}
