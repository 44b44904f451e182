/*
Package splay offers an ordered set built on a weight-augmented splay tree.

Splay Trees

A splay tree is a binary search tree which moves every entry it touches to the
root, by a series of rotations. Entries accessed recently or frequently stay
close to the root, and the amortized cost of an access is logarithmic. In this
package every node additionally caches the number of entries in its left and
right subtree. This makes the tree an order-statistic tree: the rank of an
entry is the left weight of its node once it has been splayed to the root.

On top of ordered storage the trees offer

  - rank queries (the zero-based position of a key),
  - neighborhood queries (a key together with some predecessors and successors,
    whether or not the key itself is present),
  - forward and reverse walks from an anchor with early termination,
  - an approximate global rebalancing by subtree weight,
  - proportional pruning down to a target size, sparing selected entries.

Balancing is opportunistic: there is no strict height bound on every access.
Balance and Prune recurse to a bounded depth, all other operations are
iterative, so even degenerated, chain-shaped trees cannot exhaust the stack.

Storage Flavors

Set stores values and allocates nodes internally; entries are addressed by
value. Intrusive works on client-owned nodes which embed a Hook. Clients keep
handles to their nodes across mutations and remove or rank them without
searching. Nodes remember the tree they belong to, inserting a node twice or
into two trees is rejected.

Trees are not safe for concurrent use. Even read-like operations such as Rank,
Contains or NearBy restructure the tree, so every sequence of calls needs
exclusive access.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package splay

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/splay/engine"
)

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

// Errors of package splay. They are shared with package engine, so errors.Is
// works with either.
var (
	// ErrDuplicateKey is returned when adding a key which is already present.
	ErrDuplicateKey = engine.ErrDuplicateKey
	// ErrNotFound is returned for keys which are not present.
	ErrNotFound = engine.ErrNotFound
	// ErrForeignNode is returned for intrusive nodes attached to another tree.
	ErrForeignNode = engine.ErrForeignNode
	// ErrEmptyCollection is the panic value of Best and Worst on empty trees.
	ErrEmptyCollection = engine.ErrEmptyCollection
	// ErrInvalidTree is the panic value of walks over a corrupted tree.
	ErrInvalidTree = engine.ErrInvalidTree
	// ErrCorrupted is returned by Check.
	ErrCorrupted = engine.ErrCorrupted
)

// MaxRecursionDepth is the default bound for the recursion of Balance and Prune.
const MaxRecursionDepth = engine.DefaultMaxRecursionDepth

// Option configures a tree.
type Option func(*options)

type options struct {
	maxDepth int
	paranoid bool
}

// WithMaxRecursionDepth sets the recursion bound of Balance and Prune.
func WithMaxRecursionDepth(depth int) Option {
	return func(o *options) {
		o.maxDepth = depth
	}
}

// WithParanoia turns on invariant checks after every mutation. A violation
// panics. Intended for tests.
func WithParanoia(on bool) Option {
	return func(o *options) {
		o.paranoid = on
	}
}

func collect(opts []Option) options {
	o := options{maxDepth: MaxRecursionDepth}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
