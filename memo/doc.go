/*
Package memo provides get-or-create lookups ("vivify").

Vivify works on plain maps and suits single-threaded callers such as tree
dumps which allocate identifiers on first sight. Table is a bounded,
concurrency-safe variant: entries live in an LRU cache, and concurrent first
lookups of the same key call the factory only once.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package memo

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'splay'
func tracer() tracing.Trace {
	return tracing.Select("splay")
}

// Vivify returns m[key]. If key is not present, the value is created with
// factory and stored first.
func Vivify[K comparable, V any](m map[K]V, key K, factory func() V) V {
	if v, ok := m[key]; ok {
		return v
	}
	v := factory()
	m[key] = v
	return v
}
