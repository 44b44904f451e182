package memo

import (
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

// DefaultSize is the capacity of a Table created with size 0.
const DefaultSize = 1024

// ErrInvalidSize is returned for negative table sizes.
var ErrInvalidSize = errors.New("memo: invalid table size")

// Table memoizes values by key, holding at most a fixed number of entries.
// Least recently used entries are evicted first.
//
// Concurrent calls of Vivify for a key which is not yet present are collapsed:
// one caller runs the factory, the others receive its result. Flights are
// grouped by the %v formatting of keys; a caller which joined the flight of a
// different key with the same formatting waits for it and then starts over.
type Table[K comparable, V any] struct {
	cache  *lru.Cache[K, V]
	flight singleflight.Group
}

// flightResult carries the key a flight was started for.
type flightResult[K comparable, V any] struct {
	key   K
	value V
}

// New creates a table for up to size entries. Size 0 selects DefaultSize.
func New[K comparable, V any](size int) (*Table[K, V], error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	if size == 0 {
		size = DefaultSize
	}
	cache, err := lru.New[K, V](size)
	if err != nil {
		return nil, fmt.Errorf("memo: cannot create cache: %w", err)
	}
	return &Table[K, V]{cache: cache}, nil
}

// Vivify returns the value for key, creating it with factory if necessary.
// Factory errors are returned and nothing is stored.
func (t *Table[K, V]) Vivify(key K, factory func(K) (V, error)) (V, error) {
	group := fmt.Sprintf("%v", key)
	for {
		if v, ok := t.cache.Get(key); ok {
			return v, nil
		}
		r, err, shared := t.flight.Do(group, func() (interface{}, error) {
			res := flightResult[K, V]{key: key}
			if v, ok := t.cache.Get(key); ok {
				res.value = v
				return res, nil
			}
			v, err := factory(key)
			if err != nil {
				return res, err
			}
			t.cache.Add(key, v)
			res.value = v
			return res, nil
		})
		res, _ := r.(flightResult[K, V])
		// a key unequal to itself (NaN) cannot be matched, it owns its flight
		if res.key != key && key == key {
			tracer().Debugf("memo: key %v collided with flight of %v, retrying", key, res.key)
			continue
		}
		if err != nil {
			var zero V
			return zero, err
		}
		if shared {
			tracer().Debugf("memo: shared factory result for %v", key)
		}
		return res.value, nil
	}
}

// Lookup returns the value for key without creating it.
func (t *Table[K, V]) Lookup(key K) (V, bool) {
	return t.cache.Get(key)
}

// Forget removes key from the table.
func (t *Table[K, V]) Forget(key K) bool {
	return t.cache.Remove(key)
}

// Len returns the number of entries held.
func (t *Table[K, V]) Len() int {
	return t.cache.Len()
}

// Purge removes all entries.
func (t *Table[K, V]) Purge() {
	t.cache.Purge()
}
