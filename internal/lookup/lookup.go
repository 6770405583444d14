// Package lookup provides a small generic index that groups records by a
// comparable key, trading one pre-pass over the input for constant-time
// lookups afterwards.
package lookup

import "slices"

// Index groups a slice of records by the key derived from each record.
// An Index is immutable once built and safe for concurrent reads.
type Index[K comparable, V any] struct {
	groups map[K][]V
	keys   []K
}

// New builds an Index over items, deriving each record's key with keyOf.
// Records keep their input order within a group; distinct keys are recorded
// in first-seen order.
func New[K comparable, V any](items []V, keyOf func(V) K) *Index[K, V] {
	ix := &Index[K, V]{groups: make(map[K][]V, len(items))}
	for _, item := range items {
		k := keyOf(item)
		if _, seen := ix.groups[k]; !seen {
			ix.keys = append(ix.keys, k)
		}
		ix.groups[k] = append(ix.groups[k], item)
	}
	return ix
}

// Get returns the records whose key equals k, in input order. The returned
// slice is shared with the index and must not be modified; it is nil when no
// record has key k.
func (ix *Index[K, V]) Get(k K) []V {
	return ix.groups[k]
}

// Contains reports whether at least one record has key k.
func (ix *Index[K, V]) Contains(k K) bool {
	_, ok := ix.groups[k]
	return ok
}

// Keys returns the distinct keys in first-seen order.
func (ix *Index[K, V]) Keys() []K {
	return slices.Clone(ix.keys)
}

// Len returns the number of distinct keys.
func (ix *Index[K, V]) Len() int {
	return len(ix.groups)
}
