// Package chainmap implements a generic hash table resolving collisions by separate
// chaining. Every bucket is a slice of key-value pairs. The table grows by rehashing all
// the entries into a bigger bucket array once the load factor is exceeded, and never shrinks.
//
// Table isn't safe for concurrent use.
package chainmap

import (
	"hash/maphash"
	"iter"

	"github.com/indigo-web/chainmap/errors"
	"github.com/indigo-web/chainmap/settings"
)

// Table is a mapping of unique keys to values. The zero value is an empty table with
// default settings, ready to use.
type Table[K comparable, V any] struct {
	buckets  []bucket[K, V]
	items    int
	seed     maphash.Seed
	settings settings.Settings
}

// New returns an empty table. No buckets are allocated until the first insertion.
func New[K comparable, V any]() *Table[K, V] {
	return WithSettings[K, V](settings.Default())
}

// WithSettings returns an empty table growing as described by s. Unset fields fall back to
// defaults.
func WithSettings[K comparable, V any](s settings.Settings) *Table[K, V] {
	return &Table[K, V]{
		settings: settings.Fill(s),
	}
}

// Insert stores the value by the key. If the key is already presented, its value is replaced
// and the previous one is returned along with true.
func (t *Table[K, V]) Insert(key K, value V) (prev V, replaced bool) {
	if len(t.buckets) == 0 || t.overloaded() {
		t.resize()
	}

	b := &t.buckets[t.index(key, len(t.buckets))]
	if i := b.lookup(key); i >= 0 {
		prev, (*b)[i].Value = (*b)[i].Value, value
		return prev, true
	}

	*b = append(*b, entry[K, V]{Key: key, Value: value})
	t.items++

	return prev, false
}

// Get returns a value by the key and a bool, indicating whether it was found.
func (t *Table[K, V]) Get(key K) (value V, found bool) {
	if len(t.buckets) == 0 {
		return value, false
	}

	b := t.buckets[t.index(key, len(t.buckets))]
	if i := b.lookup(key); i >= 0 {
		return b[i].Value, true
	}

	return value, false
}

// GetOr returns either the value by the key or the fallback, if the key isn't presented.
func (t *Table[K, V]) GetOr(key K, or V) V {
	value, found := t.Get(key)
	if !found {
		return or
	}

	return value
}

// Lookup acts like Get, but reports a missing key as errors.ErrNoSuchKey.
func (t *Table[K, V]) Lookup(key K) (V, error) {
	value, found := t.Get(key)
	if !found {
		return value, errors.ErrNoSuchKey
	}

	return value, nil
}

// Has indicates, whether there's an entry by the key.
func (t *Table[K, V]) Has(key K) bool {
	_, found := t.Get(key)
	return found
}

// Remove deletes the entry by the key and returns its value. Relative order of the rest of
// the entries in the bucket isn't preserved.
func (t *Table[K, V]) Remove(key K) (value V, found bool) {
	if len(t.buckets) == 0 {
		return value, false
	}

	b := &t.buckets[t.index(key, len(t.buckets))]
	i := b.lookup(key)
	if i < 0 {
		return value, false
	}

	var removed entry[K, V]
	*b, removed = b.swapRemove(i)
	t.items--

	return removed.Value, true
}

// Len returns a number of stored entries.
func (t *Table[K, V]) Len() int {
	return t.items
}

// Buckets returns the current number of buckets.
func (t *Table[K, V]) Buckets() int {
	return len(t.buckets)
}

// All returns an iterator over the entries. The order is unspecified and may change
// after any insertion. The table must not be modified while iterating.
func (t *Table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, b := range t.buckets {
			for _, e := range b {
				if !yield(e.Key, e.Value) {
					return
				}
			}
		}
	}
}

// Clone returns a copy of the table. Keys and values themselves are copied by assignment,
// so pointers stored in them are shared.
func (t *Table[K, V]) Clone() *Table[K, V] {
	buckets := make([]bucket[K, V], len(t.buckets))
	for i, b := range t.buckets {
		if len(b) > 0 {
			buckets[i] = append(bucket[K, V](nil), b...)
		}
	}

	return &Table[K, V]{
		buckets:  buckets,
		items:    t.items,
		seed:     t.seed,
		settings: t.settings,
	}
}

func (t *Table[K, V]) overloaded() bool {
	return t.items > t.settings.Load.Numerator*len(t.buckets)/t.settings.Load.Denominator
}

// index must be the only way to pick a bucket, otherwise entries become unreachable.
func (t *Table[K, V]) index(key K, buckets int) int {
	return int(maphash.Comparable(t.seed, key) % uint64(buckets))
}

func (t *Table[K, V]) resize() {
	target := t.settings.Buckets.GrowthFactor * len(t.buckets)
	if len(t.buckets) == 0 {
		// the zero value of Table is usable, so both settings and seed might be
		// uninitialized here
		t.settings = settings.Fill(t.settings)
		if t.seed == (maphash.Seed{}) {
			t.seed = maphash.MakeSeed()
		}

		target = t.settings.Buckets.Initial
	}

	buckets := make([]bucket[K, V], target)
	for _, b := range t.buckets {
		for _, e := range b {
			i := t.index(e.Key, target)
			buckets[i] = append(buckets[i], e)
		}
	}

	t.buckets = buckets
}
