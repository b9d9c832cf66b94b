package chainmap

type bucket[K comparable, V any] []entry[K, V]

type entry[K comparable, V any] struct {
	Key   K
	Value V
}

// lookup returns the position of the entry with the key, or -1 if there is none.
func (b bucket[K, V]) lookup(key K) int {
	for i, e := range b {
		if e.Key == key {
			return i
		}
	}

	return -1
}

// swapRemove moves the last entry onto the position i and shrinks the bucket by one.
// The vacated slot is zeroed, so the bucket doesn't keep the removed key and value alive.
func (b bucket[K, V]) swapRemove(i int) (bucket[K, V], entry[K, V]) {
	removed := b[i]
	last := len(b) - 1
	b[i] = b[last]
	b[last] = entry[K, V]{}

	return b[:last], removed
}
