package boundedmap

import "iter"

// emptyMap has no fields, so every instance is the same value and boxing it
// into a Map does not allocate.
type emptyMap[K comparable, V any] struct{}

// Empty returns the immutable map with no entries. Put always fails with
// ErrUnsupportedOperation; reads report absence.
func Empty[K comparable, V any]() Map[K, V] {
	return emptyMap[K, V]{}
}

func (emptyMap[K, V]) Put(K, V) (V, bool, error) {
	var zero V
	return zero, false, newMapError("put", 0, ErrUnsupportedOperation)
}

func (emptyMap[K, V]) Get(K) (V, bool) {
	var zero V
	return zero, false
}

func (emptyMap[K, V]) Remove(K) (V, bool) {
	var zero V
	return zero, false
}

func (emptyMap[K, V]) ContainsKey(K) bool { return false }
func (emptyMap[K, V]) Size() int          { return 0 }
func (emptyMap[K, V]) IsEmpty() bool      { return true }

func (emptyMap[K, V]) All() iter.Seq2[K, V] {
	return func(func(K, V) bool) {}
}

func (emptyMap[K, V]) String() string { return "map[]" }
