// Package boundedmap provides a tiny fixed-capacity hash map that iterates in
// insertion order, plus an allocation-free empty map sentinel.
//
// Neither type is safe for concurrent mutation; callers sharing a map must
// serialize access themselves.
package boundedmap

import (
	"fmt"
	"iter"
	"strings"

	"github.com/unkn0wn-root/seedhash/internal/identity"
)

// Capacity is the fixed number of buckets and the maximum number of entries.
const Capacity = 128

// Map is the contract shared by BoundedOrderedMap and the Empty sentinel.
type Map[K comparable, V any] interface {
	// Put stores value under key. It returns the previous value and true
	// when key was already present.
	Put(key K, value V) (V, bool, error)
	Get(key K) (V, bool)
	Remove(key K) (V, bool)
	ContainsKey(key K) bool
	Size() int
	IsEmpty() bool
	// All yields entries in insertion order.
	All() iter.Seq2[K, V]
}

// ref addresses a slot by index+1; the zero ref is the end of a list.
type ref int16

const nilRef ref = 0

// slot is a single entry. It sits on exactly one bucket chain (chainNext)
// and at exactly one position of the insertion order list (orderNext).
// Free slots are linked through chainNext.
type slot[K comparable, V any] struct {
	key       K
	value     V
	chainNext ref
	orderNext ref
}

// BoundedOrderedMap holds at most Capacity entries and never resizes.
// Updating an existing key keeps its position in iteration order; only
// remove followed by put moves a key to the end.
//
// The zero value is an empty map ready to use.
type BoundedOrderedMap[K comparable, V any] struct {
	buckets [Capacity]ref
	slots   []slot[K, V] // grows up to Capacity, then recycles via free
	free    ref
	first   ref // oldest live entry
	last    ref // newest live entry
	size    int
}

var _ Map[string, int] = (*BoundedOrderedMap[string, int])(nil)

// New returns an empty bounded map.
func New[K comparable, V any]() *BoundedOrderedMap[K, V] {
	return &BoundedOrderedMap[K, V]{}
}

// BucketIndex maps key to its bucket: |hash(key)| mod Capacity.
func BucketIndex[K comparable](key K) int {
	i := identity.Hash(key) % Capacity
	if i < 0 {
		i = -i
	}
	return int(i)
}

func (m *BoundedOrderedMap[K, V]) at(r ref) *slot[K, V] {
	return &m.slots[r-1]
}

// lookup scans key's bucket chain. It returns the bucket, the matching slot
// (nilRef if absent) and its chain predecessor.
func (m *BoundedOrderedMap[K, V]) lookup(key K) (bucket int, prev, cur ref) {
	bucket = BucketIndex(key)
	for cur = m.buckets[bucket]; cur != nilRef; prev, cur = cur, m.at(cur).chainNext {
		if m.at(cur).key == key {
			return bucket, prev, cur
		}
	}
	return bucket, prev, nilRef
}

// Put inserts or updates key. A new key on a full map fails with
// ErrCapacityExceeded; updating an existing key never fails.
func (m *BoundedOrderedMap[K, V]) Put(key K, value V) (V, bool, error) {
	bucket, tail, cur := m.lookup(key)
	if cur != nilRef {
		s := m.at(cur)
		old := s.value
		s.value = value
		return old, true, nil
	}

	var zero V
	if m.size == Capacity {
		return zero, false, newMapError("put", m.size, ErrCapacityExceeded)
	}

	r := m.alloc()
	s := m.at(r)
	s.key, s.value = key, value

	// lookup ran off the end of the chain, so tail is its last slot
	if tail == nilRef {
		m.buckets[bucket] = r
	} else {
		m.at(tail).chainNext = r
	}

	if m.last == nilRef {
		m.first = r
	} else {
		m.at(m.last).orderNext = r
	}
	m.last = r
	m.size++
	return zero, false, nil
}

// Get returns the value stored under key.
func (m *BoundedOrderedMap[K, V]) Get(key K) (V, bool) {
	if _, _, cur := m.lookup(key); cur != nilRef {
		return m.at(cur).value, true
	}
	var zero V
	return zero, false
}

// ContainsKey reports whether key is present.
func (m *BoundedOrderedMap[K, V]) ContainsKey(key K) bool {
	_, _, cur := m.lookup(key)
	return cur != nilRef
}

// Remove deletes key and returns its value. Unlinking from the order list
// walks from the oldest entry since slots carry no back pointers.
func (m *BoundedOrderedMap[K, V]) Remove(key K) (V, bool) {
	var zero V
	bucket, prev, cur := m.lookup(key)
	if cur == nilRef {
		return zero, false
	}

	s := m.at(cur)
	if prev == nilRef {
		m.buckets[bucket] = s.chainNext
	} else {
		m.at(prev).chainNext = s.chainNext
	}
	m.unlinkOrder(cur)

	value := s.value
	m.release(cur)
	m.size--
	return value, true
}

func (m *BoundedOrderedMap[K, V]) unlinkOrder(r ref) {
	next := m.at(r).orderNext
	if m.first == r {
		m.first = next
		if m.last == r {
			m.last = nilRef
		}
		return
	}

	for p := m.first; p != nilRef; p = m.at(p).orderNext {
		ps := m.at(p)
		if ps.orderNext != r {
			continue
		}
		ps.orderNext = next
		if m.last == r {
			m.last = p
		}
		return
	}
}

// alloc takes a slot from the free list, or grows slots while below Capacity.
func (m *BoundedOrderedMap[K, V]) alloc() ref {
	if m.free != nilRef {
		r := m.free
		m.free = m.at(r).chainNext
		m.at(r).chainNext = nilRef
		return r
	}
	if m.slots == nil {
		m.slots = make([]slot[K, V], 0, Capacity)
	}
	m.slots = append(m.slots, slot[K, V]{})
	return ref(len(m.slots))
}

// release clears the slot so it does not pin key or value, then frees it.
func (m *BoundedOrderedMap[K, V]) release(r ref) {
	*m.at(r) = slot[K, V]{chainNext: m.free}
	m.free = r
}

// Size returns the number of entries.
func (m *BoundedOrderedMap[K, V]) Size() int {
	return m.size
}

// IsEmpty reports whether the map has no entries.
func (m *BoundedOrderedMap[K, V]) IsEmpty() bool {
	return m.size == 0
}

// Clear removes all entries, keeping the slot storage for reuse.
func (m *BoundedOrderedMap[K, V]) Clear() {
	clear(m.slots)
	*m = BoundedOrderedMap[K, V]{slots: m.slots[:0]}
}

// All yields entries from oldest to newest. Mutating the map other than
// removing the entry just yielded has undefined effects on the sequence.
func (m *BoundedOrderedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for r := m.first; r != nilRef; {
			s := m.at(r)
			next := s.orderNext
			if !yield(s.key, s.value) {
				return
			}
			r = next
		}
	}
}

// Keys yields keys in insertion order.
func (m *BoundedOrderedMap[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values yields values in key insertion order.
func (m *BoundedOrderedMap[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}

func (m *BoundedOrderedMap[K, V]) String() string {
	var b strings.Builder
	b.WriteString("map[")
	sep := ""
	for k, v := range m.All() {
		fmt.Fprintf(&b, "%s%v:%v", sep, k, v)
		sep = " "
	}
	b.WriteByte(']')
	return b.String()
}
