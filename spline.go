package spline

import (
	"slices"
	"sort"
)

// Spline is an ordered sequence of keys sampled with an Interpolator.
//
// Key times are non-decreasing after every operation. Keys sharing a time keep
// their insertion order. A Spline has no internal locking: concurrent sampling
// is safe, any mutation must be serialized with all other access by the caller.
type Spline[T Float, V any] struct {
	keys   []Key[T, V]
	interp Interpolator[T, V]
}

// New creates a spline from keys already ordered by time. The keys are copied;
// they are not sorted, so duplicate times keep the order in which they are given.
// Use Add to insert keys in arbitrary order.
func New[T Float, V any](interp Interpolator[T, V], keys ...Key[T, V]) *Spline[T, V] {
	return FromSlice(interp, keys)
}

// FromSlice creates a spline from a slice of keys already ordered by time.
// The slice is copied.
func FromSlice[T Float, V any](interp Interpolator[T, V], keys []Key[T, V]) *Spline[T, V] {
	if interp == nil {
		panic("spline: nil interpolator")
	}

	return &Spline[T, V]{
		keys:   slices.Clone(keys),
		interp: interp,
	}
}

// NewScalar creates a spline over plain floating-point values.
func NewScalar[T Float](keys ...Key[T, T]) *Spline[T, T] {
	return FromSlice[T, T](Scalar[T]{}, keys)
}

// NewVector creates a spline over a value type implementing Value, with the
// cubic primitives derived from its methods.
func NewVector[T Float, V Value[T, V]](keys ...Key[T, V]) *Spline[T, V] {
	return FromSlice(Derive[T, V](Methods[T, V]{}), keys)
}

// Interpolator returns the interpolator the spline samples with.
func (s *Spline[T, V]) Interpolator() Interpolator[T, V] {
	return s.interp
}

// Len returns the number of keys.
func (s *Spline[T, V]) Len() int {
	return len(s.keys)
}

// IsEmpty reports whether the spline has no keys.
func (s *Spline[T, V]) IsEmpty() bool {
	return len(s.keys) == 0
}

// Keys returns a copy of the keys in time order.
func (s *Spline[T, V]) Keys() []Key[T, V] {
	return slices.Clone(s.keys)
}

// Key returns the key at index i.
func (s *Spline[T, V]) Key(i int) (Key[T, V], bool) {
	if i < 0 || i >= len(s.keys) {
		return Key[T, V]{}, false
	}
	return s.keys[i], true
}

// Bounds returns the times of the first and last keys.
func (s *Spline[T, V]) Bounds() (start, end T, ok bool) {
	if len(s.keys) == 0 {
		return 0, 0, false
	}
	return s.keys[0].Time, s.keys[len(s.keys)-1].Time, true
}

// Add inserts key before the first key with a strictly greater time, or
// appends it. A key with the same time as existing keys lands after them.
func (s *Spline[T, V]) Add(key Key[T, V]) {
	i := sort.Search(len(s.keys), func(i int) bool {
		return s.keys[i].Time > key.Time
	})
	s.keys = slices.Insert(s.keys, i, key)
}

// Remove deletes and returns the key at index i. It reports false, leaving
// the spline unchanged, when i is out of range.
func (s *Spline[T, V]) Remove(i int) (Key[T, V], bool) {
	if i < 0 || i >= len(s.keys) {
		return Key[T, V]{}, false
	}

	removed := s.keys[i]
	s.keys = slices.Delete(s.keys, i, i+1)

	return removed, true
}

// Replace swaps the key at index i for key and returns the previous key.
// The new key is placed by time, so it may end up at a different index.
// When i is out of range the spline is left unchanged and Replace reports false.
func (s *Spline[T, V]) Replace(i int, key Key[T, V]) (Key[T, V], bool) {
	old, ok := s.Remove(i)
	if !ok {
		return Key[T, V]{}, false
	}

	s.Add(key)

	return old, true
}

// Clone returns an independent copy of the spline sharing its interpolator.
func (s *Spline[T, V]) Clone() *Spline[T, V] {
	return &Spline[T, V]{
		keys:   slices.Clone(s.keys),
		interp: s.interp,
	}
}
