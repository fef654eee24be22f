package bounded

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
)

// Vec is an owning, growable sequence of T whose length never exceeds the
// bound resolved by the tag type B. The zero value is an empty, ready-to-use
// Vec. All mutation goes through methods that either preserve the bound
// trivially, reject on overflow (Try*), or evict to make room (Force*).
//
// Vec is a plain value with single-owner mutation semantics; it is not safe
// for concurrent mutation.
type Vec[T any, B Bound] struct {
	items []T
}

// New returns an empty Vec. Equivalent to the zero value.
func New[T any, B Bound]() Vec[T, B] {
	return Vec[T, B]{}
}

// WithBoundedCapacity pre-reserves min(n, bound) storage. The reservation
// never exceeds the bound, so a hostile capacity hint cannot force a large
// allocation.
func WithBoundedCapacity[T any, B Bound](n int) Vec[T, B] {
	if b := BoundOf[B](); n > b {
		n = b
	}
	if n < 0 {
		n = 0
	}
	return Vec[T, B]{items: make([]T, 0, n)}
}

// WithMaxCapacity pre-reserves storage for the full bound.
func WithMaxCapacity[T any, B Bound]() Vec[T, B] {
	return WithBoundedCapacity[T, B](BoundOf[B]())
}

// TryFrom takes ownership of items if it fits the bound. On failure it
// reports false and the input is untouched and still usable by the caller.
func TryFrom[T any, B Bound](items []T) (Vec[T, B], bool) {
	if len(items) > BoundOf[B]() {
		return Vec[T, B]{}, false
	}
	return Vec[T, B]{items: items}, true
}

// TruncateFrom takes ownership of items, dropping any tail beyond the bound.
// Always succeeds. The input slice must not be used again by the caller.
func TruncateFrom[T any, B Bound](items []T) Vec[T, B] {
	if b := BoundOf[B](); len(items) > b {
		clear(items[b:])
		items = items[:b]
	}
	return Vec[T, B]{items: items}
}

// TryCollect materializes n elements from produce. The count is checked
// against the bound before produce is called even once, so an oversized
// producer is rejected without allocating.
func TryCollect[T any, B Bound](n int, produce func(i int) T) (Vec[T, B], bool) {
	if n < 0 || n > BoundOf[B]() {
		return Vec[T, B]{}, false
	}
	items := make([]T, n)
	for i := range items {
		items[i] = produce(i)
	}
	return Vec[T, B]{items: items}, true
}

// Bound returns the resolved bound of the type.
func (Vec[T, B]) Bound() int { return BoundOf[B]() }

// Len returns the current element count.
func (v Vec[T, B]) Len() int { return len(v.items) }

// IsEmpty reports whether the Vec holds no elements.
func (v Vec[T, B]) IsEmpty() bool { return len(v.items) == 0 }

// IsFull reports whether the Vec is at its bound.
func (v Vec[T, B]) IsFull() bool { return len(v.items) >= BoundOf[B]() }

// Get returns the element at i, or the zero value and false when i is out of
// range.
func (v Vec[T, B]) Get(i int) (T, bool) {
	if i < 0 || i >= len(v.items) {
		var zero T
		return zero, false
	}
	return v.items[i], true
}

// At returns the element at i. Panics when i is out of range; an out-of-range
// index is a caller bug, not a runtime condition.
func (v Vec[T, B]) At(i int) T {
	if i < 0 || i >= len(v.items) {
		panic(fmt.Sprintf("bounded: index %d out of range (len %d)", i, len(v.items)))
	}
	return v.items[i]
}

// Set replaces the element at i. Panics when i is out of range. Length is
// unchanged, so the bound cannot be violated.
func (v *Vec[T, B]) Set(i int, x T) {
	if i < 0 || i >= len(v.items) {
		panic(fmt.Sprintf("bounded: index %d out of range (len %d)", i, len(v.items)))
	}
	v.items[i] = x
}

// First returns the first element, or false when empty.
func (v Vec[T, B]) First() (T, bool) { return v.Get(0) }

// Last returns the last element, or false when empty.
func (v Vec[T, B]) Last() (T, bool) { return v.Get(len(v.items) - 1) }

// Elems exposes the underlying storage for read access. The caller must not
// grow it; use IntoSlice for an explicit opt-out of the bound.
func (v Vec[T, B]) Elems() []T { return v.items }

// IntoSlice releases the underlying storage and empties the Vec. The returned
// slice is no longer bound-checked; TryFrom converts back.
func (v *Vec[T, B]) IntoSlice() []T {
	s := v.items
	v.items = nil
	return s
}

// Clone returns a deep copy sharing no storage with v.
func (v Vec[T, B]) Clone() Vec[T, B] {
	return Vec[T, B]{items: slices.Clone(v.items)}
}

// View derives a read-only bounded window over v's storage. The view is valid
// only while v is not mutated.
func (v Vec[T, B]) View() View[T, B] {
	return View[T, B]{data: v.items}
}

// All iterates over index/element pairs.
func (v Vec[T, B]) All() iter.Seq2[int, T] { return slices.All(v.items) }

// Values iterates over elements.
func (v Vec[T, B]) Values() iter.Seq[T] { return slices.Values(v.items) }

// String formats like fmt would a slice, with the bound appended.
func (v Vec[T, B]) String() string {
	return fmt.Sprintf("Vec(%v, %d)", v.items, BoundOf[B]())
}

// Equal reports element-wise equality. The bound tags take no part: two
// sequences with different tags but identical contents are equal.
func Equal[T comparable, BA, BB Bound](a Vec[T, BA], b Vec[T, BB]) bool {
	return slices.Equal(a.items, b.items)
}

// EqualFunc is Equal with a custom element predicate.
func EqualFunc[T any, BA, BB Bound](a Vec[T, BA], b Vec[T, BB], eq func(T, T) bool) bool {
	return slices.EqualFunc(a.items, b.items, eq)
}

// Compare orders lexicographically, exactly like slices.Compare on the
// underlying storage.
func Compare[T cmp.Ordered, BA, BB Bound](a Vec[T, BA], b Vec[T, BB]) int {
	return slices.Compare(a.items, b.items)
}

// Sort sorts in place. Safe: sorting never changes the length.
func Sort[T cmp.Ordered, B Bound](v *Vec[T, B]) {
	slices.Sort(v.items)
}

// SortFunc sorts in place using the given comparison.
func (v *Vec[T, B]) SortFunc(cmp func(a, b T) int) {
	slices.SortFunc(v.items, cmp)
}

// SortStableFunc is SortFunc keeping equal elements in their original order.
func (v *Vec[T, B]) SortStableFunc(cmp func(a, b T) int) {
	slices.SortStableFunc(v.items, cmp)
}
