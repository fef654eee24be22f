package bounded

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
)

// View is a read-only, bound-respecting window over externally owned
// contiguous storage. It holds only a reference, so copying is cheap. The
// bound invariant is established at construction and cannot be violated
// afterwards: a View has no mutating operations. A View must not outlive, or
// be used across mutations of, the storage it borrows.
type View[T any, B Bound] struct {
	data []T
}

// TryView borrows s as a bounded view if it fits the bound. On failure it
// reports false and s is untouched.
func TryView[T any, B Bound](s []T) (View[T, B], bool) {
	if len(s) > BoundOf[B]() {
		return View[T, B]{}, false
	}
	return View[T, B]{data: s}, true
}

// TruncateView borrows the first min(len(s), bound) elements of s. Always
// succeeds; the underlying slice is not modified.
func TruncateView[T any, B Bound](s []T) View[T, B] {
	if b := BoundOf[B](); len(s) > b {
		s = s[:b]
	}
	return View[T, B]{data: s}
}

// Bound returns the resolved bound of the type.
func (View[T, B]) Bound() int { return BoundOf[B]() }

// Len returns the element count.
func (s View[T, B]) Len() int { return len(s.data) }

// IsEmpty reports whether the view holds no elements.
func (s View[T, B]) IsEmpty() bool { return len(s.data) == 0 }

// Get returns the element at i, or the zero value and false when i is out of
// range.
func (s View[T, B]) Get(i int) (T, bool) {
	if i < 0 || i >= len(s.data) {
		var zero T
		return zero, false
	}
	return s.data[i], true
}

// At returns the element at i. Panics when i is out of range.
func (s View[T, B]) At(i int) T {
	if i < 0 || i >= len(s.data) {
		panic(fmt.Sprintf("bounded: index %d out of range (len %d)", i, len(s.data)))
	}
	return s.data[i]
}

// First returns the first element, or false when empty.
func (s View[T, B]) First() (T, bool) { return s.Get(0) }

// Last returns the last element, or false when empty.
func (s View[T, B]) Last() (T, bool) { return s.Get(len(s.data) - 1) }

// Raw returns the borrowed slice. Read-only by contract.
func (s View[T, B]) Raw() []T { return s.data }

// ToVec copies the view into an owning Vec with the same bound.
func (s View[T, B]) ToVec() Vec[T, B] {
	return Vec[T, B]{items: slices.Clone(s.data)}
}

// All iterates over index/element pairs.
func (s View[T, B]) All() iter.Seq2[int, T] { return slices.All(s.data) }

// Values iterates over elements.
func (s View[T, B]) Values() iter.Seq[T] { return slices.Values(s.data) }

// String formats like fmt would a slice, with the bound appended.
func (s View[T, B]) String() string {
	return fmt.Sprintf("View(%v, %d)", s.data, BoundOf[B]())
}

// EqualViews reports element-wise equality; bound tags take no part.
func EqualViews[T comparable, BA, BB Bound](a View[T, BA], b View[T, BB]) bool {
	return slices.Equal(a.data, b.data)
}

// CompareViews orders lexicographically over the visible elements.
func CompareViews[T cmp.Ordered, BA, BB Bound](a View[T, BA], b View[T, BB]) int {
	return slices.Compare(a.data, b.data)
}

// EqualVecView compares an owning sequence with a view, element-wise.
func EqualVecView[T comparable, BA, BB Bound](a Vec[T, BA], b View[T, BB]) bool {
	return slices.Equal(a.items, b.data)
}
