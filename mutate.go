package bounded

import (
	"fmt"
	"slices"
)

// Checked mutators reject instead of exceeding the bound. Rejection is a
// complete no-op: state is unchanged and the caller still owns the rejected
// input. Forcing mutators never reject on capacity; they evict an existing
// element to make room and return it.

// TryPush appends x. Reports false, and changes nothing, when the Vec is
// full.
func (v *Vec[T, B]) TryPush(x T) bool {
	if len(v.items) >= BoundOf[B]() {
		return false
	}
	v.items = append(v.items, x)
	return true
}

// TryInsert inserts x at index i, shifting later elements right. Reports
// false, and changes nothing, when the Vec is full.
//
// Panics when i > Len(): an out-of-range insertion point is a caller bug,
// distinct from the recoverable capacity rejection.
func (v *Vec[T, B]) TryInsert(i int, x T) bool {
	if i < 0 || i > len(v.items) {
		panic(fmt.Sprintf("bounded: insert index %d out of range (len %d)", i, len(v.items)))
	}
	if len(v.items) >= BoundOf[B]() {
		return false
	}
	v.items = slices.Insert(v.items, i, x)
	return true
}

// TryExtend appends all of xs, or none: when the combined length would exceed
// the bound it reports false and changes nothing.
func (v *Vec[T, B]) TryExtend(xs ...T) bool {
	if len(v.items)+len(xs) > BoundOf[B]() {
		return false
	}
	v.items = append(v.items, xs...)
	return true
}

// TryAppend moves every element of other to the end of v and empties other.
// When the combined length would exceed the bound it reports false and both
// sequences are unchanged.
func (v *Vec[T, B]) TryAppend(other *Vec[T, B]) bool {
	if len(v.items)+len(other.items) > BoundOf[B]() {
		return false
	}
	v.items = append(v.items, other.items...)
	clear(other.items)
	other.items = other.items[:0]
	return true
}

// TryRotateLeft rotates in place so that the element at mid becomes first.
// Reports false, and changes nothing, when mid > Len(). Length-preserving,
// so always bound-safe.
func (v *Vec[T, B]) TryRotateLeft(mid int) bool {
	if mid < 0 || mid > len(v.items) {
		return false
	}
	rotateLeft(v.items, mid)
	return true
}

// TryRotateRight rotates in place so that the last mid elements move to the
// front. Reports false, and changes nothing, when mid > Len().
func (v *Vec[T, B]) TryRotateRight(mid int) bool {
	if mid < 0 || mid > len(v.items) {
		return false
	}
	rotateRight(v.items, mid)
	return true
}

// ForcePush appends x, dropping the current last element first when the Vec
// is full. The new element always lands at the end and the survivors keep
// their order. No-op when the bound is zero.
func (v *Vec[T, B]) ForcePush(x T) {
	b := BoundOf[B]()
	if b == 0 {
		return
	}
	if len(v.items) > b-1 {
		clear(v.items[b-1:])
		v.items = v.items[:b-1]
	}
	v.items = append(v.items, x)
}

// ForceInsertKeepRight inserts x at index i, retaining all elements at or
// after i. When the Vec is full, the element at position 0 is evicted and the
// window before i is left-rotated by one so x still lands at i.
//
// No-op (ok=false) when i > bound, i > Len(), or i == 0 on a full Vec: there
// is nothing to keep right of position 0 while inserting there.
//
// Returns the evicted element if any.
func (v *Vec[T, B]) ForceInsertKeepRight(i int, x T) (evicted T, wasEvicted, ok bool) {
	var zero T
	b := BoundOf[B]()
	if i < 0 || i > b || i > len(v.items) {
		return zero, false, false
	}
	if len(v.items) < b {
		v.items = slices.Insert(v.items, i, x)
		return zero, false, true
	}
	if i == 0 {
		return zero, false, false
	}
	evicted = v.items[0]
	v.items[0] = x
	// carry x from slot 0 to slot i-1; everything at or after i is untouched.
	rotateLeft(v.items[:i], 1)
	return evicted, true, true
}

// ForceInsertKeepLeft inserts x at index i, retaining all elements before i.
// When the Vec is full, the last element is evicted to make room.
//
// No-op (ok=false) when i > bound, i > Len(), the bound is zero, or i equals
// the bound: inserting at the bound of a full Vec would evict the new element
// itself.
//
// Returns the evicted element if any.
func (v *Vec[T, B]) ForceInsertKeepLeft(i int, x T) (evicted T, wasEvicted, ok bool) {
	var zero T
	b := BoundOf[B]()
	if i < 0 || i > b || i > len(v.items) || b == 0 {
		return zero, false, false
	}
	if i == b {
		return zero, false, false
	}
	if len(v.items) >= b {
		last := len(v.items) - 1
		evicted = v.items[last]
		clear(v.items[last:])
		v.items = v.items[:last]
		wasEvicted = true
	}
	v.items = slices.Insert(v.items, i, x)
	return evicted, wasEvicted, true
}

// Slide moves the element at index so that it immediately precedes the
// element currently at insertPos, preserving the relative order of everything
// else. Implemented as a single rotation of the sub-range between the two
// positions, so the cost is proportional to the distance moved.
//
// Reports false without mutating when index is out of range, insertPos is
// past the end, or the move would change nothing (insertPos equal to index or
// index+1).
func (v *Vec[T, B]) Slide(index, insertPos int) bool {
	n := len(v.items)
	if index < 0 || insertPos < 0 || index >= n || insertPos > n {
		return false
	}
	if index == insertPos || index+1 == insertPos {
		return false
	}
	if insertPos < index {
		rotateRight(v.items[insertPos:index+1], 1)
		return true
	}
	// insertPos > index+1
	rotateLeft(v.items[index:insertPos], 1)
	return true
}

// BoundedResize resizes to min(size, bound) elements, growing with copies of
// fill or shrinking by truncation. Panics on negative size.
func (v *Vec[T, B]) BoundedResize(size int, fill T) {
	if size < 0 {
		panic(fmt.Sprintf("bounded: resize to negative size %d", size))
	}
	if b := BoundOf[B](); size > b {
		size = b
	}
	if size <= len(v.items) {
		clear(v.items[size:])
		v.items = v.items[:size]
		return
	}
	for len(v.items) < size {
		v.items = append(v.items, fill)
	}
}

// TryMutate consumes v, applies fn to the raw storage, and validates the
// result. Within bound, the mutated Vec is returned. Otherwise ok is false
// and the mutated value is discarded: an invalid sequence must never become
// observable, so the caller loses the contents rather than seeing them.
// Side effects of fn outside the storage are not rolled back.
func (v Vec[T, B]) TryMutate(fn func([]T) []T) (Vec[T, B], bool) {
	out := fn(v.items)
	if len(out) > BoundOf[B]() {
		return Vec[T, B]{}, false
	}
	return Vec[T, B]{items: out}, true
}

// Clear removes all elements, keeping capacity.
func (v *Vec[T, B]) Clear() {
	clear(v.items)
	v.items = v.items[:0]
}

// Truncate keeps the first n elements. No-op when n >= Len(). Panics on
// negative n.
func (v *Vec[T, B]) Truncate(n int) {
	if n < 0 {
		panic(fmt.Sprintf("bounded: truncate to negative length %d", n))
	}
	if n >= len(v.items) {
		return
	}
	clear(v.items[n:])
	v.items = v.items[:n]
}

// Pop removes and returns the last element, or reports false when empty.
func (v *Vec[T, B]) Pop() (T, bool) {
	var zero T
	if len(v.items) == 0 {
		return zero, false
	}
	last := len(v.items) - 1
	x := v.items[last]
	v.items[last] = zero
	v.items = v.items[:last]
	return x, true
}

// Remove removes and returns the element at i, shifting later elements left.
// Panics when i is out of range.
func (v *Vec[T, B]) Remove(i int) T {
	if i < 0 || i >= len(v.items) {
		panic(fmt.Sprintf("bounded: remove index %d out of range (len %d)", i, len(v.items)))
	}
	x := v.items[i]
	v.items = slices.Delete(v.items, i, i+1)
	return x
}

// SwapRemove removes and returns the element at i by moving the last element
// into its place. O(1), does not preserve order. Panics when i is out of
// range.
func (v *Vec[T, B]) SwapRemove(i int) T {
	if i < 0 || i >= len(v.items) {
		panic(fmt.Sprintf("bounded: swap-remove index %d out of range (len %d)", i, len(v.items)))
	}
	var zero T
	last := len(v.items) - 1
	x := v.items[i]
	v.items[i] = v.items[last]
	v.items[last] = zero
	v.items = v.items[:last]
	return x
}

// Retain keeps only the elements for which keep returns true, preserving
// order.
func (v *Vec[T, B]) Retain(keep func(T) bool) {
	v.items = slices.DeleteFunc(v.items, func(x T) bool { return !keep(x) })
}

// Drain removes the elements in [i, j) and returns them as a fresh slice.
// Panics when the range is invalid.
func (v *Vec[T, B]) Drain(i, j int) []T {
	if i < 0 || j < i || j > len(v.items) {
		panic(fmt.Sprintf("bounded: drain range [%d:%d] out of range (len %d)", i, j, len(v.items)))
	}
	out := make([]T, j-i)
	copy(out, v.items[i:j])
	v.items = slices.Delete(v.items, i, j)
	return out
}

// rotateLeft rotates s in place so s[k] becomes s[0]. Three-reversal rotate;
// k may equal len(s).
func rotateLeft[T any](s []T, k int) {
	n := len(s)
	if n == 0 {
		return
	}
	k %= n
	slices.Reverse(s[:k])
	slices.Reverse(s[k:])
	slices.Reverse(s)
}

func rotateRight[T any](s []T, k int) {
	if n := len(s); n > 0 {
		rotateLeft(s, n-k%n)
	}
}
