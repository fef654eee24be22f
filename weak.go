package bounded

import (
	"fmt"
	"iter"
	"slices"
)

// Weak is a sequence whose bound is advisory rather than enforced at
// construction: ForceFrom accepts input of any length and logs a warning when
// it is over bound, instead of rejecting it. It exists for trusted producers
// (migrations, test fixtures, data already validated elsewhere); anything
// decoding untrusted bytes should use Vec, whose decode paths enforce the
// bound strictly.
type Weak[T any, B Bound] struct {
	items []T
}

// ForceFrom takes ownership of items without enforcing the bound. When the
// input is longer than the bound a warning is logged through the package
// logger; note identifies the call site in that log line.
func ForceFrom[T any, B Bound](items []T, note string) Weak[T, B] {
	if b := BoundOf[B](); len(items) > b {
		logger().Warn("length of a bounded sequence exceeded its bound", Fields{
			"len":   len(items),
			"bound": b,
			"note":  note,
		})
	}
	return Weak[T, B]{items: items}
}

// Bound returns the resolved bound of the type.
func (Weak[T, B]) Bound() int { return BoundOf[B]() }

// Len returns the current element count.
func (w Weak[T, B]) Len() int { return len(w.items) }

// IsEmpty reports whether the sequence holds no elements.
func (w Weak[T, B]) IsEmpty() bool { return len(w.items) == 0 }

// Elems exposes the underlying storage for read access.
func (w Weak[T, B]) Elems() []T { return w.items }

// Values iterates over elements.
func (w Weak[T, B]) Values() iter.Seq[T] { return slices.Values(w.items) }

// Clone returns a deep copy sharing no storage with w.
func (w Weak[T, B]) Clone() Weak[T, B] {
	return Weak[T, B]{items: slices.Clone(w.items)}
}

// IntoSlice releases the underlying storage and empties the sequence.
func (w *Weak[T, B]) IntoSlice() []T {
	s := w.items
	w.items = nil
	return s
}

// TryPush appends x unless the result would exceed the bound. An over-bound
// Weak therefore cannot grow further; it can only shrink back under bound.
func (w *Weak[T, B]) TryPush(x T) bool {
	if len(w.items) >= BoundOf[B]() {
		return false
	}
	w.items = append(w.items, x)
	return true
}

// Pop removes and returns the last element, or reports false when empty.
func (w *Weak[T, B]) Pop() (T, bool) {
	var zero T
	if len(w.items) == 0 {
		return zero, false
	}
	last := len(w.items) - 1
	x := w.items[last]
	w.items[last] = zero
	w.items = w.items[:last]
	return x, true
}

// Truncate keeps the first n elements. No-op when n >= Len(). Panics on
// negative n.
func (w *Weak[T, B]) Truncate(n int) {
	if n < 0 {
		panic(fmt.Sprintf("bounded: truncate to negative length %d", n))
	}
	if n >= len(w.items) {
		return
	}
	clear(w.items[n:])
	w.items = w.items[:n]
}

// Rebound converts to a strict Vec when the current length is within bound.
// On failure it reports false and w is unchanged.
func (w Weak[T, B]) Rebound() (Vec[T, B], bool) {
	if len(w.items) > BoundOf[B]() {
		return Vec[T, B]{}, false
	}
	return Vec[T, B]{items: w.items}, true
}
