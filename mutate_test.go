package bounded

import (
	"math/rand"
	"slices"
	"testing"
)

// ==============================
// Checked mutators
// ==============================

func TestTryPush(t *testing.T) {
	v := vecOf[max4](t, 1, 2, 3)
	if !v.TryPush(0) {
		t.Fatalf("TryPush under bound failed")
	}
	wantElems(t, v.Elems(), 1, 2, 3, 0)

	if v.TryPush(9) {
		t.Fatalf("TryPush into full Vec succeeded")
	}
	wantElems(t, v.Elems(), 1, 2, 3, 0)
}

func TestTryInsert(t *testing.T) {
	v := vecOf[max4](t, 1, 2, 3)
	if !v.TryInsert(1, 0) {
		t.Fatalf("TryInsert under bound failed")
	}
	wantElems(t, v.Elems(), 1, 0, 2, 3)

	if v.TryInsert(0, 9) {
		t.Fatalf("TryInsert into full Vec succeeded")
	}
	wantElems(t, v.Elems(), 1, 0, 2, 3)
}

func TestTryInsertPanicsOutOfRange(t *testing.T) {
	v := vecOf[max4](t, 1, 2, 3)
	defer func() {
		if recover() == nil {
			t.Fatalf("TryInsert past len did not panic")
		}
	}()
	v.TryInsert(9, 0)
}

func TestTryExtend(t *testing.T) {
	v := vecOf[max5](t, 1, 2, 3)

	if !v.TryExtend(4) {
		t.Fatalf("extend by one failed")
	}
	wantElems(t, v.Elems(), 1, 2, 3, 4)
	if !v.TryExtend(5) {
		t.Fatalf("extend to bound failed")
	}
	wantElems(t, v.Elems(), 1, 2, 3, 4, 5)
	if v.TryExtend(6) {
		t.Fatalf("extend past bound succeeded")
	}
	wantElems(t, v.Elems(), 1, 2, 3, 4, 5)

	v = vecOf[max5](t, 1, 2, 3)
	if !v.TryExtend(4, 5) {
		t.Fatalf("extend exactly to bound failed")
	}
	wantElems(t, v.Elems(), 1, 2, 3, 4, 5)

	// all or nothing
	v = vecOf[max5](t, 1, 2, 3)
	if v.TryExtend(4, 5, 6) {
		t.Fatalf("oversized extend succeeded")
	}
	wantElems(t, v.Elems(), 1, 2, 3)
}

func TestTryAppend(t *testing.T) {
	v := vecOf[max5](t, 1, 2, 3)
	other := vecOf[max5](t, 4, 5)
	if !v.TryAppend(&other) {
		t.Fatalf("append within bound failed")
	}
	wantElems(t, v.Elems(), 1, 2, 3, 4, 5)
	if !other.IsEmpty() {
		t.Fatalf("append did not drain the source")
	}

	// rejection leaves both untouched
	v = vecOf[max5](t, 1, 2, 3)
	other = vecOf[max5](t, 4, 5, 6)
	if v.TryAppend(&other) {
		t.Fatalf("oversized append succeeded")
	}
	wantElems(t, v.Elems(), 1, 2, 3)
	wantElems(t, other.Elems(), 4, 5, 6)
}

func TestTryRotateLeft(t *testing.T) {
	orig := vecOf[max3](t, 1, 2, 3)
	v := orig.Clone()

	if !v.TryRotateLeft(0) {
		t.Fatalf("rotate by 0 rejected")
	}
	wantElems(t, v.Elems(), 1, 2, 3)
	if !v.TryRotateLeft(3) {
		t.Fatalf("rotate by len rejected")
	}
	wantElems(t, v.Elems(), 1, 2, 3)

	if v.TryRotateLeft(4) {
		t.Fatalf("rotate past len accepted")
	}
	wantElems(t, v.Elems(), 1, 2, 3)

	if !v.TryRotateLeft(1) {
		t.Fatalf("rotate by 1 rejected")
	}
	wantElems(t, v.Elems(), 2, 3, 1)
	if !v.TryRotateLeft(2) {
		t.Fatalf("rotate by 2 rejected")
	}
	wantElems(t, v.Elems(), 1, 2, 3)
	if !Equal(v, orig) {
		t.Fatalf("full cycle did not restore")
	}
}

func TestTryRotateRight(t *testing.T) {
	v := vecOf[max3](t, 1, 2, 3)

	if !v.TryRotateRight(0) || !v.TryRotateRight(3) {
		t.Fatalf("no-op rotations rejected")
	}
	wantElems(t, v.Elems(), 1, 2, 3)

	if v.TryRotateRight(4) {
		t.Fatalf("rotate past len accepted")
	}

	if !v.TryRotateRight(1) {
		t.Fatalf("rotate by 1 rejected")
	}
	wantElems(t, v.Elems(), 3, 1, 2)
	if !v.TryRotateRight(2) {
		t.Fatalf("rotate by 2 rejected")
	}
	wantElems(t, v.Elems(), 1, 2, 3)
}

// ==============================
// Forcing mutators
// ==============================

func TestForcePush(t *testing.T) {
	var v Vec[int, max4]
	for i := 1; i <= 4; i++ {
		v.ForcePush(i * 10)
	}
	wantElems(t, v.Elems(), 10, 20, 30, 40)

	// full: drops the current last element, new one lands at the end
	v.ForcePush(50)
	if v.Len() != 4 {
		t.Fatalf("force_push grew past bound: len=%d", v.Len())
	}
	wantElems(t, v.Elems(), 10, 20, 30, 50)

	var z Vec[int, max0]
	z.ForcePush(1)
	if !z.IsEmpty() {
		t.Fatalf("force_push on bound 0 was not a no-op")
	}
}

func TestForceInsertKeepRight(t *testing.T) {
	var b Vec[int, max4]

	if _, _, ok := b.ForceInsertKeepRight(1, 10); ok {
		t.Fatalf("insert past len accepted")
	}
	if !b.IsEmpty() {
		t.Fatalf("rejected insert mutated")
	}

	for _, step := range []struct{ i, x int }{{0, 30}, {0, 10}, {1, 20}, {3, 40}} {
		if _, we, ok := b.ForceInsertKeepRight(step.i, step.x); !ok || we {
			t.Fatalf("insert (%d,%d): ok=%v evicted=%v", step.i, step.x, ok, we)
		}
	}
	wantElems(t, b.Elems(), 10, 20, 30, 40)

	// at capacity: index 0 has nothing to keep right of
	if _, _, ok := b.ForceInsertKeepRight(0, 0); ok {
		t.Fatalf("keep-right at index 0 of full Vec accepted")
	}
	wantElems(t, b.Elems(), 10, 20, 30, 40)

	ev, we, ok := b.ForceInsertKeepRight(1, 11)
	if !ok || !we || ev != 10 {
		t.Fatalf("keep-right(1,11): evicted=%d,%v ok=%v", ev, we, ok)
	}
	wantElems(t, b.Elems(), 11, 20, 30, 40)

	ev, we, ok = b.ForceInsertKeepRight(3, 31)
	if !ok || !we || ev != 11 {
		t.Fatalf("keep-right(3,31): evicted=%d,%v ok=%v", ev, we, ok)
	}
	wantElems(t, b.Elems(), 20, 30, 31, 40)

	ev, we, ok = b.ForceInsertKeepRight(4, 41)
	if !ok || !we || ev != 20 {
		t.Fatalf("keep-right(4,41): evicted=%d,%v ok=%v", ev, we, ok)
	}
	wantElems(t, b.Elems(), 30, 31, 40, 41)

	if _, _, ok := b.ForceInsertKeepRight(5, 69); ok {
		t.Fatalf("insert past bound accepted")
	}
	wantElems(t, b.Elems(), 30, 31, 40, 41)

	var z Vec[int, max0]
	if _, _, ok := z.ForceInsertKeepRight(0, 10); ok {
		t.Fatalf("bound 0 insert accepted")
	}
	if !z.IsEmpty() {
		t.Fatalf("bound 0 Vec mutated")
	}
}

func TestForceInsertKeepLeft(t *testing.T) {
	var b Vec[int, max4]

	if _, _, ok := b.ForceInsertKeepLeft(1, 10); ok {
		t.Fatalf("insert past len accepted")
	}
	if !b.IsEmpty() {
		t.Fatalf("rejected insert mutated")
	}

	for _, step := range []struct{ i, x int }{{0, 30}, {0, 10}, {1, 20}, {3, 40}} {
		if _, we, ok := b.ForceInsertKeepLeft(step.i, step.x); !ok || we {
			t.Fatalf("insert (%d,%d): ok=%v evicted=%v", step.i, step.x, ok, we)
		}
	}
	wantElems(t, b.Elems(), 10, 20, 30, 40)

	// at capacity: inserting at the bound would evict the new element itself
	if _, _, ok := b.ForceInsertKeepLeft(4, 41); ok {
		t.Fatalf("keep-left at bound of full Vec accepted")
	}
	wantElems(t, b.Elems(), 10, 20, 30, 40)

	ev, we, ok := b.ForceInsertKeepLeft(3, 31)
	if !ok || !we || ev != 40 {
		t.Fatalf("keep-left(3,31): evicted=%d,%v ok=%v", ev, we, ok)
	}
	wantElems(t, b.Elems(), 10, 20, 30, 31)

	ev, we, ok = b.ForceInsertKeepLeft(1, 11)
	if !ok || !we || ev != 31 {
		t.Fatalf("keep-left(1,11): evicted=%d,%v ok=%v", ev, we, ok)
	}
	wantElems(t, b.Elems(), 10, 11, 20, 30)

	ev, we, ok = b.ForceInsertKeepLeft(0, 1)
	if !ok || !we || ev != 30 {
		t.Fatalf("keep-left(0,1): evicted=%d,%v ok=%v", ev, we, ok)
	}
	wantElems(t, b.Elems(), 1, 10, 11, 20)

	var z Vec[int, max0]
	if _, _, ok := z.ForceInsertKeepLeft(0, 10); ok {
		t.Fatalf("bound 0 insert accepted")
	}
	if !z.IsEmpty() {
		t.Fatalf("bound 0 Vec mutated")
	}
}

func TestSlide(t *testing.T) {
	b := vecOf[max6](t, 0, 1, 2, 3, 4, 5)

	if !b.Slide(1, 5) {
		t.Fatalf("slide(1,5) rejected")
	}
	wantElems(t, b.Elems(), 0, 2, 3, 4, 1, 5)
	if !b.Slide(4, 0) {
		t.Fatalf("slide(4,0) rejected")
	}
	wantElems(t, b.Elems(), 1, 0, 2, 3, 4, 5)
	if !b.Slide(0, 2) {
		t.Fatalf("slide(0,2) rejected")
	}
	wantElems(t, b.Elems(), 0, 1, 2, 3, 4, 5)
	if !b.Slide(1, 6) {
		t.Fatalf("slide(1,6) rejected")
	}
	wantElems(t, b.Elems(), 0, 2, 3, 4, 5, 1)
	if !b.Slide(0, 6) {
		t.Fatalf("slide(0,6) rejected")
	}
	wantElems(t, b.Elems(), 2, 3, 4, 5, 1, 0)
	if !b.Slide(5, 0) {
		t.Fatalf("slide(5,0) rejected")
	}
	wantElems(t, b.Elems(), 0, 2, 3, 4, 5, 1)
	if b.Slide(6, 0) || b.Slide(7, 0) {
		t.Fatalf("slide from past the end accepted")
	}
	wantElems(t, b.Elems(), 0, 2, 3, 4, 5, 1)

	c := vecOf[max6](t, 0, 1, 2)
	if c.Slide(1, 5) || c.Slide(4, 0) || c.Slide(3, 0) {
		t.Fatalf("out-of-range slide accepted on short Vec")
	}
	wantElems(t, c.Elems(), 0, 1, 2)
	if !c.Slide(2, 0) {
		t.Fatalf("slide(2,0) rejected")
	}
	wantElems(t, c.Elems(), 2, 0, 1)
}

func TestSlideNoops(t *testing.T) {
	b := vecOf[max6](t, 0, 1, 2, 3, 4, 5)
	if b.Slide(3, 3) {
		t.Fatalf("slide(i,i) must be a no-op")
	}
	wantElems(t, b.Elems(), 0, 1, 2, 3, 4, 5)
	if b.Slide(3, 4) {
		t.Fatalf("slide(i,i+1) must be a no-op")
	}
	wantElems(t, b.Elems(), 0, 1, 2, 3, 4, 5)
}

// sliding an element and sliding it back restores the original sequence.
func TestSlideRoundTrip(t *testing.T) {
	for i := 0; i < 6; i++ {
		for j := 0; j <= 6; j++ {
			if i == j || i+1 == j {
				continue
			}
			b := vecOf[max6](t, 0, 1, 2, 3, 4, 5)
			if !b.Slide(i, j) {
				t.Fatalf("slide(%d,%d) rejected", i, j)
			}
			// position of the moved element after the slide
			back := j
			if j > i {
				back = j - 1
			}
			inv := i
			if i > back {
				inv = i + 1
			}
			if !b.Slide(back, inv) {
				t.Fatalf("inverse slide(%d,%d) of (%d,%d) rejected", back, inv, i, j)
			}
			wantElems(t, b.Elems(), 0, 1, 2, 3, 4, 5)
		}
	}
}

func TestBoundedResize(t *testing.T) {
	var v Vec[int, max4]
	v.BoundedResize(2, 7)
	wantElems(t, v.Elems(), 7, 7)

	v.BoundedResize(10, 9) // clamped to bound
	wantElems(t, v.Elems(), 7, 7, 9, 9)

	v.BoundedResize(1, 0)
	wantElems(t, v.Elems(), 7)

	v.BoundedResize(0, 0)
	if !v.IsEmpty() {
		t.Fatalf("resize to 0 left elements")
	}
}

func TestTryMutate(t *testing.T) {
	v := vecOf[max7](t, 1, 2, 3, 4, 5, 6)
	v, ok := v.TryMutate(func(s []int) []int { return append(s, 7) })
	if !ok || v.Len() != 7 {
		t.Fatalf("mutation within bound rejected: ok=%v len=%d", ok, v.Len())
	}
	if _, ok := v.TryMutate(func(s []int) []int { return append(s, 8) }); ok {
		t.Fatalf("mutation past bound accepted")
	}
}

// ==============================
// Shrinking passthroughs
// ==============================

func TestPopRemoveSwapRemove(t *testing.T) {
	v := vecOf[max5](t, 1, 2, 3, 4, 5)

	x, ok := v.Pop()
	if !ok || x != 5 {
		t.Fatalf("Pop = %d, %v", x, ok)
	}
	if x := v.Remove(1); x != 2 {
		t.Fatalf("Remove(1) = %d", x)
	}
	wantElems(t, v.Elems(), 1, 3, 4)
	if x := v.SwapRemove(0); x != 1 {
		t.Fatalf("SwapRemove(0) = %d", x)
	}
	wantElems(t, v.Elems(), 4, 3)

	v.Clear()
	if _, ok := v.Pop(); ok {
		t.Fatalf("Pop from empty succeeded")
	}
}

func TestRemovePanicsOutOfRange(t *testing.T) {
	v := vecOf[max5](t, 1)
	defer func() {
		if recover() == nil {
			t.Fatalf("Remove out of range did not panic")
		}
	}()
	v.Remove(1)
}

func TestRetain(t *testing.T) {
	v := vecOf[max6](t, 1, 2, 3, 4, 5, 6)
	v.Retain(func(x int) bool { return x%2 == 0 })
	wantElems(t, v.Elems(), 2, 4, 6)
}

func TestTruncate(t *testing.T) {
	v := vecOf[max5](t, 1, 2, 3)
	v.Truncate(5) // no-op past len
	wantElems(t, v.Elems(), 1, 2, 3)
	v.Truncate(1)
	wantElems(t, v.Elems(), 1)
	v.Truncate(0)
	if !v.IsEmpty() {
		t.Fatalf("truncate to 0 left elements")
	}
}

func TestDrain(t *testing.T) {
	v := vecOf[max6](t, 1, 2, 3, 4, 5, 6)
	got := v.Drain(1, 4)
	wantElems(t, got, 2, 3, 4)
	wantElems(t, v.Elems(), 1, 5, 6)

	got = v.Drain(0, 0)
	if len(got) != 0 {
		t.Fatalf("empty drain returned %v", got)
	}
	wantElems(t, v.Elems(), 1, 5, 6)
}

// ==============================
// Bound invariant under mutator sequences
// ==============================

// applyOp drives a single mutator from fuzz/random input. Returns the Vec so
// consuming ops (TryMutate) can replace it.
func applyOp(v Vec[int, max5], op, a, b int) Vec[int, max5] {
	n := v.Len()
	switch op % 12 {
	case 0:
		v.TryPush(a)
	case 1:
		if n > 0 {
			v.TryInsert(a%n, b)
		} else {
			v.TryInsert(0, b)
		}
	case 2:
		v.TryExtend(a, b)
	case 3:
		v.TryRotateLeft(a % (n + 1))
	case 4:
		v.TryRotateRight(a % (n + 1))
	case 5:
		v.ForcePush(a)
	case 6:
		v.ForceInsertKeepRight(a%(n+2), b)
	case 7:
		v.ForceInsertKeepLeft(a%(n+2), b)
	case 8:
		v.Slide(a%(n+2), b%(n+2))
	case 9:
		v.BoundedResize(a%8, b)
	case 10:
		v.Pop()
	case 11:
		out, ok := v.TryMutate(func(s []int) []int {
			if a%2 == 0 {
				return append(s, b)
			}
			return s
		})
		if ok {
			v = out
		}
	}
	return v
}

func TestBoundInvariantRandomOps(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 100; trial++ {
		var v Vec[int, max5]
		for step := 0; step < 200; step++ {
			v = applyOp(v, rng.Intn(12), rng.Intn(1<<16), rng.Intn(1<<16))
			if v.Len() > v.Bound() {
				t.Fatalf("trial %d step %d: len %d exceeds bound %d", trial, step, v.Len(), v.Bound())
			}
		}
	}
}

func FuzzBoundInvariant(f *testing.F) {
	f.Add([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11})
	f.Add([]byte{5, 5, 5, 5, 6, 6, 7, 7, 8, 8})
	f.Fuzz(func(t *testing.T, ops []byte) {
		var v Vec[int, max5]
		for i := 0; i+2 < len(ops); i += 3 {
			v = applyOp(v, int(ops[i]), int(ops[i+1]), int(ops[i+2]))
			if v.Len() > v.Bound() {
				t.Fatalf("len %d exceeds bound %d after op %d", v.Len(), v.Bound(), ops[i])
			}
		}
	})
}

func TestRotateHelpers(t *testing.T) {
	s := []int{1, 2, 3, 4, 5}
	rotateLeft(s, 2)
	if !slices.Equal(s, []int{3, 4, 5, 1, 2}) {
		t.Fatalf("rotateLeft: %v", s)
	}
	rotateRight(s, 2)
	if !slices.Equal(s, []int{1, 2, 3, 4, 5}) {
		t.Fatalf("rotateRight: %v", s)
	}
	rotateLeft(s, 5) // full rotation is identity
	if !slices.Equal(s, []int{1, 2, 3, 4, 5}) {
		t.Fatalf("rotateLeft by len: %v", s)
	}
	rotateLeft([]int(nil), 1) // must not panic
	rotateRight([]int(nil), 1)
}
