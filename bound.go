package bounded

// Bound resolves the maximum permitted element count for a bounded container
// type. Implementations are zero-sized tag types:
//
//	type Max16 struct{}
//
//	func (Max16) Get() uint32 { return 16 }
//
// The tag travels as a type parameter and is queried, never stored, so a
// Vec[T, B] costs exactly as much as a plain []T. Get must be pure and stable
// for the lifetime of any container using the tag.
type Bound interface {
	Get() uint32
}

// BoundOf resolves the constant carried by the tag type B.
func BoundOf[B Bound]() int {
	var b B
	return int(b.Get())
}
