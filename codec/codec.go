// Package codec implements the length-prefixed binary wire format for
// sequences:
//
//	uvarint(count) | element_0 | ... | element_{count-1}
//
// The format is identical for bounded and unbounded sequences, so bytes
// produced by either side decode on the other (within bound). The bounded
// decoder is the security boundary: it reads the count prefix and rejects
// anything over bound before allocating element storage or reading a single
// element byte, so the cost of rejecting a hostile length never scales with
// the declared value.
package codec

import (
	"encoding/binary"
	"errors"
	"math"

	"github.com/unkn0wn-root/bounded"
)

var (
	// ErrShortBuffer is returned when the input ends before the declared
	// content.
	ErrShortBuffer = errors.New("codec: short buffer")
	// ErrOverflow is returned when a varint is malformed or a length prefix
	// does not fit 32 bits.
	ErrOverflow = errors.New("codec: varint overflow")
)

// Item encodes and decodes a single element. Append writes v to dst and
// returns the extended slice; Read decodes one element from the front of b
// and reports how many bytes it consumed. Implementations for common element
// types live in this package.
type Item[T any] interface {
	Append(dst []byte, v T) []byte
	Read(b []byte) (T, int, error)
}

// cap on speculative pre-allocation for unbounded decodes; a hostile count
// prefix must not translate into a large make() up front.
const maxPrealloc = 1 << 10

// Append encodes items in wire format, appending to dst.
func Append[T any](dst []byte, items []T, it Item[T]) []byte {
	dst = binary.AppendUvarint(dst, uint64(len(items)))
	for i := range items {
		dst = it.Append(dst, items[i])
	}
	return dst
}

// Decode reads an unbounded sequence from the front of b, returning the
// elements and the number of bytes consumed.
func Decode[T any](b []byte, it Item[T]) ([]T, int, error) {
	declared, off, err := readCount(b)
	if err != nil {
		return nil, 0, err
	}
	return decodeElems(b, off, int(declared), it)
}

// AppendBounded encodes v in wire format, appending to dst. The bytes are
// identical to Append over the same elements: the bound leaves no trace on
// the wire.
func AppendBounded[T any, B bounded.Bound](dst []byte, v bounded.Vec[T, B], it Item[T]) []byte {
	return Append(dst, v.Elems(), it)
}

// DecodeBounded reads a bounded sequence from the front of b. When the
// declared count exceeds the bound it fails with *bounded.BoundError having
// consumed only the count prefix: no element bytes are read, no element
// storage is allocated. Within bound it runs the ordinary element loop with
// the already-validated count, so no secondary check is needed mid-stream.
func DecodeBounded[T any, B bounded.Bound](b []byte, it Item[T]) (bounded.Vec[T, B], int, error) {
	declared, off, err := readCount(b)
	if err != nil {
		return bounded.Vec[T, B]{}, 0, err
	}
	limit := bounded.BoundOf[B]()
	if declared > uint64(limit) {
		return bounded.Vec[T, B]{}, off, &bounded.BoundError{Len: declared, Bound: uint32(limit)}
	}
	items, off, err := decodeElems(b, off, int(declared), it)
	if err != nil {
		return bounded.Vec[T, B]{}, 0, err
	}
	v, _ := bounded.TryFrom[T, B](items) // count validated above; cannot fail
	return v, off, nil
}

func decodeElems[T any](b []byte, off, n int, it Item[T]) ([]T, int, error) {
	items := make([]T, 0, min(n, maxPrealloc))
	for i := 0; i < n; i++ {
		v, used, err := it.Read(b[off:])
		if err != nil {
			return nil, 0, err
		}
		off += used
		items = append(items, v)
	}
	return items, off, nil
}

// readCount decodes the uvarint count prefix. Counts are capped at 32 bits,
// matching the u32 bound domain.
func readCount(b []byte) (uint64, int, error) {
	declared, off := binary.Uvarint(b)
	if off == 0 {
		return 0, 0, ErrShortBuffer
	}
	if off < 0 || declared > math.MaxUint32 {
		return 0, 0, ErrOverflow
	}
	return declared, off, nil
}
