package bounded

import (
	"encoding/binary"

	"github.com/fxamacker/cbor/v2"
)

// CBOR encoding mirrors the JSON contract: a plain array, wire-identical to
// encoding the underlying slice. On decode, the declared length in the array
// head is checked against the bound before any element is unmarshalled, so
// a hostile length cannot cost element decoding work. Callers going through
// cbor.Unmarshal additionally get the library's own well-formedness and
// limit scan ahead of UnmarshalCBOR being called. Indefinite-length arrays
// carry no declared count and are length-checked after decoding.

// MarshalCBOR encodes the elements as a CBOR array.
func (v Vec[T, B]) MarshalCBOR() ([]byte, error) {
	if v.items == nil {
		return cbor.Marshal([]T{})
	}
	return cbor.Marshal(v.items)
}

// UnmarshalCBOR decodes a CBOR array, rejecting a declared length beyond the
// bound before decoding any element. On any error v is left unchanged.
func (v *Vec[T, B]) UnmarshalCBOR(data []byte) error {
	items, err := decodeCBORArray[T](data, BoundOf[B]())
	if err != nil {
		return err
	}
	v.items = items
	return nil
}

// MarshalCBOR encodes the visible elements as a CBOR array.
func (s View[T, B]) MarshalCBOR() ([]byte, error) {
	if s.data == nil {
		return cbor.Marshal([]T{})
	}
	return cbor.Marshal(s.data)
}

// MarshalCBOR encodes the elements as a CBOR array, bound notwithstanding.
func (w Weak[T, B]) MarshalCBOR() ([]byte, error) {
	if w.items == nil {
		return cbor.Marshal([]T{})
	}
	return cbor.Marshal(w.items)
}

// UnmarshalCBOR on Weak enforces the bound; see the JSON counterpart.
func (w *Weak[T, B]) UnmarshalCBOR(data []byte) error {
	items, err := decodeCBORArray[T](data, BoundOf[B]())
	if err != nil {
		return err
	}
	w.items = items
	return nil
}

func decodeCBORArray[T any](data []byte, bound int) ([]T, error) {
	if declared, ok := cborArrayLen(data); ok && declared > uint64(bound) {
		return nil, &BoundError{Len: declared, Bound: uint32(bound)}
	}
	var items []T
	if err := cbor.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	// indefinite-length arrays declare no count up front
	if len(items) > bound {
		return nil, &BoundError{Len: uint64(len(items)), Bound: uint32(bound)}
	}
	return items, nil
}

// cborArrayLen reads the declared element count from a definite-length CBOR
// array head. ok is false when the head is not a definite-length array
// (including the indefinite form 0x9f); anything malformed is left for
// cbor.Unmarshal to report.
func cborArrayLen(b []byte) (uint64, bool) {
	if len(b) == 0 || b[0]>>5 != 4 { // major type 4: array
		return 0, false
	}
	ai := b[0] & 0x1f
	switch {
	case ai < 24:
		return uint64(ai), true
	case ai == 24:
		if len(b) < 2 {
			return 0, false
		}
		return uint64(b[1]), true
	case ai == 25:
		if len(b) < 3 {
			return 0, false
		}
		return uint64(binary.BigEndian.Uint16(b[1:3])), true
	case ai == 26:
		if len(b) < 5 {
			return 0, false
		}
		return uint64(binary.BigEndian.Uint32(b[1:5])), true
	case ai == 27:
		if len(b) < 9 {
			return 0, false
		}
		return binary.BigEndian.Uint64(b[1:9]), true
	default: // 28-30 reserved, 31 indefinite
		return 0, false
	}
}
