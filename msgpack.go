package bounded

import (
	"github.com/vmihailenco/msgpack/v5"
)

// Msgpack encoding uses the streaming Encoder/Decoder so the array length is
// on the wire before any element: the decoder reads it, rejects anything over
// bound, and only then enters the element loop. Wire-compatible with encoding
// the underlying slice directly.

// EncodeMsgpack encodes the elements as a msgpack array.
func (v Vec[T, B]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return encodeMsgpackArray(enc, v.items)
}

// DecodeMsgpack decodes a msgpack array, rejecting a declared length beyond
// the bound before decoding a single element. On any error v is left
// unchanged. A msgpack nil resets v to empty.
func (v *Vec[T, B]) DecodeMsgpack(dec *msgpack.Decoder) error {
	items, err := decodeMsgpackArray[T](dec, BoundOf[B]())
	if err != nil {
		return err
	}
	v.items = items
	return nil
}

// EncodeMsgpack encodes the visible elements as a msgpack array.
func (s View[T, B]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return encodeMsgpackArray(enc, s.data)
}

// EncodeMsgpack encodes the elements as a msgpack array, bound
// notwithstanding.
func (w Weak[T, B]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return encodeMsgpackArray(enc, w.items)
}

// DecodeMsgpack on Weak enforces the bound; see the JSON counterpart.
func (w *Weak[T, B]) DecodeMsgpack(dec *msgpack.Decoder) error {
	items, err := decodeMsgpackArray[T](dec, BoundOf[B]())
	if err != nil {
		return err
	}
	w.items = items
	return nil
}

func encodeMsgpackArray[T any](enc *msgpack.Encoder, items []T) error {
	if err := enc.EncodeArrayLen(len(items)); err != nil {
		return err
	}
	for i := range items {
		if err := enc.Encode(items[i]); err != nil {
			return err
		}
	}
	return nil
}

func decodeMsgpackArray[T any](dec *msgpack.Decoder, bound int) ([]T, error) {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return nil, err
	}
	if n == -1 { // msgpack nil
		return nil, nil
	}
	if n > bound {
		return nil, &BoundError{Len: uint64(n), Bound: uint32(bound)}
	}
	items := make([]T, n)
	for i := range items {
		if err := dec.Decode(&items[i]); err != nil {
			return nil, err
		}
	}
	return items, nil
}
