package bounded

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// JSON encoding: a bounded sequence serializes as a plain array of its
// elements; the bound is not part of the payload. Decoding walks the array
// token by token and fails with *BoundError as soon as the element count
// passes the bound - it never silently truncates, and it never buffers more
// than bound elements.

// MarshalJSON encodes the elements as a JSON array. An empty or zero Vec
// encodes as [].
func (v Vec[T, B]) MarshalJSON() ([]byte, error) {
	if v.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(v.items)
}

// UnmarshalJSON decodes a JSON array, rejecting input with more than bound
// elements. On any error v is left unchanged. JSON null resets v to empty.
func (v *Vec[T, B]) UnmarshalJSON(data []byte) error {
	items, err := decodeJSONArray[T](data, BoundOf[B]())
	if err != nil {
		return err
	}
	v.items = items
	return nil
}

// MarshalJSON encodes the visible elements as a JSON array.
func (s View[T, B]) MarshalJSON() ([]byte, error) {
	if s.data == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.data)
}

// MarshalJSON encodes the elements as a JSON array, bound notwithstanding.
func (w Weak[T, B]) MarshalJSON() ([]byte, error) {
	if w.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(w.items)
}

// UnmarshalJSON on Weak still enforces the bound: decoding is where untrusted
// bytes enter, and the advisory bound only relaxes construction from Go
// values.
func (w *Weak[T, B]) UnmarshalJSON(data []byte) error {
	items, err := decodeJSONArray[T](data, BoundOf[B]())
	if err != nil {
		return err
	}
	w.items = items
	return nil
}

func decodeJSONArray[T any](data []byte, bound int) ([]T, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if tok == nil { // JSON null
		return nil, expectEOF(dec)
	}
	if d, ok := tok.(json.Delim); !ok || d != '[' {
		return nil, fmt.Errorf("bounded: cannot decode %v into a sequence, expected an array", tok)
	}
	items := make([]T, 0, min(bound, 16))
	for dec.More() {
		if len(items) >= bound {
			return nil, &BoundError{Len: uint64(len(items)) + 1, Bound: uint32(bound)}
		}
		var x T
		if err := dec.Decode(&x); err != nil {
			return nil, err
		}
		items = append(items, x)
	}
	if _, err := dec.Token(); err != nil { // closing ']'
		return nil, err
	}
	if err := expectEOF(dec); err != nil {
		return nil, err
	}
	return items, nil
}

// expectEOF rejects trailing tokens so a direct UnmarshalJSON call is as
// strict as json.Unmarshal on a plain slice.
func expectEOF(dec *json.Decoder) error {
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("bounded: trailing data after sequence")
	}
	return nil
}
