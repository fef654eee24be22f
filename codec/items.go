package codec

import (
	"encoding/binary"
	"math"
)

// Item implementations for common element types. Integers use varints;
// byte slices and strings are length-prefixed with a uvarint. Decoded
// []byte payloads alias the input buffer (zero-copy); copy before holding
// them past the buffer's lifetime.

type Uint64 struct{}

var _ Item[uint64] = Uint64{}

func (Uint64) Append(dst []byte, v uint64) []byte { return binary.AppendUvarint(dst, v) }

func (Uint64) Read(b []byte) (uint64, int, error) {
	v, n := binary.Uvarint(b)
	if n == 0 {
		return 0, 0, ErrShortBuffer
	}
	if n < 0 {
		return 0, 0, ErrOverflow
	}
	return v, n, nil
}

type Uint32 struct{}

var _ Item[uint32] = Uint32{}

func (Uint32) Append(dst []byte, v uint32) []byte { return binary.AppendUvarint(dst, uint64(v)) }

func (Uint32) Read(b []byte) (uint32, int, error) {
	v, n, err := Uint64{}.Read(b)
	if err != nil {
		return 0, 0, err
	}
	if v > math.MaxUint32 {
		return 0, 0, ErrOverflow
	}
	return uint32(v), n, nil
}

// Int64 uses zig-zag varint encoding.
type Int64 struct{}

var _ Item[int64] = Int64{}

func (Int64) Append(dst []byte, v int64) []byte { return binary.AppendVarint(dst, v) }

func (Int64) Read(b []byte) (int64, int, error) {
	v, n := binary.Varint(b)
	if n == 0 {
		return 0, 0, ErrShortBuffer
	}
	if n < 0 {
		return 0, 0, ErrOverflow
	}
	return v, n, nil
}

type Bytes struct{}

var _ Item[[]byte] = Bytes{}

func (Bytes) Append(dst []byte, v []byte) []byte {
	dst = binary.AppendUvarint(dst, uint64(len(v)))
	return append(dst, v...)
}

func (Bytes) Read(b []byte) ([]byte, int, error) {
	l, off, err := readCount(b)
	if err != nil {
		return nil, 0, err
	}
	if l > uint64(len(b)-off) { // overflow-safe bound check
		return nil, 0, ErrShortBuffer
	}
	end := off + int(l)
	return b[off:end], end, nil
}

type String struct{}

var _ Item[string] = String{}

func (String) Append(dst []byte, v string) []byte {
	dst = binary.AppendUvarint(dst, uint64(len(v)))
	return append(dst, v...)
}

func (String) Read(b []byte) (string, int, error) {
	v, n, err := Bytes{}.Read(b)
	if err != nil {
		return "", 0, err
	}
	return string(v), n, nil
}
