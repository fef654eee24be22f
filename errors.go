package bounded

import "fmt"

// BoundError reports input whose declared or observed element count exceeds
// the bound of the target type. It is returned by every decode surface
// (binary codec, JSON, CBOR, msgpack) so callers can handle one error type
// with errors.As regardless of the encoding.
//
// Len is the attacker-declared (or observed) count; producing this error must
// never cost work proportional to it.
type BoundError struct {
	Len   uint64
	Bound uint32
}

func (e *BoundError) Error() string {
	return fmt.Sprintf("bounded: length %d exceeds bound %d", e.Len, e.Bound)
}
