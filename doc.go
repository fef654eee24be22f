// Package bounded implements length-bounded sequences: growable containers
// whose maximum element count is part of the type and enforced on every
// mutation and on every decode from untrusted bytes. A producer, malicious
// or buggy, can never grow a collection past its declared bound - including
// through deserialization of attacker-supplied data.
//
// Components:
//   - Bound: zero-sized tag types resolving to a constant limit. The tag is a
//     type parameter; no bound is ever stored at runtime.
//   - Vec[T, B]: owning sequence with checked mutators (reject on overflow,
//     nothing lost) and forcing mutators (never fail, evict to make room).
//   - View[T, B]: read-only bounded window over externally owned storage.
//   - Weak[T, B]: advisory-bound variant for trusted producers; logs instead
//     of rejecting.
//
// The codec subpackage carries the wire discipline: a length-prefixed binary
// format whose decoder rejects an over-bound length prefix before allocating
// or reading a single element byte. JSON, CBOR and msgpack encodings live on
// the types themselves and follow the same rule: a bounded sequence encodes
// exactly like a plain array (the bound is not part of the payload), and
// decoding anything longer than the bound is an error, never a truncation.
package bounded
