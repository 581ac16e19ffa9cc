// Package codec holds the per-type serializers that an untagged union tries in
// order. A strict codec must fail when the input does not fit V's shape
// (unknown members, wrong types, missing required fields); lenient codecs are
// only safe as the last candidate.
package codec

import "errors"

// Codec encodes/decodes values V to []byte.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}

var (
	// ErrNull is returned by strict codecs when a null literal is decoded into
	// a value that cannot hold "nothing" (structs, numbers, strings, bools).
	ErrNull = errors.New("codec: null for non-nullable value")
	// ErrTooLarge is returned by LimitCodec when the payload exceeds MaxDecode.
	ErrTooLarge = errors.New("codec: payload too large")
)
