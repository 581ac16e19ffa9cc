// Package untagged implements a two-variant union value, Optional[A, B], and
// codecs that read and write it without a discriminator on the wire.
//
// Components:
//   - Optional[A, B]: immutable value holding either an A, a B, or nothing.
//   - Codec[A, B]: decodes by trying A's codec, then B's, first match wins.
//     Encodes by delegating to whichever slot is populated.
//   - codec.Codec[V]: per-type serializers (strict JSON, CBOR, msgpack, protojson).
//
// Decoding is structural sniffing. A document that is valid for both A and B
// always decodes as A, so candidates must have distinguishable shapes. Use
// strict sub-codecs (unknown members rejected, `validate:"required"` honoured)
// or the first candidate will swallow everything.
//
// Usage:
//
//	type Pair struct {
//		Left  string `json:"left" validate:"required"`
//		Right string `json:"right" validate:"required"`
//	}
//	type Scalar struct {
//		Value float64 `json:"value"`
//	}
//
//	c := untagged.JSON[Pair, Scalar](untagged.Options{})
//	v, err := c.Decode([]byte(`{"value":5}`)) // v.AsB() == Scalar{5}, true
//
// Fields typed Optional[A, B] inside other records go through the same logic
// with encoding/json, go-json-experiment/json, fxamacker/cbor and msgpack.
package untagged
