package codec

import (
	"github.com/fxamacker/cbor/v2"
)

// CBOR is a Codec that serializes values using fxamacker/cbor.
// The zero value is NOT ready to use. Construct with NewCBOR, MustCBOR or StrictCBOR.
//
// Use deterministic=true for canonical encoding (RFC 8949 Core Deterministic)
// when you need byte-for-byte stable outputs (e.g., hashing).
// Otherwise PreferredUnsortedEncOptions are used (sensible defaults).
// strict=true rejects map keys that match no struct field and runs Validate
// over decoded values, which is what an untagged union candidate needs.
// Struct fields fall back to their `json` tag names when no `cbor` tag is set.
type CBOR[V any] struct {
	enc    cbor.EncMode
	dec    cbor.DecMode
	strict bool
}

var _ Codec[struct{}] = CBOR[struct{}]{}

var (
	defaultEnc   = mustEncMode(false)
	canonicalEnc = mustEncMode(true)
	strictDec    = mustDecMode(true)
)

// NewCBOR constructs a CBOR codec.
//   - Deterministic is true, uses CoreDetEncOptions (RFC 8949).
//   - Otherwise uses PreferredUnsortedEncOptions (smaller/faster defaults).
//
// Also sets time encoding to RFC3339Nano.
func NewCBOR[V any](deterministic, strict bool) (CBOR[V], error) {
	em, err := encOptions(deterministic).EncMode()
	if err != nil {
		return CBOR[V]{}, err
	}
	dm, err := decOptions(strict).DecMode()
	if err != nil {
		return CBOR[V]{}, err
	}
	return CBOR[V]{enc: em, dec: dm, strict: strict}, nil
}

// MustCBOR is like NewCBOR but panics on error.
// Should not use for prod just handy for package-level variables in tests/examples.
func MustCBOR[V any](deterministic, strict bool) CBOR[V] {
	c, err := NewCBOR[V](deterministic, strict)
	if err != nil {
		panic(err)
	}
	return c
}

// StrictCBOR returns a strict, non-deterministic codec backed by shared modes.
func StrictCBOR[V any]() CBOR[V] {
	return CBOR[V]{enc: defaultEnc, dec: strictDec, strict: true}
}

// CanonicalCBOR is StrictCBOR with Core Deterministic encoding: map keys are
// sorted, so equal values always encode to equal bytes.
func CanonicalCBOR[V any]() CBOR[V] {
	return CBOR[V]{enc: canonicalEnc, dec: strictDec, strict: true}
}

// Canonical encodes v with Core Deterministic options.
func Canonical(v any) ([]byte, error) {
	return canonicalEnc.Marshal(v)
}

// Encode encodes v as CBOR using the configured EncMode.
func (c CBOR[V]) Encode(v V) ([]byte, error) {
	return c.enc.Marshal(v)
}

// Decode decodes b into a V using the configured DecMode.
func (c CBOR[V]) Decode(b []byte) (V, error) {
	var v V
	if c.strict && IsCBORNull(b) {
		return v, nullable[V]()
	}
	if err := c.dec.Unmarshal(b, &v); err != nil {
		return v, err
	}
	if c.strict {
		return v, Validate(v)
	}
	return v, nil
}

// IsCBORNull reports whether b is a single CBOR null or undefined item.
func IsCBORNull(b []byte) bool {
	return len(b) == 1 && (b[0] == 0xf6 || b[0] == 0xf7)
}

func encOptions(deterministic bool) cbor.EncOptions {
	var eo cbor.EncOptions
	if deterministic {
		eo = cbor.CoreDetEncOptions()
	} else {
		eo = cbor.PreferredUnsortedEncOptions()
	}
	eo.Time = cbor.TimeRFC3339Nano
	return eo
}

func decOptions(strict bool) cbor.DecOptions {
	if !strict {
		return cbor.DecOptions{}
	}
	return cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyEnforcedAPF,
		ExtraReturnErrors: cbor.ExtraDecErrorUnknownField,
	}
}

func mustEncMode(deterministic bool) cbor.EncMode {
	em, err := encOptions(deterministic).EncMode()
	if err != nil {
		panic(err)
	}
	return em
}

func mustDecMode(strict bool) cbor.DecMode {
	dm, err := decOptions(strict).DecMode()
	if err != nil {
		panic(err)
	}
	return dm
}
