package untagged

import (
	"fmt"
	"reflect"

	"github.com/cespare/xxhash/v2"

	"github.com/unkn0wn-root/untagged/codec"
	"github.com/unkn0wn-root/untagged/internal/util"
)

// Slot names the populated side of an Optional.
type Slot uint8

const (
	SlotNone Slot = iota // empty: neither payload is set
	SlotA                // the A payload is set
	SlotB                // the B payload is set
)

func (s Slot) String() string {
	switch s {
	case SlotA:
		return "A"
	case SlotB:
		return "B"
	default:
		return "none"
	}
}

// Optional holds exactly one of an A or a B, or nothing at all (the zero value).
// It is immutable once built; FromA and FromB are the only constructors.
type Optional[A, B any] struct {
	a    A
	b    B
	slot Slot
}

// FromA returns a value with slot A populated. A nil payload yields the empty value.
func FromA[A, B any](a A) Optional[A, B] {
	if util.IsNil(a) {
		return Optional[A, B]{}
	}
	return Optional[A, B]{a: a, slot: SlotA}
}

// FromB returns a value with slot B populated. A nil payload yields the empty value.
func FromB[A, B any](b B) Optional[A, B] {
	if util.IsNil(b) {
		return Optional[A, B]{}
	}
	return Optional[A, B]{b: b, slot: SlotB}
}

// AsA returns the payload iff slot A is populated.
func (o Optional[A, B]) AsA() (A, bool) {
	if o.slot != SlotA {
		var zero A
		return zero, false
	}
	return o.a, true
}

// AsB returns the payload iff slot B is populated.
func (o Optional[A, B]) AsB() (B, bool) {
	if o.slot != SlotB {
		var zero B
		return zero, false
	}
	return o.b, true
}

// Value returns the populated payload, or nil.
func (o Optional[A, B]) Value() any {
	switch o.slot {
	case SlotA:
		return o.a
	case SlotB:
		return o.b
	default:
		return nil
	}
}

// Which reports the populated slot, SlotNone for the empty value.
func (o Optional[A, B]) Which() Slot { return o.slot }

// IsZero reports whether o is empty. It makes `omitzero` skip empty fields.
func (o Optional[A, B]) IsZero() bool { return o.slot == SlotNone }

// Type is the dynamic type of the payload, nil when empty.
func (o Optional[A, B]) Type() reflect.Type {
	if o.slot == SlotNone {
		return nil
	}
	return reflect.TypeOf(o.Value())
}

// String formats the payload with fmt. Empty values print as "".
func (o Optional[A, B]) String() string {
	if o.slot == SlotNone {
		return ""
	}
	return fmt.Sprint(o.Value())
}

// Equal reports whether both values populate the same slot with deeply equal
// payloads. Two empty values are equal.
func (o Optional[A, B]) Equal(other Optional[A, B]) bool {
	if o.slot != other.slot {
		return false
	}
	switch o.slot {
	case SlotA:
		return reflect.DeepEqual(o.a, other.a)
	case SlotB:
		return reflect.DeepEqual(o.b, other.b)
	default:
		return true
	}
}

// Hash returns an xxhash of the payload's canonical CBOR form. ok is false for
// empty values and payloads CBOR cannot encode. Equal values hash equal,
// including payloads that nest other Optional values (they encode canonically too).
func (o Optional[A, B]) Hash() (h uint64, ok bool) {
	if o.slot == SlotNone {
		return 0, false
	}
	b, err := codec.Canonical(o.Value())
	if err != nil {
		return 0, false
	}
	return xxhash.Sum64(b), true
}
