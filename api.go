package untagged

import (
	"errors"

	c "github.com/unkn0wn-root/untagged/codec"
	"github.com/unkn0wn-root/untagged/internal/util"
)

// Options tune a Codec. The zero value is valid.
type Options struct {
	Logger    Logger // if nil, NopLogger is used
	Hooks     Hooks  // if nil, NopHooks is used
	MaxDecode int    // bytes; 0 => unlimited. Checked before either candidate runs.

	// Candidate names used in errors, logs and hooks. Default: Go type names.
	NameA string
	NameB string
}

// Codec decodes and encodes Optional[A, B] without a discriminator.
// Sub-codecs are fixed at construction; a Codec is safe for concurrent use
// as long as its sub-codecs, Logger and Hooks are.
type Codec[A, B any] struct {
	a     c.Codec[A]
	b     c.Codec[B]
	nameA string // "" => Go type name, resolved on failure
	nameB string
	max   int
	log   Logger
	hooks Hooks
}

var _ c.Codec[Optional[struct{}, int]] = (*Codec[struct{}, int])(nil)

// NewCodec builds a Codec that tries a first and b second.
func NewCodec[A, B any](a c.Codec[A], b c.Codec[B], opts Options) (*Codec[A, B], error) {
	if a == nil {
		return nil, errors.New("untagged: codec for candidate A is required")
	}
	if b == nil {
		return nil, errors.New("untagged: codec for candidate B is required")
	}
	return newCodec(a, b, opts), nil
}

func newCodec[A, B any](a c.Codec[A], b c.Codec[B], opts Options) *Codec[A, B] {
	cc := &Codec[A, B]{
		a:   a,
		b:   b,
		max: opts.MaxDecode,
	}
	cc.nameA = opts.NameA
	cc.nameB = opts.NameB
	cc.log = coalesce[Logger](opts.Logger, NopLogger{})
	cc.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	if cc.max > 0 {
		cc.a = c.LimitCodec[A]{Inner: a, MaxDecode: cc.max}
		cc.b = c.LimitCodec[B]{Inner: b, MaxDecode: cc.max}
	}
	return cc
}

// JSON tries A then B with strict JSON codecs.
func JSON[A, B any](opts Options) *Codec[A, B] {
	return newCodec[A, B](c.StrictJSON[A]{}, c.StrictJSON[B]{}, opts)
}

// CBOR tries A then B with strict CBOR codecs. Encoding is Core Deterministic,
// so a value nested in another record encodes to the same bytes every time.
func CBOR[A, B any](opts Options) *Codec[A, B] {
	return newCodec[A, B](c.CanonicalCBOR[A](), c.CanonicalCBOR[B](), opts)
}

// Msgpack tries A then B with strict msgpack codecs.
func Msgpack[A, B any](opts Options) *Codec[A, B] {
	return newCodec[A, B](c.Msgpack[A]{Strict: true}, c.Msgpack[B]{Strict: true}, opts)
}

// Decode tries A's decoder, then B's, on the same input. Candidate failures are
// not returned individually; only when both fail is a *DecodeError reported.
//
// A successful candidate decode that yields nil (a null into a pointer, map or
// slice candidate) returns the empty value without trying B.
func (cc *Codec[A, B]) Decode(b []byte) (Optional[A, B], error) {
	va, errA := cc.a.Decode(b)
	if errA == nil {
		return FromA[A, B](va), nil
	}
	cc.reject(cc.candidateA(), errA)

	vb, errB := cc.b.Decode(b)
	if errB == nil {
		return FromB[A, B](vb), nil
	}
	cc.reject(cc.candidateB(), errB)

	na, nb := cc.candidateA(), cc.candidateB()
	cc.hooks.NoMatch(na, nb)
	cc.log.Warn("no candidate matched", Fields{"a": na, "b": nb})
	return Optional[A, B]{}, &DecodeError{A: na, B: nb, ErrA: errA, ErrB: errB}
}

// Encode delegates to the populated slot's encoder.
func (cc *Codec[A, B]) Encode(v Optional[A, B]) ([]byte, error) {
	switch v.slot {
	case SlotA:
		return cc.a.Encode(v.a)
	case SlotB:
		return cc.b.Encode(v.b)
	}
	na, nb := cc.candidateA(), cc.candidateB()
	cc.hooks.EncodeEmpty(na, nb)
	return nil, &EncodeError{A: na, B: nb}
}

// Type names are resolved only on failure paths; the success path stays
// free of reflection.
func (cc *Codec[A, B]) candidateA() string { return coalesce(cc.nameA, util.TypeName[A]()) }
func (cc *Codec[A, B]) candidateB() string { return coalesce(cc.nameB, util.TypeName[B]()) }

func (cc *Codec[A, B]) reject(candidate string, err error) {
	cc.hooks.CandidateRejected(candidate, err)
	cc.log.Debug("candidate rejected", Fields{"candidate": candidate, "err": err})
}
