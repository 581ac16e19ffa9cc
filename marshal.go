package untagged

import (
	"bytes"

	"github.com/vmihailenco/msgpack/v5"

	c "github.com/unkn0wn-root/untagged/codec"
)

// Optional fields inside other records are routed through the strict codecs
// below. A null on the wire decodes to the empty value; encoding an empty
// value fails with *EncodeError, so mark optional fields `omitzero`.
//
// The codecs are generic instantiations, not a runtime registry: building
// one only copies zero-size or shared sub-codecs.

var jsonNull = []byte("null")

// MarshalJSON implements [json.Marshaler].
func (o Optional[A, B]) MarshalJSON() ([]byte, error) {
	return JSON[A, B](Options{}).Encode(o)
}

// UnmarshalJSON implements [json.Unmarshaler].
func (o *Optional[A, B]) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), jsonNull) {
		*o = Optional[A, B]{}
		return nil
	}
	v, err := JSON[A, B](Options{}).Decode(b)
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// MarshalCBOR implements [cbor.Marshaler].
func (o Optional[A, B]) MarshalCBOR() ([]byte, error) {
	return CBOR[A, B](Options{}).Encode(o)
}

// UnmarshalCBOR implements [cbor.Unmarshaler].
func (o *Optional[A, B]) UnmarshalCBOR(b []byte) error {
	if c.IsCBORNull(b) {
		*o = Optional[A, B]{}
		return nil
	}
	v, err := CBOR[A, B](Options{}).Decode(b)
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// EncodeMsgpack implements [msgpack.CustomEncoder].
func (o Optional[A, B]) EncodeMsgpack(enc *msgpack.Encoder) error {
	b, err := Msgpack[A, B](Options{}).Encode(o)
	if err != nil {
		return err
	}
	return enc.Encode(msgpack.RawMessage(b))
}

// DecodeMsgpack implements [msgpack.CustomDecoder].
func (o *Optional[A, B]) DecodeMsgpack(dec *msgpack.Decoder) error {
	raw, err := dec.DecodeRaw()
	if err != nil {
		return err
	}
	if c.IsMsgpackNil(raw) {
		*o = Optional[A, B]{}
		return nil
	}
	v, err := Msgpack[A, B](Options{}).Decode(raw)
	if err != nil {
		return err
	}
	*o = v
	return nil
}
