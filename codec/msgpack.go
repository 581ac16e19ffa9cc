package codec

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
)

// Msgpack is a Codec that serializes values using vmihailenco/msgpack/v5.
// The zero value is ready to use (lenient). Set Strict to reject unknown map
// keys and run Validate over decoded values.
//
// Field names come from `json` tags so that one set of tags serves every format.
type Msgpack[V any] struct {
	Strict bool
}

func (Msgpack[V]) Encode(v V) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (c Msgpack[V]) Decode(b []byte) (V, error) {
	var v V
	if c.Strict && IsMsgpackNil(b) {
		return v, nullable[V]()
	}
	r := bytes.NewReader(b)
	dec := msgpack.NewDecoder(r)
	dec.SetCustomStructTag("json")
	dec.DisallowUnknownFields(c.Strict)
	if c.Strict && structTarget[V]() {
		code, err := dec.PeekCode()
		if err != nil {
			return v, err
		}
		if !isMap(code) {
			return v, fmt.Errorf("%w: code 0x%02x into %s", errNotMap, code, reflect.TypeFor[V]())
		}
	}
	if err := dec.Decode(&v); err != nil {
		return v, err
	}
	if !c.Strict {
		return v, nil
	}
	// bytes.Reader is a ByteScanner, so the decoder reads it without buffering ahead.
	if r.Len() > 0 {
		return v, fmt.Errorf("%w: %d bytes after value", errTrailing, r.Len())
	}
	return v, Validate(v)
}

var (
	errNotMap   = errors.New("codec: msgpack struct value is not a map")
	errTrailing = errors.New("codec: msgpack trailing data")
)

func isMap(code byte) bool {
	return msgpcode.IsFixedMap(code) || code == msgpcode.Map16 || code == msgpcode.Map32
}

var (
	customDecoderType = reflect.TypeFor[msgpack.CustomDecoder]()
	unmarshalerType   = reflect.TypeFor[msgpack.Unmarshaler]()
	timeType          = reflect.TypeFor[time.Time]()
)

// structTarget reports whether V is a plain struct (or a pointer to one) that
// msgpack decodes field by field. Types with their own decoding are excluded.
func structTarget[V any]() bool {
	t := reflect.TypeFor[V]()
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct || t == timeType {
		return false
	}
	pt := reflect.PointerTo(t)
	return !pt.Implements(customDecoderType) && !pt.Implements(unmarshalerType)
}

// IsMsgpackNil reports whether b is a single msgpack nil.
func IsMsgpackNil(b []byte) bool {
	return len(b) == 1 && b[0] == msgpcode.Nil
}
