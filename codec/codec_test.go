package codec

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type user struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name"`
}

func TestStrictJSONRejectsUnknownMembers(t *testing.T) {
	var sj StrictJSON[user]
	if _, err := sj.Decode([]byte(`{"id":"1","nick":"ada"}`)); err == nil {
		t.Fatalf("expected unknown member error")
	}
	// The lenient codec accepts the same document.
	u, err := JSON[user]{}.Decode([]byte(`{"id":"1","nick":"ada"}`))
	if err != nil || u.ID != "1" {
		t.Fatalf("lenient decode: %v %v", u, err)
	}
}

func TestStrictJSONRequiredFields(t *testing.T) {
	var sj StrictJSON[user]
	if _, err := sj.Decode([]byte(`{"name":"ada"}`)); err == nil {
		t.Fatalf("expected required-field error")
	}
	u, err := sj.Decode([]byte(`{"id":"1","name":"ada"}`))
	if err != nil || u != (user{ID: "1", Name: "ada"}) {
		t.Fatalf("decode: %v %v", u, err)
	}
}

func TestStrictJSONNull(t *testing.T) {
	if _, err := (StrictJSON[user]{}).Decode([]byte(` null `)); !errors.Is(err, ErrNull) {
		t.Fatalf("struct: want ErrNull, got %v", err)
	}
	if _, err := (StrictJSON[int]{}).Decode([]byte(`null`)); !errors.Is(err, ErrNull) {
		t.Fatalf("int: want ErrNull, got %v", err)
	}
	p, err := (StrictJSON[*user]{}).Decode([]byte(`null`))
	if err != nil || p != nil {
		t.Fatalf("pointer: want nil, got %v %v", p, err)
	}
}

func TestStrictJSONEncodeIsDeterministic(t *testing.T) {
	m := map[string]int{"b": 2, "a": 1, "c": 3}
	var sj StrictJSON[map[string]int]
	b, err := sj.Encode(m)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if string(b) != `{"a":1,"b":2,"c":3}` {
		t.Fatalf("wire=%s", b)
	}
}

func TestCBORStrictVsLenient(t *testing.T) {
	raw, err := MustCBOR[map[string]string](false, false).Encode(map[string]string{"id": "1", "nick": "ada"})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := StrictCBOR[user]().Decode(raw); err == nil {
		t.Fatalf("strict: expected unknown field error")
	}
	u, err := MustCBOR[user](false, false).Decode(raw)
	if err != nil || u.ID != "1" {
		t.Fatalf("lenient: %v %v", u, err)
	}

	missing, _ := MustCBOR[map[string]string](false, false).Encode(map[string]string{"name": "ada"})
	if _, err := StrictCBOR[user]().Decode(missing); err == nil {
		t.Fatalf("strict: expected required-field error")
	}
	if _, err := StrictCBOR[user]().Decode([]byte{0xf6}); !errors.Is(err, ErrNull) {
		t.Fatalf("strict null: want ErrNull, got %v", err)
	}
}

func TestCanonicalIsStable(t *testing.T) {
	a, err := Canonical(map[string]int{"x": 1, "y": 2, "z": 3})
	if err != nil {
		t.Fatal(err)
	}
	b, err := Canonical(map[string]int{"z": 3, "y": 2, "x": 1})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Fatalf("canonical encoding differs: %x vs %x", a, b)
	}
	det := MustCBOR[map[string]int](true, false)
	c, err := det.Encode(map[string]int{"y": 2, "x": 1, "z": 3})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, c) {
		t.Fatalf("deterministic codec differs from Canonical: %x vs %x", a, c)
	}
}

func TestMsgpackStrictVsLenient(t *testing.T) {
	raw, err := Msgpack[map[string]string]{}.Encode(map[string]string{"id": "1", "nick": "ada"})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := (Msgpack[user]{Strict: true}).Decode(raw); err == nil {
		t.Fatalf("strict: expected unknown field error")
	}
	u, err := Msgpack[user]{}.Decode(raw)
	if err != nil || u.ID != "1" {
		t.Fatalf("lenient: %v %v", u, err)
	}

	// json tags name the fields.
	enc, err := Msgpack[user]{}.Encode(user{ID: "7", Name: "x"})
	if err != nil {
		t.Fatal(err)
	}
	back, err := Msgpack[map[string]string]{}.Decode(enc)
	if err != nil || back["id"] != "7" || back["name"] != "x" {
		t.Fatalf("field names: %v %v", back, err)
	}
	if _, err := (Msgpack[user]{Strict: true}).Decode([]byte{0xc0}); !errors.Is(err, ErrNull) {
		t.Fatalf("strict nil: want ErrNull, got %v", err)
	}
}

func TestLimitCodec(t *testing.T) {
	lc := LimitCodec[string]{Inner: String{}, MaxDecode: 3}
	if _, err := lc.Decode([]byte("abcd")); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("want ErrTooLarge, got %v", err)
	} else if !strings.Contains(err.Error(), "4 > 3") {
		t.Fatalf("message: %v", err)
	}
	if s, err := lc.Decode([]byte("abc")); err != nil || s != "abc" {
		t.Fatalf("within limit: %q %v", s, err)
	}
	off := LimitCodec[[]byte]{Inner: Bytes{}}
	if b, err := off.Decode(bytes.Repeat([]byte("x"), 1<<16)); err != nil || len(b) != 1<<16 {
		t.Fatalf("disabled limit: %d %v", len(b), err)
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(42); err != nil {
		t.Fatalf("non-struct should pass: %v", err)
	}
	var nilUser *user
	if err := Validate(nilUser); err != nil {
		t.Fatalf("nil pointer should pass: %v", err)
	}
	if err := Validate(&user{}); err == nil {
		t.Fatalf("pointer to invalid struct should fail")
	}
	if err := Validate(user{ID: "1"}); err != nil {
		t.Fatalf("valid struct: %v", err)
	}
}

func TestProtobufRoundTrip(t *testing.T) {
	pc := NewProtobuf(func() *wrapperspb.StringValue { return &wrapperspb.StringValue{} })
	b, err := pc.Encode(wrapperspb.String("maimai"))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := pc.Decode(b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !proto.Equal(got, wrapperspb.String("maimai")) {
		t.Fatalf("round trip: %v", got)
	}
	if _, err := pc.Decode([]byte{0xff}); err == nil {
		t.Fatalf("expected error on malformed input")
	}
}

func TestMsgpackStrictWholeInput(t *testing.T) {
	enc, err := Msgpack[user]{}.Encode(user{ID: "1"})
	if err != nil {
		t.Fatal(err)
	}
	withTail := append(append([]byte(nil), enc...), 0x01)
	if _, err := (Msgpack[user]{Strict: true}).Decode(withTail); !errors.Is(err, errTrailing) {
		t.Fatalf("want errTrailing, got %v", err)
	}
	if _, err := (Msgpack[user]{}).Decode(withTail); err != nil {
		t.Fatalf("lenient should ignore tail: %v", err)
	}

	arr, err := Msgpack[[]string]{}.Encode([]string{"1", "ada"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := (Msgpack[user]{Strict: true}).Decode(arr); !errors.Is(err, errNotMap) {
		t.Fatalf("want errNotMap, got %v", err)
	}
	if _, err := (Msgpack[*user]{Strict: true}).Decode(arr); !errors.Is(err, errNotMap) {
		t.Fatalf("pointer target: want errNotMap, got %v", err)
	}
	// Non-struct targets still take arrays.
	if s, err := (Msgpack[[]string]{Strict: true}).Decode(arr); err != nil || len(s) != 2 {
		t.Fatalf("slice target: %v %v", s, err)
	}
}
