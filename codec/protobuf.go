package codec

import (
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// Protobuf is the binary wire codec. Binary protobuf keeps unknown fields
// instead of failing, so it does not tell two message types apart; prefer
// ProtoJSON for union candidates.
type Protobuf[T proto.Message] struct {
	new func() T // constructor for a concrete message (e.g., func() *mypb.User { return &mypb.User{} })
}

func NewProtobuf[T proto.Message](ctor func() T) Protobuf[T] {
	return Protobuf[T]{new: ctor}
}

func (c Protobuf[T]) Encode(v T) ([]byte, error) {
	return proto.Marshal(v)
}
func (c Protobuf[T]) Decode(b []byte) (T, error) {
	m := c.new()
	err := proto.Unmarshal(b, m)
	return m, err
}

// ProtoJSON uses the canonical protobuf JSON mapping. Unknown fields are
// rejected, which makes it usable as a strict candidate.
type ProtoJSON[T proto.Message] struct {
	new func() T
}

func NewProtoJSON[T proto.Message](ctor func() T) ProtoJSON[T] {
	return ProtoJSON[T]{new: ctor}
}

func (c ProtoJSON[T]) Encode(v T) ([]byte, error) {
	return protojson.Marshal(v)
}
func (c ProtoJSON[T]) Decode(b []byte) (T, error) {
	m := c.new()
	err := protojson.Unmarshal(b, m)
	return m, err
}
