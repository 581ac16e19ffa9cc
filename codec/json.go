package codec

import (
	"bytes"
	"encoding/json"

	jsonv2 "github.com/go-json-experiment/json"
)

// JSON is the lenient encoding/json codec. Unknown members are ignored and
// missing members keep their zero value, so it accepts almost any object.
type JSON[V any] struct{}

func (JSON[V]) Encode(v V) ([]byte, error) { return json.Marshal(v) }
func (JSON[V]) Decode(b []byte) (V, error) {
	var v V
	err := json.Unmarshal(b, &v)
	return v, err
}

// StrictJSON decodes with github.com/go-json-experiment/json and rejects
// unknown object members, then runs Validate over the result.
// The zero value is ready to use.
type StrictJSON[V any] struct{}

var jsonNull = []byte("null")

func (StrictJSON[V]) Encode(v V) ([]byte, error) {
	return jsonv2.Marshal(v, jsonv2.Deterministic(true))
}

func (StrictJSON[V]) Decode(b []byte) (V, error) {
	var v V
	if bytes.Equal(bytes.TrimSpace(b), jsonNull) {
		return v, nullable[V]()
	}
	if err := jsonv2.Unmarshal(b, &v, jsonv2.RejectUnknownMembers(true)); err != nil {
		return v, err
	}
	return v, Validate(v)
}
