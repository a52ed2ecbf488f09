package serializer

import (
	"bytes"
	"errors"
	"io"

	"github.com/goccy/go-json"
)

// ErrTrailingData is returned when input holds more than one JSON value.
var ErrTrailingData = errors.New("trailing data after JSON value")

// Serializer is the JSON encoder/decoder a codec delegates to.
type Serializer interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// JSON is the default [Serializer].
//
// With UseNumber set, numbers inside decoded claim maps are returned as
// json.Number instead of float64, which preserves integers wider than 53 bits.
type JSON struct {
	UseNumber bool
}

// Marshal encodes v without HTML escaping, so claim values such as URLs
// keep '<', '>' and '&' verbatim.
func (j JSON) Marshal(v any) ([]byte, error) {
	return json.MarshalNoEscape(v)
}

// Unmarshal decodes exactly one JSON value from data into v.
func (j JSON) Unmarshal(data []byte, v any) error {
	if !j.UseNumber {
		return json.Unmarshal(data, v)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return err
	}

	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return ErrTrailingData
	}
	return nil
}
