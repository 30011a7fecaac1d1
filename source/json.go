// Package source decodes JSON and YAML documents into values conform can
// validate: objects become map[string]any, arrays []any, and scalars their
// natural Go form.
package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
)

// NumberMode dictates how JSON numbers are decoded.
type NumberMode int

const (
	NumberFloat64    NumberMode = iota // Fast mode (with potential precision loss).
	NumberJSONNumber                   // Preserve json.Number.
)

// JSONOpt configures JSON decoding.
type JSONOpt struct {
	Numbers NumberMode
}

// JSON decodes a single JSON document.
func JSON(data []byte, opt ...JSONOpt) (any, error) {
	return JSONReader(bytes.NewReader(data), opt...)
}

// JSONReader decodes a single JSON document from r. Trailing data after the
// document is an error.
func JSONReader(r io.Reader, opt ...JSONOpt) (any, error) {
	var o JSONOpt
	if len(opt) > 0 {
		o = opt[0]
	}
	dec := json.NewDecoder(r)
	if o.Numbers == NumberJSONNumber {
		dec.UseNumber()
	}
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("source: decode json: %w", err)
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, errors.New("source: decode json: unexpected data after document")
	}
	return v, nil
}
