// Package format renders recovered BAML element trees.
package format

import (
	"encoding"
	"fmt"
	"io"

	"github.com/dhamidi/bamlkit/baml"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(root baml.Element) error
}

// New returns the encoder registered under name: json, line or dot.
func New(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "json":
		return NewJSONEncoder(w), nil
	case "line":
		return NewLineEncoder(w), nil
	case "dot":
		return NewDOTEncoder(w), nil
	}
	return nil, fmt.Errorf("unknown format: %s (expected json, line, or dot)", name)
}
