// Package format renders army variants and troop syntax trees for the
// command line and the HTTP API.
package format

import (
	"encoding"
	"fmt"
	"io"

	"github.com/dhamidi/dba/army"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(variants []*army.Variant) error
}

// Names lists the variant encoders NewEncoder accepts.
var Names = []string{"line", "json"}

// NewEncoder returns the variant encoder registered under name.
func NewEncoder(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "line", "text", "":
		return NewLineEncoder(w), nil
	case "json":
		return NewJSONEncoder(w), nil
	}
	return nil, fmt.Errorf("unknown format %q, want one of %v", name, Names)
}
