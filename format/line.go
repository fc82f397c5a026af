package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/dba/army"
)

// LineEncoder writes one tab separated line per variant:
//
//	ref  terrain  aggression  years  name  troops
//
// Missing years print as "-".
type LineEncoder struct {
	w        io.Writer
	variants []*army.Variant
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(variants []*army.Variant) error {
	e.variants = variants
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	for _, v := range e.variants {
		years := "-"
		if v.Years != nil {
			years = v.Years.String()
		}
		fmt.Fprintf(&sb, "%s\t%s\t%d\t%s\t%s\t%s\n",
			v.Ref,
			army.JoinTerrains(v.Terrain),
			v.Aggression,
			years,
			v.Name,
			v.Troops,
		)
	}
	return []byte(sb.String()), nil
}

// ArmyLines writes one line per army: reference, variant count and group
// name.
func ArmyLines(w io.Writer, armies []*army.Army) error {
	for _, a := range armies {
		if _, err := fmt.Fprintf(w, "%s\t%d\t%s\n", a.Ref(), len(a.Variants), a.Header.GroupName); err != nil {
			return err
		}
	}
	return nil
}
