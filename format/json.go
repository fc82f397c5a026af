package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/dba/army"
)

type JSONEncoder struct {
	w        io.Writer
	variants []*army.Variant
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(variants []*army.Variant) error {
	e.variants = variants
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(append(text, '\n'))
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(Variants(e.variants), "", "  ")
}

// JSONVariant is the wire form of a variant shared by the JSON encoder and
// the HTTP API.
type JSONVariant struct {
	Ref        string   `json:"ref"`
	Name       string   `json:"name"`
	Years      string   `json:"years,omitempty"`
	Troops     string   `json:"troops"`
	Units      []string `json:"units"`
	Terrain    []string `json:"terrain"`
	Aggression int      `json:"aggression"`
	Enemies    []string `json:"enemies,omitempty"`
	Allies     []string `json:"allies,omitempty"`
}

// Variants converts variants to their wire form. The result is never nil
// so an empty answer encodes as [].
func Variants(variants []*army.Variant) []JSONVariant {
	out := make([]JSONVariant, len(variants))
	for i, v := range variants {
		out[i] = Variant(v)
	}
	return out
}

func Variant(v *army.Variant) JSONVariant {
	jv := JSONVariant{
		Ref:        v.Ref.String(),
		Name:       v.Name,
		Troops:     v.Troops.String(),
		Units:      v.Troops.UnitList(),
		Aggression: v.Aggression,
		Enemies:    refStrings(v.Enemies),
		Allies:     refStrings(v.Allies),
	}
	if v.Years != nil {
		jv.Years = v.Years.String()
	}
	for _, t := range v.Terrain {
		jv.Terrain = append(jv.Terrain, t.InitCap())
	}
	return jv
}

func refStrings(refs []army.Ref) []string {
	var out []string
	for _, r := range refs {
		out = append(out, r.String())
	}
	return out
}
