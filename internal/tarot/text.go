package tarot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"

	"github.com/arcanaland/fortunes/internal/jsonenc"
)

// Text is the interpretive text of a meaning.
//
// Interpretation corpora carry it either as a single string or as a list of
// lines. The form it was read in is kept so it is written back unchanged.
type Text struct {
	Lines []string
	List  bool
}

// String creates a single string Text
func String(s string) Text {
	return Text{Lines: []string{s}}
}

// List creates a list Text
func List(lines ...string) Text {
	return Text{Lines: lines, List: true}
}

// value returns the Text in its original shape
func (t Text) value() any {
	if t.List {
		if t.Lines == nil {
			return []string{}
		}
		return t.Lines
	}
	if len(t.Lines) == 0 {
		return ""
	}
	return t.Lines[0]
}

// String joins all lines with newlines
func (t Text) String() string {
	return strings.Join(t.Lines, "\n")
}

// MarshalJSON implements json.Marshaler
func (t Text) MarshalJSON() ([]byte, error) {
	return jsonenc.Marshal(t.value(), "")
}

// UnmarshalJSON implements json.Unmarshaler
func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var lines []string
		if err := json.Unmarshal(data, &lines); err != nil {
			return err
		}
		*t = List(lines...)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*t = String(s)
	return nil
}

// MarshalTOML implements toml.Marshaler.
//
// JSON strings and arrays of strings are valid TOML values.
func (t Text) MarshalTOML() ([]byte, error) {
	return jsonenc.Marshal(t.value(), "")
}

// UnmarshalTOML implements toml.Unmarshaler
func (t *Text) UnmarshalTOML(v any) error {
	return t.fromAny(v)
}

// MarshalYAML implements yaml.InterfaceMarshaler
func (t Text) MarshalYAML() (any, error) {
	return t.value(), nil
}

// UnmarshalYAML implements yaml.InterfaceUnmarshaler
func (t *Text) UnmarshalYAML(unmarshal func(any) error) error {
	var v any
	if err := unmarshal(&v); err != nil {
		return err
	}
	return t.fromAny(v)
}

// JSONSchema describes Text as either a string or a list of strings
func (Text) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		OneOf: []*jsonschema.Schema{
			{Type: "string"},
			{Type: "array", Items: &jsonschema.Schema{Type: "string"}},
		},
	}
}

func (t *Text) fromAny(v any) error {
	switch v := v.(type) {
	case string:
		*t = String(v)
	case []any:
		lines := make([]string, 0, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("line %d: expected string, got %T", i, item)
			}
			lines = append(lines, s)
		}
		*t = List(lines...)
	default:
		return fmt.Errorf("expected string or list of strings, got %T", v)
	}
	return nil
}
