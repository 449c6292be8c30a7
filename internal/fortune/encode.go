package fortune

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"

	"github.com/arcanaland/fortunes/internal/jsonenc"
)

// Marshal serializes doc in the given format.
//
// JSON is indented with two spaces and written as JSON.stringify would.
func Marshal(doc *Document, format Format) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case FormatJSON, "":
		b, err := jsonenc.Marshal(doc, "  ")
		if err != nil {
			return nil, err
		}
		buf.Write(b)
		buf.WriteByte('\n')
	case FormatTOML:
		enc := toml.NewEncoder(&buf)
		enc.Indent = ""
		if err := enc.Encode(doc); err != nil {
			return nil, err
		}
	case FormatYAML:
		b, err := yaml.MarshalWithOptions(doc, yaml.Indent(2), yaml.IndentSequence(true))
		if err != nil {
			return nil, err
		}
		buf.Write(b)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	return buf.Bytes(), nil
}

// Encode writes doc to w in a single write, nothing is written on failure
func Encode(w io.Writer, doc *Document, format Format) error {
	b, err := Marshal(doc, format)
	if err != nil {
		return err
	}

	_, err = w.Write(b)
	return err
}

// Unmarshal parses a fortunes document in the given format
func Unmarshal(data []byte, format Format) (*Document, error) {
	var doc Document

	switch format {
	case FormatJSON, "":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	case FormatTOML:
		if _, err := toml.Decode(string(data), &doc); err != nil {
			return nil, err
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	return &doc, nil
}
