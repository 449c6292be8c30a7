// Package tarot holds the tarot interpretation input model and its loader.
package tarot

import (
	"encoding/json"
	"fmt"
)

// Document is the top-level tarot interpretations document
type Document struct {
	Interpretations []Interpretation `json:"tarot_interpretations"`
}

// Interpretation represents one tarot card's interpretation record.
//
// Fields such as fortune_telling are present in the source data but are
// never decoded.
type Interpretation struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
	Meanings Meanings `json:"meanings"`
}

// Meanings holds the upright (light) and reversed (shadow) texts of a card
type Meanings struct {
	Light  Text `json:"light"`
	Shadow Text `json:"shadow"`
}

// UnmarshalJSON implements json.Unmarshaler, matching keys exactly
func (d *Document) UnmarshalJSON(data []byte) error {
	var doc Document
	if err := decodeFields(data, []field{
		{"tarot_interpretations", &doc.Interpretations},
	}); err != nil {
		return err
	}
	*d = doc
	return nil
}

// UnmarshalJSON implements json.Unmarshaler, matching keys exactly
func (i *Interpretation) UnmarshalJSON(data []byte) error {
	var interpretation Interpretation
	if err := decodeFields(data, []field{
		{"name", &interpretation.Name},
		{"keywords", &interpretation.Keywords},
		{"meanings", &interpretation.Meanings},
	}); err != nil {
		return err
	}
	*i = interpretation
	return nil
}

// UnmarshalJSON implements json.Unmarshaler, matching keys exactly
func (m *Meanings) UnmarshalJSON(data []byte) error {
	var meanings Meanings
	if err := decodeFields(data, []field{
		{"light", &meanings.Light},
		{"shadow", &meanings.Shadow},
	}); err != nil {
		return err
	}
	*m = meanings
	return nil
}

type field struct {
	key string
	dst any
}

// decodeFields decodes the members of a JSON object whose keys equal a
// field key byte for byte. Members differing only in case are ignored.
func decodeFields(data []byte, fields []field) error {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return err
	}

	for _, f := range fields {
		raw, ok := members[f.key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, f.dst); err != nil {
			return fmt.Errorf("%s: %w", f.key, err)
		}
	}

	return nil
}
