// Package fortune converts tarot interpretations into fortune records.
package fortune

import (
	"github.com/arcanaland/fortunes/internal/tarot"
)

// TypeTempTarot tags fortunes produced from tarot interpretations
const TypeTempTarot = "TEMP_TAROT"

// Fortune represents a fortune record
type Fortune struct {
	Type     string     `json:"type" toml:"type" yaml:"type"`
	Title    string     `json:"title" toml:"title" yaml:"title"`
	Keywords []string   `json:"keywords" toml:"keywords" yaml:"keywords"`
	Light    tarot.Text `json:"light" toml:"light" yaml:"light"`
	Shadow   tarot.Text `json:"shadow" toml:"shadow" yaml:"shadow"`
}

// Document is the top-level fortunes document
type Document struct {
	Fortunes []Fortune `json:"fortunes" toml:"fortunes" yaml:"fortunes"`
}

// FromInterpretation projects a tarot interpretation onto a fortune
func FromInterpretation(in tarot.Interpretation) Fortune {
	return Fortune{
		Type:     TypeTempTarot,
		Title:    in.Name,
		Keywords: in.Keywords,
		Light:    in.Meanings.Light,
		Shadow:   in.Meanings.Shadow,
	}
}

// Convert maps every interpretation to a fortune, keeping their order
func Convert(in *tarot.Document) *Document {
	fortunes := make([]Fortune, 0, len(in.Interpretations))
	for _, interpretation := range in.Interpretations {
		fortunes = append(fortunes, FromInterpretation(interpretation))
	}

	return &Document{Fortunes: fortunes}
}
