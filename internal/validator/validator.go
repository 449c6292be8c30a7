package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"github.com/arcanaland/fortunes/internal/deck"
	"github.com/arcanaland/fortunes/internal/tarot"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string

	// SchemaErr is the schema error Errors were taken from, nil when valid
	SchemaErr *tarot.SchemaError
}

type Validator struct {
	Path    string
	Results ValidationResults

	fs afero.Fs
}

func NewValidator(fs afero.Fs, path string) *Validator {
	return &Validator{
		Path:    path,
		Results: ValidationResults{},
		fs:      fs,
	}
}

// Validate loads the interpretations document and lints every record.
//
// Schema violations are reported as errors, read and parse failures are
// returned as an error.
func (v *Validator) Validate() (ValidationResults, error) {
	doc, err := tarot.Load(v.fs, v.Path)
	if err != nil {
		var sErr *tarot.SchemaError
		if errors.As(err, &sErr) {
			v.Results.SchemaErr = sErr
			for _, violation := range sErr.Violations {
				v.Results.Errors = append(v.Results.Errors, violation.String())
			}
			return v.Results, nil
		}
		return v.Results, err
	}

	if len(doc.Interpretations) == 0 {
		v.Results.Warnings = append(v.Results.Warnings, "tarot_interpretations is empty")
		return v.Results, nil
	}

	v.validateNames(doc)
	v.validateKeywords(doc)
	v.validateMeanings(doc)

	return v.Results, nil
}

// validateNames checks for blank and duplicate card names
func (v *Validator) validateNames(doc *tarot.Document) {
	seen := make(map[string]int)
	for i, interpretation := range doc.Interpretations {
		name := strings.TrimSpace(interpretation.Name)
		if name == "" {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("%s: name is blank", record(i, interpretation)))
			continue
		}

		key := strings.ToLower(name)
		if first, ok := seen[key]; ok {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("%s: duplicate name, first used by tarot_interpretations.%d", record(i, interpretation), first))
			continue
		}
		seen[key] = i
	}
}

// validateKeywords checks there are enough keywords to draw a reading
func (v *Validator) validateKeywords(doc *tarot.Document) {
	for i, interpretation := range doc.Interpretations {
		switch n := len(interpretation.Keywords); {
		case n == 0:
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("%s: no keywords", record(i, interpretation)))
		case n < deck.KeywordSample:
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("%s: %d keyword(s), readings draw %d", record(i, interpretation), n, deck.KeywordSample))
		}
	}
}

// validateMeanings checks light and shadow texts
func (v *Validator) validateMeanings(doc *tarot.Document) {
	for i, interpretation := range doc.Interpretations {
		meanings := map[string]tarot.Text{
			"light":  interpretation.Meanings.Light,
			"shadow": interpretation.Meanings.Shadow,
		}

		for _, side := range []string{"light", "shadow"} {
			text := meanings[side]
			if strings.TrimSpace(text.String()) == "" {
				v.Results.Warnings = append(v.Results.Warnings,
					fmt.Sprintf("%s: %s meaning is blank", record(i, interpretation), side))
				continue
			}

			if text.List && len(text.Lines) < deck.MeaningSample {
				v.Results.Warnings = append(v.Results.Warnings,
					fmt.Sprintf("%s: %d %s line(s), readings draw %d", record(i, interpretation), len(text.Lines), side, deck.MeaningSample))
			}
		}
	}
}

// record names a record in messages
func record(i int, interpretation tarot.Interpretation) string {
	if interpretation.Name == "" {
		return fmt.Sprintf("tarot_interpretations.%d", i)
	}
	return fmt.Sprintf("tarot_interpretations.%d (%s)", i, interpretation.Name)
}
