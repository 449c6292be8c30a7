package validator

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/fortunes/internal/tarot"
)

func TestValidate(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		errors   []string
		warnings []string
	}{
		{
			name: "valid",
			input: `{"tarot_interpretations":[
  {"name":"The Fool","keywords":["freedom","faith"],"meanings":{"light":["a","b","c"],"shadow":"naive"}}
]}`,
		},
		{
			name:     "empty",
			input:    `{"tarot_interpretations":[]}`,
			warnings: []string{"tarot_interpretations is empty"},
		},
		{
			name:   "missing meanings",
			input:  `{"tarot_interpretations":[{"name":"The Fool","keywords":["freedom","faith"]}]}`,
			errors: []string{"tarot_interpretations.0: meanings is required"},
		},
		{
			name: "warnings",
			input: `{"tarot_interpretations":[
  {"name":"The Fool","keywords":["freedom"],"meanings":{"light":["a"],"shadow":" "}},
  {"name":"the fool","keywords":[],"meanings":{"light":"a","shadow":"b"}},
  {"name":"","keywords":["x","y"],"meanings":{"light":"a","shadow":"b"}}
]}`,
			warnings: []string{
				"tarot_interpretations.1 (the fool): duplicate name, first used by tarot_interpretations.0",
				"tarot_interpretations.2: name is blank",
				"tarot_interpretations.0 (The Fool): 1 keyword(s), readings draw 2",
				"tarot_interpretations.1 (the fool): no keywords",
				"tarot_interpretations.0 (The Fool): 1 light line(s), readings draw 3",
				"tarot_interpretations.0 (The Fool): shadow meaning is blank",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fsys := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fsys, tarot.DefaultFileName, []byte(tc.input), 0644))

			results, err := NewValidator(fsys, tarot.DefaultFileName).Validate()
			require.NoError(t, err)
			assert.Equal(t, tc.errors, results.Errors)
			assert.Equal(t, tc.warnings, results.Warnings)
			assert.Equal(t, len(tc.errors) > 0, results.SchemaErr != nil)
		})
	}
}

func TestValidateFailures(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "broken.json", []byte(`{"tarot_interpretations":`), 0644))

	_, err := NewValidator(fsys, "broken.json").Validate()
	var pErr *tarot.ParseError
	require.ErrorAs(t, err, &pErr)

	_, err = NewValidator(fsys, "missing.json").Validate()
	var rErr *tarot.ReadError
	require.ErrorAs(t, err, &rErr)
}
