package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/fortunes/internal/fortune"
	"github.com/arcanaland/fortunes/internal/tarot"
)

func TestParseExitCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil", err: nil, expected: 0},
		{name: "generic", err: errors.New("boom"), expected: ExitError},
		{name: "read", err: &tarot.ReadError{Path: "x", Err: errors.New("denied")}, expected: ExitError},
		{name: "parse", err: &tarot.ParseError{Err: errors.New("bad")}, expected: ExitParse},
		{name: "wrapped schema", err: fmt.Errorf("validation error: %w", &tarot.SchemaError{}), expected: ExitSchema},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseExitCode(tc.err))
		})
	}
}

func newOptionsCmd() *cobra.Command {
	c := &cobra.Command{Use: "test"}
	c.Flags().String("config", "", "")
	c.Flags().StringP("input", "i", tarot.DefaultFileName, "")
	c.Flags().String("log-level", "warn", "")
	return c
}

func TestLoadOptions(t *testing.T) {
	fsys := afero.NewMemMapFs()
	orig := appFs
	appFs = fsys
	t.Cleanup(func() { appFs = orig })

	require.NoError(t, afero.WriteFile(fsys, "/cfg/config.toml",
		[]byte("input = \"corpus.json\"\nformat = \"toml\"\nlog_level = \"error\"\n"), 0644))

	testCases := []struct {
		name     string
		args     []string
		expected *options
	}{
		{
			name:     "defaults",
			args:     []string{"--config", "/cfg/missing.toml"},
			expected: &options{Input: tarot.DefaultFileName, Format: fortune.FormatJSON, LogLevel: log.WarnLevel},
		},
		{
			name:     "config file",
			args:     []string{"--config", "/cfg/config.toml"},
			expected: &options{Input: "corpus.json", Format: fortune.FormatTOML, LogLevel: log.ErrorLevel},
		},
		{
			name:     "flags win",
			args:     []string{"--config", "/cfg/config.toml", "-i", "other.json", "--log-level", "debug"},
			expected: &options{Input: "other.json", Format: fortune.FormatTOML, LogLevel: log.DebugLevel},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := newOptionsCmd()
			require.NoError(t, c.Flags().Parse(tc.args))

			opts, err := loadOptions(c)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, opts)
		})
	}

	c := newOptionsCmd()
	require.NoError(t, c.Flags().Parse([]string{"--config", "/cfg/missing.toml", "--log-level", "loud"}))
	_, err := loadOptions(c)
	require.Error(t, err)
}

func TestValidateExitCode(t *testing.T) {
	fsys := afero.NewMemMapFs()
	orig := appFs
	appFs = fsys
	t.Cleanup(func() { appFs = orig })

	require.NoError(t, afero.WriteFile(fsys, "valid.json",
		[]byte(`{"tarot_interpretations":[{"name":"The Fool","keywords":["a","b"],"meanings":{"light":["a","b","c"],"shadow":["a","b","c"]}}]}`), 0644))
	require.NoError(t, afero.WriteFile(fsys, "missing.json",
		[]byte(`{"tarot_interpretations":[{"name":"The Fool"}]}`), 0644))
	require.NoError(t, afero.WriteFile(fsys, "broken.json", []byte(`{`), 0644))

	testCases := []struct {
		name     string
		path     string
		expected int
	}{
		{name: "valid", path: "valid.json", expected: 0},
		{name: "schema errors", path: "missing.json", expected: ExitSchema},
		{name: "malformed", path: "broken.json", expected: ExitParse},
		{name: "unreadable", path: "nope.json", expected: ExitError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			RootCmd.SetOut(&out)
			RootCmd.SetArgs([]string{"validate", "--config", "/cfg/missing.toml", tc.path})
			t.Cleanup(func() {
				RootCmd.SetOut(nil)
				RootCmd.SetArgs(nil)
			})

			ctx := log.WithContext(context.Background(), log.New(io.Discard))
			err := RootCmd.ExecuteContext(ctx)
			assert.Equal(t, tc.expected, ParseExitCode(err))
			if tc.expected == ExitSchema {
				assert.Contains(t, out.String(), "has 2 validation errors:")
			}
		})
	}
}
