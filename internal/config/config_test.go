package config

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfigFilePath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, filepath.Join("/tmp/xdg", "fortunes", "config.toml"), GetConfigFilePath())

	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/home/seer")
	assert.Equal(t, filepath.Join("/home/seer", ".config", "fortunes", "config.toml"), GetConfigFilePath())
}

func TestLoadConfig(t *testing.T) {
	testCases := []struct {
		name        string
		contents    string
		expected    *Config
		expectedErr string
	}{
		{
			name:     "missing file",
			expected: Default(),
		},
		{
			name:     "partial file",
			contents: "format = \"toml\"\n",
			expected: &Config{Input: "tarot_interpretations.json", Format: "toml", LogLevel: "warn"},
		},
		{
			name:     "full file",
			contents: "input = \"corpus.json\"\nformat = \"yaml\"\nlog_level = \"debug\"\n",
			expected: &Config{Input: "corpus.json", Format: "yaml", LogLevel: "debug"},
		},
		{
			name:        "bad format",
			contents:    "format = \"xml\"\n",
			expectedErr: `invalid config file config.toml: invalid format "xml", must be one of: json, toml, yaml`,
		},
		{
			name:        "not toml",
			contents:    "format = ",
			expectedErr: "error decoding config file",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fsys := afero.NewMemMapFs()
			if tc.contents != "" {
				require.NoError(t, afero.WriteFile(fsys, "config.toml", []byte(tc.contents), 0644))
			}

			config, err := LoadConfig(fsys, "config.toml")
			if tc.expectedErr != "" {
				require.ErrorContains(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, config)
		})
	}
}

func TestInitAndSetInput(t *testing.T) {
	fsys := afero.NewMemMapFs()
	path := filepath.Join("xdg", "fortunes", "config.toml")

	config, err := Init(fsys, path)
	require.NoError(t, err)
	assert.Equal(t, Default(), config)

	exists, err := afero.Exists(fsys, path)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, SetInput(fsys, path, "deck/corpus.json"))

	// Init keeps an existing file
	config, err = Init(fsys, path)
	require.NoError(t, err)
	assert.Equal(t, "deck/corpus.json", config.Input)
	assert.Equal(t, "json", config.Format)

	require.EqualError(t, SetInput(fsys, path, ""), "input must not be empty")
}
