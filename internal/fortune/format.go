package fortune

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
)

// Format is the serialization format of a fortunes document
type Format string

// Supported formats
const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

var _ pflag.Value = (*Format)(nil)

// AvailableFormats returns a list of available formats
func AvailableFormats() []string {
	return []string{
		string(FormatJSON),
		string(FormatTOML),
		string(FormatYAML),
	}
}

// String implements pflag.Value
func (f Format) String() string {
	return string(f)
}

// Set implements pflag.Value
func (f *Format) Set(s string) error {
	switch Format(s) {
	case FormatJSON, FormatTOML, FormatYAML:
		*f = Format(s)
		return nil
	default:
		return fmt.Errorf("invalid format %q, must be one of: %s", s, strings.Join(AvailableFormats(), ", "))
	}
}

// Type implements pflag.Value
func (f *Format) Type() string {
	return "format"
}

// FormatFromPath picks a format from a file extension, defaulting to JSON
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}
