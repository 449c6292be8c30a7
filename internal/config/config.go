package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"

	"github.com/arcanaland/fortunes/internal/fortune"
	"github.com/arcanaland/fortunes/internal/tarot"
)

// Config represents the application configuration
type Config struct {
	Input    string `toml:"input"`
	Format   string `toml:"format"`
	LogLevel string `toml:"log_level"`
}

// Default returns the configuration used when no config file exists
func Default() *Config {
	return &Config{
		Input:    tarot.DefaultFileName,
		Format:   string(fortune.FormatJSON),
		LogLevel: "warn",
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "fortunes", "config.toml")
}

// LoadConfig loads the config file, a missing file yields the defaults
func LoadConfig(fs afero.Fs, configPath string) (*Config, error) {
	config := Default()

	if _, err := fs.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	data, err := afero.ReadFile(fs, configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Keys absent from the file keep their default value
	if _, err := toml.Decode(string(data), config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}

	return config, nil
}

// Validate checks the config values
func (c *Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("input must not be empty")
	}

	var format fortune.Format
	return format.Set(c.Format)
}

// Init writes the default config file unless one already exists
func Init(fs afero.Fs, configPath string) (*Config, error) {
	if _, err := fs.Stat(configPath); err == nil {
		return LoadConfig(fs, configPath)
	}

	config := Default()
	if err := Save(fs, configPath, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save writes the config file, creating its directory
func Save(fs afero.Fs, configPath string, config *Config) error {
	configDir := filepath.Dir(configPath)

	// Ensure the config directory exists
	if err := fs.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := fs.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}

// SetInput sets the default input file in the config
func SetInput(fs afero.Fs, configPath, input string) error {
	config, err := LoadConfig(fs, configPath)
	if err != nil {
		return err
	}

	config.Input = input
	if err := config.Validate(); err != nil {
		return err
	}

	return Save(fs, configPath, config)
}
