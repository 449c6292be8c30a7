package cmd

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/arcanaland/fortunes/internal/config"
	"github.com/arcanaland/fortunes/internal/fortune"
)

// options are the settings of one invocation after merging config and flags
type options struct {
	Input    string
	Output   string
	Format   fortune.Format
	LogLevel log.Level
}

type optionsKey struct{}

func withOptions(ctx context.Context, opts *options) context.Context {
	return context.WithValue(ctx, optionsKey{}, opts)
}

// getOptions returns the options resolved by PersistentPreRunE
func getOptions(cmd *cobra.Command) (*options, error) {
	if opts, ok := cmd.Context().Value(optionsKey{}).(*options); ok {
		return opts, nil
	}
	return loadOptions(cmd)
}

// configFilePath returns the --config flag or the XDG config file path
func configFilePath(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("config"); p != "" {
		return p
	}
	return config.GetConfigFilePath()
}

// loadOptions merges the config file and flags: default < cfg < flags
func loadOptions(cmd *cobra.Command) (*options, error) {
	cfg, err := config.LoadConfig(appFs, configFilePath(cmd))
	if err != nil {
		return nil, err
	}

	opts := &options{Input: cfg.Input}
	if err := opts.Format.Set(cfg.Format); err != nil {
		return nil, err
	}

	level := cfg.LogLevel
	if cmd.Flags().Changed("log-level") {
		level, _ = cmd.Flags().GetString("log-level")
	}
	opts.LogLevel, err = log.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("input") {
		opts.Input, _ = cmd.Flags().GetString("input")
	}

	if cmd.Flags().Changed("format") {
		opts.Format = outputFormat
	}

	// Only the root command writes files
	if cmd.Flags().Lookup("output") != nil {
		opts.Output, _ = cmd.Flags().GetString("output")
	}

	return opts, nil
}
