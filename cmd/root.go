package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/arcanaland/fortunes/internal/fortune"
	"github.com/arcanaland/fortunes/internal/tarot"
)

// Exit codes returned by Main
const (
	ExitError  = 1
	ExitParse  = 2
	ExitSchema = 3
)

// appFs is the filesystem every command reads and writes through
var appFs = afero.NewOsFs()

// outputFormat backs the --format flag
var outputFormat = fortune.FormatJSON

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "fortunes",
	Short: "Convert tarot interpretations into fortunes",
	Long: `Fortunes converts a tarot interpretations document into the fortunes
document read by the fortune machine.

Every interpretation becomes one TEMP_TAROT fortune with its name as title,
its keywords, and its light and shadow meanings. Order is preserved.`,
	Example: `  fortunes > fortunes.json
  fortunes -i corpus.json -f toml -o fortunes.toml
  fortunes validate corpus.json`,
	Args: cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		opts, err := loadOptions(cmd)
		if err != nil {
			return err
		}

		log.FromContext(cmd.Context()).SetLevel(opts.LogLevel)
		cmd.SetContext(withOptions(cmd.Context(), opts))

		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		logger := log.FromContext(cmd.Context())

		opts, err := getOptions(cmd)
		if err != nil {
			return err
		}

		logger.Debug("reading tarot interpretations", "path", opts.Input)
		in, err := tarot.Load(appFs, opts.Input)
		if err != nil {
			return err
		}

		out := fortune.Convert(in)
		logger.Debug("converted interpretations", "fortunes", len(out.Fortunes), "format", opts.Format)

		if opts.Output == "" {
			return fortune.Encode(cmd.OutOrStdout(), out, opts.Format)
		}

		b, err := fortune.Marshal(out, opts.Format)
		if err != nil {
			return fmt.Errorf("error encoding fortunes: %w", err)
		}
		if err := afero.WriteFile(appFs, opts.Output, b, 0644); err != nil {
			return fmt.Errorf("error writing %s: %w", opts.Output, err)
		}
		logger.Info("wrote fortunes", "path", opts.Output)

		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().String("config", "", "Path to the config file (default $XDG_CONFIG_HOME/fortunes/config.toml)")
	RootCmd.PersistentFlags().StringP("input", "i", tarot.DefaultFileName, "Tarot interpretations file to read")
	RootCmd.PersistentFlags().StringP("log-level", "l", "warn", "Log level (debug, info, warn, error)")

	RootCmd.Flags().StringP("output", "o", "", "Write fortunes to a file instead of stdout")
	RootCmd.Flags().VarP(&outputFormat, "format", "f",
		fmt.Sprintf("Output format (%s)", strings.Join(fortune.AvailableFormats(), ", ")))

	RootCmd.AddCommand(validateCmd)
}

// Main executes the root command with a logger and returns the process exit code
func Main() int {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})

	ctx := log.WithContext(context.Background(), logger)
	if err := RootCmd.ExecuteContext(ctx); err != nil {
		logger.Error(err)
		return ParseExitCode(err)
	}

	return 0
}

// ParseExitCode calculates the exit code from a given error
//
// 0 - the error was nil
// 2 - the input was not well-formed JSON
// 3 - a record was missing a field or had one of the wrong type
// 1 - any other error
func ParseExitCode(err error) int {
	if err == nil {
		return 0
	}

	var pErr *tarot.ParseError
	if errors.As(err, &pErr) {
		return ExitParse
	}

	var sErr *tarot.SchemaError
	if errors.As(err, &sErr) {
		return ExitSchema
	}

	return ExitError
}
