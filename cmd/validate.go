package cmd

import (
	"fmt"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/fortunes/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a tarot interpretations document",
	Long: `Validate checks that every record of a tarot interpretations document has
a name, keywords, and light and shadow meanings of the expected shape.

It also warns about records that convert fine but make poor fortunes:
duplicate names, missing keywords, or blank meanings.
Without a path, the configured input file is validated.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := getOptions(cmd)
		if err != nil {
			return err
		}

		path := opts.Input
		if len(args) == 1 {
			path = args[0]
		}

		// Create validator and run validation
		v := validator.NewValidator(appFs, path)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		out := cmd.OutOrStdout()

		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if len(results.Errors) == 0 {
			fmt.Fprintf(out, "%s '%s' is valid.\n", colorize.GreenString("✅"), path)
		} else {
			fmt.Fprintf(out, "%s '%s' has %d validation errors:\n", colorize.RedString("❌"), path, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, err)
			}
			return fmt.Errorf("validation failed: %w", results.SchemaErr)
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, colorize.YellowString(warn))
			}
		}

		return nil
	},
}
