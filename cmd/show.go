package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/fortunes/internal/render"
)

var showCmd = &cobra.Command{
	Use:   "show [title]",
	Short: "Display a fortune by its title",
	Long: `Show displays a single fortune with all of its keywords and meanings.
Titles are matched ignoring case.

By default the fortune is taken from the converted input document. Use --deck
to read an already converted fortunes file instead.

Examples:
  fortunes show "The Fool"
  fortunes show --deck fortunes.toml "ace of cups"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDeck(cmd)
		if err != nil {
			return err
		}

		f, err := d.Find(args[0])
		if err != nil {
			return fmt.Errorf("error getting fortune: %w", err)
		}

		return render.Fortune(cmd.OutOrStdout(), *f, terminalWidth(cmd))
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	addDeckFlag(showCmd)
}
