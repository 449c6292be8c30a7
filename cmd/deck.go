package cmd

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/arcanaland/fortunes/internal/deck"
	"github.com/arcanaland/fortunes/internal/fortune"
	"github.com/arcanaland/fortunes/internal/render"
	"github.com/arcanaland/fortunes/internal/tarot"
)

// addDeckFlag registers the --deck flag shared by show and draw
func addDeckFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("deck", "d", "", "Read fortunes from a .json, .toml or .yaml fortunes file instead of converting the input")
}

// loadDeck loads the fortunes file given by --deck, or converts the input
// document when no deck is given
func loadDeck(cmd *cobra.Command) (*deck.Deck, error) {
	logger := log.FromContext(cmd.Context())

	if deckPath, _ := cmd.Flags().GetString("deck"); deckPath != "" {
		logger.Debug("loading deck", "path", deckPath)
		return deck.Load(appFs, deckPath)
	}

	opts, err := getOptions(cmd)
	if err != nil {
		return nil, err
	}

	logger.Debug("converting input into a deck", "path", opts.Input)
	in, err := tarot.Load(appFs, opts.Input)
	if err != nil {
		return nil, err
	}

	return deck.New(opts.Input, fortune.Convert(in)), nil
}

// terminalWidth returns the width available to rendered output
func terminalWidth(cmd *cobra.Command) int {
	if f, ok := cmd.OutOrStdout().(*os.File); ok {
		return render.TerminalWidth(f)
	}
	return render.DefaultWidth
}
