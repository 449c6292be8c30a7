package cmd

import (
	"fmt"
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/arcanaland/fortunes/internal/deck"
	"github.com/arcanaland/fortunes/internal/render"
)

var drawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Draw a random fortune reading",
	Long: fmt.Sprintf(`Draw picks a random fortune and shows %d of its keywords and up to %d
light and %d shadow meanings, like the fortune machine prints them.

Pass --seed to get the same reading again.`, deck.KeywordSample, deck.MeaningSample, deck.MeaningSample),
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		d, err := loadDeck(cmd)
		if err != nil {
			return err
		}

		seed, _ := cmd.Flags().GetUint64("seed")
		if !cmd.Flags().Changed("seed") {
			seed = rand.Uint64()
		}
		log.FromContext(cmd.Context()).Debug("drawing a reading", "deck", d.Name, "fortunes", d.Len(), "seed", seed)

		reading, err := d.Draw(rand.New(rand.NewPCG(seed, seed)))
		if err != nil {
			return err
		}

		return render.Reading(cmd.OutOrStdout(), reading, terminalWidth(cmd))
	},
}

func init() {
	RootCmd.AddCommand(drawCmd)

	addDeckFlag(drawCmd)
	drawCmd.Flags().Uint64("seed", 0, "Seed for the random reading")
}
