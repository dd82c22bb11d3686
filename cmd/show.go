package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arcanaland/tarotpick/internal/render"
)

var showCmd = &cobra.Command{
	Use:   "show [card_id]",
	Short: "Display information about a specific card",
	Long: `Show displays detailed information about a tarot card, with ANSI terminal
art when the deck has artwork for it and its glyph otherwise.
Use canonical card IDs like 'major_arcana.00' or 'minor_arcana.wands.ace'.

You can specify a deck using the --deck flag, which will look for the deck
in your deck library (XDG_DATA_HOME/tarot/decks) or as a relative path.
If no deck is specified, the default deck from your config will be used.

Examples:
  tarotpick show major_arcana.00
  tarotpick show --deck rider-waite-smith minor_arcana.wands.ace
  tarotpick show --deck ./custom-deck major_arcana.01`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cards, err := loadCards()
		if err != nil {
			return err
		}

		c, err := cards.deck.Card(args[0])
		if err != nil {
			return err
		}

		renderer := render.New(cmd.OutOrStdout(), cards.art, logger)
		return renderer.Card(c, cards.name, cards.art != nil)
	},
}

func init() {
	RootCmd.AddCommand(showCmd)
}
