package cmd

import (
	"fmt"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/tarotpick/internal/render"
)

var cardsCmd = &cobra.Command{
	Use:   "cards",
	Short: "List the cards of the deck",
	Long: `Cards lists every card of the configured deck shape with its canonical
ID, glyph and name. Use an ID with 'tarotpick show'.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cards, err := loadCards()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		title := fmt.Sprintf("%d cards (%s)", cards.deck.Size(), cards.deck.Shape())
		if cards.name != "" {
			title += " · " + cards.name
		}
		fmt.Fprintln(out, colorize.HiWhiteString("%s", title))

		for _, c := range cards.deck.Cards() {
			fmt.Fprintf(out, "%s  %s %s\n",
				colorize.CyanString("%-28s", c.ID), render.Glyph(c), colorize.HiWhiteString("%s", c.Name))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(cardsCmd)
}
