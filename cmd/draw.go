package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/arcanaland/tarotpick/internal/render"
	"github.com/arcanaland/tarotpick/internal/session"
)

var drawCmd = &cobra.Command{
	Use:   "draw [question...]",
	Short: "Draw a one or three card reading",
	Long: `Draw shuffles the deck and draws one or three cards, each upright or
reversed, for an optional question.

Cards are shown as glyphs. With premium enabled (--premium or
premium = true in the config) the artwork of your default deck is shown
instead, turned upside down for reversed cards.

Examples:
  tarotpick draw
  tarotpick draw -n 1 Will the move go well?
  tarotpick draw --seed 42 --shape major`,
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		premiumFlag, _ := cmd.Flags().GetBool("premium")
		if err := session.ValidSpread(count); err != nil {
			return err
		}

		cards, err := loadCards()
		if err != nil {
			return err
		}

		var seed *uint64
		if cmd.Flags().Changed("seed") {
			s, _ := cmd.Flags().GetUint64("seed")
			seed = &s
		}

		sess := newSession(cards, seed, premiumFlag)
		r, err := sess.Ask(strings.Join(args, " "), count)
		if err != nil {
			return err
		}

		renderer := render.New(cmd.OutOrStdout(), cards.art, logger)
		return renderer.Reading(r, sess.Premium(cmd.Context()))
	},
}

func init() {
	RootCmd.AddCommand(drawCmd)

	drawCmd.Flags().IntP("count", "n", session.ThreeCards, "Number of cards to draw (1 or 3)")
	drawCmd.Flags().Bool("premium", false, "Show card artwork from the default deck")
	drawCmd.Flags().Uint64("seed", 0, "Seed the shuffle for a reproducible reading")
}
