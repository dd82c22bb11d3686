package cmd

import (
	"errors"
	"fmt"
	"os"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/tarotpick/internal/deck"
	"github.com/arcanaland/tarotpick/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate an art deck directory",
	Long: `Validate checks that an art deck directory can be used for premium
rendering: deck.toml has the required fields and schema_version 1.0, every
card of the configured shape has artwork, and every names/*.toml file parses
and keeps card names unique.

Missing artwork is a warning, since those cards fall back to their glyph.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deckPath := args[0]
		out := cmd.OutOrStdout()

		// Check if path exists
		if _, err := os.Stat(deckPath); os.IsNotExist(err) {
			return fmt.Errorf("deck directory not found: %s", deckPath)
		}

		shape, err := deck.ParseShape(cfg.Shape)
		if err != nil {
			return err
		}

		results, err := validator.Validate(deckPath, shape)
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if results.OK() {
			fmt.Fprintf(out, "✅ Deck '%s' is valid for the %s deck.\n", deckPath, shape)
		} else {
			fmt.Fprintf(out, "❌ Deck '%s' has %d validation errors:\n", deckPath, len(results.Errors))
			for i, e := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, colorize.RedString("%s", e))
			}
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, colorize.YellowString("%s", warn))
			}
		}

		if !results.OK() {
			return errors.New("validation failed")
		}
		return nil
	},
}
