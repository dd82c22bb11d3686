package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcanaland/tarotpick/internal/config"
)

var (
	cfg    *config.Config
	logger *slog.Logger

	logLevelFlag string
	deckFlag     string
	shapeFlag    string
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "tarotpick",
	Short: "Draw tarot cards and read their meanings",
	Long: `Tarotpick draws one or three cards from a tarot deck and shows their
divinatory meanings. Cards are shown as glyphs, or as real card artwork
from a deck in your deck library when premium is enabled.

Readings are kept in memory only; the last five are listed by the
interactive 'tui' and the HTTP 'serve' front ends.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	RootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level: debug, info, warn or error (default from config)")
	RootCmd.PersistentFlags().StringVarP(&deckFlag, "deck", "d", "", "Art deck from your deck library or a path to a deck (default from config)")
	RootCmd.PersistentFlags().StringVar(&shapeFlag, "shape", "", "Deck shape: full (78 cards) or major (22 cards) (default from config)")

	RootCmd.AddCommand(validateCmd)
}

// setup loads the config file and installs the default logger
func setup(cmd *cobra.Command, args []string) error {
	c, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if logLevelFlag != "" {
		c.LogLevel = logLevelFlag
	}
	if shapeFlag != "" {
		c.Shape = shapeFlag
	}
	if deckFlag != "" {
		c.DefaultDeck = deckFlag
	}

	level, err := config.ParseLogLevel(c.LogLevel)
	if err != nil {
		return err
	}
	cfg = c
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
