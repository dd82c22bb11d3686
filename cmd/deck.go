package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arcanaland/tarotpick/internal/config"
	"github.com/arcanaland/tarotpick/internal/deck"
)

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Manage art decks in your deck library",
	Long: `Commands for managing the art decks in your deck library. The default
deck supplies card artwork and localized card names.`,
}

// deckListCmd represents the deck list command
var deckListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List available decks in your deck library",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		libraryPath := config.GetDeckLibraryPath()

		// Check if deck library exists
		if _, err := os.Stat(libraryPath); os.IsNotExist(err) {
			fmt.Fprintf(out, "Deck library at %s does not exist.\n", libraryPath)
			fmt.Fprintln(out, "Run 'tarotpick deck init' to create it.")
			return nil
		}

		libraryPath, err := filepath.EvalSymlinks(libraryPath)
		if err != nil {
			return fmt.Errorf("error resolving symbolic link: %w", err)
		}

		entries, err := os.ReadDir(libraryPath)
		if err != nil {
			return fmt.Errorf("error reading deck library: %w", err)
		}

		// The saved default, not the --deck override
		defaultDeck, err := config.GetDefaultDeck()
		if err != nil {
			return err
		}

		found := 0
		for _, entry := range entries {
			// Resolve the symbolic link or regular entry
			entryPath := filepath.Join(libraryPath, entry.Name())
			fileInfo, err := os.Stat(entryPath)
			if err != nil {
				logger.Warn("cannot resolve library entry", "entry", entry.Name(), "error", err)
				continue
			}
			if !fileInfo.IsDir() {
				continue
			}

			d, err := deck.LoadArtDeck(entryPath, cfg.Language)
			if err != nil {
				// Not a valid deck, skip
				logger.Debug("skipping library entry", "entry", entry.Name(), "error", err)
				continue
			}
			found++

			if entry.Name() == defaultDeck {
				fmt.Fprintf(out, "* %s (%s) [DEFAULT]\n", entry.Name(), d.Byline())
			} else {
				fmt.Fprintf(out, "  %s (%s)\n", entry.Name(), d.Byline())
			}
			if d.Description != "" {
				fmt.Fprintf(out, "    %s\n", d.Description)
			}
		}

		if found == 0 {
			fmt.Fprintln(out, "No decks found in your deck library.")
			fmt.Fprintln(out, "You can add decks by copying them to:", libraryPath)
		}
		return nil
	},
}

// deckSetDefaultCmd represents the deck set-default command
var deckSetDefaultCmd = &cobra.Command{
	Use:   "set-default [deck_name]",
	Short: "Set the default deck",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deckName := args[0]

		deckPath, err := config.GetDeckPath(deckName)
		if err != nil {
			return err
		}

		// Try to load the deck to make sure it's valid
		if _, err := deck.LoadArtDeck(deckPath, cfg.Language); err != nil {
			return fmt.Errorf("not a valid deck: %w", err)
		}

		if err := config.SetDefaultDeck(deckName); err != nil {
			return fmt.Errorf("error setting default deck: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Default deck set to: %s\n", deckName)
		return nil
	},
}

// deckInitCmd represents the deck init command
var deckInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the deck library",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		libraryPath := config.GetDeckLibraryPath()

		// Create the deck library directory if it doesn't exist
		if err := os.MkdirAll(libraryPath, 0755); err != nil {
			return fmt.Errorf("error creating deck library: %w", err)
		}

		fmt.Fprintln(out, "Deck library initialized at:", libraryPath)
		fmt.Fprintln(out, "You can now add decks by copying them to this directory.")

		// The config file was created by the root command if it was missing
		fmt.Fprintln(out, "Config file at:", config.GetConfigFilePath())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckListCmd)
	deckCmd.AddCommand(deckSetDefaultCmd)
	deckCmd.AddCommand(deckInitCmd)
}
