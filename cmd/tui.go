package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/arcanaland/tarotpick/internal/config"
	"github.com/arcanaland/tarotpick/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive readings in the terminal",
	Long: `Tui opens an interactive session: type a question, draw one or three
cards, browse the last five readings. Logs go to tui.log in the cache
directory while the screen is in use.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		premiumFlag, _ := cmd.Flags().GetBool("premium")

		// The terminal belongs to the TUI, so logs go to a file
		if err := os.MkdirAll(config.GetCacheDir(), 0755); err != nil {
			return fmt.Errorf("error creating cache directory: %w", err)
		}
		logFile, err := os.OpenFile(filepath.Join(config.GetCacheDir(), "tui.log"),
			os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("error opening log file: %w", err)
		}
		defer logFile.Close()
		level, _ := config.ParseLogLevel(cfg.LogLevel)
		logger = slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)

		cards, err := loadCards()
		if err != nil {
			return err
		}
		sess := newSession(cards, nil, premiumFlag)

		program := tea.NewProgram(tui.NewModel(sess, cards.art, logger),
			tea.WithAltScreen(), tea.WithContext(cmd.Context()))
		_, err = program.Run()
		return err
	},
}

func init() {
	RootCmd.AddCommand(tuiCmd)

	tuiCmd.Flags().Bool("premium", false, "Show card artwork from the default deck")
}
