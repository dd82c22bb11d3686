package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/arcanaland/tarotpick/internal/api"
	"github.com/arcanaland/tarotpick/internal/config"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve readings over HTTP",
	Long: `Serve starts an HTTP server that draws readings and keeps the last five
in memory.

  GET  /healthz
  GET  /v1/deck
  GET  /v1/deck/:id
  POST /v1/readings          {"question": "...", "count": 1|3}
  GET  /v1/readings
  GET  /v1/readings/latest

The listen address defaults to http_addr in the config, or
TAROTPICK_HTTP_ADDR.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			addr = cfg.HTTPAddr
		}

		// Servers log JSON to stdout
		level, _ := config.ParseLogLevel(cfg.LogLevel)
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)

		cards, err := loadCards()
		if err != nil {
			return err
		}
		sess := newSession(cards, nil, false)
		e := api.New(sess, logger)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		serveErr := make(chan error, 1)
		go func() {
			logger.Info("starting server", "addr", addr, "shape", cards.deck.Shape(), "cards", cards.deck.Size())
			if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serveErr <- err
			}
			close(serveErr)
		}()

		select {
		case err := <-serveErr:
			if err != nil {
				return err
			}
		case <-ctx.Done():
		}
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", "", "Listen address (default from config)")
}
