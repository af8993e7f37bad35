package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dino/internal/platform/web"
	"github.com/vovakirdan/tui-dino/internal/storage"
)

var flagWebAddr string

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Serve the leaderboard over HTTP",
	Long: `Start a read-only JSON leaderboard.

Endpoints:
  GET /health
  GET /api/v1/scores?character=<name>&limit=<n>
  GET /api/v1/best
  GET /api/v1/stats

Examples:
  dino web
  dino web --addr 127.0.0.1:9000 --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagWebAddr, "addr", ":8080", "HTTP listen address (host:port)")
}

func runWeb(_ *cobra.Command, _ []string) {
	logger := serverLogger("dino-web")

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	runErr := web.NewServer(store, logger).ListenAndServe(ctx, flagWebAddr)
	stop()
	store.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", runErr)
		os.Exit(1)
	}
}
