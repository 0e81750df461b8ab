package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/civika-labs/serbisyo-cli/internal/adapters/driving/httpapi"
	"github.com/civika-labs/serbisyo-cli/internal/logger"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the search API over HTTP",
	Long: `Starts an HTTP server exposing the catalog search as a small JSON
API, e.g. for a kiosk front-end or the municipal website:

  GET /api/search?q=birth+certificate&category=certificates&limit=5
  GET /api/suggestions?q=cert
  GET /api/popular?limit=8
  GET /api/categories`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "127.0.0.1:8080", "listen address")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if searchService == nil || suggestService == nil || catalogService == nil {
		return errors.New("services not configured")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := httpapi.NewServer(serveAddr, searchService, suggestService, catalogService)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	cmd.Printf("Serving search API on http://%s\n", serveAddr)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info("Shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), httpapi.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}
