package commands

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"talent-stake/infrastructure/httpapi"
)

// NewServeCommand creates the serve command.
func NewServeCommand(app *App) *cobra.Command {
	var listenAddr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the JSON API and the mirror scheduler",
		Long: `Serves the ledger over HTTP and keeps the read-side mirror in sync
until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			container, err := app.Container(cmd.Context())
			if err != nil {
				return err
			}
			cfg := container.Config
			if listenAddr == "" {
				listenAddr = cfg.HTTP.ListenAddr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := container.MirrorScheduler.Start(ctx); err != nil {
				return err
			}

			api := httpapi.New(httpapi.Config{
				Engine:   container.EscrowEngine,
				Queries:  container.LedgerQueries,
				Disputes: container.DisputeService,
				Logger:   container.Logger,
				Metrics:  container.Metrics.Handler(),
			})
			server := &http.Server{
				Addr:              listenAddr,
				Handler:           api.Handler(),
				ReadHeaderTimeout: 5 * time.Second,
			}

			serveErr := make(chan error, 1)
			go func() {
				container.Logger.Info("HTTP API listening", "addr", listenAddr)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serveErr <- err
				}
				close(serveErr)
			}()

			select {
			case <-ctx.Done():
				container.Logger.Info("Shutting down")
			case err := <-serveErr:
				if err != nil {
					return err
				}
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				container.Logger.WithError(err).Error("HTTP shutdown failed")
			}
			container.MirrorScheduler.Stop()
			return nil
		},
	}

	cmd.Flags().StringVar(&listenAddr, "listen", "", "listen address (defaults to http.listen_addr)")
	return cmd
}
