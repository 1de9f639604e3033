package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/wilayah"
	"github.com/aretw0/wilayah/internal/metrics"
	wilayahhttp "github.com/aretw0/wilayah/pkg/adapters/http"
	"github.com/aretw0/wilayah/pkg/domain"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Serves the filter page on /, the JSON API under /api, Prometheus metrics on
/metrics and the session API under /api/sessions.

If the dataset cannot be loaded the server still starts and answers with the
"data unavailable" state until POST /admin/reload succeeds.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Addr = addr
		}

		// Channel to listen for interrupt or terminate signals.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		m := metrics.New(nil)
		engine, err := loadEngine(ctx, m.Hooks(domain.LifecycleHooks{}))
		if engine == nil {
			return err
		}
		if err != nil {
			logger.Warn("starting without dataset", "dataset", cfg.Dataset, "err", err)
		}

		sessions, closeStore, err := newSessions(ctx, cfg.Session, cfg.Redis, engine)
		if err != nil {
			return err
		}
		defer func() { _ = closeStore() }()

		handler, err := wilayahhttp.NewHandler(engine,
			wilayahhttp.WithLoader(engine.Loader()),
			wilayahhttp.WithMetrics(m),
			wilayahhttp.WithSessions(sessions),
			wilayahhttp.WithLogger(logger),
			wilayahhttp.WithVersion(wilayah.Version),
		)
		if err != nil {
			return err
		}

		srv := &http.Server{
			Addr:              cfg.Addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
			// Event streams end when the signal context is cancelled.
			BaseContext: func(net.Listener) context.Context { return ctx },
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)
		go func() {
			logger.Info("starting wilayah server", "addr", srv.Addr, "dataset", cfg.Dataset, "version", wilayah.Version)
			serverErrors <- srv.ListenAndServe()
		}()

		select {
		case err := <-serverErrors:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("server error: %w", err)

		case <-ctx.Done():
			logger.Info("shutting down")

			// Give outstanding requests a deadline for completion.
			sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(sctx); err != nil {
				logger.Error("graceful shutdown did not complete", "timeout", shutdownTimeout, "err", err)
				if err := srv.Close(); err != nil {
					logger.Error("error killing server", "err", err)
				}
			}
			logger.Info("wilayah server stopped gracefully")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", "", "Listen address (overrides WILAYAH_ADDR)")
}
