package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	httpAdapter "github.com/aretw0/ishikawa/internal/adapters/http"
	"github.com/aretw0/ishikawa/internal/adapters/memory"
	"github.com/aretw0/ishikawa/internal/adapters/mockdata"
	"github.com/aretw0/ishikawa/internal/adapters/redis"
	"github.com/aretw0/ishikawa/internal/config"
	"github.com/aretw0/ishikawa/internal/observability"
	"github.com/aretw0/ishikawa/internal/presentation/svg"
	"github.com/aretw0/ishikawa/internal/runtime"
	"github.com/aretw0/ishikawa/pkg/ports"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the analysis HTTP server",
	Long:  `Starts the ishikawa engine in server mode, exposing the web front end and a JSON API over HTTP.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logger, err := loadConfig(cmd)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}
		if listen, _ := cmd.Flags().GetString("listen"); listen != "" {
			cfg.Listen = listen
		}

		store, closeStore := newStore(cfg)
		defer closeStore()

		reg := prometheus.NewRegistry()
		metrics := observability.NewMetrics(reg)

		provider := mockdata.NewProvider(
			mockdata.WithLatency(cfg.Provider.Latency.Std()),
			mockdata.WithLogger(logger),
		)
		engine := runtime.NewEngine(provider, store, svg.NewRenderer(),
			runtime.WithLogger(logger),
			runtime.WithMetrics(metrics),
		)

		handler := httpAdapter.NewHandler(engine,
			httpAdapter.WithLogger(logger),
			httpAdapter.WithMetricsGatherer(reg),
		)

		srv := &http.Server{
			Addr:    cfg.Listen,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting Ishikawa Server on %s\n", srv.Addr)
			fmt.Printf("Session backend: %s\n", cfg.Sessions.Backend)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("Ishikawa Server stopped gracefully")
		}
	},
}

// newStore builds the session store selected by the configuration.
func newStore(cfg config.Config) (ports.SessionStore, func()) {
	if cfg.Sessions.Backend == "redis" {
		store := redis.New(
			cfg.Sessions.Redis.Addr,
			cfg.Sessions.Redis.Password,
			cfg.Sessions.Redis.DB,
			redis.WithTTL(cfg.Sessions.TTL.Std()),
		)
		return store, func() { _ = store.Close() }
	}
	return memory.NewStore(), func() {}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("listen", "p", "", "Listen address, e.g. :8080 (overrides the config file)")
}
