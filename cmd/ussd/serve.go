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
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/afrisecure/ussd"
	httpAdapter "github.com/afrisecure/ussd/internal/adapters/http"
	"github.com/afrisecure/ussd/internal/config"
	"github.com/afrisecure/ussd/internal/logging"
	"github.com/afrisecure/ussd/internal/observability"
	"github.com/afrisecure/ussd/pkg/flows"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the gateway HTTP server",
	Long:  `Starts the USSD engine in server mode, answering gateway callbacks on POST /ussd with CON/END screen text.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}
		logger := logging.New(logging.ParseLevel(cfg.LogLevel))

		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector())
		metrics := observability.New(reg)

		var svcOpts []ussd.Option
		svcOpts = append(svcOpts,
			ussd.WithLogger(logger),
			ussd.WithLifecycleHooks(metrics.Hooks()),
			ussd.WithFlowOptions(flows.Options{ApprovalRate: cfg.ApprovalRate}),
		)
		if cfg.FlowPackDir != "" {
			packs, err := flows.LoadPackDir(cfg.FlowPackDir)
			if err != nil {
				fmt.Printf("Error loading flow packs: %v\n", err)
				os.Exit(1)
			}
			svcOpts = append(svcOpts, ussd.WithFlows(packs...))
			logger.Info("flow packs loaded", "dir", cfg.FlowPackDir, "count", len(packs))
		}

		svc, err := ussd.New(svcOpts...)
		if err != nil {
			fmt.Printf("Error initializing engine: %v\n", err)
			os.Exit(1)
		}

		manager, closeStore, err := buildManager(cfg, logger)
		if err != nil {
			fmt.Printf("Error initializing store: %v\n", err)
			os.Exit(1)
		}
		defer closeStore()

		handler := httpAdapter.NewHandler(svc.Engine, manager,
			httpAdapter.WithLogger(logger),
			httpAdapter.WithMetrics(metrics),
			httpAdapter.WithRoute("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{})),
		)

		srv := &http.Server{
			Addr:    cfg.HTTPAddr,
			Handler: handler,
		}

		serverErrors := make(chan error, 1)
		go func() {
			logger.Info("starting USSD server", "addr", srv.Addr, "store", cfg.Store, "flows", svc.Registry.IDs())
			serverErrors <- srv.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			logger.Info("starting shutdown", "signal", sig.String())

			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Warn("graceful shutdown did not complete", "timeout", shutdownTimeout, "err", err)
				if err := srv.Close(); err != nil {
					logger.Error("error killing server", "err", err)
				}
			}
			logger.Info("USSD server stopped")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
