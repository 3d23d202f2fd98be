package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"tailscale.com/tsnet"

	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/config"
	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/kv"
	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/metrics"
	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/server"
	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/tracker"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	migrateOnly := flag.Bool("migrate-only", false, "run postgres migrations and exit")
	flag.Parse()

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := cfg.Logging.NewLogger(os.Stdout)
	log.Info("dumbbell tracker starting", "version", Version, "driver", cfg.Storage.Driver)

	if *migrateOnly {
		if cfg.Storage.Driver != kv.DriverPostgres {
			log.Error("migrate-only requires the postgres driver", "driver", cfg.Storage.Driver)
			os.Exit(1)
		}
		if err := kv.RunMigrations(cfg.Database.DSN()); err != nil {
			log.Error("migration failed", "error", err)
			os.Exit(1)
		}
		log.Info("migrate-only: exiting")
		return
	}

	// Open store
	ctx := context.Background()
	store, err := kv.Open(ctx, cfg.StoreOptions())
	if err != nil {
		log.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	log.Info("store opened")

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	if pg, ok := store.(*kv.Postgres); ok {
		reg.MustRegister(pgxpoolprometheus.NewCollector(pg.Pool, map[string]string{"db_name": cfg.Database.Name}))
	}
	m := metrics.NewManager("dumbbell", "tracker", reg)

	t, err := tracker.New(ctx, store, log, m,
		tracker.WithDefaultRest(time.Duration(cfg.Timer.DefaultRestSeconds)*time.Second))
	if err != nil {
		log.Error("failed to load state", "error", err)
		os.Exit(1)
	}
	defer t.CancelRest()

	srv := server.New(t, cfg.Auth.APIKey, log, m, reg)

	// Listen on the tailnet when enabled, plain TCP otherwise
	var listener net.Listener
	if cfg.Tailscale.Enabled {
		tsServer := &tsnet.Server{
			Hostname: cfg.Tailscale.Hostname,
			Dir:      cfg.Tailscale.StateDir,
		}
		if err := tsServer.Start(); err != nil {
			log.Error("tsnet start failed", "error", err)
			os.Exit(1)
		}
		defer tsServer.Close()

		listener, err = tsServer.Listen("tcp", ":80")
		if err != nil {
			log.Error("tsnet listen failed", "error", err)
			os.Exit(1)
		}
		log.Info("tsnet server starting", "hostname", cfg.Tailscale.Hostname)
	} else {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		listener, err = net.Listen("tcp", addr)
		if err != nil {
			log.Error("listen failed", "addr", addr, "error", err)
			os.Exit(1)
		}
		log.Info("server starting", "addr", addr)
	}

	httpSrv := &http.Server{Handler: srv, ReadHeaderTimeout: 10 * time.Second}

	go func() {
		if err := httpSrv.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("shutting down", "signal", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", "error", err)
	}
	log.Info("server stopped")
}
