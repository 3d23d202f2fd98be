package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/config"
	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/kv"
	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/mcp"
	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/metrics"
	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/tracker"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	remote := flag.String("remote", "", "base URL of a running dumbbell-tracker (e.g. http://dumbbell); reads go over HTTP instead of the local store")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// stdout carries the protocol, so logs go to stderr.
	log := cfg.Logging.NewLogger(os.Stderr)

	var ds mcp.DataSource
	if *remote != "" {
		ds = mcp.NewHTTPClient(*remote)
		log.Info("mcp using remote tracker", "url", *remote)
	} else {
		ctx := context.Background()
		store, err := kv.Open(ctx, cfg.StoreOptions())
		if err != nil {
			log.Error("failed to open store", "error", err)
			os.Exit(1)
		}
		defer store.Close()

		t, err := tracker.New(ctx, store, log, metrics.NewManager("dumbbell", "mcp", prometheus.NewRegistry()))
		if err != nil {
			log.Error("failed to load state", "error", err)
			os.Exit(1)
		}
		ds = mcp.NewLocal(t)
		log.Info("mcp using local store", "driver", cfg.Storage.Driver)
	}

	if err := server.ServeStdio(mcp.New(ds, Version, log)); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}
