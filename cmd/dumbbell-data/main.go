package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/config"
	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/kv"
	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/metrics"
	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/tracker"
	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/transfer"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	exportPath := flag.String("export", "", "write the workout history to this file (- for stdout)")
	importPath := flag.String("import", "", "replace the workout history with the logs in this file")
	dryRun := flag.Bool("dry-run", false, "with -import: report counts without writing to the store")
	stats := flag.Bool("stats", false, "print history statistics")
	flag.Parse()

	if *exportPath == "" && *importPath == "" && !*stats {
		fmt.Fprintf(os.Stderr, "Usage: dumbbell-data -config config.yaml (-export %s | -import file [-dry-run] | -stats)\n", transfer.ExportFileName)
		flag.PrintDefaults()
		os.Exit(1)
	}
	if *exportPath != "" && *importPath != "" {
		fmt.Fprintln(os.Stderr, "-export and -import are mutually exclusive")
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	log := cfg.Logging.NewLogger(os.Stderr)

	if *importPath != "" && *dryRun {
		log.Info("dry run: no data will be written to the store")
		if err := checkImport(log, *importPath); err != nil {
			log.Error("import check failed", "error", err)
			os.Exit(1)
		}
		return
	}

	ctx := context.Background()
	store, err := kv.Open(ctx, cfg.StoreOptions())
	if err != nil {
		log.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	t, err := tracker.New(ctx, store, log, metrics.NewManager("dumbbell", "data", prometheus.NewRegistry()))
	if err != nil {
		log.Error("failed to load state", "error", err)
		os.Exit(1)
	}

	switch {
	case *exportPath != "":
		err = export(t, *exportPath)
	case *importPath != "":
		err = importFile(ctx, log, t, *importPath)
	}
	if err != nil {
		log.Error("failed", "error", err)
		store.Close()
		os.Exit(1)
	}

	if *stats {
		printStats(log, t)
	}
}

func export(t *tracker.Tracker, path string) error {
	data, err := t.Export()
	if err != nil {
		return err
	}
	if path == "-" {
		_, err = os.Stdout.Write(append(data, '\n'))
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	return nil
}

func importFile(ctx context.Context, log *slog.Logger, t *tracker.Tracker, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading import file: %w", err)
	}
	res, err := t.Import(ctx, raw)
	if err != nil {
		return fmt.Errorf("%s: %w", res.Message, err)
	}
	log.Info(res.Message, "imported", res.Imported, "mismatched", len(res.Mismatched))
	return nil
}

func checkImport(log *slog.Logger, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading import file: %w", err)
	}
	dec, err := transfer.Decode(raw)
	if err != nil {
		return err
	}
	log.Info("import check", "workouts", len(dec.Logs), "mismatched", len(dec.Mismatched))
	if len(dec.Mismatched) > 0 {
		log.Info("elements with unrecognised fields", "indices", dec.Mismatched)
	}
	return nil
}

func printStats(log *slog.Logger, t *tracker.Tracker) {
	s := t.Summary()
	a := t.Adherence()
	log.Info("history stats",
		"sessions", s.TotalSessions,
		"working_sets", s.TotalSets,
		"reps", s.TotalReps,
		"volume", s.TotalVolume,
		"first_session", s.FirstSession,
		"last_session", s.LastSession,
	)
	for id, n := range s.SessionsByTemplate {
		log.Info("sessions by template", "template", id, "count", n)
	}
	log.Info("adherence",
		"completed", a.Completed,
		"expected", a.Expected,
		"percentage", a.Percentage,
		"window_days", a.WindowDays,
	)
}
