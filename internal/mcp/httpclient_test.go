package mcp

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/catalog"
	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/kv"
	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/metrics"
	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/models"
	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/server"
	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/tracker"
)

// newRemote starts the real REST API over an in-memory tracker with one
// saved push session.
func newRemote(t *testing.T) (*tracker.Tracker, *httptest.Server) {
	t.Helper()
	ctx := context.Background()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	m, reg := metrics.NewTestManagerAndRegistry()
	tr, err := tracker.New(ctx, kv.NewMemory(), log, m,
		tracker.WithClock(func() time.Time { return now }))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := tr.StartSession(catalog.Push); err != nil {
		t.Fatal(err)
	}
	reps, weight := models.RepsOf(8), models.WeightOf(22.5)
	if _, err := tr.UpdateSet(0, 0, tracker.SetUpdate{Reps: &reps, Weight: &weight}); err != nil {
		t.Fatal(err)
	}
	if _, err := tr.SaveSession(ctx); err != nil {
		t.Fatal(err)
	}

	ts := httptest.NewServer(server.New(tr, "", log, m, reg))
	t.Cleanup(ts.Close)
	return tr, ts
}

// TestHTTPClient_MatchesLocal verifies the remote data source decodes the
// same values the in-process one returns.
func TestHTTPClient_MatchesLocal(t *testing.T) {
	tr, ts := newRemote(t)
	ctx := context.Background()
	remote := NewHTTPClient(ts.URL + "/")
	local := NewLocal(tr)

	logs, err := remote.Logs(ctx)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := local.Logs(ctx)
	if len(logs) != 1 || logs[0].ID != want[0].ID {
		t.Fatalf("Logs = %+v, want %+v", logs, want)
	}
	if got := logs[0].Entries[0].Sets[0]; got.Weight != models.WeightOf(22.5) || got.Reps != models.RepsOf(8) {
		t.Errorf("first set = %+v", got)
	}

	templates, err := remote.Templates(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(templates) != 3 {
		t.Errorf("Templates = %d, want 3", len(templates))
	}

	profile, err := remote.Profile(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if profile["db_bench_press"].LastWeight != models.WeightOf(22.5) {
		t.Errorf("profile = %+v", profile)
	}

	summary, err := remote.Summary(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if summary.TotalSessions != 1 || summary.TotalVolume != 180 {
		t.Errorf("Summary = %+v", summary)
	}

	adherence, err := remote.Adherence(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if adherence.Completed != 1 {
		t.Errorf("Adherence = %+v", adherence)
	}

	series, err := remote.VolumeSeries(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(series) != 1 || series[0].Volume != 180 {
		t.Errorf("VolumeSeries = %+v", series)
	}

	sessions, err := remote.ExerciseProgression(ctx, "db_bench_press")
	if err != nil {
		t.Fatal(err)
	}
	if len(sessions) != 1 || sessions[0].MaxWeight != 22.5 {
		t.Errorf("ExerciseProgression = %+v", sessions)
	}
}

// TestHTTPClient_ErrorStatus verifies non-200 responses are surfaced.
func TestHTTPClient_ErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts.Close()

	if _, err := NewHTTPClient(ts.URL).Logs(context.Background()); err == nil {
		t.Error("expected error for 500 response")
	}
}
