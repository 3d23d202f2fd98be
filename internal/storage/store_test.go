package storage

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/kv"
	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/metrics"
	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/models"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// failingStore reads like an empty store and rejects every write.
type failingStore struct{}

func (failingStore) Get(context.Context, string) ([]byte, error) { return nil, kv.ErrNotFound }
func (failingStore) Put(context.Context, string, []byte) error   { return errors.New("disk full") }
func (failingStore) Close() error                                { return nil }

func sampleLog(id string) models.WorkoutLog {
	return models.WorkoutLog{
		ID:         id,
		Date:       "2026-10-01T08:00:00.000Z",
		TemplateID: "push",
		Entries: []models.WorkoutLogEntry{{
			ExerciseID: "db_bench_press",
			Sets:       []models.SetEntry{{Reps: models.RepsOf(8), Weight: models.WeightOf(20)}},
		}},
	}
}

// TestLogs_AppendPrepends verifies the most recent log is stored first and
// that the persisted array matches the in-memory order.
func TestLogs_AppendPrepends(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	logs, err := OpenLogs(ctx, store, discardLogger(), metrics.NewTestManager())
	if err != nil {
		t.Fatalf("OpenLogs: %v", err)
	}

	logs.Append(ctx, sampleLog("a"))
	logs.Append(ctx, sampleLog("b"))

	all := logs.All()
	if len(all) != 2 || all[0].ID != "b" || all[1].ID != "a" {
		t.Fatalf("All() ids = %v, want [b a]", ids(all))
	}

	reopened, err := OpenLogs(ctx, store, discardLogger(), metrics.NewTestManager())
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if diff := cmp.Diff(all, reopened.All()); diff != "" {
		t.Errorf("persisted logs mismatch (-want +got):\n%s", diff)
	}
}

// TestLogs_ReplaceAllAndClear covers wholesale replacement and clearing.
func TestLogs_ReplaceAllAndClear(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	m := metrics.NewTestManager()
	logs, err := OpenLogs(ctx, store, discardLogger(), m)
	if err != nil {
		t.Fatal(err)
	}
	logs.Append(ctx, sampleLog("old"))

	logs.ReplaceAll(ctx, []models.WorkoutLog{sampleLog("x"), sampleLog("x")})
	if got := ids(logs.All()); !cmp.Equal(got, []string{"x", "x"}) {
		t.Errorf("after ReplaceAll ids = %v, want [x x]", got)
	}
	if got := testutil.ToFloat64(m.GaugeStoredLogs); got != 2 {
		t.Errorf("stored_logs gauge = %v, want 2", got)
	}

	logs.Clear(ctx)
	if logs.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", logs.Len())
	}
	raw, err := store.Get(ctx, KeyLogs)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != "[]" {
		t.Errorf("persisted logs after Clear = %s, want []", raw)
	}
}

// TestLogs_AllReturnsCopy verifies callers cannot mutate stored logs.
func TestLogs_AllReturnsCopy(t *testing.T) {
	ctx := context.Background()
	logs, _ := OpenLogs(ctx, kv.NewMemory(), discardLogger(), metrics.NewTestManager())
	logs.Append(ctx, sampleLog("a"))

	all := logs.All()
	all[0].Entries[0].Sets[0].Weight = models.WeightOf(99)

	if w := logs.All()[0].Entries[0].Sets[0].Weight; w != models.WeightOf(20) {
		t.Errorf("stored weight = %+v, want 20", w)
	}
}

// TestOpenLogs_Corrupt verifies unreadable persisted state is a startup error.
func TestOpenLogs_Corrupt(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	_ = store.Put(ctx, KeyLogs, []byte(`{not json`))

	if _, err := OpenLogs(ctx, store, discardLogger(), metrics.NewTestManager()); err == nil {
		t.Error("expected error for corrupt logs")
	}
}

// TestPersistFailure_Swallowed verifies a failing backend never fails a
// mutation and is counted.
func TestPersistFailure_Swallowed(t *testing.T) {
	ctx := context.Background()
	m := metrics.NewTestManager()
	logs, err := OpenLogs(ctx, failingStore{}, discardLogger(), m)
	if err != nil {
		t.Fatal(err)
	}
	profiles, err := OpenProfiles(ctx, failingStore{}, discardLogger(), m)
	if err != nil {
		t.Fatal(err)
	}

	logs.Append(ctx, sampleLog("a"))
	profiles.SetLastWeight(ctx, "db_row", 30)

	if logs.Len() != 1 {
		t.Errorf("Len() = %d, want 1", logs.Len())
	}
	if e, _ := profiles.Entry("db_row"); e.LastWeight != models.WeightOf(30) {
		t.Errorf("lastWeight = %+v, want 30", e.LastWeight)
	}
	if got := testutil.ToFloat64(m.CounterPersistFailures.WithLabelValues(KeyLogs)); got != 1 {
		t.Errorf("persist failures for logs = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.CounterPersistFailures.WithLabelValues(KeyProfile)); got != 1 {
		t.Errorf("persist failures for profile = %v, want 1", got)
	}
}

// TestProfiles_WeightAndNoteIndependent verifies each setter keeps the
// other field.
func TestProfiles_WeightAndNoteIndependent(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	p, err := OpenProfiles(ctx, store, discardLogger(), metrics.NewTestManager())
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := p.Entry("db_rdl"); ok {
		t.Error("Entry on empty profile: expected miss")
	}

	p.SetNote(ctx, "db_rdl", "hinge, soft knees")
	p.SetLastWeight(ctx, "db_rdl", 24)

	want := models.ProfileEntry{LastWeight: models.WeightOf(24), Note: "hinge, soft knees"}
	if got, _ := p.Entry("db_rdl"); got != want {
		t.Errorf("Entry = %+v, want %+v", got, want)
	}

	raw, _ := store.Get(ctx, KeyProfile)
	wantJSON := `{"db_rdl":{"lastWeight":24,"note":"hinge, soft knees"}}`
	if string(raw) != wantJSON {
		t.Errorf("persisted profile = %s, want %s", raw, wantJSON)
	}

	reopened, err := OpenProfiles(ctx, store, discardLogger(), metrics.NewTestManager())
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(p.All(), reopened.All()); diff != "" {
		t.Errorf("reloaded profile mismatch (-want +got):\n%s", diff)
	}
}

// TestProfiles_Clear verifies the profile empties and persists as {}.
func TestProfiles_Clear(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	p, _ := OpenProfiles(ctx, store, discardLogger(), metrics.NewTestManager())
	p.SetLastWeight(ctx, "db_row", 30)
	p.Clear(ctx)

	if len(p.All()) != 0 {
		t.Errorf("All() after Clear = %v, want empty", p.All())
	}
	raw, _ := store.Get(ctx, KeyProfile)
	if string(raw) != "{}" {
		t.Errorf("persisted profile = %s, want {}", raw)
	}
}

func ids(logs []models.WorkoutLog) []string {
	out := make([]string, len(logs))
	for i, l := range logs {
		out[i] = l.ID
	}
	return out
}
