package analytics

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/models"
)

var now = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

func set(reps int, weight float64) models.SetEntry {
	return models.SetEntry{Reps: models.RepsOf(reps), Weight: models.WeightOf(weight)}
}

func logAt(id string, t time.Time, entries ...models.WorkoutLogEntry) models.WorkoutLog {
	return models.WorkoutLog{ID: id, Date: models.FormatDate(t), TemplateID: "push", Entries: entries}
}

func daysAgo(n int) time.Time {
	return now.Add(-time.Duration(n) * 24 * time.Hour)
}

// TestVolume_Additive verifies a log's volume is the sum of its sets and
// that incomplete sets contribute nothing.
func TestVolume_Additive(t *testing.T) {
	log := models.WorkoutLog{Entries: []models.WorkoutLogEntry{
		{Sets: []models.SetEntry{set(8, 20), set(8, 22.5), {Reps: models.RepsOf(10)}}},
		{Sets: []models.SetEntry{{Weight: models.WeightOf(12)}, set(12, 10)}},
		{},
	}}
	want := 8*20 + 8*22.5 + 12*10
	if got := Volume(log); got != want {
		t.Errorf("Volume = %v, want %v", got, want)
	}
	if got := EntryVolume(log.Entries[0]) + EntryVolume(log.Entries[1]); got != want {
		t.Errorf("sum of EntryVolume = %v, want %v", got, want)
	}
	if got := SetVolume(models.SetEntry{}); got != 0 {
		t.Errorf("SetVolume(empty) = %v, want 0", got)
	}
}

// TestAdherence covers the documented thresholds and the 100% cap.
func TestAdherence(t *testing.T) {
	cases := []struct {
		name string
		n    int
		want int
	}{
		{"none", 0, 0},
		{"one", 1, 8},
		{"half", 6, 50},
		{"full", 12, 100},
		{"over", 20, 100},
	}
	for _, tc := range cases {
		var logs []models.WorkoutLog
		for i := 0; i < tc.n; i++ {
			logs = append(logs, logAt("x", daysAgo(i%27)))
		}
		got := Adherence(logs, now)
		if got.Percentage != tc.want {
			t.Errorf("%s: Percentage = %d, want %d", tc.name, got.Percentage, tc.want)
		}
		if got.Completed != tc.n {
			t.Errorf("%s: Completed = %d, want %d", tc.name, got.Completed, tc.n)
		}
		if got.Expected != 12 || got.WindowDays != 28 {
			t.Errorf("%s: Expected, WindowDays = %d, %d, want 12, 28", tc.name, got.Expected, got.WindowDays)
		}
	}
}

// TestAdherence_Window verifies old and unparseable logs are excluded and
// the cutoff itself is inclusive.
func TestAdherence_Window(t *testing.T) {
	logs := []models.WorkoutLog{
		logAt("recent", daysAgo(1)),
		logAt("edge", now.Add(-AdherenceWindow)),
		logAt("old", daysAgo(29)),
		{ID: "bad", Date: "not a date"},
	}
	got := Adherence(logs, now)
	if got.Completed != 2 {
		t.Errorf("Completed = %d, want 2", got.Completed)
	}
	if got.Percentage != 17 {
		t.Errorf("Percentage = %d, want 17", got.Percentage)
	}
}

// TestVolumeSeries verifies chronological order, 1-based indices and rounding.
func TestVolumeSeries(t *testing.T) {
	newest := logAt("c", daysAgo(1), models.WorkoutLogEntry{Sets: []models.SetEntry{set(3, 10.5)}})
	middle := logAt("b", daysAgo(3))
	oldest := logAt("a", daysAgo(5), models.WorkoutLogEntry{Sets: []models.SetEntry{set(10, 20)}})

	got := VolumeSeries([]models.WorkoutLog{newest, middle, oldest})
	want := []VolumePoint{
		{Index: 1, Date: oldest.Date, Volume: 200},
		{Index: 2, Date: middle.Date, Volume: 0},
		{Index: 3, Date: newest.Date, Volume: 32},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("VolumeSeries mismatch (-want +got):\n%s", diff)
	}
}

// TestVolumeSeries_Empty verifies an empty history yields an empty series.
func TestVolumeSeries_Empty(t *testing.T) {
	got := VolumeSeries(nil)
	if got == nil || len(got) != 0 {
		t.Errorf("VolumeSeries(nil) = %#v, want empty non-nil", got)
	}
}

// TestSummarize verifies totals, template counts and first/last dates.
func TestSummarize(t *testing.T) {
	a := logAt("a", daysAgo(10), models.WorkoutLogEntry{Sets: []models.SetEntry{set(8, 20), {Reps: models.RepsOf(8)}}})
	b := logAt("b", daysAgo(2), models.WorkoutLogEntry{Sets: []models.SetEntry{set(10, 15)}})
	b.TemplateID = "legs"
	bad := models.WorkoutLog{ID: "bad", Date: "?", TemplateID: "legs"}

	got := Summarize([]models.WorkoutLog{b, bad, a})
	want := Summary{
		TotalSessions:      3,
		TotalSets:          2,
		TotalReps:          18,
		TotalVolume:        310,
		SessionsByTemplate: map[string]int{"push": 1, "legs": 2},
		FirstSession:       a.Date,
		LastSession:        b.Date,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Summarize mismatch (-want +got):\n%s", diff)
	}
}

// TestExerciseProgression verifies per-session stats in chronological order.
func TestExerciseProgression(t *testing.T) {
	first := logAt("a", daysAgo(7), models.WorkoutLogEntry{
		ExerciseID: "db_row",
		Sets:       []models.SetEntry{set(8, 28), set(8, 30), {Weight: models.WeightOf(26)}},
	})
	other := logAt("b", daysAgo(5), models.WorkoutLogEntry{ExerciseID: "db_rdl", Sets: []models.SetEntry{set(8, 24)}})
	second := logAt("c", daysAgo(2), models.WorkoutLogEntry{
		ExerciseID: "db_row",
		Sets:       []models.SetEntry{set(6, 32)},
	})

	got := ExerciseProgression([]models.WorkoutLog{second, other, first}, "db_row")
	want := []ExerciseSession{
		{LogID: "a", Date: first.Date, MaxWeight: 30, LastWeight: 26, Sets: 2, Reps: 16, Volume: 464},
		{LogID: "c", Date: second.Date, MaxWeight: 32, LastWeight: 32, Sets: 1, Reps: 6, Volume: 192},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ExerciseProgression mismatch (-want +got):\n%s", diff)
	}
	if got := ExerciseProgression([]models.WorkoutLog{first}, "db_shrug"); len(got) != 0 {
		t.Errorf("unknown exercise = %v, want empty", got)
	}
}

// TestExerciseProgression_RepeatedEntry verifies an exercise listed twice in
// one session yields a single merged point.
func TestExerciseProgression_RepeatedEntry(t *testing.T) {
	log := logAt("a", daysAgo(1),
		models.WorkoutLogEntry{ExerciseID: "db_row", Sets: []models.SetEntry{set(8, 30), set(8, 30)}},
		models.WorkoutLogEntry{ExerciseID: "db_rdl", Sets: []models.SetEntry{set(8, 40)}},
		models.WorkoutLogEntry{ExerciseID: "db_row", Sets: []models.SetEntry{set(10, 20)}},
	)

	got := ExerciseProgression([]models.WorkoutLog{log}, "db_row")
	want := []ExerciseSession{
		{LogID: "a", Date: log.Date, MaxWeight: 30, LastWeight: 20, Sets: 3, Reps: 26, Volume: 680},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ExerciseProgression mismatch (-want +got):\n%s", diff)
	}
}
