package storage

import (
	"context"
	"log/slog"
	"sync"

	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/kv"
	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/metrics"
	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/models"
)

// Logs is the ordered history of saved sessions, most recent first.
type Logs struct {
	backing
	mu   sync.RWMutex
	logs []models.WorkoutLog
}

// OpenLogs loads the log history from store.
func OpenLogs(ctx context.Context, store kv.Store, log *slog.Logger, m *metrics.Manager) (*Logs, error) {
	l := &Logs{backing: backing{kv: store, log: log, metrics: m}}
	var logs []models.WorkoutLog
	if err := l.load(ctx, KeyLogs, &logs); err != nil {
		return nil, err
	}
	l.logs = logs
	m.GaugeStoredLogs.Set(float64(len(logs)))
	return l, nil
}

// Append stores log ahead of every existing one.
func (l *Logs) Append(ctx context.Context, log models.WorkoutLog) {
	l.mu.Lock()
	defer l.mu.Unlock()
	next := make([]models.WorkoutLog, 0, len(l.logs)+1)
	next = append(next, log.Clone())
	l.logs = append(next, l.logs...)
	l.commit(ctx)
}

// ReplaceAll swaps the whole history for logs. Nothing is merged or
// de-duplicated.
func (l *Logs) ReplaceAll(ctx context.Context, logs []models.WorkoutLog) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logs = cloneLogs(logs)
	l.commit(ctx)
}

// Clear removes every log.
func (l *Logs) Clear(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logs = nil
	l.commit(ctx)
}

// All returns a copy of the history in storage order.
func (l *Logs) All() []models.WorkoutLog {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return cloneLogs(l.logs)
}

// Len returns the number of stored logs.
func (l *Logs) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.logs)
}

// commit must be called with mu held.
func (l *Logs) commit(ctx context.Context) {
	l.metrics.GaugeStoredLogs.Set(float64(len(l.logs)))
	out := l.logs
	if out == nil {
		out = []models.WorkoutLog{}
	}
	l.persist(ctx, KeyLogs, out)
}

func cloneLogs(logs []models.WorkoutLog) []models.WorkoutLog {
	out := make([]models.WorkoutLog, len(logs))
	for i, lg := range logs {
		out[i] = lg.Clone()
	}
	return out
}
