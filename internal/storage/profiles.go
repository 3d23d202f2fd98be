package storage

import (
	"context"
	"log/slog"
	"sync"

	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/kv"
	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/metrics"
	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/models"
)

// Profiles holds the per-exercise carried state.
type Profiles struct {
	backing
	mu      sync.RWMutex
	entries models.Profile
}

// OpenProfiles loads the profile from store.
func OpenProfiles(ctx context.Context, store kv.Store, log *slog.Logger, m *metrics.Manager) (*Profiles, error) {
	p := &Profiles{backing: backing{kv: store, log: log, metrics: m}}
	var entries models.Profile
	if err := p.load(ctx, KeyProfile, &entries); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = models.Profile{}
	}
	p.entries = entries
	return p, nil
}

// Entry returns the stored state for one exercise.
func (p *Profiles) Entry(exerciseID string) (models.ProfileEntry, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	e, ok := p.entries[exerciseID]
	return e, ok
}

// All returns a copy of the whole profile.
func (p *Profiles) All() models.Profile {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.entries.Clone()
}

// SetLastWeight records the weight to pre-fill next time. The note is kept.
func (p *Profiles) SetLastWeight(ctx context.Context, exerciseID string, w float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	e := p.entries[exerciseID]
	e.LastWeight = models.WeightOf(w)
	p.entries[exerciseID] = e
	p.persist(ctx, KeyProfile, p.entries)
}

// SetNote records the note copied into new sessions. The weight is kept.
func (p *Profiles) SetNote(ctx context.Context, exerciseID, note string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	e := p.entries[exerciseID]
	e.Note = note
	p.entries[exerciseID] = e
	p.persist(ctx, KeyProfile, p.entries)
}

// Clear removes every entry.
func (p *Profiles) Clear(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.entries = models.Profile{}
	p.persist(ctx, KeyProfile, p.entries)
}
