// Package storage holds the in-memory log and profile state and mirrors it
// to a key-value backend after every mutation.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/kv"
	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/metrics"
)

// Keys under which state is persisted.
const (
	KeyLogs    = "logs"
	KeyProfile = "profile"
)

// backing bundles what both stores need to load and persist.
type backing struct {
	kv      kv.Store
	log     *slog.Logger
	metrics *metrics.Manager
}

// load decodes key into v. A missing key leaves v untouched.
func (b backing) load(ctx context.Context, key string, v any) error {
	data, err := b.kv.Get(ctx, key)
	if errors.Is(err, kv.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading %s: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding stored %s: %w", key, err)
	}
	return nil
}

// persist writes v under key. Failures are logged and counted but not
// returned: the in-memory state stays authoritative.
func (b backing) persist(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err == nil {
		err = b.kv.Put(ctx, key, data)
	}
	if err != nil {
		b.log.Warn("persisting state failed", "key", key, "error", err)
		b.metrics.CounterPersistFailures.WithLabelValues(key).Inc()
	}
}
