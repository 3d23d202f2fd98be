// Package kv provides the small key-value stores that persist tracker state.
package kv

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound is returned by Get when a key has never been written.
var ErrNotFound = errors.New("kv: key not found")

// Store persists opaque values by key.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}

// Drivers accepted by Open.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// Options selects and configures a backend.
type Options struct {
	Driver      string
	SQLitePath  string
	PostgresDSN string
	Redis       RedisOptions
}

// RedisOptions configures the redis backend.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// Open connects to the backend named by opts.Driver.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Driver {
	case DriverMemory:
		return NewMemory(), nil
	case DriverSQLite, "":
		s, err := OpenSQLite(opts.SQLitePath)
		if err != nil {
			return nil, err
		}
		return s, nil
	case DriverPostgres:
		if err := RunMigrations(opts.PostgresDSN); err != nil {
			return nil, err
		}
		p, err := OpenPostgres(ctx, opts.PostgresDSN)
		if err != nil {
			return nil, err
		}
		return p, nil
	case DriverRedis:
		r, err := DialRedis(ctx, opts.Redis)
		if err != nil {
			return nil, err
		}
		return r, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", opts.Driver)
	}
}
