package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
	"gopkg.in/yaml.v3"

	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/kv"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Storage   StorageConfig   `yaml:"storage"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Auth      AuthConfig      `yaml:"auth"`
	Tailscale TailscaleConfig `yaml:"tailscale"`
	Timer     TimerConfig     `yaml:"timer"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type StorageConfig struct {
	Driver     string `yaml:"driver"`
	SQLitePath string `yaml:"sqlite_path"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
}

// AuthConfig gates mutating HTTP routes. An empty key disables the check.
type AuthConfig struct {
	APIKey string `yaml:"api_key"`
}

type TailscaleConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Hostname string `yaml:"hostname"`
	StateDir string `yaml:"state_dir"`
}

type TimerConfig struct {
	DefaultRestSeconds int `yaml:"default_rest_seconds"`
}

// LoggingConfig selects the log level and format. When File is set, logs are
// also written to a size-rotated file.
type LoggingConfig struct {
	Level     string `yaml:"level"`
	Format    string `yaml:"format"`
	File      string `yaml:"file"`
	MaxSizeMB int    `yaml:"max_size_mb"`
}

// DSN returns a PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	sslmode := d.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, sslmode)
}

// StoreOptions returns the key-value backend selection.
func (c *Config) StoreOptions() kv.Options {
	return kv.Options{
		Driver:      c.Storage.Driver,
		SQLitePath:  c.Storage.SQLitePath,
		PostgresDSN: c.Database.DSN(),
		Redis: kv.RedisOptions{
			Addr:     c.Redis.Addr,
			Password: c.Redis.Password,
			DB:       c.Redis.DB,
			Prefix:   c.Redis.Prefix,
		},
	}
}

// SlogLevel maps the configured level name to a slog.Level.
func (l LoggingConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds the process logger writing to w, and to the rotated log
// file if one is configured.
func (l LoggingConfig) NewLogger(w io.Writer) *slog.Logger {
	if l.File != "" {
		w = io.MultiWriter(w, &lumberjack.Logger{
			Filename: l.File,
			MaxSize:  l.MaxSizeMB, // megabytes
			Compress: true,
		})
	}
	opts := &slog.HandlerOptions{Level: l.SlogLevel()}
	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Load reads config from a YAML file, fills defaults, then applies
// environment variable overrides. Env vars use the prefix DUMBBELL_ and
// underscore-separated paths:
//
//	DUMBBELL_SERVER_HOST, DUMBBELL_SERVER_PORT,
//	DUMBBELL_STORAGE_DRIVER, DUMBBELL_SQLITE_PATH,
//	DUMBBELL_DB_HOST, DUMBBELL_DB_PORT, DUMBBELL_DB_NAME,
//	DUMBBELL_DB_USER, DUMBBELL_DB_PASSWORD, DUMBBELL_DB_SSLMODE,
//	DUMBBELL_REDIS_ADDR, DUMBBELL_REDIS_PASSWORD, DUMBBELL_REDIS_DB,
//	DUMBBELL_AUTH_API_KEY, DUMBBELL_LOG_LEVEL, DUMBBELL_LOG_FILE
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyDefaults(cfg)
	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "127.0.0.1"
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = kv.DriverSQLite
	}
	if cfg.Storage.SQLitePath == "" {
		cfg.Storage.SQLitePath = "data/dumbbell.db"
	}
	if cfg.Redis.Prefix == "" {
		cfg.Redis.Prefix = "dumbbell:"
	}
	if cfg.Tailscale.Hostname == "" {
		cfg.Tailscale.Hostname = "dumbbell"
	}
	if cfg.Timer.DefaultRestSeconds == 0 {
		cfg.Timer.DefaultRestSeconds = 90
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
	if cfg.Logging.MaxSizeMB == 0 {
		cfg.Logging.MaxSizeMB = 50
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DUMBBELL_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("DUMBBELL_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("DUMBBELL_STORAGE_DRIVER"); v != "" {
		cfg.Storage.Driver = v
	}
	if v := os.Getenv("DUMBBELL_SQLITE_PATH"); v != "" {
		cfg.Storage.SQLitePath = v
	}
	if v := os.Getenv("DUMBBELL_DB_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("DUMBBELL_DB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Database.Port = port
		}
	}
	if v := os.Getenv("DUMBBELL_DB_NAME"); v != "" {
		cfg.Database.Name = v
	}
	if v := os.Getenv("DUMBBELL_DB_USER"); v != "" {
		cfg.Database.User = v
	}
	if v := os.Getenv("DUMBBELL_DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("DUMBBELL_DB_SSLMODE"); v != "" {
		cfg.Database.SSLMode = v
	}
	if v := os.Getenv("DUMBBELL_REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("DUMBBELL_REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("DUMBBELL_REDIS_DB"); v != "" {
		if db, err := strconv.Atoi(v); err == nil {
			cfg.Redis.DB = db
		}
	}
	if v := os.Getenv("DUMBBELL_AUTH_API_KEY"); v != "" {
		cfg.Auth.APIKey = v
	}
	if v := os.Getenv("DUMBBELL_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("DUMBBELL_LOG_FILE"); v != "" {
		cfg.Logging.File = v
	}
}

func (c *Config) validate() error {
	if c.Server.Port == 0 {
		return fmt.Errorf("server.port is required")
	}
	switch c.Storage.Driver {
	case kv.DriverMemory, kv.DriverSQLite:
	case kv.DriverPostgres:
		if c.Database.Host == "" {
			return fmt.Errorf("database.host is required for the postgres driver")
		}
		if c.Database.Port == 0 {
			return fmt.Errorf("database.port is required for the postgres driver")
		}
		if c.Database.Name == "" {
			return fmt.Errorf("database.name is required for the postgres driver")
		}
		if c.Database.User == "" {
			return fmt.Errorf("database.user is required for the postgres driver")
		}
	case kv.DriverRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("redis.addr is required for the redis driver")
		}
	default:
		return fmt.Errorf("storage.driver %q is not one of memory, sqlite, postgres, redis", c.Storage.Driver)
	}
	if c.Timer.DefaultRestSeconds < 0 {
		return fmt.Errorf("timer.default_rest_seconds must be positive")
	}
	if c.Logging.Format != "text" && c.Logging.Format != "json" {
		return fmt.Errorf("logging.format %q is not one of text, json", c.Logging.Format)
	}
	return nil
}
