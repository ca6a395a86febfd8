// Package config loads the hud's settings from HUD_* environment variables.
package config

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/rpg-hud/internal/errors"
)

// Storage backends
const (
	StorageSQLite = "sqlite"
	StorageRedis  = "redis"
)

// Log formats
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config is the hud's runtime configuration
type Config struct {
	GRPCPort   int    `env:"HUD_GRPC_PORT" envDefault:"50051"`
	ServerAddr string `env:"HUD_SERVER_ADDR" envDefault:"localhost:50051"`

	Storage    string `env:"HUD_STORAGE" envDefault:"sqlite"`
	SQLitePath string `env:"HUD_SQLITE_PATH" envDefault:"hud.db"`
	RedisAddr  string `env:"HUD_REDIS_ADDR" envDefault:"localhost:6379"`

	AutosaveInterval time.Duration `env:"HUD_AUTOSAVE_INTERVAL" envDefault:"30s"`
	FormulasEnabled  bool          `env:"HUD_FORMULAS_ENABLED" envDefault:"true"`

	DND5eAPIURL   string        `env:"HUD_DND5E_API_URL" envDefault:"https://www.dnd5eapi.co/api/2014/"`
	DND5eCacheTTL time.Duration `env:"HUD_DND5E_CACHE_TTL" envDefault:"24h"`

	LogLevel  string `env:"HUD_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"HUD_LOG_FORMAT" envDefault:"text"`
}

// Load parses the process environment
func Load() (*Config, error) {
	return parse(env.Options{})
}

// LoadFrom parses the given variables instead of the process environment
func LoadFrom(environment map[string]string) (*Config, error) {
	return parse(env.Options{Environment: environment})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and enums
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("HUD_GRPC_PORT", c.GRPCPort, 1, 65535, vb)
	errors.ValidateEnum("HUD_STORAGE", c.Storage, []string{StorageSQLite, StorageRedis}, vb)
	switch c.Storage {
	case StorageSQLite:
		errors.ValidateRequired("HUD_SQLITE_PATH", c.SQLitePath, vb)
	case StorageRedis:
		errors.ValidateRequired("HUD_REDIS_ADDR", c.RedisAddr, vb)
	}
	if c.AutosaveInterval <= 0 {
		vb.InvalidField("HUD_AUTOSAVE_INTERVAL", "must be positive")
	}
	errors.ValidateMin("HUD_DND5E_CACHE_TTL", c.DND5eCacheTTL, 0, vb)
	errors.ValidateEnum("HUD_LOG_LEVEL", strings.ToLower(c.LogLevel), []string{"debug", "info", "warn", "error"}, vb)
	errors.ValidateEnum("HUD_LOG_FORMAT", c.LogFormat, []string{LogFormatText, LogFormatJSON}, vb)

	return vb.Build()
}

// SlogLevel maps LogLevel to a slog level
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// NewLogger builds the process logger writing to w
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.SlogLevel()}
	if c.LogFormat == LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
