package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config captures process-level configuration. Field tags name the keys of
// the optional YAML file; environment variables override the file.
type Config struct {
	Server       Server       `yaml:"server"`
	Database     Database     `yaml:"database"`
	Redis        RedisConfig  `yaml:"redis"`
	Conservation Conservation `yaml:"conservation"`
	Context      ContextLite  `yaml:"context"`
	DarwinCore   DarwinCore   `yaml:"darwin_core"`
	Audit        Audit        `yaml:"audit"`
	Log          Log          `yaml:"log"`
}

// Server captures HTTP server level configuration.
type Server struct {
	Addr          string        `yaml:"addr"`
	JWTSigningKey string        `yaml:"jwt_signing_key"`
	JWTIssuer     string        `yaml:"jwt_issuer"`
	JWTAudience   string        `yaml:"jwt_audience"`
	ShutdownGrace time.Duration `yaml:"shutdown_grace"`
}

// Database holds the PostgreSQL DSN. An empty URL selects in-memory stores.
type Database struct {
	URL          string `yaml:"url"`
	MaxOpenConns int    `yaml:"max_open_conns"`
	AutoMigrate  bool   `yaml:"auto_migrate"`
}

// RedisConfig configures the assessment cache. An empty URL selects the in-memory cache.
type RedisConfig struct {
	URL          string        `yaml:"url"`
	PoolSize     int           `yaml:"pool_size"`
	MinIdleConns int           `yaml:"min_idle_conns"`
	DialTimeout  time.Duration `yaml:"dial_timeout"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// Conservation configures the IUCN capability.
type Conservation struct {
	Enabled       bool          `yaml:"enabled"`
	Source        string        `yaml:"source"` // "iucn" or "fake"
	BaseURL       string        `yaml:"base_url"`
	Token         string        `yaml:"token"`
	Timeout       time.Duration `yaml:"timeout"`
	RatePerSecond float64       `yaml:"rate_per_second"`
	CacheTTL      time.Duration `yaml:"cache_ttl"`
}

// ContextLite configures the knowledge-context capability.
type ContextLite struct {
	Enabled   bool          `yaml:"enabled"`
	BaseURL   string        `yaml:"base_url"`
	Token     string        `yaml:"token"`
	Workspace string        `yaml:"workspace"`
	Timeout   time.Duration `yaml:"timeout"`
}

// DarwinCore toggles the Darwin Core routes.
type DarwinCore struct {
	Enabled bool `yaml:"enabled"`
}

// Audit configures where enrichment audit events go. No brokers means in-memory.
type Audit struct {
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
	Buffer  int      `yaml:"buffer"`
}

// Log configures the slog handler.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Defaults returns the development configuration.
func Defaults() Config {
	return Config{
		Server: Server{
			Addr: ":8080",
			// Use a default for development - should be overridden in production
			JWTSigningKey: "dev-secret-key-change-in-production",
			JWTIssuer:     "botanica",
			JWTAudience:   "botanica-api",
			ShutdownGrace: 10 * time.Second,
		},
		Database: Database{MaxOpenConns: 10},
		Redis: RedisConfig{
			PoolSize:     10,
			MinIdleConns: 2,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		Conservation: Conservation{
			Enabled:       true,
			Source:        "iucn",
			BaseURL:       "https://api.iucnredlist.org/api/v4",
			Timeout:       5 * time.Second,
			RatePerSecond: 2,
			CacheTTL:      24 * time.Hour,
		},
		Context: ContextLite{
			Timeout: 10 * time.Second,
		},
		DarwinCore: DarwinCore{Enabled: true},
		Audit:      Audit{Topic: "botanica.audit", Buffer: 256},
		Log:        Log{Level: "info", Format: "json"},
	}
}

// FromEnv builds a Config from defaults and environment variables so main stays lean.
func FromEnv() Config {
	cfg := Defaults()
	applyEnv(&cfg)
	return cfg
}

// Load reads an optional YAML file over the defaults, then applies the environment.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
	}
	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	setString(&cfg.Server.Addr, "BOTANICA_ADDR")
	setString(&cfg.Server.JWTSigningKey, "JWT_SIGNING_KEY")
	setString(&cfg.Server.JWTIssuer, "JWT_ISSUER")
	setString(&cfg.Server.JWTAudience, "JWT_AUDIENCE")

	setString(&cfg.Database.URL, "DATABASE_URL")
	setBool(&cfg.Database.AutoMigrate, "DATABASE_AUTO_MIGRATE")
	setString(&cfg.Redis.URL, "REDIS_URL")

	setBool(&cfg.Conservation.Enabled, "BOTANICA_CONSERVATION_ENABLED")
	setString(&cfg.Conservation.Source, "BOTANICA_IUCN_SOURCE")
	setString(&cfg.Conservation.BaseURL, "IUCN_BASE_URL")
	setString(&cfg.Conservation.Token, "IUCN_TOKEN")
	setDuration(&cfg.Conservation.Timeout, "IUCN_TIMEOUT")
	setFloat(&cfg.Conservation.RatePerSecond, "IUCN_RATE_PER_SECOND")
	setDuration(&cfg.Conservation.CacheTTL, "ASSESSMENT_CACHE_TTL")

	setBool(&cfg.Context.Enabled, "BOTANICA_CONTEXT_ENABLED")
	setString(&cfg.Context.BaseURL, "CONTEXTLITE_URL")
	setString(&cfg.Context.Token, "CONTEXTLITE_TOKEN")
	setString(&cfg.Context.Workspace, "CONTEXTLITE_WORKSPACE")

	setBool(&cfg.DarwinCore.Enabled, "BOTANICA_DARWIN_CORE_ENABLED")

	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		cfg.Audit.Brokers = splitList(v)
	}
	setString(&cfg.Audit.Topic, "AUDIT_TOPIC")

	setString(&cfg.Log.Level, "LOG_LEVEL")
	setString(&cfg.Log.Format, "LOG_FORMAT")
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

func setDuration(dst *time.Duration, key string) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*dst = d
		}
	}
}

func setFloat(dst *float64, key string) {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		}
	}
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
