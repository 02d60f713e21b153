package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix for environment overrides, e.g. UNIADMIN_SERVER_PORT.
const EnvPrefix = "UNIADMIN"

// Config represents the overall application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig holds the server-related configuration.
type ServerConfig struct {
	Port            int           `yaml:"port" envconfig:"port"`
	RateLimitPerSec float64       `yaml:"rate_limit_per_sec" envconfig:"rate_limit_per_sec"`
	RateLimitBurst  int           `yaml:"rate_limit_burst" envconfig:"rate_limit_burst"`
	CacheTTLSeconds int           `yaml:"cache_ttl_seconds" envconfig:"cache_ttl_seconds"`
	CacheTTL        time.Duration `yaml:"-" ignored:"true"`
	CORSOrigins     []string      `yaml:"cors_origins" envconfig:"cors_origins"`
}

// DatabaseConfig holds the database connection configuration.
type DatabaseConfig struct {
	Driver                 string `yaml:"driver" envconfig:"driver"`
	DSN                    string `yaml:"dsn" envconfig:"dsn"`
	MaxOpenConns           int    `yaml:"max_open_conns" envconfig:"max_open_conns"`
	MaxIdleConns           int    `yaml:"max_idle_conns" envconfig:"max_idle_conns"`
	ConnMaxLifetimeMinutes int    `yaml:"conn_max_lifetime_minutes" envconfig:"conn_max_lifetime_minutes"`
	LogLevel               string `yaml:"log_level" envconfig:"log_level"`
}

// CatalogConfig points at an optional YAML fixture replacing the built-in catalog seed.
type CatalogConfig struct {
	FixturePath string `yaml:"fixture_path" envconfig:"fixture_path"`
}

// LogConfig controls the process logger.
type LogConfig struct {
	Level  string `yaml:"level" envconfig:"level"`
	Format string `yaml:"format" envconfig:"format"`
}

// Load reads the configuration from the given path, then applies .env and
// environment overrides. A missing file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	var cfg Config

	f, err := os.Open(path)
	switch {
	case err == nil:
		defer f.Close()
		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		log.Warnf("config file %s not found; using defaults", path)
	default:
		return nil, err
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("environment overrides: %w", err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 8000
	}
	if cfg.Server.RateLimitPerSec <= 0 {
		cfg.Server.RateLimitPerSec = 10
	}
	if cfg.Server.RateLimitBurst <= 0 {
		cfg.Server.RateLimitBurst = 20
	}
	if cfg.Server.CacheTTLSeconds <= 0 {
		cfg.Server.CacheTTLSeconds = 300
	}
	cfg.Server.CacheTTL = time.Duration(cfg.Server.CacheTTLSeconds) * time.Second

	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "sqlite"
	}
	if cfg.Database.DSN == "" && cfg.Database.Driver == "sqlite" {
		cfg.Database.DSN = "file:uniadmin.db?_foreign_keys=on"
	}
	if cfg.Database.MaxOpenConns <= 0 {
		log.Infof("database.max_open_conns is not set; defaulting to 10")
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns <= 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetimeMinutes <= 0 {
		cfg.Database.ConnMaxLifetimeMinutes = 30
	}
	if cfg.Database.LogLevel == "" {
		cfg.Database.LogLevel = "warn"
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}

// SetupLogger configures the standard logrus logger from cfg.
func SetupLogger(cfg LogConfig) error {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	log.SetLevel(level)
	switch cfg.Format {
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	case "text":
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	default:
		return fmt.Errorf("log.format: unknown format %q", cfg.Format)
	}
	log.SetOutput(os.Stdout)
	return nil
}
