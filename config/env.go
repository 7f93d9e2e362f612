// Package config loads service settings from a .env file and the process
// environment. Real environment variables always win over the file.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAppPort       = "8080"
	defaultAppEnv        = "local"
	defaultAllowedOrigin = "http://localhost:3000"
	defaultDBPort        = "5432"
	defaultDBSSLMode     = "disable"
)

// Config is the resolved service configuration.
type Config struct {
	AppEnv        string
	Port          string
	AllowedOrigin string

	DatabaseURL       string
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxIdleTime time.Duration
	DBConnMaxLifetime time.Duration
	DBTimeout         time.Duration
	ShutdownTimeout   time.Duration
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string { return ":" + c.Port }

// IsProduction reports whether APP_ENV names a production deployment.
func (c *Config) IsProduction() bool {
	switch c.AppEnv {
	case "production", "prod":
		return true
	}
	return false
}

// Load reads envPath (missing file is fine), overlays the non-empty process
// environment and validates the result.
func Load(envPath string) (*Config, error) {
	values := map[string]string{}

	if envPath != "" {
		fileValues, err := godotenv.Read(envPath)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config: read %s: %w", envPath, err)
		}
		for k, v := range fileValues {
			values[strings.ToUpper(strings.TrimSpace(k))] = strings.TrimSpace(v)
		}
	}

	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if ok && v != "" {
			values[k] = v
		}
	}

	return fromValues(values)
}

func fromValues(values map[string]string) (*Config, error) {
	get := func(key, fallback string) string {
		if v := strings.TrimSpace(values[key]); v != "" {
			return v
		}
		return fallback
	}

	cfg := &Config{
		AppEnv:        strings.ToLower(get("APP_ENV", defaultAppEnv)),
		Port:          get("PORT", defaultAppPort),
		AllowedOrigin: strings.TrimRight(get("ALLOWED_ORIGIN", defaultAllowedOrigin), "/"),
		DatabaseURL:   get("DATABASE_URL", ""),
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = BuildDatabaseURL(DatabaseParts{
			Host:     get("DB_HOST", ""),
			Port:     get("DB_PORT", defaultDBPort),
			Database: get("DB_NAME", ""),
			Username: get("DB_USER", ""),
			Password: get("DB_PASSWORD", ""),
			SSLMode:  get("DB_SSLMODE", defaultDBSSLMode),
		})
	}

	var errs []error
	cfg.DBMaxOpenConns = intValue(get("DB_MAX_OPEN_CONNS", "20"), "DB_MAX_OPEN_CONNS", &errs)
	cfg.DBMaxIdleConns = intValue(get("DB_MAX_IDLE_CONNS", "5"), "DB_MAX_IDLE_CONNS", &errs)
	cfg.DBConnMaxIdleTime = durationValue(get("DB_CONN_MAX_IDLE_TIME", "30s"), "DB_CONN_MAX_IDLE_TIME", &errs)
	cfg.DBConnMaxLifetime = durationValue(get("DB_CONN_MAX_LIFETIME", "30m"), "DB_CONN_MAX_LIFETIME", &errs)
	cfg.DBTimeout = durationValue(get("DB_TIMEOUT", "5s"), "DB_TIMEOUT", &errs)
	cfg.ShutdownTimeout = durationValue(get("SHUTDOWN_TIMEOUT", "10s"), "SHUTDOWN_TIMEOUT", &errs)

	if err := cfg.validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var errs []error
	if c.DatabaseURL == "" {
		errs = append(errs, errors.New("DATABASE_URL (or DB_HOST, DB_NAME, DB_USER) is required"))
	}
	if c.AllowedOrigin == "*" {
		errs = append(errs, errors.New("ALLOWED_ORIGIN must name a single origin, not *"))
	} else if u, err := url.Parse(c.AllowedOrigin); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("ALLOWED_ORIGIN %q is not an origin", c.AllowedOrigin))
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Errorf("PORT %q is not a number", c.Port))
	}
	if c.DBMaxOpenConns <= 0 {
		errs = append(errs, errors.New("DB_MAX_OPEN_CONNS must be positive"))
	}
	if c.DBTimeout <= 0 {
		errs = append(errs, errors.New("DB_TIMEOUT must be positive"))
	}
	return errors.Join(errs...)
}

func intValue(raw, key string, errs *[]error) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %q is not an integer", key, raw))
	}
	return n
}

func durationValue(raw, key string, errs *[]error) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %q is not a duration", key, raw))
	}
	return d
}
