// Package config loads server configuration from an optional YAML file and
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is read when CONFIG_FILE is unset and the file exists.
const DefaultConfigPath = "configs/server.yaml"

// Configuration validation errors.
var (
	ErrMissingPort         = errors.New("server.port is required")
	ErrMissingDatabaseURL  = errors.New("database.url is required")
	ErrMissingJWTSecret    = errors.New("auth.jwt_secret is required")
	ErrInvalidTokenTTL     = errors.New("auth.token_ttl must be positive")
	ErrMissingAPIKey       = errors.New("upstream.rapidapi_key is required")
	ErrMissingUpstreamHost = errors.New("upstream hosts for flights, accommodations and events are required")
	ErrInvalidTimeout      = errors.New("upstream.timeout must be positive")
	ErrInvalidLogLevel     = errors.New("logging.level must be one of: debug, info, warn, warning, error")
	ErrInvalidLogFormat    = errors.New("logging.format must be 'text' or 'json'")
)

// Config represents the complete server configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Upstream UpstreamConfig `yaml:"upstream"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port            string   `yaml:"port"`
	ReadTimeout     Duration `yaml:"read_timeout"`
	WriteTimeout    Duration `yaml:"write_timeout"`
	IdleTimeout     Duration `yaml:"idle_timeout"`
	ShutdownTimeout Duration `yaml:"shutdown_timeout"`
}

// DatabaseConfig holds the Postgres connection string.
type DatabaseConfig struct {
	URL string `yaml:"url"`
}

// AuthConfig holds token signing settings.
type AuthConfig struct {
	JWTSecret string   `yaml:"jwt_secret"`
	TokenTTL  Duration `yaml:"token_ttl"`
}

// UpstreamConfig holds RapidAPI credentials and provider hosts.
type UpstreamConfig struct {
	RapidAPIKey       string   `yaml:"rapidapi_key"`
	FlightHost        string   `yaml:"flight_host"`
	AccommodationHost string   `yaml:"accommodation_host"`
	EventsHost        string   `yaml:"events_host"`
	Timeout           Duration `yaml:"timeout"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Duration is a time.Duration that unmarshals from YAML strings like "30s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("duration: %w", err)
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            "5001",
			ReadTimeout:     Duration(15 * time.Second),
			WriteTimeout:    Duration(45 * time.Second),
			IdleTimeout:     Duration(60 * time.Second),
			ShutdownTimeout: Duration(30 * time.Second),
		},
		Auth: AuthConfig{
			TokenTTL: Duration(5 * time.Hour),
		},
		Upstream: UpstreamConfig{
			FlightHost: "kiwi-com-cheap-flights.p.rapidapi.com",
			Timeout:    Duration(30 * time.Second),
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load builds the configuration: defaults, then the YAML file at path (if
// path is empty, CONFIG_FILE or DefaultConfigPath when it exists), then
// environment overrides. The result is validated.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("CONFIG_FILE")
	}
	if path == "" {
		if _, err := os.Stat(DefaultConfigPath); err == nil {
			path = DefaultConfigPath
		}
	}

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	setString(&c.Server.Port, "PORT")
	setString(&c.Server.Port, "API_PORT")
	setString(&c.Database.URL, "DATABASE_URL")
	setString(&c.Auth.JWTSecret, "JWT_SECRET")
	setString(&c.Upstream.RapidAPIKey, "RAPIDAPI_KEY")
	setString(&c.Upstream.FlightHost, "RAPIDAPI_FLIGHT_API_HOST")
	setString(&c.Upstream.AccommodationHost, "RAPIDAPI_ACCOMMODATION_API_HOST")
	setString(&c.Upstream.EventsHost, "RAPIDAPI_EVENTS_API_HOST")
	setString(&c.Logging.Level, "LOG_LEVEL")
	setString(&c.Logging.Format, "LOG_FORMAT")

	if err := setDuration(&c.Auth.TokenTTL, "JWT_TTL"); err != nil {
		return err
	}
	if err := setDuration(&c.Upstream.Timeout, "UPSTREAM_TIMEOUT"); err != nil {
		return err
	}
	return nil
}

// Validate checks that the configuration can start a server.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Server.Port) == "" {
		return ErrMissingPort
	}
	if _, err := strconv.Atoi(c.Server.Port); err != nil {
		return fmt.Errorf("server.port %q: %w", c.Server.Port, err)
	}
	if c.Database.URL == "" {
		return ErrMissingDatabaseURL
	}
	if c.Auth.JWTSecret == "" {
		return ErrMissingJWTSecret
	}
	if c.Auth.TokenTTL <= 0 {
		return ErrInvalidTokenTTL
	}
	if c.Upstream.RapidAPIKey == "" {
		return ErrMissingAPIKey
	}
	if c.Upstream.FlightHost == "" || c.Upstream.AccommodationHost == "" || c.Upstream.EventsHost == "" {
		return ErrMissingUpstreamHost
	}
	if c.Upstream.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	switch strings.ToLower(strings.TrimSpace(c.Logging.Level)) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return ErrInvalidLogLevel
	}

	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return ErrInvalidLogFormat
	}

	return nil
}

func setString(dst *string, key string) {
	if value := os.Getenv(key); value != "" {
		*dst = value
	}
}

func setDuration(dst *Duration, key string) error {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	*dst = Duration(parsed)
	return nil
}
