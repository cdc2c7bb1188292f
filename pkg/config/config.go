package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
		BaseURL string        `yaml:"base_url" json:"base_url" jsonschema:"default=http://localhost:8080,description=Base URL for RSS self-links"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:feedmirror.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Source SourceConfig `yaml:"source" json:"source" jsonschema:"description=Remote feed source configuration"`
}

// SourceConfig holds remote feed source settings
type SourceConfig struct {
	URL       string        `yaml:"url" json:"url" jsonschema:"required,description=Remote feed endpoint URL"`
	Format    string        `yaml:"format" json:"format" jsonschema:"default=json,enum=json,enum=rss,description=Payload format of the remote endpoint"`
	Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
	UserAgent string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=feedmirror/1.0,description=User agent for HTTP requests"`
	Probe     ProbeConfig   `yaml:"probe" json:"probe" jsonschema:"description=Connectivity probe settings"`
}

// ProbeConfig holds connectivity probe settings. The probe runs before every
// remote request; a failed probe short-circuits the call without network I/O.
type ProbeConfig struct {
	Address string        `yaml:"address" json:"address" jsonschema:"description=host:port to dial for the probe (derived from source url if empty)"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=3s,description=Probe dial timeout"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}
	if cfg.Server.BaseURL == "" {
		cfg.Server.BaseURL = "http://localhost:8080"
	}

	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:feedmirror.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// set defaults for source
	if cfg.Source.Format == "" {
		cfg.Source.Format = "json"
	}
	if cfg.Source.Timeout == 0 {
		cfg.Source.Timeout = 30 * time.Second
	}
	if cfg.Source.UserAgent == "" {
		cfg.Source.UserAgent = "feedmirror/1.0"
	}
	if cfg.Source.Probe.Timeout == 0 {
		cfg.Source.Probe.Timeout = 3 * time.Second
	}

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// validate checks configuration for correctness
func validate(cfg *Config) error {

	// validate source config
	if cfg.Source.URL == "" {
		return fmt.Errorf("source.url is required")
	}
	u, err := url.Parse(cfg.Source.URL)
	if err != nil {
		return fmt.Errorf("source.url is not a valid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("source.url must be http or https")
	}
	if cfg.Source.Format != "json" && cfg.Source.Format != "rss" {
		return fmt.Errorf("source.format must be json or rss")
	}
	if cfg.Source.Timeout < time.Second {
		return fmt.Errorf("source.timeout must be at least 1 second")
	}
	if cfg.Source.Probe.Address != "" && !strings.Contains(cfg.Source.Probe.Address, ":") {
		return fmt.Errorf("source.probe.address must be in host:port form")
	}

	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetSourceConfig returns remote source configuration
func (c *Config) GetSourceConfig() SourceConfig {
	return c.Source
}

// GetBaseURL returns the externally visible base URL
func (c *Config) GetBaseURL() string {
	return c.Server.BaseURL
}
