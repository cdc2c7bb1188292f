package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyAgainstEmbeddedSchema(t *testing.T) {
	validConfig := func() *Config {
		cfg := &Config{}
		cfg.Server.Listen = ":8080"
		cfg.Server.Timeout = 30 * time.Second
		cfg.Server.BaseURL = "http://localhost:8080"
		cfg.Database.DSN = "file:test.db"
		cfg.Source = SourceConfig{
			URL:       "https://example.com/facts.json",
			Format:    "json",
			Timeout:   30 * time.Second,
			UserAgent: "feedmirror/1.0",
		}
		return cfg
	}

	t.Run("valid config", func(t *testing.T) {
		err := VerifyAgainstEmbeddedSchema(validConfig())
		require.NoError(t, err)
	})

	t.Run("missing listen", func(t *testing.T) {
		cfg := validConfig()
		cfg.Server.Listen = ""
		err := VerifyAgainstEmbeddedSchema(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server.listen is required")
	})

	t.Run("missing source url", func(t *testing.T) {
		cfg := validConfig()
		cfg.Source.URL = ""
		err := VerifyAgainstEmbeddedSchema(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "source.url is required")
	})

	t.Run("source timeout too low", func(t *testing.T) {
		cfg := validConfig()
		cfg.Source.Timeout = 100 * time.Millisecond
		err := VerifyAgainstEmbeddedSchema(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "source.timeout")
	})
}

func TestGenerateSchema(t *testing.T) {
	schema, err := GenerateSchema()
	require.NoError(t, err)
	require.NotNil(t, schema)

	// reflected schema should reference the Config definition
	assert.NotNil(t, schema.Definitions)
	_, ok := schema.Definitions["Config"]
	assert.True(t, ok, "schema must define Config")
	_, ok = schema.Definitions["SourceConfig"]
	assert.True(t, ok, "schema must define SourceConfig")
}
