package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	t.Setenv("CONFIG", "")

	path := writeTempJSON(t, map[string]any{
		"endpoint_addr_http":      "0.0.0.0:8080",
		"database_dsn":            "postgres://u:p@db:5432/hb",
		"secret_key":              "my_secret_key",
		"token_validity_duration": "2h",
		"frontend_url":            "https://hotels.example",
		"production":              true,
		"s3_bucket":               "bucket",
		"s3_public_url":           "https://cdn.example",
	})

	t.Run("loads from -config flag", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "0.0.0.0:8080", cfg.EndpointAddrHTTP)
		assert.Equal(t, "postgres://u:p@db:5432/hb", cfg.DatabaseDSN)
		assert.Equal(t, "my_secret_key", cfg.SecretKey)
		assert.Equal(t, 2*time.Hour, cfg.TokenValidityDuration)
		assert.Equal(t, "https://hotels.example", cfg.FrontendURL)
		assert.True(t, cfg.Production)
		assert.Equal(t, "bucket", cfg.S3Bucket)
		assert.Equal(t, "https://cdn.example", cfg.S3PublicURL)
		// untouched keys keep defaults
		assert.Equal(t, "us-east-1", cfg.S3Region)
		assert.Equal(t, ":50051", cfg.EndpointAddrHealth)
	})

	t.Run("loads from CONFIG env", func(t *testing.T) {
		os.Args = []string{"testbin"}
		t.Setenv("CONFIG", path)

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "my_secret_key", cfg.SecretKey)
	})

	t.Run("no file is a no-op", func(t *testing.T) {
		os.Args = []string{"testbin"}
		t.Setenv("CONFIG", "")

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "secretKey", cfg.SecretKey)
	})

	t.Run("missing file panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", filepath.Join(t.TempDir(), "nope.json")}
		assert.Panics(t, func() { parseJson(&Config{}) })
	})

	t.Run("invalid json panics", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte("{"), 0o600))
		os.Args = []string{"testbin", "-c", bad}
		assert.Panics(t, func() { parseJson(&Config{}) })
	})
}
