package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load reads so the host environment does not
// leak into the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		EnvConfigFile, "PORT", "APP_ENV", "SHUTDOWN_TIMEOUT", "LOG_LEVEL", "LOG_FORMAT",
		"RATE_LIMIT_PER_MINUTE", "RATE_LIMIT_BURST", "CACHE_BACKEND", "CACHE_TTL",
		"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "ANTHROPIC_API_KEY",
		"INSIGHT_MODEL", "INSIGHT_MAX_TOKENS", "INSIGHT_TIMEOUT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.False(t, cfg.IsProduction())
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("CACHE_BACKEND", "redis")
	t.Setenv("CACHE_TTL", "90s")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "not-a-number")
	t.Setenv("ANTHROPIC_API_KEY", "sk-test")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr())
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, CacheRedis, cfg.Cache.Backend)
	assert.Equal(t, 90*time.Second, cfg.Cache.TTL)
	assert.Equal(t, 3, cfg.Cache.RedisDB)
	assert.Equal(t, 60, cfg.RateLimit.RequestsPerMinute)
	assert.Equal(t, "sk-test", cfg.Insight.APIKey)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "creditwise.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: "7000"
log:
  level: debug
  format: json
rate_limit:
  requests_per_minute: 30
  burst: 5
cache:
  backend: none
  ttl: 5m
insight:
  model: claude-test
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "7000", cfg.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 30, cfg.RateLimit.RequestsPerMinute)
	assert.Equal(t, 5, cfg.RateLimit.Burst)
	assert.Equal(t, CacheNone, cfg.Cache.Backend)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, "claude-test", cfg.Insight.Model)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)

	t.Setenv("PORT", "7100")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "7100", cfg.Port)
}

func TestLoad_FileFromEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(path, []byte("env: prod\n"), 0o600))
	t.Setenv(EnvConfigFile, path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "reading config file")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("port: [unterminated"), 0o600))
	_, err = Load(bad)
	assert.ErrorContains(t, err, "parsing config file")

	t.Setenv("CACHE_BACKEND", "memcached")
	_, err = Load("")
	assert.ErrorContains(t, err, `unknown cache backend "memcached"`)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Port = " "
	cfg.Cache.Backend = CacheRedis
	cfg.Cache.RedisAddr = ""
	cfg.RateLimit.Burst = -1

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "port is required")
	assert.Contains(t, err.Error(), "redis_addr is required")
	assert.Contains(t, err.Error(), "must not be negative")
}

func TestLoad_TOMLFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "creditwise.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
port = "7200"
env = "production"

[cache]
backend = "redis"
ttl = "2m"
redis_addr = "cache:6379"
redis_db = 2

[rate_limit]
requests_per_minute = 120
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "7200", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, CacheRedis, cfg.Cache.Backend)
	assert.Equal(t, 2*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, "cache:6379", cfg.Cache.RedisAddr)
	assert.Equal(t, 2, cfg.Cache.RedisDB)
	assert.Equal(t, 120, cfg.RateLimit.RequestsPerMinute)
	assert.Equal(t, 10, cfg.RateLimit.Burst)

	bad := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("port = "), 0o600))
	_, err = Load(bad)
	assert.ErrorContains(t, err, "parsing config file")
}
