package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// EnvConfigFile names an optional YAML or TOML file applied before the environment.
const EnvConfigFile = "CREDITWISE_CONFIG"

const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type RateLimitConfig struct {
	RequestsPerMinute int `yaml:"requests_per_minute"`
	Burst             int `yaml:"burst"`
}

type CacheConfig struct {
	Backend       string        `yaml:"backend"`
	TTL           time.Duration `yaml:"ttl"`
	RedisAddr     string        `yaml:"redis_addr"`
	RedisPassword string        `yaml:"redis_password"`
	RedisDB       int           `yaml:"redis_db"`
}

type InsightConfig struct {
	APIKey    string        `yaml:"api_key"`
	Model     string        `yaml:"model"`
	MaxTokens int           `yaml:"max_tokens"`
	Timeout   time.Duration `yaml:"timeout"`
}

type Config struct {
	Port            string          `yaml:"port"`
	Env             string          `yaml:"env"`
	ShutdownTimeout time.Duration   `yaml:"shutdown_timeout"`
	Log             LogConfig       `yaml:"log"`
	RateLimit       RateLimitConfig `yaml:"rate_limit"`
	Cache           CacheConfig     `yaml:"cache"`
	Insight         InsightConfig   `yaml:"insight"`
}

func Default() Config {
	return Config{
		Port:            "8080",
		Env:             "local",
		ShutdownTimeout: 10 * time.Second,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: 60,
			Burst:             10,
		},
		Cache: CacheConfig{
			Backend:   CacheMemory,
			TTL:       10 * time.Minute,
			RedisAddr: "localhost:6379",
		},
		Insight: InsightConfig{
			MaxTokens: 300,
			Timeout:   20 * time.Second,
		},
	}
}

// Load starts from Default, applies the config file at path (or the file named
// by CREDITWISE_CONFIG when path is empty) and then environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path != "" {
		if err := cfg.applyFile(path); err != nil {
			return Config{}, err
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if b, err = tomlToYAML(b); err != nil {
			return fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

// tomlToYAML re-encodes a TOML document as YAML so both formats share the
// yaml tags and duration parsing.
func tomlToYAML(b []byte) ([]byte, error) {
	var doc map[string]any
	if err := toml.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	return yaml.Marshal(doc)
}

func (c *Config) applyEnv() {
	c.Port = getEnv("PORT", c.Port)
	c.Env = getEnv("APP_ENV", c.Env)
	c.ShutdownTimeout = getEnvDuration("SHUTDOWN_TIMEOUT", c.ShutdownTimeout)

	c.Log.Level = getEnv("LOG_LEVEL", c.Log.Level)
	c.Log.Format = getEnv("LOG_FORMAT", c.Log.Format)

	c.RateLimit.RequestsPerMinute = getEnvInt("RATE_LIMIT_PER_MINUTE", c.RateLimit.RequestsPerMinute)
	c.RateLimit.Burst = getEnvInt("RATE_LIMIT_BURST", c.RateLimit.Burst)

	c.Cache.Backend = getEnv("CACHE_BACKEND", c.Cache.Backend)
	c.Cache.TTL = getEnvDuration("CACHE_TTL", c.Cache.TTL)
	c.Cache.RedisAddr = getEnv("REDIS_ADDR", c.Cache.RedisAddr)
	c.Cache.RedisPassword = getEnv("REDIS_PASSWORD", c.Cache.RedisPassword)
	c.Cache.RedisDB = getEnvInt("REDIS_DB", c.Cache.RedisDB)

	c.Insight.APIKey = getEnv("ANTHROPIC_API_KEY", c.Insight.APIKey)
	c.Insight.Model = getEnv("INSIGHT_MODEL", c.Insight.Model)
	c.Insight.MaxTokens = getEnvInt("INSIGHT_MAX_TOKENS", c.Insight.MaxTokens)
	c.Insight.Timeout = getEnvDuration("INSIGHT_TIMEOUT", c.Insight.Timeout)
}

func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Port) == "" {
		errs = append(errs, errors.New("port is required"))
	}
	switch c.Cache.Backend {
	case CacheNone, CacheMemory:
	case CacheRedis:
		if c.Cache.RedisAddr == "" {
			errs = append(errs, errors.New("redis_addr is required for the redis cache backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown cache backend %q", c.Cache.Backend))
	}
	if c.RateLimit.RequestsPerMinute < 0 || c.RateLimit.Burst < 0 {
		errs = append(errs, errors.New("rate limit values must not be negative"))
	}
	return errors.Join(errs...)
}

func (c Config) Addr() string {
	return fmt.Sprintf(":%s", c.Port)
}

func (c Config) IsProduction() bool {
	return c.Env == "prod" || c.Env == "production"
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		d, err := time.ParseDuration(v)
		if err == nil {
			return d
		}
	}
	return fallback
}
