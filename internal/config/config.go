// Package config resolves runtime settings from defaults, an optional YAML
// file, a .env file and the process environment, in that order.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Session store backends.
const (
	StoreMemory = "memory"
	StoreFile   = "file"
	StoreRedis  = "redis"
)

// Environment variable names.
const (
	EnvDataset       = "WILAYAH_DATASET"
	EnvAddr          = "WILAYAH_ADDR"
	EnvSessionStore  = "WILAYAH_SESSION_STORE"
	EnvSessionDir    = "WILAYAH_SESSION_DIR"
	EnvSessionTTL    = "WILAYAH_SESSION_TTL"
	EnvLogLevel      = "LOG_LEVEL"
	EnvLogFormat     = "LOG_FORMAT"
	EnvRedisAddr     = "REDIS_ADDR"
	EnvRedisPassword = "REDIS_PASSWORD"
	EnvRedisDB       = "REDIS_DB"
)

// Config holds every setting the commands read.
type Config struct {
	Dataset   string        `mapstructure:"dataset" yaml:"dataset"`
	Addr      string        `mapstructure:"addr" yaml:"addr"`
	LogLevel  string        `mapstructure:"log_level" yaml:"log_level"`
	LogFormat string        `mapstructure:"log_format" yaml:"log_format"`
	Session   SessionConfig `mapstructure:"session" yaml:"session"`
	Redis     RedisConfig   `mapstructure:"redis" yaml:"redis"`
}

// SessionConfig selects where non-browser hosts keep selections.
type SessionConfig struct {
	Store    string        `mapstructure:"store" yaml:"store"`
	Dir      string        `mapstructure:"dir" yaml:"dir"`
	TTL      time.Duration `mapstructure:"ttl" yaml:"ttl"`
	Capacity int           `mapstructure:"capacity" yaml:"capacity"`
}

// RedisConfig addresses the redis session backend.
type RedisConfig struct {
	Addr     string `mapstructure:"addr" yaml:"addr"`
	Password string `mapstructure:"password" yaml:"password"`
	DB       int    `mapstructure:"db" yaml:"db"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Dataset:   "data/indonesia_regions.json",
		Addr:      ":8080",
		LogLevel:  "info",
		LogFormat: "text",
		Session: SessionConfig{
			Store:    StoreMemory,
			Dir:      ".wilayah/sessions",
			Capacity: 4096,
		},
	}
}

// Load loads .env (if present) and resolves the configuration from path
// (optional) and the process environment.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()
	return Resolve(path, os.LookupEnv)
}

// Resolve builds a Config from defaults, the YAML file at path (skipped when
// empty) and lookup, which takes precedence over the file.
func Resolve(path string, lookup func(string) (string, bool)) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.mergeEnv(lookup); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return Decode(raw, c)
}

// Decode applies a loosely typed map (YAML document, MCP arguments) onto out.
// Durations accept Go syntax ("30m"); numbers accept strings.
func Decode(input any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(input); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func (c *Config) mergeEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	str(EnvDataset, &c.Dataset)
	str(EnvAddr, &c.Addr)
	str(EnvLogLevel, &c.LogLevel)
	str(EnvLogFormat, &c.LogFormat)
	str(EnvSessionStore, &c.Session.Store)
	str(EnvSessionDir, &c.Session.Dir)
	str(EnvRedisAddr, &c.Redis.Addr)
	str(EnvRedisPassword, &c.Redis.Password)

	if v, ok := lookup(EnvRedisDB); ok && strings.TrimSpace(v) != "" {
		db, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvRedisDB, err)
		}
		c.Redis.DB = db
	}
	if v, ok := lookup(EnvSessionTTL); ok && strings.TrimSpace(v) != "" {
		ttl, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvSessionTTL, err)
		}
		c.Session.TTL = ttl
	}

	// A redis address without an explicit backend implies redis.
	if _, explicit := lookup(EnvSessionStore); !explicit && c.Redis.Addr != "" && c.Session.Store == StoreMemory {
		c.Session.Store = StoreRedis
	}
	return nil
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	switch c.Session.Store {
	case StoreMemory, StoreFile:
	case StoreRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("session store %q requires %s", StoreRedis, EnvRedisAddr)
		}
	default:
		return fmt.Errorf("unknown session store %q", c.Session.Store)
	}
	if c.Session.TTL < 0 {
		return fmt.Errorf("session ttl must not be negative")
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	return nil
}

// IsRemoteDataset reports whether Dataset is an http(s) URL.
func (c *Config) IsRemoteDataset() bool {
	return IsURL(c.Dataset)
}

// IsURL reports whether source names an http(s) resource.
func IsURL(source string) bool {
	s := strings.ToLower(source)
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
