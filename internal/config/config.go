package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// ConfigPathEnvVar points at a yaml file to read before the environment
const ConfigPathEnvVar = "CONFIG_PATH"

// searched in order when CONFIG_PATH isn't set
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
}

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	Port          string        `koanf:"port"`
	DBDriver      string        `koanf:"db_driver"`
	DBURL         string        `koanf:"db_url"`
	JWTSecret     string        `koanf:"jwt_secret"`
	TokenTTL      time.Duration `koanf:"token_ttl"` // 0 means tokens never expire
	CORSOrigins   []string      `koanf:"cors_origins"`
	RateLimitAuth int           `koanf:"rate_limit_auth"` // register/login requests per minute per IP
	LogMode       string        `koanf:"log_mode"`
	SeedData      bool          `koanf:"seed_data"`
	SeedFile      string        `koanf:"seed_file"` // empty uses the built in catalog
}

func defaultConfig() *Config {
	return &Config{
		Port:          "8080",
		DBDriver:      DriverPostgres,
		TokenTTL:      24 * time.Hour,
		CORSOrigins:   []string{"*"},
		RateLimitAuth: 20,
		LogMode:       "dev",
		SeedData:      true,
	}
}

// env vars we read, everything else in the environment is ignored
var envKeys = map[string]bool{
	"port":            true,
	"db_driver":       true,
	"db_url":          true,
	"jwt_secret":      true,
	"token_ttl":       true,
	"cors_origins":    true,
	"rate_limit_auth": true,
	"log_mode":        true,
	"seed_data":       true,
	"seed_file":       true,
}

var sliceConfigPaths = []string{"cors_origins"}

// Load reads .env (if there is one), then defaults < config file < environment
func Load() (*Config, error) {
	// .env is optional - docker sets the real environment
	_ = godotenv.Load()

	return load(findConfigFile())
}

func load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// DB_URL -> db_url, unknown variables are dropped
func envTransformFunc(key string) string {
	key = strings.ToLower(key)
	if envKeys[key] {
		return key
	}
	return ""
}

// env vars arrive as "a, b,c" - turn them into a trimmed slice
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverPostgres:
		if c.DBURL == "" {
			return errors.New("DB_URL is required when DB_DRIVER is postgres")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown DB_DRIVER %q (want postgres or memory)", c.DBDriver)
	}

	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.Port == "" {
		return errors.New("PORT must not be empty")
	}
	if c.TokenTTL < 0 {
		return errors.New("TOKEN_TTL must not be negative")
	}
	if c.RateLimitAuth <= 0 {
		return errors.New("RATE_LIMIT_AUTH must be positive")
	}
	return nil
}

// Addr is the listen address for http.Server
func (c *Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}
