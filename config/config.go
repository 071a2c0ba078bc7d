package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Share gateway specifics
	Backend   BackendConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	Session   SessionConfig
	Export    ExportConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type BackendConfig struct {
	URL             string
	PublicNotesPath string
	AssetsURL       string // Static asset base for uploads (defaults to URL)
	Timeout         time.Duration
	ListingLimit    int
}

type CacheConfig struct {
	Driver        string // none (default), memory or redis. A cached listing can serve a note made private until TTL expiry
	TTL           time.Duration
	Size          int
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
}

type SessionConfig struct {
	CookieName string
}

type ExportConfig struct {
	ProductLabel string
	Timezone     string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, . and /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Notes backend
	cfg.Backend.URL = viper.GetString("backend.url")
	cfg.Backend.PublicNotesPath = viper.GetString("backend.public_notes_path")
	cfg.Backend.AssetsURL = viper.GetString("backend.assets_url")
	cfg.Backend.Timeout = viper.GetDuration("backend.timeout")
	cfg.Backend.ListingLimit = viper.GetInt("backend.listing_limit")
	if backendURL := viper.GetString("backend_url"); backendURL != "" {
		cfg.Backend.URL = backendURL
	}
	// If assets URL not set, default to backend URL
	if cfg.Backend.AssetsURL == "" {
		cfg.Backend.AssetsURL = cfg.Backend.URL
	}

	// Listing cache
	cfg.Cache.Driver = viper.GetString("cache.driver")
	cfg.Cache.TTL = viper.GetDuration("cache.ttl")
	cfg.Cache.Size = viper.GetInt("cache.size")
	cfg.Cache.RedisAddr = viper.GetString("cache.redis_addr")
	cfg.Cache.RedisPassword = expandEnvVar(viper.GetString("cache.redis_password"))
	cfg.Cache.RedisDB = viper.GetInt("cache.redis_db")
	if redisAddr := viper.GetString("redis_addr"); redisAddr != "" {
		cfg.Cache.RedisAddr = redisAddr
	}

	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	cfg.Session.CookieName = viper.GetString("session.cookie_name")

	cfg.Export.ProductLabel = viper.GetString("export.product_label")
	cfg.Export.Timezone = viper.GetString("export.timezone")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("backend.url", "http://localhost:3000")
	viper.SetDefault("backend.public_notes_path", "/public-notes")
	viper.SetDefault("backend.timeout", "10s")
	viper.SetDefault("backend.listing_limit", 200)

	viper.SetDefault("cache.driver", "none")
	viper.SetDefault("cache.ttl", "30s")
	viper.SetDefault("cache.size", 256)
	viper.SetDefault("cache.redis_db", 0)

	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 120)

	viper.SetDefault("session.cookie_name", "readshelf_token")

	viper.SetDefault("export.product_label", "ReadShelf")
	viper.SetDefault("export.timezone", "UTC")
}

func (cfg *Config) validate() error {
	if cfg.Backend.URL == "" {
		return fmt.Errorf("backend.url is required")
	}
	if cfg.Backend.ListingLimit <= 0 {
		return fmt.Errorf("backend.listing_limit must be positive")
	}
	switch cfg.Cache.Driver {
	case "none", "memory":
	case "redis":
		if cfg.Cache.RedisAddr == "" {
			return fmt.Errorf("cache.redis_addr is required for the redis driver")
		}
	default:
		return fmt.Errorf("unsupported cache.driver %q", cfg.Cache.Driver)
	}
	if _, err := time.LoadLocation(cfg.Export.Timezone); err != nil {
		return fmt.Errorf("invalid export.timezone %q: %w", cfg.Export.Timezone, err)
	}
	return nil
}

// Location returns the time zone used for displayed dates.
func (c ExportConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	// Check if value is in format ${VAR_NAME}
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		// Try lowercase version
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		// Try direct os.Getenv as last resort
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}
