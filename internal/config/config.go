package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	LogLevel    string
	Store       StoreConfig
	RateLimit   RateLimitConfig
}

// StoreConfig holds the remote store configuration
type StoreConfig struct {
	Driver      string // "postgrest", "postgres", "sqlite" or "memory"
	SupabaseURL string
	SupabaseKey string
	Table       string
	Timeout     time.Duration
	DatabaseURL string
	SQLitePath  string
}

// RateLimitConfig holds the local server rate limiter settings
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// Load loads configuration from environment variables and an optional .env file.
// It does not validate; call Validate before serving requests.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("PORT", "8888")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORE_DRIVER", "postgrest")
	v.SetDefault("SUPABASE_TABLE", "productos")
	v.SetDefault("SUPABASE_TIMEOUT", "10s")
	v.SetDefault("SQLITE_PATH", "./data/productos.db")
	v.SetDefault("RATE_LIMIT_RPS", 20)
	v.SetDefault("RATE_LIMIT_BURST", 40)

	config := &Config{
		Environment: v.GetString("ENVIRONMENT"),
		Port:        strings.TrimPrefix(strings.TrimSpace(v.GetString("PORT")), ":"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		Store: StoreConfig{
			Driver:      strings.ToLower(strings.TrimSpace(v.GetString("STORE_DRIVER"))),
			SupabaseURL: strings.TrimSpace(v.GetString("SUPABASE_URL")),
			SupabaseKey: strings.TrimSpace(v.GetString("SUPABASE_KEY")),
			Table:       strings.TrimSpace(v.GetString("SUPABASE_TABLE")),
			Timeout:     v.GetDuration("SUPABASE_TIMEOUT"),
			DatabaseURL: strings.TrimSpace(v.GetString("DATABASE_URL")),
			SQLitePath:  strings.TrimSpace(v.GetString("SQLITE_PATH")),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: v.GetFloat64("RATE_LIMIT_RPS"),
			Burst:             v.GetInt("RATE_LIMIT_BURST"),
		},
	}

	return config, nil
}

// IsProduction returns true if running with ENVIRONMENT=production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Validate checks that every value the selected store needs is present.
// All problems are reported at once.
func (c *Config) Validate() error {
	var problems []string

	if c.Port == "" {
		problems = append(problems, "PORT must not be empty")
	}

	switch c.Store.Driver {
	case "postgrest":
		if c.Store.SupabaseURL == "" {
			problems = append(problems, "SUPABASE_URL is required")
		} else if u, err := url.Parse(c.Store.SupabaseURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			problems = append(problems, "SUPABASE_URL must be an http(s) URL")
		}
		if c.Store.SupabaseKey == "" {
			problems = append(problems, "SUPABASE_KEY is required")
		}
		if c.Store.Table == "" {
			problems = append(problems, "SUPABASE_TABLE must not be empty")
		}
		if c.Store.Timeout <= 0 {
			problems = append(problems, "SUPABASE_TIMEOUT must be a positive duration")
		}
	case "postgres":
		if c.Store.DatabaseURL == "" {
			problems = append(problems, "DATABASE_URL is required")
		}
	case "sqlite":
		if c.Store.SQLitePath == "" {
			problems = append(problems, "SQLITE_PATH must not be empty")
		}
	case "memory":
	default:
		problems = append(problems, fmt.Sprintf("STORE_DRIVER %q is not one of postgrest, postgres, sqlite, memory", c.Store.Driver))
	}

	if len(problems) > 0 {
		return &Error{Problems: problems}
	}
	return nil
}

// Error reports an unusable configuration
type Error struct {
	Problems []string
}

func (e *Error) Error() string {
	return "invalid configuration: " + strings.Join(e.Problems, "; ")
}
