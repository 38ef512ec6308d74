// Package config loads service settings from .env, an optional YAML file,
// and the process environment, in increasing order of precedence.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Port            string        `yaml:"port"`
	DatabaseURL     string        `yaml:"database_url"`
	SqlitePath      string        `yaml:"sqlite_path"`
	RedisURL        string        `yaml:"redis_url"`
	CacheTTL        time.Duration `yaml:"cache_ttl"`
	RateLimitRPS    float64       `yaml:"rate_limit_rps"`
	RateLimitBurst  int           `yaml:"rate_limit_burst"`
	MaxDepots       int           `yaml:"max_depots"`
	MaxDestinations int           `yaml:"max_destinations"`
	SolveWorkers    int           `yaml:"solve_workers"`
	SolveTimeout    time.Duration `yaml:"solve_timeout"`
}

func Default() Config {
	return Config{
		Port:            "8080",
		SqlitePath:      "data/runs.db",
		CacheTTL:        10 * time.Minute,
		RateLimitRPS:    20,
		RateLimitBurst:  40,
		MaxDepots:       50,
		MaxDestinations: 5000,
		SolveWorkers:    4,
		SolveTimeout:    10 * time.Second,
	}
}

// Get returns the environment value for key, or fallback when unset.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load builds the configuration. A missing .env is not an error.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg := Default()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("load config: read %q: %w", path, err)
		}
		if err := Parse(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("load config: %q: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}

// Parse overlays YAML settings onto cfg; keys absent from data keep their value.
func Parse(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	cfg.Port = Get("PORT", cfg.Port)
	cfg.DatabaseURL = Get("DATABASE_URL", cfg.DatabaseURL)
	cfg.SqlitePath = Get("SQLITE_PATH", cfg.SqlitePath)
	cfg.RedisURL = Get("REDIS_URL", cfg.RedisURL)

	durations := map[string]*time.Duration{
		"CACHE_TTL":     &cfg.CacheTTL,
		"SOLVE_TIMEOUT": &cfg.SolveTimeout,
	}
	for key, dst := range durations {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			d, err := time.ParseDuration(v)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			*dst = d
		}
	}

	ints := map[string]*int{
		"RATE_LIMIT_BURST": &cfg.RateLimitBurst,
		"MAX_DEPOTS":       &cfg.MaxDepots,
		"MAX_DESTINATIONS": &cfg.MaxDestinations,
		"SOLVE_WORKERS":    &cfg.SolveWorkers,
	}
	for key, dst := range ints {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			*dst = n
		}
	}

	if v := strings.TrimSpace(os.Getenv("RATE_LIMIT_RPS")); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("RATE_LIMIT_RPS: %w", err)
		}
		cfg.RateLimitRPS = f
	}

	return nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return fmt.Errorf("port must not be empty")
	}
	if c.MaxDepots < 1 {
		return fmt.Errorf("max_depots must be at least 1, got %d", c.MaxDepots)
	}
	if c.MaxDestinations < 0 {
		return fmt.Errorf("max_destinations must not be negative, got %d", c.MaxDestinations)
	}
	if c.SolveWorkers < 1 {
		return fmt.Errorf("solve_workers must be at least 1, got %d", c.SolveWorkers)
	}
	if c.SolveTimeout <= 0 {
		return fmt.Errorf("solve_timeout must be positive, got %s", c.SolveTimeout)
	}
	if c.RateLimitRPS < 0 || c.RateLimitBurst < 0 {
		return fmt.Errorf("rate limit settings must not be negative")
	}
	return nil
}
