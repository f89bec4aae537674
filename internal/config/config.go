package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/kapu/journal-insight-go/internal/constants"
)

type Config struct {
	Server     ServerConfig
	Gemini     GeminiConfig
	OpenAI     OpenAIConfig
	Generation GenerationConfig
	Postgres   PostgresConfig
	Redis      RedisConfig
	Poster     PosterConfig
	Report     ReportConfig
	Logging    LoggingConfig
}

type ServerConfig struct {
	BindAddress           string
	Port                  int
	MaxConcurrentRequests int
	RateLimitPerMinute    int
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.BindAddress, s.Port)
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey         string
	Model          string
	EnableFallback bool
}

type GenerationConfig struct {
	Timeout       time.Duration
	RatePerSecond float64
	Burst         int
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// Enabled reports whether a journal database is configured.
func (p PostgresConfig) Enabled() bool {
	return p.Host != ""
}

type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	PosterTTL time.Duration
}

// Enabled reports whether a Redis poster cache is configured.
func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

type PosterConfig struct {
	Enabled bool
	BaseURL string
}

type ReportConfig struct {
	Concurrency int
}

type LoggingConfig struct {
	Level string
	File  string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			BindAddress:           getEnv("HTTP_BIND_ADDRESS", "0.0.0.0"),
			Port:                  getEnvInt("HTTP_PORT", 50051),
			MaxConcurrentRequests: getEnvInt("MAX_CONCURRENT_REQUESTS", 10),
			RateLimitPerMinute:    getEnvInt("RATE_LIMIT_PER_MINUTE", 60),
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", getEnv("GOOGLE_GENAI_API_KEY", "")),
			Model:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		},
		OpenAI: OpenAIConfig{
			APIKey:         getEnv("OPENAI_API_KEY", ""),
			Model:          getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			EnableFallback: getEnvBool("OPENAI_ENABLE_FALLBACK", true),
		},
		Generation: GenerationConfig{
			Timeout:       time.Duration(getEnvInt("GENERATION_TIMEOUT_SECONDS", int(constants.GenerationConfig.DefaultTimeout/time.Second))) * time.Second,
			RatePerSecond: getEnvFloat("GENERATION_RATE_PER_SECOND", constants.GenerationConfig.RatePerSecond),
			Burst:         getEnvInt("GENERATION_BURST", constants.GenerationConfig.Burst),
		},
		Postgres: PostgresConfig{
			Host:     getEnv("POSTGRES_HOST", ""),
			Port:     getEnvInt("POSTGRES_PORT", 5432),
			User:     getEnv("POSTGRES_USER", "journal"),
			Password: getEnv("POSTGRES_PASSWORD", ""),
			Database: getEnv("POSTGRES_DB", "journal"),
			SSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr:      getEnv("REDIS_ADDR", ""),
			Password:  getEnv("REDIS_PASSWORD", ""),
			DB:        getEnvInt("REDIS_DB", 0),
			PosterTTL: time.Duration(getEnvInt("POSTER_CACHE_TTL_HOURS", int(constants.CacheConfig.PosterTTL/time.Hour))) * time.Hour,
		},
		Poster: PosterConfig{
			Enabled: getEnvBool("POSTER_LOOKUP_ENABLED", false),
			BaseURL: getEnv("POSTER_BASE_URL", constants.PosterConfig.BaseURL),
		},
		Report: ReportConfig{
			Concurrency: getEnvInt("WEEKLY_REPORT_CONCURRENCY", 3),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// GenerativeConfigured reports whether a generative client can be built.
func (c *Config) GenerativeConfigured() bool {
	return strings.TrimSpace(c.Gemini.APIKey) != ""
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.MaxConcurrentRequests <= 0 {
		return fmt.Errorf("MAX_CONCURRENT_REQUESTS must be positive")
	}
	if c.Server.RateLimitPerMinute <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive")
	}
	if c.Generation.Timeout <= 0 {
		return fmt.Errorf("GENERATION_TIMEOUT_SECONDS must be positive")
	}
	if c.Generation.RatePerSecond <= 0 || c.Generation.Burst <= 0 {
		return fmt.Errorf("GENERATION_RATE_PER_SECOND and GENERATION_BURST must be positive")
	}
	if c.Report.Concurrency <= 0 {
		return fmt.Errorf("WEEKLY_REPORT_CONCURRENCY must be positive")
	}
	if c.Redis.Enabled() && c.Redis.PosterTTL <= 0 {
		return fmt.Errorf("POSTER_CACHE_TTL_HOURS must be positive")
	}
	if c.Poster.Enabled && c.Poster.BaseURL == "" {
		return fmt.Errorf("POSTER_BASE_URL is required when poster lookup is enabled")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
