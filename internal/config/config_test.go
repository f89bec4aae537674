package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_GENAI_API_KEY", "")
	t.Setenv("POSTGRES_HOST", "")
	t.Setenv("REDIS_ADDR", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Redis.Enabled() {
		t.Fatalf("expected poster cache disabled without REDIS_ADDR")
	}
	if cfg.Redis.PosterTTL != 7*24*time.Hour {
		t.Fatalf("unexpected poster cache ttl %s", cfg.Redis.PosterTTL)
	}
	if cfg.Server.Port != 50051 {
		t.Fatalf("expected default port 50051, got %d", cfg.Server.Port)
	}
	if cfg.GenerativeConfigured() {
		t.Fatalf("expected no generative client without a key")
	}
	if cfg.Postgres.Enabled() {
		t.Fatalf("expected journal store disabled without host")
	}
	if cfg.Generation.Timeout != 30*time.Second {
		t.Fatalf("unexpected generation timeout %s", cfg.Generation.Timeout)
	}
}

func TestLoadGeminiKeyFallback(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_GENAI_API_KEY", "secondary-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Gemini.APIKey != "secondary-key" || !cfg.GenerativeConfigured() {
		t.Fatalf("expected GOOGLE_GENAI_API_KEY to configure the client, got %q", cfg.Gemini.APIKey)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "8088")
	t.Setenv("GENERATION_TIMEOUT_SECONDS", "5")
	t.Setenv("GENERATION_RATE_PER_SECOND", "0.5")
	t.Setenv("OPENAI_ENABLE_FALLBACK", "false")
	t.Setenv("REDIS_ADDR", "127.0.0.1:6380")
	t.Setenv("POSTER_CACHE_TTL_HOURS", "12")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr() != "0.0.0.0:8088" {
		t.Fatalf("unexpected addr %s", cfg.Server.Addr())
	}
	if cfg.Generation.Timeout != 5*time.Second || cfg.Generation.RatePerSecond != 0.5 {
		t.Fatalf("unexpected generation config %+v", cfg.Generation)
	}
	if cfg.OpenAI.EnableFallback {
		t.Fatalf("expected fallback disabled")
	}
	if !cfg.Redis.Enabled() || cfg.Redis.Addr != "127.0.0.1:6380" || cfg.Redis.PosterTTL != 12*time.Hour {
		t.Fatalf("unexpected redis config %+v", cfg.Redis)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"port", map[string]string{"HTTP_PORT": "70000"}},
		{"concurrency", map[string]string{"MAX_CONCURRENT_REQUESTS": "-1"}},
		{"timeout", map[string]string{"GENERATION_TIMEOUT_SECONDS": "-3"}},
		{"poster cache ttl", map[string]string{"REDIS_ADDR": "localhost:6379", "POSTER_CACHE_TTL_HOURS": "0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}
