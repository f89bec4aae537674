package constants

import "time"

var CircuitBreakerConfig = struct {
	FailureThreshold    int
	ResetTimeout        time.Duration
	RateLimitTimeout    time.Duration
	HealthCheckInterval time.Duration
	HealthCheckTimeout  time.Duration
}{
	FailureThreshold:    3,                // consecutive failures before the circuit opens
	ResetTimeout:        30 * time.Second, // default wait before retrying
	RateLimitTimeout:    1 * time.Hour,    // 429 responses hold the circuit open longer
	HealthCheckInterval: 10 * time.Minute,
	HealthCheckTimeout:  10 * time.Second,
}

var GenerationConfig = struct {
	DefaultTimeout time.Duration
	RatePerSecond  float64
	Burst          int
}{
	DefaultTimeout: 30 * time.Second,
	RatePerSecond:  2,
	Burst:          4,
}

var TextLimits = struct {
	MinAnalysisChars int
	TopTerms         int
	MinContentLength int
	RunnerUps        int
	RecentNotes      int
	Highlights       int
	MaxGenres        int
	FallbackItems    int
}{
	MinAnalysisChars: 50,
	TopTerms:         5,
	MinContentLength: 3, // content words must be longer than two letters
	RunnerUps:        4,
	RecentNotes:      100,
	Highlights:       3,
	MaxGenres:        3,
	FallbackItems:    3,
}

var HTTPConfig = struct {
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	ShutdownTimeout   time.Duration
	MaxBodyBytes      int64
}{
	ReadHeaderTimeout: 10 * time.Second,
	WriteTimeout:      90 * time.Second,
	ShutdownTimeout:   15 * time.Second,
	MaxBodyBytes:      1 << 20,
}

var PosterConfig = struct {
	BaseURL     string
	Timeout     time.Duration
	UserAgent   string
	Concurrency int
}{
	BaseURL:     "https://www.imdb.com",
	Timeout:     5 * time.Second,
	UserAgent:   "Mozilla/5.0 (compatible; journal-insight/1.0)",
	Concurrency: 3,
}

var CacheConfig = struct {
	PosterKeyPrefix string
	PosterTTL       time.Duration
	DialTimeout     time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	PingTimeout     time.Duration
	MaxRetries      int
	PoolSize        int
}{
	PosterKeyPrefix: "journal-insight:poster:",
	PosterTTL:       7 * 24 * time.Hour,
	DialTimeout:     5 * time.Second,
	ReadTimeout:     3 * time.Second,
	WriteTimeout:    3 * time.Second,
	PingTimeout:     5 * time.Second,
	MaxRetries:      3,
	PoolSize:        10,
}

var DatabaseConfig = struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	PingTimeout     time.Duration
}{
	MaxOpenConns:    10,
	MaxIdleConns:    5,
	ConnMaxLifetime: 30 * time.Minute,
	PingTimeout:     5 * time.Second,
}
