package ai

import (
	"context"
	stderrors "errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"github.com/kapu/journal-insight-go/internal/constants"
	"github.com/kapu/journal-insight-go/internal/metrics"
	"github.com/kapu/journal-insight-go/internal/util"
	"github.com/kapu/journal-insight-go/pkg/errors"
)

var (
	statusCodeRegex = regexp.MustCompile(`\b(5\d{2})\b`)
	geminiCodeRegex = regexp.MustCompile(`"code":(\d{3})`)
	openaiCodeRegex = regexp.MustCompile(`^(\d{3})\s`)
)

// ModelManager calls the primary provider and, when enabled, retries once on
// the secondary. A circuit breaker and a rate limiter guard both.
type ModelManager struct {
	primary         Provider
	secondary       Provider
	enableSecondary bool
	timeout         time.Duration
	limiter         *rate.Limiter
	circuitBreaker  *util.CircuitBreaker
	logger          *zap.Logger
}

type ModelManagerConfig struct {
	GeminiAPIKey       string
	OpenAIAPIKey       string
	DefaultGeminiModel string
	DefaultOpenAIModel string
	EnableFallback     bool
	Timeout            time.Duration
	RatePerSecond      float64
	Burst              int
}

// NewModelManager builds the provider chain. Without a Gemini key the manager
// is returned unconfigured.
func NewModelManager(ctx context.Context, cfg ModelManagerConfig, logger *zap.Logger) (*ModelManager, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var primary Provider
	if cfg.GeminiAPIKey != "" {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cfg.GeminiAPIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		defaultGemini := cfg.DefaultGeminiModel
		if defaultGemini == "" {
			defaultGemini = "gemini-2.5-flash"
		}
		primary = NewGeminiProvider(client, defaultGemini, logger)
	} else {
		logger.Warn("GEMINI_API_KEY not set, generative analysis unavailable")
	}

	var secondary Provider
	defaultOpenAI := cfg.DefaultOpenAIModel
	if defaultOpenAI == "" {
		defaultOpenAI = "gpt-4o-mini"
	}
	if p := NewOpenAIProvider(cfg.OpenAIAPIKey, defaultOpenAI, logger); p != nil && cfg.EnableFallback {
		secondary = p
		logger.Info("OpenAI fallback enabled", zap.String("model", defaultOpenAI))
	} else {
		logger.Info("OpenAI fallback disabled")
	}

	return NewModelManagerWithProviders(primary, secondary, cfg, logger), nil
}

// NewModelManagerWithProviders wires already-built providers. A nil primary
// leaves the manager unconfigured.
func NewModelManagerWithProviders(primary, secondary Provider, cfg ModelManagerConfig, logger *zap.Logger) *ModelManager {
	if logger == nil {
		logger = zap.NewNop()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = constants.GenerationConfig.DefaultTimeout
	}
	ratePerSecond := cfg.RatePerSecond
	if ratePerSecond <= 0 {
		ratePerSecond = constants.GenerationConfig.RatePerSecond
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = constants.GenerationConfig.Burst
	}

	mm := &ModelManager{
		primary:         primary,
		secondary:       secondary,
		enableSecondary: secondary != nil,
		timeout:         timeout,
		limiter:         rate.NewLimiter(rate.Limit(ratePerSecond), burst),
		logger:          logger,
	}
	mm.circuitBreaker = util.NewCircuitBreaker(
		constants.CircuitBreakerConfig.FailureThreshold,
		constants.CircuitBreakerConfig.ResetTimeout,
		constants.CircuitBreakerConfig.HealthCheckInterval,
		mm.healthCheckPing,
		logger,
	)
	return mm
}

// Configured reports whether a primary provider exists.
func (mm *ModelManager) Configured() bool {
	return mm != nil && mm.primary != nil
}

// Generate asks for a JSON response. It never returns a Go error: the
// outcome is carried in Generation.Status.
func (mm *ModelManager) Generate(ctx context.Context, prompt string, preset ModelPreset) Generation {
	if !mm.Configured() {
		return Generation{
			Status: GenerationUnavailable,
			Err:    errors.NewServiceUnavailable("Gemini API not configured", "gemini"),
		}
	}

	if !mm.circuitBreaker.CanExecute() {
		status := mm.circuitBreaker.GetStatus()
		nextRetry := "unknown"
		if status.NextRetryTime != nil {
			nextRetry = util.FormatWIB(*status.NextRetryTime, "15:04")
		}
		mm.logger.Error("Generative backend unavailable (circuit open)",
			zap.String("state", status.State.String()),
			zap.Int("failure_count", status.FailureCount),
			zap.String("next_retry", nextRetry),
		)
		metrics.RecordGeneration(mm.primary.Name(), "circuit_open")
		return Generation{
			Status: GenerationFailed,
			Err: errors.NewGenerationFailure(
				fmt.Sprintf("generative backend circuit open, next retry %s", nextRetry),
				mm.primary.Name(), nil),
		}
	}

	if err := mm.limiter.Wait(ctx); err != nil {
		return Generation{
			Status: GenerationFailed,
			Err:    errors.NewGenerationFailure("generation rate limit wait aborted", mm.primary.Name(), err),
		}
	}

	opts := &GenerateOptions{JSONMode: true}

	result, primaryErr := mm.invoke(ctx, mm.primary, prompt, preset, opts)
	if primaryErr == nil {
		mm.circuitBreaker.RecordSuccess()
		return Generation{Status: GenerationOK, Text: result.Text, Provider: mm.primary.Name(), Model: result.Model}
	}
	mm.recordFailure(primaryErr)

	if !mm.enableSecondary {
		return Generation{
			Status: GenerationFailed,
			Err:    errors.NewGenerationFailure("generation failed", mm.primary.Name(), primaryErr),
		}
	}

	result, secondaryErr := mm.invoke(ctx, mm.secondary, prompt, preset, opts)
	if secondaryErr == nil {
		mm.circuitBreaker.RecordSuccess()
		return Generation{
			Status:       GenerationOK,
			Text:         result.Text,
			Provider:     mm.secondary.Name(),
			Model:        result.Model,
			UsedFallback: true,
		}
	}
	mm.recordFailure(secondaryErr)

	return Generation{
		Status: GenerationFailed,
		Err: errors.NewGenerationFailure(
			fmt.Sprintf("generation failed on %s and %s", mm.primary.Name(), mm.secondary.Name()),
			mm.secondary.Name(),
			stderrors.Join(primaryErr, secondaryErr),
		),
	}
}

// invoke runs one provider call under the generation timeout. Blank text is a failure.
func (mm *ModelManager) invoke(ctx context.Context, provider Provider, prompt string, preset ModelPreset, opts *GenerateOptions) (ProviderResult, error) {
	callCtx, cancel := context.WithTimeout(ctx, mm.timeout)
	defer cancel()

	started := time.Now()
	result, err := provider.Generate(callCtx, prompt, preset, opts)
	if err == nil && strings.TrimSpace(result.Text) == "" {
		err = fmt.Errorf("%s returned empty response", provider.Name())
	}
	if err != nil {
		metrics.RecordGeneration(provider.Name(), "failed")
		mm.logger.Warn("Generation attempt failed",
			zap.String("provider", provider.Name()),
			zap.Duration("elapsed", time.Since(started)),
			zap.Error(err),
		)
		return ProviderResult{}, err
	}

	metrics.RecordGeneration(provider.Name(), "ok")
	mm.logger.Debug("Generation attempt succeeded",
		zap.String("provider", provider.Name()),
		zap.String("model", result.Model),
		zap.Duration("elapsed", time.Since(started)),
	)
	return result, nil
}

func (mm *ModelManager) recordFailure(err error) {
	if !isServiceFailure(err) {
		return
	}

	timeout := constants.CircuitBreakerConfig.ResetTimeout
	if isRateLimitError(err) {
		timeout = constants.CircuitBreakerConfig.RateLimitTimeout
	}
	mm.circuitBreaker.RecordFailure(timeout)
}

func (mm *ModelManager) healthCheckPing() bool {
	ctx, cancel := context.WithTimeout(context.Background(), constants.CircuitBreakerConfig.HealthCheckTimeout)
	defer cancel()

	primaryOK := mm.primary != nil && mm.primary.Ping(ctx)
	secondaryOK := mm.enableSecondary && mm.secondary.Ping(ctx)
	healthy := primaryOK || secondaryOK

	mm.logger.Info("Health Check: Result",
		zap.Bool("primary", primaryOK),
		zap.Bool("secondary", secondaryOK),
		zap.Bool("healthy", healthy),
	)
	return healthy
}

func (mm *ModelManager) GetCircuitStatus() util.CircuitBreakerStatus {
	return mm.circuitBreaker.GetStatus()
}

func (mm *ModelManager) ResetCircuit() {
	mm.circuitBreaker.Reset()
}

// isServiceFailure reports errors that indicate the backend itself is unhealthy.
func isServiceFailure(err error) bool {
	if err == nil {
		return false
	}
	if stderrors.Is(err, context.DeadlineExceeded) {
		return true
	}

	msg := err.Error()
	if strings.Contains(msg, "timeout") || strings.Contains(msg, "ETIMEDOUT") {
		return true
	}
	if isRateLimitError(err) {
		return true
	}
	if statusCodeRegex.MatchString(msg) {
		return true
	}
	if code, ok := extractStatusCode(msg); ok {
		return code >= 500 && code < 600
	}
	return false
}

func isRateLimitError(err error) bool {
	if err == nil {
		return false
	}

	msg := err.Error()
	if strings.Contains(msg, "429") || strings.Contains(msg, "Rate limit") || strings.Contains(msg, "quota") {
		return true
	}
	if code, ok := extractStatusCode(msg); ok {
		return code == 429
	}
	return false
}

func extractStatusCode(msg string) (int, bool) {
	for _, re := range []*regexp.Regexp{geminiCodeRegex, openaiCodeRegex} {
		if matches := re.FindStringSubmatch(msg); len(matches) > 1 {
			if code, err := strconv.Atoi(matches[1]); err == nil {
				return code, true
			}
		}
	}
	return 0, false
}
