package app

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/kapu/journal-insight-go/internal/api"
	"github.com/kapu/journal-insight-go/internal/config"
	"github.com/kapu/journal-insight-go/internal/prompt"
	"github.com/kapu/journal-insight-go/internal/service/ai"
	"github.com/kapu/journal-insight-go/internal/service/cache"
	"github.com/kapu/journal-insight-go/internal/service/database"
	"github.com/kapu/journal-insight-go/internal/service/insight"
	"github.com/kapu/journal-insight-go/internal/service/journal"
	"github.com/kapu/journal-insight-go/internal/service/mood"
	"github.com/kapu/journal-insight-go/internal/service/poster"
	"github.com/kapu/journal-insight-go/internal/service/style"
)

// Container bundles the assembled services shared by the server and the CLI.
type Container struct {
	Config *config.Config
	Logger *zap.Logger

	Engine  *insight.Engine
	Style   *style.Analyzer
	Journal journal.Store

	closers []func()
}

// Handler returns the HTTP router serving the engine.
func (c *Container) Handler() http.Handler {
	return api.NewRouter(api.NewHandler(c.Engine, c.Logger), c.Config.Server, c.Logger)
}

// Close releases resources in reverse construction order.
func (c *Container) Close() {
	if c == nil {
		return
	}
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	c.closers = nil
}

// Build loads the catalogs and wires the optional generative client,
// journal database, poster lookup and its Redis cache. Missing optional parts leave the
// engine running in its degraded modes.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (_ *Container, err error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	container := &Container{Config: cfg, Logger: logger}
	defer func() {
		if err != nil {
			container.Close()
		}
	}()

	// Catalogs
	analyzer, err := style.NewDefaultAnalyzer()
	if err != nil {
		return nil, fmt.Errorf("failed to load author catalog: %w", err)
	}
	moods, err := mood.DefaultCatalog()
	if err != nil {
		return nil, fmt.Errorf("failed to load mood catalog: %w", err)
	}
	container.Style = analyzer
	logger.Info("Catalogs loaded", zap.Int("authors", analyzer.Catalog().Len()))

	// Journal database
	if cfg.Postgres.Enabled() {
		postgresSvc, dbErr := database.NewPostgresService(ctx, cfg.Postgres, logger)
		if dbErr != nil {
			return nil, fmt.Errorf("failed to create postgres service: %w", dbErr)
		}
		container.closers = append(container.closers, func() {
			_ = postgresSvc.Close()
		})
		container.Journal = journal.NewPostgresStore(postgresSvc.GetDB(), logger)
	} else {
		logger.Info("POSTGRES_HOST not set, journal-backed endpoints disabled")
	}

	// AI stack
	modelManager, err := ai.NewModelManager(ctx, ai.ModelManagerConfig{
		GeminiAPIKey:       cfg.Gemini.APIKey,
		OpenAIAPIKey:       cfg.OpenAI.APIKey,
		DefaultGeminiModel: cfg.Gemini.Model,
		DefaultOpenAIModel: cfg.OpenAI.Model,
		EnableFallback:     cfg.OpenAI.EnableFallback,
		Timeout:            cfg.Generation.Timeout,
		RatePerSecond:      cfg.Generation.RatePerSecond,
		Burst:              cfg.Generation.Burst,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create model manager: %w", err)
	}

	deps := insight.Dependencies{
		Generator:         modelManager,
		Prompts:           prompt.DefaultPromptBuilder(),
		Style:             analyzer,
		Moods:             moods,
		ReportConcurrency: cfg.Report.Concurrency,
	}
	if container.Journal != nil {
		deps.Journal = container.Journal
	}
	posterCache := false
	if cfg.Poster.Enabled {
		resolver := poster.NewResolver(cfg.Poster.BaseURL, logger)
		if cfg.Redis.Enabled() {
			cacheSvc, cacheErr := cache.NewService(ctx, cfg.Redis, logger)
			if cacheErr != nil {
				return nil, fmt.Errorf("failed to create cache service: %w", cacheErr)
			}
			container.closers = append(container.closers, func() {
				_ = cacheSvc.Close()
			})
			resolver.WithCache(cacheSvc, cfg.Redis.PosterTTL)
			posterCache = true
		}
		deps.Posters = resolver
	} else if cfg.Redis.Enabled() {
		logger.Info("REDIS_ADDR set but poster lookup disabled, skipping poster cache")
	}

	container.Engine = insight.NewEngine(deps, logger)
	logger.Info("Insight engine ready",
		zap.Bool("generative", container.Engine.Configured()),
		zap.Bool("journal", container.Journal != nil),
		zap.Bool("posters", cfg.Poster.Enabled),
		zap.Bool("poster_cache", posterCache),
	)
	return container, nil
}
