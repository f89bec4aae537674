// Package insight drives every analysis kind: AI-only mood analyses,
// movie recommendations with a curated fallback, and the deterministic
// writing-style match.
package insight

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kapu/journal-insight-go/internal/constants"
	"github.com/kapu/journal-insight-go/internal/domain"
	"github.com/kapu/journal-insight-go/internal/metrics"
	"github.com/kapu/journal-insight-go/internal/prompt"
	"github.com/kapu/journal-insight-go/internal/service/ai"
	"github.com/kapu/journal-insight-go/internal/service/journal"
	"github.com/kapu/journal-insight-go/internal/service/mood"
	"github.com/kapu/journal-insight-go/internal/service/style"
	"github.com/kapu/journal-insight-go/internal/util"
	"github.com/kapu/journal-insight-go/pkg/errors"
)

const (
	opAnalyzeDaily        = "analyze_daily"
	opAnalyzeWeekly       = "analyze_weekly"
	opWritingStyle        = "writing_style"
	opMovieRecommendation = "movie_recommendations"
	opWeeklyReport        = "weekly_report"
)

// Fallback reasons for movie recommendations.
const (
	reasonUnconfigured = "unconfigured"
	reasonFailed       = "generation_failed"
	reasonMalformed    = "malformed_response"
	reasonNoItems      = "no_items"
)

// PosterEnricher fills poster URLs in place on a best-effort basis.
type PosterEnricher interface {
	Enrich(ctx context.Context, items []domain.MovieItem)
}

// Dependencies are the collaborators of an Engine. Generator, Journal and
// Posters may be nil.
type Dependencies struct {
	Generator         ai.Generator
	Prompts           *prompt.PromptBuilder
	Style             *style.Analyzer
	Moods             *mood.Catalog
	Journal           journal.Store
	Posters           PosterEnricher
	ReportConcurrency int
}

type Engine struct {
	generator         ai.Generator
	prompts           *prompt.PromptBuilder
	style             *style.Analyzer
	moods             *mood.Catalog
	resolver          *mood.Resolver
	journal           journal.Store
	posters           PosterEnricher
	reportConcurrency int
	logger            *zap.Logger
}

func NewEngine(deps Dependencies, logger *zap.Logger) *Engine {
	concurrency := deps.ReportConcurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	return &Engine{
		generator:         deps.Generator,
		prompts:           deps.Prompts,
		style:             deps.Style,
		moods:             deps.Moods,
		resolver:          mood.NewResolver(deps.Moods),
		journal:           deps.Journal,
		posters:           deps.Posters,
		reportConcurrency: concurrency,
		logger:            logger,
	}
}

// Configured reports whether a generative client is available.
func (e *Engine) Configured() bool {
	return e.generator != nil && e.generator.Configured()
}

func (e *Engine) AnalyzeDaily(ctx context.Context, req domain.DailyRequest) (result domain.AnalysisResult, err error) {
	defer func() { metrics.RecordRequest(opAnalyzeDaily, err) }()

	e.logger.Info("Analyzing daily notes",
		zap.String("operation", opAnalyzeDaily),
		zap.String("user_id", req.UserID),
		zap.String("date", req.Date),
		zap.Int("notes", len(req.Notes)),
	)
	return e.analyze(ctx, opAnalyzeDaily, req.UserID, e.prompts.DailyAnalysis(req.Date, req.Notes))
}

func (e *Engine) AnalyzeWeekly(ctx context.Context, req domain.WeeklyRequest) (result domain.AnalysisResult, err error) {
	defer func() { metrics.RecordRequest(opAnalyzeWeekly, err) }()

	e.logger.Info("Analyzing week",
		zap.String("operation", opAnalyzeWeekly),
		zap.String("user_id", req.UserID),
		zap.String("week_start", req.WeekStart),
		zap.String("week_end", req.WeekEnd),
		zap.Int("days", len(req.DailySummaries)),
	)
	return e.analyze(ctx, opAnalyzeWeekly, req.UserID,
		e.prompts.WeeklyAnalysis(req.WeekStart, req.WeekEnd, req.DailySummaries))
}

// analyze is the no-fallback policy shared by daily and weekly analysis.
func (e *Engine) analyze(ctx context.Context, operation, userID, p string) (domain.AnalysisResult, error) {
	if !e.Configured() {
		return domain.AnalysisResult{}, errors.NewServiceUnavailable("Gemini API not configured", "gemini")
	}

	gen := e.generator.Generate(ctx, p, ai.PresetBalanced)
	switch gen.Status {
	case ai.GenerationOK:
	case ai.GenerationUnavailable:
		return domain.AnalysisResult{}, errors.NewServiceUnavailable("Gemini API not configured", "gemini")
	default:
		e.logger.Error("AI analysis failed",
			zap.String("operation", operation),
			zap.String("user_id", userID),
			zap.Error(gen.Err),
		)
		return domain.AnalysisResult{}, errors.NewInternal(fmt.Sprintf("AI analysis failed: %v", gen.Err), operation, gen.Err)
	}

	result, mismatch := ParseAnalysis(gen.Text)
	if mismatch != nil {
		e.logger.Warn("AI analysis response degraded",
			zap.String("operation", operation),
			zap.String("user_id", userID),
			zap.String("provider", gen.Provider),
			zap.String("preview", util.TruncateString(gen.Text, 120)),
			zap.Error(mismatch),
		)
	}
	return result, nil
}

// AnalyzeWritingStyle runs the deterministic doppelganger match over texts.
func (e *Engine) AnalyzeWritingStyle(ctx context.Context, req domain.WritingStyleRequest) (result domain.WritingStyleResult, err error) {
	defer func() { metrics.RecordRequest(opWritingStyle, err) }()

	result, err = e.style.Analyze(req.Texts)
	if err != nil {
		e.logger.Info("Writing style rejected",
			zap.String("operation", opWritingStyle),
			zap.String("user_id", req.UserID),
			zap.Error(err),
		)
		return domain.WritingStyleResult{}, err
	}

	e.logger.Info("Writing style matched",
		zap.String("operation", opWritingStyle),
		zap.String("user_id", req.UserID),
		zap.String("author", result.TopMatch.Author.Name),
		zap.Float64("similarity", result.TopMatch.Similarity),
	)
	return result, nil
}

// AnalyzeWritingStyleForUser matches the user's recent journal notes.
func (e *Engine) AnalyzeWritingStyleForUser(ctx context.Context, userID string) (domain.WritingStyleResult, error) {
	if e.journal == nil {
		err := errors.NewServiceUnavailable("Journal store not configured", "postgres")
		metrics.RecordRequest(opWritingStyle, err)
		return domain.WritingStyleResult{}, err
	}

	texts, err := e.journal.RecentTexts(ctx, userID, constants.TextLimits.RecentNotes)
	if err != nil {
		wrapped := errors.NewInternal("Failed to load journal notes", opWritingStyle, err)
		metrics.RecordRequest(opWritingStyle, wrapped)
		return domain.WritingStyleResult{}, wrapped
	}
	if len(texts) == 0 {
		err := errors.NewInvalidArgument("No journal notes to analyze", map[string]any{"user_id": userID})
		metrics.RecordRequest(opWritingStyle, err)
		return domain.WritingStyleResult{}, err
	}

	return e.AnalyzeWritingStyle(ctx, domain.WritingStyleRequest{UserID: userID, Texts: texts})
}

// GetMovieRecommendations always returns a result: the model's picks when
// it produces at least one item, otherwise the curated list for the
// resolved mood category.
func (e *Engine) GetMovieRecommendations(ctx context.Context, req domain.MovieRequest) domain.MovieRecommendationResult {
	result, reason := e.aiMovies(ctx, req)
	if reason != "" {
		category := e.resolver.Resolve(req.DominantMood, req.MoodScore)
		result = e.moods.Recommendation(category, req.DominantMood)
		metrics.RecordFallback(result.Category, reason)
		e.logger.Info("Using fallback movie recommendations",
			zap.String("operation", opMovieRecommendation),
			zap.String("user_id", req.UserID),
			zap.String("category", result.Category),
			zap.String("reason", reason),
		)
	}

	if e.posters != nil {
		e.posters.Enrich(ctx, result.Items)
	}

	metrics.RecordRequest(opMovieRecommendation, nil)
	return result
}

// aiMovies returns the AI result, or a non-empty fallback reason.
func (e *Engine) aiMovies(ctx context.Context, req domain.MovieRequest) (domain.MovieRecommendationResult, string) {
	if !e.Configured() {
		return domain.MovieRecommendationResult{}, reasonUnconfigured
	}

	gen := e.generator.Generate(ctx, e.prompts.MovieRecommendation(req), ai.PresetCreative)
	if !gen.OK() {
		e.logger.Warn("AI movie recommendations failed",
			zap.String("operation", opMovieRecommendation),
			zap.String("user_id", req.UserID),
			zap.String("status", gen.Status.String()),
			zap.Error(gen.Err),
		)
		if gen.Status == ai.GenerationUnavailable {
			return domain.MovieRecommendationResult{}, reasonUnconfigured
		}
		return domain.MovieRecommendationResult{}, reasonFailed
	}

	result, err := ParseMovies(gen.Text, req.DominantMood)
	if err != nil {
		e.logger.Warn("AI movie response malformed",
			zap.String("operation", opMovieRecommendation),
			zap.String("user_id", req.UserID),
			zap.String("provider", gen.Provider),
			zap.String("preview", util.TruncateString(gen.Text, 120)),
			zap.Error(err),
		)
		return domain.MovieRecommendationResult{}, reasonMalformed
	}
	if len(result.Items) == 0 {
		return domain.MovieRecommendationResult{}, reasonNoItems
	}

	e.logger.Info("AI movie recommendations ready",
		zap.String("operation", opMovieRecommendation),
		zap.String("user_id", req.UserID),
		zap.String("provider", gen.Provider),
		zap.Int("items", len(result.Items)),
	)
	return result, ""
}
