package insight

import (
	"context"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"

	"github.com/kapu/journal-insight-go/internal/domain"
	"github.com/kapu/journal-insight-go/internal/metrics"
	"github.com/kapu/journal-insight-go/internal/service/journal"
	"github.com/kapu/journal-insight-go/internal/util"
	"github.com/kapu/journal-insight-go/pkg/errors"
)

// BuildWeeklyReport analyses each day of the week that has notes, then the
// week as a whole, then picks movies for the weekly mood. Days whose
// analysis fails are skipped. Nothing is persisted.
func (e *Engine) BuildWeeklyReport(ctx context.Context, userID, weekStart string) (report domain.WeeklyReport, err error) {
	defer func() { metrics.RecordRequest(opWeeklyReport, err) }()

	if !e.Configured() {
		return domain.WeeklyReport{}, errors.NewServiceUnavailable("Gemini API not configured", "gemini")
	}
	if e.journal == nil {
		return domain.WeeklyReport{}, errors.NewServiceUnavailable("Journal store not configured", "postgres")
	}

	start, parseErr := util.ParseDay(weekStart)
	if parseErr != nil {
		return domain.WeeklyReport{}, errors.NewInvalidArgument("week_start must be YYYY-MM-DD",
			map[string]any{"week_start": weekStart})
	}
	end := start.AddDate(0, 0, 7)
	weekEnd := util.DayKey(end.AddDate(0, 0, -1))

	notes, loadErr := e.journal.NotesBetween(ctx, userID, start, end)
	if loadErr != nil {
		return domain.WeeklyReport{}, errors.NewInternal("Failed to load journal notes", opWeeklyReport, loadErr)
	}

	days := journal.GroupByDay(notes)
	e.logger.Info("Building weekly report",
		zap.String("operation", opWeeklyReport),
		zap.String("user_id", userID),
		zap.String("week_start", weekStart),
		zap.Int("notes", len(notes)),
		zap.Int("days", len(days)),
	)

	summaries := e.analyzeDays(ctx, userID, days)

	weekly, err := e.AnalyzeWeekly(ctx, domain.WeeklyRequest{
		UserID:         userID,
		WeekStart:      weekStart,
		WeekEnd:        weekEnd,
		DailySummaries: summaries,
	})
	if err != nil {
		return domain.WeeklyReport{}, err
	}

	movieReq := domain.MovieRequest{
		UserID:       userID,
		DominantMood: weekly.DominantMood,
		Summary:      weekly.Summary,
		Highlights:   weekly.Highlights,
		Affirmation:  weekly.Affirmation,
	}
	if weekly.MoodScore > 0 {
		score := weekly.MoodScore
		movieReq.MoodScore = &score
	}

	return domain.WeeklyReport{
		UserID:    userID,
		WeekStart: weekStart,
		WeekEnd:   weekEnd,
		NoteCount: len(notes),
		Daily:     summaries,
		Weekly:    weekly,
		Movies:    e.GetMovieRecommendations(ctx, movieReq),
	}, nil
}

// analyzeDays runs the daily analysis for each day on a bounded pool and
// returns the successful summaries in date order.
func (e *Engine) analyzeDays(ctx context.Context, userID string, days []journal.DayNotes) []domain.DailySummary {
	results := make([]*domain.DailySummary, len(days))
	p := pool.New().WithMaxGoroutines(e.reportConcurrency)

	for idx, day := range days {
		p.Go(func() {
			result, err := e.AnalyzeDaily(ctx, domain.DailyRequest{
				UserID: userID,
				Date:   day.Date,
				Notes:  day.Notes,
			})
			if err != nil {
				e.logger.Warn("Skipping day in weekly report",
					zap.String("operation", opWeeklyReport),
					zap.String("user_id", userID),
					zap.String("date", day.Date),
					zap.Error(err),
				)
				return
			}
			results[idx] = &domain.DailySummary{
				Date:         day.Date,
				Summary:      result.Summary,
				DominantMood: result.DominantMood,
				MoodScore:    result.MoodScore,
				Highlights:   result.Highlights,
				Advice:       result.Advice,
			}
		})
	}
	p.Wait()

	summaries := make([]domain.DailySummary, 0, len(days))
	for _, summary := range results {
		if summary != nil {
			summaries = append(summaries, *summary)
		}
	}
	return summaries
}
