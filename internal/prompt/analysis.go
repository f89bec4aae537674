package prompt

import (
	"strings"
	"time"

	"github.com/kapu/journal-insight-go/internal/constants"
	"github.com/kapu/journal-insight-go/internal/domain"
	"github.com/kapu/journal-insight-go/internal/util"
)

const (
	untitledNote = "Tanpa judul"
	emptyNote    = "(tidak ada isi)"
	noneListed   = "Tidak ada"
	noteTime     = "2006-01-02 15:04"
)

// NewDailyPromptData converts notes into template data.
func NewDailyPromptData(date string, notes []domain.JournalNote) DailyPromptData {
	views := make([]NoteView, 0, len(notes))
	for _, note := range notes {
		views = append(views, NoteView{
			Time:  formatNoteTime(note.CreatedAt),
			Title: orDefault(note.Title, untitledNote),
			Body:  orDefault(note.Body, emptyNote),
		})
	}
	return DailyPromptData{Date: date, Notes: views}
}

// NewWeeklyPromptData converts daily summaries into template data.
func NewWeeklyPromptData(weekStart, weekEnd string, days []domain.DailySummary) WeeklyPromptData {
	views := make([]DaySummaryView, 0, len(days))
	for _, day := range days {
		views = append(views, DaySummaryView{
			Date:         day.Date,
			Summary:      day.Summary,
			DominantMood: day.DominantMood,
			MoodScore:    day.MoodScore,
			Highlights:   joinOrNone(day.Highlights),
			Advice:       joinOrNone(day.Advice),
		})
	}
	return WeeklyPromptData{WeekStart: weekStart, WeekEnd: weekEnd, Days: views}
}

// NewMoviePromptData trims the request context. Only the first highlights are kept.
func NewMoviePromptData(req domain.MovieRequest) MoviePromptData {
	data := MoviePromptData{
		Mood:        strings.TrimSpace(req.DominantMood),
		Summary:     strings.TrimSpace(req.Summary),
		Highlights:  util.FirstN(util.CompactStrings(req.Highlights), constants.TextLimits.Highlights),
		Affirmation: strings.TrimSpace(req.Affirmation),
	}
	if req.MoodScore != nil {
		data.MoodScore = *req.MoodScore
	}
	return data
}

// DailyAnalysis renders the daily prompt, using the inline fallback if the template fails.
func (pb *PromptBuilder) DailyAnalysis(date string, notes []domain.JournalNote) string {
	data := NewDailyPromptData(date, notes)
	if rendered, err := pb.Render(TemplateDailyAnalysis, data); err == nil {
		return rendered
	}
	return FallbackDailyPrompt(data)
}

func (pb *PromptBuilder) WeeklyAnalysis(weekStart, weekEnd string, days []domain.DailySummary) string {
	data := NewWeeklyPromptData(weekStart, weekEnd, days)
	if rendered, err := pb.Render(TemplateWeeklyAnalysis, data); err == nil {
		return rendered
	}
	return FallbackWeeklyPrompt(data)
}

func (pb *PromptBuilder) MovieRecommendation(req domain.MovieRequest) string {
	data := NewMoviePromptData(req)
	if rendered, err := pb.Render(TemplateMovieRecommendation, data); err == nil {
		return rendered
	}
	return FallbackMoviePrompt(data)
}

func formatNoteTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return util.FormatWIB(t, noteTime)
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return noneListed
	}
	return strings.Join(values, "; ")
}
