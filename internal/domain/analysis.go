package domain

import "time"

// MoodUnknown is the dominant mood reported when the model gave none.
const MoodUnknown = "unknown"

// AnalysisResult is a daily or weekly mood analysis.
type AnalysisResult struct {
	Summary      string   `json:"summary"`
	DominantMood string   `json:"dominant_mood"`
	MoodScore    int      `json:"mood_score"`
	Highlights   []string `json:"highlights"`
	Advice       []string `json:"advice"`
	Affirmation  string   `json:"affirmation"`
}

type JournalNote struct {
	CreatedAt time.Time `json:"created_at"`
	Title     string    `json:"title,omitempty"`
	Body      string    `json:"body,omitempty"`
}

// DailySummary is one analysed day fed into the weekly analysis.
type DailySummary struct {
	Date         string   `json:"date" validate:"required"`
	Summary      string   `json:"summary"`
	DominantMood string   `json:"dominant_mood"`
	MoodScore    int      `json:"mood_score" validate:"gte=0,lte=100"`
	Highlights   []string `json:"highlights"`
	Advice       []string `json:"advice"`
}

type DailyRequest struct {
	UserID string        `json:"user_id" validate:"required"`
	Date   string        `json:"date" validate:"required"`
	Notes  []JournalNote `json:"notes" validate:"dive"`
}

type WeeklyRequest struct {
	UserID         string         `json:"user_id" validate:"required"`
	WeekStart      string         `json:"week_start" validate:"required"`
	WeekEnd        string         `json:"week_end" validate:"required"`
	DailySummaries []DailySummary `json:"daily_summaries" validate:"dive"`
}

type WritingStyleRequest struct {
	UserID string   `json:"user_id" validate:"required"`
	Texts  []string `json:"texts"`
}

// WeeklyReport bundles the per-day analyses with the weekly summary and movies.
type WeeklyReport struct {
	UserID    string                    `json:"user_id"`
	WeekStart string                    `json:"week_start"`
	WeekEnd   string                    `json:"week_end"`
	NoteCount int                       `json:"note_count"`
	Daily     []DailySummary            `json:"daily"`
	Weekly    AnalysisResult            `json:"weekly"`
	Movies    MovieRecommendationResult `json:"movies"`
}
