package domain

// CategoryAIGenerated marks recommendations that came from the model.
const CategoryAIGenerated = "ai-generated"

type MovieItem struct {
	Title     string   `json:"title" yaml:"title"`
	Year      int      `json:"year" yaml:"year"`
	Tagline   string   `json:"tagline" yaml:"tagline"`
	IMDbID    string   `json:"imdb_id,omitempty" yaml:"imdb_id"`
	Genres    []string `json:"genres" yaml:"genres"`
	Reason    string   `json:"reason" yaml:"reason"`
	PosterURL string   `json:"poster_url,omitempty" yaml:"-"`
}

// MovieRecommendationResult carries either AI picks (Category "ai-generated")
// or a curated list keyed by the resolved mood category.
type MovieRecommendationResult struct {
	Category    string      `json:"category"`
	MoodLabel   string      `json:"mood_label"`
	Headline    string      `json:"headline"`
	Description string      `json:"description"`
	Items       []MovieItem `json:"items"`
}

// IsAIGenerated reports whether the result came from the model.
func (r MovieRecommendationResult) IsAIGenerated() bool {
	return r.Category == CategoryAIGenerated
}

// MovieRequest carries the mood context. A nil MoodScore means no score was supplied.
type MovieRequest struct {
	UserID       string   `json:"user_id" validate:"required"`
	DominantMood string   `json:"dominant_mood"`
	MoodScore    *int     `json:"mood_score,omitempty"`
	Summary      string   `json:"summary"`
	Highlights   []string `json:"highlights"`
	Affirmation  string   `json:"affirmation"`
}
