package insight

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/kapu/journal-insight-go/internal/constants"
	"github.com/kapu/journal-insight-go/internal/domain"
	"github.com/kapu/journal-insight-go/internal/util"
	"github.com/kapu/journal-insight-go/pkg/errors"
)

const (
	emptyResponseSummary = "Tidak ada tanggapan dari AI."
	maxReleaseYear       = 3000

	defaultMovieTitle       = "Unknown"
	defaultMovieReason      = "Film yang cocok untuk mood kamu."
	defaultMovieHeadline    = "Rekomendasi Film untuk Minggu Ini"
	defaultMovieDescription = "Film-film yang dipilih khusus berdasarkan mood mingguan kamu."
)

type fields map[string]json.RawMessage

// ParseAnalysis maps a raw model response onto an AnalysisResult. It never
// fails: a response that is not a JSON object degrades to a result whose
// summary echoes the raw text. The returned error is a SchemaMismatch
// describing the degrade and is meant for logging only.
func ParseAnalysis(raw string) (domain.AnalysisResult, error) {
	obj, err := decodeObject(raw)
	if err != nil {
		summary := emptyResponseSummary
		if raw != "" {
			summary = strings.TrimSpace(raw)
		}
		return domain.AnalysisResult{
			Summary:      summary,
			DominantMood: domain.MoodUnknown,
			Highlights:   []string{},
			Advice:       []string{},
		}, errors.NewSchemaMismatch("analysis response is not a JSON object", err)
	}

	dominant := obj.str("dominantMood")
	if dominant == "" {
		dominant = domain.MoodUnknown
	}

	return domain.AnalysisResult{
		Summary:      obj.str("summary"),
		DominantMood: dominant,
		MoodScore:    clampScore(obj.number("moodScore")),
		Highlights:   obj.strs("highlights"),
		Advice:       obj.strs("advice"),
		Affirmation:  obj.str("affirmation"),
	}, nil
}

// ParseMovies maps a raw model response onto an AI recommendation. Unlike
// ParseAnalysis it fails on a non-object response so the caller can fall back.
func ParseMovies(raw, mood string) (domain.MovieRecommendationResult, error) {
	obj, err := decodeObject(raw)
	if err != nil {
		return domain.MovieRecommendationResult{}, errors.NewSchemaMismatch("movie response is not a JSON object", err)
	}

	var entries []json.RawMessage
	if rawMovies, ok := obj["movies"]; ok {
		// a non-array value leaves entries empty
		_ = json.Unmarshal(rawMovies, &entries)
	}

	items := make([]domain.MovieItem, 0, len(entries))
	for _, entry := range entries {
		var movie fields
		if err := json.Unmarshal(entry, &movie); err != nil || movie == nil {
			continue
		}
		items = append(items, domain.MovieItem{
			Title:   movie.strOr("title", defaultMovieTitle),
			Year:    clampYear(movie.number("year")),
			Tagline: movie.str("tagline"),
			IMDbID:  movie.str("imdbId"),
			Genres:  capGenres(movie.strs("genres")),
			Reason:  movie.strOr("reason", defaultMovieReason),
		})
	}

	return domain.MovieRecommendationResult{
		Category:    domain.CategoryAIGenerated,
		MoodLabel:   strings.TrimSpace(mood),
		Headline:    obj.strOr("headline", defaultMovieHeadline),
		Description: obj.strOr("description", defaultMovieDescription),
		Items:       items,
	}, nil
}

// decodeObject parses raw as a JSON object, tolerating markdown fences and
// prose around the outermost braces.
func decodeObject(raw string) (fields, error) {
	cleaned := stripCodeFence(strings.TrimSpace(raw))
	if cleaned == "" {
		return nil, fmt.Errorf("empty response")
	}

	var obj fields
	err := json.Unmarshal([]byte(cleaned), &obj)
	if err == nil && obj != nil {
		return obj, nil
	}

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start >= 0 && end > start {
		obj = nil
		if retryErr := json.Unmarshal([]byte(cleaned[start:end+1]), &obj); retryErr == nil && obj != nil {
			return obj, nil
		}
	}

	if err == nil {
		err = fmt.Errorf("response is JSON null")
	}
	return nil, err
}

func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		// drop the language tag line
		s = s[nl+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func (f fields) str(key string) string {
	raw, ok := f[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return strings.TrimSpace(s)
}

func (f fields) strOr(key, fallback string) string {
	if s := f.str(key); s != "" {
		return s
	}
	return fallback
}

// number accepts JSON numbers and numeric strings.
func (f fields) number(key string) float64 {
	raw, ok := f[key]
	if !ok {
		return 0
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if n, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return n
		}
	}
	return 0
}

// strs accepts an array of strings or a single string. Blank and non-string
// entries are dropped.
func (f fields) strs(key string) []string {
	out := []string{}
	raw, ok := f[key]
	if !ok {
		return out
	}

	var values []any
	if err := json.Unmarshal(raw, &values); err != nil {
		if s := f.str(key); s != "" {
			out = append(out, s)
		}
		return out
	}
	for _, v := range values {
		if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
			out = append(out, strings.TrimSpace(s))
		}
	}
	return out
}

func clampScore(n float64) int {
	if math.IsNaN(n) {
		return 0
	}
	if n > math.MaxInt32 || n < math.MinInt32 {
		n = math.Copysign(math.MaxInt32, n)
	}
	return util.ClampInt(int(math.Round(n)), 0, 100)
}

// clampYear maps anything outside a plausible release year to 0 (unknown).
func clampYear(n float64) int {
	if math.IsNaN(n) || n < 0 || n > maxReleaseYear {
		return 0
	}
	return util.ClampInt(int(n), 0, maxReleaseYear)
}

func capGenres(genres []string) []string {
	if len(genres) > constants.TextLimits.MaxGenres {
		return genres[:constants.TextLimits.MaxGenres]
	}
	return genres
}
