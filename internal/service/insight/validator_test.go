package insight

import (
	"reflect"
	"testing"

	"github.com/kapu/journal-insight-go/internal/domain"
	"github.com/kapu/journal-insight-go/pkg/errors"
)

func TestParseAnalysisDegradesOnInvalidJSON(t *testing.T) {
	result, mismatch := ParseAnalysis("  {not json  ")
	if !errors.Is(mismatch, errors.CodeSchemaMismatch) {
		t.Fatalf("expected schema mismatch, got %v", mismatch)
	}
	if result.Summary != "{not json" {
		t.Fatalf("expected trimmed raw summary, got %q", result.Summary)
	}
	if result.DominantMood != domain.MoodUnknown || result.MoodScore != 0 {
		t.Fatalf("expected neutral mood, got %q/%d", result.DominantMood, result.MoodScore)
	}
	if result.Highlights == nil || len(result.Highlights) != 0 || len(result.Advice) != 0 {
		t.Fatalf("expected empty lists, got %+v", result)
	}
}

func TestParseAnalysisEmptyResponse(t *testing.T) {
	result, mismatch := ParseAnalysis("")
	if mismatch == nil {
		t.Fatalf("expected mismatch for empty response")
	}
	if result.Summary != "Tidak ada tanggapan dari AI." {
		t.Fatalf("unexpected summary %q", result.Summary)
	}
}

func TestParseAnalysisBlankResponseKeepsTrimmedText(t *testing.T) {
	result, mismatch := ParseAnalysis("   \n\t ")
	if mismatch == nil {
		t.Fatalf("expected mismatch for blank response")
	}
	if result.Summary != "" {
		t.Fatalf("expected empty trimmed summary, got %q", result.Summary)
	}
	if result.DominantMood != domain.MoodUnknown {
		t.Fatalf("expected unknown mood, got %q", result.DominantMood)
	}
}

func TestParseMoviesBoundsYear(t *testing.T) {
	raw := `{"movies":[
		{"title":"Huge","year":1e300},
		{"title":"Negative","year":-5},
		{"title":"Fractional","year":"2019.7"},
		{"title":"Text","year":"soon"}
	]}`

	result, err := ParseMovies(raw, "senang")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{0, 0, 2019, 0}
	if len(result.Items) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(result.Items))
	}
	for i, year := range want {
		if result.Items[i].Year != year {
			t.Fatalf("item %d (%s): expected year %d, got %d", i, result.Items[i].Title, year, result.Items[i].Year)
		}
	}
}

func TestParseAnalysis(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want domain.AnalysisResult
	}{
		{
			name: "full object",
			raw: `{"summary":"Hari yang produktif.","dominantMood":"senang","moodScore":82,
				"highlights":["Lari pagi"],"advice":["Tidur cukup"],"affirmation":"Kamu hebat."}`,
			want: domain.AnalysisResult{
				Summary: "Hari yang produktif.", DominantMood: "senang", MoodScore: 82,
				Highlights: []string{"Lari pagi"}, Advice: []string{"Tidur cukup"}, Affirmation: "Kamu hebat.",
			},
		},
		{
			name: "missing keys get defaults",
			raw:  `{"summary":"Singkat."}`,
			want: domain.AnalysisResult{
				Summary: "Singkat.", DominantMood: "unknown",
				Highlights: []string{}, Advice: []string{},
			},
		},
		{
			name: "fenced with string score and mixed list",
			raw:  "```json\n{\"dominantMood\":\"lelah\",\"moodScore\":\"35.6\",\"highlights\":[\"a\", 3, \" \", \"b\"],\"advice\":\"istirahat\"}\n```",
			want: domain.AnalysisResult{
				DominantMood: "lelah", MoodScore: 36,
				Highlights: []string{"a", "b"}, Advice: []string{"istirahat"},
			},
		},
		{
			name: "prose around object and clamped score",
			raw:  `Berikut hasilnya: {"dominantMood":"gembira","moodScore":140} semoga membantu`,
			want: domain.AnalysisResult{
				DominantMood: "gembira", MoodScore: 100,
				Highlights: []string{}, Advice: []string{},
			},
		},
		{
			name: "negative score and wrong types",
			raw:  `{"summary":5,"dominantMood":null,"moodScore":-4,"highlights":{"x":1}}`,
			want: domain.AnalysisResult{
				DominantMood: "unknown",
				Highlights:   []string{}, Advice: []string{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, mismatch := ParseAnalysis(tt.raw)
			if mismatch != nil {
				t.Fatalf("unexpected mismatch: %v", mismatch)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestParseAnalysisRejectsNonObject(t *testing.T) {
	for _, raw := range []string{`"just text"`, `[1,2]`, `null`} {
		result, mismatch := ParseAnalysis(raw)
		if mismatch == nil {
			t.Fatalf("expected mismatch for %s", raw)
		}
		if result.Summary != raw {
			t.Fatalf("expected raw summary for %s, got %q", raw, result.Summary)
		}
	}
}

func TestParseMovies(t *testing.T) {
	raw := `{
		"category": "joyful",
		"headline": "",
		"movies": [
			{"title":"Paddington 2","year":2017,"tagline":"Hangat","imdbId":"tt4468740",
			 "genres":["Keluarga","Komedi","Petualangan","Fantasi"],"reason":"Ceria."},
			{"year":"1994","imdbId":null},
			"not an object"
		]
	}`

	result, err := ParseMovies(raw, "  Senang ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Category != domain.CategoryAIGenerated {
		t.Fatalf("expected ai-generated category, got %q", result.Category)
	}
	if result.MoodLabel != "Senang" {
		t.Fatalf("expected trimmed mood label, got %q", result.MoodLabel)
	}
	if result.Headline != "Rekomendasi Film untuk Minggu Ini" {
		t.Fatalf("expected default headline, got %q", result.Headline)
	}
	if result.Description != "Film-film yang dipilih khusus berdasarkan mood mingguan kamu." {
		t.Fatalf("expected default description, got %q", result.Description)
	}
	if len(result.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(result.Items))
	}

	first := result.Items[0]
	if first.IMDbID != "tt4468740" || first.Year != 2017 || len(first.Genres) != 3 {
		t.Fatalf("unexpected first item %+v", first)
	}

	second := result.Items[1]
	if second.Title != "Unknown" || second.Reason != "Film yang cocok untuk mood kamu." {
		t.Fatalf("expected defaults on second item, got %+v", second)
	}
	if second.Year != 1994 || second.IMDbID != "" || second.Genres == nil {
		t.Fatalf("unexpected second item %+v", second)
	}
}

func TestParseMoviesFailsOnInvalidJSON(t *testing.T) {
	if _, err := ParseMovies("maaf, saya tidak bisa", "senang"); !errors.Is(err, errors.CodeSchemaMismatch) {
		t.Fatalf("expected schema mismatch, got %v", err)
	}
}

func TestParseMoviesWithoutMovies(t *testing.T) {
	result, err := ParseMovies(`{"movies":"none"}`, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Items) != 0 {
		t.Fatalf("expected no items, got %d", len(result.Items))
	}
}
