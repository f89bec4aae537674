package prompt

import (
	"strings"
	"testing"
	"time"

	"github.com/kapu/journal-insight-go/internal/domain"
)

func intPtr(v int) *int { return &v }

func TestDailyAnalysisWithNotes(t *testing.T) {
	pb := NewPromptBuilder()
	notes := []domain.JournalNote{
		{CreatedAt: time.Date(2025, 11, 10, 1, 30, 0, 0, time.UTC), Title: "Pagi", Body: "Lari pagi di taman."},
		{CreatedAt: time.Date(2025, 11, 10, 13, 0, 0, 0, time.UTC), Body: "Rapat panjang."},
	}

	got := pb.DailyAnalysis("2025-11-10", notes)

	for _, want := range []string{
		"ditulis pada 2025-11-10",
		"Waktu: 2025-11-10 08:30\nJudul: Pagi\nIsi: Lari pagi di taman.",
		"\n\n---\n\n",
		"Judul: Tanpa judul",
		`"dominantMood": string`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected prompt to contain %q, got:\n%s", want, got)
		}
	}
}

func TestDailyAnalysisWithoutNotesStatesNoEntries(t *testing.T) {
	pb := NewPromptBuilder()

	got := pb.DailyAnalysis("2025-11-10", nil)
	if !strings.Contains(got, "Tidak ada catatan yang ditulis pada 2025-11-10") {
		t.Fatalf("expected explicit no-entries text, got:\n%s", got)
	}
	if strings.Contains(got, "Catatan:") {
		t.Fatalf("empty prompt must not contain a notes block")
	}
}

func TestTemplatesMatchInlineFallbacks(t *testing.T) {
	pb := NewPromptBuilder()
	notes := []domain.JournalNote{
		{CreatedAt: time.Date(2025, 11, 10, 1, 30, 0, 0, time.UTC), Title: "Pagi", Body: "Lari."},
		{Title: "Malam"},
	}
	days := []domain.DailySummary{
		{Date: "2025-11-10", Summary: "Hari produktif", DominantMood: "senang", MoodScore: 80, Highlights: []string{"lari", "rapat"}},
		{Date: "2025-11-11", Summary: "Capek", DominantMood: "lelah", MoodScore: 35, Advice: []string{"tidur cepat"}},
	}

	dailyCases := []DailyPromptData{NewDailyPromptData("2025-11-10", notes), NewDailyPromptData("2025-11-10", nil)}
	for _, data := range dailyCases {
		rendered, err := pb.Render(TemplateDailyAnalysis, data)
		if err != nil {
			t.Fatalf("Render daily: %v", err)
		}
		if rendered != FallbackDailyPrompt(data) {
			t.Fatalf("daily template and fallback differ:\n%s\n---\n%s", rendered, FallbackDailyPrompt(data))
		}
	}

	weeklyCases := []WeeklyPromptData{
		NewWeeklyPromptData("2025-11-10", "2025-11-16", days),
		NewWeeklyPromptData("2025-11-10", "2025-11-16", nil),
	}
	for _, data := range weeklyCases {
		rendered, err := pb.Render(TemplateWeeklyAnalysis, data)
		if err != nil {
			t.Fatalf("Render weekly: %v", err)
		}
		if rendered != FallbackWeeklyPrompt(data) {
			t.Fatalf("weekly template and fallback differ:\n%s\n---\n%s", rendered, FallbackWeeklyPrompt(data))
		}
	}
}

func TestWeeklyAnalysis(t *testing.T) {
	pb := NewPromptBuilder()

	got := pb.WeeklyAnalysis("2025-11-10", "2025-11-16", []domain.DailySummary{
		{Date: "2025-11-10", Summary: "Hari produktif", DominantMood: "senang", MoodScore: 80},
	})
	for _, want := range []string{
		"antara 2025-11-10 dan 2025-11-16",
		"Mood dominan: senang (skor: 80)",
		"Highlight: Tidak ada",
		"Saran: Tidak ada",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected prompt to contain %q, got:\n%s", want, got)
		}
	}

	empty := pb.WeeklyAnalysis("2025-11-10", "2025-11-16", nil)
	if !strings.Contains(empty, "Tidak ada aktivitas jurnal antara 2025-11-10 dan 2025-11-16") {
		t.Fatalf("expected explicit no-entries text, got:\n%s", empty)
	}
}

func TestMovieRecommendationContext(t *testing.T) {
	pb := NewPromptBuilder()

	got := pb.MovieRecommendation(domain.MovieRequest{
		DominantMood: " senang ",
		MoodScore:    intPtr(82),
		Summary:      "Minggu yang cerah",
		Highlights:   []string{"a", "b", "c", "d"},
		Affirmation:  "Kamu hebat",
	})

	want := "Mood dominan: senang\nSkor mood: 82/100\nRingkasan minggu: Minggu yang cerah\nHighlights: a, b, c\nAfirmasi: Kamu hebat\n\nBerikan 3"
	if !strings.Contains(got, want) {
		t.Fatalf("expected context block %q, got:\n%s", want, got)
	}
	if !strings.Contains(got, `"imdbId"`) {
		t.Fatalf("expected movie schema in prompt")
	}
}

func TestMovieRecommendationWithoutContext(t *testing.T) {
	pb := NewPromptBuilder()

	got := pb.MovieRecommendation(domain.MovieRequest{})
	if !strings.Contains(got, "berikut:\n\nMood tidak teridentifikasi\n\nBerikan 3") {
		t.Fatalf("expected unidentified mood line, got:\n%s", got)
	}
	if strings.Contains(got, "Skor mood") {
		t.Fatalf("absent score must not be rendered")
	}

	fallback := FallbackMoviePrompt(NewMoviePromptData(domain.MovieRequest{}))
	if !strings.Contains(fallback, "Mood tidak teridentifikasi") {
		t.Fatalf("fallback prompt lost the mood line")
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	if _, err := NewPromptBuilder().Render("missing.yaml", nil); err == nil {
		t.Fatalf("expected error for unknown template")
	}
}
