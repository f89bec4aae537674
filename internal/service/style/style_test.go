package style

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/kapu/journal-insight-go/internal/domain"
	"github.com/kapu/journal-insight-go/pkg/errors"
)

const epsilon = 1e-9

func newTestAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	analyzer, err := NewDefaultAnalyzer()
	if err != nil {
		t.Fatalf("NewDefaultAnalyzer: %v", err)
	}
	return analyzer
}

func TestDefaultCatalogOrder(t *testing.T) {
	catalog, err := DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog: %v", err)
	}
	authors := catalog.Authors()
	if len(authors) != 10 {
		t.Fatalf("expected 10 authors, got %d", len(authors))
	}
	if authors[0].Name != "Ernest Hemingway" || authors[9].Name != "A Twitter User" {
		t.Fatalf("unexpected catalog order: first=%s last=%s", authors[0].Name, authors[9].Name)
	}
	if authors[3].AvgWordLength != 5.5 || authors[3].Nationality != "🇮🇩 Indonesian" {
		t.Fatalf("unexpected profile %+v", authors[3])
	}
}

func TestLoadCatalogRejectsSmallCatalog(t *testing.T) {
	_, err := LoadCatalog([]byte("authors:\n  - name: Solo\n    vocabulary_richness: 0.5\n"))
	if err == nil {
		t.Fatalf("expected error for undersized catalog")
	}
}

func TestExtractFingerprint(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	f, err := analyzer.Fingerprint("Saya suka kopi. Kopi itu enak sekali! Apakah kamu suka kopi juga?")
	if err != nil {
		t.Fatalf("Fingerprint: %v", err)
	}

	if f.TotalWords != 12 || f.TotalSentences != 3 {
		t.Fatalf("unexpected totals %d/%d", f.TotalWords, f.TotalSentences)
	}
	checks := []struct {
		name      string
		got, want float64
	}{
		{"avg sentence length", f.AvgSentenceLength, 4},
		{"vocabulary richness", f.VocabularyRichness, 0.75},
		{"punctuation density", f.PunctuationDensity, 25},
		{"avg word length", f.AvgWordLength, 4.25},
		{"exclamation ratio", f.ExclamationRatio, 1.0 / 3},
		{"question ratio", f.QuestionRatio, 1.0 / 3},
	}
	for _, c := range checks {
		if math.Abs(c.got-c.want) > epsilon {
			t.Errorf("%s: expected %v, got %v", c.name, c.want, c.got)
		}
	}
	if f.Language != domain.LanguageIndonesian {
		t.Fatalf("expected indonesian, got %s", f.Language)
	}

	wantTerms := []string{"kopi (3x)", "suka (2x)", "enak (1x)", "sekali (1x)", "apakah (1x)"}
	if got := f.TopTermLabels(); !reflect.DeepEqual(got, wantTerms) {
		t.Fatalf("expected %v, got %v", wantTerms, got)
	}
}

func TestVocabularyRichnessWithinUnitInterval(t *testing.T) {
	analyzer := newTestAnalyzer(t)
	texts := []string{
		strings.Repeat("sama sama sama sama. ", 5),
		"Every single word in this sentence happens to be completely unique here.",
	}
	for _, text := range texts {
		f, err := analyzer.Fingerprint(text)
		if err != nil {
			t.Fatalf("Fingerprint(%q): %v", text, err)
		}
		if f.VocabularyRichness < 0 || f.VocabularyRichness > 1 {
			t.Fatalf("richness out of range: %v", f.VocabularyRichness)
		}
	}
}

func TestSimilarityExactAndPartialMatch(t *testing.T) {
	hemingway := domain.AuthorProfile{
		AvgSentenceLength:  12,
		VocabularyRichness: 0.45,
		PunctuationDensity: 8,
		AvgWordLength:      4.2,
	}

	exact := domain.StyleFingerprint{AvgSentenceLength: 12, VocabularyRichness: 0.45, PunctuationDensity: 8, AvgWordLength: 4.2}
	if got := Similarity(exact, hemingway); math.Abs(got-100) > epsilon {
		t.Fatalf("expected 100, got %v", got)
	}

	// Sentence length 30 words away drops the whole 0.30 term.
	farSentences := exact
	farSentences.AvgSentenceLength = 42
	if got := Similarity(farSentences, hemingway); math.Abs(got-70) > 1e-6 {
		t.Fatalf("expected 70, got %v", got)
	}

	// Half the span on punctuation costs half of its 0.20 weight.
	halfPunct := exact
	halfPunct.PunctuationDensity = 18
	if got := Similarity(halfPunct, hemingway); math.Abs(got-90) > 1e-6 {
		t.Fatalf("expected 90, got %v", got)
	}
}

func TestSimilarityBounds(t *testing.T) {
	catalog, err := DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog: %v", err)
	}
	extremes := []domain.StyleFingerprint{
		{},
		{AvgSentenceLength: 1000, VocabularyRichness: 1, PunctuationDensity: 1000, AvgWordLength: 100},
		{AvgSentenceLength: 15, VocabularyRichness: 0.5, PunctuationDensity: 10, AvgWordLength: 4.5},
	}
	for _, f := range extremes {
		for _, author := range catalog.Authors() {
			got := Similarity(f, author)
			if got < 0 || got > 100 {
				t.Fatalf("similarity %v out of range for %s", got, author.Name)
			}
		}
	}
}

func TestRankIsDeterministicAndStable(t *testing.T) {
	twin := domain.AuthorProfile{AvgSentenceLength: 10, VocabularyRichness: 0.5, PunctuationDensity: 10, AvgWordLength: 4}
	first, second := twin, twin
	first.Name = "First Twin"
	second.Name = "Second Twin"
	far := domain.AuthorProfile{Name: "Far", AvgSentenceLength: 40, VocabularyRichness: 0.9, PunctuationDensity: 30, AvgWordLength: 7}

	matcher := NewMatcher(&Catalog{authors: []domain.AuthorProfile{far, first, second}})
	f := domain.StyleFingerprint{AvgSentenceLength: 10, VocabularyRichness: 0.5, PunctuationDensity: 10, AvgWordLength: 4}

	ranked := matcher.Rank(f)
	again := matcher.Rank(f)
	if !reflect.DeepEqual(ranked, again) {
		t.Fatalf("expected identical rankings")
	}

	names := []string{ranked[0].Author.Name, ranked[1].Author.Name, ranked[2].Author.Name}
	want := []string{"First Twin", "Second Twin", "Far"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
}

func TestAnalyzeTopMatchFollowsFormula(t *testing.T) {
	analyzer := newTestAnalyzer(t)
	texts := []string{
		"Pagi ini aku berjalan ke pasar. Udara terasa segar dan langit biru cerah.",
		"Sore harinya aku membaca buku di teras rumah. Angin berhembus pelan, sangat menenangkan!",
	}

	result, err := analyzer.Analyze(texts)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	f := result.Fingerprint
	best, bestScore := "", -1.0
	for _, a := range analyzer.Catalog().Authors() {
		score := 100 * (0.30*math.Max(0, 1-math.Abs(f.AvgSentenceLength-a.AvgSentenceLength)/30) +
			0.25*math.Max(0, 1-math.Abs(f.VocabularyRichness-a.VocabularyRichness)) +
			0.20*math.Max(0, 1-math.Abs(f.PunctuationDensity-a.PunctuationDensity)/20) +
			0.25*math.Max(0, 1-math.Abs(f.AvgWordLength-a.AvgWordLength)/3))
		if score > bestScore {
			best, bestScore = a.Name, score
		}
	}

	if result.TopMatch.Author.Name != best {
		t.Fatalf("expected top match %s, got %s", best, result.TopMatch.Author.Name)
	}
	if math.Abs(result.TopMatch.Similarity-bestScore) > 1e-6 {
		t.Fatalf("expected score %v, got %v", bestScore, result.TopMatch.Similarity)
	}
	if len(result.OtherMatches) != 4 {
		t.Fatalf("expected 4 runner-ups, got %d", len(result.OtherMatches))
	}
	for _, m := range result.OtherMatches {
		if m.Similarity > result.TopMatch.Similarity {
			t.Fatalf("runner-up %s outranks top match", m.Author.Name)
		}
	}
}

func TestAnalyzeInsufficientText(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	cases := [][]string{
		nil,
		{"Pendek.", "Juga pendek."},
		{strings.Repeat("a", 20), strings.Repeat("b", 20)},
	}
	for _, texts := range cases {
		_, err := analyzer.Analyze(texts)
		if !errors.Is(err, errors.CodeInvalidArgument) {
			t.Fatalf("expected InvalidArgument for %v, got %v", texts, err)
		}
	}
}
