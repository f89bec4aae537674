package textproc

import (
	"reflect"
	"strings"
	"testing"

	"github.com/kapu/journal-insight-go/internal/domain"
	"github.com/kapu/journal-insight-go/pkg/errors"
)

func newTestPreprocessor(t *testing.T) *Preprocessor {
	t.Helper()
	lexicon, err := DefaultLexicon()
	if err != nil {
		t.Fatalf("DefaultLexicon: %v", err)
	}
	return NewPreprocessor(lexicon)
}

func TestPreprocessRejectsShortText(t *testing.T) {
	p := newTestPreprocessor(t)

	inputs := []string{
		"",
		"Hari ini hujan.",
		"   " + strings.Repeat("a", 49) + "   ",
		strings.Repeat("!", 30),
	}
	for _, input := range inputs {
		_, err := p.Preprocess(input)
		if !errors.Is(err, errors.CodeInvalidArgument) {
			t.Fatalf("expected InvalidArgument for %q, got %v", input, err)
		}
	}
}

func TestPreprocessRejectsTextWithoutWords(t *testing.T) {
	p := newTestPreprocessor(t)

	_, err := p.Preprocess(strings.Repeat("12345 67890. ", 6))
	if !errors.Is(err, errors.CodeInvalidArgument) {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}

func TestPreprocessCountsTokens(t *testing.T) {
	p := newTestPreprocessor(t)
	text := "Aku senang sekali hari ini! Apakah besok akan cerah? Semoga saja, (katanya) begitu."

	doc, err := p.Preprocess(text)
	if err != nil {
		t.Fatalf("Preprocess: %v", err)
	}
	if len(doc.Sentences) != 3 {
		t.Fatalf("expected 3 sentences, got %d: %v", len(doc.Sentences), doc.Sentences)
	}
	if len(doc.Words) != 13 {
		t.Fatalf("expected 13 words, got %d: %v", len(doc.Words), doc.Words)
	}
	if doc.ExclamationCount != 1 || doc.QuestionCount != 1 {
		t.Fatalf("unexpected !/? counts %d/%d", doc.ExclamationCount, doc.QuestionCount)
	}
	// ! ? , ( ) .
	if doc.PunctuationCount != 6 {
		t.Fatalf("expected 6 punctuation marks, got %d", doc.PunctuationCount)
	}
	if doc.Language != domain.LanguageIndonesian {
		t.Fatalf("expected indonesian, got %s", doc.Language)
	}
}

func TestSplitSentences(t *testing.T) {
	got := SplitSentences("Halo...  Apa kabar?!   . Baik")
	want := []string{"Halo", "Apa kabar", "Baik"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestExtractWordsWordBoundaries(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"Hello World", []string{"hello", "world"}},
		{"it's fine", []string{"it", "s", "fine"}},
		{"abc123 def", []string{"def"}},
		{"snake_case word", []string{"word"}},
		{"café latte", []string{"latte"}},
		{"well-known", []string{"well", "known"}},
	}
	for _, tt := range tests {
		if got := ExtractWords(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ExtractWords(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDetectLanguage(t *testing.T) {
	p := newTestPreprocessor(t)

	tests := []struct {
		name  string
		words []string
		want  domain.Language
	}{
		{"empty", nil, domain.LanguageUnknown},
		{"no stopwords", []string{"matahari", "sunset"}, domain.LanguageMixed},
		{"english", []string{"the", "cat", "is", "here"}, domain.LanguageEnglish},
		{"indonesian", []string{"aku", "dan", "kamu"}, domain.LanguageIndonesian},
		{"particle outweighs", []string{"the", "and", "sih"}, domain.LanguageIndonesian},
		{"tie", []string{"the", "yang"}, domain.LanguageMixed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.DetectLanguage(tt.words); got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestContentWordsDropStopwordsAndShortWords(t *testing.T) {
	p := newTestPreprocessor(t)

	got := p.contentWords([]string{"the", "ok", "journal", "yang", "hujan", "is"})
	want := []string{"journal", "hujan"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
