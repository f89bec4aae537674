// Package textproc turns raw journal text into tokens for style analysis.
package textproc

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/kapu/journal-insight-go/internal/constants"
	"github.com/kapu/journal-insight-go/internal/domain"
	"github.com/kapu/journal-insight-go/pkg/errors"
)

// Document is the tokenized form of one text.
type Document struct {
	Language         domain.Language
	Sentences        []string
	Words            []string
	ContentWords     []string
	PunctuationCount int
	ExclamationCount int
	QuestionCount    int
}

type Preprocessor struct {
	lexicon *Lexicon
}

func NewPreprocessor(lexicon *Lexicon) *Preprocessor {
	return &Preprocessor{lexicon: lexicon}
}

// Preprocess tokenizes text. Text shorter than the minimum, or text with no
// extractable sentences or words, is rejected with an InvalidArgument error.
func (p *Preprocessor) Preprocess(text string) (*Document, error) {
	length := utf8.RuneCountInString(strings.TrimSpace(text))
	if length < constants.TextLimits.MinAnalysisChars {
		return nil, errors.NewInsufficientText(length, constants.TextLimits.MinAnalysisChars)
	}

	sentences := SplitSentences(text)
	words := ExtractWords(text)
	if len(sentences) == 0 || len(words) == 0 {
		return nil, errors.NewInvalidArgument("Could not analyze the provided text", map[string]any{
			"sentences": len(sentences),
			"words":     len(words),
		})
	}

	doc := &Document{
		Language:         p.DetectLanguage(words),
		Sentences:        sentences,
		Words:            words,
		ContentWords:     p.contentWords(words),
		ExclamationCount: strings.Count(text, "!"),
		QuestionCount:    strings.Count(text, "?"),
	}
	for _, r := range text {
		if isPunctuation(r) {
			doc.PunctuationCount++
		}
	}
	return doc, nil
}

// DetectLanguage compares stopword hits per language. Particles add two extra
// hits each toward Indonesian. Equal counts, including zero, yield mixed.
func (p *Preprocessor) DetectLanguage(words []string) domain.Language {
	if len(words) == 0 {
		return domain.LanguageUnknown
	}

	var idCount, enCount int
	for _, w := range words {
		if p.lexicon.indonesian.has(w) {
			idCount++
		}
		if p.lexicon.english.has(w) {
			enCount++
		}
		if p.lexicon.particles.has(w) {
			idCount += 2
		}
	}

	switch {
	case idCount > enCount:
		return domain.LanguageIndonesian
	case enCount > idCount:
		return domain.LanguageEnglish
	default:
		return domain.LanguageMixed
	}
}

func (p *Preprocessor) contentWords(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if len(w) < constants.TextLimits.MinContentLength || p.lexicon.IsStopword(w) {
			continue
		}
		out = append(out, w)
	}
	return out
}

// SplitSentences splits on runs of '.', '!' and '?' and drops blank segments.
func SplitSentences(text string) []string {
	parts := strings.FieldsFunc(text, isSentenceTerminator)
	sentences := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}
	return sentences
}

// ExtractWords returns the lowercased words of text. A word is a run of word
// characters made only of ASCII letters; runs touching digits, underscores or
// non-ASCII letters are skipped whole.
func ExtractWords(text string) []string {
	lower := strings.ToLower(text)
	words := make([]string, 0, len(lower)/5)

	start := -1
	asciiOnly := true
	flush := func(end int) {
		if start >= 0 && asciiOnly {
			words = append(words, lower[start:end])
		}
		start = -1
		asciiOnly = true
	}

	for i, r := range lower {
		if !isWordRune(r) {
			flush(i)
			continue
		}
		if start < 0 {
			start = i
		}
		if !isASCIILetter(r) {
			asciiOnly = false
		}
	}
	flush(len(lower))
	return words
}

func isSentenceTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func isPunctuation(r rune) bool {
	switch r {
	case '.', ',', ';', ':', '!', '?', '-', '\'', '"', '(', ')', '—':
		return true
	}
	return false
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
