package domain

import "fmt"

type Language string

const (
	LanguageIndonesian Language = "indonesian"
	LanguageEnglish    Language = "english"
	LanguageMixed      Language = "mixed"
	LanguageUnknown    Language = "unknown"
)

func (l Language) String() string {
	return string(l)
}

// TermCount is a content word and how often it appeared.
type TermCount struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// Label formats the term the way it is reported to callers, e.g. "hujan (3x)".
func (t TermCount) Label() string {
	return fmt.Sprintf("%s (%dx)", t.Term, t.Count)
}

// StyleFingerprint is the numeric summary of one body of text.
type StyleFingerprint struct {
	TotalWords         int         `json:"total_words"`
	TotalSentences     int         `json:"total_sentences"`
	AvgSentenceLength  float64     `json:"avg_sentence_length"`
	VocabularyRichness float64     `json:"vocabulary_richness"`
	PunctuationDensity float64     `json:"punctuation_density"`
	AvgWordLength      float64     `json:"avg_word_length"`
	Language           Language    `json:"language"`
	TopTerms           []TermCount `json:"top_terms"`
	ExclamationRatio   float64     `json:"exclamation_ratio"`
	QuestionRatio      float64     `json:"question_ratio"`
}

// TopTermLabels returns the top terms formatted with their counts.
func (f StyleFingerprint) TopTermLabels() []string {
	labels := make([]string, 0, len(f.TopTerms))
	for _, term := range f.TopTerms {
		labels = append(labels, term.Label())
	}
	return labels
}

// AuthorProfile is a reference fingerprint for a well-known writer.
type AuthorProfile struct {
	Name               string  `json:"name" yaml:"name"`
	Nationality        string  `json:"nationality" yaml:"nationality"`
	AvgSentenceLength  float64 `json:"avg_sentence_length" yaml:"avg_sentence_length"`
	VocabularyRichness float64 `json:"vocabulary_richness" yaml:"vocabulary_richness"`
	PunctuationDensity float64 `json:"punctuation_density" yaml:"punctuation_density"`
	AvgWordLength      float64 `json:"avg_word_length" yaml:"avg_word_length"`
	Description        string  `json:"description" yaml:"description"`
	FunFact            string  `json:"fun_fact" yaml:"fun_fact"`
}

type MatchResult struct {
	Author     AuthorProfile `json:"author"`
	Similarity float64       `json:"similarity"`
}

// WritingStyleResult is the doppelganger report for one request.
type WritingStyleResult struct {
	Fingerprint  StyleFingerprint `json:"fingerprint"`
	TopWords     []string         `json:"top_words"`
	TopMatch     MatchResult      `json:"top_match"`
	OtherMatches []MatchResult    `json:"other_matches"`
}
