package style

import (
	"math"
	"sort"

	"github.com/kapu/journal-insight-go/internal/domain"
	"github.com/kapu/journal-insight-go/internal/util"
)

// Feature weights and normalization divisors of the similarity model.
const (
	weightSentenceLength = 0.30
	weightVocabulary     = 0.25
	weightPunctuation    = 0.20
	weightWordLength     = 0.25

	sentenceLengthSpan = 30.0
	punctuationSpan    = 20.0
	wordLengthSpan     = 3.0
)

type Matcher struct {
	catalog *Catalog
}

func NewMatcher(catalog *Catalog) *Matcher {
	return &Matcher{catalog: catalog}
}

// Similarity scores fingerprint f against profile p on a 0-100 scale.
func Similarity(f domain.StyleFingerprint, p domain.AuthorProfile) float64 {
	simSentence := util.FloorZero(1 - math.Abs(f.AvgSentenceLength-p.AvgSentenceLength)/sentenceLengthSpan)
	simVocab := util.FloorZero(1 - math.Abs(f.VocabularyRichness-p.VocabularyRichness))
	simPunct := util.FloorZero(1 - math.Abs(f.PunctuationDensity-p.PunctuationDensity)/punctuationSpan)
	simWord := util.FloorZero(1 - math.Abs(f.AvgWordLength-p.AvgWordLength)/wordLengthSpan)

	return 100 * (weightSentenceLength*simSentence +
		weightVocabulary*simVocab +
		weightPunctuation*simPunct +
		weightWordLength*simWord)
}

// Rank scores every catalog author, highest first. Ties keep catalog order.
func (m *Matcher) Rank(f domain.StyleFingerprint) []domain.MatchResult {
	authors := m.catalog.Authors()
	matches := make([]domain.MatchResult, 0, len(authors))
	for _, author := range authors {
		matches = append(matches, domain.MatchResult{
			Author:     author,
			Similarity: Similarity(f, author),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})
	return matches
}
