package style

import (
	"github.com/kapu/journal-insight-go/internal/constants"
	"github.com/kapu/journal-insight-go/internal/domain"
	"github.com/kapu/journal-insight-go/internal/service/textproc"
	"github.com/kapu/journal-insight-go/internal/util"
)

// Extract computes the style fingerprint of a preprocessed document.
func Extract(doc *textproc.Document) domain.StyleFingerprint {
	totalWords := len(doc.Words)
	totalSentences := len(doc.Sentences)

	unique := make(map[string]struct{}, totalWords)
	letters := 0
	for _, w := range doc.Words {
		unique[w] = struct{}{}
		letters += len(w)
	}

	words := float64(totalWords)
	sentences := float64(totalSentences)

	return domain.StyleFingerprint{
		TotalWords:         totalWords,
		TotalSentences:     totalSentences,
		AvgSentenceLength:  util.SafeRatio(words, sentences),
		VocabularyRichness: util.SafeRatio(float64(len(unique)), words),
		PunctuationDensity: util.SafeRatio(float64(doc.PunctuationCount), words) * 100,
		AvgWordLength:      util.SafeRatio(float64(letters), words),
		Language:           doc.Language,
		TopTerms:           topTerms(doc.ContentWords, constants.TextLimits.TopTerms),
		ExclamationRatio:   util.SafeRatio(float64(doc.ExclamationCount), sentences),
		QuestionRatio:      util.SafeRatio(float64(doc.QuestionCount), sentences),
	}
}

// topTerms returns the n most frequent words. Equal counts keep first-seen order.
func topTerms(words []string, n int) []domain.TermCount {
	counts := make(map[string]int, len(words))
	order := make([]string, 0, len(words))
	for _, w := range words {
		if counts[w] == 0 {
			order = append(order, w)
		}
		counts[w]++
	}

	terms := make([]domain.TermCount, 0, n)
	for len(terms) < n && len(terms) < len(order) {
		best := -1
		for i, w := range order {
			if counts[w] < 0 {
				continue
			}
			if best < 0 || counts[w] > counts[order[best]] {
				best = i
			}
		}
		word := order[best]
		terms = append(terms, domain.TermCount{Term: word, Count: counts[word]})
		counts[word] = -1
	}
	return terms
}
