package style

import (
	"strings"

	"github.com/kapu/journal-insight-go/internal/constants"
	"github.com/kapu/journal-insight-go/internal/domain"
	"github.com/kapu/journal-insight-go/internal/service/textproc"
	"github.com/kapu/journal-insight-go/internal/util"
)

// Analyzer runs the deterministic doppelganger pipeline.
type Analyzer struct {
	preprocessor *textproc.Preprocessor
	matcher      *Matcher
}

func NewAnalyzer(preprocessor *textproc.Preprocessor, matcher *Matcher) *Analyzer {
	return &Analyzer{preprocessor: preprocessor, matcher: matcher}
}

// NewDefaultAnalyzer wires the embedded lexicon and author catalog.
func NewDefaultAnalyzer() (*Analyzer, error) {
	lexicon, err := textproc.DefaultLexicon()
	if err != nil {
		return nil, err
	}
	catalog, err := DefaultCatalog()
	if err != nil {
		return nil, err
	}
	return NewAnalyzer(textproc.NewPreprocessor(lexicon), NewMatcher(catalog)), nil
}

// Fingerprint preprocesses text and extracts its fingerprint.
func (a *Analyzer) Fingerprint(text string) (domain.StyleFingerprint, error) {
	doc, err := a.preprocessor.Preprocess(text)
	if err != nil {
		return domain.StyleFingerprint{}, err
	}
	return Extract(doc), nil
}

// Analyze joins the entries with newlines and reports the closest author
// plus up to four runner-ups.
func (a *Analyzer) Analyze(texts []string) (domain.WritingStyleResult, error) {
	fingerprint, err := a.Fingerprint(strings.Join(texts, "\n"))
	if err != nil {
		return domain.WritingStyleResult{}, err
	}

	matches := a.matcher.Rank(fingerprint)
	end := util.Min(1+constants.TextLimits.RunnerUps, len(matches))

	return domain.WritingStyleResult{
		Fingerprint:  fingerprint,
		TopWords:     fingerprint.TopTermLabels(),
		TopMatch:     matches[0],
		OtherMatches: append([]domain.MatchResult(nil), matches[1:end]...),
	}, nil
}

// Catalog exposes the matcher's author catalog.
func (a *Analyzer) Catalog() *Catalog {
	return a.matcher.catalog
}
