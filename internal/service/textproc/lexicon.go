package textproc

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed data/lexicon.yaml
var defaultLexiconYAML []byte

type wordSet map[string]struct{}

func newWordSet(words []string) wordSet {
	set := make(wordSet, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func (s wordSet) has(word string) bool {
	_, ok := s[word]
	return ok
}

// Lexicon holds the stopword and particle lists. It is read-only after load.
type Lexicon struct {
	indonesian wordSet
	english    wordSet
	particles  wordSet
}

type lexiconFile struct {
	Indonesian []string `yaml:"indonesian"`
	English    []string `yaml:"english"`
	Particles  []string `yaml:"particles"`
}

// LoadLexicon parses a lexicon document.
func LoadLexicon(data []byte) (*Lexicon, error) {
	var file lexiconFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse lexicon: %w", err)
	}
	if len(file.Indonesian) == 0 || len(file.English) == 0 {
		return nil, fmt.Errorf("lexicon requires both indonesian and english stopwords")
	}
	return &Lexicon{
		indonesian: newWordSet(file.Indonesian),
		english:    newWordSet(file.English),
		particles:  newWordSet(file.Particles),
	}, nil
}

// DefaultLexicon returns the embedded lexicon.
func DefaultLexicon() (*Lexicon, error) {
	return LoadLexicon(defaultLexiconYAML)
}

// IsStopword reports whether word is in either stopword list.
func (l *Lexicon) IsStopword(word string) bool {
	return l.indonesian.has(word) || l.english.has(word)
}
