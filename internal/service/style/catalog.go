package style

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kapu/journal-insight-go/internal/domain"
)

//go:embed data/authors.yaml
var defaultAuthorsYAML []byte

// minCatalogSize is the smallest catalog the matcher accepts.
const minCatalogSize = 10

// Catalog is the ordered, read-only set of author profiles.
type Catalog struct {
	authors []domain.AuthorProfile
}

type catalogFile struct {
	Authors []domain.AuthorProfile `yaml:"authors"`
}

// LoadCatalog parses an author catalog document.
func LoadCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse author catalog: %w", err)
	}
	if len(file.Authors) < minCatalogSize {
		return nil, fmt.Errorf("author catalog needs at least %d profiles, got %d", minCatalogSize, len(file.Authors))
	}

	seen := make(map[string]struct{}, len(file.Authors))
	for i, author := range file.Authors {
		name := strings.TrimSpace(author.Name)
		if name == "" {
			return nil, fmt.Errorf("author %d has no name", i)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("duplicate author %q", name)
		}
		seen[name] = struct{}{}
		if author.VocabularyRichness < 0 || author.VocabularyRichness > 1 {
			return nil, fmt.Errorf("author %q: vocabulary_richness must be within [0,1]", name)
		}
		if author.AvgSentenceLength < 0 || author.PunctuationDensity < 0 || author.AvgWordLength < 0 {
			return nil, fmt.Errorf("author %q: metrics must be non-negative", name)
		}
	}

	return &Catalog{authors: file.Authors}, nil
}

// DefaultCatalog returns the embedded author catalog.
func DefaultCatalog() (*Catalog, error) {
	return LoadCatalog(defaultAuthorsYAML)
}

// Authors returns a copy of the profiles in catalog order.
func (c *Catalog) Authors() []domain.AuthorProfile {
	out := make([]domain.AuthorProfile, len(c.authors))
	copy(out, c.authors)
	return out
}

func (c *Catalog) Len() int {
	return len(c.authors)
}
