// Package mood resolves mood categories and holds the curated fallback content.
package mood

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kapu/journal-insight-go/internal/constants"
	"github.com/kapu/journal-insight-go/internal/domain"
)

//go:embed data/catalog.yaml
var defaultCatalogYAML []byte

// Entry is the curated content for one category.
type Entry struct {
	Keywords    []string           `yaml:"keywords"`
	Headline    string             `yaml:"headline"`
	Description string             `yaml:"description"`
	Movies      []domain.MovieItem `yaml:"movies"`
}

// Catalog maps every MoodCategory to its entry. Lookups are total: an
// out-of-range category reads the balanced entry.
type Catalog struct {
	entries [domain.MoodCategoryCount]Entry
}

type catalogFile struct {
	Categories map[string]Entry `yaml:"categories"`
}

// LoadCatalog parses a catalog document and checks that every category is
// present with exactly the expected number of movies.
func LoadCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse mood catalog: %w", err)
	}

	catalog := &Catalog{}
	for name := range file.Categories {
		if _, err := domain.ParseMoodCategory(name); err != nil {
			return nil, fmt.Errorf("mood catalog: %w", err)
		}
	}

	for _, category := range domain.AllMoodCategories() {
		entry, ok := file.Categories[category.String()]
		if !ok {
			return nil, fmt.Errorf("mood catalog is missing category %q", category)
		}
		if strings.TrimSpace(entry.Headline) == "" || strings.TrimSpace(entry.Description) == "" {
			return nil, fmt.Errorf("mood catalog category %q needs a headline and description", category)
		}
		if len(entry.Movies) != constants.TextLimits.FallbackItems {
			return nil, fmt.Errorf("mood catalog category %q has %d movies, want %d",
				category, len(entry.Movies), constants.TextLimits.FallbackItems)
		}
		for i := range entry.Keywords {
			entry.Keywords[i] = strings.ToLower(strings.TrimSpace(entry.Keywords[i]))
		}
		catalog.entries[category] = entry
	}
	return catalog, nil
}

// DefaultCatalog returns the embedded catalog.
func DefaultCatalog() (*Catalog, error) {
	return LoadCatalog(defaultCatalogYAML)
}

// Entry returns the content for c, copying the movie slice.
func (c *Catalog) Entry(category domain.MoodCategory) Entry {
	if !category.IsValid() {
		category = domain.MoodBalanced
	}
	entry := c.entries[category]
	movies := make([]domain.MovieItem, len(entry.Movies))
	for i, m := range entry.Movies {
		m.Genres = append([]string(nil), m.Genres...)
		movies[i] = m
	}
	entry.Movies = movies
	return entry
}

// Recommendation builds the deterministic result for category.
func (c *Catalog) Recommendation(category domain.MoodCategory, mood string) domain.MovieRecommendationResult {
	if !category.IsValid() {
		category = domain.MoodBalanced
	}
	entry := c.Entry(category)
	return domain.MovieRecommendationResult{
		Category:    category.String(),
		MoodLabel:   strings.ToLower(strings.TrimSpace(mood)),
		Headline:    entry.Headline,
		Description: entry.Description,
		Items:       entry.Movies,
	}
}
