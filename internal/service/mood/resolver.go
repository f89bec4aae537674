package mood

import (
	"strings"

	"github.com/kapu/journal-insight-go/internal/domain"
)

// Score thresholds used when no keyword matches.
const (
	joyfulScoreMin       = 70
	comfortScoreMax      = 40
	motivationalScoreMin = 55
)

type Resolver struct {
	catalog *Catalog
}

func NewResolver(catalog *Catalog) *Resolver {
	return &Resolver{catalog: catalog}
}

// Resolve maps a raw mood string and optional score to a category. Keywords
// win over the score; no keyword and no score yields balanced.
func (r *Resolver) Resolve(mood string, score *int) domain.MoodCategory {
	normalized := strings.ToLower(strings.TrimSpace(mood))

	if normalized != "" {
		for _, category := range domain.AllMoodCategories() {
			for _, keyword := range r.catalog.entries[category].Keywords {
				if keyword != "" && strings.Contains(normalized, keyword) {
					return category
				}
			}
		}
	}

	if score == nil {
		return domain.MoodBalanced
	}
	switch s := *score; {
	case s >= joyfulScoreMin:
		return domain.MoodJoyful
	case s <= comfortScoreMax:
		return domain.MoodComfort
	case s >= motivationalScoreMin:
		return domain.MoodMotivational
	default:
		return domain.MoodBalanced
	}
}
