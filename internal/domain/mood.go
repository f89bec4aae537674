package domain

import (
	"fmt"

	"github.com/kapu/journal-insight-go/internal/util"
)

// MoodCategory selects curated content when generation is unavailable.
type MoodCategory int

const (
	MoodJoyful MoodCategory = iota
	MoodComfort
	MoodGrounding
	MoodReflective
	MoodMotivational
	MoodBalanced

	moodCategoryCount
)

// MoodCategoryCount is the number of defined categories.
const MoodCategoryCount = int(moodCategoryCount)

var moodCategoryNames = [moodCategoryCount]string{
	MoodJoyful:       "joyful",
	MoodComfort:      "comfort",
	MoodGrounding:    "grounding",
	MoodReflective:   "reflective",
	MoodMotivational: "motivational",
	MoodBalanced:     "balanced",
}

// AllMoodCategories lists every category in resolution order.
func AllMoodCategories() []MoodCategory {
	out := make([]MoodCategory, 0, moodCategoryCount)
	for c := MoodCategory(0); c < moodCategoryCount; c++ {
		out = append(out, c)
	}
	return out
}

func (c MoodCategory) IsValid() bool {
	return c >= 0 && c < moodCategoryCount
}

func (c MoodCategory) String() string {
	if !c.IsValid() {
		return moodCategoryNames[MoodBalanced]
	}
	return moodCategoryNames[c]
}

func (c MoodCategory) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *MoodCategory) UnmarshalText(text []byte) error {
	parsed, err := ParseMoodCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseMoodCategory maps a category name to its value.
func ParseMoodCategory(raw string) (MoodCategory, error) {
	name := util.Normalize(raw)
	for c, candidate := range moodCategoryNames {
		if candidate == name {
			return MoodCategory(c), nil
		}
	}
	return MoodBalanced, fmt.Errorf("unknown mood category %q", raw)
}
