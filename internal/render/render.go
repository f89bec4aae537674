// Package render formats writing-style results for the terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/kapu/journal-insight-go/internal/domain"
)

const barCells = 20

// Commentary returns the closing remark for a top similarity score.
func Commentary(score float64) string {
	switch {
	case score > 85:
		return "Wow! You're practically their ghostwriter!"
	case score > 70:
		return "Strong resemblance! Keep developing your unique voice."
	case score > 55:
		return "Interesting mix! You have your own distinctive style."
	default:
		return "You're truly unique! No one writes quite like you."
	}
}

// ScoreBar draws a score in [0,100] as a 20-cell bar.
func ScoreBar(score float64) string {
	filled := int(score / 5)
	if filled < 0 {
		filled = 0
	}
	if filled > barCells {
		filled = barCells
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", barCells-filled)
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	tw := tablewriter.NewWriter(w)
	tw.SetHeader(header)
	tw.SetBorder(true)
	tw.SetRowLine(false)
	tw.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)
	tw.SetAutoWrapText(false)
	return tw
}

// Fingerprint writes the style metrics as a two-column table.
func Fingerprint(w io.Writer, f domain.StyleFingerprint) {
	tw := newTable(w, []string{"METRIC", "VALUE"})
	rows := [][]string{
		{"Total words", fmt.Sprintf("%d", f.TotalWords)},
		{"Total sentences", fmt.Sprintf("%d", f.TotalSentences)},
		{"Avg sentence length", fmt.Sprintf("%.1f words", f.AvgSentenceLength)},
		{"Vocabulary richness", fmt.Sprintf("%.2f%%", f.VocabularyRichness*100)},
		{"Punctuation density", fmt.Sprintf("%.1f per 100 words", f.PunctuationDensity)},
		{"Avg word length", fmt.Sprintf("%.1f characters", f.AvgWordLength)},
		{"Language", f.Language.String()},
	}
	if len(f.TopTerms) > 0 {
		rows = append(rows, []string{"Top words", strings.Join(f.TopTermLabels(), ", ")})
	}
	if f.ExclamationRatio > 0.1 {
		rows = append(rows, []string{"Exclamations", fmt.Sprintf("%.0f%% of sentences", f.ExclamationRatio*100)})
	}
	if f.QuestionRatio > 0.1 {
		rows = append(rows, []string{"Questions", fmt.Sprintf("%.0f%% of sentences", f.QuestionRatio*100)})
	}
	tw.AppendBulk(rows)
	tw.Render()
}

// Result writes the top match, the runner-ups and the commentary.
func Result(w io.Writer, result domain.WritingStyleResult) {
	top := result.TopMatch
	fmt.Fprintf(w, "\nYOU WRITE LIKE: %s (%s)\n", strings.ToUpper(top.Author.Name), top.Author.Nationality)
	fmt.Fprintf(w, "Match score: %.1f%%\n", top.Similarity)
	if top.Author.Description != "" {
		fmt.Fprintf(w, "%q\n", top.Author.Description)
	}
	if top.Author.FunFact != "" {
		fmt.Fprintf(w, "Fun fact: %s\n", top.Author.FunFact)
	}

	if len(result.OtherMatches) > 0 {
		fmt.Fprintln(w, "\nOther matches:")
		tw := newTable(w, []string{"#", "AUTHOR", "MATCH", "SCORE"})
		for i, m := range result.OtherMatches {
			tw.Append([]string{
				fmt.Sprintf("%d", i+2),
				m.Author.Name,
				ScoreBar(m.Similarity),
				fmt.Sprintf("%.1f%%", m.Similarity),
			})
		}
		tw.Render()
	}

	fmt.Fprintf(w, "\n%s\n", Commentary(top.Similarity))
}

// Authors lists the catalog with its reference metrics.
func Authors(w io.Writer, authors []domain.AuthorProfile) {
	tw := newTable(w, []string{"AUTHOR", "NATIONALITY", "SENTENCE", "VOCAB", "PUNCT", "WORD"})
	for _, a := range authors {
		tw.Append([]string{
			a.Name,
			a.Nationality,
			fmt.Sprintf("%.1f", a.AvgSentenceLength),
			fmt.Sprintf("%.2f", a.VocabularyRichness),
			fmt.Sprintf("%.1f", a.PunctuationDensity),
			fmt.Sprintf("%.1f", a.AvgWordLength),
		})
	}
	tw.Render()
}
