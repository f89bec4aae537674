// Package journal reads journal notes for analysis. It never writes.
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kapu/journal-insight-go/internal/domain"
	"github.com/kapu/journal-insight-go/internal/util"
)

type Store interface {
	// RecentTexts returns titles and bodies of the newest notes with a body.
	RecentTexts(ctx context.Context, userID string, limit int) ([]string, error)
	// NotesBetween returns notes created in [from, to), oldest first.
	NotesBetween(ctx context.Context, userID string, from, to time.Time) ([]domain.JournalNote, error)
}

const (
	recentNotesQuery = `
		SELECT COALESCE(title, ''), COALESCE(body, ''), created_at
		FROM journal_notes
		WHERE user_id = $1 AND body IS NOT NULL AND body <> ''
		ORDER BY created_at DESC
		LIMIT $2`

	notesBetweenQuery = `
		SELECT COALESCE(title, ''), COALESCE(body, ''), created_at
		FROM journal_notes
		WHERE user_id = $1 AND created_at >= $2 AND created_at < $3
		ORDER BY created_at ASC`
)

type PostgresStore struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewPostgresStore(db *sql.DB, logger *zap.Logger) *PostgresStore {
	return &PostgresStore{db: db, logger: logger}
}

func (s *PostgresStore) RecentTexts(ctx context.Context, userID string, limit int) ([]string, error) {
	notes, err := s.query(ctx, recentNotesQuery, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent notes: %w", err)
	}
	s.logger.Debug("Loaded recent notes", zap.String("user_id", userID), zap.Int("count", len(notes)))
	return FlattenNotes(notes), nil
}

func (s *PostgresStore) NotesBetween(ctx context.Context, userID string, from, to time.Time) ([]domain.JournalNote, error) {
	notes, err := s.query(ctx, notesBetweenQuery, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load notes between %s and %s: %w",
			util.DayKey(from), util.DayKey(to), err)
	}
	return notes, nil
}

func (s *PostgresStore) query(ctx context.Context, query string, args ...any) ([]domain.JournalNote, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []domain.JournalNote
	for rows.Next() {
		var note domain.JournalNote
		if err := rows.Scan(&note.Title, &note.Body, &note.CreatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	return notes, rows.Err()
}

// FlattenNotes lists each note's title (if any) followed by its body (if any).
func FlattenNotes(notes []domain.JournalNote) []string {
	texts := make([]string, 0, len(notes)*2)
	for _, note := range notes {
		if strings.TrimSpace(note.Title) != "" {
			texts = append(texts, note.Title)
		}
		if strings.TrimSpace(note.Body) != "" {
			texts = append(texts, note.Body)
		}
	}
	return texts
}

// DayNotes is the set of notes written on one WIB calendar day.
type DayNotes struct {
	Date  string
	Notes []domain.JournalNote
}

// GroupByDay buckets notes by WIB calendar day, in date order.
func GroupByDay(notes []domain.JournalNote) []DayNotes {
	index := make(map[string]int)
	var days []DayNotes
	for _, note := range notes {
		key := util.DayKey(note.CreatedAt)
		i, ok := index[key]
		if !ok {
			i = len(days)
			index[key] = i
			days = append(days, DayNotes{Date: key})
		}
		days[i].Notes = append(days[i].Notes, note)
	}

	sort.SliceStable(days, func(i, j int) bool {
		return days[i].Date < days[j].Date
	})
	return days
}
