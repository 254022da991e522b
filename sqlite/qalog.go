package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	siteindex "github.com/fredster9/site-interface"
)

// Compile-time interface verification.
var _ siteindex.AuditLogger = (*QALogService)(nil)

// QALogService stores question/answer interactions in SQLite. It serves
// as the local fallback behind the Google Sheets sink and backs the log
// viewing command.
type QALogService struct {
	db *DB
}

// NewQALogService creates a new QALogService.
func NewQALogService(db *DB) *QALogService {
	return &QALogService{db: db}
}

// Append records one question/answer pair.
func (s *QALogService) Append(ctx context.Context, question, answer string, ts time.Time) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO qa_log (id, question, answer, created_at)
		VALUES (?, ?, ?, ?)
	`, uuid.New().String(), question, answer, ts.UTC().Format(time.RFC3339))

	return err
}

// Recent returns the most recent entries, newest first. A limit of zero
// or less returns all entries.
func (s *QALogService) Recent(ctx context.Context, limit int) ([]*siteindex.AuditEntry, error) {
	query := `
		SELECT id, question, answer, created_at
		FROM qa_log
		ORDER BY created_at DESC, id
	`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*siteindex.AuditEntry
	for rows.Next() {
		var entry siteindex.AuditEntry
		var createdAt string

		if err := rows.Scan(&entry.ID, &entry.Question, &entry.Answer, &createdAt); err != nil {
			return nil, err
		}

		entry.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}

		entries = append(entries, &entry)
	}

	return entries, rows.Err()
}
