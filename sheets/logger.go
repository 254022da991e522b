// Package sheets implements the audit logger on Google Sheets.
//
// A spreadsheet row per question keeps the interaction log where the
// content team already works. The logger is designed to sit in front of
// a local fallback via siteindex.FallbackLogger.
package sheets

import (
	"context"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	siteindex "github.com/fredster9/site-interface"
)

// DefaultSheetName is the tab rows are appended to when none is
// configured.
const DefaultSheetName = "QA Log"

var _ siteindex.AuditLogger = (*QALogger)(nil)

// QALogger appends question/answer rows to a Google Sheet.
type QALogger struct {
	svc           *sheets.Service
	spreadsheetID string
	sheetName     string
}

// Option configures a QALogger.
type Option func(*QALogger)

// WithSheetName overrides the tab rows are appended to.
func WithSheetName(name string) Option {
	return func(l *QALogger) {
		l.sheetName = name
	}
}

// NewQALogger creates a logger appending to the given spreadsheet,
// authenticating with a service account credentials file.
func NewQALogger(ctx context.Context, credentialsFile, spreadsheetID string, opts ...Option) (*QALogger, error) {
	if spreadsheetID == "" {
		return nil, siteindex.Errorf(siteindex.EINVALID, "spreadsheet id required")
	}
	svc, err := sheets.NewService(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, siteindex.Errorf(siteindex.EUNAVAILABLE, "create sheets service: %v", err)
	}

	l := &QALogger{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetName:     DefaultSheetName,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// NewQALoggerWithCredentialsJSON is NewQALogger for callers holding the
// service account key in memory.
func NewQALoggerWithCredentialsJSON(ctx context.Context, credentialsJSON []byte, spreadsheetID string, opts ...Option) (*QALogger, error) {
	if spreadsheetID == "" {
		return nil, siteindex.Errorf(siteindex.EINVALID, "spreadsheet id required")
	}
	svc, err := sheets.NewService(ctx, option.WithCredentialsJSON(credentialsJSON))
	if err != nil {
		return nil, siteindex.Errorf(siteindex.EUNAVAILABLE, "create sheets service: %v", err)
	}

	l := &QALogger{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetName:     DefaultSheetName,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Append adds one row: timestamp, question, answer.
func (l *QALogger) Append(ctx context.Context, question, answer string, ts time.Time) error {
	values := &sheets.ValueRange{
		Values: [][]interface{}{
			{ts.UTC().Format(time.RFC3339), question, answer},
		},
	}
	_, err := l.svc.Spreadsheets.Values.
		Append(l.spreadsheetID, l.sheetName+"!A:C", values).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return siteindex.Errorf(siteindex.EUNAVAILABLE, "append audit row: %v", err)
	}
	return nil
}
