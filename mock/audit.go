package mock

import (
	"context"
	"time"

	siteindex "github.com/fredster9/site-interface"
)

var _ siteindex.AuditLogger = (*AuditLogger)(nil)

// AuditLogger is a mock implementation of siteindex.AuditLogger.
type AuditLogger struct {
	AppendFn func(ctx context.Context, question, answer string, ts time.Time) error
}

func (l *AuditLogger) Append(ctx context.Context, question, answer string, ts time.Time) error {
	return l.AppendFn(ctx, question, answer, ts)
}
