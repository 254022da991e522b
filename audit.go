package siteindex

import (
	"context"
	"time"
)

// AuditEntry is one logged question/answer interaction.
type AuditEntry struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuditLogger appends question/answer pairs to a durable external sink.
type AuditLogger interface {
	Append(ctx context.Context, question, answer string, ts time.Time) error
}

// Ensure FallbackLogger implements AuditLogger at compile time.
var _ AuditLogger = (*FallbackLogger)(nil)

// FallbackLogger is an AuditLogger that tries a primary sink and falls
// back to a secondary one when the primary append fails. A nil primary
// skips straight to the fallback.
type FallbackLogger struct {
	Primary  AuditLogger
	Fallback AuditLogger
}

// Append writes to the primary sink, falling back to the secondary sink
// on failure. It returns an error only if every configured sink failed.
func (l *FallbackLogger) Append(ctx context.Context, question, answer string, ts time.Time) error {
	if l.Primary != nil {
		if err := l.Primary.Append(ctx, question, answer, ts); err == nil {
			return nil
		}
	}
	if l.Fallback != nil {
		return l.Fallback.Append(ctx, question, answer, ts)
	}
	if l.Primary == nil {
		return Errorf(EINVALID, "no audit sink configured")
	}
	return Errorf(EUNAVAILABLE, "audit append failed and no fallback sink configured")
}
