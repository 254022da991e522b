// Package slog provides logging decorators for core services.
package slog

import (
	"context"
	"log/slog"
	"time"

	siteindex "github.com/fredster9/site-interface"
)

// Ensure LoggingFetcher implements siteindex.Fetcher.
var _ siteindex.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with per-request logging.
type LoggingFetcher struct {
	next   siteindex.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next siteindex.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch",
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}

// Ensure LoggingSitemapService implements siteindex.SitemapService.
var _ siteindex.SitemapService = (*LoggingSitemapService)(nil)

// LoggingSitemapService wraps a SitemapService with discovery logging.
type LoggingSitemapService struct {
	next   siteindex.SitemapService
	logger *slog.Logger
}

// NewLoggingSitemapService creates a new LoggingSitemapService.
func NewLoggingSitemapService(next siteindex.SitemapService, logger *slog.Logger) *LoggingSitemapService {
	return &LoggingSitemapService{next: next, logger: logger}
}

// DiscoverURLs delegates to the wrapped service and logs the operation.
func (s *LoggingSitemapService) DiscoverURLs(ctx context.Context, baseURL string) (urls []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("sitemap discovery",
			"url", baseURL,
			"count", len(urls),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DiscoverURLs(ctx, baseURL)
}

// Ensure LoggingSearcher implements siteindex.Searcher.
var _ siteindex.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher with per-query logging.
type LoggingSearcher struct {
	next   siteindex.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next siteindex.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Rank delegates to the wrapped searcher and logs the operation.
func (s *LoggingSearcher) Rank(ctx context.Context, query string, corpus siteindex.Corpus, k int) (docs []*siteindex.Document, err error) {
	defer func(begin time.Time) {
		s.logger.Info("rank",
			"corpus", len(corpus),
			"k", k,
			"results", len(docs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Rank(ctx, query, corpus, k)
}

// Ensure LoggingAuditLogger implements siteindex.AuditLogger.
var _ siteindex.AuditLogger = (*LoggingAuditLogger)(nil)

// LoggingAuditLogger wraps an AuditLogger with append logging.
type LoggingAuditLogger struct {
	next   siteindex.AuditLogger
	logger *slog.Logger
}

// NewLoggingAuditLogger creates a new LoggingAuditLogger.
func NewLoggingAuditLogger(next siteindex.AuditLogger, logger *slog.Logger) *LoggingAuditLogger {
	return &LoggingAuditLogger{next: next, logger: logger}
}

// Append delegates to the wrapped logger and logs the operation.
func (l *LoggingAuditLogger) Append(ctx context.Context, question, answer string, ts time.Time) (err error) {
	defer func(begin time.Time) {
		l.logger.Info("audit append",
			"question_len", len(question),
			"answer_len", len(answer),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.Append(ctx, question, answer, ts)
}
