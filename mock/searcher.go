package mock

import (
	"context"

	siteindex "github.com/fredster9/site-interface"
)

var _ siteindex.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of siteindex.Searcher.
type Searcher struct {
	RankFn func(ctx context.Context, query string, corpus siteindex.Corpus, k int) ([]*siteindex.Document, error)
}

func (s *Searcher) Rank(ctx context.Context, query string, corpus siteindex.Corpus, k int) ([]*siteindex.Document, error) {
	return s.RankFn(ctx, query, corpus, k)
}
