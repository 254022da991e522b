package mock

import (
	"context"

	siteindex "github.com/fredster9/site-interface"
)

var _ siteindex.CorpusStore = (*CorpusStore)(nil)

// CorpusStore is a mock implementation of siteindex.CorpusStore.
type CorpusStore struct {
	LoadFn func(ctx context.Context) (siteindex.Corpus, error)
	SaveFn func(ctx context.Context, corpus siteindex.Corpus) error
}

func (s *CorpusStore) Load(ctx context.Context) (siteindex.Corpus, error) {
	return s.LoadFn(ctx)
}

func (s *CorpusStore) Save(ctx context.Context, corpus siteindex.Corpus) error {
	return s.SaveFn(ctx, corpus)
}
