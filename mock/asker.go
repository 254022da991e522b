package mock

import (
	"context"

	siteindex "github.com/fredster9/site-interface"
)

var _ siteindex.Asker = (*Asker)(nil)

// Asker is a mock implementation of siteindex.Asker.
type Asker struct {
	AskFn func(ctx context.Context, corpus siteindex.Corpus, question string) (*siteindex.Answer, error)
}

func (a *Asker) Ask(ctx context.Context, corpus siteindex.Corpus, question string) (*siteindex.Answer, error) {
	return a.AskFn(ctx, corpus, question)
}

var _ siteindex.Recommender = (*Recommender)(nil)

// Recommender is a mock implementation of siteindex.Recommender.
type Recommender struct {
	RecommendFn func(ctx context.Context, corpus siteindex.Corpus, profile siteindex.UserProfile) (*siteindex.Recommendations, error)
}

func (r *Recommender) Recommend(ctx context.Context, corpus siteindex.Corpus, profile siteindex.UserProfile) (*siteindex.Recommendations, error) {
	return r.RecommendFn(ctx, corpus, profile)
}
