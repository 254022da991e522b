package mock

import (
	"context"

	siteindex "github.com/fredster9/site-interface"
)

var _ siteindex.Embedder = (*Embedder)(nil)

// Embedder is a mock implementation of siteindex.Embedder.
type Embedder struct {
	EmbedFn func(ctx context.Context, text string) ([]float64, error)
}

func (e *Embedder) Embed(ctx context.Context, text string) ([]float64, error) {
	return e.EmbedFn(ctx, text)
}

var _ siteindex.Completer = (*Completer)(nil)

// Completer is a mock implementation of siteindex.Completer.
type Completer struct {
	CompleteFn func(ctx context.Context, systemPrompt, userPrompt string, temperature float32, maxTokens int32) (string, error)
}

func (c *Completer) Complete(ctx context.Context, systemPrompt, userPrompt string, temperature float32, maxTokens int32) (string, error) {
	return c.CompleteFn(ctx, systemPrompt, userPrompt, temperature, maxTokens)
}

var _ siteindex.ShortlistRanker = (*ShortlistRanker)(nil)

// ShortlistRanker is a mock implementation of siteindex.ShortlistRanker.
type ShortlistRanker struct {
	RankShortlistFn func(ctx context.Context, items []string, criteria string, n int) ([]int, error)
}

func (r *ShortlistRanker) RankShortlist(ctx context.Context, items []string, criteria string, n int) ([]int, error) {
	return r.RankShortlistFn(ctx, items, criteria, n)
}
