package siteindex

import "context"

// Embedder produces a fixed-length vector representing the semantic
// content of a text. Vector dimensionality is fixed per embedding model;
// mixing vectors from different models invalidates the corpus cache and
// requires a full recompute.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// Completer generates text from a system prompt and a user prompt.
// It is used only for grounded question answering and for bounded
// short-list ranking decisions.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, temperature float32, maxTokens int32) (string, error)
}

// ShortlistRanker selects up to n entries from an enumerated short list
// according to free-text criteria, returning zero-based indices into
// items. An empty result means the ranker could not decide; callers fall
// back to a deterministic default selection.
type ShortlistRanker interface {
	RankShortlist(ctx context.Context, items []string, criteria string, n int) ([]int, error)
}
