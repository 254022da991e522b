package siteindex

import "context"

// Searcher ranks corpus documents by semantic similarity to a query.
//
// Rank returns at most k documents in non-increasing similarity order.
// It degrades rather than fails: a query embedding error falls back to
// the first k documents in corpus order, and a per-document embedding
// error places that document last instead of excluding it. Newly
// computed document embeddings are persisted back to the corpus store as
// a side effect; that write-back is non-fatal to the ranking result.
type Searcher interface {
	Rank(ctx context.Context, query string, corpus Corpus, k int) ([]*Document, error)
}
