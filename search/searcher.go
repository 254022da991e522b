// Package search ranks corpus documents against a query by cosine
// similarity of embedding vectors, computing and persisting missing
// document embeddings as a side effect.
package search

import (
	"context"
	"math"
	"sort"

	siteindex "github.com/fredster9/site-interface"
)

// minScore is assigned to documents whose embedding could not be
// computed: they remain eligible for ranking, just last.
var minScore = math.Inf(-1)

// Ensure Searcher implements siteindex.Searcher at compile time.
var _ siteindex.Searcher = (*Searcher)(nil)

// Searcher implements similarity ranking over a corpus.
//
// Every failure path degrades instead of propagating: a query embedding
// error falls back to corpus order, a per-document embedding error
// scores that document last, and a snapshot write-back error never
// affects the returned ranking.
type Searcher struct {
	embedder siteindex.Embedder
	store    siteindex.CorpusStore
}

// NewSearcher creates a Searcher. store may be nil, in which case newly
// computed embeddings are kept in memory but not persisted.
func NewSearcher(embedder siteindex.Embedder, store siteindex.CorpusStore) *Searcher {
	return &Searcher{embedder: embedder, store: store}
}

// Rank returns up to k documents ordered by non-increasing similarity
// to the query. Documents that already carry an embedding are never
// re-embedded; documents without one are embedded now and the updated
// corpus is written back to the store before returning.
func (s *Searcher) Rank(ctx context.Context, query string, corpus siteindex.Corpus, k int) ([]*siteindex.Document, error) {
	if k <= 0 || len(corpus) == 0 {
		return nil, nil
	}
	if k > len(corpus) {
		k = len(corpus)
	}

	queryVec, err := s.embedder.Embed(ctx, query)
	if err != nil {
		// Fail open: degraded but deterministic.
		return corpus[:k], nil
	}

	type scored struct {
		doc   *siteindex.Document
		score float64
	}

	scores := make([]scored, 0, len(corpus))
	computed := 0
	for _, doc := range corpus {
		if !doc.HasEmbedding() {
			vec, err := s.embedder.Embed(ctx, doc.EmbeddingText())
			if err != nil {
				scores = append(scores, scored{doc: doc, score: minScore})
				continue
			}
			doc.Embedding = vec
			computed++
		}
		scores = append(scores, scored{doc: doc, score: CosineSimilarity(queryVec, doc.Embedding)})
	}

	// Persist lazily computed embeddings. Failure here is non-fatal:
	// the ranking result stands even if the write-back is lost.
	if computed > 0 && s.store != nil {
		_ = s.store.Save(ctx, corpus)
	}

	// Stable sort keeps ties in corpus order.
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].score > scores[j].score
	})

	ranked := make([]*siteindex.Document, 0, k)
	for _, sc := range scores[:k] {
		ranked = append(ranked, sc.doc)
	}
	return ranked, nil
}

// CosineSimilarity returns the normalized dot product of two
// equal-length vectors, in [-1, 1]. Mismatched lengths or zero vectors
// score 0.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	denom := math.Sqrt(normA) * math.Sqrt(normB)
	if denom == 0 {
		return 0
	}
	return dot / denom
}
