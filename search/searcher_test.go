package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	siteindex "github.com/fredster9/site-interface"
	"github.com/fredster9/site-interface/mock"
	"github.com/fredster9/site-interface/search"
)

func TestCosineSimilarity(t *testing.T) {
	t.Parallel()

	t.Run("identical vectors score one", func(t *testing.T) {
		t.Parallel()
		v := []float64{0.3, -0.7, 0.2}
		assert.InDelta(t, 1.0, search.CosineSimilarity(v, v), 1e-12)
	})

	t.Run("symmetric", func(t *testing.T) {
		t.Parallel()
		a := []float64{1, 2, 3}
		b := []float64{-2, 0.5, 1}
		assert.InDelta(t, search.CosineSimilarity(a, b), search.CosineSimilarity(b, a), 1e-12)
	})

	t.Run("orthogonal vectors score zero", func(t *testing.T) {
		t.Parallel()
		assert.InDelta(t, 0, search.CosineSimilarity([]float64{1, 0}, []float64{0, 1}), 1e-12)
	})

	t.Run("opposite vectors score minus one", func(t *testing.T) {
		t.Parallel()
		assert.InDelta(t, -1.0, search.CosineSimilarity([]float64{1, 1}, []float64{-1, -1}), 1e-12)
	})

	t.Run("mismatched lengths score zero", func(t *testing.T) {
		t.Parallel()
		assert.Zero(t, search.CosineSimilarity([]float64{1, 2}, []float64{1, 2, 3}))
	})

	t.Run("zero vector scores zero", func(t *testing.T) {
		t.Parallel()
		assert.Zero(t, search.CosineSimilarity([]float64{0, 0}, []float64{1, 2}))
	})
}

// embedderByText returns fixed vectors for known texts.
func embedderByText(vectors map[string][]float64) *mock.Embedder {
	return &mock.Embedder{
		EmbedFn: func(_ context.Context, text string) ([]float64, error) {
			if v, ok := vectors[text]; ok {
				return v, nil
			}
			return []float64{0, 0, 1}, nil
		},
	}
}

func TestSearcher_Rank(t *testing.T) {
	t.Parallel()

	corpus := siteindex.Corpus{
		{URL: "https://example.com/a/", Type: siteindex.TypePage, Embedding: []float64{0, 1, 0}},
		{URL: "https://example.com/b/", Type: siteindex.TypePage, Embedding: []float64{1, 0, 0}},
		{URL: "https://example.com/c/", Type: siteindex.TypePage, Embedding: []float64{0.9, 0.1, 0}},
	}

	embedder := embedderByText(map[string][]float64{"query": {1, 0, 0}})
	searcher := search.NewSearcher(embedder, nil)

	ranked, err := searcher.Rank(context.Background(), "query", corpus, 2)

	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, "https://example.com/b/", ranked[0].URL)
	assert.Equal(t, "https://example.com/c/", ranked[1].URL)
}

func TestSearcher_Rank_ComputesMissingEmbeddingsOnce(t *testing.T) {
	t.Parallel()

	corpus := siteindex.Corpus{
		{URL: "https://example.com/a/", Title: "Post A", Type: siteindex.TypePage},
		{URL: "https://example.com/b/", Title: "Post B", Type: siteindex.TypePage, Embedding: []float64{0, 1, 0}},
	}

	embedCalls := map[string]int{}
	embedder := &mock.Embedder{
		EmbedFn: func(_ context.Context, text string) ([]float64, error) {
			embedCalls[text]++
			return []float64{1, 0, 0}, nil
		},
	}

	saves := 0
	store := &mock.CorpusStore{
		SaveFn: func(_ context.Context, _ siteindex.Corpus) error {
			saves++
			return nil
		},
	}

	searcher := search.NewSearcher(embedder, store)
	ctx := context.Background()

	_, err := searcher.Rank(ctx, "query", corpus, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, embedCalls["Post A"])
	assert.Equal(t, 0, embedCalls["Post B"])
	assert.Equal(t, 1, saves)

	// Second query embeds only the query: everything is cached now.
	_, err = searcher.Rank(ctx, "another query", corpus, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, embedCalls["Post A"])
	assert.Equal(t, 1, saves)
}

func TestSearcher_Rank_QueryEmbedFailureFallsBackToCorpusOrder(t *testing.T) {
	t.Parallel()

	corpus := siteindex.Corpus{
		{URL: "https://example.com/a/", Type: siteindex.TypePage, Embedding: []float64{0, 1}},
		{URL: "https://example.com/b/", Type: siteindex.TypePage, Embedding: []float64{1, 0}},
		{URL: "https://example.com/c/", Type: siteindex.TypePage, Embedding: []float64{1, 1}},
	}

	embedder := &mock.Embedder{
		EmbedFn: func(_ context.Context, _ string) ([]float64, error) {
			return nil, siteindex.Errorf(siteindex.EUNAVAILABLE, "embedding service down")
		},
	}

	searcher := search.NewSearcher(embedder, nil)
	ranked, err := searcher.Rank(context.Background(), "query", corpus, 2)

	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, "https://example.com/a/", ranked[0].URL)
	assert.Equal(t, "https://example.com/b/", ranked[1].URL)
}

func TestSearcher_Rank_DocumentEmbedFailureRanksLast(t *testing.T) {
	t.Parallel()

	corpus := siteindex.Corpus{
		{URL: "https://example.com/broken/", Title: "Broken", Type: siteindex.TypePage},
		{URL: "https://example.com/ok/", Type: siteindex.TypePage, Embedding: []float64{1, 0}},
	}

	embedder := &mock.Embedder{
		EmbedFn: func(_ context.Context, text string) ([]float64, error) {
			if text == "Broken" {
				return nil, siteindex.Errorf(siteindex.EUNAVAILABLE, "embed failed")
			}
			return []float64{1, 0}, nil
		},
	}

	searcher := search.NewSearcher(embedder, nil)
	ranked, err := searcher.Rank(context.Background(), "query", corpus, 2)

	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, "https://example.com/ok/", ranked[0].URL)
	assert.Equal(t, "https://example.com/broken/", ranked[1].URL)
	assert.False(t, corpus[0].HasEmbedding())
}

func TestSearcher_Rank_Bounds(t *testing.T) {
	t.Parallel()

	corpus := siteindex.Corpus{
		{URL: "https://example.com/a/", Type: siteindex.TypePage, Embedding: []float64{1, 0}},
	}
	embedder := embedderByText(nil)
	searcher := search.NewSearcher(embedder, nil)
	ctx := context.Background()

	t.Run("k larger than corpus", func(t *testing.T) {
		ranked, err := searcher.Rank(ctx, "q", corpus, 10)
		require.NoError(t, err)
		assert.Len(t, ranked, 1)
	})

	t.Run("zero k", func(t *testing.T) {
		ranked, err := searcher.Rank(ctx, "q", corpus, 0)
		require.NoError(t, err)
		assert.Empty(t, ranked)
	})

	t.Run("empty corpus", func(t *testing.T) {
		ranked, err := searcher.Rank(ctx, "q", siteindex.Corpus{}, 5)
		require.NoError(t, err)
		assert.Empty(t, ranked)
	})
}

func TestSearcher_Rank_SaveFailureDoesNotAffectRanking(t *testing.T) {
	t.Parallel()

	corpus := siteindex.Corpus{
		{URL: "https://example.com/a/", Title: "Post A", Type: siteindex.TypePage},
	}

	embedder := embedderByText(nil)
	store := &mock.CorpusStore{
		SaveFn: func(_ context.Context, _ siteindex.Corpus) error {
			return siteindex.Errorf(siteindex.EUNAVAILABLE, "disk full")
		},
	}

	searcher := search.NewSearcher(embedder, store)
	ranked, err := searcher.Rank(context.Background(), "q", corpus, 1)

	require.NoError(t, err)
	assert.Len(t, ranked, 1)
}
