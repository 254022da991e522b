package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	siteindex "github.com/fredster9/site-interface"
	"github.com/fredster9/site-interface/fs"
)

func TestCorpusStore_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "corpus.json")
	store := fs.NewCorpusStore(path)
	ctx := context.Background()

	corpus := siteindex.Corpus{
		{
			URL:         "https://example.com/blog/a/",
			Title:       "Post A",
			Content:     "Content A",
			Description: "Desc A",
			Type:        siteindex.TypeBlog,
			States:      []string{"NJ", "NY"},
			Embedding:   []float64{0.1, -0.2, 0.30000000000000004},
			ContentHash: "abc123",
			FetchedAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		},
		{
			URL:   "https://example.com/case-studies/b/",
			Title: "Case B",
			Type:  siteindex.TypeCaseStudy,
		},
	}

	require.NoError(t, store.Save(ctx, corpus))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	// Embeddings survive the round trip bit for bit.
	assert.Equal(t, corpus[0].Embedding, loaded[0].Embedding)
	assert.Equal(t, corpus[0].URL, loaded[0].URL)
	assert.Equal(t, corpus[0].States, loaded[0].States)
	assert.True(t, corpus[0].FetchedAt.Equal(loaded[0].FetchedAt))

	// A document without an embedding stays without one.
	assert.False(t, loaded[1].HasEmbedding())
}

func TestCorpusStore_Load_MissingFile(t *testing.T) {
	t.Parallel()

	store := fs.NewCorpusStore(filepath.Join(t.TempDir(), "missing.json"))

	corpus, err := store.Load(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, corpus)
	assert.Empty(t, corpus)
}

func TestCorpusStore_Load_EmptyFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(path, nil, 0644))
	store := fs.NewCorpusStore(path)

	corpus, err := store.Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, corpus)
}

func TestCorpusStore_Load_CorruptSnapshot(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "corrupt.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))
	store := fs.NewCorpusStore(path)

	_, err := store.Load(context.Background())

	assert.Error(t, err)
}

func TestCorpusStore_Save_ReplacesSnapshot(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "corpus.json")
	store := fs.NewCorpusStore(path)
	ctx := context.Background()

	first := siteindex.Corpus{{URL: "https://example.com/a/", Type: siteindex.TypePage}}
	second := siteindex.Corpus{{URL: "https://example.com/b/", Type: siteindex.TypePage}}

	require.NoError(t, store.Save(ctx, first))
	require.NoError(t, store.Save(ctx, second))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "https://example.com/b/", loaded[0].URL)
}

func TestCorpusStore_Save_RejectsInvalidDocument(t *testing.T) {
	t.Parallel()

	store := fs.NewCorpusStore(filepath.Join(t.TempDir(), "corpus.json"))

	err := store.Save(context.Background(), siteindex.Corpus{{Title: "no URL"}})

	require.Error(t, err)
	assert.Equal(t, siteindex.EINVALID, siteindex.ErrorCode(err))
}

func TestCorpusStore_Save_CreatesDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "dir", "corpus.json")
	store := fs.NewCorpusStore(path)

	err := store.Save(context.Background(), siteindex.Corpus{})

	require.NoError(t, err)
	_, statErr := os.Stat(path)
	assert.NoError(t, statErr)
}
