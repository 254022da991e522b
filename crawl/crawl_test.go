package crawl_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	siteindex "github.com/fredster9/site-interface"
	"github.com/fredster9/site-interface/crawl"
	"github.com/fredster9/site-interface/mock"
)

const testOrigin = "https://example.com"

// newTestCrawler wires a crawler over in-memory fixtures: pages maps
// URL to the links found there, every known URL fetches successfully.
func newTestCrawler(pages map[string][]siteindex.DiscoveredLink, saved *siteindex.Corpus) *crawl.Crawler {
	return &crawl.Crawler{
		Fetcher: &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				if _, ok := pages[url]; ok {
					return "<html></html>", nil
				}
				return "", siteindex.Errorf(siteindex.EUNAVAILABLE, "fetch %s: HTTP 404", url)
			},
		},
		Links: &mock.LinkExtractor{
			ExtractLinksFn: func(_ string, pageURL string) ([]siteindex.DiscoveredLink, error) {
				return pages[pageURL], nil
			},
		},
		Extractor: &mock.Extractor{
			ExtractFn: func(_ string, _ string) (*siteindex.ExtractResult, error) {
				return &siteindex.ExtractResult{
					Content:     "Extracted content.",
					Description: "Extracted description.",
					States:      []string{"NJ"},
				}, nil
			},
		},
		Store: &mock.CorpusStore{
			SaveFn: func(_ context.Context, corpus siteindex.Corpus) error {
				*saved = corpus
				return nil
			},
		},
		Origin:          testOrigin,
		SeedPaths:       []string{"/"},
		AllowedPrefixes: []string{"/blog/"},
	}
}

func TestCrawler_Run(t *testing.T) {
	t.Parallel()

	pages := map[string][]siteindex.DiscoveredLink{
		testOrigin + "/": {
			{URL: testOrigin + "/blog/first-post/", AnchorText: "First Post"},
			{URL: testOrigin + "/pricing/", AnchorText: "Pricing is off limits"},
		},
		testOrigin + "/blog/first-post/": nil,
	}

	var saved siteindex.Corpus
	crawler := newTestCrawler(pages, &saved)

	result, err := crawler.Run(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Visited)
	assert.Equal(t, 1, result.Discovered)
	assert.Zero(t, result.Failed)

	require.Len(t, saved, 1)
	doc := saved[0]
	assert.Equal(t, testOrigin+"/blog/first-post/", doc.URL)
	assert.Equal(t, "First Post", doc.Title)
	assert.Equal(t, siteindex.TypeBlog, doc.Type)
	assert.Equal(t, "Extracted content.", doc.Content)
	assert.Equal(t, []string{"NJ"}, doc.States)
	assert.NotEmpty(t, doc.ContentHash)
	assert.False(t, doc.FetchedAt.IsZero())
}

func TestCrawler_Run_RespectsPageBudget(t *testing.T) {
	t.Parallel()

	var links []siteindex.DiscoveredLink
	pages := map[string][]siteindex.DiscoveredLink{}
	for _, path := range []string{"/blog/a/", "/blog/b/", "/blog/c/", "/blog/d/", "/blog/e/"} {
		links = append(links, siteindex.DiscoveredLink{URL: testOrigin + path, AnchorText: "A post titled " + path})
		pages[testOrigin+path] = nil
	}
	pages[testOrigin+"/"] = links

	var saved siteindex.Corpus
	crawler := newTestCrawler(pages, &saved)
	crawler.MaxPages = 3

	result, err := crawler.Run(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, 3, result.Visited)
}

func TestCrawler_Run_TitleFallbackChain(t *testing.T) {
	t.Parallel()

	pages := map[string][]siteindex.DiscoveredLink{
		testOrigin + "/": {
			// Anchor text below the minimum length falls through to the
			// anchor title.
			{URL: testOrigin + "/blog/one/", AnchorText: "Go", AnchorTitle: "A titled link"},
			// All inline candidates too short: the URL path segment wins.
			{URL: testOrigin + "/blog/interesting-post/", AnchorText: "Go"},
			// Nothing usable anywhere: crawled but not indexed.
			{URL: testOrigin + "/blog/x/", AnchorText: ""},
		},
		testOrigin + "/blog/one/":              nil,
		testOrigin + "/blog/interesting-post/": nil,
		testOrigin + "/blog/x/":                nil,
	}

	var saved siteindex.Corpus
	crawler := newTestCrawler(pages, &saved)

	result, err := crawler.Run(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, 4, result.Visited)

	require.Len(t, saved, 2)
	assert.Equal(t, "A titled link", saved[0].Title)
	assert.Equal(t, "interesting-post", saved[1].Title)
}

func TestCrawler_Run_SwallowsExtractionFailures(t *testing.T) {
	t.Parallel()

	fetchCount := map[string]int{}
	crawler := &crawl.Crawler{
		Fetcher: &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				fetchCount[url]++
				// The document page dies between discovery and extraction.
				if url == testOrigin+"/blog/flaky/" && fetchCount[url] > 1 {
					return "", siteindex.Errorf(siteindex.EUNAVAILABLE, "fetch: HTTP 503")
				}
				return "<html></html>", nil
			},
		},
		Links: &mock.LinkExtractor{
			ExtractLinksFn: func(_ string, pageURL string) ([]siteindex.DiscoveredLink, error) {
				if pageURL == testOrigin+"/" {
					return []siteindex.DiscoveredLink{
						{URL: testOrigin + "/blog/flaky/", AnchorText: "Flaky Post"},
					}, nil
				}
				return nil, nil
			},
		},
		Extractor: &mock.Extractor{
			ExtractFn: func(_ string, _ string) (*siteindex.ExtractResult, error) {
				return &siteindex.ExtractResult{Content: "c"}, nil
			},
		},
		Store: &mock.CorpusStore{
			SaveFn: func(_ context.Context, _ siteindex.Corpus) error { return nil },
		},
		Origin:          testOrigin,
		SeedPaths:       []string{"/"},
		AllowedPrefixes: []string{"/blog/"},
	}

	result, err := crawler.Run(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 1, result.Discovered)
}

func TestCrawler_Run_OriginUnreachable(t *testing.T) {
	t.Parallel()

	var saved siteindex.Corpus
	crawler := newTestCrawler(map[string][]siteindex.DiscoveredLink{}, &saved)

	_, err := crawler.Run(context.Background(), nil)

	require.Error(t, err)
	assert.Equal(t, siteindex.EUNAVAILABLE, siteindex.ErrorCode(err))
	assert.Nil(t, saved)
}

func TestCrawler_Run_InvalidOrigin(t *testing.T) {
	t.Parallel()

	crawler := &crawl.Crawler{Origin: "not a url"}

	_, err := crawler.Run(context.Background(), nil)

	require.Error(t, err)
	assert.Equal(t, siteindex.EINVALID, siteindex.ErrorCode(err))
}

func TestCrawler_Run_SitemapPreSeed(t *testing.T) {
	t.Parallel()

	pages := map[string][]siteindex.DiscoveredLink{
		testOrigin + "/":              nil,
		testOrigin + "/blog/hidden/":  nil,
		testOrigin + "/pricing/page/": nil,
	}

	fetched := map[string]bool{}
	var saved siteindex.Corpus
	crawler := newTestCrawler(pages, &saved)
	fetchFn := crawler.Fetcher.(*mock.Fetcher).FetchFn
	crawler.Fetcher = &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (string, error) {
			fetched[url] = true
			return fetchFn(ctx, url)
		},
	}
	crawler.Sitemaps = &mock.SitemapService{
		DiscoverURLsFn: func(_ context.Context, _ string) ([]string, error) {
			return []string{
				testOrigin + "/blog/hidden/",
				testOrigin + "/pricing/page/",
			}, nil
		},
	}

	result, err := crawler.Run(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Visited)
	assert.True(t, fetched[testOrigin+"/blog/hidden/"])
	assert.False(t, fetched[testOrigin+"/pricing/page/"])
}
