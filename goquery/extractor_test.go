package goquery_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	siteindex "github.com/fredster9/site-interface"
	"github.com/fredster9/site-interface/goquery"
)

const extractPageURL = "https://example.com/case-studies/jersey-city/"

func TestExtractor_Extract_Content(t *testing.T) {
	t.Parallel()

	html := `<html><body>
  <nav>Home About Contact</nav>
  <main>
    <script>track();</script>
    <h1>Jersey City Microtransit</h1>
    <p>On-demand   service for   residents.</p>
  </main>
  <footer>Copyright</footer>
</body></html>`

	extractor := goquery.NewExtractor()
	result, err := extractor.Extract(html, extractPageURL)

	require.NoError(t, err)
	assert.Equal(t, "Jersey City Microtransit On-demand service for residents.", result.Content)
	assert.NotContains(t, result.Content, "track()")
	assert.NotContains(t, result.Content, "Copyright")
}

func TestExtractor_Extract_ContentFallbackToBody(t *testing.T) {
	t.Parallel()

	html := `<html><body><p>Bare page text.</p></body></html>`

	extractor := goquery.NewExtractor()
	result, err := extractor.Extract(html, extractPageURL)

	require.NoError(t, err)
	assert.Equal(t, "Bare page text.", result.Content)
}

func TestExtractor_Extract_ContentTruncated(t *testing.T) {
	t.Parallel()

	html := "<main>" + strings.Repeat("word ", 2000) + "</main>"

	extractor := goquery.NewExtractor()
	result, err := extractor.Extract(html, extractPageURL)

	require.NoError(t, err)
	assert.Len(t, result.Content, siteindex.ContentLimit)
}

func TestExtractor_Extract_Description(t *testing.T) {
	t.Parallel()

	t.Run("meta description preferred", func(t *testing.T) {
		t.Parallel()
		html := `<head>
  <meta name="description" content="Meta desc">
  <meta property="og:description" content="OG desc">
</head>`
		extractor := goquery.NewExtractor()
		result, err := extractor.Extract(html, extractPageURL)
		require.NoError(t, err)
		assert.Equal(t, "Meta desc", result.Description)
	})

	t.Run("og description fallback", func(t *testing.T) {
		t.Parallel()
		html := `<head><meta property="og:description" content="OG desc"></head>`
		extractor := goquery.NewExtractor()
		result, err := extractor.Extract(html, extractPageURL)
		require.NoError(t, err)
		assert.Equal(t, "OG desc", result.Description)
	})
}

func TestExtractor_Extract_Thumbnail(t *testing.T) {
	t.Parallel()

	t.Run("og image preferred", func(t *testing.T) {
		t.Parallel()
		html := `<head>
  <meta property="og:image" content="/images/hero.jpg">
  <meta name="twitter:image" content="/images/card.jpg">
</head>`
		extractor := goquery.NewExtractor()
		result, err := extractor.Extract(html, extractPageURL)
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/images/hero.jpg", result.Thumbnail)
	})

	t.Run("twitter image fallback", func(t *testing.T) {
		t.Parallel()
		html := `<head><meta name="twitter:image" content="https://cdn.example.com/card.jpg"></head>`
		extractor := goquery.NewExtractor()
		result, err := extractor.Extract(html, extractPageURL)
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/card.jpg", result.Thumbnail)
	})

	t.Run("skips icons and small images", func(t *testing.T) {
		t.Parallel()
		html := `<body>
  <img src="/favicon-icon.png">
  <img src="/images/badge.png" width="32" height="32">
  <img src="/images/team-photo.jpg" width="800" height="600">
</body>`
		extractor := goquery.NewExtractor()
		result, err := extractor.Extract(html, extractPageURL)
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/images/team-photo.jpg", result.Thumbnail)
	})

	t.Run("undeclared dimensions pass", func(t *testing.T) {
		t.Parallel()
		html := `<body><img src="/images/hero.jpg"></body>`
		extractor := goquery.NewExtractor()
		result, err := extractor.Extract(html, extractPageURL)
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/images/hero.jpg", result.Thumbnail)
	})

	t.Run("no candidate", func(t *testing.T) {
		t.Parallel()
		html := `<body><img src="/logo.svg"></body>`
		extractor := goquery.NewExtractor()
		result, err := extractor.Extract(html, extractPageURL)
		require.NoError(t, err)
		assert.Empty(t, result.Thumbnail)
	})
}
