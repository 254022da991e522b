// Package crawl provides the bounded, breadth-first crawler that builds
// the corpus snapshot: a discovery phase that walks allow-listed paths
// on a single origin collecting stub documents, and an extraction phase
// that fills each stub with content, metadata, and location signals.
package crawl

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	siteindex "github.com/fredster9/site-interface"
)

// Crawl policy constants. The page budget is a deliberate scope
// limiter bounding crawl cost, not a performance optimization.
const (
	DefaultMaxPages = 200

	// Frontier sizing for Bloom filter deduplication.
	frontierExpectedURLs      = 10000
	frontierFalsePositiveRate = 0.01
)

// DefaultSeedPaths are the allow-listed top-level paths the crawl
// starts from.
var DefaultSeedPaths = []string{
	"/",
	"/audience/",
	"/solutions/",
	"/solutions/microtransit/",
	"/solutions/paratransit/",
	"/solutions/on-demand-transit/",
	"/resources/",
	"/blog/",
	"/case-studies/",
	"/about/",
}

// DefaultAllowedPrefixes are the path prefixes a discovered link must
// match to enter the corpus.
var DefaultAllowedPrefixes = []string{
	"/blog/",
	"/resources/",
	"/solutions/",
	"/audience/",
	"/case-studies/",
	"/about/",
}

// Phase identifies a crawl progress phase.
type Phase int

// Crawl phases in order.
const (
	PhaseSeeding Phase = iota
	PhaseDiscovering
	PhaseExtracting
	PhaseDone
)

// ProgressEvent reports progress during a crawl.
type ProgressEvent struct {
	Phase      Phase
	URL        string
	Visited    int
	Discovered int
	Err        error
}

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// Result holds the outcome of a crawl.
type Result struct {
	Visited    int // pages fetched during discovery
	Discovered int // documents in the resulting corpus
	Failed     int // per-URL failures absorbed along the way
}

// Crawler builds the corpus for one origin. Crawling is sequential:
// one fetch at a time, paced by the Limiter.
type Crawler struct {
	Fetcher   siteindex.Fetcher
	Links     siteindex.LinkExtractor
	Extractor siteindex.Extractor
	Store     siteindex.CorpusStore

	// Sitemaps optionally pre-seeds the frontier. Discovery failures
	// are silent: sitemaps are an optimization, never a requirement.
	Sitemaps siteindex.SitemapService

	// Limiter paces requests when set.
	Limiter *Limiter

	// Origin is the crawled site root, e.g. "https://ridewithvia.com".
	Origin string

	// SeedPaths and AllowedPrefixes default to the package defaults
	// when empty.
	SeedPaths       []string
	AllowedPrefixes []string

	// MaxPages bounds the discovery phase. Defaults to DefaultMaxPages.
	MaxPages int
}

// Run performs a full crawl and replaces the stored corpus snapshot
// with the result. Per-URL fetch or parse failures are swallowed; the
// crawl as a whole fails only if the origin is entirely unreachable at
// the seed stage.
func (c *Crawler) Run(ctx context.Context, progress ProgressFunc) (*Result, error) {
	origin, err := url.Parse(c.Origin)
	if err != nil || origin.Host == "" {
		return nil, siteindex.Errorf(siteindex.EINVALID, "invalid origin %q", c.Origin)
	}

	seeds := c.SeedPaths
	if len(seeds) == 0 {
		seeds = DefaultSeedPaths
	}
	prefixes := c.AllowedPrefixes
	if len(prefixes) == 0 {
		prefixes = DefaultAllowedPrefixes
	}
	maxPages := c.MaxPages
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}

	notify(progress, ProgressEvent{Phase: PhaseSeeding})

	frontier := NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
	for _, seed := range seeds {
		frontier.Push(origin.ResolveReference(&url.URL{Path: seed}).String())
	}
	seedCount := frontier.Len()

	// Sitemap URLs join the frontier behind the fixed seeds and obey
	// the same allow-list and budget.
	if c.Sitemaps != nil {
		if urls, err := c.Sitemaps.DiscoverURLs(ctx, c.Origin); err == nil {
			for _, u := range urls {
				if matchesPrefix(u, origin, prefixes) {
					frontier.Push(u)
				}
			}
		}
	}

	result := &Result{}
	var stubs siteindex.Corpus
	stubbed := make(map[string]bool)
	seedFetches := 0

	for result.Visited < maxPages {
		current, ok := frontier.Pop()
		if !ok {
			break
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		if c.Limiter != nil {
			if err := c.Limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		result.Visited++
		isSeed := result.Visited <= seedCount

		html, err := c.Fetcher.Fetch(ctx, current)
		if err != nil {
			result.Failed++
			notify(progress, ProgressEvent{Phase: PhaseDiscovering, URL: current, Visited: result.Visited, Err: err})
			if isSeed && result.Visited == seedCount && seedFetches == 0 {
				return nil, siteindex.Errorf(siteindex.EUNAVAILABLE, "origin %s unreachable: no seed page could be fetched", c.Origin)
			}
			continue
		}
		if isSeed {
			seedFetches++
		}

		links, err := c.Links.ExtractLinks(html, current)
		if err != nil {
			result.Failed++
			notify(progress, ProgressEvent{Phase: PhaseDiscovering, URL: current, Visited: result.Visited, Err: err})
			continue
		}

		for _, link := range links {
			if !matchesPrefix(link.URL, origin, prefixes) {
				continue
			}
			if !frontier.Push(link.URL) {
				continue
			}
			if stubbed[link.URL] {
				continue
			}

			title, ok := chooseTitle(link)
			if !ok {
				// Still crawled for its links, just not indexed.
				continue
			}

			stubbed[link.URL] = true
			stubs = append(stubs, &siteindex.Document{
				URL:   link.URL,
				Title: title,
				Type:  siteindex.ClassifyType(link.URL),
			})
		}

		notify(progress, ProgressEvent{Phase: PhaseDiscovering, URL: current, Visited: result.Visited, Discovered: len(stubs)})
	}

	// Extraction phase: fill each stub with content and metadata.
	// Failures leave the stub partially filled, never abort the batch.
	for _, doc := range stubs {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if c.Limiter != nil {
			if err := c.Limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		if err := c.extractInto(ctx, doc); err != nil {
			result.Failed++
			notify(progress, ProgressEvent{Phase: PhaseExtracting, URL: doc.URL, Discovered: len(stubs), Err: err})
			continue
		}
		notify(progress, ProgressEvent{Phase: PhaseExtracting, URL: doc.URL, Discovered: len(stubs)})
	}

	result.Discovered = len(stubs)
	if stubs == nil {
		stubs = siteindex.Corpus{}
	}

	// Full rebuild semantics: the new corpus replaces any prior
	// snapshot, there is no incremental diffing.
	if err := c.Store.Save(ctx, stubs); err != nil {
		return nil, fmt.Errorf("save corpus: %w", err)
	}

	notify(progress, ProgressEvent{Phase: PhaseDone, Discovered: len(stubs)})
	return result, nil
}

// extractInto fetches a stub's page and fills content, description,
// thumbnail, states, content hash, and fetch time.
func (c *Crawler) extractInto(ctx context.Context, doc *siteindex.Document) error {
	html, err := c.Fetcher.Fetch(ctx, doc.URL)
	if err != nil {
		return err
	}

	extracted, err := c.Extractor.Extract(html, doc.URL)
	if err != nil {
		return err
	}

	doc.Content = extracted.Content
	doc.Description = extracted.Description
	doc.Thumbnail = extracted.Thumbnail
	doc.States = extracted.States
	doc.ContentHash = hashContent(extracted.Content)
	doc.FetchedAt = time.Now().UTC()
	return nil
}

// chooseTitle applies the title fallback chain for a discovered link:
// anchor text, anchor title/aria-label, page <title>, then the last URL
// path segment. Candidates outside the length bounds are rejected in
// favor of the next in the chain.
func chooseTitle(link siteindex.DiscoveredLink) (string, bool) {
	candidates := []string{
		link.AnchorText,
		link.AnchorTitle,
		link.PageTitle,
		lastPathSegment(link.URL),
	}
	for _, candidate := range candidates {
		candidate = strings.TrimSpace(candidate)
		if len(candidate) >= siteindex.MinTitleLength && len(candidate) <= siteindex.MaxTitleLength {
			return candidate, true
		}
	}
	return "", false
}

// lastPathSegment returns the final non-empty path segment of a URL.
func lastPathSegment(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(segments) == 0 {
		return ""
	}
	return segments[len(segments)-1]
}

// matchesPrefix reports whether a URL is on the origin and under one of
// the allow-listed path prefixes.
func matchesPrefix(rawURL string, origin *url.URL, prefixes []string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if u.Host != origin.Host {
		return false
	}
	for _, prefix := range prefixes {
		if strings.HasPrefix(u.Path, prefix) {
			return true
		}
	}
	return false
}

// hashContent computes a stable hash of extracted content using xxhash.
func hashContent(content string) string {
	if content == "" {
		return ""
	}
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}

func notify(progress ProgressFunc, event ProgressEvent) {
	if progress != nil {
		progress(event)
	}
}
