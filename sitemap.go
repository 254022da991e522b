package siteindex

import "context"

// SitemapService discovers URLs from a site's published sitemaps.
// Discovery is best-effort: sitemaps pre-seed the crawl frontier but the
// crawler's allow-list and page budget still apply to every URL found.
type SitemapService interface {
	DiscoverURLs(ctx context.Context, baseURL string) ([]string, error)
}
