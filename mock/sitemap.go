package mock

import (
	"context"

	siteindex "github.com/fredster9/site-interface"
)

var _ siteindex.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of siteindex.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL)
}
