package mock

import (
	siteindex "github.com/fredster9/site-interface"
)

var _ siteindex.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of siteindex.Extractor.
type Extractor struct {
	ExtractFn func(html string, pageURL string) (*siteindex.ExtractResult, error)
}

func (e *Extractor) Extract(html string, pageURL string) (*siteindex.ExtractResult, error) {
	return e.ExtractFn(html, pageURL)
}

var _ siteindex.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of siteindex.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html string, pageURL string) ([]siteindex.DiscoveredLink, error)
}

func (e *LinkExtractor) ExtractLinks(html string, pageURL string) ([]siteindex.DiscoveredLink, error) {
	return e.ExtractLinksFn(html, pageURL)
}
