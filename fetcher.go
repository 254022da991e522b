package siteindex

import "context"

// Fetcher retrieves HTML from URLs on the crawled origin.
//
// Fetch fails with an EUNAVAILABLE error on network failure, non-2xx
// status, or non-HTML content. Callers treat a failed fetch as "skip this
// URL"; it never aborts a batch.
type Fetcher interface {
	// Fetch performs an HTTP GET and returns the page HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases client resources.
	Close() error
}
