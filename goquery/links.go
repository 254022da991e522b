// Package goquery provides HTML parsing implementations of the
// siteindex extraction interfaces: link discovery, content/metadata
// extraction, and location-signal detection.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	siteindex "github.com/fredster9/site-interface"
)

// Ensure LinkExtractor implements siteindex.LinkExtractor at compile time.
var _ siteindex.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor collects every in-origin anchor target from a page,
// along with the title candidates the crawler's fallback chain needs.
type LinkExtractor struct{}

// NewLinkExtractor creates a new LinkExtractor.
func NewLinkExtractor() *LinkExtractor {
	return &LinkExtractor{}
}

// ExtractLinks parses HTML and returns discovered in-origin links.
// Relative targets are resolved against pageURL; links whose resolved
// authority differs from the page's are discarded, as are non-HTTP
// schemes. Links are deduplicated by URL, keeping the first occurrence.
func (e *LinkExtractor) ExtractLinks(html string, pageURL string) ([]siteindex.DiscoveredLink, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, siteindex.Errorf(siteindex.EINVALID, "invalid page URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, siteindex.Errorf(siteindex.EINVALID, "failed to parse HTML: %v", err)
	}

	pageTitle := strings.TrimSpace(doc.Find("title").First().Text())

	seen := make(map[string]bool)
	var links []siteindex.DiscoveredLink

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return
		}

		if isNonHTTPLink(href) {
			return
		}

		resolved := resolveURL(base, href)
		if resolved == "" {
			return
		}

		if !isSameHost(base, resolved) {
			return
		}

		if seen[resolved] {
			return
		}
		seen[resolved] = true

		anchorTitle, _ := sel.Attr("title")
		if anchorTitle == "" {
			anchorTitle, _ = sel.Attr("aria-label")
		}

		links = append(links, siteindex.DiscoveredLink{
			URL:         resolved,
			AnchorText:  strings.TrimSpace(sel.Text()),
			AnchorTitle: strings.TrimSpace(anchorTitle),
			PageTitle:   pageTitle,
		})
	})

	return links, nil
}

// resolveURL resolves a relative URL against a base URL. Fragments are
// stripped from the result so URLs differing only by fragment
// deduplicate. Returns empty string for unparseable hrefs and links
// that resolve back to the base page itself.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""

	result := resolved.String()
	baseNoFragment := *base
	baseNoFragment.Fragment = ""
	if result == baseNoFragment.String() {
		return ""
	}
	return result
}

// isSameHost checks if the resolved URL has the same host as the base
// URL. Exact host matching: subdomains are considered different hosts.
func isSameHost(base *url.URL, resolved string) bool {
	u, err := url.Parse(resolved)
	if err != nil {
		return false
	}
	return u.Host == base.Host
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
