package siteindex

// DiscoveredLink is an in-origin hyperlink found on a fetched page,
// carrying the title candidates for the crawler's fallback chain.
type DiscoveredLink struct {
	// URL is the absolute, fragment-stripped link target.
	URL string

	// AnchorText is the trimmed text content of the anchor.
	AnchorText string

	// AnchorTitle is the anchor's title or aria-label attribute.
	AnchorTitle string

	// PageTitle is the <title> of the page the link was found on.
	PageTitle string
}

// Title bounds for discovered links. Candidates outside these bounds are
// rejected and the next candidate in the fallback chain is tried.
const (
	MinTitleLength = 5
	MaxTitleLength = 300
)

// LinkExtractor parses HTML and returns the links it contains.
// Relative targets are resolved against the page URL; links whose
// resolved authority differs from the origin are discarded.
type LinkExtractor interface {
	ExtractLinks(html string, pageURL string) ([]DiscoveredLink, error)
}
