package siteindex

// ContentLimit bounds the plain-text excerpt taken from a page. This is a
// policy constant, not a hard architectural limit.
const ContentLimit = 5000

// ExtractResult holds the content and metadata extracted from an HTML page.
type ExtractResult struct {
	// Content is a plain-text excerpt of the main content area, with
	// script/style/nav/header/footer/aside subtrees removed and
	// whitespace collapsed. At most ContentLimit characters.
	Content string

	// Description is the page meta description, falling back to the
	// Open Graph description. Empty if neither is present.
	Description string

	// Thumbnail is a best-effort absolute image URL for the page.
	Thumbnail string

	// States holds the US-state codes detected from the page's location
	// signals, highest-priority signal first-match-wins. The structured
	// signals yield at most one state; the free-text fallback may yield
	// several.
	States []string
}

// Extractor derives content, metadata, and location signals from a
// fetched page. Extraction always degrades to partial fields rather than
// failing: a malformed page yields whatever could be read.
type Extractor interface {
	Extract(html string, pageURL string) (*ExtractResult, error)
}
