package goquery

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	siteindex "github.com/fredster9/site-interface"
)

// Ensure Extractor implements siteindex.Extractor at compile time.
var _ siteindex.Extractor = (*Extractor)(nil)

// Extractor derives a plain-text excerpt, description, thumbnail, and
// location signals from a fetched page. It never fails on unexpected
// document shape: whatever could be read is returned.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// boilerplateSelector names the subtrees removed from the content area
// before taking text.
const boilerplateSelector = "script, style, nav, header, footer, aside"

// thumbnailNameFilter lists source-name fragments that mark an image as
// an icon rather than a content thumbnail.
var thumbnailNameFilter = []string{"icon", "logo", "avatar", "button"}

// minThumbnailSize is the declared pixel size below which an image is
// treated as an icon.
const minThumbnailSize = 200

// Extract processes raw HTML and returns content, metadata, and
// detected states for the page.
func (e *Extractor) Extract(html string, pageURL string) (*siteindex.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, siteindex.Errorf(siteindex.EINVALID, "failed to parse HTML: %v", err)
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, siteindex.Errorf(siteindex.EINVALID, "invalid page URL: %v", err)
	}

	result := &siteindex.ExtractResult{
		Content:     extractContent(doc),
		Description: extractDescription(doc),
		Thumbnail:   extractThumbnail(doc, base),
	}
	result.States = detectStates(doc, result.Content)

	return result, nil
}

// extractContent picks the main content area, strips boilerplate
// subtrees, collapses whitespace, and truncates to the content limit.
// The selection order is main, article, a .content container, then body.
func extractContent(doc *goquery.Document) string {
	content := doc.Find("main").First()
	if content.Length() == 0 {
		content = doc.Find("article").First()
	}
	if content.Length() == 0 {
		content = doc.Find("div.content").First()
	}
	if content.Length() == 0 {
		content = doc.Find("body").First()
	}
	if content.Length() == 0 {
		return ""
	}

	content.Find(boilerplateSelector).Remove()

	text := strings.Join(strings.Fields(content.Text()), " ")
	if len(text) > siteindex.ContentLimit {
		text = text[:siteindex.ContentLimit]
	}
	return text
}

// extractDescription returns the meta description, falling back to the
// Open Graph description.
func extractDescription(doc *goquery.Document) string {
	if desc, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok && desc != "" {
		return desc
	}
	if desc, ok := doc.Find(`meta[property="og:description"]`).First().Attr("content"); ok {
		return desc
	}
	return ""
}

// extractThumbnail returns a best-effort absolute image URL: the Open
// Graph image, then the Twitter-card image, then the first content
// image that is not icon-sized or icon-named.
func extractThumbnail(doc *goquery.Document, base *url.URL) string {
	if src, ok := doc.Find(`meta[property="og:image"]`).First().Attr("content"); ok && src != "" {
		return absoluteURL(base, src)
	}
	if src, ok := doc.Find(`meta[name="twitter:image"]`).First().Attr("content"); ok && src != "" {
		return absoluteURL(base, src)
	}

	var thumbnail string
	doc.Find("img[src]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		src, _ := sel.Attr("src")
		if src == "" || isIconName(src) {
			return true
		}

		width := parseDimension(sel.AttrOr("width", ""))
		height := parseDimension(sel.AttrOr("height", ""))
		// Undeclared dimensions pass: most content images carry no
		// explicit size attributes.
		if (width > 0 || height > 0) && width <= minThumbnailSize && height <= minThumbnailSize {
			return true
		}

		thumbnail = absoluteURL(base, src)
		return false
	})
	return thumbnail
}

// isIconName reports whether an image source name marks it as an icon,
// logo, avatar, or button graphic.
func isIconName(src string) bool {
	lower := strings.ToLower(src)
	for _, name := range thumbnailNameFilter {
		if strings.Contains(lower, name) {
			return true
		}
	}
	return false
}

// parseDimension parses a declared width/height attribute, returning 0
// for absent or malformed values.
func parseDimension(v string) int {
	v = strings.TrimSuffix(strings.TrimSpace(v), "px")
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// absoluteURL resolves src against the page's base URL.
func absoluteURL(base *url.URL, src string) string {
	ref, err := url.Parse(strings.TrimSpace(src))
	if err != nil {
		return src
	}
	return base.ResolveReference(ref).String()
}
