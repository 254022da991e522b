package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	siteindex "github.com/fredster9/site-interface"
)

// Location detection runs four signals in priority order, first match
// wins with no fallthrough: a structured "Location:" label, a
// location-classed element, a whole-page "Location: City, State"
// pattern, then a free-text scan of the extracted content. Structured
// signals are more reliable than free-text scanning and must not be
// overridden by incidental word matches elsewhere on the page. The
// structured paths yield at most one state; only the free-text scan may
// yield several.

// locationLabelPattern matches "Location: City, State" within a labeled
// container, capturing the state name.
var locationLabelPattern = regexp.MustCompile(`(?i:location)[:\s]+[^,\n]+,\s*([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`)

// trailingStatePattern matches a trailing ", State" fragment in a
// location-classed element.
var trailingStatePattern = regexp.MustCompile(`,\s*([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`)

// pageLocationPattern matches a "Location: City, State" pattern in
// whole-page free text, requiring a capitalized city token.
var pageLocationPattern = regexp.MustCompile(`(?i:location)[:\s]+[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*,\s*([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`)

// detectStates returns the page's state codes per the signal priority
// above. content is the already-extracted plain-text excerpt used by
// the free-text fallback.
func detectStates(doc *goquery.Document, content string) []string {
	if code, ok := stateFromLocationLabel(doc); ok {
		return []string{code}
	}
	if code, ok := stateFromLocationClass(doc); ok {
		return []string{code}
	}
	if code, ok := stateFromPageText(doc); ok {
		return []string{code}
	}
	return siteindex.DetectStatesInText(content)
}

// stateFromLocationLabel looks for an element containing a "Location"
// label and matches a "City, State" pattern within its container.
func stateFromLocationLabel(doc *goquery.Document) (string, bool) {
	code := ""
	doc.Find("*").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if sel.Children().Length() != 0 {
			return true
		}
		if !strings.Contains(strings.ToLower(sel.Text()), "location") {
			return true
		}

		container := sel.Parent()
		if container.Length() == 0 {
			container = sel
		}
		text := strings.Join(strings.Fields(container.Text()), " ")

		m := locationLabelPattern.FindStringSubmatch(text)
		if m == nil {
			return true
		}
		if c, ok := siteindex.StateCodeFromName(m[1]); ok {
			code = c
			return false
		}
		return true
	})
	return code, code != ""
}

// stateFromLocationClass looks for an element classed as a location
// field and matches a trailing ", State" fragment.
func stateFromLocationClass(doc *goquery.Document) (string, bool) {
	code := ""
	doc.Find("[class]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		class, _ := sel.Attr("class")
		if !strings.Contains(strings.ToLower(class), "location") {
			return true
		}

		text := strings.Join(strings.Fields(sel.Text()), " ")
		m := trailingStatePattern.FindStringSubmatch(text)
		if m == nil {
			return true
		}
		if c, ok := siteindex.StateCodeFromName(m[1]); ok {
			code = c
			return false
		}
		return true
	})
	return code, code != ""
}

// stateFromPageText scans the whole page text for a
// "Location: City, State" pattern.
func stateFromPageText(doc *goquery.Document) (string, bool) {
	text := strings.Join(strings.Fields(doc.Text()), " ")
	m := pageLocationPattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return siteindex.StateCodeFromName(m[1])
}
