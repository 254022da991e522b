// Package recommend selects a small, bounded set of corpus documents
// for a user profile: up to three general documents plus up to four
// geographically relevant case studies.
package recommend

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	siteindex "github.com/fredster9/site-interface"
)

// Selection bounds and the geographic policy radius.
const (
	MaxGeneral        = 3
	MaxCaseStudies    = 4
	MaxShortlist      = 30
	MaxDistanceMiles  = 500
	maxUntaggedSample = 10
)

// NoCaseStudiesReason is reported when the geographic filter leaves no
// case-study candidates: an explicit empty-with-reason, never a silent
// omission.
const NoCaseStudiesReason = "no geographically relevant case studies"

// categoryKeywords are matched case-insensitively against document
// title, description, and content to pre-filter the corpus.
var categoryKeywords = map[siteindex.Category][]string{
	siteindex.CategoryCity:          {"microtransit", "paratransit", "city", "municipal", "urban"},
	siteindex.CategoryTransitAgency: {"paratransit", "transit", "agency", "public transportation"},
}

// Ensure Recommender implements siteindex.Recommender at compile time.
var _ siteindex.Recommender = (*Recommender)(nil)

// Recommender implements profile-driven document selection. The
// short-list ranker is optional: without one (or when it fails or
// returns nothing parseable) selection falls back deterministically to
// the first candidates in corpus order.
type Recommender struct {
	ranker siteindex.ShortlistRanker
}

// NewRecommender creates a Recommender using the given short-list
// ranker. ranker may be nil.
func NewRecommender(ranker siteindex.ShortlistRanker) *Recommender {
	return &Recommender{ranker: ranker}
}

// Recommend filters and ranks the corpus for a profile. An empty corpus
// yields an empty result, never an error.
func (r *Recommender) Recommend(ctx context.Context, corpus siteindex.Corpus, profile siteindex.UserProfile) (*siteindex.Recommendations, error) {
	if len(corpus) == 0 {
		return &siteindex.Recommendations{}, nil
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	relevant := filterByCategory(corpus, profile.Category)
	caseStudies, general := partition(relevant)

	result := &siteindex.Recommendations{
		General: r.selectGeneral(ctx, general, profile),
	}

	if len(caseStudies) == 0 {
		return result, nil
	}

	nearby := FilterByLocation(caseStudies, profile.Region, MaxDistanceMiles)
	if len(nearby) == 0 {
		result.NoCaseStudiesReason = NoCaseStudiesReason
		return result, nil
	}

	result.CaseStudies = r.selectCaseStudies(ctx, nearby, profile)
	return result, nil
}

// filterByCategory keeps documents matching any of the category's
// keywords in title, description, or content.
func filterByCategory(corpus siteindex.Corpus, category siteindex.Category) []*siteindex.Document {
	keywords := categoryKeywords[category]
	if len(keywords) == 0 {
		return corpus
	}

	var filtered []*siteindex.Document
	for _, doc := range corpus {
		haystack := strings.ToLower(doc.Title + " " + doc.Description + " " + doc.Content)
		for _, keyword := range keywords {
			if strings.Contains(haystack, keyword) {
				filtered = append(filtered, doc)
				break
			}
		}
	}
	return filtered
}

// partition splits documents into case studies and general content.
// A document is a case study if its type tag, title, leading content,
// or URL carries a case-study or success-story marker.
func partition(docs []*siteindex.Document) (caseStudies, general []*siteindex.Document) {
	for _, doc := range docs {
		if isCaseStudy(doc) {
			caseStudies = append(caseStudies, doc)
		} else {
			general = append(general, doc)
		}
	}
	return caseStudies, general
}

func isCaseStudy(doc *siteindex.Document) bool {
	title := strings.ToLower(doc.Title)
	url := strings.ToLower(doc.URL)
	lead := strings.ToLower(doc.Content)
	if len(lead) > 500 {
		lead = lead[:500]
	}

	return doc.Type == siteindex.TypeCaseStudy ||
		strings.Contains(title, "case study") ||
		strings.Contains(lead, "case study") ||
		strings.Contains(url, "/case-studies/") ||
		strings.Contains(url, "case-study") ||
		strings.Contains(title, "success story") ||
		strings.Contains(lead, "success story")
}

// selectGeneral picks up to MaxGeneral general documents, delegating to
// the short-list ranker when there are more candidates than slots.
func (r *Recommender) selectGeneral(ctx context.Context, candidates []*siteindex.Document, profile siteindex.UserProfile) []*siteindex.Document {
	if len(candidates) <= MaxGeneral {
		return candidates
	}
	criteria := fmt.Sprintf("the most relevant articles for a %s in %s", categoryDisplay(profile.Category), profile.Region)
	return r.shortlist(ctx, candidates, criteria, MaxGeneral)
}

// selectCaseStudies picks up to MaxCaseStudies from the geographically
// filtered candidates.
func (r *Recommender) selectCaseStudies(ctx context.Context, candidates []*siteindex.Document, profile siteindex.UserProfile) []*siteindex.Document {
	if len(candidates) <= MaxCaseStudies {
		return candidates
	}
	criteria := fmt.Sprintf("the most relevant case studies for %s, prioritizing case studies from %s or nearby states", profile.Region, profile.Region)
	return r.shortlist(ctx, candidates, criteria, MaxCaseStudies)
}

// shortlist presents up to MaxShortlist enumerated candidates to the
// ranker and maps the returned indices back to documents. Any ranker
// failure, or an unparseable reply, falls back to the first n
// candidates.
func (r *Recommender) shortlist(ctx context.Context, candidates []*siteindex.Document, criteria string, n int) []*siteindex.Document {
	if r.ranker == nil {
		return candidates[:n]
	}

	window := candidates
	if len(window) > MaxShortlist {
		window = window[:MaxShortlist]
	}

	items := make([]string, len(window))
	for i, doc := range window {
		items[i] = summarize(doc)
	}

	indices, err := r.ranker.RankShortlist(ctx, items, criteria, n)
	if err != nil || len(indices) == 0 {
		return candidates[:n]
	}

	var selected []*siteindex.Document
	for _, idx := range indices {
		if idx < 0 || idx >= len(window) {
			continue
		}
		selected = append(selected, window[idx])
		if len(selected) == n {
			break
		}
	}
	if len(selected) == 0 {
		return candidates[:n]
	}
	return selected
}

// summarize renders one short-list entry: title plus description or a
// content prefix.
func summarize(doc *siteindex.Document) string {
	desc := doc.Description
	if desc == "" {
		desc = doc.Content
		if len(desc) > 200 {
			desc = desc[:200]
		}
	}
	if len(doc.States) > 0 {
		return fmt.Sprintf("%s - Location: %s - %s", doc.Title, doc.States[0], desc)
	}
	return fmt.Sprintf("%s - %s", doc.Title, desc)
}

func categoryDisplay(category siteindex.Category) string {
	if category == siteindex.CategoryTransitAgency {
		return "transit agency"
	}
	return "city"
}

// FilterByLocation keeps state-tagged documents within maxMiles of the
// region's reference coordinate. If fewer than MaxCaseStudies tagged
// documents match, untagged documents top the result up (in original
// order). If no tagged document matches, the result is a random sample
// of untagged documents instead, so users in uncovered regions don't
// always see the same few pages.
func FilterByLocation(docs []*siteindex.Document, region string, maxMiles float64) []*siteindex.Document {
	if _, ok := siteindex.StateCoordinates[region]; !ok {
		return docs
	}

	var tagged, untagged []*siteindex.Document
	for _, doc := range docs {
		if len(doc.States) > 0 {
			tagged = append(tagged, doc)
		} else {
			untagged = append(untagged, doc)
		}
	}

	var matched []*siteindex.Document
	for _, doc := range tagged {
		for _, state := range doc.States {
			if dist, ok := siteindex.StateDistance(region, state); ok && dist <= maxMiles {
				matched = append(matched, doc)
				break
			}
		}
	}

	switch {
	case len(matched) >= MaxCaseStudies:
		return matched
	case len(matched) > 0:
		needed := MaxCaseStudies - len(matched)
		if needed > len(untagged) {
			needed = len(untagged)
		}
		return append(matched, untagged[:needed]...)
	default:
		shuffled := make([]*siteindex.Document, len(untagged))
		copy(shuffled, untagged)
		rand.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		if len(shuffled) > maxUntaggedSample {
			shuffled = shuffled[:maxUntaggedSample]
		}
		return shuffled
	}
}
