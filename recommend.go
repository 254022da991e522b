package siteindex

import "context"

// Category identifies the kind of organization a user represents.
type Category string

// User profile categories.
const (
	CategoryCity          Category = "city"
	CategoryTransitAgency Category = "transit_agency"
)

// UserProfile is the session-scoped profile driving recommendation
// filtering. It is owned by the caller and never persisted by the core.
type UserProfile struct {
	Category Category
	Region   string // two-letter US state code
}

// Validate returns an error if the profile contains invalid fields.
func (p UserProfile) Validate() error {
	if p.Category != CategoryCity && p.Category != CategoryTransitAgency {
		return Errorf(EINVALID, "unknown profile category %q", p.Category)
	}
	if _, ok := StateCoordinates[p.Region]; !ok {
		return Errorf(EINVALID, "unknown region %q", p.Region)
	}
	return nil
}

// Recommendations is the bounded result of a recommendation pass.
type Recommendations struct {
	// General holds up to 3 general-content documents.
	General []*Document

	// CaseStudies holds up to 4 case studies. Nil means no case studies
	// matched the profile at all; an empty non-nil slice never occurs,
	// since a geographically empty result is reported via
	// NoCaseStudiesReason instead of silent omission.
	CaseStudies []*Document

	// NoCaseStudiesReason explains an absent case-study set, e.g. "no
	// geographically relevant case studies".
	NoCaseStudiesReason string
}

// Recommender selects a bounded subset of corpus documents for a user
// profile, combining keyword filtering, geographic proximity, and
// short-list ranking. An empty corpus yields an empty result, never an
// error.
type Recommender interface {
	Recommend(ctx context.Context, corpus Corpus, profile UserProfile) (*Recommendations, error)
}
