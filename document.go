package siteindex

import (
	"context"
	"strings"
	"time"
)

// DocType classifies a document by the shape of its URL path. The type is
// assigned exactly once at discovery time and never recomputed from content.
type DocType string

// Document type classifications.
const (
	TypeBlog      DocType = "blog"
	TypeResource  DocType = "resource"
	TypeCaseStudy DocType = "case-study"
	TypeSolution  DocType = "solution"
	TypeAudience  DocType = "audience"
	TypePage      DocType = "page"
)

// ClassifyType derives the document type from a URL path. Unmatched paths
// classify as the generic page type.
func ClassifyType(rawURL string) DocType {
	switch {
	case strings.Contains(rawURL, "/blog/"):
		return TypeBlog
	case strings.Contains(rawURL, "/resources/"):
		return TypeResource
	case strings.Contains(rawURL, "/case-studies/"):
		return TypeCaseStudy
	case strings.Contains(rawURL, "/solutions/"):
		return TypeSolution
	case strings.Contains(rawURL, "/audience/"):
		return TypeAudience
	default:
		return TypePage
	}
}

// Document represents one crawled page with extracted metadata and an
// optional embedding vector.
//
// URL uniquely identifies a document within a corpus. Description,
// Thumbnail, States, and Embedding are optional: absence of States means
// "no location signal found", not "global", and Embedding is present only
// after the first similarity query touches the document.
type Document struct {
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Description string    `json:"description,omitempty"`
	Type        DocType   `json:"type"`
	Thumbnail   string    `json:"thumbnail,omitempty"`
	States      []string  `json:"states,omitempty"`
	Embedding   []float64 `json:"embedding,omitempty"`
	ContentHash string    `json:"contentHash,omitempty"`
	FetchedAt   time.Time `json:"fetchedAt,omitempty"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.URL == "" {
		return Errorf(EINVALID, "document URL required")
	}
	if d.Type == "" {
		return Errorf(EINVALID, "document type required")
	}
	return nil
}

// HasEmbedding reports whether the document carries a computed embedding.
func (d *Document) HasEmbedding() bool {
	return len(d.Embedding) > 0
}

// EmbeddingContentLimit bounds how much document content contributes to the
// embedding text.
const EmbeddingContentLimit = 500

// EmbeddingText returns the text a document is embedded from: title,
// description, and the leading portion of content.
func (d *Document) EmbeddingText() string {
	var parts []string
	if d.Title != "" {
		parts = append(parts, d.Title)
	}
	if d.Description != "" {
		parts = append(parts, d.Description)
	}
	if d.Content != "" {
		content := d.Content
		if len(content) > EmbeddingContentLimit {
			content = content[:EmbeddingContentLimit]
		}
		parts = append(parts, content)
	}
	return strings.Join(parts, " ")
}

// Corpus is the full ordered collection of documents for the site,
// persisted as a single snapshot.
type Corpus []*Document

// FindByURL returns the document with the given URL, or nil.
func (c Corpus) FindByURL(url string) *Document {
	for _, doc := range c {
		if doc.URL == url {
			return doc
		}
	}
	return nil
}

// CorpusStore loads and saves the corpus snapshot.
//
// Load on a missing or empty snapshot returns an empty corpus, not an
// error: the system tolerates cold start. Save is a full-snapshot
// overwrite and must be atomic with respect to a concurrent Load.
type CorpusStore interface {
	Load(ctx context.Context) (Corpus, error)
	Save(ctx context.Context, corpus Corpus) error
}
