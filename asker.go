package siteindex

import "context"

// Answer is a grounded response to a natural-language question.
type Answer struct {
	// Text is the answer produced by the completion capability, or a
	// degraded explanation when the capability failed.
	Text string

	// Sources lists the documents most likely used to ground the answer.
	Sources []*Document
}

// Asker answers natural-language questions grounded in the corpus.
//
// Ask never propagates completion failures: the failure text becomes the
// answer, and every question is appended to the audit log exactly once
// regardless of outcome. An empty corpus yields an explicit "no content
// available" answer.
type Asker interface {
	Ask(ctx context.Context, corpus Corpus, question string) (*Answer, error)
}
