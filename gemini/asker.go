package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	siteindex "github.com/fredster9/site-interface"
)

// Grounded answering policy: rank a wide candidate set, ground the
// completion on the best of it, and surface the few most relevant
// documents as sources.
const (
	askRankCandidates = 25
	askContextDocs    = 20
	askSourceDocs     = 5
	askContextChars   = 500
	askTemperature    = 0.7
	askMaxTokens      = 600

	askSystemPrompt = "You are a helpful assistant for the website. Answer questions based only on the provided content. Include URLs when mentioning specific articles."

	// NoContentAnswer is returned when the corpus is empty: an explicit
	// degraded result, never a crash.
	NoContentAnswer = "No content available. The site has not been crawled yet."
)

// Ensure Asker implements siteindex.Asker at compile time.
var _ siteindex.Asker = (*Asker)(nil)

// Asker answers natural-language questions grounded in the corpus.
//
// Completion failures never propagate: the failure text becomes the
// answer. Every question is appended to the audit log exactly once,
// whatever the outcome.
type Asker struct {
	completer siteindex.Completer
	searcher  siteindex.Searcher
	audit     siteindex.AuditLogger
}

// NewAsker creates an Asker. audit may be nil, in which case nothing is
// logged.
func NewAsker(completer siteindex.Completer, searcher siteindex.Searcher, audit siteindex.AuditLogger) *Asker {
	return &Asker{completer: completer, searcher: searcher, audit: audit}
}

// Ask answers a question from the corpus.
func (a *Asker) Ask(ctx context.Context, corpus siteindex.Corpus, question string) (*siteindex.Answer, error) {
	if question == "" {
		return nil, siteindex.Errorf(siteindex.EINVALID, "question required")
	}

	if len(corpus) == 0 {
		answer := &siteindex.Answer{Text: NoContentAnswer}
		a.log(ctx, question, answer.Text)
		return answer, nil
	}

	ranked, err := a.searcher.Rank(ctx, question, corpus, askRankCandidates)
	if err != nil {
		// The searcher is specified to degrade rather than fail; treat
		// an error like an empty ranking.
		ranked = nil
	}
	if len(ranked) == 0 {
		ranked = corpus
		if len(ranked) > askRankCandidates {
			ranked = ranked[:askRankCandidates]
		}
	}

	ranked = boostCaseStudies(question, ranked)

	contextDocs := ranked
	if len(contextDocs) > askContextDocs {
		contextDocs = contextDocs[:askContextDocs]
	}

	text, err := a.completer.Complete(ctx, askSystemPrompt, buildPrompt(contextDocs, question), askTemperature, askMaxTokens)
	if err != nil {
		// Log failures as answers too.
		text = fmt.Sprintf("Error: %s", siteindex.ErrorMessage(err))
		a.log(ctx, question, text)
		return &siteindex.Answer{Text: text}, nil
	}

	a.log(ctx, question, text)

	sources := contextDocs
	if len(sources) > askSourceDocs {
		sources = sources[:askSourceDocs]
	}
	return &siteindex.Answer{Text: text, Sources: sources}, nil
}

// log appends to the audit sink, swallowing sink failures: auditing
// must never block a user-facing answer.
func (a *Asker) log(ctx context.Context, question, answer string) {
	if a.audit == nil {
		return
	}
	_ = a.audit.Append(ctx, question, answer, time.Now())
}

// boostCaseStudies moves case studies to the front of the ranking when
// the question asks about them, preserving relative order otherwise.
func boostCaseStudies(question string, docs []*siteindex.Document) []*siteindex.Document {
	q := strings.ToLower(question)
	if !strings.Contains(q, "case study") && !strings.Contains(q, "case studies") && !strings.Contains(q, "success story") {
		return docs
	}

	var caseStudies, others []*siteindex.Document
	for _, doc := range docs {
		if doc.Type == siteindex.TypeCaseStudy ||
			strings.Contains(strings.ToLower(doc.Title), "case study") ||
			strings.Contains(strings.ToLower(doc.URL), "/case-studies/") {
			caseStudies = append(caseStudies, doc)
		} else {
			others = append(others, doc)
		}
	}
	return append(caseStudies, others...)
}

// buildPrompt renders the grounded user prompt: the context documents
// followed by the question.
func buildPrompt(docs []*siteindex.Document, question string) string {
	var sb strings.Builder
	sb.WriteString("Answer the question about the website based on the following content:\n\n")
	for _, doc := range docs {
		content := doc.Content
		if content == "" {
			content = doc.Description
		}
		if len(content) > askContextChars {
			content = content[:askContextChars]
		}
		fmt.Fprintf(&sb, "Title: %s\nURL: %s\nContent: %s\n\n", doc.Title, doc.URL, content)
	}
	fmt.Fprintf(&sb, "Question: %s\n\nAnswer based only on the content provided above. Include specific URLs when mentioning articles or case studies. If the answer is not in the content, say so.", question)
	return sb.String()
}
