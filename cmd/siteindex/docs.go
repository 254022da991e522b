package main

import (
	"fmt"
	"strings"

	siteindex "github.com/fredster9/site-interface"
)

// docTypeOrder fixes the display order of document groups.
var docTypeOrder = []siteindex.DocType{
	siteindex.TypeCaseStudy,
	siteindex.TypeBlog,
	siteindex.TypeResource,
	siteindex.TypeSolution,
	siteindex.TypeAudience,
	siteindex.TypePage,
}

// Run executes the docs command.
func (c *DocsCmd) Run(deps *Dependencies) error {
	corpus, err := deps.Store.Load(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", siteindex.ErrorMessage(err))
		return err
	}

	if len(corpus) == 0 {
		fmt.Fprintln(deps.Stdout, "No cached documents. Run 'siteindex crawl' first.")
		return nil
	}

	byType := make(map[siteindex.DocType]siteindex.Corpus)
	for _, doc := range corpus {
		byType[doc.Type] = append(byType[doc.Type], doc)
	}

	embedded := 0
	for _, doc := range corpus {
		if doc.HasEmbedding() {
			embedded++
		}
	}

	fmt.Fprintf(deps.Stdout, "Cached documents: %d total, %d embedded\n\n", len(corpus), embedded)

	for _, docType := range docTypeOrder {
		docs := byType[docType]
		if len(docs) == 0 {
			continue
		}

		fmt.Fprintf(deps.Stdout, "%s (%d):\n", docType, len(docs))
		for _, doc := range docs {
			fmt.Fprintf(deps.Stdout, "  %s\n    %s\n", doc.Title, doc.URL)
			if c.Full {
				if doc.Description != "" {
					fmt.Fprintf(deps.Stdout, "    %s\n", doc.Description)
				}
				if len(doc.States) > 0 {
					fmt.Fprintf(deps.Stdout, "    states: %s\n", strings.Join(doc.States, ", "))
				}
			}
		}
		fmt.Fprintln(deps.Stdout)
	}

	return nil
}
