package main

import (
	"fmt"

	siteindex "github.com/fredster9/site-interface"
)

// Run executes the backfill command. Embeddings are normally computed
// lazily during ranking; backfill computes them eagerly so the first
// question after a crawl is not slowed by a full embedding pass.
func (c *BackfillCmd) Run(deps *Dependencies) error {
	corpus, err := deps.Store.Load(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", siteindex.ErrorMessage(err))
		return err
	}

	if len(corpus) == 0 {
		fmt.Fprintln(deps.Stdout, "No cached documents. Run 'siteindex crawl' first.")
		return nil
	}

	computed := 0
	failed := 0
	for _, doc := range corpus {
		if doc.HasEmbedding() {
			continue
		}

		embedding, err := deps.Embedder.Embed(deps.Ctx, doc.EmbeddingText())
		if err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", doc.URL, siteindex.ErrorMessage(err))
			continue
		}
		doc.Embedding = embedding
		computed++
	}

	if computed > 0 {
		if err := deps.Store.Save(deps.Ctx, corpus); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", siteindex.ErrorMessage(err))
			return err
		}
	}

	fmt.Fprintf(deps.Stdout, "Embedded %d documents (%d already embedded, %d failed)\n",
		computed, len(corpus)-computed-failed, failed)
	return nil
}
