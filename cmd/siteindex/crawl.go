package main

import (
	"fmt"

	siteindex "github.com/fredster9/site-interface"
	"github.com/fredster9/site-interface/crawl"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	// An existing cache is kept unless the rebuild is forced.
	if !c.Force {
		corpus, err := deps.Store.Load(deps.Ctx)
		if err == nil && len(corpus) > 0 {
			fmt.Fprintf(deps.Stdout, "Cache already holds %d documents. Use --force to rebuild.\n", len(corpus))
			return nil
		}
	}

	fmt.Fprintf(deps.Stdout, "Crawling %s...\n", c.Origin)

	progress := func(event crawl.ProgressEvent) {
		switch event.Phase {
		case crawl.PhaseDiscovering:
			if event.Err != nil {
				fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", event.URL, siteindex.ErrorMessage(event.Err))
			}
		case crawl.PhaseExtracting:
			if event.Err != nil {
				fmt.Fprintf(deps.Stderr, "  partial %s: %s\n", event.URL, siteindex.ErrorMessage(event.Err))
			}
		}
	}

	result, err := deps.Crawler.Run(deps.Ctx, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", siteindex.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Visited %d pages, cached %d documents (%d failures)\n",
		result.Visited, result.Discovered, result.Failed)
	return nil
}
