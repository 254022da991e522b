package main

import (
	"fmt"
	"strings"

	siteindex "github.com/fredster9/site-interface"
)

// Run executes the recommend command.
func (c *RecommendCmd) Run(deps *Dependencies) error {
	profile := siteindex.UserProfile{
		Category: siteindex.Category(c.Category),
		Region:   strings.ToUpper(c.State),
	}
	if err := profile.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", siteindex.ErrorMessage(err))
		return err
	}

	corpus, err := deps.Store.Load(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", siteindex.ErrorMessage(err))
		return err
	}

	recs, err := deps.Recommender.Recommend(deps.Ctx, corpus, profile)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", siteindex.ErrorMessage(err))
		return err
	}

	if len(recs.General) == 0 && len(recs.CaseStudies) == 0 {
		fmt.Fprintln(deps.Stdout, "No recommendations available. Run 'siteindex crawl' first.")
		return nil
	}

	if len(recs.General) > 0 {
		fmt.Fprintln(deps.Stdout, "Recommended content:")
		for _, doc := range recs.General {
			fmt.Fprintf(deps.Stdout, "  %s\n    %s\n", doc.Title, doc.URL)
		}
	}

	switch {
	case len(recs.CaseStudies) > 0:
		fmt.Fprintln(deps.Stdout, "Case studies:")
		for _, doc := range recs.CaseStudies {
			location := ""
			if len(doc.States) > 0 {
				location = " (" + strings.Join(doc.States, ", ") + ")"
			}
			fmt.Fprintf(deps.Stdout, "  %s%s\n    %s\n", doc.Title, location, doc.URL)
		}
	case recs.NoCaseStudiesReason != "":
		fmt.Fprintf(deps.Stdout, "Case studies: %s\n", recs.NoCaseStudiesReason)
	}

	return nil
}
