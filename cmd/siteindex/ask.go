package main

import (
	"fmt"

	siteindex "github.com/fredster9/site-interface"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	corpus, err := deps.Store.Load(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", siteindex.ErrorMessage(err))
		return err
	}

	answer, err := deps.Asker.Ask(deps.Ctx, corpus, c.Question)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", siteindex.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, answer.Text)

	if len(answer.Sources) > 0 {
		fmt.Fprintln(deps.Stdout, "\nSources:")
		for _, doc := range answer.Sources {
			fmt.Fprintf(deps.Stdout, "  %s\n    %s\n", doc.Title, doc.URL)
		}
	}

	return nil
}
