package main

import (
	"fmt"
	"time"

	siteindex "github.com/fredster9/site-interface"
)

// Run executes the log command.
func (c *LogCmd) Run(deps *Dependencies) error {
	entries, err := deps.QALog.Recent(deps.Ctx, c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", siteindex.ErrorMessage(err))
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "No logged questions.")
		return nil
	}

	for _, entry := range entries {
		fmt.Fprintf(deps.Stdout, "[%s]\nQ: %s\nA: %s\n\n",
			entry.CreatedAt.Format(time.RFC3339), entry.Question, entry.Answer)
	}

	return nil
}
