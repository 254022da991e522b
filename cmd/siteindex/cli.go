package main

import (
	"context"
	"io"

	siteindex "github.com/fredster9/site-interface"
	"github.com/fredster9/site-interface/crawl"
	"github.com/fredster9/site-interface/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	DB     *sqlite.DB

	Store       siteindex.CorpusStore
	Crawler     *crawl.Crawler
	Embedder    siteindex.Embedder
	Asker       siteindex.Asker
	Recommender siteindex.Recommender
	QALog       *sqlite.QALogService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable verbose logging"`

	Crawl     CrawlCmd     `cmd:"" help:"Crawl the site and rebuild the content cache"`
	Ask       AskCmd       `cmd:"" help:"Ask a question about the site content"`
	Recommend RecommendCmd `cmd:"" help:"Recommend content for a user profile"`
	Docs      DocsCmd      `cmd:"" help:"List cached documents grouped by type"`
	Log       LogCmd       `cmd:"" help:"Show recent question/answer log entries"`
	Backfill  BackfillCmd  `cmd:"" help:"Compute missing document embeddings"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	Origin string `default:"https://ridewithvia.com" help:"Site origin to crawl"`
	Force  bool   `short:"f" help:"Rebuild even if a cache already exists"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Question string `arg:"" help:"Question to ask about the site content"`
}

// RecommendCmd is the "recommend" subcommand.
type RecommendCmd struct {
	Category string `required:"" enum:"city,transit_agency" help:"Organization category (city or transit_agency)"`
	State    string `required:"" help:"Two-letter US state code"`
}

// DocsCmd is the "docs" subcommand.
type DocsCmd struct {
	Full bool `help:"Show description and states for each document"`
}

// LogCmd is the "log" subcommand.
type LogCmd struct {
	Limit int `default:"20" help:"Maximum entries to show"`
}

// BackfillCmd is the "backfill" subcommand.
type BackfillCmd struct{}
