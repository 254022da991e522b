package main

import (
	"context"
	"fmt"
	"io"
	stdlog "log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"google.golang.org/genai"

	siteindex "github.com/fredster9/site-interface"
	"github.com/fredster9/site-interface/crawl"
	"github.com/fredster9/site-interface/fs"
	"github.com/fredster9/site-interface/gemini"
	"github.com/fredster9/site-interface/goquery"
	sihttp "github.com/fredster9/site-interface/http"
	"github.com/fredster9/site-interface/recommend"
	"github.com/fredster9/site-interface/search"
	"github.com/fredster9/site-interface/sheets"
	silog "github.com/fredster9/site-interface/slog"
	"github.com/fredster9/site-interface/sqlite"
)

// crawlRequestsPerSecond paces discovery and extraction fetches.
const crawlRequestsPerSecond = 2.0

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Corpus cache path. Set before calling Run().
	CachePath string

	// Audit log database path. Set before calling Run().
	DBPath string

	// SQLite database backing the local audit log.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		CachePath: defaultCachePath(),
		DBPath:    defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("siteindex"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'siteindex --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := newLogger(stderr, cli.Verbose)

	deps.Store = fs.NewCorpusStore(m.CachePath)

	switch cmd {
	case "crawl":
		fetcher := silog.NewLoggingFetcher(sihttp.NewFetcher(), logger)
		defer fetcher.Close()

		deps.Crawler = &crawl.Crawler{
			Fetcher:   fetcher,
			Links:     goquery.NewLinkExtractor(),
			Extractor: goquery.NewExtractor(),
			Store:     deps.Store,
			Sitemaps:  silog.NewLoggingSitemapService(sihttp.NewSitemapService(nil), logger),
			Limiter:   crawl.NewLimiter(crawlRequestsPerSecond),
			Origin:    cli.Crawl.Origin,
		}

	case "ask":
		client, err := newGenaiClient(ctx, stderr)
		if err != nil {
			return err
		}

		if err := m.openDB(stderr); err != nil {
			return err
		}
		defer m.Close()
		deps.QALog = sqlite.NewQALogService(m.DB)

		audit := &siteindex.FallbackLogger{
			Primary:  sheetsLogger(ctx, stderr, logger),
			Fallback: deps.QALog,
		}

		embedder := gemini.NewEmbedder(client, gemini.DefaultEmbeddingModel)
		completer := gemini.NewCompleter(client, gemini.DefaultCompletionModel)
		searcher := silog.NewLoggingSearcher(search.NewSearcher(embedder, deps.Store), logger)
		deps.Asker = gemini.NewAsker(completer, searcher, silog.NewLoggingAuditLogger(audit, logger))

	case "recommend":
		client, err := newGenaiClient(ctx, stderr)
		if err != nil {
			return err
		}

		completer := gemini.NewCompleter(client, gemini.DefaultCompletionModel)
		deps.Recommender = recommend.NewRecommender(gemini.NewShortlistRanker(completer))

	case "backfill":
		client, err := newGenaiClient(ctx, stderr)
		if err != nil {
			return err
		}

		deps.Embedder = gemini.NewEmbedder(client, gemini.DefaultEmbeddingModel)

	case "log":
		if err := m.openDB(stderr); err != nil {
			return err
		}
		defer m.Close()
		deps.QALog = sqlite.NewQALogService(m.DB)
	}

	return kongCtx.Run(deps)
}

// openDB opens the local audit log database.
func (m *Main) openDB(stderr io.Writer) error {
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set SITEINDEX_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	return nil
}

// newGenaiClient creates a Gemini API client from the environment.
func newGenaiClient(ctx context.Context, stderr io.Writer) (*genai.Client, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
		return nil, fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
	}
	return client, nil
}

// sheetsLogger builds the Google Sheets audit sink when the environment
// configures one. A missing or failing configuration returns nil; the
// FallbackLogger then uses the local sink alone.
func sheetsLogger(ctx context.Context, stderr io.Writer, logger *stdlog.Logger) siteindex.AuditLogger {
	spreadsheetID := os.Getenv("SITEINDEX_SHEET_ID")
	if spreadsheetID == "" {
		return nil
	}
	credentials := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")

	l, err := sheets.NewQALogger(ctx, credentials, spreadsheetID)
	if err != nil {
		fmt.Fprintf(stderr, "warning: Google Sheets logging unavailable: %s\n", siteindex.ErrorMessage(err))
		return nil
	}
	logger.Debug("sheets audit sink configured", "spreadsheet", spreadsheetID)
	return l
}

// newLogger builds the process logger. Verbose mode surfaces the slog
// decorator output; otherwise only warnings reach stderr.
func newLogger(stderr io.Writer, verbose bool) *stdlog.Logger {
	level := stdlog.LevelWarn
	if verbose {
		level = stdlog.LevelDebug
	}
	return stdlog.New(stdlog.NewTextHandler(stderr, &stdlog.HandlerOptions{Level: level}))
}

func defaultCachePath() string {
	if path := os.Getenv("SITEINDEX_CACHE"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "corpus.json"
	}
	dir := filepath.Join(home, ".siteindex")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "corpus.json")
}

func defaultDBPath() string {
	if path := os.Getenv("SITEINDEX_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "siteindex.db"
	}
	dir := filepath.Join(home, ".siteindex")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "siteindex.db")
}
