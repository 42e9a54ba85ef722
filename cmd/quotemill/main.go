package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/hboone/quotemill"
	"github.com/hboone/quotemill/crawl"
	"github.com/hboone/quotemill/fs"
	"github.com/hboone/quotemill/gemini"
	"github.com/hboone/quotemill/goquery"
	"github.com/hboone/quotemill/htmltomarkdown"
	qmhttp "github.com/hboone/quotemill/http"
	"github.com/hboone/quotemill/readability"
	"github.com/hboone/quotemill/rod"
	"github.com/hboone/quotemill/slack"
	qmslog "github.com/hboone/quotemill/slog"
	"github.com/hboone/quotemill/sqlite"
	"github.com/hboone/quotemill/trafilatura"
	"google.golang.org/genai"
)

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
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	QuoteService quotemill.QuoteService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
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
		kong.Name("quotemill"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'quotemill --help' to see available commands")
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

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set QUOTEMILL_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.QuoteService = sqlite.NewQuoteService(m.DB)
	deps.DB = m.DB
	deps.Quotes = m.QuoteService

	if cmd == "run" || cmd == "chunk" {
		fetcher, err := newFetcher(cli, stderr)
		if err != nil {
			return err
		}
		defer fetcher.Close()

		deps.Fetcher = qmslog.NewLoggingFetcher(fetcher, deps.Logger)
		deps.Extractor = quotemill.ExtractorChain{
			goquery.NewExtractor(),
			trafilatura.NewExtractor(),
			readability.NewExtractor(),
		}
		deps.Converter = htmltomarkdown.NewConverter()
	}

	if cmd == "run" {
		apiKey, err := resolveAPIKey()
		if err != nil {
			fmt.Fprintln(stderr, "Set GEMINI_API_KEY or write the key to ~/"+fs.DefaultKeyFile+". Get a key at https://aistudio.google.com/apikey")
			return err
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		scorerOpts := []gemini.Option{gemini.WithLogger(deps.Logger)}
		if cli.Run.Model != "" {
			scorerOpts = append(scorerOpts, gemini.WithModel(cli.Run.Model))
		}
		scorer := gemini.NewScorer(client, scorerOpts...)

		deps.Harvester = &crawl.Harvester{
			Fetcher:     deps.Fetcher,
			Feeds:       qmhttp.NewFeedService(deps.Fetcher),
			Links:       &goquery.LinkExtractor{Patterns: cli.Run.Pattern},
			Dates:       &goquery.DateExtractor{},
			Extractor:   deps.Extractor,
			Converter:   deps.Converter,
			Scorer:      qmslog.NewLoggingScorer(scorer, deps.Logger),
			RateLimiter: crawl.NewDomainLimiter(cli.Run.RPS),
			MinScore:    cli.Run.MinScore,
			Concurrency: cli.Run.Concurrency,
			Logger:      deps.Logger,
		}

		if cli.Run.Export != "" {
			deps.Exporter = fs.NewExporter(cli.Run.Export)
		}
		if cli.Run.Webhook != "" {
			deps.Notifier = slack.NewNotifier(cli.Run.Webhook)
		}
	}

	return kongCtx.Run(deps)
}

// newFetcher picks plain HTTP or browser rendering per flags.
func newFetcher(cli *CLI, stderr io.Writer) (quotemill.Fetcher, error) {
	render := cli.Run.Render || cli.Chunk.Render
	if !render {
		return qmhttp.NewFetcher(), nil
	}

	fetcher, err := rod.NewFetcher()
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --render")
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}
	return fetcher, nil
}

// resolveAPIKey checks the environment first, then the key file.
func resolveAPIKey() (string, error) {
	chain := quotemill.KeyResolverChain{
		quotemill.StaticKey(os.Getenv("GEMINI_API_KEY")),
		fs.NewKeyFile(""),
	}
	return chain.ResolveKey()
}

func defaultDBPath() string {
	if path := os.Getenv("QUOTEMILL_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "quotemill.db"
	}
	dir := filepath.Join(home, ".quotemill")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "quotemill.db")
}
