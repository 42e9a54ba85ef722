package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/hboone/quotemill"
	"github.com/hboone/quotemill/crawl"
	"github.com/hboone/quotemill/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	DB        *sqlite.DB
	Quotes    quotemill.QuoteService
	Harvester *crawl.Harvester
	Fetcher   quotemill.Fetcher
	Extractor quotemill.Extractor
	Converter quotemill.Converter
	Exporter  quotemill.Exporter
	Notifier  quotemill.Notifier
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Run    RunCmd    `cmd:"" help:"Harvest quotes from a source"`
	Quotes QuotesCmd `cmd:"" help:"List stored quotes"`
	Chunk  ChunkCmd  `cmd:"" help:"Show how a page would be chunked (no scoring)"`

	Verbose bool `short:"v" help:"Enable debug logging"`
}

// RunCmd is the "run" subcommand.
type RunCmd struct {
	Kind   string `arg:"" enum:"listing,feed,page" help:"Source kind: listing, feed, or page"`
	Origin string `arg:"" help:"Listing URL, feed URL, or article URL"`

	Since       string   `help:"Only articles published on or after this date (YYYY-MM-DD)"`
	Limit       int      `short:"n" help:"Max articles to fetch (0 = no limit)"`
	MinScore    int      `default:"6" help:"Admission score threshold (1-10)"`
	Pattern     []string `short:"p" help:"Listing link path pattern (repeatable)"`
	FetchFull   bool     `help:"Fetch each feed item's page for the full body"`
	Render      bool     `help:"Use a headless browser for JavaScript-rendered pages"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent scoring calls"`
	RPS         float64  `default:"1.0" help:"Max requests per second per domain"`
	Model       string   `help:"Classifier model override"`
	Export      string   `short:"o" help:"Export quotes to this file (.json or .csv)"`
	Webhook     string   `help:"Post top quotes to this Slack webhook"`
}

// QuotesCmd is the "quotes" subcommand.
type QuotesCmd struct {
	RunID    string `name:"run" help:"Only quotes from this run ID"`
	MinScore int    `help:"Only quotes scoring at least this value"`
	Limit    int    `short:"n" default:"20" help:"Max quotes to show"`
	Offset   int    `help:"Skip this many quotes"`
}

// ChunkCmd is the "chunk" subcommand.
type ChunkCmd struct {
	URL string `arg:"" help:"Article URL"`

	MinParagraph int  `default:"50" help:"Minimum paragraph length"`
	MaxChunk     int  `default:"1000" help:"Maximum chunk length"`
	Render       bool `help:"Use a headless browser for JavaScript-rendered pages"`
}
