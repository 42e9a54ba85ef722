package main

import (
	"fmt"
	"time"

	"github.com/hboone/quotemill"
	"github.com/hboone/quotemill/crawl"
)

// Run executes the run command.
func (c *RunCmd) Run(deps *Dependencies) error {
	opts := quotemill.CrawlOptions{Limit: c.Limit}
	if c.Since != "" {
		since, err := time.Parse("2006-01-02", c.Since)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: invalid --since date %q, want YYYY-MM-DD\n", c.Since)
			return err
		}
		opts.Since = &since
	}

	source := crawl.Source{
		Kind:      c.Kind,
		Origin:    c.Origin,
		FetchFull: c.FetchFull,
	}

	result, err := deps.Harvester.Run(deps.Ctx, source, opts)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", quotemill.ErrorMessage(err))
		return err
	}

	run := &quotemill.Run{Source: c.Kind, Origin: c.Origin}
	if err := deps.Quotes.CreateRun(deps.Ctx, run); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", quotemill.ErrorMessage(err))
		return err
	}
	if err := deps.Quotes.CreateQuotes(deps.Ctx, run.ID, result.Quotes); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", quotemill.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Run %s: %d articles, %d chunks, %d quotes (%d duplicates dropped)\n",
		run.ID, result.Articles, result.Chunks, len(result.Quotes), result.Duplicates)
	if result.FailedArticles > 0 || result.FailedChunks > 0 {
		fmt.Fprintf(deps.Stderr, "  skipped %d articles, %d chunks\n", result.FailedArticles, result.FailedChunks)
	}

	if len(result.Quotes) > 0 {
		fmt.Fprintf(deps.Stdout, "\n%s\n", quotemill.FormatQuotes(result.Quotes))
	}

	if deps.Exporter != nil {
		if err := deps.Exporter.Export(deps.Ctx, result.Quotes); err != nil {
			fmt.Fprintf(deps.Stderr, "error exporting: %s\n", quotemill.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "\nExported %d quotes to %s\n", len(result.Quotes), c.Export)
	}

	if deps.Notifier != nil {
		if err := deps.Notifier.Notify(deps.Ctx, result.Quotes); err != nil {
			// Notification failure is logged, not fatal.
			fmt.Fprintf(deps.Stderr, "warning: notification failed: %s\n", quotemill.ErrorMessage(err))
		}
	}

	return nil
}
