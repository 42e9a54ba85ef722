package main

import (
	"fmt"

	"github.com/hboone/quotemill"
)

// Run executes the quotes command.
func (c *QuotesCmd) Run(deps *Dependencies) error {
	filter := quotemill.QuoteFilter{
		Limit:  c.Limit,
		Offset: c.Offset,
	}
	if c.RunID != "" {
		filter.RunID = &c.RunID
	}
	if c.MinScore > 0 {
		filter.MinScore = &c.MinScore
	}

	quotes, err := deps.Quotes.FindQuotes(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", quotemill.ErrorMessage(err))
		return err
	}

	if len(quotes) == 0 {
		fmt.Fprintln(deps.Stdout, "No quotes found. Use 'quotemill run' to harvest some.")
		return nil
	}

	fmt.Fprintln(deps.Stdout, quotemill.FormatQuotes(quotes))
	return nil
}
