package main

import (
	"fmt"

	"github.com/hboone/quotemill"
)

// Run executes the chunk command.
func (c *ChunkCmd) Run(deps *Dependencies) error {
	html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", quotemill.ErrorMessage(err))
		return err
	}

	extracted, err := deps.Extractor.Extract(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", quotemill.ErrorMessage(err))
		return err
	}

	markdown, err := deps.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", quotemill.ErrorMessage(err))
		return err
	}

	chunks := quotemill.SplitChunks(markdown, c.MinParagraph, c.MaxChunk)
	if len(chunks) == 0 {
		fmt.Fprintln(deps.Stdout, "No chunks: page has no paragraphs over the minimum length.")
		return nil
	}

	if extracted.Title != "" {
		fmt.Fprintf(deps.Stdout, "%s\n\n", extracted.Title)
	}
	for i, chunk := range chunks {
		fmt.Fprintf(deps.Stdout, "--- chunk %d (%d chars) ---\n%s\n\n", i, len(chunk), chunk)
	}

	return nil
}
