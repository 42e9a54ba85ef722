package crawl

import (
	"context"
	"log/slog"

	"github.com/hboone/quotemill"
	"golang.org/x/sync/errgroup"
)

// Source kinds accepted by the Harvester.
const (
	SourceListing = "listing"
	SourceFeed    = "feed"
	SourcePage    = "page"
)

// Source describes where and how to discover articles.
type Source struct {
	// Kind selects the crawl strategy: listing, feed, or page.
	Kind string

	// Origin is the listing URL, feed URL, or article URL.
	Origin string

	// FetchFull fetches each feed item's page for the full article body.
	// Feed sources only.
	FetchFull bool
}

// Validate returns an error if the source cannot be crawled.
func (s Source) Validate() error {
	switch s.Kind {
	case SourceListing, SourceFeed, SourcePage:
	default:
		return quotemill.Errorf(quotemill.EINVALID, "unknown source kind %q", s.Kind)
	}
	if s.Origin == "" {
		return quotemill.Errorf(quotemill.EINVALID, "source origin required")
	}
	return nil
}

// Result holds the outcome of a harvest run. An empty Quotes slice with a
// nil error is a valid outcome: the run succeeded and found nothing.
type Result struct {
	Quotes []*quotemill.Quote

	Articles       int
	FailedArticles int
	Chunks         int
	FailedChunks   int
	Candidates     int
	Duplicates     int
}

// Harvester orchestrates a full run: crawl a source, extract and chunk
// each article, score each chunk, admit candidates over the score
// threshold, and deduplicate the admitted quotes.
type Harvester struct {
	Fetcher     quotemill.Fetcher
	Feeds       quotemill.FeedService
	Links       quotemill.LinkExtractor
	Dates       quotemill.DateExtractor
	Extractor   quotemill.Extractor
	Converter   quotemill.Converter
	Scorer      quotemill.Scorer
	RateLimiter quotemill.DomainLimiter

	// MinScore is the admission threshold: a candidate is kept only if
	// it is worthy and scores at least this value.
	MinScore int

	// MinParagraphLen and MaxChunkLen control chunking. Zero means the
	// package defaults.
	MinParagraphLen int
	MaxChunkLen     int

	// Concurrency bounds parallel scoring calls. Zero means 4.
	Concurrency int

	Logger   *slog.Logger
	Progress quotemill.CrawlProgressFunc
}

// scoreUnit pairs a chunk with its owning article for admission.
type scoreUnit struct {
	article *quotemill.Article
	chunk   quotemill.Chunk
}

// Run executes one harvest of the source. Per-article and per-chunk
// failures degrade to fewer results; only a bad source, a top-level fetch
// failure with nothing accumulated, or context cancellation fail the run.
func (h *Harvester) Run(ctx context.Context, source Source, opts quotemill.CrawlOptions) (*Result, error) {
	logger := h.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if err := source.Validate(); err != nil {
		return nil, err
	}

	crawler, err := h.crawler(source)
	if err != nil {
		return nil, err
	}

	articles, err := crawler.FetchAll(ctx, opts)
	if err != nil {
		if len(articles) == 0 {
			return nil, err
		}
		logger.Warn("crawl ended early, processing partial set",
			"source", source.Origin, "articles", len(articles), "error", err)
	}

	result := &Result{Articles: len(articles)}
	units := h.chunkArticles(logger, articles, result)
	result.Chunks = len(units)

	scored, failed, err := h.scoreChunks(ctx, logger, units)
	if err != nil {
		return nil, err
	}
	result.FailedChunks = failed

	var admitted []*quotemill.Quote
	for i, unit := range units {
		for _, candidate := range scored[i] {
			result.Candidates++
			if !candidate.Admissible(h.MinScore) {
				continue
			}
			admitted = append(admitted, quotemill.MergeQuote(unit.article, candidate))
		}
	}

	result.Quotes = quotemill.DedupeQuotes(admitted)
	result.Duplicates = len(admitted) - len(result.Quotes)

	return result, nil
}

// chunkArticles extracts, converts, and chunks each article. Articles
// that fail extraction or conversion are logged and skipped.
func (h *Harvester) chunkArticles(logger *slog.Logger, articles []*quotemill.Article, result *Result) []scoreUnit {
	minParagraphLen := h.MinParagraphLen
	if minParagraphLen <= 0 {
		minParagraphLen = quotemill.DefaultMinParagraphLen
	}
	maxChunkLen := h.MaxChunkLen
	if maxChunkLen <= 0 {
		maxChunkLen = quotemill.DefaultMaxChunkLen
	}

	var units []scoreUnit
	for _, article := range articles {
		extracted, err := h.Extractor.Extract(article.RawContent)
		if err != nil {
			logger.Warn("extraction failed, skipping article", "url", article.URL, "error", err)
			result.FailedArticles++
			continue
		}
		if article.Title == "" {
			article.Title = extracted.Title
		}

		markdown, err := h.Converter.Convert(extracted.ContentHTML)
		if err != nil {
			logger.Warn("conversion failed, skipping article", "url", article.URL, "error", err)
			result.FailedArticles++
			continue
		}

		for _, chunk := range quotemill.ChunkArticle(article, markdown, minParagraphLen, maxChunkLen) {
			units = append(units, scoreUnit{article: article, chunk: chunk})
		}
	}
	return units
}

// scoreChunks scores all chunks, in parallel up to the configured
// concurrency. Results are indexed by unit so admission order matches
// crawl and extraction order regardless of scheduling. A chunk whose
// scoring call fails contributes nothing and is counted as failed.
func (h *Harvester) scoreChunks(ctx context.Context, logger *slog.Logger, units []scoreUnit) ([][]quotemill.Candidate, int, error) {
	concurrency := h.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	scored := make([][]quotemill.Candidate, len(units))
	errs := make([]error, len(units))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, unit := range units {
		i, unit := i, unit
		g.Go(func() error {
			candidates, err := h.Scorer.Score(gctx, unit.chunk)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				errs[i] = err
				return nil
			}
			scored[i] = candidates
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	failed := 0
	for i, err := range errs {
		if err == nil {
			continue
		}
		failed++
		logger.Warn("scoring failed, skipping chunk",
			"article", units[i].chunk.ArticleURL, "chunk", units[i].chunk.Position, "error", err)
	}

	return scored, failed, nil
}

// crawler builds the strategy for the source kind.
func (h *Harvester) crawler(source Source) (quotemill.Crawler, error) {
	switch source.Kind {
	case SourceListing:
		if h.Links == nil {
			return nil, quotemill.Errorf(quotemill.EINVALID, "no link extractor configured for listing source")
		}
		return &PageCrawler{
			Fetcher:     h.Fetcher,
			Links:       h.Links,
			Dates:       h.Dates,
			RateLimiter: h.RateLimiter,
			Origin:      source.Origin,
			Logger:      h.Logger,
			Progress:    h.Progress,
		}, nil
	case SourceFeed:
		if h.Feeds == nil {
			return nil, quotemill.Errorf(quotemill.EINVALID, "no feed service configured for feed source")
		}
		return &FeedCrawler{
			Feeds:       h.Feeds,
			Fetcher:     h.Fetcher,
			RateLimiter: h.RateLimiter,
			Origin:      source.Origin,
			FetchFull:   source.FetchFull,
			Logger:      h.Logger,
			Progress:    h.Progress,
		}, nil
	case SourcePage:
		return &SingleCrawler{
			Fetcher:     h.Fetcher,
			Dates:       h.Dates,
			RateLimiter: h.RateLimiter,
			Origin:      source.Origin,
		}, nil
	}
	return nil, quotemill.Errorf(quotemill.EINVALID, "unknown source kind %q", source.Kind)
}
