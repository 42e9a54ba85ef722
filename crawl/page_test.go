package crawl_test

import (
	"context"
	"testing"
	"time"

	"github.com/hboone/quotemill"
	"github.com/hboone/quotemill/crawl"
	"github.com/hboone/quotemill/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// listingFixture wires a PageCrawler over canned listing pages. Pages not
// present in the map return ENOTFOUND, terminating pagination.
type listingFixture struct {
	pages   map[string][]string
	fetched []string
}

func (f *listingFixture) crawler(origin string) *crawl.PageCrawler {
	return &crawl.PageCrawler{
		Fetcher: &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				f.fetched = append(f.fetched, url)
				if _, ok := f.pages[url]; ok {
					return "listing:" + url, nil
				}
				return "article:" + url, nil
			},
		},
		Links: &mock.LinkExtractor{
			ExtractLinksFn: func(_, baseURL string) ([]string, error) {
				links, ok := f.pages[baseURL]
				if !ok {
					return nil, nil
				}
				return links, nil
			},
		},
		Origin: origin,
	}
}

func TestPageCrawler_FetchAll(t *testing.T) {
	t.Parallel()

	t.Run("walks pagination until a page yields nothing new", func(t *testing.T) {
		t.Parallel()

		f := &listingFixture{pages: map[string][]string{
			"https://site.test/blog":         {"https://site.test/posts/a", "https://site.test/posts/b"},
			"https://site.test/blog/page/2/": {"https://site.test/posts/c"},
			"https://site.test/blog/page/3/": {},
		}}

		articles, err := f.crawler("https://site.test/blog").FetchAll(context.Background(), quotemill.CrawlOptions{})
		require.NoError(t, err)
		require.Len(t, articles, 3)
		assert.Equal(t, "https://site.test/posts/a", articles[0].URL)
		assert.Equal(t, "https://site.test/posts/c", articles[2].URL)
		assert.Equal(t, "article:https://site.test/posts/a", articles[0].RawContent)
	})

	t.Run("not-found past page one terminates pagination cleanly", func(t *testing.T) {
		t.Parallel()

		calls := 0
		c := &crawl.PageCrawler{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					calls++
					switch url {
					case "https://site.test/blog":
						return "listing", nil
					case "https://site.test/posts/a":
						return "article", nil
					default:
						return "", quotemill.Errorf(quotemill.ENOTFOUND, "no page at %s", url)
					}
				},
			},
			Links: &mock.LinkExtractor{
				ExtractLinksFn: func(_, baseURL string) ([]string, error) {
					if baseURL == "https://site.test/blog" {
						return []string{"https://site.test/posts/a"}, nil
					}
					return nil, nil
				},
			},
			Origin: "https://site.test/blog",
		}

		articles, err := c.FetchAll(context.Background(), quotemill.CrawlOptions{})
		require.NoError(t, err)
		assert.Len(t, articles, 1)
		// listing page 1, one article, page 2 (404)
		assert.Equal(t, 3, calls)
	})

	t.Run("duplicate links across pages are fetched once", func(t *testing.T) {
		t.Parallel()

		f := &listingFixture{pages: map[string][]string{
			"https://site.test/blog":         {"https://site.test/posts/a"},
			"https://site.test/blog/page/2/": {"https://site.test/posts/a", "https://site.test/posts/b"},
		}}

		articles, err := f.crawler("https://site.test/blog").FetchAll(context.Background(), quotemill.CrawlOptions{})
		require.NoError(t, err)
		require.Len(t, articles, 2)
		assert.Equal(t, "https://site.test/posts/a", articles[0].URL)
		assert.Equal(t, "https://site.test/posts/b", articles[1].URL)
	})

	t.Run("limit stops further article fetches", func(t *testing.T) {
		t.Parallel()

		f := &listingFixture{pages: map[string][]string{
			"https://site.test/blog": {
				"https://site.test/posts/a",
				"https://site.test/posts/b",
				"https://site.test/posts/c",
			},
		}}

		articles, err := f.crawler("https://site.test/blog").FetchAll(context.Background(), quotemill.CrawlOptions{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, articles, 2)
		assert.NotContains(t, f.fetched, "https://site.test/posts/c")
	})

	t.Run("failed article fetch is skipped, crawl continues", func(t *testing.T) {
		t.Parallel()

		c := &crawl.PageCrawler{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					switch url {
					case "https://site.test/blog":
						return "listing", nil
					case "https://site.test/posts/bad":
						return "", quotemill.Errorf(quotemill.EUNAVAILABLE, "connection reset")
					case "https://site.test/posts/good":
						return "article", nil
					default:
						return "", quotemill.Errorf(quotemill.ENOTFOUND, "no page")
					}
				},
			},
			Links: &mock.LinkExtractor{
				ExtractLinksFn: func(_, baseURL string) ([]string, error) {
					if baseURL == "https://site.test/blog" {
						return []string{"https://site.test/posts/bad", "https://site.test/posts/good"}, nil
					}
					return nil, nil
				},
			},
			Origin: "https://site.test/blog",
		}

		articles, err := c.FetchAll(context.Background(), quotemill.CrawlOptions{})
		require.NoError(t, err)
		require.Len(t, articles, 1)
		assert.Equal(t, "https://site.test/posts/good", articles[0].URL)
	})

	t.Run("listing failure returns accumulated articles with the error", func(t *testing.T) {
		t.Parallel()

		c := &crawl.PageCrawler{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					switch url {
					case "https://site.test/blog":
						return "listing", nil
					case "https://site.test/posts/a":
						return "article", nil
					default:
						return "", quotemill.Errorf(quotemill.EUNAVAILABLE, "server unavailable")
					}
				},
			},
			Links: &mock.LinkExtractor{
				ExtractLinksFn: func(_, baseURL string) ([]string, error) {
					if baseURL == "https://site.test/blog" {
						return []string{"https://site.test/posts/a"}, nil
					}
					return nil, nil
				},
			},
			Origin: "https://site.test/blog",
		}

		articles, err := c.FetchAll(context.Background(), quotemill.CrawlOptions{})
		require.Error(t, err)
		assert.Equal(t, quotemill.EUNAVAILABLE, quotemill.ErrorCode(err))
		assert.Len(t, articles, 1)
	})

	t.Run("since filter drops dated articles, keeps undated ones", func(t *testing.T) {
		t.Parallel()

		since := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		old := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

		f := &listingFixture{pages: map[string][]string{
			"https://site.test/blog": {"https://site.test/posts/old", "https://site.test/posts/undated"},
		}}
		c := f.crawler("https://site.test/blog")
		c.Dates = &mock.DateExtractor{
			ExtractDateFn: func(html string) time.Time {
				if html == "article:https://site.test/posts/old" {
					return old
				}
				return time.Time{}
			},
		}

		articles, err := c.FetchAll(context.Background(), quotemill.CrawlOptions{Since: &since})
		require.NoError(t, err)
		require.Len(t, articles, 1)
		assert.Equal(t, "https://site.test/posts/undated", articles[0].URL)
		assert.False(t, articles[0].PublishedAt.IsZero())
	})

	t.Run("invalid origin is a configuration error", func(t *testing.T) {
		t.Parallel()

		c := &crawl.PageCrawler{Origin: ""}
		_, err := c.FetchAll(context.Background(), quotemill.CrawlOptions{})
		require.Error(t, err)
		assert.Equal(t, quotemill.EINVALID, quotemill.ErrorCode(err))
	})
}
