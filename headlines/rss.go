package headlines

import (
	"context"
	"fmt"
	"time"

	"newspulse/types"

	"github.com/mmcdole/gofeed"
)

// FeedPresets maps friendly names to RSS feed URLs
var FeedPresets = map[string]string{
	"bbc": "https://feeds.bbci.co.uk/news/world/rss.xml",
	"cna": "https://www.channelnewsasia.com/api/v1/rss-outbound-feed?_format=xml",
	"st":  "https://www.straitstimes.com/news/singapore/rss.xml",
	"hn":  "https://hnrss.org/newest",
	"tr":  "https://www.technologyreview.com/feed/",
}

// ResolveFeedURL resolves a feed identifier to a URL
// If the input is a preset name, returns the corresponding URL
// Otherwise, returns the input as-is (assuming it's a direct URL)
func ResolveFeedURL(feedInput string) string {
	if url, exists := FeedPresets[feedInput]; exists {
		return url
	}
	return feedInput
}

// RSSSource implements Source by parsing an RSS/Atom feed. Feed items
// are mapped onto the same loose Article schema the news API produces,
// so the analyzer consumes both sources identically.
type RSSSource struct {
	parser  *gofeed.Parser
	feedURL string
}

// NewRSSSource creates a source for the given preset name or direct URL.
func NewRSSSource(feedInput string) *RSSSource {
	return &RSSSource{
		parser:  gofeed.NewParser(),
		feedURL: ResolveFeedURL(feedInput),
	}
}

// TopHeadlines retrieves and parses the feed, returning up to q.PageSize
// articles. Category and language are ignored: a feed is already scoped.
func (s *RSSSource) TopHeadlines(ctx context.Context, q Query) ([]types.Article, error) {
	feed, err := s.parser.ParseURLWithContext(s.feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}

	count := len(feed.Items)
	if q.PageSize > 0 && q.PageSize < count {
		count = q.PageSize
	}

	articles := make([]types.Article, 0, count)
	for i := 0; i < count; i++ {
		item := feed.Items[i]

		article := types.Article{
			"title":  item.Title,
			"url":    item.Link,
			"source": map[string]any{"id": nil, "name": feed.Title},
		}

		if item.Description != "" {
			article["description"] = item.Description
		}
		if item.Author != nil && item.Author.Name != "" {
			article["author"] = item.Author.Name
		}

		// Prefer the published date, fall back to updated
		if item.PublishedParsed != nil {
			article["publishedAt"] = item.PublishedParsed.UTC().Format(time.RFC3339)
		} else if item.UpdatedParsed != nil {
			article["publishedAt"] = item.UpdatedParsed.UTC().Format(time.RFC3339)
		}

		if item.Image != nil {
			article["urlToImage"] = item.Image.URL
		}

		articles = append(articles, article)
	}

	return articles, nil
}
