package news

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
)

// FeedSource reads headlines from a public RSS feed.
type FeedSource struct {
	name   string
	url    string
	parser *gofeed.Parser
}

func NewFeedSource(name, url string) *FeedSource {
	parser := gofeed.NewParser()
	parser.Client = &http.Client{Timeout: 30 * time.Second}
	return &FeedSource{
		name:   name,
		url:    url,
		parser: parser,
	}
}

func NewBBC(url string) *FeedSource {
	return NewFeedSource("BBC", url)
}

func NewTimesOfIndia(url string) *FeedSource {
	return NewFeedSource("Times of India", url)
}

func (s *FeedSource) Name() string {
	return s.name
}

func (s *FeedSource) Fetch(ctx context.Context, limit int) ([]Headline, error) {
	feed, err := s.parser.ParseURLWithContext(s.url, ctx)
	if err != nil {
		return nil, fmt.Errorf("%s feed fetch: %w", s.name, err)
	}

	items := feed.Items
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	headlines := make([]Headline, 0, len(items))
	for _, item := range items {
		if item == nil || item.Title == "" {
			continue
		}
		headlines = append(headlines, Headline{
			Title:  item.Title,
			Source: s.name,
		})
	}

	return headlines, nil
}
