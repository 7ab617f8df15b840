package news

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/assert/v2"
)

const feedXML = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Test Feed</title>
    <link>https://example.com</link>
    <item>
      <title>Parliament passes budget bill</title>
      <link>https://example.com/budget</link>
      <description>The annual budget was approved late on Tuesday.</description>
    </item>
    <item>
      <title>Monsoon arrives early</title>
      <link>https://example.com/monsoon</link>
      <description>Rains reached the coast two weeks ahead of schedule.</description>
    </item>
    <item>
      <title>Rail network expansion announced</title>
      <link>https://example.com/rail</link>
      <description>Three new lines are planned for next year.</description>
    </item>
  </channel>
</rss>`

func newFeedServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(feedXML))
	}))
}

func TestFeedFetch(t *testing.T) {
	srv := newFeedServer(t)
	defer srv.Close()

	source := NewFeedSource("BBC", srv.URL)

	headlines, err := source.Fetch(context.Background(), 9)

	assert.Equal(t, nil, err)
	assert.Equal(t, 3, len(headlines))
	assert.Equal(t, "Parliament passes budget bill", headlines[0].Title)
	assert.Equal(t, "BBC", headlines[0].Source)
	assert.Equal(t, "BBC", headlines[2].Source)
}

func TestFeedFetchRespectsLimit(t *testing.T) {
	srv := newFeedServer(t)
	defer srv.Close()

	source := NewTimesOfIndia(srv.URL)

	headlines, err := source.Fetch(context.Background(), 2)

	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(headlines))
	assert.Equal(t, "Times of India", headlines[0].Source)
}

func TestFeedFetchServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream broken", http.StatusBadGateway)
	}))
	defer srv.Close()

	source := NewBBC(srv.URL)

	_, err := source.Fetch(context.Background(), 9)

	assert.NotEqual(t, nil, err)
}

func TestFeedFetchUnreachable(t *testing.T) {
	srv := newFeedServer(t)
	srv.Close() // connection refused

	source := NewBBC(srv.URL)

	_, err := source.Fetch(context.Background(), 9)

	assert.NotEqual(t, nil, err)
}
