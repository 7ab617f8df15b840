package news

import "context"

// Headline is one news item as it appears in the digest.
type Headline struct {
	Title  string
	Source string
}

type Source interface {
	Fetch(ctx context.Context, limit int) ([]Headline, error)
	Name() string
}
