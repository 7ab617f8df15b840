package llm

import (
	"context"
	"time"
)

// HeadlineInput, WeatherInput and InboxInput mirror the fetched content
// without importing the fetcher packages, so this package stays usable
// on its own.
type HeadlineInput struct {
	Title  string
	Source string
}

type WeatherInput struct {
	City        string
	Temperature float64
	FeelsLike   float64
	Condition   string
	Humidity    int
	WindSpeed   float64
}

type InboxInput struct {
	Sender  string
	Subject string
	Snippet string
}

// BriefingInput is the aggregate handed to the model. Any of the three
// content fields may be empty; the composer must still produce a valid
// briefing.
type BriefingInput struct {
	Now       time.Time
	Headlines []HeadlineInput
	Weather   *WeatherInput
	Inbox     []InboxInput
}

// Writer turns one BriefingInput into one prose briefing with a single
// model call.
type Writer interface {
	Compose(ctx context.Context, input BriefingInput) (string, error)
	ModelName() string
}
