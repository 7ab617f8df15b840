package briefing

import (
	"context"
	"log/slog"
	"time"

	"github.com/krishang118/Butler-Briefing-Automation/internal/model"
	"github.com/krishang118/Butler-Briefing-Automation/pkg/llm"
	"github.com/krishang118/Butler-Briefing-Automation/pkg/mailbox"
	"github.com/krishang118/Butler-Briefing-Automation/pkg/news"
	"github.com/krishang118/Butler-Briefing-Automation/pkg/weather"
)

// Consumer-side contracts for everything the pipeline calls, so tests
// can swap in fakes.

type HeadlineSource interface {
	Fetch(ctx context.Context, limit int) ([]news.Headline, error)
	Name() string
}

type WeatherSource interface {
	Fetch(ctx context.Context, city, countryCode string) (*weather.Snapshot, error)
}

type MailSource interface {
	FetchUnread(ctx context.Context, since time.Time, limit int) ([]mailbox.Message, error)
}

type Writer interface {
	Compose(ctx context.Context, input llm.BriefingInput) (string, error)
	ModelName() string
}

type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the wall clock used outside of tests.
var SystemClock Clock = systemClock{}

// Pipeline runs one fetch → compose → deliver cycle. It holds no
// per-run state; every Run builds its digest from scratch.
type Pipeline struct {
	News    []HeadlineSource
	Weather WeatherSource
	Mail    MailSource
	Writer  Writer
	Sender  Sender
	Clock   Clock

	City        string
	CountryCode string
	Recipient   string
	NewsLimit   int
	InboxLimit  int
}

// Run executes one complete cycle. Per-source fetch failures are logged
// and recovered as empty results; a composition or delivery failure
// aborts the run with a typed error.
func (p *Pipeline) Run(ctx context.Context) (model.RunReport, error) {
	now := p.Clock.Now()
	report := model.RunReport{StartedAt: now}

	digest := p.fetch(ctx, now)
	report.HeadlineCount = len(digest.Headlines)
	report.InboxCount = len(digest.Inbox)
	report.WeatherOK = digest.Weather != nil

	if digest.Empty() {
		slog.Warn("all sources empty, composing degraded briefing")
	}

	briefing, err := p.Writer.Compose(ctx, toBriefingInput(digest, now))
	if err != nil {
		composeErr := &ComposeError{Err: err}
		slog.Error("briefing composition failed", "error", err)
		report.FinishedAt = p.Clock.Now()
		report.Outcome = model.OutcomeComposeFailed
		report.Error = composeErr.Error()
		return report, composeErr
	}
	slog.Info("briefing composed", "model", p.Writer.ModelName(), "chars", len(briefing))

	subject := "Your Morning Briefing - " + now.Format("Monday, January 2, 2006")
	if err := p.Sender.Send(ctx, p.Recipient, subject, briefing); err != nil {
		deliveryErr := &DeliveryError{Err: err}
		slog.Error("briefing delivery failed", "recipient", p.Recipient, "error", err)
		report.FinishedAt = p.Clock.Now()
		report.Outcome = model.OutcomeDeliveryFailed
		report.Error = deliveryErr.Error()
		return report, deliveryErr
	}
	slog.Info("briefing delivered", "recipient", p.Recipient)

	report.FinishedAt = p.Clock.Now()
	report.Outcome = model.OutcomeSuccess
	return report, nil
}

// fetch gathers from every source sequentially. No fetch error escapes:
// a failing source is logged at warn and contributes nothing.
func (p *Pipeline) fetch(ctx context.Context, now time.Time) model.Digest {
	digest := model.Digest{FetchedAt: now}

	for _, source := range p.News {
		headlines, err := source.Fetch(ctx, p.NewsLimit)
		if err != nil {
			slog.Warn("news fetch failed", "source", source.Name(), "error", err)
			continue
		}
		slog.Info("news fetched", "source", source.Name(), "count", len(headlines))
		digest.Headlines = append(digest.Headlines, headlines...)
	}

	snapshot, err := p.Weather.Fetch(ctx, p.City, p.CountryCode)
	if err != nil {
		slog.Warn("weather fetch failed", "city", p.City, "error", err)
	} else {
		slog.Info("weather fetched", "city", p.City, "condition", snapshot.Condition)
		digest.Weather = snapshot
	}

	since := now.AddDate(0, 0, -1)
	messages, err := p.Mail.FetchUnread(ctx, since, p.InboxLimit)
	if err != nil {
		slog.Warn("inbox fetch failed", "error", err)
	} else {
		slog.Info("inbox fetched", "unread", len(messages))
		digest.Inbox = messages
	}

	return digest
}

func toBriefingInput(d model.Digest, now time.Time) llm.BriefingInput {
	input := llm.BriefingInput{Now: now}

	for _, h := range d.Headlines {
		input.Headlines = append(input.Headlines, llm.HeadlineInput{
			Title:  h.Title,
			Source: h.Source,
		})
	}

	if w := d.Weather; w != nil {
		input.Weather = &llm.WeatherInput{
			City:        w.City,
			Temperature: w.Temperature,
			FeelsLike:   w.FeelsLike,
			Condition:   w.Condition,
			Humidity:    w.Humidity,
			WindSpeed:   w.WindSpeed,
		}
	}

	for _, m := range d.Inbox {
		input.Inbox = append(input.Inbox, llm.InboxInput{
			Sender:  m.Sender,
			Subject: m.Subject,
			Snippet: m.Snippet,
		})
	}

	return input
}
