package briefing

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/krishang118/Butler-Briefing-Automation/internal/model"
)

// Runner is what the scheduler drives; in production it is *Pipeline.
type Runner interface {
	Run(ctx context.Context) (model.RunReport, error)
}

// Scheduler fires the pipeline once per calendar day at the trigger
// time, in the configured zone. lastFired is the only state it carries
// between polls; it is re-evaluated on every tick so a fake clock can
// drive the whole loop in tests.
type Scheduler struct {
	Runner       Runner
	Clock        Clock
	Location     *time.Location
	TriggerHour  int
	TriggerMin   int
	PollInterval time.Duration

	// OnReport, when set, receives every run's report (success or not).
	OnReport func(model.RunReport)

	mu        sync.Mutex
	lastFired string // calendar date in Location, "2006-01-02"
}

// Run polls until ctx is cancelled. Pipeline failures are logged and
// swallowed; the loop only exits on cancellation.
func (s *Scheduler) Run(ctx context.Context) error {
	now := s.Clock.Now().In(s.Location)

	// No backfill: starting after today's trigger means today is spent.
	if !now.Before(s.triggerFor(now)) {
		s.setLastFired(dateKey(now))
		slog.Info("trigger time already passed today, waiting for tomorrow",
			"trigger", s.triggerFor(now).Format(time.RFC3339))
	} else {
		slog.Info("waiting for trigger time",
			"trigger", s.triggerFor(now).Format(time.RFC3339))
	}

	for {
		select {
		case <-ctx.Done():
			slog.Info("scheduler stopped")
			return ctx.Err()
		case <-time.After(s.PollInterval):
			s.tick(ctx, s.Clock.Now())
		}
	}
}

// tick fires the pipeline if the trigger time has been reached and the
// pipeline has not fired yet today. Returns whether it fired.
func (s *Scheduler) tick(ctx context.Context, now time.Time) bool {
	now = now.In(s.Location)
	if !s.due(now) {
		return false
	}

	fired := dateKey(now)
	s.setLastFired(fired)
	slog.Info("scheduled trigger fired", "date", fired)

	report, err := s.Runner.Run(ctx)
	if err != nil {
		// Logged by the pipeline with stage detail; the loop keeps going.
		slog.Error("scheduled run failed, waiting for next trigger", "error", err)
	} else {
		slog.Info("scheduled run completed", "outcome", report.Outcome)
	}
	if s.OnReport != nil {
		s.OnReport(report)
	}

	return true
}

func (s *Scheduler) due(now time.Time) bool {
	if dateKey(now) == s.LastFired() {
		return false
	}
	return !now.Before(s.triggerFor(now))
}

// triggerFor returns today's trigger instant for the given wall time.
func (s *Scheduler) triggerFor(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), s.TriggerHour, s.TriggerMin, 0, 0, s.Location)
}

// LastFired reports the calendar day of the most recent firing, empty
// if the scheduler has not fired since startup.
func (s *Scheduler) LastFired() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastFired
}

func (s *Scheduler) setLastFired(date string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastFired = date
}

func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
