package model

import "time"

const (
	OutcomeSuccess        = "success"
	OutcomeComposeFailed  = "compose_failed"
	OutcomeDeliveryFailed = "delivery_failed"
)

// RunReport describes how one pipeline run went, for logging and the
// status endpoint.
type RunReport struct {
	StartedAt     time.Time `json:"started_at"`
	FinishedAt    time.Time `json:"finished_at"`
	Outcome       string    `json:"outcome"`
	Error         string    `json:"error,omitempty"`
	HeadlineCount int       `json:"headline_count"`
	InboxCount    int       `json:"inbox_count"`
	WeatherOK     bool      `json:"weather_ok"`
}
