package status

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"

	"github.com/krishang118/Butler-Briefing-Automation/internal/model"
)

func newTestRouter(tracker *Tracker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(tracker)
	r.GET("/healthz", h.GetHealth)
	r.GET("/status", h.GetStatus)
	return r
}

func TestGetHealth(t *testing.T) {
	r := newTestRouter(NewTracker("scheduled"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/healthz", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestGetStatus_NoRunsYet(t *testing.T) {
	r := newTestRouter(NewTracker("scheduled"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/status", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res statusResponse
	json.Unmarshal(w.Body.Bytes(), &res)

	assert.Equal(t, "scheduled", res.Mode)
	assert.Equal(t, "", res.LastFiredDate)
	assert.Equal(t, nil, res.LastRun)
}

func TestGetStatus_AfterRun(t *testing.T) {
	tracker := NewTracker("scheduled")
	tracker.SetLastFired("2026-03-09")
	tracker.Record(model.RunReport{
		StartedAt:     time.Date(2026, time.March, 9, 7, 0, 0, 0, time.UTC),
		FinishedAt:    time.Date(2026, time.March, 9, 7, 0, 42, 0, time.UTC),
		Outcome:       model.OutcomeSuccess,
		HeadlineCount: 12,
		InboxCount:    3,
		WeatherOK:     true,
	})

	r := newTestRouter(tracker)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/status", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res statusResponse
	json.Unmarshal(w.Body.Bytes(), &res)

	assert.Equal(t, "2026-03-09", res.LastFiredDate)
	assert.NotEqual(t, nil, res.LastRun)
	assert.Equal(t, model.OutcomeSuccess, res.LastRun.Outcome)
	assert.Equal(t, 12, res.LastRun.HeadlineCount)
	assert.Equal(t, true, res.LastRun.WeatherOK)
}

func TestGetStatus_FailedRun(t *testing.T) {
	tracker := NewTracker("scheduled")
	tracker.Record(model.RunReport{
		Outcome: model.OutcomeComposeFailed,
		Error:   "briefing composition failed: model timeout",
	})

	r := newTestRouter(tracker)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/status", nil)
	r.ServeHTTP(w, req)

	var res statusResponse
	json.Unmarshal(w.Body.Bytes(), &res)

	assert.Equal(t, model.OutcomeComposeFailed, res.LastRun.Outcome)
	assert.MatchRegex(t, res.LastRun.Error, "model timeout")
}
