package status

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/krishang118/Butler-Briefing-Automation/internal/model"
)

// Tracker collects the scheduler's run reports for the status endpoint.
// The scheduler writes, the HTTP handler reads.
type Tracker struct {
	mu        sync.Mutex
	mode      string
	startedAt time.Time
	lastFired string
	lastRun   *model.RunReport
}

func NewTracker(mode string) *Tracker {
	return &Tracker{
		mode:      mode,
		startedAt: time.Now(),
	}
}

func (t *Tracker) Record(report model.RunReport) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lastRun = &report
}

func (t *Tracker) SetLastFired(date string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lastFired = date
}

type statusResponse struct {
	Mode          string           `json:"mode"`
	StartedAt     string           `json:"started_at"`
	LastFiredDate string           `json:"last_fired_date,omitempty"`
	LastRun       *model.RunReport `json:"last_run,omitempty"`
}

func (t *Tracker) snapshot() statusResponse {
	t.mu.Lock()
	defer t.mu.Unlock()

	res := statusResponse{
		Mode:          t.mode,
		StartedAt:     t.startedAt.Format(time.RFC3339),
		LastFiredDate: t.lastFired,
	}
	if t.lastRun != nil {
		run := *t.lastRun
		res.LastRun = &run
	}
	return res
}

type Handler struct {
	tracker *Tracker
}

func NewHandler(tracker *Tracker) *Handler {
	return &Handler{tracker: tracker}
}

func (h *Handler) GetHealth(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func (h *Handler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.tracker.snapshot())
}

// NewRouter builds the operator-facing status server for scheduled mode.
func NewRouter(tracker *Tracker) *gin.Engine {
	r := gin.Default()
	h := NewHandler(tracker)
	r.GET("/healthz", h.GetHealth)
	r.GET("/status", h.GetStatus)
	return r
}
