package handlers

import (
	"net/http"
	"time"

	"mawasim/internal/core"
	"mawasim/internal/schedule"
	"mawasim/internal/service"

	"github.com/dustin/go-humanize"
	pbCore "github.com/pocketbase/pocketbase/core"
)

// DashboardHandler serves the merchant home screen data.
type DashboardHandler struct {
	Catalog *service.CatalogService
	Studio  *service.StudioService
}

type upcomingEventView struct {
	core.MarketingEvent
	DaysRemaining int `json:"days_remaining"`
}

type contentView struct {
	core.GeneratedContent
	CreatedAgo string `json:"created_ago,omitempty"`
}

// GetDashboard returns the top upcoming events with days remaining,
// content counters, and the recent generation history.
// GET /api/dashboard
//
// "now" is sampled exactly once so the upcoming list and every
// days-remaining figure agree on the same instant.
func (h *DashboardHandler) GetDashboard(e *pbCore.RequestEvent) error {
	merchantID := e.Auth.Id
	now := time.Now()

	upcoming := schedule.Upcoming(h.Catalog.List(), now)
	if len(upcoming) > 3 {
		upcoming = upcoming[:3]
	}

	views := make([]upcomingEventView, 0, len(upcoming))
	for _, ev := range upcoming {
		days, err := schedule.DaysRemaining(ev, now)
		if err != nil {
			continue
		}
		views = append(views, upcomingEventView{MarketingEvent: ev, DaysRemaining: days})
	}

	stats, err := h.Studio.Stats(merchantID)
	if err != nil {
		return e.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	contents, err := h.Studio.ListContents(merchantID)
	if err != nil {
		return e.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if len(contents) > 10 {
		contents = contents[:10]
	}

	recent := make([]contentView, 0, len(contents))
	for _, c := range contents {
		view := contentView{GeneratedContent: c}
		if created, err := time.Parse("2006-01-02 15:04:05.000Z", c.CreatedAt); err == nil {
			view.CreatedAgo = humanize.Time(created)
		}
		recent = append(recent, view)
	}

	return e.JSON(http.StatusOK, map[string]interface{}{
		"upcoming_events": views,
		"stats":           stats,
		"recent_contents": recent,
	})
}
