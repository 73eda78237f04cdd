package handlers

import (
	"net/http"
	"time"

	"mawasim/internal/core"
	"mawasim/internal/schedule"
	"mawasim/internal/service"

	pbCore "github.com/pocketbase/pocketbase/core"
	"github.com/spf13/cast"
)

// CalendarHandler serves the month-grid calendar data.
type CalendarHandler struct {
	Catalog *service.CatalogService
}

type calendarDay struct {
	Day              int                    `json:"day"`
	Events           []core.MarketingEvent  `json:"events,omitempty"`
	DominantPriority string                 `json:"dominant_priority,omitempty"`
}

// GetMonth returns the grid for one year-month: the leading weekday
// offset and, per day, that day's events and dominant priority.
// GET /api/calendar/{year}/{month}
func (h *CalendarHandler) GetMonth(e *pbCore.RequestEvent) error {
	year := cast.ToInt(e.Request.PathValue("year"))
	monthNum := cast.ToInt(e.Request.PathValue("month"))

	if year < 1 || monthNum < 1 || monthNum > 12 {
		return e.JSON(http.StatusBadRequest, map[string]string{"error": "invalid year/month"})
	}
	month := time.Month(monthNum)

	byDay := schedule.GroupByDay(h.Catalog.List(), year, month)

	days := make([]calendarDay, 0, schedule.DaysInMonth(year, month))
	for d := 1; d <= schedule.DaysInMonth(year, month); d++ {
		day := calendarDay{Day: d}
		if events, ok := byDay[d]; ok {
			day.Events = events
			// Non-empty by construction, so the dominant priority is defined.
			if dominant, err := schedule.DominantPriority(events); err == nil {
				day.DominantPriority = string(dominant)
			}
		}
		days = append(days, day)
	}

	return e.JSON(http.StatusOK, map[string]interface{}{
		"year":           year,
		"month":          monthNum,
		"leading_offset": schedule.FirstWeekday(year, month),
		"days":           days,
	})
}
