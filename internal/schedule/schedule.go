// Package schedule derives presentation state from the event catalog and a
// sampled clock instant. All functions are pure: same (events, now) in, same
// answer out. Callers must sample time.Now() once per computation and pass
// it through, so related figures (upcoming list, days remaining, month grid)
// never disagree about what "now" is.
package schedule

import (
	"fmt"
	"sort"
	"time"

	"mawasim/internal/core"
)

// Upcoming filters the catalog to events strictly after now and sorts them
// ascending by date. An event dated exactly "now" is excluded. The sort is
// stable: same-day events keep their catalog order.
// Events whose date no longer parses are skipped rather than fed into the
// comparator; validation at the write boundary makes that case unreachable
// for records that went through the catalog.
func Upcoming(events []core.MarketingEvent, now time.Time) []core.MarketingEvent {
	type dated struct {
		event core.MarketingEvent
		day   time.Time
	}

	upcoming := make([]dated, 0, len(events))
	for _, e := range events {
		day, err := e.Day()
		if err != nil {
			continue
		}
		if day.After(now) {
			upcoming = append(upcoming, dated{event: e, day: day})
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].day.Before(upcoming[j].day)
	})

	result := make([]core.MarketingEvent, len(upcoming))
	for i, d := range upcoming {
		result[i] = d.event
	}
	return result
}

// DaysRemaining returns ceil((event date - now) / 24h). The event date is
// a local midnight while now carries a time of day, so a same-day morning
// "now" still counts partial days up.
func DaysRemaining(event core.MarketingEvent, now time.Time) (int, error) {
	day, err := event.Day()
	if err != nil {
		return 0, err
	}

	diff := day.Sub(now)
	days := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) > 0 {
		days++
	}
	return days, nil
}

// GroupByDay partitions the given year-month's events by day of month.
// Every event dated inside the month appears under exactly its day key;
// events outside the month are absent. Within a day, catalog order holds.
func GroupByDay(events []core.MarketingEvent, year int, month time.Month) map[int][]core.MarketingEvent {
	prefix := fmt.Sprintf("%04d-%02d-", year, int(month))

	byDay := make(map[int][]core.MarketingEvent)
	for _, e := range events {
		if len(e.Date) != 10 || e.Date[:8] != prefix {
			continue
		}
		day, err := e.Day()
		if err != nil {
			continue
		}
		d := day.Day()
		byDay[d] = append(byDay[d], e)
	}
	return byDay
}

// DominantPriority reduces a day's events to the single highest priority
// under low < medium < high. An empty input is an error, never a default:
// the caller must guard days with no events.
func DominantPriority(events []core.MarketingEvent) (core.Priority, error) {
	if len(events) == 0 {
		return "", fmt.Errorf("dominant priority of an empty event set is undefined")
	}

	dominant := events[0].Priority
	for _, e := range events[1:] {
		if e.Priority.Rank() > dominant.Rank() {
			dominant = e.Priority
		}
	}
	return dominant, nil
}

// DaysInMonth returns the number of days in the given year-month.
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()
}

// FirstWeekday returns the weekday of the month's first day
// (0 = Sunday), used as the leading offset of the month grid.
func FirstWeekday(year int, month time.Month) int {
	return int(time.Date(year, month, 1, 0, 0, 0, 0, time.Local).Weekday())
}
