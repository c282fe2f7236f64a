// Package calendar lays trip events out on month grids, year grids, and an
// agenda list. Every function here is pure: output depends only on the event
// slice and the view state passed in, so a render is always a full recompute.
package calendar

import (
	"math"
	"time"

	"github.com/starford/raido/internal/trips"
)

// EventsOnDay returns the events whose inclusive date range covers day.
// The comparison is a true timestamp range test on midnight-normalized
// dates; events without an end date cover only their start day.
func EventsOnDay(events []trips.Event, day time.Time) []trips.Event {
	d := trips.Midnight(day)
	var out []trips.Event
	for _, e := range events {
		start := trips.Midnight(e.Start)
		end := trips.Midnight(e.RangeEnd())
		if !d.Before(start) && !d.After(end) {
			out = append(out, e)
		}
	}
	return out
}

// Overlaps reports whether the event's range intersects [from, to]
// (all bounds inclusive, midnight-normalized).
func Overlaps(e trips.Event, from, to time.Time) bool {
	start := trips.Midnight(e.Start)
	end := trips.Midnight(e.RangeEnd())
	return !start.After(trips.Midnight(to)) && !end.Before(trips.Midnight(from))
}

// VisibleEvents returns the subset of events intersecting the view's time
// window: the anchor month in month mode, the anchor year in year mode, and
// everything in agenda mode (the agenda layout applies its own cut to ten).
// The result is the scope fed to color reassignment, so colors can change as
// the user navigates.
func VisibleEvents(events []trips.Event, vs ViewState) []trips.Event {
	switch vs.Mode {
	case ModeMonth:
		from := time.Date(vs.Anchor.Year(), vs.Anchor.Month(), 1, 0, 0, 0, 0, time.Local)
		to := from.AddDate(0, 1, -1)
		return filterOverlapping(events, from, to)
	case ModeYear:
		from := time.Date(vs.Anchor.Year(), time.January, 1, 0, 0, 0, 0, time.Local)
		to := time.Date(vs.Anchor.Year(), time.December, 31, 0, 0, 0, 0, time.Local)
		return filterOverlapping(events, from, to)
	default:
		out := make([]trips.Event, len(events))
		copy(out, events)
		return out
	}
}

func filterOverlapping(events []trips.Event, from, to time.Time) []trips.Event {
	var out []trips.Event
	for _, e := range events {
		if Overlaps(e, from, to) {
			out = append(out, e)
		}
	}
	return out
}

// IsOngoing reports whether today falls inside the event's range.
func IsOngoing(e trips.Event, today time.Time) bool {
	d := trips.Midnight(today)
	return !d.Before(trips.Midnight(e.Start)) && !d.After(trips.Midnight(e.RangeEnd()))
}

// DaysUntilStart returns the number of days from today until the event
// starts. Positive for future events only.
func DaysUntilStart(e trips.Event, today time.Time) int {
	return ceilDays(trips.Midnight(e.Start).Sub(trips.Midnight(today)))
}

// DaysSinceEnd returns the number of days since the event ended. Positive
// for past events only.
func DaysSinceEnd(e trips.Event, today time.Time) int {
	return ceilDays(trips.Midnight(today).Sub(trips.Midnight(e.RangeEnd())))
}

func ceilDays(d time.Duration) int {
	return int(math.Ceil(d.Hours() / 24))
}

// Weekdays returns the seven weekday names starting from first, the header
// row order for grids.
func Weekdays(first time.Weekday) []string {
	names := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	out := make([]string, 7)
	for i := 0; i < 7; i++ {
		out[i] = names[(int(first)+i)%7]
	}
	return out
}

// gridStart returns the most recent occurrence of first on or before the
// 1st of the given month, the top-left cell of a 6x7 grid.
func gridStart(year int, month time.Month, first time.Weekday) time.Time {
	firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	offset := (int(firstOfMonth.Weekday()) - int(first) + 7) % 7
	return firstOfMonth.AddDate(0, 0, -offset)
}
