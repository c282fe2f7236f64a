package calendar

import (
	"fmt"
	"sort"
	"time"

	"github.com/starford/raido/internal/trips"
)

// LegendEntry is one row of the legend: a unique title with its display
// color and a caption saying when the trip happens relative to today.
type LegendEntry struct {
	Title   string    `json:"title"`
	Color   string    `json:"color"`
	Path    string    `json:"path"`
	Start   time.Time `json:"start"`
	Caption string    `json:"caption,omitempty"`
}

// BuildLegend deduplicates the visible events by title (first occurrence
// wins for color and source note) and sorts the entries by start date
// ascending.
func BuildLegend(visible []trips.Event, today time.Time) []LegendEntry {
	seen := make(map[string]struct{}, len(visible))
	var entries []LegendEntry
	for _, e := range visible {
		if _, ok := seen[e.Title]; ok {
			continue
		}
		seen[e.Title] = struct{}{}
		entries = append(entries, LegendEntry{
			Title:   e.Title,
			Color:   e.Color,
			Path:    e.Path,
			Start:   e.Start,
			Caption: caption(e, today),
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Start.Before(entries[j].Start)
	})
	return entries
}

// caption renders the days-until / ongoing / days-ago label for an event.
func caption(e trips.Event, today time.Time) string {
	d := trips.Midnight(today)
	start := trips.Midnight(e.Start)

	if start.After(d) {
		if n := DaysUntilStart(e, d); n > 0 {
			return fmt.Sprintf("%s until start", days(n))
		}
		return ""
	}
	if IsOngoing(e, d) {
		return "Ongoing"
	}
	return fmt.Sprintf("%s ago", days(DaysSinceEnd(e, d)))
}

func days(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}
