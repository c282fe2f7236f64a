package calendar

import (
	"time"

	"github.com/starford/raido/internal/trips"
)

// MiniDay is one cell of a year-grid mini-month. Only a representative
// color is shown per day; Count tells the renderer when to add a "+N"
// indicator, and Path is the first matching event's source note for
// open-on-click.
type MiniDay struct {
	Date       time.Time `json:"date"`
	Day        int       `json:"day"`
	OtherMonth bool      `json:"other_month"`
	Count      int       `json:"count"`
	Color      string    `json:"color,omitempty"`
	Title      string    `json:"title,omitempty"`
	Path       string    `json:"path,omitempty"`
}

// MiniMonth is one of the twelve grids of a year view.
type MiniMonth struct {
	Month time.Month `json:"month"`
	Cells []MiniDay  `json:"cells"`
}

// YearView is the year-mode layout: twelve mini-months, January through
// December, rendered 4 rows by 3 columns.
type YearView struct {
	Year     int          `json:"year"`
	Weekdays []string     `json:"weekdays"`
	Months   [12]MiniMonth `json:"months"`
}

// BuildYear lays events out across twelve mini-month grids for the anchor
// year, using the same first-day-of-week rule as the month grid.
func BuildYear(events []trips.Event, year int, first time.Weekday) YearView {
	view := YearView{Year: year, Weekdays: Weekdays(first)}
	for m := time.January; m <= time.December; m++ {
		start := gridStart(year, m, first)
		cells := make([]MiniDay, monthGridCells)
		for i := range cells {
			d := start.AddDate(0, 0, i)
			cell := MiniDay{
				Date:       d,
				Day:        d.Day(),
				OtherMonth: d.Month() != m || d.Year() != year,
			}
			if !cell.OtherMonth {
				if evs := EventsOnDay(events, d); len(evs) > 0 {
					cell.Count = len(evs)
					cell.Color = evs[0].Color
					cell.Title = evs[0].Title
					cell.Path = evs[0].Path
				}
			}
			cells[i] = cell
		}
		view.Months[m-1] = MiniMonth{Month: m, Cells: cells}
	}
	return view
}
