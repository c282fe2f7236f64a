package calendar

import (
	"time"

	"github.com/starford/raido/internal/trips"
)

// A month grid is always 6 rows of 7 columns so every month renders at the
// same height regardless of where its 1st falls.
const monthGridCells = 42

// DayCell is one cell of a month grid.
type DayCell struct {
	Date       time.Time     `json:"date"`
	Day        int           `json:"day"`
	OtherMonth bool          `json:"other_month"`
	Events     []trips.Event `json:"events,omitempty"`
}

// MonthView is the month-mode layout: a header row of weekday names and 42
// consecutive day cells starting on the most recent first-day-of-week on or
// before the 1st.
type MonthView struct {
	Year     int       `json:"year"`
	Month    time.Month `json:"month"`
	Weekdays []string  `json:"weekdays"`
	Cells    []DayCell `json:"cells"`
}

// BuildMonth lays events out on the month grid for the anchor month. Every
// cell carries all events covering its date; there is no per-cell cap.
func BuildMonth(events []trips.Event, year int, month time.Month, first time.Weekday) MonthView {
	start := gridStart(year, month, first)
	cells := make([]DayCell, monthGridCells)
	for i := range cells {
		d := start.AddDate(0, 0, i)
		cells[i] = DayCell{
			Date:       d,
			Day:        d.Day(),
			OtherMonth: d.Month() != month || d.Year() != year,
			Events:     EventsOnDay(events, d),
		}
	}
	return MonthView{
		Year:     year,
		Month:    month,
		Weekdays: Weekdays(first),
		Cells:    cells,
	}
}
