package calendar

import "time"

// Mode selects which layout a calendar renders.
type Mode string

const (
	ModeMonth  Mode = "month"
	ModeYear   Mode = "year"
	ModeAgenda Mode = "agenda"
)

// ParseMode validates a mode string from configuration or a request.
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeMonth, ModeYear, ModeAgenda:
		return Mode(s), true
	}
	return "", false
}

// ViewState is the full input of a layout computation. Mode and
// FirstDayOfWeek are persisted; Anchor is session state that resets to the
// current date on load.
type ViewState struct {
	Mode           Mode
	Anchor         time.Time
	FirstDayOfWeek time.Weekday
}

// NewViewState builds a state anchored at now with the persisted mode and
// first-day-of-week applied.
func NewViewState(mode Mode, firstDay time.Weekday, now time.Time) ViewState {
	return ViewState{Mode: mode, Anchor: now, FirstDayOfWeek: firstDay}
}

// Next steps the anchor forward: a month in month mode, a year in year mode.
// The agenda always shows the next ten events from today and does not
// navigate.
func (v ViewState) Next() ViewState {
	switch v.Mode {
	case ModeMonth:
		v.Anchor = v.Anchor.AddDate(0, 1, 0)
	case ModeYear:
		v.Anchor = time.Date(v.Anchor.Year()+1, time.January, 1, 0, 0, 0, 0, time.Local)
	}
	return v
}

// Prev steps the anchor backward, mirroring Next.
func (v ViewState) Prev() ViewState {
	switch v.Mode {
	case ModeMonth:
		v.Anchor = v.Anchor.AddDate(0, -1, 0)
	case ModeYear:
		v.Anchor = time.Date(v.Anchor.Year()-1, time.January, 1, 0, 0, 0, 0, time.Local)
	}
	return v
}

// Toggle switches between the year overview and the detail modes: month and
// agenda both toggle to year, and year toggles to agenda (the default detail
// view). Month mode is reached by opening a day from the year grid.
func (v ViewState) Toggle() ViewState {
	if v.Mode == ModeYear {
		v.Mode = ModeAgenda
	} else {
		v.Mode = ModeYear
	}
	return v
}

// OpenDay is the transition for clicking an empty day cell in the year grid:
// switch to month mode anchored at that day's month. Clicking a day with
// events opens the first event's source note instead and does not change
// mode.
func (v ViewState) OpenDay(day time.Time) ViewState {
	v.Mode = ModeMonth
	v.Anchor = time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.Local)
	return v
}
