package calendar

import (
	"testing"
	"time"

	"github.com/starford/raido/internal/trips"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func event(title string, start time.Time, end *time.Time) trips.Event {
	return trips.Event{Title: title, Start: start, End: end, Path: title + ".md"}
}

func ptr(t time.Time) *time.Time { return &t }

func TestEventsOnDay_SingleDayEvent(t *testing.T) {
	events := []trips.Event{event("rome", date(2024, time.March, 10), nil)}

	if got := EventsOnDay(events, date(2024, time.March, 10)); len(got) != 1 {
		t.Errorf("start day: got %d events, want 1", len(got))
	}
	if got := EventsOnDay(events, date(2024, time.March, 11)); len(got) != 0 {
		t.Errorf("day after: got %d events, want 0", len(got))
	}
	if got := EventsOnDay(events, date(2024, time.March, 9)); len(got) != 0 {
		t.Errorf("day before: got %d events, want 0", len(got))
	}
}

func TestEventsOnDay_RangeInclusive(t *testing.T) {
	e := event("winter", date(2024, time.January, 30), ptr(date(2024, time.February, 2)))
	events := []trips.Event{e}

	for _, d := range []time.Time{
		date(2024, time.January, 30),
		date(2024, time.January, 31),
		date(2024, time.February, 1),
		date(2024, time.February, 2),
	} {
		if got := EventsOnDay(events, d); len(got) != 1 {
			t.Errorf("%v: got %d events, want 1", d, len(got))
		}
	}
	if got := EventsOnDay(events, date(2024, time.February, 3)); len(got) != 0 {
		t.Errorf("after range: got %d, want 0", len(got))
	}
}

func TestEventsOnDay_FullDateComparison(t *testing.T) {
	// Day-of-month equality across different months must not match.
	events := []trips.Event{event("rome", date(2024, time.March, 5), nil)}
	if got := EventsOnDay(events, date(2024, time.April, 5)); len(got) != 0 {
		t.Errorf("matched day 5 of a different month")
	}
	if got := EventsOnDay(events, date(2023, time.March, 5)); len(got) != 0 {
		t.Errorf("matched day 5 of a different year")
	}
}

func TestEventsOnDay_TimeOfDayIrrelevant(t *testing.T) {
	e := trips.Event{Title: "x", Start: time.Date(2024, time.March, 10, 23, 30, 0, 0, time.Local)}
	got := EventsOnDay([]trips.Event{e}, time.Date(2024, time.March, 10, 8, 0, 0, 0, time.Local))
	if len(got) != 1 {
		t.Errorf("time of day affected the match")
	}
}

func TestBuildMonth_Exactly42Cells(t *testing.T) {
	view := BuildMonth(nil, 2024, time.March, time.Sunday)
	if len(view.Cells) != 42 {
		t.Fatalf("len(cells) = %d, want 42", len(view.Cells))
	}
	// March 1, 2024 is a Friday; with Sunday first the grid starts Feb 25.
	if !view.Cells[0].Date.Equal(date(2024, time.February, 25)) {
		t.Errorf("grid start = %v, want 2024-02-25", view.Cells[0].Date)
	}
	if !view.Cells[0].OtherMonth {
		t.Error("leading February cell not marked other-month")
	}
	// Cell index 5 is March 1.
	if view.Cells[5].Day != 1 || view.Cells[5].OtherMonth {
		t.Errorf("cell 5 = %+v, want March 1", view.Cells[5])
	}
}

func TestBuildMonth_FirstDayOfWeekReflow(t *testing.T) {
	view := BuildMonth(nil, 2024, time.March, time.Monday)
	wantHeader := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	for i, w := range wantHeader {
		if view.Weekdays[i] != w {
			t.Fatalf("weekdays = %v, want %v", view.Weekdays, wantHeader)
		}
	}
	// With Monday first the grid starts Feb 26 (the Monday on or before Mar 1).
	if !view.Cells[0].Date.Equal(date(2024, time.February, 26)) {
		t.Errorf("grid start = %v, want 2024-02-26", view.Cells[0].Date)
	}
}

func TestBuildMonth_SpanningEventAppearsInBothMonths(t *testing.T) {
	e := event("winter", date(2024, time.January, 30), ptr(date(2024, time.February, 2)))
	events := []trips.Event{e}

	jan := BuildMonth(events, 2024, time.January, time.Sunday)
	feb := BuildMonth(events, 2024, time.February, time.Sunday)

	ownCellsWithEvents := func(v MonthView) int {
		n := 0
		for _, c := range v.Cells {
			if !c.OtherMonth && len(c.Events) > 0 {
				n++
			}
		}
		return n
	}
	// Jan 30, 31 in January's own cells.
	if got := ownCellsWithEvents(jan); got != 2 {
		t.Errorf("january own-month event cells = %d, want 2", got)
	}
	// Feb 1, 2 in February's own cells.
	if got := ownCellsWithEvents(feb); got != 2 {
		t.Errorf("february own-month event cells = %d, want 2", got)
	}
}

func TestBuildYear_TwelveMonthsAndCounts(t *testing.T) {
	e1 := event("winter", date(2024, time.January, 30), ptr(date(2024, time.February, 2)))
	e1.Color = "#aabbcc"
	e2 := event("overlap", date(2024, time.January, 30), nil)
	events := []trips.Event{e1, e2}

	view := BuildYear(events, 2024, time.Sunday)
	if view.Year != 2024 {
		t.Errorf("year = %d", view.Year)
	}
	for i, mm := range view.Months {
		if mm.Month != time.Month(i+1) {
			t.Errorf("months out of order at %d: %v", i, mm.Month)
		}
		if len(mm.Cells) != 42 {
			t.Errorf("%v has %d cells", mm.Month, len(mm.Cells))
		}
	}

	var jan30 MiniDay
	for _, c := range view.Months[0].Cells {
		if !c.OtherMonth && c.Day == 30 {
			jan30 = c
		}
	}
	if jan30.Count != 2 {
		t.Errorf("jan 30 count = %d, want 2", jan30.Count)
	}
	// Representative color and source come from the first matching event.
	if jan30.Color != "#aabbcc" || jan30.Path != "winter.md" {
		t.Errorf("jan 30 = %+v", jan30)
	}

	var feb2 MiniDay
	for _, c := range view.Months[1].Cells {
		if !c.OtherMonth && c.Day == 2 {
			feb2 = c
		}
	}
	if feb2.Count != 1 {
		t.Errorf("feb 2 count = %d, want 1 (spanning event)", feb2.Count)
	}
}

func TestVisibleEvents_Scoping(t *testing.T) {
	spanning := event("winter", date(2024, time.January, 30), ptr(date(2024, time.February, 2)))
	march := event("rome", date(2024, time.March, 10), nil)
	lastYear := event("old", date(2023, time.June, 1), nil)
	events := []trips.Event{spanning, march, lastYear}

	monthVS := ViewState{Mode: ModeMonth, Anchor: date(2024, time.February, 15)}
	vis := VisibleEvents(events, monthVS)
	if len(vis) != 1 || vis[0].Title != "winter" {
		t.Errorf("february visible = %v", vis)
	}

	yearVS := ViewState{Mode: ModeYear, Anchor: date(2024, time.June, 1)}
	vis = VisibleEvents(events, yearVS)
	if len(vis) != 2 {
		t.Errorf("2024 visible = %v", vis)
	}

	agendaVS := ViewState{Mode: ModeAgenda, Anchor: date(2024, time.June, 1)}
	if vis = VisibleEvents(events, agendaVS); len(vis) != 3 {
		t.Errorf("agenda visible = %v", vis)
	}
}

func TestDaysUntilAndSince(t *testing.T) {
	today := date(2024, time.March, 10)
	future := event("f", date(2024, time.March, 13), nil)
	if got := DaysUntilStart(future, today); got != 3 {
		t.Errorf("DaysUntilStart = %d, want 3", got)
	}
	past := event("p", date(2024, time.March, 1), ptr(date(2024, time.March, 5)))
	if got := DaysSinceEnd(past, today); got != 5 {
		t.Errorf("DaysSinceEnd = %d, want 5", got)
	}
	ongoing := event("o", date(2024, time.March, 8), ptr(date(2024, time.March, 12)))
	if !IsOngoing(ongoing, today) {
		t.Error("expected ongoing")
	}
	if IsOngoing(future, today) || IsOngoing(past, today) {
		t.Error("future/past flagged ongoing")
	}
}
