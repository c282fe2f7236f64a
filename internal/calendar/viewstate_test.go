package calendar

import (
	"testing"
	"time"
)

func TestParseMode(t *testing.T) {
	for _, s := range []string{"month", "year", "agenda"} {
		if m, ok := ParseMode(s); !ok || string(m) != s {
			t.Errorf("ParseMode(%q) = %v, %v", s, m, ok)
		}
	}
	if _, ok := ParseMode("week"); ok {
		t.Error("ParseMode accepted unknown mode")
	}
}

func TestViewState_NextPrevMonth(t *testing.T) {
	vs := ViewState{Mode: ModeMonth, Anchor: date(2024, time.December, 15)}

	next := vs.Next()
	if next.Anchor.Year() != 2025 || next.Anchor.Month() != time.January {
		t.Errorf("next from december = %v", next.Anchor)
	}
	prev := vs.Prev()
	if prev.Anchor.Month() != time.November {
		t.Errorf("prev from december = %v", prev.Anchor)
	}
}

func TestViewState_NextPrevYear(t *testing.T) {
	vs := ViewState{Mode: ModeYear, Anchor: date(2024, time.June, 15)}
	if got := vs.Next().Anchor.Year(); got != 2025 {
		t.Errorf("next year = %d", got)
	}
	if got := vs.Prev().Anchor.Year(); got != 2023 {
		t.Errorf("prev year = %d", got)
	}
}

func TestViewState_AgendaDoesNotNavigate(t *testing.T) {
	vs := ViewState{Mode: ModeAgenda, Anchor: date(2024, time.June, 15)}
	if !vs.Next().Anchor.Equal(vs.Anchor) || !vs.Prev().Anchor.Equal(vs.Anchor) {
		t.Error("agenda mode moved its anchor")
	}
}

func TestViewState_Toggle(t *testing.T) {
	cases := map[Mode]Mode{
		ModeMonth:  ModeYear,
		ModeAgenda: ModeYear,
		ModeYear:   ModeAgenda,
	}
	for from, want := range cases {
		vs := ViewState{Mode: from}
		if got := vs.Toggle().Mode; got != want {
			t.Errorf("toggle from %s = %s, want %s", from, got, want)
		}
	}
}

func TestViewState_OpenDay(t *testing.T) {
	vs := ViewState{Mode: ModeYear, Anchor: date(2024, time.January, 1)}
	got := vs.OpenDay(date(2024, time.July, 19))
	if got.Mode != ModeMonth {
		t.Errorf("mode = %s, want month", got.Mode)
	}
	if !got.Anchor.Equal(date(2024, time.July, 1)) {
		t.Errorf("anchor = %v, want first of july", got.Anchor)
	}
}

func TestWeekdays_Rotation(t *testing.T) {
	sun := Weekdays(time.Sunday)
	if sun[0] != "Sun" || sun[6] != "Sat" {
		t.Errorf("sunday-first = %v", sun)
	}
	sat := Weekdays(time.Saturday)
	if sat[0] != "Sat" || sat[1] != "Sun" || sat[6] != "Fri" {
		t.Errorf("saturday-first = %v", sat)
	}
}
