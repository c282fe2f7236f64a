package calendar

import (
	"sort"
	"time"

	"github.com/starford/raido/internal/trips"
)

// agendaLimit caps the agenda at the next ten events.
const agendaLimit = 10

// AgendaEntry is one row of the agenda view.
type AgendaEntry struct {
	Event     trips.Event `json:"event"`
	Ongoing   bool        `json:"ongoing"`
	DaysUntil int         `json:"days_until,omitempty"` // upcoming entries only
}

// BuildAgenda lists ongoing events first (input order), then upcoming events
// sorted ascending by start date, truncated to ten entries total. Events that
// already ended never appear.
func BuildAgenda(events []trips.Event, today time.Time) []AgendaEntry {
	d := trips.Midnight(today)

	var ongoing, upcoming []trips.Event
	for _, e := range events {
		switch {
		case IsOngoing(e, d):
			ongoing = append(ongoing, e)
		case trips.Midnight(e.Start).After(d):
			upcoming = append(upcoming, e)
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].Start.Before(upcoming[j].Start)
	})

	out := make([]AgendaEntry, 0, agendaLimit)
	for _, e := range ongoing {
		if len(out) == agendaLimit {
			return out
		}
		out = append(out, AgendaEntry{Event: e, Ongoing: true})
	}
	for _, e := range upcoming {
		if len(out) == agendaLimit {
			break
		}
		out = append(out, AgendaEntry{Event: e, DaysUntil: DaysUntilStart(e, d)})
	}
	return out
}
