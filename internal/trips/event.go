// Package trips extracts trip events from tagged vault documents.
//
// A document produces at most one event: it must carry the trip tag (inline
// or in frontmatter) and a parsable "start date" frontmatter entry. Events
// are never merged, even when titles and date ranges coincide.
package trips

import "time"

// Tag is the literal tag a note must carry to contribute an event.
// It is a compile-time constant, not user-configurable input.
const Tag = "trip"

// Frontmatter keys the extractor reads (case- and spacing-sensitive).
const (
	KeyStartDate = "start date"
	KeyEndDate   = "end date"
	KeyTitle     = "title"
)

// Event is a dated trip derived from a single vault document.
// Color is display state assigned by a Colorizer and may be rewritten
// whenever the visible scope changes; it is not part of the event identity.
type Event struct {
	Title string     `json:"title"`
	Start time.Time  `json:"start"`
	End   *time.Time `json:"end,omitempty"`
	Path  string     `json:"path"` // source note, used for open-on-click navigation
	Color string     `json:"color,omitempty"`
}

// RangeEnd returns the inclusive end of the event's date range. Events
// without an end date cover only their start day.
func (e Event) RangeEnd() time.Time {
	if e.End != nil {
		return *e.End
	}
	return e.Start
}
