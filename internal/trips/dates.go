package trips

import "time"

// String layouts accepted for frontmatter date values. Anything else is
// rejected rather than guessed at; locale-ambiguous forms like 03/04/2024
// are deliberately unsupported.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// ParseDate converts a frontmatter value into a calendar date normalized to
// local midnight. Values already decoded as times (yaml.v3 resolves bare ISO
// dates that way) are accepted as-is; strings must match one of the accepted
// layouts. The second return is false when the value is unparsable.
func ParseDate(v any) (time.Time, bool) {
	switch d := v.(type) {
	case time.Time:
		return Midnight(d), true
	case string:
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, d); err == nil {
				return Midnight(t), true
			}
		}
	}
	return time.Time{}, false
}

// Midnight truncates t to local midnight, the normal form for all date
// comparisons in this package.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}
