package trips

import (
	"hash/fnv"

	"github.com/lucasb-eyer/go-colorful"
)

// Pastel saturation/lightness shared by both color schemes, and the fallback
// color used when no assignment applies.
const (
	pastelSaturation = 0.50
	pastelLightness  = 0.85

	DefaultColor = "#1976d2"
)

// A Colorizer writes display colors onto a slice of events. Assigning twice
// over the same events must produce the same title → color mapping.
type Colorizer interface {
	Assign(events []Event)
}

// Color scheme names accepted in configuration.
const (
	SchemeRainbow = "rainbow"
	SchemeHash    = "hash"
)

// NewColorizer returns the colorizer for a configured scheme name.
// Unknown names fall back to the rainbow scheme.
func NewColorizer(scheme string) Colorizer {
	if scheme == SchemeHash {
		return HashColorizer{}
	}
	return RainbowColorizer{}
}

// RainbowColorizer spreads hues evenly across distinct titles, grouped by the
// calendar year of each event's start date. Titles are numbered in first-seen
// order within their year, so the same title set in the same scope always
// maps to the same colors. Two events with the same title but starting in
// different years may receive different colors.
type RainbowColorizer struct{}

func (RainbowColorizer) Assign(events []Event) {
	type yearGroup struct {
		titles []string
		seen   map[string]struct{}
	}
	groups := make(map[int]*yearGroup)

	for _, e := range events {
		y := e.Start.Year()
		g := groups[y]
		if g == nil {
			g = &yearGroup{seen: make(map[string]struct{})}
			groups[y] = g
		}
		if _, ok := g.seen[e.Title]; !ok {
			g.seen[e.Title] = struct{}{}
			g.titles = append(g.titles, e.Title)
		}
	}

	colorByYearTitle := make(map[int]map[string]string, len(groups))
	for y, g := range groups {
		m := make(map[string]string, len(g.titles))
		for i, title := range g.titles {
			hue := float64(i) * 360 / float64(len(g.titles))
			m[title] = colorful.Hsl(hue, pastelSaturation, pastelLightness).Hex()
		}
		colorByYearTitle[y] = m
	}

	for i := range events {
		if c, ok := colorByYearTitle[events[i].Start.Year()][events[i].Title]; ok {
			events[i].Color = c
		} else {
			events[i].Color = DefaultColor
		}
	}
}

// HashColorizer derives a stable hue from the event title alone. Colors never
// change with the visible scope, at the cost of uneven hue distribution.
type HashColorizer struct{}

func (HashColorizer) Assign(events []Event) {
	for i := range events {
		h := fnv.New32a()
		_, _ = h.Write([]byte(events[i].Title))
		hue := float64(h.Sum32() % 360)
		events[i].Color = colorful.Hsl(hue, pastelSaturation, pastelLightness).Hex()
	}
}
