package trips

import (
	"testing"
	"time"

	"github.com/starford/raido/internal/models"
)

func doc(path, basename string, tags []string, fm map[string]any) models.Document {
	return models.Document{Path: path, Basename: basename, Tags: tags, Frontmatter: fm}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestExtract_TaggedWithStartDate(t *testing.T) {
	docs := []models.Document{
		doc("trips/rome.md", "rome", []string{"trip"}, map[string]any{
			"start date": "2024-03-10",
		}),
	}
	events := Extract(docs, nil)
	if len(events) != 1 {
		t.Fatalf("len(events) = %d, want 1", len(events))
	}
	e := events[0]
	if !e.Start.Equal(date(2024, time.March, 10)) {
		t.Errorf("start = %v", e.Start)
	}
	if e.End != nil {
		t.Errorf("end = %v, want nil", e.End)
	}
	if e.Title != "rome" {
		t.Errorf("title = %q, want basename fallback", e.Title)
	}
	if e.Path != "trips/rome.md" {
		t.Errorf("path = %q", e.Path)
	}
}

func TestExtract_SkipsUntagged(t *testing.T) {
	docs := []models.Document{
		doc("other.md", "other", []string{"recipe"}, map[string]any{"start date": "2024-03-10"}),
	}
	if events := Extract(docs, nil); len(events) != 0 {
		t.Errorf("events = %v, want none", events)
	}
}

func TestExtract_SkipsMissingOrBadStart(t *testing.T) {
	docs := []models.Document{
		doc("nostart.md", "nostart", []string{"trip"}, map[string]any{"title": "No Start"}),
		doc("badstart.md", "badstart", []string{"trip"}, map[string]any{"start date": "next tuesday"}),
		doc("nofm.md", "nofm", []string{"trip"}, nil),
	}
	if events := Extract(docs, nil); len(events) != 0 {
		t.Errorf("events = %v, want none", events)
	}
}

func TestExtract_BadEndDateKeepsEvent(t *testing.T) {
	docs := []models.Document{
		doc("a.md", "a", []string{"trip"}, map[string]any{
			"start date": "2024-03-10",
			"end date":   "not-a-date",
		}),
	}
	events := Extract(docs, nil)
	if len(events) != 1 {
		t.Fatalf("len(events) = %d, want 1", len(events))
	}
	if events[0].End != nil {
		t.Errorf("end = %v, want nil for unparsable end date", events[0].End)
	}
}

func TestExtract_EndDateAndFrontmatterTitle(t *testing.T) {
	docs := []models.Document{
		doc("a.md", "a", []string{"trip"}, map[string]any{
			"title":      "Winter Escape",
			"start date": "2024-01-30",
			"end date":   "2024-02-02",
		}),
	}
	events := Extract(docs, nil)
	if len(events) != 1 {
		t.Fatal("expected one event")
	}
	e := events[0]
	if e.Title != "Winter Escape" {
		t.Errorf("title = %q", e.Title)
	}
	if e.End == nil || !e.End.Equal(date(2024, time.February, 2)) {
		t.Errorf("end = %v", e.End)
	}
	if !e.RangeEnd().Equal(date(2024, time.February, 2)) {
		t.Errorf("RangeEnd = %v", e.RangeEnd())
	}
}

func TestExtract_YAMLTimeValueAccepted(t *testing.T) {
	// yaml.v3 hands the extractor a time.Time for bare ISO dates.
	docs := []models.Document{
		doc("a.md", "a", []string{"trip"}, map[string]any{
			"start date": time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		}),
	}
	events := Extract(docs, nil)
	if len(events) != 1 {
		t.Fatal("expected one event")
	}
	if got := events[0].Start; got.Year() != 2024 || got.Month() != time.March || got.Day() != 10 {
		t.Errorf("start = %v", got)
	}
}

func TestExtract_OneEventPerDocument(t *testing.T) {
	fm := map[string]any{"title": "Paris Trip", "start date": "2024-06-01"}
	docs := []models.Document{
		doc("paris-1.md", "paris-1", []string{"trip"}, fm),
		doc("paris-2.md", "paris-2", []string{"trip"}, fm),
	}
	events := Extract(docs, nil)
	// Same title and dates still yield two distinct events.
	if len(events) != 2 {
		t.Fatalf("len(events) = %d, want 2", len(events))
	}
}

func TestMatchedDocs(t *testing.T) {
	docs := []models.Document{
		doc("a.md", "a", []string{"trip"}, nil),
		doc("b.md", "b", []string{"other"}, nil),
	}
	matched := MatchedDocs(docs)
	if len(matched) != 1 || matched[0].Path != "a.md" {
		t.Errorf("matched = %v", matched)
	}
}

func TestParseDate(t *testing.T) {
	cases := []struct {
		in   any
		want time.Time
		ok   bool
	}{
		{"2024-03-10", date(2024, time.March, 10), true},
		{"2024-03-10T15:30:00", date(2024, time.March, 10), true},
		{"2024-03-10T15:30:00Z", date(2024, time.March, 10), true},
		{time.Date(2024, time.March, 10, 9, 0, 0, 0, time.Local), date(2024, time.March, 10), true},
		{"03/04/2024", time.Time{}, false},
		{"soon", time.Time{}, false},
		{42, time.Time{}, false},
		{nil, time.Time{}, false},
	}
	for _, c := range cases {
		got, ok := ParseDate(c.in)
		if ok != c.ok {
			t.Errorf("ParseDate(%v) ok = %v, want %v", c.in, ok, c.ok)
			continue
		}
		if ok && !got.Equal(c.want) {
			t.Errorf("ParseDate(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
