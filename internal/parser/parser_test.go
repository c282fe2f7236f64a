package parser

import (
	"testing"
	"time"
)

func TestParse_FrontmatterAndBody(t *testing.T) {
	input := []byte("---\ntitle: Paris Trip\ntags:\n  - trip\n  - europe\n---\n# Paris\nBody text.\n")
	r, err := Parse(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Title != "Paris Trip" {
		t.Errorf("title = %q, want %q", r.Title, "Paris Trip")
	}
	if len(r.Tags) < 2 || r.Tags[0] != "trip" || r.Tags[1] != "europe" {
		t.Errorf("tags = %v, want [trip europe]", r.Tags)
	}
	if r.Body != "# Paris\nBody text.\n" {
		t.Errorf("body = %q", r.Body)
	}
}

func TestParse_NoFrontmatter(t *testing.T) {
	input := []byte("# Just a heading\nSome text.\n")
	r, err := Parse(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Frontmatter != nil {
		t.Errorf("expected nil frontmatter, got %v", r.Frontmatter)
	}
	if r.Title != "Just a heading" {
		t.Errorf("title = %q, want %q", r.Title, "Just a heading")
	}
}

func TestParse_InvalidYAMLFallback(t *testing.T) {
	input := []byte("---\n: invalid: yaml: {{{\n---\nBody\n")
	r, err := Parse(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Invalid YAML falls back to treating everything as body.
	if r.Frontmatter != nil {
		t.Errorf("expected nil frontmatter on invalid YAML")
	}
}

func TestParse_DateFieldsResolveToTime(t *testing.T) {
	input := []byte("---\ntitle: Rome\nstart date: 2024-03-10\nend date: 2024-03-14\n---\nbody\n")
	r, err := Parse(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// yaml.v3 resolves bare ISO dates into time.Time values.
	start, ok := r.Frontmatter["start date"].(time.Time)
	if !ok {
		t.Fatalf("start date = %T, want time.Time", r.Frontmatter["start date"])
	}
	if start.Year() != 2024 || start.Month() != time.March || start.Day() != 10 {
		t.Errorf("start date = %v, want 2024-03-10", start)
	}
}

func TestExtractTags_InlineAndFrontmatter(t *testing.T) {
	fm := map[string]any{
		"tags": []any{"trip"},
	}
	body := "Some text #packing and #trip again."
	tags := extractTags(body, fm)
	// trip from FM, packing from body; trip not duplicated.
	if len(tags) != 2 || tags[0] != "trip" || tags[1] != "packing" {
		t.Errorf("tags = %v, want [trip packing]", tags)
	}
}

func TestExtractTags_CommaSeparatedString(t *testing.T) {
	fm := map[string]any{
		"tags": "trip, europe ,2024",
	}
	tags := extractTags("", fm)
	if len(tags) != 3 || tags[0] != "trip" || tags[1] != "europe" || tags[2] != "2024" {
		t.Errorf("tags = %v, want [trip europe 2024]", tags)
	}
}

func TestExtractTags_SingleString(t *testing.T) {
	fm := map[string]any{"tags": "trip"}
	tags := extractTags("", fm)
	if len(tags) != 1 || tags[0] != "trip" {
		t.Errorf("tags = %v, want [trip]", tags)
	}
}

func TestDeriveTitle_FrontmatterOverH1(t *testing.T) {
	fm := map[string]any{"title": "FM Title"}
	body := "# H1 Title\ntext"
	title := deriveTitle(fm, body)
	if title != "FM Title" {
		t.Errorf("title = %q, want %q", title, "FM Title")
	}
}

func TestDeriveTitle_H1Fallback(t *testing.T) {
	title := deriveTitle(nil, "some text\n# My Heading\nmore")
	if title != "My Heading" {
		t.Errorf("title = %q, want %q", title, "My Heading")
	}
}
