package trips

import (
	"log/slog"
	"slices"
	"time"

	"github.com/starford/raido/internal/models"
)

// Matches reports whether a document carries the trip tag. The parser has
// already merged inline #tags and frontmatter tags (both list and
// comma-separated string forms) into Document.Tags.
func Matches(doc models.Document) bool {
	return slices.Contains(doc.Tags, Tag)
}

// Extract filters docs to those carrying the trip tag and builds one event
// per document with a parsable "start date". Documents are processed in the
// order given; callers must supply a stable order (the index lists by path)
// so downstream color assignment stays reproducible.
//
// Failures are isolated per document: a missing or unparsable start date
// drops that document only, and an unparsable end date yields an open-ended
// event rather than no event. logger may be nil.
func Extract(docs []models.Document, logger *slog.Logger) []Event {
	if logger == nil {
		logger = slog.Default()
	}

	var events []Event
	for _, doc := range docs {
		if !Matches(doc) {
			continue
		}
		if doc.Frontmatter == nil {
			logger.Debug("extract: no frontmatter", slog.String("path", doc.Path))
			continue
		}

		rawStart, ok := doc.Frontmatter[KeyStartDate]
		if !ok {
			logger.Debug("extract: no start date", slog.String("path", doc.Path))
			continue
		}
		start, ok := ParseDate(rawStart)
		if !ok {
			logger.Debug("extract: unparsable start date",
				slog.String("path", doc.Path),
				slog.Any("value", rawStart))
			continue
		}

		var end *time.Time
		if rawEnd, ok := doc.Frontmatter[KeyEndDate]; ok {
			if e, ok := ParseDate(rawEnd); ok {
				end = &e
			} else {
				// Unparsable end never rejects the event.
				logger.Debug("extract: unparsable end date",
					slog.String("path", doc.Path),
					slog.Any("value", rawEnd))
			}
		}

		events = append(events, Event{
			Title: resolveTitle(doc),
			Start: start,
			End:   end,
			Path:  doc.Path,
		})
	}
	return events
}

// MatchedDocs returns the subset of docs carrying the trip tag, for
// diagnostic output. The tag filter is identical to Extract's.
func MatchedDocs(docs []models.Document) []models.Document {
	var out []models.Document
	for _, doc := range docs {
		if Matches(doc) {
			out = append(out, doc)
		}
	}
	return out
}

// resolveTitle prefers the frontmatter title and falls back to the basename.
func resolveTitle(doc models.Document) string {
	if t, ok := doc.Frontmatter[KeyTitle].(string); ok && t != "" {
		return t
	}
	return doc.Basename
}
