package tripservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/starford/raido/internal/apperr"
	"github.com/starford/raido/internal/calendar"
	"github.com/starford/raido/internal/checksum"
	"github.com/starford/raido/internal/index"
	"github.com/starford/raido/internal/models"
	"github.com/starford/raido/internal/parser"
	"github.com/starford/raido/internal/storage"
	"github.com/starford/raido/internal/trips"
)

// NoteDetail is the full representation of a vault note.
type NoteDetail struct {
	Path        string         `json:"path"`
	Title       string         `json:"title"`
	Content     string         `json:"content"`
	Checksum    string         `json:"checksum"`
	Tags        []string       `json:"tags"`
	Frontmatter map[string]any `json:"frontmatter,omitempty"`
	IsTrip      bool           `json:"is_trip"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// ViewPayload is one rendered calendar layout. Exactly one of Month, Year,
// Agenda is set, matching Mode; the legend always describes the visible
// events of that layout.
type ViewPayload struct {
	Mode   calendar.Mode          `json:"mode"`
	Anchor time.Time              `json:"anchor"`
	Month  *calendar.MonthView    `json:"month,omitempty"`
	Year   *calendar.YearView     `json:"year,omitempty"`
	Agenda []calendar.AgendaEntry `json:"agenda,omitempty"`
	Legend []calendar.LegendEntry `json:"legend"`
}

// DebugInfo is the diagnostic payload for the debug endpoint: which notes
// matched the trip tag and which of those produced events.
type DebugInfo struct {
	Matched []MatchedNote `json:"matched"`
	Events  []trips.Event `json:"events"`
}

// MatchedNote is one trip-tagged note in the debug listing, with the raw
// frontmatter date fields so a user can see why a note produced no event.
type MatchedNote struct {
	Path     string `json:"path"`
	Title    string `json:"title"`
	RawStart any    `json:"raw_start,omitempty"`
	RawEnd   any    `json:"raw_end,omitempty"`
	HasEvent bool   `json:"has_event"`
}

// Service coordinates the vault store, the index, and the calendar layer.
type Service struct {
	store     storage.Provider
	db        index.DocumentIndex
	colorizer trips.Colorizer
	logger    *slog.Logger
}

// NewService creates a trip service. logger may be nil.
func NewService(store storage.Provider, db index.DocumentIndex, colorizer trips.Colorizer, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, db: db, colorizer: colorizer, logger: logger}
}

// Events returns every trip event in the vault with colors assigned over the
// full set. The index's path ordering makes the result, and therefore the
// rainbow assignment, reproducible.
func (s *Service) Events(_ context.Context) ([]trips.Event, error) {
	docs, err := s.documents()
	if err != nil {
		return nil, err
	}
	events := trips.Extract(docs, s.logger)
	s.colorizer.Assign(events)
	return events, nil
}

// View renders the layout for the given state. Colors are assigned over the
// view's visible scope, not the whole vault, so a rainbow spreads across
// exactly the trips on screen.
func (s *Service) View(_ context.Context, vs calendar.ViewState, today time.Time) (*ViewPayload, error) {
	docs, err := s.documents()
	if err != nil {
		return nil, err
	}
	events := trips.Extract(docs, s.logger)
	visible := calendar.VisibleEvents(events, vs)
	s.colorizer.Assign(visible)

	payload := &ViewPayload{
		Mode:   vs.Mode,
		Anchor: vs.Anchor,
		Legend: calendar.BuildLegend(visible, today),
	}
	switch vs.Mode {
	case calendar.ModeMonth:
		mv := calendar.BuildMonth(visible, vs.Anchor.Year(), vs.Anchor.Month(), vs.FirstDayOfWeek)
		payload.Month = &mv
	case calendar.ModeYear:
		yv := calendar.BuildYear(visible, vs.Anchor.Year(), vs.FirstDayOfWeek)
		payload.Year = &yv
	case calendar.ModeAgenda:
		payload.Agenda = calendar.BuildAgenda(visible, today)
	}
	return payload, nil
}

// Legend returns the deduplicated legend for the given view scope.
func (s *Service) Legend(ctx context.Context, vs calendar.ViewState, today time.Time) ([]calendar.LegendEntry, error) {
	payload, err := s.View(ctx, vs, today)
	if err != nil {
		return nil, err
	}
	return payload.Legend, nil
}

// TripsOnDay returns the events covering a single date, colored over the
// full vault scope.
func (s *Service) TripsOnDay(ctx context.Context, day time.Time) ([]trips.Event, error) {
	events, err := s.Events(ctx)
	if err != nil {
		return nil, err
	}
	return calendar.EventsOnDay(events, day), nil
}

// GetNote reads a note from storage for open-on-click.
func (s *Service) GetNote(_ context.Context, path string) (*NoteDetail, error) {
	data, err := s.store.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return s.buildNoteDetail(path, data)
}

// CreateTrip writes a new trip note with a generated frontmatter block and
// indexes it. End may be zero for a single-day trip.
func (s *Service) CreateTrip(_ context.Context, path, title string, start time.Time, end time.Time) (*NoteDetail, error) {
	if _, err := s.store.Read(path); err == nil {
		return nil, apperr.ErrAlreadyExists
	}
	content := renderTripNote(title, start, end)
	if err := s.store.Write(path, content); err != nil {
		return nil, err
	}
	if err := s.IndexFile(path, content); err != nil {
		return nil, err
	}
	return s.buildNoteDetail(path, content)
}

// DeleteNote removes a note from storage and index.
func (s *Service) DeleteNote(_ context.Context, path string) error {
	if err := s.store.Delete(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return apperr.ErrNotFound
		}
		return err
	}
	return s.db.DeleteDocument(path)
}

// Search delegates full-text search to the index.
func (s *Service) Search(_ context.Context, query string, limit int) ([]index.SearchResult, error) {
	return s.db.Search(query, limit)
}

// Settings loads the persisted calendar settings.
func (s *Service) Settings(_ context.Context) (index.Settings, error) {
	return s.db.LoadSettings()
}

// SaveSettings validates and persists calendar settings.
func (s *Service) SaveSettings(_ context.Context, st index.Settings) error {
	if _, ok := calendar.ParseMode(st.DefaultView); !ok {
		return fmt.Errorf("tripservice: invalid default view %q", st.DefaultView)
	}
	if st.FirstDayOfWeek < 0 || st.FirstDayOfWeek > 6 {
		return fmt.Errorf("tripservice: first day of week %d out of range", st.FirstDayOfWeek)
	}
	return s.db.SaveSettings(st)
}

// Debug returns the matched-note diagnostics. When all is false only notes
// that failed to produce an event are listed.
func (s *Service) Debug(_ context.Context, all bool) (*DebugInfo, error) {
	docs, err := s.documents()
	if err != nil {
		return nil, err
	}
	matched := trips.MatchedDocs(docs)
	events := trips.Extract(docs, s.logger)
	s.colorizer.Assign(events)

	hasEvent := make(map[string]bool, len(events))
	for _, e := range events {
		hasEvent[e.Path] = true
	}

	info := &DebugInfo{Events: events}
	for _, doc := range matched {
		if !all && hasEvent[doc.Path] {
			continue
		}
		note := MatchedNote{Path: doc.Path, Title: doc.Title, HasEvent: hasEvent[doc.Path]}
		if doc.Frontmatter != nil {
			note.RawStart = doc.Frontmatter[trips.KeyStartDate]
			note.RawEnd = doc.Frontmatter[trips.KeyEndDate]
		}
		info.Matched = append(info.Matched, note)
	}
	return info, nil
}

// IndexFile parses data and upserts it into the index.
// Exported so that sync and watcher can reuse it.
func (s *Service) IndexFile(path string, data []byte) error {
	res, err := parser.Parse(data)
	if err != nil {
		return err
	}
	return s.db.UpsertDocument(index.DocumentRow{
		Path:        path,
		Basename:    index.Basename(path),
		Title:       res.Title,
		Checksum:    checksum.Sum(data),
		Tags:        nonNilSlice(res.Tags),
		Frontmatter: res.Frontmatter,
		UpdatedAt:   time.Now(),
	}, res.Body)
}

func (s *Service) documents() ([]models.Document, error) {
	rows, err := s.db.ListDocuments()
	if err != nil {
		return nil, err
	}
	docs := make([]models.Document, len(rows))
	for i, r := range rows {
		docs[i] = models.Document{
			Path:        r.Path,
			Basename:    r.Basename,
			Title:       r.Title,
			Frontmatter: r.Frontmatter,
			Tags:        r.Tags,
			Checksum:    r.Checksum,
			UpdatedAt:   r.UpdatedAt,
		}
	}
	return docs, nil
}

func (s *Service) buildNoteDetail(path string, data []byte) (*NoteDetail, error) {
	res, err := parser.Parse(data)
	if err != nil {
		return nil, err
	}
	doc := models.Document{
		Path:        path,
		Basename:    index.Basename(path),
		Title:       res.Title,
		Frontmatter: res.Frontmatter,
		Tags:        res.Tags,
	}
	return &NoteDetail{
		Path:        path,
		Title:       res.Title,
		Content:     string(data),
		Checksum:    checksum.Sum(data),
		Tags:        nonNilSlice(res.Tags),
		Frontmatter: res.Frontmatter,
		IsTrip:      trips.Matches(doc),
		UpdatedAt:   time.Now(),
	}, nil
}

// renderTripNote produces a markdown note with the frontmatter fields the
// extractor reads back.
func renderTripNote(title string, start, end time.Time) []byte {
	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "title: %s\n", title)
	fmt.Fprintf(&b, "start date: %s\n", start.Format("2006-01-02"))
	if !end.IsZero() {
		fmt.Fprintf(&b, "end date: %s\n", end.Format("2006-01-02"))
	}
	b.WriteString("tags: [" + trips.Tag + "]\n")
	b.WriteString("---\n\n")
	fmt.Fprintf(&b, "# %s\n", title)
	return []byte(b.String())
}

func nonNilSlice[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
