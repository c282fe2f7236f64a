package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/starford/raido/internal/apperr"
	"github.com/starford/raido/internal/calendar"
	"github.com/starford/raido/internal/index"
	"github.com/starford/raido/internal/tripservice"
	"github.com/starford/raido/internal/trips"
)

// Handler holds API route handlers.
type Handler struct {
	svc *tripservice.Service
}

// NewHandler creates a new Handler.
func NewHandler(svc *tripservice.Service) *Handler {
	return &Handler{svc: svc}
}

// notePath extracts the note path from the URL (everything after /notes/).
// Supports encoded slashes from clients (e.g. trips%2Frome.md).
func notePath(r *http.Request) string {
	raw := strings.TrimPrefix(chi.URLParam(r, "*"), "/")
	if raw == "" {
		return ""
	}
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return decoded
}

// viewState resolves the view state for a calendar request: mode and
// first-day-of-week come from persisted settings unless the query overrides
// them, and the anchor defaults to today.
func (h *Handler) viewState(r *http.Request, forced calendar.Mode) (calendar.ViewState, time.Time, error) {
	settings, err := h.svc.Settings(r.Context())
	if err != nil {
		return calendar.ViewState{}, time.Time{}, err
	}

	today := time.Now()
	q := r.URL.Query()
	// A fixed today makes rendering reproducible; only honored in test mode.
	if settings.TestMode {
		if t, ok := trips.ParseDate(q.Get("today")); ok {
			today = t
		}
	}

	mode := forced
	if mode == "" {
		mode, _ = calendar.ParseMode(settings.DefaultView)
		if m, ok := calendar.ParseMode(q.Get("mode")); ok {
			mode = m
		}
	}

	anchor := today
	if y, err := strconv.Atoi(q.Get("year")); err == nil {
		m := int(anchor.Month())
		if n, err := strconv.Atoi(q.Get("month")); err == nil && n >= 1 && n <= 12 {
			m = n
		}
		anchor = time.Date(y, time.Month(m), 1, 0, 0, 0, 0, time.Local)
	}

	return calendar.ViewState{
		Mode:           mode,
		Anchor:         anchor,
		FirstDayOfWeek: time.Weekday(settings.FirstDayOfWeek),
	}, today, nil
}

// Calendar handles GET /calendar.
//
//	@Summary		Render the calendar in the requested or persisted mode
//	@Tags			calendar
//	@Produce		json
//	@Param			mode	query		string	false	"View mode"	Enums(month, year, agenda)
//	@Param			year	query		int		false	"Anchor year"
//	@Param			month	query		int		false	"Anchor month (1-12)"
//	@Success		200		{object}	ViewPayload
//	@Security		BearerAuth
//	@Router			/calendar [get]
func (h *Handler) Calendar(w http.ResponseWriter, r *http.Request) {
	h.renderView(w, r, "")
}

// CalendarMonth handles GET /calendar/month.
func (h *Handler) CalendarMonth(w http.ResponseWriter, r *http.Request) {
	h.renderView(w, r, calendar.ModeMonth)
}

// CalendarYear handles GET /calendar/year.
func (h *Handler) CalendarYear(w http.ResponseWriter, r *http.Request) {
	h.renderView(w, r, calendar.ModeYear)
}

// CalendarAgenda handles GET /calendar/agenda.
func (h *Handler) CalendarAgenda(w http.ResponseWriter, r *http.Request) {
	h.renderView(w, r, calendar.ModeAgenda)
}

func (h *Handler) renderView(w http.ResponseWriter, r *http.Request, forced calendar.Mode) {
	vs, today, err := h.viewState(r, forced)
	if err != nil {
		slog.Error("view state failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	payload, err := h.svc.View(r.Context(), vs, today)
	if err != nil {
		slog.Error("render view failed", slog.String("mode", string(vs.Mode)), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusOK, payload)
}

// ListTrips handles GET /trips.
//
//	@Summary		List every trip event in the vault
//	@Tags			trips
//	@Produce		json
//	@Success		200	{object}	TripListResponse
//	@Security		BearerAuth
//	@Router			/trips [get]
func (h *Handler) ListTrips(w http.ResponseWriter, r *http.Request) {
	events, err := h.svc.Events(r.Context())
	if err != nil {
		slog.Error("list trips failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	if events == nil {
		events = []trips.Event{}
	}
	writeJSON(w, http.StatusOK, TripListResponse{Trips: events, Total: len(events)})
}

// TripsOnDay handles GET /trips/day.
//
//	@Summary		List the trips covering a single date
//	@Tags			trips
//	@Produce		json
//	@Param			date	query		string	true	"Date (YYYY-MM-DD)"
//	@Success		200		{object}	TripListResponse
//	@Failure		400		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/trips/day [get]
func (h *Handler) TripsOnDay(w http.ResponseWriter, r *http.Request) {
	day, ok := trips.ParseDate(r.URL.Query().Get("date"))
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody("query parameter 'date' must be YYYY-MM-DD"))
		return
	}
	events, err := h.svc.TripsOnDay(r.Context(), day)
	if err != nil {
		slog.Error("trips on day failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	if events == nil {
		events = []trips.Event{}
	}
	writeJSON(w, http.StatusOK, TripListResponse{Trips: events, Total: len(events)})
}

// Legend handles GET /trips/legend.
//
//	@Summary		Legend for the current view scope
//	@Tags			trips
//	@Produce		json
//	@Param			mode	query		string	false	"View mode"	Enums(month, year, agenda)
//	@Success		200		{object}	LegendResponse
//	@Security		BearerAuth
//	@Router			/trips/legend [get]
func (h *Handler) Legend(w http.ResponseWriter, r *http.Request) {
	vs, today, err := h.viewState(r, "")
	if err != nil {
		slog.Error("view state failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	legend, err := h.svc.Legend(r.Context(), vs, today)
	if err != nil {
		slog.Error("legend failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	if legend == nil {
		legend = []calendar.LegendEntry{}
	}
	writeJSON(w, http.StatusOK, LegendResponse{Legend: legend})
}

// CreateTrip handles POST /trips.
//
//	@Summary		Create a trip note with generated frontmatter
//	@Tags			trips
//	@Accept			json
//	@Produce		json
//	@Param			body	body		CreateTripRequest	true	"Trip to create"
//	@Success		201		{object}	NoteDetail
//	@Failure		400		{object}	errResponse
//	@Failure		409		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/trips [post]
func (h *Handler) CreateTrip(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req CreateTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if req.Path == "" || req.Title == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("path and title are required"))
		return
	}
	start, ok := trips.ParseDate(req.Start)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody("start must be YYYY-MM-DD"))
		return
	}
	var end time.Time
	if req.End != "" {
		end, ok = trips.ParseDate(req.End)
		if !ok {
			writeJSON(w, http.StatusBadRequest, errorBody("end must be YYYY-MM-DD"))
			return
		}
	}
	note, err := h.svc.CreateTrip(r.Context(), req.Path, req.Title, start, end)
	if err != nil {
		if errors.Is(err, apperr.ErrAlreadyExists) {
			writeJSON(w, http.StatusConflict, errorBody("note already exists"))
		} else {
			slog.Error("create trip failed", slog.String("path", req.Path), slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	writeJSON(w, http.StatusCreated, note)
}

// GetNote handles GET /notes/*.
//
//	@Summary		Get a single note by path (open-on-click target)
//	@Tags			notes
//	@Produce		json
//	@Param			path	path		string	true	"Note path"
//	@Success		200		{object}	NoteDetail
//	@Failure		404		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/notes/{path} [get]
func (h *Handler) GetNote(w http.ResponseWriter, r *http.Request) {
	path := notePath(r)
	if path == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("path is required"))
		return
	}
	note, err := h.svc.GetNote(r.Context(), path)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("not found"))
		} else {
			slog.Error("get note failed", slog.String("path", path), slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	writeJSON(w, http.StatusOK, note)
}

// DeleteNote handles DELETE /notes/*.
//
//	@Summary		Delete a note
//	@Tags			notes
//	@Param			path	path	string	true	"Note path"
//	@Success		204		"Note deleted"
//	@Failure		404		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/notes/{path} [delete]
func (h *Handler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	path := notePath(r)
	if path == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("path is required"))
		return
	}
	if err := h.svc.DeleteNote(r.Context(), path); err != nil {
		slog.Error("delete note failed", slog.String("path", path), slog.String("error", err.Error()))
		writeJSON(w, http.StatusNotFound, errorBody("not found"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetSettings handles GET /settings.
//
//	@Summary		Read the persisted calendar settings
//	@Tags			settings
//	@Produce		json
//	@Success		200	{object}	SettingsPayload
//	@Security		BearerAuth
//	@Router			/settings [get]
func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.svc.Settings(r.Context())
	if err != nil {
		slog.Error("load settings failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

// PutSettings handles PUT /settings.
//
//	@Summary		Persist calendar settings
//	@Tags			settings
//	@Accept			json
//	@Produce		json
//	@Param			body	body		SettingsPayload	true	"Settings"
//	@Success		200		{object}	SettingsPayload
//	@Failure		400		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/settings [put]
func (h *Handler) PutSettings(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var settings index.Settings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if err := h.svc.SaveSettings(r.Context(), settings); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

// Debug handles GET /debug: trip-tag diagnostics. With debug mode enabled it
// lists matched notes that produced no event; with test mode it lists all
// matched notes and every extracted event.
func (h *Handler) Debug(w http.ResponseWriter, r *http.Request) {
	settings, err := h.svc.Settings(r.Context())
	if err != nil {
		slog.Error("load settings failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	if !settings.DebugMode && !settings.TestMode {
		writeJSON(w, http.StatusNotFound, errorBody("debug mode disabled"))
		return
	}
	info, err := h.svc.Debug(r.Context(), settings.TestMode)
	if err != nil {
		slog.Error("debug failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusOK, info)
}

// Search handles GET /search.
//
//	@Summary		Full-text search across notes
//	@Tags			search
//	@Produce		json
//	@Param			q		query		string	true	"Search query"
//	@Param			limit	query		int		false	"Max results"
//	@Success		200		{object}	SearchResponse
//	@Failure		400		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/search [get]
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("query parameter 'q' is required"))
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	results, err := h.svc.Search(r.Context(), q, limit)
	if err != nil {
		slog.Error("search failed", slog.String("query", q), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	if results == nil {
		results = []index.SearchResult{}
	}
	writeJSON(w, http.StatusOK, SearchResponse{Results: results})
}
