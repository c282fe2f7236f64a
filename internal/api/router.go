package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/starford/raido/internal/tripservice"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
// sseHandler, if non-nil, is mounted at GET /events inside the auth group.
func NewRouter(svc *tripservice.Service, authEnabled bool, token string, sseHandler http.Handler) chi.Router {
	h := NewHandler(svc)

	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))

	// Calendar views.
	r.Get("/calendar", h.Calendar)
	r.Get("/calendar/month", h.CalendarMonth)
	r.Get("/calendar/year", h.CalendarYear)
	r.Get("/calendar/agenda", h.CalendarAgenda)

	// Trips.
	r.Get("/trips", h.ListTrips)
	r.Post("/trips", h.CreateTrip)
	r.Get("/trips/day", h.TripsOnDay)
	r.Get("/trips/legend", h.Legend)

	// Notes (open-on-click).
	r.Get("/notes/*", h.GetNote)
	r.Delete("/notes/*", h.DeleteNote)

	// Settings.
	r.Get("/settings", h.GetSettings)
	r.Put("/settings", h.PutSettings)

	// Diagnostics.
	r.Get("/debug", h.Debug)

	// Search.
	r.Get("/search", h.Search)

	// SSE endpoint (protected by same auth middleware).
	if sseHandler != nil {
		r.Get("/events", sseHandler.ServeHTTP)
	}

	return r
}
