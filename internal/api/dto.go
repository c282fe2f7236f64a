package api

import (
	"github.com/starford/raido/internal/calendar"
	"github.com/starford/raido/internal/index"
	"github.com/starford/raido/internal/tripservice"
	"github.com/starford/raido/internal/trips"
)

// CreateTripRequest is the request body for creating a trip note.
type CreateTripRequest struct {
	Path  string `json:"path" example:"trips/rome.md" validate:"required"`
	Title string `json:"title" example:"Rome" validate:"required"`
	Start string `json:"start" example:"2024-03-10" validate:"required"`
	End   string `json:"end,omitempty" example:"2024-03-14"`
}

// NoteDetail is the full note response type (aliased from the domain layer).
type NoteDetail = tripservice.NoteDetail

// ViewPayload is a rendered calendar layout (aliased from the domain layer).
type ViewPayload = tripservice.ViewPayload

// TripListResponse wraps the full event listing.
type TripListResponse struct {
	Trips []trips.Event `json:"trips" validate:"required"`
	Total int           `json:"total" example:"7" validate:"required"`
}

// LegendResponse wraps legend entries for the current view scope.
type LegendResponse struct {
	Legend []calendar.LegendEntry `json:"legend" validate:"required"`
}

// SettingsPayload is the persisted settings surface.
type SettingsPayload = index.Settings

// SearchResponse wraps search results.
type SearchResponse struct {
	Results []index.SearchResult `json:"results" validate:"required"`
}
