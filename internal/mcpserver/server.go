// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes Raido tools for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/raido/internal/calendar"
	"github.com/starford/raido/internal/storage"
	"github.com/starford/raido/internal/tripservice"
	"github.com/starford/raido/internal/trips"
)

// Server wraps the MCP server with Raido tools.
type Server struct {
	mcp   *server.MCPServer
	svc   *tripservice.Service
	store storage.Provider
}

// New creates a new MCP server with all Raido tools registered.
func New(svc *tripservice.Service, store storage.Provider) *Server {
	s := &Server{svc: svc, store: store}

	s.mcp = server.NewMCPServer(
		"Raido",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("list_trips",
		mcp.WithDescription("List every trip event extracted from the vault, with dates and colors."),
	), s.listTrips)

	s.mcp.AddTool(mcp.NewTool("trips_on_day",
		mcp.WithDescription("List the trips whose date range covers a given day."),
		mcp.WithString("date", mcp.Required(), mcp.Description("Date in YYYY-MM-DD form")),
	), s.tripsOnDay)

	s.mcp.AddTool(mcp.NewTool("calendar_view",
		mcp.WithDescription("Render a calendar layout (month, year, or agenda) as JSON."),
		mcp.WithString("mode", mcp.Required(), mcp.Description("View mode: month, year, or agenda")),
		mcp.WithString("anchor", mcp.Description("Anchor date YYYY-MM-DD (defaults to today)")),
	), s.calendarView)

	s.mcp.AddTool(mcp.NewTool("create_trip",
		mcp.WithDescription("Create a trip note at the specified path. The note is written "+
			"in the canonical trip note format; read the contract first via the "+
			"get_trip_contract tool or the raido://trip-note-format resource."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Relative path for the new note (must end with .md)")),
		mcp.WithString("title", mcp.Required(), mcp.Description("Trip title")),
		mcp.WithString("start", mcp.Required(), mcp.Description("Start date YYYY-MM-DD")),
		mcp.WithString("end", mcp.Description("Optional end date YYYY-MM-DD")),
	), s.createTrip)

	s.mcp.AddTool(mcp.NewTool("read_note",
		mcp.WithDescription("Read the full content of a Markdown note."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Relative path to the note (e.g. trips/rome.md)")),
	), s.readNote)

	s.mcp.AddTool(mcp.NewTool("search_notes",
		mcp.WithDescription("Full-text search through notes content and titles."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search query string")),
	), s.searchNotes)

	s.mcp.AddTool(mcp.NewTool("get_trip_contract",
		mcp.WithDescription("Returns the canonical trip note format contract. "+
			"Call this before creating trip notes to ensure correct structure."),
	), s.getTripContract)

	// Resource: trip note format contract.
	s.mcp.AddResource(
		mcp.NewResource("raido://trip-note-format", "Trip Note Format Contract",
			mcp.WithResourceDescription("Canonical Markdown trip note format."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readTripContractResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) listTrips(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	events, err := s.svc.Events(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(events) == 0 {
		return mcp.NewToolResultText("no trips found"), nil
	}
	out, _ := json.MarshalIndent(events, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) tripsOnDay(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("date")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	day, ok := trips.ParseDate(raw)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("invalid date %q, want YYYY-MM-DD", raw)), nil
	}
	events, err := s.svc.TripsOnDay(ctx, day)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(events) == 0 {
		return mcp.NewToolResultText("no trips on " + raw), nil
	}
	out, _ := json.MarshalIndent(events, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) calendarView(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rawMode, err := req.RequireString("mode")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	mode, ok := calendar.ParseMode(rawMode)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("invalid mode %q, want month, year, or agenda", rawMode)), nil
	}

	anchor := time.Now()
	if raw, err := req.RequireString("anchor"); err == nil && raw != "" {
		a, ok := trips.ParseDate(raw)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("invalid anchor %q, want YYYY-MM-DD", raw)), nil
		}
		anchor = a
	}

	settings, err := s.svc.Settings(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	vs := calendar.ViewState{
		Mode:           mode,
		Anchor:         anchor,
		FirstDayOfWeek: time.Weekday(settings.FirstDayOfWeek),
	}
	payload, err := s.svc.View(ctx, vs, time.Now())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(payload, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) createTrip(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	title, err := req.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	rawStart, err := req.RequireString("start")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	start, ok := trips.ParseDate(rawStart)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("invalid start %q, want YYYY-MM-DD", rawStart)), nil
	}
	var end time.Time
	if raw, err := req.RequireString("end"); err == nil && raw != "" {
		end, ok = trips.ParseDate(raw)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("invalid end %q, want YYYY-MM-DD", raw)), nil
		}
	}

	if _, err := s.svc.CreateTrip(ctx, path, title, start, end); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("created: %s", path)), nil
}

func (s *Server) readNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	data, err := s.store.Read(path)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("not found: %s", path)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) searchNotes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	results, err := s.svc.Search(ctx, query, 20)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(results) == 0 {
		return mcp.NewToolResultText("no results"), nil
	}
	var b strings.Builder
	for _, r := range results {
		fmt.Fprintf(&b, "%s\t%s\n", r.Path, r.Title)
	}
	return mcp.NewToolResultText(b.String()), nil
}

func (s *Server) getTripContract(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(TripNoteContract), nil
}

func (s *Server) readTripContractResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "raido://trip-note-format",
			MIMEType: "text/markdown",
			Text:     TripNoteContract,
		},
	}, nil
}
