package mcpserver

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/starford/raido/internal/testutil"
	"github.com/starford/raido/internal/tripservice"
	"github.com/starford/raido/internal/trips"
)

func testServer(t *testing.T) *Server {
	t.Helper()

	_, store := testutil.TestVault(t)
	db := testutil.TestDB(t)
	svc := tripservice.NewService(store, db, trips.NewColorizer(trips.SchemeRainbow), nil)
	return New(svc, store)
}

func callTool(t *testing.T, srv *Server, name string, args map[string]interface{}) *mcp.CallToolResult {
	t.Helper()
	ctx := context.Background()
	req := mcp.CallToolRequest{}
	req.Method = "tools/call"
	req.Params.Name = name
	req.Params.Arguments = args

	// mcp-go doesn't expose a direct "call tool" test helper, so we call the
	// handler functions directly.
	var result *mcp.CallToolResult
	var err error

	switch name {
	case "list_trips":
		result, err = srv.listTrips(ctx, req)
	case "trips_on_day":
		result, err = srv.tripsOnDay(ctx, req)
	case "calendar_view":
		result, err = srv.calendarView(ctx, req)
	case "create_trip":
		result, err = srv.createTrip(ctx, req)
	case "read_note":
		result, err = srv.readNote(ctx, req)
	case "search_notes":
		result, err = srv.searchNotes(ctx, req)
	case "get_trip_contract":
		result, err = srv.getTripContract(ctx, req)
	default:
		t.Fatalf("unknown tool: %s", name)
	}

	if err != nil {
		t.Fatalf("tool %s error: %v", name, err)
	}
	return result
}

func resultText(r *mcp.CallToolResult) string {
	if len(r.Content) > 0 {
		if tc, ok := r.Content[0].(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func TestCreateTripAndReadNote(t *testing.T) {
	srv := testServer(t)

	r := callTool(t, srv, "create_trip", map[string]interface{}{
		"path":  "trips/rome.md",
		"title": "Rome",
		"start": "2024-03-10",
		"end":   "2024-03-14",
	})
	if resultText(r) != "created: trips/rome.md" {
		t.Errorf("create result = %q", resultText(r))
	}

	r = callTool(t, srv, "read_note", map[string]interface{}{
		"path": "trips/rome.md",
	})
	text := resultText(r)
	if !strings.Contains(text, "start date: 2024-03-10") {
		t.Errorf("note missing start date: %q", text)
	}
	if !strings.Contains(text, "tags: [trip]") {
		t.Errorf("note missing trip tag: %q", text)
	}
}

func TestCreateTrip_RejectsBadDate(t *testing.T) {
	srv := testServer(t)

	r := callTool(t, srv, "create_trip", map[string]interface{}{
		"path":  "bad.md",
		"title": "Bad",
		"start": "03/10/2024",
	})
	if !r.IsError {
		t.Error("expected error for locale-formatted date")
	}
}

func TestListTrips(t *testing.T) {
	srv := testServer(t)

	r := callTool(t, srv, "list_trips", map[string]interface{}{})
	if resultText(r) != "no trips found" {
		t.Errorf("empty vault = %q", resultText(r))
	}

	callTool(t, srv, "create_trip", map[string]interface{}{
		"path": "a.md", "title": "Alpha", "start": "2024-03-10",
	})
	r = callTool(t, srv, "list_trips", map[string]interface{}{})
	if !strings.Contains(resultText(r), "Alpha") {
		t.Errorf("list missing trip: %q", resultText(r))
	}
}

func TestTripsOnDay(t *testing.T) {
	srv := testServer(t)
	callTool(t, srv, "create_trip", map[string]interface{}{
		"path": "rome.md", "title": "Rome", "start": "2024-03-10", "end": "2024-03-14",
	})

	r := callTool(t, srv, "trips_on_day", map[string]interface{}{"date": "2024-03-12"})
	if !strings.Contains(resultText(r), "Rome") {
		t.Errorf("mid-range day = %q", resultText(r))
	}

	r = callTool(t, srv, "trips_on_day", map[string]interface{}{"date": "2024-03-15"})
	if resultText(r) != "no trips on 2024-03-15" {
		t.Errorf("day after end = %q", resultText(r))
	}

	r = callTool(t, srv, "trips_on_day", map[string]interface{}{"date": "not-a-date"})
	if !r.IsError {
		t.Error("expected error for invalid date")
	}
}

func TestCalendarView(t *testing.T) {
	srv := testServer(t)
	callTool(t, srv, "create_trip", map[string]interface{}{
		"path": "rome.md", "title": "Rome", "start": "2024-03-10",
	})

	r := callTool(t, srv, "calendar_view", map[string]interface{}{
		"mode": "month", "anchor": "2024-03-01",
	})
	text := resultText(r)
	if !strings.Contains(text, `"mode": "month"`) {
		t.Errorf("payload missing mode: %q", text)
	}
	if !strings.Contains(text, "Rome") {
		t.Errorf("payload missing trip: %q", text)
	}

	r = callTool(t, srv, "calendar_view", map[string]interface{}{"mode": "week"})
	if !r.IsError {
		t.Error("expected error for invalid mode")
	}
}

func TestReadNoteMissing(t *testing.T) {
	srv := testServer(t)
	r := callTool(t, srv, "read_note", map[string]interface{}{"path": "nope.md"})
	if !r.IsError {
		t.Error("expected error for missing note")
	}
}

func TestGetTripContract(t *testing.T) {
	srv := testServer(t)
	r := callTool(t, srv, "get_trip_contract", map[string]interface{}{})
	if !strings.Contains(resultText(r), "start date") {
		t.Error("contract missing start date rule")
	}
}
