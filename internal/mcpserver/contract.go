package mcpserver

// TripNoteContract describes the canonical trip note format that LLM
// consumers should follow when creating trip notes.
const TripNoteContract = `# Raido Trip Note Contract

A note becomes a trip when it carries the ` + "`" + `trip` + "`" + ` tag and a parsable
` + "`" + `start date` + "`" + ` in its YAML frontmatter.

## Structure

` + "```" + `markdown
---
title: Human-readable trip name     # OPTIONAL – falls back to the file name
start date: 2024-03-10              # REQUIRED – ISO-8601 date (YYYY-MM-DD)
end date: 2024-03-14                # OPTIONAL – omit for a single-day trip
tags:                               # the trip tag is what marks the note
  - trip
---

Body text in standard Markdown. Itinerary, bookings, packing lists.
` + "```" + `

## Rules

1. **The ` + "`" + `trip` + "`" + ` tag is mandatory.** It may appear in the frontmatter tag
   list, in a comma-separated ` + "`" + `tags:` + "`" + ` string, or inline in the body as
   ` + "`" + `#trip` + "`" + `.
2. **` + "`" + `start date` + "`" + ` is required** and must be an ISO-8601 date.
   Locale formats like ` + "`" + `03/10/2024` + "`" + ` are rejected.
3. **` + "`" + `end date` + "`" + ` is optional.** Without it the trip covers only its
   start day. Both bounds are inclusive.
4. **File paths** end with ` + "`" + `.md` + "`" + ` and use forward slashes.
5. **Encoding** is UTF-8 with a trailing newline.

## Example

` + "```" + `markdown
---
title: Rome long weekend
start date: 2024-03-10
end date: 2024-03-14
tags:
  - trip
---

# Rome long weekend

Flights booked, hotel near Trastevere.
` + "```" + `
`
