package testutil

import "github.com/roach88/eventboard/internal/event"

// SampleToday is the date sample fixtures are classified against.
const SampleToday = "2025-06-10"

// SampleEvents returns a small collection in insertion order (not date
// order): two upcoming events and one past event.
func SampleEvents() []event.Event {
	return []event.Event{
		{ID: "1001", Title: "Book Club", Date: "2025-06-15", Location: "Library", Description: "June pick"},
		{ID: "1002", Title: "Garden Party", Date: "2025-05-01", Location: "Park", Description: "Bring snacks"},
		{ID: "1003", Title: "Team Offsite", Date: "2025-07-20", Location: "Lodge", Description: "Planning"},
	}
}

// SampleDraft returns a draft with every field filled in.
func SampleDraft() event.Draft {
	return event.Draft{
		Title:       "Concert",
		Date:        "2025-08-01",
		Location:    "Arena",
		Description: "Front row",
	}
}
