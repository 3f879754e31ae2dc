package event

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// DateLayout is the zero-padded ISO date format used for Event.Date.
// String comparison of values in this layout is chronological.
const DateLayout = "2006-01-02"

// Event is a stored event record.
type Event struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Date        string `json:"date" yaml:"date"`
	Location    string `json:"location" yaml:"location"`
	Description string `json:"description" yaml:"description"`
}

// IsUpcoming reports whether the event falls on or after today.
// today must be in DateLayout form.
func (e Event) IsUpcoming(today string) bool {
	return e.Date >= today
}

// Draft returns the editable fields of the event, as used to pre-fill the
// edit form.
func (e Event) Draft() Draft {
	return Draft{
		Title:       e.Title,
		Date:        e.Date,
		Location:    e.Location,
		Description: e.Description,
	}
}

// Apply returns a copy of the event with the draft's fields replacing its
// own. The id is kept.
func (e Event) Apply(d Draft) Event {
	e.Title = d.Title
	e.Date = d.Date
	e.Location = d.Location
	e.Description = d.Description
	return e
}

// Draft holds user-entered values for creating or editing an event.
type Draft struct {
	Title       string `json:"title" yaml:"title"`
	Date        string `json:"date" yaml:"date"`
	Location    string `json:"location" yaml:"location"`
	Description string `json:"description" yaml:"description"`
}

// Normalize trims surrounding whitespace and applies NFC normalization so
// that visually identical input compares equal. Invalid UTF-8 sequences are
// replaced with U+FFFD, which is what a JSON round trip through the store
// would produce anyway.
func (d Draft) Normalize() Draft {
	return Draft{
		Title:       clean(d.Title),
		Date:        clean(d.Date),
		Location:    clean(d.Location),
		Description: clean(d.Description),
	}
}

// Validate checks that every field is non-empty after trimming.
// Returns a *ValidationError naming each missing field.
func (d Draft) Validate() error {
	n := d.Normalize()

	var missing []string
	if n.Title == "" {
		missing = append(missing, "title")
	}
	if n.Date == "" {
		missing = append(missing, "date")
	}
	if n.Location == "" {
		missing = append(missing, "location")
	}
	if n.Description == "" {
		missing = append(missing, "description")
	}

	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

// New builds an event from a normalized draft and an id.
func New(id string, d Draft) Event {
	return Event{ID: id}.Apply(d.Normalize())
}

// IndexOf returns the position of the event with the given id, or -1.
func IndexOf(events []Event, id string) int {
	for i := range events {
		if events[i].ID == id {
			return i
		}
	}
	return -1
}

func clean(s string) string {
	return norm.NFC.String(strings.TrimSpace(strings.ToValidUTF8(s, "\uFFFD")))
}
