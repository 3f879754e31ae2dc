package listing

import (
	"time"

	"github.com/roach88/eventboard/internal/event"
)

// LongDateLayout renders dates the way en-US long form does,
// e.g. "Sunday, June 15, 2025".
const LongDateLayout = "Monday, January 2, 2006"

// InvalidDate is shown in place of a date that cannot be parsed.
const InvalidDate = "Invalid Date"

// ActionKind names a card action.
type ActionKind string

const (
	ActionEdit   ActionKind = "edit"
	ActionDelete ActionKind = "delete"
)

// Action is a descriptor the host UI binds to a control. Triggering it
// dispatches Kind for EventID.
type Action struct {
	Kind    ActionKind `json:"kind"`
	EventID string     `json:"event_id"`
}

// Card is the display form of one event.
type Card struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Date        string   `json:"date"`
	DisplayDate string   `json:"display_date"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Past        bool     `json:"past"`
	Actions     []Action `json:"actions,omitempty"`
}

// RenderCard builds the card for e. Past cards are marked muted; cards that
// are not read-only carry edit and delete actions.
func RenderCard(e event.Event, isPast, isReadOnly bool) Card {
	c := Card{
		ID:          e.ID,
		Title:       e.Title,
		Date:        e.Date,
		DisplayDate: FormatLongDate(e.Date),
		Location:    e.Location,
		Description: e.Description,
		Past:        isPast,
	}
	if !isReadOnly {
		c.Actions = []Action{
			{Kind: ActionEdit, EventID: e.ID},
			{Kind: ActionDelete, EventID: e.ID},
		}
	}
	return c
}

// FormatLongDate converts a YYYY-MM-DD date to long form. Single-digit month
// and day components are accepted.
func FormatLongDate(date string) string {
	for _, layout := range []string{event.DateLayout, "2006-1-2"} {
		if t, err := time.Parse(layout, date); err == nil {
			return t.Format(LongDateLayout)
		}
	}
	return InvalidDate
}
