package board

import (
	"encoding/json"
	"time"

	"github.com/roach88/eventboard/internal/event"
	"github.com/roach88/eventboard/internal/listing"
)

// User-facing message copy.
const (
	MsgFillAllFields = "Please fill in all fields"
	MsgCreated       = "Event created successfully!"
	MsgUpdated       = "Event updated successfully!"
)

// Default display durations.
const (
	DefaultMessageTTL   = 3 * time.Second
	DefaultHighlightTTL = 1 * time.Second
)

// EffectPulse is the only highlight effect.
const EffectPulse = "pulse"

// MessageKind selects message styling.
type MessageKind string

const (
	KindSuccess MessageKind = "success"
	KindError   MessageKind = "error"
)

// Target names the UI region a message belongs to.
type Target string

const (
	TargetCreateForm Target = "create"
	TargetEditForm   Target = "edit"
	TargetManage     Target = "manage"
)

// Message is a transient notice for the host UI to show and then remove.
type Message struct {
	Text         string
	Kind         MessageKind
	Target       Target
	DismissAfter time.Duration
}

// MarshalJSON renders DismissAfter as a duration string such as "3s".
func (m Message) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Text         string      `json:"text"`
		Kind         MessageKind `json:"kind"`
		Target       Target      `json:"target"`
		DismissAfter string      `json:"dismiss_after"`
	}{m.Text, m.Kind, m.Target, m.DismissAfter.String()})
}

// Highlight asks the host UI to apply a visual effect to one card.
type Highlight struct {
	EventID      string
	Effect       string
	DismissAfter time.Duration
}

// MarshalJSON renders DismissAfter as a duration string such as "1s".
func (h Highlight) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		EventID      string `json:"event_id"`
		Effect       string `json:"effect"`
		DismissAfter string `json:"dismiss_after"`
	}{h.EventID, h.Effect, h.DismissAfter.String()})
}

// Outcome is the result of a board action.
//
// Screen is nil when the action was rejected and nothing was re-rendered.
// Form is set when the form the action came from should be reset.
type Outcome struct {
	Event     *event.Event    `json:"event,omitempty"`
	Form      *event.Draft    `json:"form,omitempty"`
	Screen    *listing.Screen `json:"screen,omitempty"`
	Message   *Message        `json:"message,omitempty"`
	Highlight *Highlight      `json:"highlight,omitempty"`
}
