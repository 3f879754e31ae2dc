package harness

import (
	"github.com/roach88/eventboard/internal/board"
	"github.com/roach88/eventboard/internal/event"
	"github.com/roach88/eventboard/internal/listing"
)

// Step outcomes recorded in the trace.
const (
	OutcomeCreated  = "created"
	OutcomeUpdated  = "updated"
	OutcomeDeleted  = "deleted"
	OutcomeNoop     = "noop"
	OutcomeRejected = "rejected"
	OutcomeNotFound = "not_found"
	OutcomeFiltered = "filtered"
	OutcomeInvalid  = "invalid"
)

// TraceEvent records what one scenario step did.
type TraceEvent struct {
	Step      int              `json:"step"`
	Action    string           `json:"action"`
	Outcome   string           `json:"outcome"`
	EventID   string           `json:"event_id,omitempty"`
	Message   *board.Message   `json:"message,omitempty"`
	Highlight *board.Highlight `json:"highlight,omitempty"`
	Error     string           `json:"error,omitempty"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass is true when every step expectation and assertion held.
	Pass bool `json:"pass"`

	// Trace contains one entry per step, in order.
	Trace []TraceEvent `json:"trace"`

	// Errors contains failed expectations and assertions.
	Errors []string `json:"errors,omitempty"`

	// Screen is both panels rendered after the last step.
	Screen listing.Screen `json:"screen"`

	// Events is the stored collection after the last step.
	Events []event.Event `json:"events"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
		Events: []event.Event{},
	}
}

// AddError adds a failure message and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// AddTrace appends a step record.
func (r *Result) AddTrace(ev TraceEvent) {
	r.Trace = append(r.Trace, ev)
}
