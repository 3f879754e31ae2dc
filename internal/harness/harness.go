package harness

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/eventboard/internal/board"
	"github.com/roach88/eventboard/internal/event"
	"github.com/roach88/eventboard/internal/listing"
	"github.com/roach88/eventboard/internal/store"
	"github.com/roach88/eventboard/internal/testutil"
)

// Harness runs one scenario against a board backed by an in-memory store.
type Harness struct {
	board  *board.Board
	events *store.Events
	logger *slog.Logger
}

// Run executes a scenario and returns the result.
//
// Each scenario runs against a fresh in-memory store for isolation, with a
// fixed clock and deterministic ids so traces are reproducible.
//
// Execution flow:
// 1. Store the seed events
// 2. Execute steps in order, recording a trace entry for each
// 3. Check step expectations and assertions
// 4. Return result with pass/fail, trace, final screen and errors
//
// A step that fails the way a user action can fail (validation, unknown id,
// bad filter) is recorded in the trace. Only infrastructure failures are
// returned as errors.
func Run(scenario *Scenario) (*Result, error) {
	return RunWithLogger(scenario, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// RunWithLogger is Run with board and harness logging sent to logger.
func RunWithLogger(scenario *Scenario, logger *slog.Logger) (*Result, error) {
	ctx := context.Background()

	today := scenario.Today
	if today == "" {
		today = testutil.SampleToday
	}

	var ids event.IDGenerator = testutil.NewSequenceGenerator("")
	if len(scenario.IDs) > 0 {
		ids = event.NewFixedGenerator(scenario.IDs...)
	}

	acc := store.NewEvents(store.NewMemory(), store.DefaultKey, logger)
	if len(scenario.Seed) > 0 {
		if err := acc.Save(ctx, scenario.Seed); err != nil {
			return nil, fmt.Errorf("failed to store seed events: %w", err)
		}
	}

	h := &Harness{
		board: board.New(acc,
			board.WithClock(testutil.NewFixedClock(today)),
			board.WithIDGenerator(ids),
			board.WithLogger(logger),
		),
		events: acc,
		logger: logger,
	}

	result := NewResult()
	if err := h.executeSteps(ctx, scenario.Steps, result); err != nil {
		return nil, fmt.Errorf("failed to execute steps: %w", err)
	}

	result.Screen = h.board.Screen(ctx)
	result.Events = h.events.Load(ctx)

	for _, errMsg := range EvaluateAssertions(result, scenario.Assertions) {
		result.AddError(errMsg)
	}

	return result, nil
}

// executeSteps runs every step and checks its expect clause.
func (h *Harness) executeSteps(ctx context.Context, steps []Step, result *Result) error {
	for i, step := range steps {
		ev, err := h.executeStep(ctx, step)
		if err != nil {
			return fmt.Errorf("step %d (%s): %w", i, step.action(), err)
		}
		ev.Step = i
		result.AddTrace(ev)

		if step.Expect != "" && step.Expect != ev.Outcome {
			result.AddError(fmt.Sprintf("steps[%d] %s: expected outcome %q, got %q", i, ev.Action, step.Expect, ev.Outcome))
		}

		h.logger.Info("step completed",
			"step", i,
			"action", ev.Action,
			"outcome", ev.Outcome,
			"event_id", ev.EventID,
		)
	}
	return nil
}

func (h *Harness) executeStep(ctx context.Context, step Step) (TraceEvent, error) {
	ev := TraceEvent{Action: step.action()}

	switch {
	case step.Create != nil:
		out, err := h.board.Create(ctx, *step.Create)
		switch {
		case event.IsValidation(err):
			ev.Outcome = OutcomeRejected
			ev.Error = err.Error()
		case err != nil:
			return ev, err
		default:
			ev.Outcome = OutcomeCreated
			ev.EventID = out.Event.ID
			ev.Highlight = out.Highlight
		}
		ev.Message = out.Message

	case step.Edit != nil:
		ev.EventID = step.Edit.ID
		out, err := h.board.Edit(ctx, step.Edit.ID, step.Edit.Draft)
		switch {
		case event.IsValidation(err):
			ev.Outcome = OutcomeRejected
			ev.Error = err.Error()
		case errors.Is(err, event.ErrNotFound):
			ev.Outcome = OutcomeNotFound
			ev.Error = err.Error()
		case err != nil:
			return ev, err
		default:
			ev.Outcome = OutcomeUpdated
		}
		ev.Message = out.Message

	case step.Delete != nil:
		ev.EventID = *step.Delete
		out, err := h.board.Delete(ctx, *step.Delete)
		if err != nil {
			return ev, err
		}
		ev.Outcome = OutcomeNoop
		if out.Event != nil {
			ev.Outcome = OutcomeDeleted
		}

	case step.Criteria != nil:
		panel, err := listing.ParsePanel(step.Criteria.Panel)
		if err != nil {
			return ev, err
		}
		_, err = h.board.SetCriteria(ctx, panel, step.Criteria.Criteria)
		switch {
		case errors.Is(err, listing.ErrInvalidCriteria):
			ev.Outcome = OutcomeInvalid
			ev.Error = err.Error()
		case err != nil:
			return ev, err
		default:
			ev.Outcome = OutcomeFiltered
		}

	default:
		return ev, fmt.Errorf("step has no action")
	}

	return ev, nil
}
