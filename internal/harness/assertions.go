package harness

import (
	"fmt"
	"slices"
	"strings"

	"github.com/roach88/eventboard/internal/listing"
)

// AssertionError is returned when an assertion fails.
// It includes detailed context to help debug the failure.
type AssertionError struct {
	Type     string       // Assertion type for categorization
	Expected string       // Human-readable expected outcome
	Actual   string       // Human-readable actual outcome
	Trace    []TraceEvent // Full trace for debugging context
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	if len(e.Trace) > 0 {
		fmt.Fprintf(&buf, "\nFull trace:\n")
		for _, ev := range e.Trace {
			fmt.Fprintf(&buf, "  [%d] %s %s -> %s\n", ev.Step, ev.Action, ev.EventID, ev.Outcome)
		}
	}

	return buf.String()
}

func panelView(result *Result, panel string) listing.View {
	id, _ := listing.ParsePanel(panel)
	return result.Screen.View(id)
}

// assertPanelTitles checks the card titles of a panel, in display order.
func assertPanelTitles(result *Result, a Assertion) error {
	v := panelView(result, a.Panel)
	got := make([]string, len(v.Cards))
	for i, c := range v.Cards {
		got[i] = c.Title
	}
	want := a.Titles
	if want == nil {
		want = []string{}
	}

	if slices.Equal(got, want) {
		return nil
	}
	return &AssertionError{
		Type:     AssertPanelTitles,
		Expected: fmt.Sprintf("%s panel titles %q", a.Panel, want),
		Actual:   fmt.Sprintf("%q", got),
		Trace:    result.Trace,
	}
}

// assertPlaceholder checks the placeholder copy of a panel.
func assertPlaceholder(result *Result, a Assertion) error {
	v := panelView(result, a.Panel)
	if v.Placeholder == a.Text {
		return nil
	}
	return &AssertionError{
		Type:     AssertPlaceholder,
		Expected: fmt.Sprintf("%s panel placeholder %q", a.Panel, a.Text),
		Actual:   fmt.Sprintf("%q", v.Placeholder),
		Trace:    result.Trace,
	}
}

// assertListTitle checks the list title of a panel.
func assertListTitle(result *Result, a Assertion) error {
	v := panelView(result, a.Panel)
	if v.Title == a.Text {
		return nil
	}
	return &AssertionError{
		Type:     AssertListTitle,
		Expected: fmt.Sprintf("%s panel title %q", a.Panel, a.Text),
		Actual:   fmt.Sprintf("%q", v.Title),
		Trace:    result.Trace,
	}
}

// assertEventCount checks how many events are stored.
func assertEventCount(result *Result, a Assertion) error {
	if len(result.Events) == a.Count {
		return nil
	}
	return &AssertionError{
		Type:     AssertEventCount,
		Expected: fmt.Sprintf("%d stored events", a.Count),
		Actual:   fmt.Sprintf("%d stored events", len(result.Events)),
		Trace:    result.Trace,
	}
}

// assertOutcome checks the trace entry of one step.
func assertOutcome(result *Result, a Assertion) error {
	if a.Step < 0 || a.Step >= len(result.Trace) {
		return &AssertionError{
			Type:     AssertOutcome,
			Expected: fmt.Sprintf("step %d in trace", a.Step),
			Actual:   fmt.Sprintf("trace has %d steps", len(result.Trace)),
			Trace:    result.Trace,
		}
	}

	ev := result.Trace[a.Step]
	if ev.Outcome != a.Outcome {
		return &AssertionError{
			Type:     AssertOutcome,
			Expected: fmt.Sprintf("step %d outcome %q", a.Step, a.Outcome),
			Actual:   fmt.Sprintf("%q", ev.Outcome),
			Trace:    result.Trace,
		}
	}

	if a.Message != "" {
		got := ""
		if ev.Message != nil {
			got = ev.Message.Text
		}
		if got != a.Message {
			return &AssertionError{
				Type:     AssertOutcome,
				Expected: fmt.Sprintf("step %d message %q", a.Step, a.Message),
				Actual:   fmt.Sprintf("%q", got),
				Trace:    result.Trace,
			}
		}
	}

	return nil
}

// EvaluateAssertions evaluates all assertions against the result.
// Returns one message per failed assertion.
func EvaluateAssertions(result *Result, assertions []Assertion) []string {
	var errs []string

	for i, a := range assertions {
		var err error
		switch a.Type {
		case AssertPanelTitles:
			err = assertPanelTitles(result, a)
		case AssertPlaceholder:
			err = assertPlaceholder(result, a)
		case AssertListTitle:
			err = assertListTitle(result, a)
		case AssertEventCount:
			err = assertEventCount(result, a)
		case AssertOutcome:
			err = assertOutcome(result, a)
		default:
			err = fmt.Errorf("unknown assertion type %q", a.Type)
		}

		if err != nil {
			errs = append(errs, fmt.Sprintf("assertions[%d]: %v", i, err))
		}
	}

	return errs
}
