package harness

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/roach88/eventboard/internal/event"
	"github.com/roach88/eventboard/internal/listing"
)

// Scenario is a scripted session against a fresh board.
type Scenario struct {
	// Name uniquely identifies this scenario. Golden files are named after it.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Today pins the date events are classified against (YYYY-MM-DD).
	// Defaults to testutil.SampleToday.
	Today string `yaml:"today,omitempty"`

	// IDs are handed out in order to created events. When empty, ids are
	// "1", "2", ...
	IDs []string `yaml:"ids,omitempty"`

	// Seed is stored before the first step.
	Seed []event.Event `yaml:"seed,omitempty"`

	// Steps are the user actions to perform, in order.
	Steps []Step `yaml:"steps"`

	// Assertions are checked against the final state.
	Assertions []Assertion `yaml:"assertions"`
}

// Step is one user action. Exactly one of Create, Edit, Delete or Criteria
// is set.
type Step struct {
	Create   *event.Draft  `yaml:"create,omitempty"`
	Edit     *EditStep     `yaml:"edit,omitempty"`
	Delete   *string       `yaml:"delete,omitempty"`
	Criteria *CriteriaStep `yaml:"criteria,omitempty"`

	// Expect is the outcome the step must produce, e.g. "created".
	// Empty skips the check.
	Expect string `yaml:"expect,omitempty"`
}

// EditStep submits the edit form for an event.
type EditStep struct {
	ID          string `yaml:"id"`
	event.Draft `yaml:",inline"`
}

// CriteriaStep changes one panel's search and filters.
type CriteriaStep struct {
	Panel            string `yaml:"panel"`
	listing.Criteria `yaml:",inline"`
}

// action names the step kind for traces and errors.
func (s Step) action() string {
	switch {
	case s.Create != nil:
		return "create"
	case s.Edit != nil:
		return "edit"
	case s.Delete != nil:
		return "delete"
	case s.Criteria != nil:
		return "criteria"
	default:
		return ""
	}
}

func (s Step) actionCount() int {
	n := 0
	if s.Create != nil {
		n++
	}
	if s.Edit != nil {
		n++
	}
	if s.Delete != nil {
		n++
	}
	if s.Criteria != nil {
		n++
	}
	return n
}

// Assertion validates the final state or a step's trace entry.
type Assertion struct {
	// Type specifies the assertion type:
	// - "panel_titles": card titles of Panel, in display order
	// - "placeholder": placeholder Text of Panel ("" means none shown)
	// - "list_title": list title Text of Panel ("" means none shown)
	// - "event_count": number of stored events
	// - "outcome": Outcome (and optionally Message) of step Step
	Type string `yaml:"type"`

	Panel   string   `yaml:"panel,omitempty"`
	Titles  []string `yaml:"titles,omitempty"`
	Text    string   `yaml:"text,omitempty"`
	Count   int      `yaml:"count,omitempty"`
	Step    int      `yaml:"step,omitempty"`
	Outcome string   `yaml:"outcome,omitempty"`
	Message string   `yaml:"message,omitempty"`
}

// Assertion type constants.
const (
	AssertPanelTitles = "panel_titles"
	AssertPlaceholder = "placeholder"
	AssertListTitle   = "list_title"
	AssertEventCount  = "event_count"
	AssertOutcome     = "outcome"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses and validates scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	// Strict field validation catches typos like "assertion:" vs "assertions:"
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if s.Today != "" {
		if _, err := time.Parse(event.DateLayout, s.Today); err != nil {
			return fmt.Errorf("today %q is not a YYYY-MM-DD date", s.Today)
		}
	}

	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}

	if len(s.Assertions) == 0 {
		return fmt.Errorf("assertions list is required and must be non-empty")
	}

	creates := 0
	for i, step := range s.Steps {
		switch step.actionCount() {
		case 0:
			return fmt.Errorf("steps[%d]: one of create, edit, delete or criteria is required", i)
		case 1:
		default:
			return fmt.Errorf("steps[%d]: only one of create, edit, delete or criteria may be set", i)
		}
		if step.Create != nil {
			creates++
		}
		if step.Edit != nil && step.Edit.ID == "" {
			return fmt.Errorf("steps[%d].edit: id is required", i)
		}
		if step.Criteria != nil {
			if _, err := listing.ParsePanel(step.Criteria.Panel); err != nil {
				return fmt.Errorf("steps[%d].criteria: %w", i, err)
			}
		}
	}

	if len(s.IDs) > 0 && len(s.IDs) < creates {
		return fmt.Errorf("ids lists %d ids but scenario has %d create steps", len(s.IDs), creates)
	}

	for i, assertion := range s.Assertions {
		if err := validateAssertion(i, &assertion, len(s.Steps)); err != nil {
			return err
		}
	}

	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion, steps int) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	switch a.Type {
	case AssertPanelTitles, AssertPlaceholder, AssertListTitle:
		if _, err := listing.ParsePanel(a.Panel); err != nil {
			return fmt.Errorf("assertions[%d]: %w", index, err)
		}
	case AssertEventCount:
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for event_count", index)
		}
	case AssertOutcome:
		if a.Step < 0 || a.Step >= steps {
			return fmt.Errorf("assertions[%d]: step %d out of range (scenario has %d steps)", index, a.Step, steps)
		}
		if a.Outcome == "" {
			return fmt.Errorf("assertions[%d]: outcome is required for outcome", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	return nil
}
