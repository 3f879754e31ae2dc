package listing

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/roach88/eventboard/internal/event"
)

// ErrInvalidCriteria is returned when a filter value is not recognized.
var ErrInvalidCriteria = errors.New("invalid filter criteria")

// FilterMode selects events relative to today.
type FilterMode string

const (
	ModeAll      FilterMode = "all"
	ModeUpcoming FilterMode = "upcoming"
	ModePast     FilterMode = "past"
)

// ParseFilterMode converts user input to a FilterMode.
// The empty string selects ModeAll.
func ParseFilterMode(s string) (FilterMode, error) {
	switch m := FilterMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "", ModeAll:
		return ModeAll, nil
	case ModeUpcoming, ModePast:
		return m, nil
	default:
		return "", fmt.Errorf("%w: filter mode %q (want all, upcoming or past)", ErrInvalidCriteria, s)
	}
}

// Criteria narrows the events shown in one panel.
// The zero value matches every event.
type Criteria struct {
	Search string     `json:"search,omitempty" yaml:"search"`
	Mode   FilterMode `json:"mode,omitempty" yaml:"mode"`
	Date   string     `json:"date,omitempty" yaml:"date"`
}

// Validate reports whether the mode is one of the known values.
func (c Criteria) Validate() error {
	_, err := ParseFilterMode(string(c.Mode))
	return err
}

// matcher applies Criteria to events whose upcoming flag is already known.
// Search compares lower-cased text, so "ß" does not match "SS".
type matcher struct {
	lower  cases.Caser
	search string
	mode   FilterMode
	date   string
}

func newMatcher(c Criteria) matcher {
	mode, err := ParseFilterMode(string(c.Mode))
	if err != nil {
		mode = ModeAll
	}
	m := matcher{lower: cases.Lower(language.Und), mode: mode, date: c.Date}
	if c.Search != "" {
		m.search = m.lower.String(c.Search)
	}
	return m
}

func (m matcher) match(e event.Event, upcoming bool) bool {
	if m.search != "" && !strings.Contains(m.lower.String(e.Title), m.search) {
		return false
	}
	switch m.mode {
	case ModeUpcoming:
		if !upcoming {
			return false
		}
	case ModePast:
		if upcoming {
			return false
		}
	}
	if m.date != "" && e.Date != m.date {
		return false
	}
	return true
}
