package listing

import (
	"fmt"
	"strings"

	"github.com/roach88/eventboard/internal/event"
)

// PanelID identifies a display panel.
type PanelID string

const (
	PanelHome   PanelID = "home"
	PanelManage PanelID = "manage"
)

// Panels lists every panel in display order.
var Panels = []PanelID{PanelHome, PanelManage}

// ParsePanel converts user input to a PanelID.
func ParsePanel(s string) (PanelID, error) {
	switch p := PanelID(strings.ToLower(strings.TrimSpace(s))); p {
	case PanelHome, PanelManage:
		return p, nil
	default:
		return "", fmt.Errorf("%w: panel %q (want home or manage)", ErrInvalidCriteria, s)
	}
}

// Panel describes how a panel renders.
type Panel struct {
	ID          PanelID
	ReadOnly    bool
	ListTitle   string
	Placeholder string
}

var panels = map[PanelID]Panel{
	PanelHome: {
		ID:          PanelHome,
		ReadOnly:    true,
		ListTitle:   "Your Events",
		Placeholder: "No events to display. Create your first event!",
	},
	PanelManage: {
		ID:          PanelManage,
		Placeholder: "No events found matching your criteria.",
	},
}

// Lookup returns the definition for id. Unknown ids render like manage.
func Lookup(id PanelID) Panel {
	if p, ok := panels[id]; ok {
		return p
	}
	p := panels[PanelManage]
	p.ID = id
	return p
}

// View is the rendered content of one panel. Exactly one of Cards or
// Placeholder is populated.
type View struct {
	Panel       PanelID `json:"panel"`
	Title       string  `json:"title,omitempty"`
	Cards       []Card  `json:"cards"`
	Placeholder string  `json:"placeholder,omitempty"`
}

// Empty reports whether the view shows the placeholder.
func (v View) Empty() bool {
	return len(v.Cards) == 0
}

// Render runs the pipeline for one panel and returns its new content.
func Render(id PanelID, events []event.Event, c Criteria, today string) View {
	p := Lookup(id)
	rows := Filter(events, c, today)

	v := View{Panel: p.ID, Cards: make([]Card, 0, len(rows))}
	if len(rows) == 0 {
		v.Placeholder = p.Placeholder
		return v
	}

	v.Title = p.ListTitle
	for _, r := range rows {
		v.Cards = append(v.Cards, RenderCard(r.Event, !r.Upcoming, p.ReadOnly))
	}
	return v
}

// Screen holds both panels, rendered from the same collection.
type Screen struct {
	Home   View `json:"home"`
	Manage View `json:"manage"`
}

// RenderScreen renders both panels with their own criteria.
func RenderScreen(events []event.Event, home, manage Criteria, today string) Screen {
	return Screen{
		Home:   Render(PanelHome, events, home, today),
		Manage: Render(PanelManage, events, manage, today),
	}
}

// View returns the panel with the given id.
func (s Screen) View(id PanelID) View {
	if id == PanelHome {
		return s.Home
	}
	return s.Manage
}
