package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/roach88/eventboard/internal/board"
	"github.com/roach88/eventboard/internal/listing"
)

var panelHeadings = map[listing.PanelID]string{
	listing.PanelHome:   "Home",
	listing.PanelManage: "Manage Events",
}

// textRenderer draws panels for text output. Styles are bound to the output
// writer, so colors are dropped when it is not a terminal.
type textRenderer struct {
	w           io.Writer
	heading     lipgloss.Style
	listTitle   lipgloss.Style
	card        lipgloss.Style
	pastCard    lipgloss.Style
	cardTitle   lipgloss.Style
	placeholder lipgloss.Style
	action      lipgloss.Style
	success     lipgloss.Style
	failure     lipgloss.Style
}

func newTextRenderer(w io.Writer) *textRenderer {
	r := lipgloss.NewRenderer(w)
	card := r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	return &textRenderer{
		w:           w,
		heading:     r.NewStyle().Bold(true).Underline(true),
		listTitle:   r.NewStyle().Bold(true),
		card:        card,
		pastCard:    card.BorderForeground(lipgloss.Color("243")).Foreground(lipgloss.Color("243")).Faint(true),
		cardTitle:   r.NewStyle().Bold(true),
		placeholder: r.NewStyle().Faint(true).Italic(true),
		action:      r.NewStyle().Foreground(lipgloss.Color("39")),
		success:     r.NewStyle().Foreground(lipgloss.Color("42")),
		failure:     r.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

// Screen prints the requested panels of s, in order.
func (t *textRenderer) Screen(s listing.Screen, panels []listing.PanelID) {
	for i, id := range panels {
		if i > 0 {
			fmt.Fprintln(t.w)
		}
		fmt.Fprintln(t.w, t.heading.Render(panelHeadings[id]))
		fmt.Fprintln(t.w, t.View(s.View(id)))
	}
}

// View lays out a panel: list title, then one card per row, or the
// placeholder when nothing matched.
func (t *textRenderer) View(v listing.View) string {
	if v.Empty() {
		return t.placeholder.Render(v.Placeholder)
	}

	blocks := make([]string, 0, len(v.Cards)+1)
	if v.Title != "" {
		blocks = append(blocks, t.listTitle.Render(v.Title))
	}
	for _, c := range v.Cards {
		blocks = append(blocks, t.Card(c))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

// Card draws one bordered card. Past cards are muted.
func (t *textRenderer) Card(c listing.Card) string {
	lines := []string{
		t.cardTitle.Render(c.Title),
		c.DisplayDate,
		c.Location,
		c.Description,
	}
	if len(c.Actions) > 0 {
		actions := make([]string, 0, len(c.Actions))
		for _, a := range c.Actions {
			actions = append(actions, fmt.Sprintf("[%s %s]", a.Kind, a.EventID))
		}
		lines = append(lines, t.action.Render(strings.Join(actions, " ")))
	}

	style := t.card
	if c.Past {
		style = t.pastCard
	}
	return style.Render(strings.Join(lines, "\n"))
}

// Message prints a board message with a status mark.
func (t *textRenderer) Message(m *board.Message) {
	if m.Kind == board.KindError {
		fmt.Fprintln(t.w, t.failure.Render("✗ "+m.Text))
		return
	}
	fmt.Fprintln(t.w, t.success.Render("✓ "+m.Text))
}

// Failure prints an error line.
func (t *textRenderer) Failure(format string, args ...any) {
	fmt.Fprintln(t.w, t.failure.Render(fmt.Sprintf(format, args...)))
}

// Success prints a confirmation line.
func (t *textRenderer) Success(format string, args ...any) {
	fmt.Fprintln(t.w, t.success.Render("✓ "+fmt.Sprintf(format, args...)))
}
