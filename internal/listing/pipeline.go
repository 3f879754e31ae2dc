package listing

import (
	"slices"
	"strings"

	"github.com/roach88/eventboard/internal/event"
)

// Row is an event that passed the filter, with its upcoming flag.
type Row struct {
	Event    event.Event
	Upcoming bool
}

// Filter sorts events by date and keeps those matching c.
//
// The sort is stable, so events sharing a date keep their stored order.
// The input slice is not modified. today must be in event.DateLayout form.
func Filter(events []event.Event, c Criteria, today string) []Row {
	sorted := slices.Clone(events)
	slices.SortStableFunc(sorted, func(a, b event.Event) int {
		return strings.Compare(a.Date, b.Date)
	})

	m := newMatcher(c)
	rows := make([]Row, 0, len(sorted))
	for _, e := range sorted {
		upcoming := e.IsUpcoming(today)
		if m.match(e, upcoming) {
			rows = append(rows, Row{Event: e, Upcoming: upcoming})
		}
	}
	return rows
}
