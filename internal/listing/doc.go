// Package listing turns the stored event collection into what a panel shows.
//
// Every render is a full recompute:
//
//	events -> stable sort by date -> filter(search, mode, date) -> cards
//
// Two panels exist. The home panel is read-only and headed by a list title;
// the manage panel attaches edit and delete actions to each card. Each panel
// keeps its own Criteria. An empty result is rendered as a single
// placeholder line whose copy depends on the panel.
package listing
