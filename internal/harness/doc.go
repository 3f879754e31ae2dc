// Package harness runs scripted board sessions and checks what the panels
// show afterwards.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: create_then_filter
//	description: "A new event appears in both panels"
//	today: "2025-06-10"
//	ids: ["1001"]
//	seed:
//	  - { id: "1", title: Fair, date: "2025-01-01", location: Hall, description: Annual }
//	steps:
//	  - create: { title: Concert, date: "2025-08-01", location: Arena, description: Loud }
//	    expect: created
//	  - criteria: { panel: manage, mode: past }
//	    expect: filtered
//	  - edit: { id: "1", title: Fair, date: "2025-01-02", location: Hall, description: Annual }
//	  - delete: "1001"
//	assertions:
//	  - type: panel_titles
//	    panel: manage
//	    titles: [Fair]
//	  - type: outcome
//	    step: 0
//	    outcome: created
//	    message: "Event created successfully!"
//
// # Assertion Types
//
//   - panel_titles: card titles of a panel, in display order
//   - placeholder: placeholder copy of a panel ("" means none)
//   - list_title: list title of a panel ("" means none)
//   - event_count: number of stored events
//   - outcome: outcome and optional message of one step
//
// # Deterministic Testing
//
// Every scenario runs against a fresh in-memory store with a fixed clock
// (testutil.FixedClock) and either the scenario's ids or a counting id
// generator, so the same file always yields the same trace and screen.
// Golden snapshots contain the scenario name, the trace and the final
// screen.
package harness
