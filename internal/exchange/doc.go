// Package exchange moves the event collection in and out of files.
//
// Export writes the stored events as JSON (the persisted array, indented),
// CSV, or iCalendar. Import reads a JSON array and validates it against an
// embedded CUE schema before anything is stored.
package exchange
