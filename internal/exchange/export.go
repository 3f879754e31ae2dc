package exchange

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/roach88/eventboard/internal/event"
)

// Format selects an export encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatICS  Format = "ics"
)

// Formats lists the supported export formats.
var Formats = []Format{FormatJSON, FormatCSV, FormatICS}

// ParseFormat converts user input to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatCSV, FormatICS:
		return f, nil
	default:
		return "", fmt.Errorf("unknown export format %q (want json, csv or ics)", s)
	}
}

// csvHeader is the first CSV row.
var csvHeader = []string{"id", "title", "date", "location", "description"}

// UIDDomain is appended to event ids to form iCalendar UIDs.
const UIDDomain = "eventboard"

// Exporter writes event collections.
type Exporter struct {
	// Now stamps iCalendar DTSTAMP values. Defaults to time.Now.
	Now func() time.Time
}

// Export writes events in format f using a default Exporter.
func Export(w io.Writer, events []event.Event, f Format) error {
	return Exporter{}.Export(w, events, f)
}

// Export writes events in format f. Events are written in the order given.
func (x Exporter) Export(w io.Writer, events []event.Event, f Format) error {
	switch f {
	case FormatJSON:
		return writeJSON(w, events)
	case FormatCSV:
		return writeCSV(w, events)
	case FormatICS:
		return x.writeICS(w, events)
	default:
		return fmt.Errorf("unknown export format %q", f)
	}
}

func writeJSON(w io.Writer, events []event.Event) error {
	if events == nil {
		events = []event.Event{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(events); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

func writeCSV(w io.Writer, events []event.Event) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, e := range events {
		if err := cw.Write([]string{e.ID, e.Title, e.Date, e.Location, e.Description}); err != nil {
			return fmt.Errorf("write csv row %q: %w", e.ID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

func (x Exporter) writeICS(w io.Writer, events []event.Event) error {
	now := time.Now
	if x.Now != nil {
		now = x.Now
	}
	stamp := now().UTC()

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//eventboard//events//EN")

	for _, e := range events {
		ve := cal.AddEvent(e.ID + "@" + UIDDomain)
		ve.SetDtStampTime(stamp)
		ve.SetSummary(e.Title)
		ve.SetLocation(e.Location)
		ve.SetDescription(e.Description)

		// Undated events are still exported, just without DTSTART.
		if day, err := time.Parse(event.DateLayout, e.Date); err == nil {
			ve.SetAllDayStartAt(day)
			ve.SetAllDayEndAt(day.AddDate(0, 0, 1))
		}
	}

	if _, err := io.WriteString(w, cal.Serialize()); err != nil {
		return fmt.Errorf("write ics: %w", err)
	}
	return nil
}
