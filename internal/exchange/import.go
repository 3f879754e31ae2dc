package exchange

import (
	_ "embed"
	"fmt"
	"io"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	cuejson "cuelang.org/go/encoding/json"

	"github.com/roach88/eventboard/internal/event"
)

//go:embed schema.cue
var schemaCUE string

// SchemaError lists every problem found in an import document.
type SchemaError struct {
	Problems []string
}

func (e *SchemaError) Error() string {
	if len(e.Problems) == 1 {
		return "invalid import: " + e.Problems[0]
	}
	return fmt.Sprintf("invalid import: %d problems: %s", len(e.Problems), strings.Join(e.Problems, "; "))
}

// Import reads a JSON array of events from r.
//
// The document must satisfy the #Events schema in schema.cue: every field
// present, non-empty id/title/location/description, and a YYYY-MM-DD date.
// Unknown fields are rejected. On any violation a *SchemaError is returned
// and no events.
func Import(r io.Reader, name string) ([]event.Event, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read import: %w", err)
	}
	if name == "" {
		name = "import.json"
	}

	expr, err := cuejson.Extract(name, data)
	if err != nil {
		return nil, &SchemaError{Problems: []string{fmt.Sprintf("parsing JSON: %v", err)}}
	}

	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compile import schema: %w", err)
	}

	doc := ctx.BuildExpr(expr)
	value := schema.LookupPath(cue.ParsePath("#Events")).Unify(doc)
	if err := value.Validate(cue.Concrete(true)); err != nil {
		return nil, schemaError(err)
	}

	var events []event.Event
	if err := value.Decode(&events); err != nil {
		return nil, fmt.Errorf("decode import: %w", err)
	}
	if events == nil {
		events = []event.Event{}
	}
	return events, nil
}

func schemaError(err error) *SchemaError {
	var problems []string
	for _, e := range cueerrors.Errors(err) {
		problems = append(problems, e.Error())
	}
	if len(problems) == 0 {
		problems = []string{err.Error()}
	}
	return &SchemaError{Problems: problems}
}
