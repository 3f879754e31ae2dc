package board

import "errors"

// ErrIDExhausted is returned when the id generator keeps producing ids that
// are already stored.
var ErrIDExhausted = errors.New("could not generate a unique event id")
