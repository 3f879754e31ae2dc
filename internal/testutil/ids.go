package testutil

import (
	"strconv"
	"sync"
)

// SequenceGenerator issues ids "<prefix>1", "<prefix>2", ... in order.
//
// Unlike event.FixedGenerator, which panics once its list runs out, a
// SequenceGenerator never exhausts. Scenarios that do not care about exact
// ids use it as the default.
//
// Thread-safety: SequenceGenerator is safe for concurrent use.
type SequenceGenerator struct {
	mu     sync.Mutex
	prefix string
	n      int
}

// NewSequenceGenerator creates a generator. An empty prefix yields bare
// decimal ids.
func NewSequenceGenerator(prefix string) *SequenceGenerator {
	return &SequenceGenerator{prefix: prefix}
}

// Generate returns the next id in the sequence.
func (g *SequenceGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return g.prefix + strconv.Itoa(g.n)
}
