package event

import (
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

// IDGenerator produces ids for new events.
//
// Generators only need to be unique within their own output; the board
// additionally checks each candidate against the stored collection.
type IDGenerator interface {
	Generate() string
}

// TimestampGenerator issues millisecond Unix timestamps as decimal strings.
//
// Two calls within the same millisecond would collide, so the generator
// remembers the last value it issued and never returns a value less than or
// equal to it.
//
// Thread-safety: TimestampGenerator is safe for concurrent use.
type TimestampGenerator struct {
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	mu   sync.Mutex
	last int64
}

// Generate returns the next timestamp id.
func (g *TimestampGenerator) Generate() string {
	now := time.Now
	if g.Now != nil {
		now = g.Now
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	ms := now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return strconv.FormatInt(ms, 10)
}

// UUIDv7Generator issues time-ordered UUIDv7 ids.
//
// Thread-safety: UUIDv7Generator is stateless and safe for concurrent use.
type UUIDv7Generator struct{}

// Generate creates a new UUIDv7 and returns it as a hyphenated string.
//
// Panics if UUID generation fails (should never happen in practice).
func (UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

// FixedGenerator returns predetermined ids in order, for tests and
// scenario runs.
//
// Thread-safety: FixedGenerator is safe for concurrent use.
type FixedGenerator struct {
	mu  sync.Mutex
	ids []string
	idx int
}

// NewFixedGenerator creates a generator that returns ids in order.
//
//	gen := NewFixedGenerator("1000", "1001")
//	gen.Generate() // "1000"
//	gen.Generate() // "1001"
//	gen.Generate() // panic: all ids exhausted
func NewFixedGenerator(ids ...string) *FixedGenerator {
	return &FixedGenerator{ids: ids}
}

// Generate returns the next predetermined id.
//
// Panics if all ids have been consumed. A scenario that creates more events
// than it lists ids for is a broken fixture.
func (g *FixedGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.idx >= len(g.ids) {
		panic("FixedGenerator: all ids exhausted")
	}
	id := g.ids[g.idx]
	g.idx++
	return id
}

// Remaining returns how many ids are left.
func (g *FixedGenerator) Remaining() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.ids) - g.idx
}

// NewGenerator returns the generator for a configured id scheme.
// Unknown schemes fall back to timestamps.
func NewGenerator(scheme string) IDGenerator {
	switch scheme {
	case SchemeUUID7:
		return UUIDv7Generator{}
	default:
		return &TimestampGenerator{}
	}
}

// Id schemes accepted by NewGenerator.
const (
	SchemeTimestamp = "timestamp"
	SchemeUUID7     = "uuid7"
)
