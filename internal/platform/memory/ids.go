package memory

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// Supported id strategies.
const (
	// StrategySequential hands out increasing integers starting after the
	// highest numeric id seen so far. Ids are never reused after a delete.
	StrategySequential = "sequential"
	// StrategyLength uses the collection length plus one. Ids can collide
	// after deletions; kept for clients that depend on the legacy numbering.
	StrategyLength = "length"
	// StrategyUUID hands out random version 4 UUIDs.
	StrategyUUID = "uuid"
)

// ErrUnknownIDStrategy is returned by NewIDGenerator for an unsupported name.
var ErrUnknownIDStrategy = errors.New("unknown id strategy")

// IDGenerator assigns ids to new records. Collections call it while holding
// their write lock, so implementations need no locking of their own.
type IDGenerator interface {
	// Next returns the id for a record appended to a collection that
	// currently holds n records.
	Next(n int) string
	// Observe records an id that is already in use.
	Observe(id string)
}

// NewIDGenerator returns a fresh generator for the named strategy.
// Each collection needs its own generator.
func NewIDGenerator(strategy string) (IDGenerator, error) {
	switch strategy {
	case StrategySequential, "":
		return &SequentialIDs{}, nil
	case StrategyLength:
		return LengthIDs{}, nil
	case StrategyUUID:
		return UUIDs{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownIDStrategy, strategy)
	}
}

// SequentialIDs is a monotonic counter.
type SequentialIDs struct {
	last uint64
}

// Next implements IDGenerator.
func (g *SequentialIDs) Next(int) string {
	g.last++
	return strconv.FormatUint(g.last, 10)
}

// Observe implements IDGenerator. Non-numeric ids are ignored.
func (g *SequentialIDs) Observe(id string) {
	n, err := strconv.ParseUint(id, 10, 64)
	if err == nil && n > g.last {
		g.last = n
	}
}

// LengthIDs derives the id from the current collection length.
type LengthIDs struct{}

// Next implements IDGenerator.
func (LengthIDs) Next(n int) string { return strconv.Itoa(n + 1) }

// Observe implements IDGenerator.
func (LengthIDs) Observe(string) {}

// UUIDs generates random ids.
type UUIDs struct{}

// Next implements IDGenerator.
func (UUIDs) Next(int) string { return uuid.NewString() }

// Observe implements IDGenerator.
func (UUIDs) Observe(string) {}
