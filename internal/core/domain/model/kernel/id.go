package kernel

import (
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"orders/internal/pkg/errs"
)

// ErrIDIsNotConstructed indicates that an ID is the zero value or was built from
// a non-positive number.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID or an IDGenerator")

// ID is a value object identifying an order. It wraps a positive int64 so it
// fits a bigint column and a JSON number without losing precision.
//
// The zero value of ID is invalid.
//
// Example usage:
//
//	gen := kernel.NewMonotonicIDGenerator()
//	id := gen.NextID()
//	fmt.Println(id.Int64() > 0) // true
//
//	restored, err := kernel.NewID(1700000000000001)
//	if err != nil {
//	    // handle error
//	}
type ID struct {
	value int64
}

// NewID restores an ID from its numeric representation, typically a value read
// back from storage. Returns an error when value is not positive.
func NewID(value int64) (ID, error) {
	if value <= 0 {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not greater than 0", value))
	}
	return ID{value: value}, nil
}

// Int64 returns the numeric representation of the ID.
func (id ID) Int64() int64 {
	return id.value
}

// String returns the decimal representation of the ID.
func (id ID) String() string {
	return strconv.FormatInt(id.value, 10)
}

// IsEqual compares two IDs for equality.
func (id ID) IsEqual(other ID) bool {
	return id.value == other.value
}

// Less reports whether id sorts before other.
func (id ID) Less(other ID) bool {
	return id.value < other.value
}

// Validate returns ErrIDIsNotConstructed for the zero value.
func (id ID) Validate() error {
	if id.value <= 0 {
		return ErrIDIsNotConstructed
	}
	return nil
}

// IDGenerator hands out identifiers for new orders. Implementations must be
// safe for concurrent use and never return the same ID twice.
type IDGenerator interface {
	NextID() ID
}

// MonotonicIDGenerator produces strictly increasing IDs seeded from the wall
// clock in microseconds: each call returns max(last+1, now). IDs are unique
// within the process and roughly time-ordered across restarts as long as the
// clock does not step backwards.
//
// The generator is lock-free and safe for concurrent use.
//
// Example:
//
//	gen := kernel.NewMonotonicIDGenerator()
//	a, b := gen.NextID(), gen.NextID()
//	fmt.Println(a.Less(b)) // true
type MonotonicIDGenerator struct {
	last atomic.Int64
	now  func() time.Time
}

// NewMonotonicIDGenerator creates a generator backed by time.Now.
func NewMonotonicIDGenerator() *MonotonicIDGenerator {
	return NewMonotonicIDGeneratorWithClock(time.Now)
}

// NewMonotonicIDGeneratorWithClock creates a generator with an explicit clock.
// A nil clock falls back to time.Now.
func NewMonotonicIDGeneratorWithClock(now func() time.Time) *MonotonicIDGenerator {
	if now == nil {
		now = time.Now
	}
	return &MonotonicIDGenerator{now: now}
}

// NextID returns the next identifier.
func (g *MonotonicIDGenerator) NextID() ID {
	for {
		last := g.last.Load()
		next := g.now().UnixMicro()
		if next <= last {
			next = last + 1
		}
		if g.last.CompareAndSwap(last, next) {
			return ID{value: next}
		}
	}
}
