package kernel

import (
	"fmt"
	"strconv"

	"kabalen/internal/pkg/errs"
)

// ErrIDIsNotAssigned indicates an ID was used before being allocated by the
// persistence layer. The zero value of ID carries this meaning: an aggregate
// that has not been inserted yet has no identity.
var ErrIDIsNotAssigned = errs.NewValueIsRequiredError("ID must be assigned by the ledger or created via NewID")

// ID is a value object for numeric entity identifiers (orders, riders,
// clients). Identifiers are allocated by the database sequence on insert, so
// they are strictly monotonic per collection: sequence allocation and row
// insertion happen in one atomic step, which guarantees no two entities ever
// share an id even under concurrent creation.
//
// The zero value is invalid and means "not yet persisted". Construct valid
// IDs with NewID when parsing external input or restoring from storage.
//
// Example:
//
//	id, err := kernel.NewID(42)
//	if err != nil {
//	    // handle invalid identifier
//	}
//	fmt.Println(id.String()) // "42"
type ID struct {
	value int64
}

// NewID creates an ID from a positive integer.
// Returns an error for zero or negative values.
func NewID(value int64) (ID, error) {
	id := ID{value: value}
	if err := id.Validate(); err != nil {
		return ID{}, err
	}
	return id, nil
}

// IDFromString parses a decimal identifier, typically from a URL path segment.
func IDFromString(s string) (ID, error) {
	value, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%q is not a number", s))
	}
	return NewID(value)
}

// Int64 returns the numeric value of the identifier.
func (id ID) Int64() int64 {
	return id.value
}

// String returns the decimal representation of the identifier.
func (id ID) String() string {
	return strconv.FormatInt(id.value, 10)
}

// IsEqual reports whether two IDs refer to the same entity.
func (id ID) IsEqual(other ID) bool {
	return id.value == other.value
}

// Validate returns ErrIDIsNotAssigned for non-positive identifiers.
func (id ID) Validate() error {
	if id.value <= 0 {
		return ErrIDIsNotAssigned
	}
	return nil
}
