package kernel

import (
	"strings"

	"kabalen/internal/pkg/errs"
)

// ErrAddressIsNotConstructed indicates an Address was not created via NewAddress.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("Address must be created via NewAddress")

// maxAddressLength bounds free-text addresses so they stay storable and loggable.
const maxAddressLength = 500

// Address is a value object for free-text pickup and dropoff locations.
// The system does not geocode; an address is any non-blank string up to
// maxAddressLength characters, trimmed of surrounding whitespace.
//
// The zero value is invalid and must be constructed via NewAddress.
type Address struct {
	value string
}

// NewAddress creates an Address from a free-text location string.
// Returns an error when the trimmed string is empty or too long.
func NewAddress(value string) (Address, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Address{}, ErrAddressIsNotConstructed
	}
	if len(trimmed) > maxAddressLength {
		return Address{}, errs.NewValueIsOutOfRangeError("address length", len(trimmed), 1, maxAddressLength)
	}
	return Address{value: trimmed}, nil
}

// String returns the address text.
func (a Address) String() string {
	return a.value
}

// IsEqual reports whether two addresses are the same text.
func (a Address) IsEqual(other Address) bool {
	return a.value == other.value
}

// Validate returns ErrAddressIsNotConstructed for a zero-value Address.
func (a Address) Validate() error {
	if a.value == "" {
		return ErrAddressIsNotConstructed
	}
	return nil
}
