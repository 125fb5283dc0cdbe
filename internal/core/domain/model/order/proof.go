package order

import (
	"fmt"
	"strings"

	"kabalen/internal/pkg/errs"
)

// ProofKind distinguishes the two proof-of-delivery artifacts an order can carry.
type ProofKind int

const (
	// ProofUnknown is the invalid zero value.
	ProofUnknown ProofKind = iota

	// ProofPickup evidences the parcel was picked up.
	ProofPickup

	// ProofDropoff evidences the parcel was delivered. Required before an
	// order may be completed.
	ProofDropoff
)

// getProofKindStrings maps kinds to their wire names.
func getProofKindStrings() map[ProofKind]string {
	return map[ProofKind]string{
		ProofPickup:  "pickup",
		ProofDropoff: "dropoff",
	}
}

// String returns the wire name of the kind, or "unknown" for invalid values.
func (k ProofKind) String() string {
	if s, ok := getProofKindStrings()[k]; ok {
		return s
	}
	return "unknown"
}

// Validate checks the kind is pickup or dropoff.
func (k ProofKind) Validate() error {
	if _, ok := getProofKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("proof kind", fmt.Errorf("%d is not a valid proof kind", k))
	}
	return nil
}

// ProofKindFromString parses a wire name ("pickup" or "dropoff") into a ProofKind.
func ProofKindFromString(s string) (ProofKind, error) {
	for kind, name := range getProofKindStrings() {
		if name == s {
			return kind, nil
		}
	}
	return ProofUnknown, errs.NewValueIsInvalidErrorWithCause("proof kind", fmt.Errorf("%q is not a valid proof kind", s))
}

// ProofRef is an opaque reference to an artifact held by the artifact store.
// The core only stores and compares references; it never inspects contents.
//
// The zero value is invalid; construct via NewProofRef.
type ProofRef struct {
	name string
}

// NewProofRef creates a ProofRef from the stable name the artifact store returned.
func NewProofRef(name string) (ProofRef, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ProofRef{}, errs.NewValueIsRequiredError("proof reference")
	}
	return ProofRef{name: trimmed}, nil
}

// String returns the stored artifact name.
func (r ProofRef) String() string {
	return r.name
}

// Validate returns an error for a zero-value ProofRef.
func (r ProofRef) Validate() error {
	if r.name == "" {
		return errs.NewValueIsRequiredError("proof reference")
	}
	return nil
}
