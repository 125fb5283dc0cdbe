package kernel

import (
	"fmt"

	"kabalen/internal/pkg/errs"
)

// PrincipalKind identifies which kind of actor an authenticated principal is.
type PrincipalKind int

const (
	// PrincipalUnknown is the invalid zero value.
	PrincipalUnknown PrincipalKind = iota

	// PrincipalAdmin is the administrator. There is exactly one admin
	// identity, configured at startup; its numeric id is not meaningful.
	PrincipalAdmin

	// PrincipalRider is an authenticated rider, identified by rider id.
	PrincipalRider

	// PrincipalClient is an authenticated client, identified by client id.
	PrincipalClient
)

// getPrincipalKindStrings maps kinds to the names used in token claims.
func getPrincipalKindStrings() map[PrincipalKind]string {
	return map[PrincipalKind]string{
		PrincipalAdmin:  "admin",
		PrincipalRider:  "rider",
		PrincipalClient: "client",
	}
}

// String returns the claim name of the kind, or "unknown" for invalid values.
func (k PrincipalKind) String() string {
	if s, ok := getPrincipalKindStrings()[k]; ok {
		return s
	}
	return "unknown"
}

// Validate checks the kind is one of admin, rider, client.
func (k PrincipalKind) Validate() error {
	if _, ok := getPrincipalKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("principal kind", fmt.Errorf("%d is not a valid kind", k))
	}
	return nil
}

// PrincipalKindFromString parses a claim name back into a PrincipalKind.
func PrincipalKindFromString(s string) (PrincipalKind, error) {
	for kind, name := range getPrincipalKindStrings() {
		if name == s {
			return kind, nil
		}
	}
	return PrincipalUnknown, errs.NewValueIsInvalidErrorWithCause("principal kind", fmt.Errorf("%q is not a valid kind", s))
}

// Principal is an authenticated actor: a kind plus the numeric id of the
// rider or client record it refers to. Admin principals carry no id.
//
// Principals are produced by the token verifier and consumed by use cases
// for ownership and privilege checks; the core trusts any principal handed
// to it, since token verification happens before the core is reached.
type Principal struct {
	kind PrincipalKind
	id   ID
}

// NewPrincipal creates a rider or client principal bound to an entity id.
func NewPrincipal(kind PrincipalKind, id ID) (Principal, error) {
	if err := kind.Validate(); err != nil {
		return Principal{}, err
	}
	if kind != PrincipalAdmin {
		if err := id.Validate(); err != nil {
			return Principal{}, err
		}
	}
	return Principal{kind: kind, id: id}, nil
}

// NewAdminPrincipal creates the administrator principal.
func NewAdminPrincipal() Principal {
	return Principal{kind: PrincipalAdmin}
}

// Kind returns the principal's kind.
func (p Principal) Kind() PrincipalKind {
	return p.kind
}

// EntityID returns the rider or client id the principal refers to.
// For admin principals the returned id is the zero value.
func (p Principal) EntityID() ID {
	return p.id
}

// IsAdmin reports whether the principal is the administrator.
func (p Principal) IsAdmin() bool {
	return p.kind == PrincipalAdmin
}

// Validate checks the principal was built through a constructor.
func (p Principal) Validate() error {
	if err := p.kind.Validate(); err != nil {
		return err
	}
	if p.kind != PrincipalAdmin {
		return p.id.Validate()
	}
	return nil
}
