package order

import (
	"strings"

	"kabalen/internal/core/domain/model/kernel"
	"kabalen/internal/pkg/errs"
)

// Domain errors for origin construction.
var (
	// ErrCustomerNameIsRequired is returned when a manual origin has no customer name.
	ErrCustomerNameIsRequired = errs.NewValueIsRequiredError("customer name")
	// ErrOriginIsNotConstructed is returned when an Origin was not created via a constructor.
	ErrOriginIsNotConstructed = errs.NewValueIsRequiredError("Origin must be created via NewClientOrigin or NewManualOrigin")
)

// originKind discriminates the two origin variants.
type originKind int

const (
	originUnknown originKind = iota
	originClient
	originManual
)

// Origin is a tagged variant describing where an order came from: either a
// registered client (identified by client id) or a manual entry by the admin
// carrying free-text customer name and phone. Exactly one variant is set.
//
// The zero value is invalid; construct via NewClientOrigin or NewManualOrigin.
type Origin struct {
	kind          originKind
	clientID      kernel.ID
	customerName  string
	customerPhone string
}

// NewClientOrigin creates an origin for an order placed by a registered client.
func NewClientOrigin(clientID kernel.ID) (Origin, error) {
	if err := clientID.Validate(); err != nil {
		return Origin{}, err
	}
	return Origin{kind: originClient, clientID: clientID}, nil
}

// NewManualOrigin creates an origin for an order entered manually by the
// admin on behalf of a walk-in customer. The name is required; the phone
// may be empty.
func NewManualOrigin(customerName, customerPhone string) (Origin, error) {
	name := strings.TrimSpace(customerName)
	if name == "" {
		return Origin{}, ErrCustomerNameIsRequired
	}
	return Origin{
		kind:          originManual,
		customerName:  name,
		customerPhone: strings.TrimSpace(customerPhone),
	}, nil
}

// IsClient reports whether the order was placed by a registered client.
func (o Origin) IsClient() bool {
	return o.kind == originClient
}

// ClientID returns the client id for a client origin.
// The second return value is false for manual origins.
func (o Origin) ClientID() (kernel.ID, bool) {
	if o.kind != originClient {
		return kernel.ID{}, false
	}
	return o.clientID, true
}

// CustomerName returns the free-text customer name of a manual origin,
// or "" for client origins.
func (o Origin) CustomerName() string {
	return o.customerName
}

// CustomerPhone returns the free-text customer phone of a manual origin,
// or "" for client origins.
func (o Origin) CustomerPhone() string {
	return o.customerPhone
}

// Validate checks the origin holds exactly one well-formed variant.
func (o Origin) Validate() error {
	switch o.kind {
	case originClient:
		return o.clientID.Validate()
	case originManual:
		if o.customerName == "" {
			return ErrCustomerNameIsRequired
		}
		return nil
	default:
		return ErrOriginIsNotConstructed
	}
}
