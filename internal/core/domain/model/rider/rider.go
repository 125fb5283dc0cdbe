package rider

import (
	"errors"
	"math"
	"strings"

	"kabalen/internal/core/domain/model/kernel"
	"kabalen/internal/pkg/errs"
	"kabalen/internal/pkg/guard"
)

// Domain errors for rider operations.
var (
	// ErrRiderIsNotConstructed is returned when using an improperly initialized Rider.
	ErrRiderIsNotConstructed = errors.New("Rider must be created via NewRider or RestoreRider")
	// ErrIDAlreadyAssigned is returned when AssignID is called twice.
	ErrIDAlreadyAssigned = errors.New("rider id is already assigned")
	// ErrNameIsRequired is returned when creating a rider without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPhoneIsRequired is returned when creating a rider without a phone.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrUsernameIsRequired is returned when creating a rider without a username.
	ErrUsernameIsRequired = errs.NewValueIsRequiredError("username")
	// ErrPasswordHashIsRequired is returned when creating a rider without credentials.
	ErrPasswordHashIsRequired = errs.NewValueIsRequiredError("password hash")
)

// Rider is the aggregate root of the rider directory. It holds identity,
// contact data, login credentials (as a bcrypt hash, never plaintext), and
// the credit balance.
//
// The credit balance is a monotonically increasing accumulator, not a
// wallet: the only mutation is AddCredit with a positive finite delta, so
// the balance can never decrease or go negative. Order lifecycle changes
// never touch rider records.
type Rider struct {
	id           kernel.ID
	name         string
	phone        string
	username     string
	passwordHash string
	credit       float64

	guard guard.ConstructorGuard
}

// NewRider creates a rider with zero credit. The password hash must already
// be computed by the caller; the domain never sees plaintext credentials.
func NewRider(name, phone, username, passwordHash string) (*Rider, error) {
	r := &Rider{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setName(name),
		r.setPhone(phone),
		r.setUsername(username),
		r.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRider reconstructs a rider from persistence.
func RestoreRider(id kernel.ID, name, phone, username, passwordHash string, credit float64) (*Rider, error) {
	r, err := NewRider(name, phone, username, passwordHash)
	if err != nil {
		return nil, err
	}

	if err = id.Validate(); err != nil {
		return nil, err
	}
	if math.IsNaN(credit) || math.IsInf(credit, 0) || credit < 0 {
		return nil, errs.NewValueIsOutOfRangeError("credit", credit, 0, math.MaxFloat64)
	}

	r.id = id
	r.credit = credit
	return r, nil
}

// Validate ensures the Rider was constructed through NewRider or RestoreRider.
func (r *Rider) Validate() error {
	if r == nil {
		return ErrRiderIsNotConstructed
	}
	return r.guard.Validate(ErrRiderIsNotConstructed)
}

// ID returns the rider's identity. The zero ID means not yet persisted.
func (r *Rider) ID() kernel.ID {
	return r.id
}

// AssignID sets the identity allocated by the directory on insert.
// It may be called exactly once.
func (r *Rider) AssignID(id kernel.ID) error {
	if r.id.Validate() == nil {
		return ErrIDAlreadyAssigned
	}
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

// Name returns the rider's display name.
func (r *Rider) Name() string {
	return r.name
}

// Phone returns the rider's contact phone.
func (r *Rider) Phone() string {
	return r.phone
}

// Username returns the rider's login name.
func (r *Rider) Username() string {
	return r.username
}

// PasswordHash returns the stored bcrypt hash of the rider's password.
func (r *Rider) PasswordHash() string {
	return r.passwordHash
}

// Credit returns the current credit balance.
func (r *Rider) Credit() float64 {
	return r.credit
}

// AddCredit increases the credit balance by delta and returns the new
// balance. Delta must be a positive finite number; there is no debit path,
// which keeps the balance monotonic.
func (r *Rider) AddCredit(delta float64) (float64, error) {
	if math.IsNaN(delta) || math.IsInf(delta, 0) || delta <= 0 {
		return r.credit, errs.NewValueIsOutOfRangeError("delta", delta, 0, math.MaxFloat64)
	}

	r.credit += delta
	return r.credit, nil
}

func (r *Rider) setName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrNameIsRequired
	}
	r.name = trimmed
	return nil
}

func (r *Rider) setPhone(phone string) error {
	trimmed := strings.TrimSpace(phone)
	if trimmed == "" {
		return ErrPhoneIsRequired
	}
	r.phone = trimmed
	return nil
}

func (r *Rider) setUsername(username string) error {
	trimmed := strings.TrimSpace(username)
	if trimmed == "" {
		return ErrUsernameIsRequired
	}
	r.username = trimmed
	return nil
}

func (r *Rider) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return ErrPasswordHashIsRequired
	}
	r.passwordHash = passwordHash
	return nil
}
