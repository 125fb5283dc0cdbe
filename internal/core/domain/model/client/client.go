package client

import (
	"errors"
	"strings"

	"kabalen/internal/core/domain/model/kernel"
	"kabalen/internal/pkg/errs"
	"kabalen/internal/pkg/guard"
)

// Domain errors for client operations.
var (
	// ErrClientIsNotConstructed is returned when using an improperly initialized Client.
	ErrClientIsNotConstructed = errors.New("Client must be created via NewClient or RestoreClient")
	// ErrIDAlreadyAssigned is returned when AssignID is called twice.
	ErrIDAlreadyAssigned = errors.New("client id is already assigned")
)

// Client is the aggregate root for a registered client: profile data, login
// credentials (bcrypt hash), and the two proof-of-identity artifact
// references captured at registration. A client record is immutable after
// registration; the core never updates it.
type Client struct {
	id           kernel.ID
	fullname     string
	address      string
	phone        string
	username     string
	passwordHash string
	validIDRef   string
	selfieRef    string

	guard guard.ConstructorGuard
}

// NewClient creates a client from its registration data. Every field is
// required, including the two artifact references from the identity
// uploads. The password hash must already be computed by the caller.
func NewClient(fullname, address, phone, username, passwordHash, validIDRef, selfieRef string) (*Client, error) {
	c := &Client{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setRequired(&c.fullname, fullname, "fullname"),
		c.setRequired(&c.address, address, "address"),
		c.setRequired(&c.phone, phone, "phone"),
		c.setRequired(&c.username, username, "username"),
		c.setPasswordHash(passwordHash),
		c.setRequired(&c.validIDRef, validIDRef, "valid id"),
		c.setRequired(&c.selfieRef, selfieRef, "selfie"),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreClient reconstructs a client from persistence.
func RestoreClient(id kernel.ID, fullname, address, phone, username, passwordHash, validIDRef, selfieRef string) (*Client, error) {
	c, err := NewClient(fullname, address, phone, username, passwordHash, validIDRef, selfieRef)
	if err != nil {
		return nil, err
	}

	if err = id.Validate(); err != nil {
		return nil, err
	}

	c.id = id
	return c, nil
}

// Validate ensures the Client was constructed through NewClient or RestoreClient.
func (c *Client) Validate() error {
	if c == nil {
		return ErrClientIsNotConstructed
	}
	return c.guard.Validate(ErrClientIsNotConstructed)
}

// ID returns the client's identity. The zero ID means not yet persisted.
func (c *Client) ID() kernel.ID {
	return c.id
}

// AssignID sets the identity allocated on insert. It may be called exactly once.
func (c *Client) AssignID(id kernel.ID) error {
	if c.id.Validate() == nil {
		return ErrIDAlreadyAssigned
	}
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

// Fullname returns the client's full name.
func (c *Client) Fullname() string {
	return c.fullname
}

// Address returns the client's home address.
func (c *Client) Address() string {
	return c.address
}

// Phone returns the client's contact phone.
func (c *Client) Phone() string {
	return c.phone
}

// Username returns the client's login name. Unique across clients.
func (c *Client) Username() string {
	return c.username
}

// PasswordHash returns the stored bcrypt hash of the client's password.
func (c *Client) PasswordHash() string {
	return c.passwordHash
}

// ValidIDRef returns the artifact reference of the uploaded government id.
func (c *Client) ValidIDRef() string {
	return c.validIDRef
}

// SelfieRef returns the artifact reference of the uploaded selfie.
func (c *Client) SelfieRef() string {
	return c.selfieRef
}

func (c *Client) setRequired(dst *string, value, param string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return errs.NewValueIsRequiredError(param)
	}
	*dst = trimmed
	return nil
}

func (c *Client) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("password hash")
	}
	c.passwordHash = passwordHash
	return nil
}
