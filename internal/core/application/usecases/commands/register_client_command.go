package commands

import (
	"errors"

	"kabalen/internal/pkg/errs"
	"kabalen/internal/pkg/guard"
)

var (
	ErrRegisterClientCommandIsNotConstructed = errors.New(
		"RegisterClientCommand must be created via NewRegisterClientCommand constructor",
	)
)

// RegisterClientCommand represents a request to register a new client account.
// Carries the profile fields, the plaintext password (hashed by the handler,
// never stored), and the artifact references of the two identity uploads.
//
// Example:
//
//	cmd, err := NewRegisterClientCommand(
//	    "Maria Santos", "12 Mabini St", "+639171234567",
//	    "maria", "s3cret-pw", validIDRef, selfieRef,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid registration data: %w", err)
//	}
//
//	handler := NewRegisterClientCommandHandler(uowFactory)
//	clientID, err := handler.Handle(ctx, cmd)
type RegisterClientCommand struct { //nolint:recvcheck //using for validation
	fullname   string
	address    string
	phone      string
	username   string
	password   string
	validIDRef string
	selfieRef  string

	guard guard.ConstructorGuard
}

// NewRegisterClientCommand creates a command to register a client.
// Every field is required; returns an error naming the first missing one.
func NewRegisterClientCommand(
	fullname, address, phone, username, password, validIDRef, selfieRef string,
) (RegisterClientCommand, error) {
	cmd := RegisterClientCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequired(&cmd.fullname, fullname, "fullname"),
		cmd.setRequired(&cmd.address, address, "address"),
		cmd.setRequired(&cmd.phone, phone, "phone"),
		cmd.setRequired(&cmd.username, username, "username"),
		cmd.setRequired(&cmd.password, password, "password"),
		cmd.setRequired(&cmd.validIDRef, validIDRef, "valid id"),
		cmd.setRequired(&cmd.selfieRef, selfieRef, "selfie"),
	); err != nil {
		return RegisterClientCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterClientCommandIsNotConstructed if validation fails.
func (c RegisterClientCommand) Validate() error {
	return c.guard.Validate(ErrRegisterClientCommandIsNotConstructed)
}

// Fullname returns the client's full name.
func (c RegisterClientCommand) Fullname() string {
	return c.fullname
}

// Address returns the client's home address.
func (c RegisterClientCommand) Address() string {
	return c.address
}

// Phone returns the client's contact phone.
func (c RegisterClientCommand) Phone() string {
	return c.phone
}

// Username returns the requested login name.
func (c RegisterClientCommand) Username() string {
	return c.username
}

// Password returns the plaintext password. The handler hashes it before it
// ever reaches the domain.
func (c RegisterClientCommand) Password() string {
	return c.password
}

// ValidIDRef returns the artifact reference of the uploaded government id.
func (c RegisterClientCommand) ValidIDRef() string {
	return c.validIDRef
}

// SelfieRef returns the artifact reference of the uploaded selfie.
func (c RegisterClientCommand) SelfieRef() string {
	return c.selfieRef
}

func (c *RegisterClientCommand) setRequired(dst *string, value, param string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(param)
	}

	*dst = value
	return nil
}
