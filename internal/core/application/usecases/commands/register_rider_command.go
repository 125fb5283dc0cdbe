package commands

import (
	"errors"

	"kabalen/internal/pkg/errs"
	"kabalen/internal/pkg/guard"
)

var (
	ErrRegisterRiderCommandIsNotConstructed = errors.New(
		"RegisterRiderCommand must be created via NewRegisterRiderCommand constructor",
	)
)

// RegisterRiderCommand represents the admin adding a rider to the directory.
// Riders cannot self-register; this command is only reachable through the
// admin surface.
type RegisterRiderCommand struct { //nolint:recvcheck //using for validation
	name     string
	phone    string
	username string
	password string

	guard guard.ConstructorGuard
}

// NewRegisterRiderCommand creates a command to add a rider.
// Every field is required.
func NewRegisterRiderCommand(name, phone, username, password string) (RegisterRiderCommand, error) {
	cmd := RegisterRiderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequired(&cmd.name, name, "name"),
		cmd.setRequired(&cmd.phone, phone, "phone"),
		cmd.setRequired(&cmd.username, username, "username"),
		cmd.setRequired(&cmd.password, password, "password"),
	); err != nil {
		return RegisterRiderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterRiderCommandIsNotConstructed if validation fails.
func (c RegisterRiderCommand) Validate() error {
	return c.guard.Validate(ErrRegisterRiderCommandIsNotConstructed)
}

// Name returns the rider's display name.
func (c RegisterRiderCommand) Name() string {
	return c.name
}

// Phone returns the rider's contact phone.
func (c RegisterRiderCommand) Phone() string {
	return c.phone
}

// Username returns the requested login name.
func (c RegisterRiderCommand) Username() string {
	return c.username
}

// Password returns the plaintext password. The handler hashes it before it
// ever reaches the domain.
func (c RegisterRiderCommand) Password() string {
	return c.password
}

func (c *RegisterRiderCommand) setRequired(dst *string, value, param string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(param)
	}

	*dst = value
	return nil
}
