package commands

import (
	"errors"

	"profast/internal/pkg/guard"
)

var (
	ErrReleaseRidersCommandIsNotConstructed = errors.New(
		"ReleaseRidersCommand must be created via NewReleaseRidersCommand constructor",
	)
)

// ReleaseRidersCommand triggers work-status reconciliation: riders marked as
// in delivery but with no active parcels left are returned to the idle pool.
// The command carries no data; it exists so the background job goes through
// the same validation and transaction discipline as every other write.
type ReleaseRidersCommand struct {
	guard guard.ConstructorGuard
}

// NewReleaseRidersCommand creates a reconciliation command.
func NewReleaseRidersCommand() (ReleaseRidersCommand, error) {
	return ReleaseRidersCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReleaseRidersCommand) Validate() error {
	return c.guard.Validate(ErrReleaseRidersCommandIsNotConstructed)
}
