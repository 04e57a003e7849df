package ports

import (
	"context"

	"profast/internal/core/domain/model/kernel"
	"profast/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for the user directory.
type UserRepository interface {
	// AddIfAbsent persists a new user record unless one already exists for
	// the same email. Returns true when a record was created, false when the
	// email was already registered (idempotent registration).
	AddIfAbsent(ctx context.Context, aggregate *user.User) (bool, error)

	// Update persists changes to an existing user aggregate.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail retrieves a user by email, the directory's unique key.
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}
