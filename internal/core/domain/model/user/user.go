package user

import (
	"errors"
	"time"

	"profast/internal/core/domain/model/kernel"
	"profast/internal/pkg/errs"
	"profast/internal/pkg/guard"
)

var (
	// ErrUserIsNotConstructed is returned when a User instance was not created
	// through NewUser or RestoreUser.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructor")

	// ErrEmailIsRequired is returned when attempting to create a user without an email.
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")
)

// User is the aggregate behind the user directory. One record exists per
// email; the record owns the authoritative role assignment.
//
// Invariants:
//   - Must have a valid unique identifier and a non-empty email
//   - Role is always a valid enumeration value
//   - RoleRider is only ever set through rider activation (PromoteToRider)
//   - Can only be created through NewUser or RestoreUser
type User struct {
	id        kernel.UUID
	email     string
	name      string
	role      Role
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewUser creates a user record for a first sign-in. The role always starts
// as RoleUser; elevated roles are granted by later transitions.
func NewUser(id kernel.UUID, email, name string, createdAt time.Time) (*User, error) {
	u := &User{
		role:      RoleUser,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
	); err != nil {
		return nil, err
	}

	u.name = name
	return u, nil
}

// RestoreUser reconstructs a user aggregate from persistent storage,
// preserving the stored role.
func RestoreUser(id kernel.UUID, email, name string, role Role, createdAt time.Time) (*User, error) {
	u, err := NewUser(id, email, name, createdAt)
	if err != nil {
		return nil, err
	}

	if err = role.Validate(); err != nil {
		return nil, err
	}

	u.role = role
	return u, nil
}

// Validate ensures the User was built through a constructor.
func (u *User) Validate() error {
	if u == nil || u.guard.Validate(ErrUserIsNotConstructed) != nil {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Email returns the user's email, the directory's unique key.
func (u *User) Email() string {
	return u.email
}

// Name returns the user's display name.
func (u *User) Name() string {
	return u.name
}

// Role returns the user's current role.
func (u *User) Role() Role {
	return u.role
}

// CreatedAt returns the first sign-in timestamp.
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// PromoteToRider forces the role to RoleRider as the side effect of a rider
// application being activated. The operation is idempotent: promoting an
// existing rider is a no-op.
func (u *User) PromoteToRider() {
	u.role = RoleRider
}

// ChangeRole applies an admin role change. Only RoleUser and RoleAdmin may be
// set this way; RoleRider and unknown values are rejected.
func (u *User) ChangeRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	if !role.IsAssignable() {
		return errs.NewValueIsInvalidError("role")
	}

	u.role = role
	return nil
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}
	u.email = email
	return nil
}
