package user

import (
	"fmt"

	"profast/internal/pkg/errs"
)

// Role represents a caller's authorization level. It is a closed enumeration:
// unknown values coming from the transport or persistence layer are rejected
// instead of being stored.
//
// Roles:
//   - RoleUser: a regular sender, the role every account starts with
//   - RoleRider: an approved delivery courier
//   - RoleAdmin: back-office operator
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleUser is the default role assigned on first sign-in.
	RoleUser

	// RoleRider is granted when a rider application is activated.
	// It is never assigned directly by an admin role change.
	RoleRider

	// RoleAdmin grants access to rider approval, assignment, and user management.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown: "unknown",
		RoleUser:    "user",
		RoleRider:   "rider",
		RoleAdmin:   "admin",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleUser:  "user",
		RoleRider: "rider",
		RoleAdmin: "admin",
	}
}

// RoleFromString parses a role name coming from the transport layer.
// Returns an error for anything outside the closed enumeration.
func RoleFromString(s string) (Role, error) {
	for role, name := range getValidRoleStrings() {
		if name == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// Validate checks that the Role is one of the valid enumeration values.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// IsAssignable reports whether an admin may set this role directly.
// RoleRider is excluded: it is only granted through rider activation.
func (r Role) IsAssignable() bool {
	return r == RoleUser || r == RoleAdmin
}

// String returns the lower-case role name, or "unknown" for invalid values.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
