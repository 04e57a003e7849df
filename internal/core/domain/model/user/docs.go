// Package user provides the User aggregate and the Role enumeration for the
// parcel-delivery system's user directory.
//
// Key business rules:
//   - One record per email; registration is idempotent
//   - Every account starts as a regular user
//   - The rider role is only granted through rider-application activation
//   - Admin role changes are restricted to the user and admin roles
package user
