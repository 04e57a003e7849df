package rider

import (
	"fmt"

	"profast/internal/pkg/errs"
)

// Status represents the approval state of a rider application.
//
// State transitions:
//
//	Pending ──┬──> Active
//	          │      ^
//	          v      │
//	      Rejected ──┘
//	  (re-approval of an active rider is an allowed no-op)
//
// Activation carries a side effect handled at the use-case level: the
// matching user record is promoted to the rider role.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending is the initial status of a newly submitted application.
	StatusPending

	// StatusActive indicates the application was approved by an admin.
	// Only active riders can be assigned parcels.
	StatusActive

	// StatusRejected indicates the application was declined. An admin may
	// still approve a rejected application later.
	StatusRejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:  "unknown",
		StatusPending:  "pending",
		StatusActive:   "active",
		StatusRejected: "rejected",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:  "pending",
		StatusActive:   "active",
		StatusRejected: "rejected",
	}
}

// StatusFromString parses an application status arriving from the transport
// layer; unknown values are rejected.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid rider status", s),
	)
}

// Validate checks that the Status is a valid enumeration value.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid rider status", s))
	}
	return nil
}

// String returns the lower-case status name, or "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Approve transitions the status to Active. Approval is idempotent: an
// already active application stays active without error.
func (s Status) Approve() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}

	return StatusActive, nil
}

// Reject transitions the status to Rejected.
//
// Valid transitions:
//   - Pending -> Rejected
//   - Rejected -> Rejected (repeat rejection is a no-op)
//
// An active rider cannot be rejected; the application must be handled
// through a separate deactivation flow, which does not exist yet.
func (s Status) Reject() (Status, error) {
	if s != StatusPending && s != StatusRejected {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to reject", s.String()),
		)
	}

	return StatusRejected, nil
}
