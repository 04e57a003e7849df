package rider

import (
	"fmt"

	"profast/internal/pkg/errs"
)

// WorkStatus represents whether an active rider currently carries a parcel.
// It is orthogonal to the application Status: only active riders ever leave
// the idle state.
type WorkStatus int

const (
	// WorkStatusUnknown represents an invalid or undefined work status.
	WorkStatusUnknown WorkStatus = iota

	// WorkStatusIdle means the rider has no parcels in progress and can be
	// offered new assignments.
	WorkStatusIdle

	// WorkStatusInDelivery means the rider has at least one assigned or
	// in-transit parcel.
	WorkStatusInDelivery
)

func getWorkStatusStrings() map[WorkStatus]string {
	return map[WorkStatus]string{
		WorkStatusUnknown:    "unknown",
		WorkStatusIdle:       "idle",
		WorkStatusInDelivery: "in_delivery",
	}
}

func getValidWorkStatusStrings() map[WorkStatus]string {
	//nolint:exhaustive // WorkStatusUnknown is intentionally excluded as it's invalid
	return map[WorkStatus]string{
		WorkStatusIdle:       "idle",
		WorkStatusInDelivery: "in_delivery",
	}
}

// WorkStatusFromString parses a work status restored from storage;
// unknown values are rejected.
func WorkStatusFromString(s string) (WorkStatus, error) {
	for status, name := range getValidWorkStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return WorkStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"workStatus",
		fmt.Errorf("%q is not a valid work status", s),
	)
}

// Validate checks that the WorkStatus is a valid enumeration value.
func (w WorkStatus) Validate() error {
	if _, ok := getValidWorkStatusStrings()[w]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"workStatus",
			fmt.Errorf("%d is not a valid work status", w),
		)
	}
	return nil
}

// String returns the lower-case work-status name, or "unknown" for invalid values.
func (w WorkStatus) String() string {
	if str, ok := getWorkStatusStrings()[w]; ok {
		return str
	}
	return "unknown"
}
