package parcel

import (
	"fmt"
	"strings"

	"profast/internal/pkg/errs"
)

// DeliveryStatus represents a parcel's position in the fulfillment pipeline.
// It implements a forward-only state machine: a parcel never regresses to an
// earlier state, and illegal jumps are rejected rather than stored.
//
// State transitions:
//
//	Pending ──> RiderAssigned ──> InTransit ──┬──> Delivered
//	                                          └──> ServiceCenterDelivered
type DeliveryStatus int

const (
	// DeliveryStatusUnknown represents an invalid or undefined status.
	DeliveryStatusUnknown DeliveryStatus = iota

	// DeliveryStatusPending is the initial status of a freshly created parcel.
	DeliveryStatusPending

	// DeliveryStatusRiderAssigned indicates a rider was assigned to the parcel.
	DeliveryStatusRiderAssigned

	// DeliveryStatusInTransit indicates the rider picked the parcel up.
	DeliveryStatusInTransit

	// DeliveryStatusDelivered is a final state: the parcel reached the receiver.
	DeliveryStatusDelivered

	// DeliveryStatusServiceCenterDelivered is a final state: the parcel was
	// dropped at a service center instead of the receiver's address.
	DeliveryStatusServiceCenterDelivered
)

func getDeliveryStatusStrings() map[DeliveryStatus]string {
	return map[DeliveryStatus]string{
		DeliveryStatusUnknown:                "unknown",
		DeliveryStatusPending:                "pending",
		DeliveryStatusRiderAssigned:          "rider_assigned",
		DeliveryStatusInTransit:              "in_transit",
		DeliveryStatusDelivered:              "delivered",
		DeliveryStatusServiceCenterDelivered: "service_center_delivered",
	}
}

func getValidDeliveryStatusStrings() map[DeliveryStatus]string {
	//nolint:exhaustive // DeliveryStatusUnknown is intentionally excluded as it's invalid
	return map[DeliveryStatus]string{
		DeliveryStatusPending:                "pending",
		DeliveryStatusRiderAssigned:          "rider_assigned",
		DeliveryStatusInTransit:              "in_transit",
		DeliveryStatusDelivered:              "delivered",
		DeliveryStatusServiceCenterDelivered: "service_center_delivered",
	}
}

// allowedTransitions is the authoritative forward-only transition table.
// A status missing from the map is terminal.
var allowedTransitions = map[DeliveryStatus][]DeliveryStatus{
	DeliveryStatusPending:       {DeliveryStatusRiderAssigned},
	DeliveryStatusRiderAssigned: {DeliveryStatusInTransit},
	DeliveryStatusInTransit:     {DeliveryStatusDelivered, DeliveryStatusServiceCenterDelivered},
}

// DeliveryStatusFromString parses a delivery status arriving from the
// transport layer; empty and unknown values are rejected.
func DeliveryStatusFromString(s string) (DeliveryStatus, error) {
	if s == "" {
		return DeliveryStatusUnknown, errs.NewValueIsRequiredError("status")
	}
	for status, name := range getValidDeliveryStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return DeliveryStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid delivery status", s),
	)
}

// Validate checks that the DeliveryStatus is a valid enumeration value.
func (s DeliveryStatus) Validate() error {
	if _, ok := getValidDeliveryStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"deliveryStatus",
			fmt.Errorf("%d is not a valid delivery status", s),
		)
	}
	return nil
}

// String returns the snake_case status name, or "unknown" for invalid values.
func (s DeliveryStatus) String() string {
	if str, ok := getDeliveryStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsCompleted reports whether the status is one of the two final states.
func (s DeliveryStatus) IsCompleted() bool {
	return s == DeliveryStatusDelivered || s == DeliveryStatusServiceCenterDelivered
}

// TransitionTo validates a status change against the transition table and
// returns the new status. Illegal transitions, including regressions and
// moves out of a terminal state, are rejected.
func (s DeliveryStatus) TransitionTo(next DeliveryStatus) (DeliveryStatus, error) {
	if err := next.Validate(); err != nil {
		return 0, err
	}

	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return next, nil
		}
	}

	return 0, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("transition %s -> %s is not allowed, valid next statuses are: %s",
			s.String(), next.String(), describeTransitionsFrom(s)),
	)
}

func describeTransitionsFrom(s DeliveryStatus) string {
	nexts := allowedTransitions[s]
	if len(nexts) == 0 {
		return "none (terminal status)"
	}

	names := make([]string, 0, len(nexts))
	for _, n := range nexts {
		names = append(names, n.String())
	}
	return strings.Join(names, ", ")
}
