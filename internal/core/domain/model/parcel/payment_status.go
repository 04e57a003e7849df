package parcel

import (
	"fmt"

	"profast/internal/pkg/errs"
)

// PaymentStatus is the binary settlement flag on a parcel, independent of
// the delivery status. It flips from unpaid to paid exactly once, guarded at
// the persistence layer by an atomic conditional update.
type PaymentStatus int

const (
	// PaymentStatusUnknown represents an invalid or undefined payment status.
	PaymentStatusUnknown PaymentStatus = iota

	// PaymentStatusUnpaid is the initial settlement state of every parcel.
	PaymentStatusUnpaid

	// PaymentStatusPaid indicates a payment was recorded for the parcel.
	PaymentStatusPaid
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentStatusUnknown: "unknown",
		PaymentStatusUnpaid:  "unpaid",
		PaymentStatusPaid:    "paid",
	}
}

func getValidPaymentStatusStrings() map[PaymentStatus]string {
	//nolint:exhaustive // PaymentStatusUnknown is intentionally excluded as it's invalid
	return map[PaymentStatus]string{
		PaymentStatusUnpaid: "unpaid",
		PaymentStatusPaid:   "paid",
	}
}

// PaymentStatusFromString parses a payment status used as a query filter.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for status, name := range getValidPaymentStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return PaymentStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment_status",
		fmt.Errorf("%q is not a valid payment status", s),
	)
}

// Validate checks that the PaymentStatus is a valid enumeration value.
func (s PaymentStatus) Validate() error {
	if _, ok := getValidPaymentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"paymentStatus",
			fmt.Errorf("%d is not a valid payment status", s),
		)
	}
	return nil
}

// String returns the status name, or "unknown" for invalid values.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
