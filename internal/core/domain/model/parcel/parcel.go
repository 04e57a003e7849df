package parcel

import (
	"errors"
	"time"

	"profast/internal/core/domain/model/kernel"
	"profast/internal/pkg/errs"
	"profast/internal/pkg/guard"
)

// Domain errors for parcel operations.
var (
	// ErrCreatedByIsRequired is returned when attempting to create a parcel without a sender email.
	ErrCreatedByIsRequired = errs.NewValueIsRequiredError("createdBy")
	// ErrParcelIsNotConstructed is returned when using an improperly initialized Parcel.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel or RestoreParcel constructor")
	// ErrRiderNameIsRequired is returned when assigning a rider without a name.
	ErrRiderNameIsRequired = errs.NewValueIsRequiredError("riderName")
	// ErrRiderEmailIsRequired is returned when assigning a rider without an email.
	ErrRiderEmailIsRequired = errs.NewValueIsRequiredError("riderEmail")
)

// Parcel is the aggregate root of the delivery workflow. It tracks who
// created the parcel, its settlement flag, its position in the fulfillment
// pipeline, and the rider carrying it.
//
// Invariants:
//   - Must have a valid unique identifier and a sender email
//   - DeliveryStatus only moves forward through the transition table
//   - Assignment fields are set exactly once per assignment event, and only
//     while the parcel is pending
//   - PaymentStatus flips unpaid -> paid at most once (the conditional
//     update in the persistence layer enforces this under concurrency)
type Parcel struct {
	id            kernel.UUID
	createdBy     string
	title         string
	paymentStatus PaymentStatus
	status        DeliveryStatus

	riderID    *kernel.UUID
	riderName  string
	riderEmail string

	pickedAt    *time.Time
	deliveredAt *time.Time
	createdAt   time.Time

	guard guard.ConstructorGuard
}

// NewParcel creates a parcel in the pending, unpaid state. Only the sender
// email is mandatory; the title is free-form and may be empty.
func NewParcel(id kernel.UUID, createdBy, title string, createdAt time.Time) (*Parcel, error) {
	p := &Parcel{
		paymentStatus: PaymentStatusUnpaid,
		status:        DeliveryStatusPending,
		title:         title,
		createdAt:     createdAt,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setCreatedBy(createdBy),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreParcel reconstructs a parcel aggregate from persistent storage,
// preserving statuses, assignment fields, and timestamps.
func RestoreParcel(
	id kernel.UUID,
	createdBy, title string,
	paymentStatus PaymentStatus,
	status DeliveryStatus,
	riderID *kernel.UUID,
	riderName, riderEmail string,
	pickedAt, deliveredAt *time.Time,
	createdAt time.Time,
) (*Parcel, error) {
	p, err := NewParcel(id, createdBy, title, createdAt)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(paymentStatus.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	if riderID != nil {
		if err = riderID.Validate(); err != nil {
			return nil, err
		}
	}

	p.paymentStatus = paymentStatus
	p.status = status
	p.riderID = riderID
	p.riderName = riderName
	p.riderEmail = riderEmail
	p.pickedAt = pickedAt
	p.deliveredAt = deliveredAt
	return p, nil
}

// Validate ensures the Parcel was built through a constructor.
func (p *Parcel) Validate() error {
	if p == nil || p.guard.Validate(ErrParcelIsNotConstructed) != nil {
		return ErrParcelIsNotConstructed
	}
	return nil
}

// ID returns the parcel's unique identifier.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// CreatedBy returns the sender's email.
func (p *Parcel) CreatedBy() string {
	return p.createdBy
}

// Title returns the free-form parcel description.
func (p *Parcel) Title() string {
	return p.title
}

// PaymentStatus returns the settlement flag.
func (p *Parcel) PaymentStatus() PaymentStatus {
	return p.paymentStatus
}

// Status returns the parcel's position in the fulfillment pipeline.
func (p *Parcel) Status() DeliveryStatus {
	return p.status
}

// Rider returns the assigned rider's ID, or nil before assignment.
func (p *Parcel) Rider() *kernel.UUID {
	return p.riderID
}

// RiderName returns the assigned rider's display name.
func (p *Parcel) RiderName() string {
	return p.riderName
}

// RiderEmail returns the assigned rider's email.
func (p *Parcel) RiderEmail() string {
	return p.riderEmail
}

// PickedAt returns when the parcel went in transit, or nil.
func (p *Parcel) PickedAt() *time.Time {
	return p.pickedAt
}

// DeliveredAt returns when the parcel was delivered, or nil.
func (p *Parcel) DeliveredAt() *time.Time {
	return p.deliveredAt
}

// CreatedAt returns the parcel creation timestamp.
func (p *Parcel) CreatedAt() time.Time {
	return p.createdAt
}

// AssignRider attaches a rider to a pending parcel and moves it to the
// rider-assigned status. The three assignment fields are set together,
// exactly once per assignment event.
func (p *Parcel) AssignRider(riderID kernel.UUID, riderName, riderEmail string) error {
	if err := riderID.Validate(); err != nil {
		return err
	}
	if riderName == "" {
		return ErrRiderNameIsRequired
	}
	if riderEmail == "" {
		return ErrRiderEmailIsRequired
	}

	newStatus, err := p.status.TransitionTo(DeliveryStatusRiderAssigned)
	if err != nil {
		return err
	}

	p.status = newStatus
	p.riderID = &riderID
	p.riderName = riderName
	p.riderEmail = riderEmail
	return nil
}

// AdvanceTo moves the parcel forward in the pipeline, rejecting transitions
// outside the table. Entering the in-transit status stamps pickedAt; the
// delivered status stamps deliveredAt. Other statuses stamp neither.
func (p *Parcel) AdvanceTo(next DeliveryStatus, now time.Time) error {
	newStatus, err := p.status.TransitionTo(next)
	if err != nil {
		return err
	}

	p.status = newStatus
	switch newStatus {
	case DeliveryStatusInTransit:
		p.pickedAt = &now
	case DeliveryStatusDelivered:
		p.deliveredAt = &now
	default:
	}
	return nil
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setCreatedBy(createdBy string) error {
	if createdBy == "" {
		return ErrCreatedByIsRequired
	}
	p.createdBy = createdBy
	return nil
}
