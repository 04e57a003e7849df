package rider

import (
	"errors"

	"profast/internal/core/domain/model/kernel"
	"profast/internal/pkg/errs"
	"profast/internal/pkg/guard"
)

// Domain errors for rider operations.
var (
	// ErrNameIsRequired is returned when attempting to create a rider application without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrEmailIsRequired is returned when attempting to create a rider application without an email.
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")
	// ErrDistrictIsRequired is returned when attempting to create a rider application without a district.
	ErrDistrictIsRequired = errs.NewValueIsRequiredError("district")
	// ErrRiderIsNotConstructed is returned when using an improperly initialized Rider.
	ErrRiderIsNotConstructed = errors.New("Rider must be created via NewRider or RestoreRider constructor")
	// ErrRiderIsNotActive is returned when a delivery is started for a rider
	// whose application has not been approved.
	ErrRiderIsNotActive = errors.New("rider application is not active")
)

// Rider is the aggregate behind a rider application and, once approved, the
// courier drawn from for parcel assignments.
//
// Key responsibilities:
//   - Managing application identity (ID, name, email, district)
//   - Enforcing the approval workflow (pending -> active / rejected)
//   - Tracking delivery workload (idle / in_delivery)
//
// Business rules:
//   - A rider must have a valid UUID, name, email, and district
//   - Approval is idempotent; activation promotes the matching user record
//     to the rider role at the use-case level
//   - Only active riders can start deliveries
type Rider struct {
	id         kernel.UUID
	name       string
	email      string
	district   string
	status     Status
	workStatus WorkStatus

	guard guard.ConstructorGuard
}

// NewRider creates a pending rider application with an idle work status.
// All identity fields are required.
func NewRider(id kernel.UUID, name, email, district string) (*Rider, error) {
	r := &Rider{
		status:     StatusPending,
		workStatus: WorkStatusIdle,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setEmail(email),
		r.setDistrict(district),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRider reconstructs a rider aggregate from persistent storage,
// preserving its approval and work status.
func RestoreRider(id kernel.UUID, name, email, district string, status Status, workStatus WorkStatus) (*Rider, error) {
	r, err := NewRider(id, name, email, district)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(status.Validate(), workStatus.Validate()); err != nil {
		return nil, err
	}

	r.status = status
	r.workStatus = workStatus
	return r, nil
}

// Validate ensures the Rider was built through a constructor.
func (r *Rider) Validate() error {
	if r == nil || r.guard.Validate(ErrRiderIsNotConstructed) != nil {
		return ErrRiderIsNotConstructed
	}
	return nil
}

// ID returns the application's unique identifier.
func (r *Rider) ID() kernel.UUID {
	return r.id
}

// Name returns the rider's display name.
func (r *Rider) Name() string {
	return r.name
}

// Email returns the rider's email, linking the application to a user record.
func (r *Rider) Email() string {
	return r.email
}

// District returns the delivery district the rider applied for.
func (r *Rider) District() string {
	return r.district
}

// Status returns the application's approval status.
func (r *Rider) Status() Status {
	return r.status
}

// WorkStatus returns the rider's current workload state.
func (r *Rider) WorkStatus() WorkStatus {
	return r.workStatus
}

// Approve activates the rider application. Repeated approval is a no-op, so
// the activation side effect on the user record stays idempotent.
func (r *Rider) Approve() error {
	newStatus, err := r.status.Approve()
	if err != nil {
		return err
	}

	r.status = newStatus
	return nil
}

// Reject declines the application. An active rider cannot be rejected.
func (r *Rider) Reject() error {
	newStatus, err := r.status.Reject()
	if err != nil {
		return err
	}

	r.status = newStatus
	return nil
}

// StartDelivery marks the rider as carrying a parcel. The rider must be
// active; a rider already in delivery may take on further parcels.
func (r *Rider) StartDelivery() error {
	if r.status != StatusActive {
		return ErrRiderIsNotActive
	}

	r.workStatus = WorkStatusInDelivery
	return nil
}

// FinishDelivery returns the rider to the idle pool once no assigned parcels
// remain in progress.
func (r *Rider) FinishDelivery() {
	r.workStatus = WorkStatusIdle
}

func (r *Rider) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Rider) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	r.name = name
	return nil
}

func (r *Rider) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}
	r.email = email
	return nil
}

func (r *Rider) setDistrict(district string) error {
	if district == "" {
		return ErrDistrictIsRequired
	}
	r.district = district
	return nil
}
