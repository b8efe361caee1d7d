package order

import (
	"errors"
	"strings"
	"time"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/pkg/errs"
	"purchasing/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the header of a purchase order and the root of the aggregate that
// also holds its line items.
//
// Order follows these invariants:
//   - id, owner and supplier are valid identifiers
//   - description is not blank
//   - createdAt is set by the constructor and never changes
//   - status is one of Pending, InProgress, Finalized
//   - total equals the sum of quantity × unit price over the persisted line items;
//     only the recomputation step calls SetTotal
//
// version is the optimistic-concurrency counter, advanced by the repository on
// every successful header update.
type Order struct {
	id               kernel.UUID
	owner            kernel.UUID
	supplierID       kernel.UUID
	description      string
	createdAt        time.Time
	expectedDelivery *time.Time
	status           Status
	total            kernel.Money
	version          int64

	guard guard.ConstructorGuard
}

// NewOrder creates an order with a zero total. The total is filled in once the
// line items are persisted.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), actor, supplierID,
//	    "Brake pads for the March revision", &delivery, order.Pending, time.Now())
//	if err != nil {
//	    return err
//	}
func NewOrder(
	id, owner, supplierID kernel.UUID,
	description string,
	expectedDelivery *time.Time,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		total: kernel.ZeroMoney(),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setOwner(owner),
		o.setSupplier(supplierID),
		o.setDescription(description),
		o.setStatus(status),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}
	o.expectedDelivery = normalizeDate(expectedDelivery)

	return o, nil
}

// RestoreOrder rebuilds an order read from storage.
func RestoreOrder(
	id, owner, supplierID kernel.UUID,
	description string,
	expectedDelivery *time.Time,
	status Status,
	createdAt time.Time,
	total kernel.Money,
	version int64,
) (*Order, error) {
	o, err := NewOrder(id, owner, supplierID, description, expectedDelivery, status, createdAt)
	if err != nil {
		return nil, err
	}
	if err = o.SetTotal(total); err != nil {
		return nil, err
	}
	o.version = version
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID { return o.id }
func (o *Order) Owner() kernel.UUID { return o.owner }
func (o *Order) SupplierID() kernel.UUID { return o.supplierID }
func (o *Order) Description() string { return o.description }
func (o *Order) CreatedAt() time.Time { return o.createdAt }
func (o *Order) ExpectedDelivery() *time.Time { return o.expectedDelivery }
func (o *Order) Status() Status { return o.status }
func (o *Order) Total() kernel.Money { return o.total }
func (o *Order) Version() int64 { return o.version }
func (o *Order) IsOwnedBy(user kernel.UUID) bool { return o.owner.IsEqual(user) }

// Edit replaces the editable header fields. Identity, owner, creation time and
// total are untouched. On error the order is left unchanged.
func (o *Order) Edit(supplierID kernel.UUID, description string, expectedDelivery *time.Time, status Status) error {
	next := *o
	if err := errors.Join(
		next.setSupplier(supplierID),
		next.setDescription(description),
		next.setStatus(status),
	); err != nil {
		return err
	}
	next.expectedDelivery = normalizeDate(expectedDelivery)
	*o = next
	return nil
}

// SetTotal stores the recomputed total.
func (o *Order) SetTotal(total kernel.Money) error {
	if err := total.Validate(); err != nil {
		return err
	}
	o.total = total
	return nil
}

// AdvanceVersion is called by the repository after a successful conditional update.
func (o *Order) AdvanceVersion() {
	o.version++
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOwner(owner kernel.UUID) error {
	if err := owner.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("owner", err)
	}
	o.owner = owner
	return nil
}

func (o *Order) setSupplier(supplierID kernel.UUID) error {
	if err := supplierID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("supplier", err)
	}
	o.supplierID = supplierID
	return nil
}

func (o *Order) setDescription(description string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	o.description = description
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created_at")
	}
	o.createdAt = createdAt.UTC()
	return nil
}

// normalizeDate keeps only the calendar day of a delivery date.
func normalizeDate(d *time.Time) *time.Time {
	if d == nil {
		return nil
	}
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	return &day
}
