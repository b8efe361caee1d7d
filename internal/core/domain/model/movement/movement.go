package movement

import (
	"errors"
	"fmt"
	"time"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/order"
	"purchasing/internal/pkg/errs"
	"purchasing/internal/pkg/guard"
)

// ErrMovementIsNotConstructed is returned when a Movement was not created through
// one of the constructors.
var ErrMovementIsNotConstructed = errors.New("Movement must be created via NewCreation, NewEdit or Restore")

// Movement is one immutable audit entry of an order.
type Movement struct {
	id       kernel.UUID
	orderID  kernel.UUID
	kind     Kind
	previous *order.Status
	next     order.Status
	note     string
	actor    kernel.UUID
	at       time.Time

	guard guard.ConstructorGuard
}

// NewCreation records the creation of an order. The note mentions the number of
// line items and the total, e.g. "Order created with 2 item(s). Total: 35.50".
func NewCreation(id kernel.UUID, o *order.Order, itemCount int, actor kernel.UUID, at time.Time) (*Movement, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	note := fmt.Sprintf("Order created with %d item(s). Total: %s", itemCount, o.Total())
	return Restore(id, o.ID(), Creation, nil, o.Status(), note, actor, at)
}

// NewEdit records an edit of an order. before is the status read prior to the edit.
//
// Example:
//
//	m, err := movement.NewEdit(kernel.NewUUID(), o, statusBefore, actor, now)
//	// m.Kind() == movement.StatusChange when o.Status() != statusBefore
func NewEdit(id kernel.UUID, o *order.Order, before order.Status, actor kernel.UUID, at time.Time) (*Movement, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	kind := Classify(before, o.Status())

	var note string
	switch kind {
	case StatusChange:
		note = fmt.Sprintf("Status changed from %s to %s", before.Label(), o.Status().Label())
	default:
		note = fmt.Sprintf("Order data updated. Total: %s", o.Total())
	}
	return Restore(id, o.ID(), kind, &before, o.Status(), note, actor, at)
}

// Restore rebuilds a movement read from storage.
func Restore(
	id, orderID kernel.UUID,
	kind Kind,
	previous *order.Status,
	next order.Status,
	note string,
	actor kernel.UUID,
	at time.Time,
) (*Movement, error) {
	var prevErr error
	if previous != nil {
		prevErr = previous.Validate()
	} else if kind != Creation {
		prevErr = errs.NewValueIsRequiredError("previous_status")
	}

	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		kind.Validate(),
		prevErr,
		next.Validate(),
		actor.Validate(),
	); err != nil {
		return nil, err
	}
	if at.IsZero() {
		return nil, errs.NewValueIsRequiredError("at")
	}

	return &Movement{
		id:       id,
		orderID:  orderID,
		kind:     kind,
		previous: previous,
		next:     next,
		note:     note,
		actor:    actor,
		at:       at.UTC(),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (m *Movement) Validate() error {
	if m == nil {
		return ErrMovementIsNotConstructed
	}
	return m.guard.Validate(ErrMovementIsNotConstructed)
}

func (m *Movement) ID() kernel.UUID { return m.id }
func (m *Movement) OrderID() kernel.UUID { return m.orderID }
func (m *Movement) Kind() Kind { return m.kind }
func (m *Movement) Previous() *order.Status { return m.previous }
func (m *Movement) Next() order.Status { return m.next }
func (m *Movement) Note() string { return m.note }
func (m *Movement) Actor() kernel.UUID { return m.actor }
func (m *Movement) At() time.Time { return m.at }
