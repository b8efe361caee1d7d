package order

import (
	"errors"
	"fmt"
	"math"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/pkg/errs"
	"purchasing/internal/pkg/guard"
)

const (
	// MinQuantity is the smallest accepted line quantity.
	MinQuantity = 1

	// MaxQuantity is the largest quantity the integer column holds.
	MaxQuantity = math.MaxInt32

	// MaxPriceDigits bounds unit prices to the numeric(10,2) column.
	MaxPriceDigits = 10
)

// ErrLineItemIsNotConstructed is returned when a LineItem was not created through
// NewLineItem.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// MinUnitPrice returns 0.01, the smallest accepted unit price.
func MinUnitPrice() kernel.Money {
	m, _ := kernel.MoneyFromString("0.01")
	return m
}

// LineItem is one entry of an order. It lives and dies with its order; a fleet
// reference is optional and may be cleared when the fleet is deleted.
type LineItem struct {
	id        kernel.UUID
	orderID   kernel.UUID
	owner     kernel.UUID
	itemID    kernel.UUID
	fleetID   *kernel.UUID
	status    LineStatus
	quantity  int
	unitPrice kernel.Money

	guard guard.ConstructorGuard
}

// NewLineItem validates and creates a line item.
//
// Example:
//
//	price, _ := kernel.MoneyFromString("10.00")
//	line, err := order.NewLineItem(kernel.NewUUID(), o.ID(), actor, itemID, nil,
//	    order.LinePending, 3, price)
func NewLineItem(
	id, orderID, owner, itemID kernel.UUID,
	fleetID *kernel.UUID,
	status LineStatus,
	quantity int,
	unitPrice kernel.Money,
) (*LineItem, error) {
	l := &LineItem{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		l.setID(id),
		l.setOrder(orderID),
		l.setOwner(owner),
		l.Change(itemID, fleetID, status, quantity, unitPrice),
	); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *LineItem) Validate() error {
	if l == nil {
		return ErrLineItemIsNotConstructed
	}
	return l.guard.Validate(ErrLineItemIsNotConstructed)
}

func (l *LineItem) ID() kernel.UUID { return l.id }
func (l *LineItem) OrderID() kernel.UUID { return l.orderID }
func (l *LineItem) Owner() kernel.UUID { return l.owner }
func (l *LineItem) ItemID() kernel.UUID { return l.itemID }
func (l *LineItem) FleetID() *kernel.UUID { return l.fleetID }
func (l *LineItem) Status() LineStatus { return l.status }
func (l *LineItem) Quantity() int { return l.quantity }
func (l *LineItem) UnitPrice() kernel.Money { return l.unitPrice }

// Subtotal returns quantity × unit price.
func (l *LineItem) Subtotal() kernel.Money {
	return l.unitPrice.MulInt(l.quantity)
}

// Change replaces the editable fields. On error the line is left unchanged.
func (l *LineItem) Change(
	itemID kernel.UUID,
	fleetID *kernel.UUID,
	status LineStatus,
	quantity int,
	unitPrice kernel.Money,
) error {
	next := *l
	if err := errors.Join(
		next.setItem(itemID),
		next.setFleet(fleetID),
		next.setStatus(status),
		next.setQuantity(quantity),
		next.setUnitPrice(unitPrice),
	); err != nil {
		return err
	}
	*l = next
	return nil
}

func (l *LineItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *LineItem) setOrder(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order", err)
	}
	l.orderID = orderID
	return nil
}

func (l *LineItem) setOwner(owner kernel.UUID) error {
	if err := owner.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("owner", err)
	}
	l.owner = owner
	return nil
}

func (l *LineItem) setItem(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("item", err)
	}
	l.itemID = itemID
	return nil
}

func (l *LineItem) setFleet(fleetID *kernel.UUID) error {
	if fleetID != nil {
		if err := fleetID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("fleet", err)
		}
	}
	l.fleetID = fleetID
	return nil
}

func (l *LineItem) setStatus(status LineStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	l.status = status
	return nil
}

func (l *LineItem) setQuantity(quantity int) error {
	if quantity < MinQuantity || quantity > MaxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, MinQuantity, MaxQuantity)
	}
	l.quantity = quantity
	return nil
}

func (l *LineItem) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("unit_price", err)
	}
	if unitPrice.LessThan(MinUnitPrice()) {
		return errs.NewValueIsOutOfRangeError("unit_price", unitPrice.String(), MinUnitPrice().String(), "unbounded")
	}
	if unitPrice.Digits() > MaxPriceDigits {
		return errs.NewValueIsInvalidErrorWithCause("unit_price",
			fmt.Errorf("%s has more than %d digits", unitPrice.String(), MaxPriceDigits))
	}
	l.unitPrice = unitPrice
	return nil
}
