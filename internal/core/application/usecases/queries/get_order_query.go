// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models shaped for one screen or endpoint each.
package queries

import (
	"errors"
	"time"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/movement"
	"purchasing/internal/core/domain/model/order"
	"purchasing/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery reads one order with its line items and movement history.
// Any authenticated user may read any order.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	details, err := handler.Handle(ctx, query)
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID { return q.orderID }

// GetOrderQueryResponse is the order header plus its lines and history.
type GetOrderQueryResponse struct {
	ID               kernel.UUID
	Owner            kernel.UUID
	SupplierID       kernel.UUID
	SupplierName     string
	Description      string
	CreatedAt        time.Time
	ExpectedDelivery *time.Time
	Status           order.Status
	Total            kernel.Money
	Version          int64

	Items     []OrderLine
	Movements []OrderMovement
}

// OrderLine is one line item with the labels of what it references.
type OrderLine struct {
	ID          kernel.UUID
	ItemID      kernel.UUID
	ItemName    string
	FleetID     *kernel.UUID
	FleetPrefix *string
	Status      order.LineStatus
	Quantity    int
	UnitPrice   kernel.Money
	Subtotal    kernel.Money
}

// OrderMovement is one audit entry. ActorName is nil when the user no longer exists.
type OrderMovement struct {
	ID        kernel.UUID
	Kind      movement.Kind
	Previous  *order.Status
	Next      order.Status
	Note      string
	Actor     kernel.UUID
	ActorName *string
	At        time.Time
}
