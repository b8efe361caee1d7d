// Package ports defines the contracts between the purchasing core and its
// adapters: repositories bound to a unit of work, catalog lookups, user
// lookups and the notification sink.
package ports

import (
	"context"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/order"
)

// OrderRepository persists order headers. Line items have their own repository
// so the total can be recomputed from what was actually written.
type OrderRepository interface {
	// Add persists a new order header.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes the editable header fields when the stored version equals
	// aggregate.Version(), then advances the version on both sides.
	// A stale version yields errs.VersionIsInvalidError, a missing row errs.ObjectNotFoundError.
	Update(ctx context.Context, aggregate *order.Order) error

	// SaveTotal writes only the derived total. It does not touch the version.
	SaveTotal(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order header by identifier.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes the order; line items and movements go with it.
	Delete(ctx context.Context, id kernel.UUID) error
}

// LineItemRepository persists the line items of orders.
type LineItemRepository interface {
	Add(ctx context.Context, line *order.LineItem) error
	Update(ctx context.Context, line *order.LineItem) error
	Delete(ctx context.Context, id kernel.UUID) error

	// ListByOrder reads the persisted line items of an order, including rows
	// written earlier in the same transaction.
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*order.LineItem, error)
}
