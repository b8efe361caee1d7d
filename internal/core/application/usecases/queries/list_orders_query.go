package queries

import (
	"errors"
	"time"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/order"
	"purchasing/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery lists the orders owned by one user, newest first.
type ListOrdersQuery struct {
	owner kernel.UUID

	guard guard.ConstructorGuard
}

func NewListOrdersQuery(owner kernel.UUID) (ListOrdersQuery, error) {
	if err := owner.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}
	return ListOrdersQuery{owner: owner, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Owner() kernel.UUID { return q.owner }

// OrderSummary is an order row as shown in listings and on the dashboard.
type OrderSummary struct {
	ID               kernel.UUID
	SupplierID       kernel.UUID
	SupplierName     string
	Description      string
	CreatedAt        time.Time
	ExpectedDelivery *time.Time
	Status           order.Status
	Total            kernel.Money
	ItemCount        int64
}
