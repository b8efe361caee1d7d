package queries

import (
	"errors"
	"time"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/pkg/guard"
)

var ErrGetOverdueOrdersQueryIsNotConstructed = errors.New(
	"GetOverdueOrdersQuery must be created via NewGetOverdueOrdersQuery constructor",
)

// GetOverdueOrdersQuery finds open orders of every owner whose expected
// delivery date lies before the day of now. It backs the overdue-orders job.
type GetOverdueOrdersQuery struct {
	now time.Time

	guard guard.ConstructorGuard
}

func NewGetOverdueOrdersQuery(now time.Time) GetOverdueOrdersQuery {
	return GetOverdueOrdersQuery{now: now, guard: guard.NewConstructorGuard()}
}

func (q GetOverdueOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueOrdersQueryIsNotConstructed)
}

func (q GetOverdueOrdersQuery) Now() time.Time { return q.now }

type GetOverdueOrdersQueryResponse struct {
	ID               kernel.UUID
	Owner            kernel.UUID
	SupplierName     string
	ExpectedDelivery time.Time
	DaysLate         int
}
