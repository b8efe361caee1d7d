package queries

import (
	"errors"
	"time"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/pkg/guard"
)

var ErrGetDashboardQueryIsNotConstructed = errors.New(
	"GetDashboardQuery must be created via NewGetDashboardQuery constructor",
)

// Dashboard list sizes and the urgency window.
const (
	DashboardListSize = 5
	UrgentWithinDays  = 7
)

// GetDashboardQuery summarizes everything one user owns. now fixes "today"
// and "this month" so results are reproducible.
//
// Example:
//
//	query, err := NewGetDashboardQuery(actor, time.Now())
//	if err != nil {
//	    return err
//	}
//	dash, err := handler.Handle(ctx, query)
//	fmt.Printf("%d pending, %s spent\n", dash.Pending, dash.TotalValue)
type GetDashboardQuery struct {
	owner kernel.UUID
	now   time.Time

	guard guard.ConstructorGuard
}

func NewGetDashboardQuery(owner kernel.UUID, now time.Time) (GetDashboardQuery, error) {
	if err := owner.Validate(); err != nil {
		return GetDashboardQuery{}, err
	}
	return GetDashboardQuery{owner: owner, now: now, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardQueryIsNotConstructed)
}

func (q GetDashboardQuery) Owner() kernel.UUID { return q.owner }
func (q GetDashboardQuery) Now() time.Time { return q.now }

// GetDashboardQueryResponse holds counters and short ranked lists.
type GetDashboardQueryResponse struct {
	Orders         int64
	Suppliers      int64
	Fleets         int64
	Items          int64
	ItemCategories int64

	Pending    int64
	InProgress int64
	Finalized  int64

	// TotalValue sums quantity × unit price over every line item of the owner.
	TotalValue      kernel.Money
	TotalQuantity   int64
	OrdersThisMonth int64

	LatestOrders []OrderSummary

	// UrgentOrders are open orders due within UrgentWithinDays, overdue ones included.
	UrgentOrders []OrderSummary

	TopSuppliersByOrders []SupplierCount
	TopSuppliersBySpent  []SupplierSpent
	SuppliersWithOverdue []SupplierCount
	TopItems             []ItemCount
}

type SupplierCount struct {
	ID    kernel.UUID
	Name  string
	Count int64
}

type SupplierSpent struct {
	ID    kernel.UUID
	Name  string
	Spent kernel.Money
}

// ItemCount is how many line items reference a catalog item.
type ItemCount struct {
	ID    kernel.UUID
	Name  string
	Count int64
}
