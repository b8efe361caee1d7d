package jobs

import (
	"context"
	"log/slog"
	"time"

	"purchasing/internal/core/application/usecases/queries"
	"purchasing/internal/core/domain/model/kernel"
)

// DefaultOverdueSchedule runs the overdue check every 15 minutes.
const DefaultOverdueSchedule = "0 */15 * * * *"

// OverdueOrdersFinder is satisfied by queries.GetOverdueOrdersQueryHandler.
type OverdueOrdersFinder interface {
	Handle(ctx context.Context, query queries.GetOverdueOrdersQuery) ([]queries.GetOverdueOrdersQueryResponse, error)
}

// OverdueGauge receives the number of overdue orders after each run.
type OverdueGauge interface {
	SetOverdue(n int)
}

// OverdueOrdersJob looks for open orders past their expected delivery date,
// logs them per owner and publishes the count.
type OverdueOrdersJob struct {
	finder OverdueOrdersFinder
	gauge  OverdueGauge
	logger *slog.Logger
	now    func() time.Time
}

func NewOverdueOrdersJob(finder OverdueOrdersFinder, gauge OverdueGauge, logger *slog.Logger) *OverdueOrdersJob {
	return &OverdueOrdersJob{
		finder: finder,
		gauge:  gauge,
		logger: logger.With("component", "overdue_orders_job"),
		now:    time.Now,
	}
}

// Run performs a single check and returns how many orders are overdue.
func (j *OverdueOrdersJob) Run(ctx context.Context) (int, error) {
	overdue, err := j.finder.Handle(ctx, queries.NewGetOverdueOrdersQuery(j.now()))
	if err != nil {
		return 0, err
	}

	byOwner := make(map[kernel.UUID][]queries.GetOverdueOrdersQueryResponse)
	owners := make([]kernel.UUID, 0)
	for _, o := range overdue {
		if _, seen := byOwner[o.Owner]; !seen {
			owners = append(owners, o.Owner)
		}
		byOwner[o.Owner] = append(byOwner[o.Owner], o)
	}

	for _, owner := range owners {
		orders := byOwner[owner]
		// most late first, as returned by the query
		j.logger.WarnContext(ctx, "orders past expected delivery",
			"owner", owner.String(),
			"count", len(orders),
			"most_late_order", orders[0].ID.String(),
			"supplier", orders[0].SupplierName,
			"days_late", orders[0].DaysLate,
		)
	}

	if j.gauge != nil {
		j.gauge.SetOverdue(len(overdue))
	}
	return len(overdue), nil
}
