package queries

import (
	"context"
	"time"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetOverdueOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetOverdueOrdersQueryHandler(db *gorm.DB) GetOverdueOrdersQueryHandler {
	return GetOverdueOrdersQueryHandler{db: db}
}

// Handle returns overdue orders, most late first.
func (h GetOverdueOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOverdueOrdersQuery,
) ([]GetOverdueOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	today := startOfDay(query.Now())
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.owner_id,
			s.name,
			o.expected_delivery
		FROM orders o
		JOIN suppliers s ON s.id = o.supplier_id
		WHERE o.expected_delivery IS NOT NULL
			AND o.expected_delivery < ?
			AND o.status <> ?
		ORDER BY o.expected_delivery, o.id
	`, today, order.Finalized.Code()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	overdue := make([]GetOverdueOrdersQueryResponse, 0)
	for rows.Next() {
		var (
			resp      GetOverdueOrdersQueryResponse
			id, owner uuid.UUID
			expected  time.Time
		)
		if err = rows.Scan(&id, &owner, &resp.SupplierName, &expected); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromGoogle(id); err != nil {
			return nil, err
		}
		if resp.Owner, err = kernel.UUIDFromGoogle(owner); err != nil {
			return nil, err
		}
		resp.ExpectedDelivery = *dateOnly(&expected)
		resp.DaysLate = int(today.Sub(resp.ExpectedDelivery).Hours() / 24)
		overdue = append(overdue, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return overdue, nil
}
