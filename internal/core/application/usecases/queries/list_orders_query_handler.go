package queries

import (
	"context"
	"database/sql"
	"time"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler reads order summaries with raw SQL.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(orderSummarySelect+`
		WHERE o.owner_id = ?
		ORDER BY o.created_at DESC, o.id
	`, query.Owner().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	return scanOrderSummaries(rows)
}

// orderSummarySelect is shared by every read that returns OrderSummary rows.
const orderSummarySelect = `
		SELECT
			o.id,
			o.supplier_id,
			s.name,
			o.description,
			o.created_at,
			o.expected_delivery,
			o.status,
			o.total,
			(SELECT COUNT(*) FROM order_line_items l WHERE l.order_id = o.id)
		FROM orders o
		JOIN suppliers s ON s.id = o.supplier_id`

func scanOrderSummaries(rows *sql.Rows) ([]OrderSummary, error) {
	defer rows.Close()

	summaries := make([]OrderSummary, 0)
	for rows.Next() {
		var (
			s                OrderSummary
			id, supplierID   uuid.UUID
			expectedDelivery *time.Time
			status           string
			total            decimal.Decimal
		)
		err := rows.Scan(&id, &supplierID, &s.SupplierName, &s.Description, &s.CreatedAt,
			&expectedDelivery, &status, &total, &s.ItemCount)
		if err != nil {
			return nil, err
		}

		if s.ID, err = kernel.UUIDFromGoogle(id); err != nil {
			return nil, err
		}
		if s.SupplierID, err = kernel.UUIDFromGoogle(supplierID); err != nil {
			return nil, err
		}
		if s.Status, err = order.ParseStatus(status); err != nil {
			return nil, err
		}
		if s.Total, err = money(total); err != nil {
			return nil, err
		}
		s.ExpectedDelivery = dateOnly(expectedDelivery)
		summaries = append(summaries, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return summaries, nil
}
