package queries

import (
	"context"
	"time"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetDashboardQueryHandler computes the dashboard. Every statement is scoped
// to the owner passed in the query; dates are computed here so the SQL stays
// portable between PostgreSQL and SQLite.
type GetDashboardQueryHandler struct {
	db *gorm.DB
}

func NewGetDashboardQueryHandler(db *gorm.DB) GetDashboardQueryHandler {
	return GetDashboardQueryHandler{db: db}
}

func (h GetDashboardQueryHandler) Handle(ctx context.Context, query GetDashboardQuery) (*GetDashboardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	today := startOfDay(query.Now())
	args := map[string]any{
		"owner":       query.Owner().Bytes(),
		"pending":     order.Pending.Code(),
		"in_progress": order.InProgress.Code(),
		"finalized":   order.Finalized.Code(),
		"today":       today,
		"urgent":      today.AddDate(0, 0, UrgentWithinDays),
		"month":       time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC),
		"limit":       DashboardListSize,
	}
	db := h.db.WithContext(ctx)

	resp, err := h.counters(db, args)
	if err != nil {
		return nil, err
	}

	if resp.LatestOrders, err = h.summaries(db, `
		WHERE o.owner_id = @owner
		ORDER BY o.created_at DESC, o.id
		LIMIT @limit
	`, args); err != nil {
		return nil, err
	}

	if resp.UrgentOrders, err = h.summaries(db, `
		WHERE o.owner_id = @owner
			AND o.expected_delivery IS NOT NULL
			AND o.expected_delivery <= @urgent
			AND o.status <> @finalized
		ORDER BY o.expected_delivery, o.id
		LIMIT @limit
	`, args); err != nil {
		return nil, err
	}

	if resp.TopSuppliersByOrders, err = h.supplierCounts(db, `
		SELECT s.id, s.name, COUNT(o.id) AS n
		FROM suppliers s
		JOIN orders o ON o.supplier_id = s.id AND o.owner_id = @owner
		WHERE s.owner_id = @owner
		GROUP BY s.id, s.name
		ORDER BY n DESC, s.name
		LIMIT @limit
	`, args); err != nil {
		return nil, err
	}

	if resp.SuppliersWithOverdue, err = h.supplierCounts(db, `
		SELECT s.id, s.name, COUNT(o.id) AS n
		FROM suppliers s
		JOIN orders o ON o.supplier_id = s.id AND o.owner_id = @owner
		WHERE s.owner_id = @owner
			AND o.expected_delivery IS NOT NULL
			AND o.expected_delivery < @today
			AND o.status <> @finalized
		GROUP BY s.id, s.name
		ORDER BY n DESC, s.name
		LIMIT @limit
	`, args); err != nil {
		return nil, err
	}

	if resp.TopSuppliersBySpent, err = h.supplierSpent(db, args); err != nil {
		return nil, err
	}
	if resp.TopItems, err = h.itemCounts(db, args); err != nil {
		return nil, err
	}
	return resp, nil
}

func (h GetDashboardQueryHandler) counters(db *gorm.DB, args map[string]any) (*GetDashboardQueryResponse, error) {
	var (
		resp       GetDashboardQueryResponse
		totalValue decimal.Decimal
	)
	err := db.Raw(`
		SELECT
			(SELECT COUNT(*) FROM orders WHERE owner_id = @owner),
			(SELECT COUNT(*) FROM suppliers WHERE owner_id = @owner),
			(SELECT COUNT(*) FROM fleets WHERE owner_id = @owner),
			(SELECT COUNT(*) FROM items WHERE owner_id = @owner),
			(SELECT COUNT(*) FROM item_categories WHERE owner_id = @owner),
			(SELECT COUNT(*) FROM orders WHERE owner_id = @owner AND status = @pending),
			(SELECT COUNT(*) FROM orders WHERE owner_id = @owner AND status = @in_progress),
			(SELECT COUNT(*) FROM orders WHERE owner_id = @owner AND status = @finalized),
			(SELECT COALESCE(SUM(quantity * unit_price), 0) FROM order_line_items WHERE owner_id = @owner),
			(SELECT COALESCE(SUM(quantity), 0) FROM order_line_items WHERE owner_id = @owner),
			(SELECT COUNT(*) FROM orders WHERE owner_id = @owner AND created_at >= @month)
	`, args).Row().Scan(
		&resp.Orders,
		&resp.Suppliers,
		&resp.Fleets,
		&resp.Items,
		&resp.ItemCategories,
		&resp.Pending,
		&resp.InProgress,
		&resp.Finalized,
		&totalValue,
		&resp.TotalQuantity,
		&resp.OrdersThisMonth,
	)
	if err != nil {
		return nil, err
	}

	if resp.TotalValue, err = money(totalValue); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (h GetDashboardQueryHandler) summaries(db *gorm.DB, where string, args map[string]any) ([]OrderSummary, error) {
	rows, err := db.Raw(orderSummarySelect+where, args).Rows()
	if err != nil {
		return nil, err
	}
	return scanOrderSummaries(rows)
}

func (h GetDashboardQueryHandler) supplierCounts(db *gorm.DB, stmt string, args map[string]any) ([]SupplierCount, error) {
	rows, err := db.Raw(stmt, args).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]SupplierCount, 0)
	for rows.Next() {
		var (
			c  SupplierCount
			id uuid.UUID
		)
		if err = rows.Scan(&id, &c.Name, &c.Count); err != nil {
			return nil, err
		}
		if c.ID, err = kernel.UUIDFromGoogle(id); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

func (h GetDashboardQueryHandler) supplierSpent(db *gorm.DB, args map[string]any) ([]SupplierSpent, error) {
	rows, err := db.Raw(`
		SELECT s.id, s.name, SUM(l.quantity * l.unit_price) AS spent
		FROM suppliers s
		JOIN orders o ON o.supplier_id = s.id AND o.owner_id = @owner
		JOIN order_line_items l ON l.order_id = o.id AND l.owner_id = @owner
		WHERE s.owner_id = @owner
		GROUP BY s.id, s.name
		HAVING SUM(l.quantity * l.unit_price) > 0
		ORDER BY spent DESC, s.name
		LIMIT @limit
	`, args).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]SupplierSpent, 0)
	for rows.Next() {
		var (
			s     SupplierSpent
			id    uuid.UUID
			spent decimal.Decimal
		)
		if err = rows.Scan(&id, &s.Name, &spent); err != nil {
			return nil, err
		}
		if s.ID, err = kernel.UUIDFromGoogle(id); err != nil {
			return nil, err
		}
		if s.Spent, err = money(spent); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

func (h GetDashboardQueryHandler) itemCounts(db *gorm.DB, args map[string]any) ([]ItemCount, error) {
	rows, err := db.Raw(`
		SELECT i.id, i.name, COUNT(l.id) AS n
		FROM items i
		JOIN order_line_items l ON l.item_id = i.id AND l.owner_id = @owner
		WHERE i.owner_id = @owner
		GROUP BY i.id, i.name
		ORDER BY n DESC, i.name
		LIMIT @limit
	`, args).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]ItemCount, 0)
	for rows.Next() {
		var (
			c  ItemCount
			id uuid.UUID
		)
		if err = rows.Scan(&id, &c.Name, &c.Count); err != nil {
			return nil, err
		}
		if c.ID, err = kernel.UUIDFromGoogle(id); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}
