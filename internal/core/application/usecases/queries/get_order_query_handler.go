package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/movement"
	"purchasing/internal/core/domain/model/order"
	"purchasing/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads an order detail with three queries: header,
// lines, movements.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError when the order does not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	resp, err := h.header(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}
	if resp.Items, err = h.lines(ctx, query.OrderID()); err != nil {
		return nil, err
	}
	if resp.Movements, err = h.movements(ctx, query.OrderID()); err != nil {
		return nil, err
	}
	return resp, nil
}

func (h GetOrderQueryHandler) header(ctx context.Context, orderID kernel.UUID) (*GetOrderQueryResponse, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.owner_id,
			o.supplier_id,
			s.name,
			o.description,
			o.created_at,
			o.expected_delivery,
			o.status,
			o.total,
			o.version
		FROM orders o
		JOIN suppliers s ON s.id = o.supplier_id
		WHERE o.id = ?
	`, orderID.Bytes()).Row()

	var (
		id, owner, supplier uuid.UUID
		supplierName        string
		description         string
		createdAt           time.Time
		expectedDelivery    *time.Time
		status              string
		total               decimal.Decimal
		version             int64
	)
	err := row.Scan(&id, &owner, &supplier, &supplierName, &description, &createdAt,
		&expectedDelivery, &status, &total, &version)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("order", orderID.String())
		}
		return nil, err
	}

	resp := &GetOrderQueryResponse{
		SupplierName:     supplierName,
		Description:      description,
		CreatedAt:        createdAt,
		ExpectedDelivery: dateOnly(expectedDelivery),
		Version:          version,
	}
	if resp.ID, err = kernel.UUIDFromGoogle(id); err != nil {
		return nil, err
	}
	if resp.Owner, err = kernel.UUIDFromGoogle(owner); err != nil {
		return nil, err
	}
	if resp.SupplierID, err = kernel.UUIDFromGoogle(supplier); err != nil {
		return nil, err
	}
	if resp.Status, err = order.ParseStatus(status); err != nil {
		return nil, err
	}
	if resp.Total, err = money(total); err != nil {
		return nil, err
	}
	return resp, nil
}

func (h GetOrderQueryHandler) lines(ctx context.Context, orderID kernel.UUID) ([]OrderLine, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			l.id,
			l.item_id,
			i.name,
			l.fleet_id,
			f.prefix,
			l.status,
			l.quantity,
			l.unit_price
		FROM order_line_items l
		JOIN items i ON i.id = l.item_id
		LEFT JOIN fleets f ON f.id = l.fleet_id
		WHERE l.order_id = ?
		ORDER BY l.created_at, l.id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]OrderLine, 0)
	for rows.Next() {
		var (
			line       OrderLine
			id, itemID uuid.UUID
			fleetID    uuid.NullUUID
			status     string
			unitPrice  decimal.Decimal
		)
		if err = rows.Scan(&id, &itemID, &line.ItemName, &fleetID, &line.FleetPrefix,
			&status, &line.Quantity, &unitPrice); err != nil {
			return nil, err
		}

		if line.ID, err = kernel.UUIDFromGoogle(id); err != nil {
			return nil, err
		}
		if line.ItemID, err = kernel.UUIDFromGoogle(itemID); err != nil {
			return nil, err
		}
		if fleetID.Valid {
			fid, fleetErr := kernel.UUIDFromGoogle(fleetID.UUID)
			if fleetErr != nil {
				return nil, fleetErr
			}
			line.FleetID = &fid
		}
		if line.Status, err = order.ParseLineStatus(status); err != nil {
			return nil, err
		}
		if line.UnitPrice, err = money(unitPrice); err != nil {
			return nil, err
		}
		line.Subtotal = line.UnitPrice.MulInt(line.Quantity)
		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func (h GetOrderQueryHandler) movements(ctx context.Context, orderID kernel.UUID) ([]OrderMovement, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			m.id,
			m.kind,
			m.previous_status,
			m.next_status,
			m.note,
			m.actor_id,
			u.username,
			m.created_at
		FROM order_movements m
		LEFT JOIN users u ON u.id = m.actor_id
		WHERE m.order_id = ?
		ORDER BY m.created_at, m.id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movements := make([]OrderMovement, 0)
	for rows.Next() {
		var (
			m          OrderMovement
			id, actor  uuid.UUID
			kind, next string
			previous   *string
		)
		if err = rows.Scan(&id, &kind, &previous, &next, &m.Note, &actor, &m.ActorName, &m.At); err != nil {
			return nil, err
		}

		if m.ID, err = kernel.UUIDFromGoogle(id); err != nil {
			return nil, err
		}
		if m.Actor, err = kernel.UUIDFromGoogle(actor); err != nil {
			return nil, err
		}
		if m.Kind, err = movement.ParseKind(kind); err != nil {
			return nil, err
		}
		if previous != nil {
			p, parseErr := order.ParseStatus(*previous)
			if parseErr != nil {
				return nil, parseErr
			}
			m.Previous = &p
		}
		if m.Next, err = order.ParseStatus(next); err != nil {
			return nil, err
		}
		movements = append(movements, m)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return movements, nil
}
