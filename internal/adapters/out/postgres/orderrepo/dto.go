// Package orderrepo maps the order aggregate onto the orders and
// order_line_items tables.
package orderrepo

import (
	"time"

	"purchasing/internal/adapters/out/postgres/movementrepo"
	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// OrderDTO is the orders row. Line items and movements are removed with it.
type OrderDTO struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OwnerID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	SupplierID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Description      string          `gorm:"type:text;not null"`
	CreatedAt        time.Time       `gorm:"not null;index"`
	ExpectedDelivery *datatypes.Date `gorm:"index"`
	Status           string          `gorm:"type:varchar(20);not null;index"`
	Total            decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Version          int64           `gorm:"not null;default:0"`

	LineItems []LineItemDTO              `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Movements []movementrepo.MovementDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO is the order_line_items row.
type LineItemDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	OwnerID   uuid.UUID       `gorm:"type:uuid;not null"`
	ItemID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	FleetID   *uuid.UUID      `gorm:"type:uuid;index"`
	Status    string          `gorm:"type:varchar(20);not null"`
	Quantity  int             `gorm:"not null;check:chk_order_line_items_quantity,quantity >= 1"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	CreatedAt time.Time       `gorm:"not null"`
}

func (LineItemDTO) TableName() string {
	return "order_line_items"
}

func orderFromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:               o.ID().Bytes(),
		OwnerID:          o.Owner().Bytes(),
		SupplierID:       o.SupplierID().Bytes(),
		Description:      o.Description(),
		CreatedAt:        o.CreatedAt(),
		ExpectedDelivery: toDate(o.ExpectedDelivery()),
		Status:           o.Status().Code(),
		Total:            o.Total().Decimal(),
		Version:          o.Version(),
	}
}

func orderToDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	owner, err := kernel.UUIDFromGoogle(dto.OwnerID)
	if err != nil {
		return nil, err
	}
	supplier, err := kernel.UUIDFromGoogle(dto.SupplierID)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, owner, supplier, dto.Description, fromDate(dto.ExpectedDelivery),
		status, dto.CreatedAt, total, dto.Version)
}

func lineFromDomain(l *order.LineItem) LineItemDTO {
	var fleetID *uuid.UUID
	if id := l.FleetID(); id != nil {
		raw := id.Bytes()
		fleetID = &raw
	}

	return LineItemDTO{
		ID:        l.ID().Bytes(),
		OrderID:   l.OrderID().Bytes(),
		OwnerID:   l.Owner().Bytes(),
		ItemID:    l.ItemID().Bytes(),
		FleetID:   fleetID,
		Status:    l.Status().Code(),
		Quantity:  l.Quantity(),
		UnitPrice: l.UnitPrice().Decimal(),
	}
}

func lineToDomain(dto LineItemDTO) (*order.LineItem, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromGoogle(dto.OrderID)
	if err != nil {
		return nil, err
	}
	owner, err := kernel.UUIDFromGoogle(dto.OwnerID)
	if err != nil {
		return nil, err
	}
	itemID, err := kernel.UUIDFromGoogle(dto.ItemID)
	if err != nil {
		return nil, err
	}

	var fleetID *kernel.UUID
	if dto.FleetID != nil {
		fID, fleetErr := kernel.UUIDFromGoogle(*dto.FleetID)
		if fleetErr != nil {
			return nil, fleetErr
		}
		fleetID = &fID
	}

	status, err := order.ParseLineStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}

	return order.NewLineItem(id, orderID, owner, itemID, fleetID, status, dto.Quantity, price)
}

func toDate(t *time.Time) *datatypes.Date {
	if t == nil {
		return nil
	}
	d := datatypes.Date(*t)
	return &d
}

func fromDate(d *datatypes.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := time.Time(*d)
	return &t
}
