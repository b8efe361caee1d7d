package orderrepo

import (
	"context"

	"purchasing/internal/adapters/out/postgres/pgerr"
	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/order"
	"purchasing/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormLineItemRepository implements ports.LineItemRepository using GORM.
type GormLineItemRepository struct {
	db *gorm.DB
}

func NewGormLineItemRepository(db *gorm.DB) *GormLineItemRepository {
	return &GormLineItemRepository{db: db}
}

func (r *GormLineItemRepository) Add(ctx context.Context, line *order.LineItem) error {
	if err := line.Validate(); err != nil {
		return err
	}

	dto := lineFromDomain(line)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Classify(err, "line_item", line.ID().String())
	}
	return nil
}

// Update rewrites the editable columns. The parent order and owner never change.
func (r *GormLineItemRepository) Update(ctx context.Context, line *order.LineItem) error {
	if err := line.Validate(); err != nil {
		return err
	}

	dto := lineFromDomain(line)
	result := r.db.WithContext(ctx).Model(&LineItemDTO{}).
		Where("id = ? AND order_id = ?", dto.ID, dto.OrderID).
		Updates(map[string]any{
			"item_id":    dto.ItemID,
			"fleet_id":   dto.FleetID,
			"status":     dto.Status,
			"quantity":   dto.Quantity,
			"unit_price": dto.UnitPrice,
		})
	if result.Error != nil {
		return pgerr.Classify(result.Error, "line_item", line.ID().String())
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("line_item", line.ID().String())
	}
	return nil
}

func (r *GormLineItemRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&LineItemDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("line_item", id.String())
	}
	return nil
}

// ListByOrder returns the line items in insertion order.
func (r *GormLineItemRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*order.LineItem, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []LineItemDTO
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("created_at, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	lines := make([]*order.LineItem, 0, len(dtos))
	for _, dto := range dtos {
		l, err := lineToDomain(dto)
		if err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, nil
}
