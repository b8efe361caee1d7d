package movementrepo

import (
	"context"

	"purchasing/internal/adapters/out/postgres/pgerr"
	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/movement"

	"gorm.io/gorm"
)

// GormMovementRepository implements ports.MovementRepository using GORM.
type GormMovementRepository struct {
	db *gorm.DB
}

func NewGormMovementRepository(db *gorm.DB) *GormMovementRepository {
	return &GormMovementRepository{db: db}
}

func (r *GormMovementRepository) Add(ctx context.Context, m *movement.Movement) error {
	if err := m.Validate(); err != nil {
		return err
	}

	dto := fromDomain(m)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Classify(err, "movement", m.ID().String())
	}
	return nil
}

// ListByOrder returns the audit trail of an order, oldest first.
func (r *GormMovementRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*movement.Movement, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []MovementDTO
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("created_at, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	movements := make([]*movement.Movement, 0, len(dtos))
	for _, dto := range dtos {
		m, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		movements = append(movements, m)
	}
	return movements, nil
}
