// Package movementrepo persists the append-only order_movements table.
package movementrepo

import (
	"time"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/movement"
	"purchasing/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// MovementDTO is the order_movements row. The order foreign key is declared
// on orderrepo.OrderDTO.
type MovementDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Kind           string    `gorm:"type:varchar(20);not null"`
	PreviousStatus *string   `gorm:"type:varchar(20)"`
	NextStatus     string    `gorm:"type:varchar(20);not null"`
	Note           string    `gorm:"type:text;not null"`
	ActorID        uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt      time.Time `gorm:"not null;index"`
}

func (MovementDTO) TableName() string {
	return "order_movements"
}

func fromDomain(m *movement.Movement) MovementDTO {
	var previous *string
	if p := m.Previous(); p != nil {
		code := p.Code()
		previous = &code
	}

	return MovementDTO{
		ID:             m.ID().Bytes(),
		OrderID:        m.OrderID().Bytes(),
		Kind:           m.Kind().Code(),
		PreviousStatus: previous,
		NextStatus:     m.Next().Code(),
		Note:           m.Note(),
		ActorID:        m.Actor().Bytes(),
		CreatedAt:      m.At(),
	}
}

func toDomain(dto MovementDTO) (*movement.Movement, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromGoogle(dto.OrderID)
	if err != nil {
		return nil, err
	}
	actor, err := kernel.UUIDFromGoogle(dto.ActorID)
	if err != nil {
		return nil, err
	}
	kind, err := movement.ParseKind(dto.Kind)
	if err != nil {
		return nil, err
	}

	var previous *order.Status
	if dto.PreviousStatus != nil {
		p, parseErr := order.ParseStatus(*dto.PreviousStatus)
		if parseErr != nil {
			return nil, parseErr
		}
		previous = &p
	}

	next, err := order.ParseStatus(dto.NextStatus)
	if err != nil {
		return nil, err
	}

	return movement.Restore(id, orderID, kind, previous, next, dto.Note, actor, dto.CreatedAt)
}
