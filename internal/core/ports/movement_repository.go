package ports

import (
	"context"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/movement"
)

// MovementRepository appends audit entries. There is no update or delete.
type MovementRepository interface {
	Add(ctx context.Context, m *movement.Movement) error

	// ListByOrder returns the movements of an order, oldest first.
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*movement.Movement, error)
}
