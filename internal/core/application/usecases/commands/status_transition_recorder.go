package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/movement"
	"purchasing/internal/core/domain/model/order"
)

const auditSavePoint = "status_movement"

// StatusTransitionRecorder appends the movement of a create or an edit.
//
// The write runs inside a savepoint of the caller's transaction. When it fails
// the savepoint is rolled back, the failure is logged and counted, and
// ErrAuditWrite is returned so the caller can still commit the order change.
type StatusTransitionRecorder struct {
	observer WorkflowObserver
	logger   *slog.Logger
	now      func() time.Time
}

func NewStatusTransitionRecorder(observer WorkflowObserver, logger *slog.Logger, now func() time.Time) StatusTransitionRecorder {
	if observer == nil {
		observer = nopObserver{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	if now == nil {
		now = time.Now
	}
	return StatusTransitionRecorder{
		observer: observer,
		logger:   logger.With("component", "StatusTransitionRecorder"),
		now:      now,
	}
}

// RecordCreation writes the Creation movement of a new order.
func (r StatusTransitionRecorder) RecordCreation(
	ctx context.Context, uow MovementUoW, o *order.Order, itemCount int, actor kernel.UUID,
) (*movement.Movement, error) {
	m, err := movement.NewCreation(kernel.NewUUID(), o, itemCount, actor, r.now())
	if err != nil {
		return nil, err
	}
	return m, r.write(ctx, uow, m)
}

// RecordEdit writes a StatusChange or DataChange movement. before must be the
// status read prior to applying the edit.
func (r StatusTransitionRecorder) RecordEdit(
	ctx context.Context, uow MovementUoW, o *order.Order, before order.Status, actor kernel.UUID,
) (*movement.Movement, error) {
	m, err := movement.NewEdit(kernel.NewUUID(), o, before, actor, r.now())
	if err != nil {
		return nil, err
	}
	return m, r.write(ctx, uow, m)
}

func (r StatusTransitionRecorder) write(ctx context.Context, uow MovementUoW, m *movement.Movement) error {
	if err := uow.SavePoint(ctx, auditSavePoint); err != nil {
		return r.fail(ctx, m, err)
	}

	writeErr := uow.MovementRepository().Add(ctx, m)
	if writeErr == nil {
		return nil
	}

	if err := uow.RollbackTo(ctx, auditSavePoint); err != nil {
		// The transaction itself is unusable now; the order change cannot be kept.
		return newPersistenceError(StageAudit, errors.Join(writeErr, err))
	}
	return r.fail(ctx, m, writeErr)
}

func (r StatusTransitionRecorder) fail(ctx context.Context, m *movement.Movement, cause error) error {
	r.observer.AuditWriteFailed(m.Kind().Code())
	r.logger.WarnContext(ctx, "failed to record status movement",
		"order_id", m.OrderID().String(),
		"kind", m.Kind().String(),
		"error", cause,
	)
	return fmt.Errorf("%w: %w", ErrAuditWrite, cause)
}
