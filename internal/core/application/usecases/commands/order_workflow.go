package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/order"
	"purchasing/internal/core/domain/services"
	"purchasing/internal/core/ports"
	"purchasing/internal/pkg/errs"
)

// Notification texts shown to the actor.
const (
	MsgOrderCreated     = "Order created successfully."
	MsgOrderUpdated     = "Order updated successfully."
	MsgOrderDeleted     = "Order deleted successfully."
	MsgOrderNotFound    = "Order not found."
	MsgOrderForbidden   = "You do not have permission to change this order."
	MsgOrderConflict    = "The order was changed by another request. Reload it and try again."
	MsgOrderSaveFailed  = "The order could not be saved. Please try again."
	MsgAuditNotRecorded = "The order was saved, but its history entry could not be recorded."
)

// WorkflowDeps are the collaborators shared by the order command handlers.
type WorkflowDeps struct {
	UoWFactory OrderUoWFactory
	Notifier   ports.Notifier
	Observer   WorkflowObserver
	Logger     *slog.Logger

	// Clock defaults to time.Now.
	Clock func() time.Time
}

// orderWorkflow holds the steps create and update have in common.
type orderWorkflow struct {
	uowFactory OrderUoWFactory
	validator  OrderValidator
	totalizer  services.OrderTotalizer
	recorder   StatusTransitionRecorder
	notifier   ports.Notifier
	observer   WorkflowObserver
	logger     *slog.Logger
	now        func() time.Time
}

func newOrderWorkflow(deps WorkflowDeps, component string) orderWorkflow {
	w := orderWorkflow{
		uowFactory: deps.UoWFactory,
		validator:  NewOrderValidator(),
		totalizer:  services.NewOrderTotalizer(),
		notifier:   deps.Notifier,
		observer:   deps.Observer,
		logger:     deps.Logger,
		now:        deps.Clock,
	}
	if w.observer == nil {
		w.observer = nopObserver{}
	}
	if w.logger == nil {
		w.logger = slog.Default()
	}
	if w.now == nil {
		w.now = time.Now
	}
	w.recorder = NewStatusTransitionRecorder(w.observer, w.logger, w.now)
	w.logger = w.logger.With("component", component)
	return w
}

// applyLines writes adds, then updates, then deletes. existing are the lines of
// the order as read before the edit.
func (w orderWorkflow) applyLines(
	ctx context.Context,
	uow OrderUoW,
	o *order.Order,
	actor kernel.UUID,
	sub Submission,
	existing []*order.LineItem,
) error {
	repo := uow.LineItemRepository()

	for _, c := range sub.Adds {
		line, err := order.NewLineItem(kernel.NewUUID(), o.ID(), actor, c.ItemID, c.FleetID, c.Status, c.Quantity, c.UnitPrice)
		if err != nil {
			return err
		}
		if err = repo.Add(ctx, line); err != nil {
			return err
		}
	}

	byID := make(map[kernel.UUID]*order.LineItem, len(existing))
	for _, l := range existing {
		byID[l.ID()] = l
	}
	for _, c := range sub.Updates {
		line, ok := byID[c.ID]
		if !ok {
			return errs.NewObjectNotFoundError("line_item", c.ID.String())
		}
		if err := line.Change(c.ItemID, c.FleetID, c.Status, c.Quantity, c.UnitPrice); err != nil {
			return err
		}
		if err := repo.Update(ctx, line); err != nil {
			return err
		}
	}

	for _, id := range sub.Deletes {
		if err := repo.Delete(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// recomputeTotal re-reads the persisted lines inside the transaction, so every
// write above is visible, and stores the derived total on the header.
func (w orderWorkflow) recomputeTotal(ctx context.Context, uow OrderUoW, o *order.Order) (int, error) {
	lines, err := uow.LineItemRepository().ListByOrder(ctx, o.ID())
	if err != nil {
		return 0, err
	}
	total, err := w.totalizer.Total(o.ID(), lines)
	if err != nil {
		return 0, err
	}
	if err = o.SetTotal(total); err != nil {
		return 0, err
	}
	if err = uow.OrderRepository().SaveTotal(ctx, o); err != nil {
		return 0, err
	}
	return len(lines), nil
}

// finish commits and emits the success notification, plus a warning when the
// movement could not be written.
func (w orderWorkflow) finish(
	ctx context.Context, uow OrderUoW, operation string, actor kernel.UUID, msg string, auditErr error,
) error {
	if err := uow.Commit(ctx); err != nil {
		return w.fail(ctx, operation, actor, newPersistenceError(StageCommit, err))
	}
	w.observer.WorkflowFinished(operation, OutcomeDone)
	w.notify(ctx, actor, ports.LevelSuccess, msg)
	if auditErr != nil {
		w.notify(ctx, actor, ports.LevelWarning, MsgAuditNotRecorded)
	}
	return nil
}

// fail classifies err, reports it and returns it unchanged.
func (w orderWorkflow) fail(ctx context.Context, operation string, actor kernel.UUID, err error) error {
	var (
		validationErrs *ValidationErrors
		persistenceErr *PersistenceError
	)

	// A store failure is reported as such whatever its cause looks like.
	switch {
	case errors.As(err, &persistenceErr):
		w.observer.WorkflowFinished(operation, OutcomeFailed)
		w.logger.ErrorContext(ctx, "order workflow failed",
			"operation", operation, "stage", persistenceErr.Stage, "error", persistenceErr.Cause)
		w.notify(ctx, actor, ports.LevelError, MsgOrderSaveFailed)
	case errors.As(err, &validationErrs):
		w.observer.WorkflowFinished(operation, OutcomeInvalid)
	case errors.Is(err, errs.ErrObjectNotFound):
		w.observer.WorkflowFinished(operation, OutcomeNotFound)
		w.notify(ctx, actor, ports.LevelError, MsgOrderNotFound)
	case errors.Is(err, errs.ErrAccessDenied):
		w.observer.WorkflowFinished(operation, OutcomeDenied)
		w.notify(ctx, actor, ports.LevelError, MsgOrderForbidden)
	case errors.Is(err, errs.ErrVersionIsInvalid):
		w.observer.WorkflowFinished(operation, OutcomeConflict)
		w.notify(ctx, actor, ports.LevelError, MsgOrderConflict)
	default:
		w.observer.WorkflowFinished(operation, OutcomeFailed)
		w.logger.ErrorContext(ctx, "order workflow failed", "operation", operation, "error", err)
		w.notify(ctx, actor, ports.LevelError, MsgOrderSaveFailed)
	}
	return err
}

func (w orderWorkflow) notify(ctx context.Context, actor kernel.UUID, level ports.Level, msg string) {
	if w.notifier == nil {
		return
	}
	w.notifier.Notify(ctx, ports.Notification{Recipient: actor, Level: level, Message: msg})
}

// loadOwned reads the order and checks that actor may change it.
func loadOwned(ctx context.Context, uow OrderUoW, id, actor kernel.UUID) (*order.Order, error) {
	o, err := uow.OrderRepository().Get(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, err
		}
		return nil, newPersistenceError(StageLoading, err)
	}
	if !o.IsOwnedBy(actor) {
		return nil, errs.NewAccessDeniedError("order", id.String())
	}
	return o, nil
}
