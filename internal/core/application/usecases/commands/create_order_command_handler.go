package commands

import (
	"context"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/order"
)

const operationCreate = "create_order"

// CreateOrderCommandHandler runs the create workflow in one transaction:
// validate, persist the header and its lines, recompute the total from the
// stored lines, record the Creation movement, commit.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(WorkflowDeps{UoWFactory: f, Notifier: n, Logger: l})
//	id, err := handler.Handle(ctx, cmd)
//	var invalid *ValidationErrors
//	if errors.As(err, &invalid) {
//	    // redisplay with invalid.Header / invalid.Items
//	}
type CreateOrderCommandHandler struct {
	workflow orderWorkflow
}

func NewCreateOrderCommandHandler(deps WorkflowDeps) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{workflow: newOrderWorkflow(deps, "CreateOrderCommandHandler")}
}

// Handle returns the new order id, a *ValidationErrors, or a *PersistenceError.
// A movement that could not be written does not fail the call.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}
	w := h.workflow

	uow := w.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, w.fail(ctx, operationCreate, cmd.Actor(), newPersistenceError(StageBegin, err))
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	sub, err := w.validator.Validate(ctx, uow.CatalogRepository(), cmd.Actor(), cmd.Header(), cmd.Lines(), nil, false)
	if err != nil {
		return kernel.UUID{}, w.fail(ctx, operationCreate, cmd.Actor(), err)
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.Actor(), sub.SupplierID, sub.Description,
		sub.ExpectedDelivery, sub.Status, w.now())
	if err != nil {
		return kernel.UUID{}, w.fail(ctx, operationCreate, cmd.Actor(), err)
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return kernel.UUID{}, w.fail(ctx, operationCreate, cmd.Actor(), newPersistenceError(StageHeader, err))
	}

	if err = w.applyLines(ctx, uow, o, cmd.Actor(), sub, nil); err != nil {
		return kernel.UUID{}, w.fail(ctx, operationCreate, cmd.Actor(), newPersistenceError(StageLineItems, err))
	}

	itemCount, err := w.recomputeTotal(ctx, uow, o)
	if err != nil {
		return kernel.UUID{}, w.fail(ctx, operationCreate, cmd.Actor(), newPersistenceError(StageRecomputing, err))
	}

	_, auditErr := w.recorder.RecordCreation(ctx, uow, o, itemCount, cmd.Actor())
	if auditErr != nil && !isAuditWrite(auditErr) {
		return kernel.UUID{}, w.fail(ctx, operationCreate, cmd.Actor(), auditErr)
	}

	if err = w.finish(ctx, uow, operationCreate, cmd.Actor(), MsgOrderCreated, auditErr); err != nil {
		return kernel.UUID{}, err
	}
	return o.ID(), nil
}
