package commands

import (
	"context"
)

const operationDelete = "delete_order"

// DeleteOrderCommandHandler deletes an order owned by the actor.
type DeleteOrderCommandHandler struct {
	workflow orderWorkflow
}

func NewDeleteOrderCommandHandler(deps WorkflowDeps) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{workflow: newOrderWorkflow(deps, "DeleteOrderCommandHandler")}
}

func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	w := h.workflow

	uow := w.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return w.fail(ctx, operationDelete, cmd.Actor(), newPersistenceError(StageBegin, err))
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := loadOwned(ctx, uow, cmd.OrderID(), cmd.Actor())
	if err != nil {
		return w.fail(ctx, operationDelete, cmd.Actor(), err)
	}

	if err = uow.OrderRepository().Delete(ctx, o.ID()); err != nil {
		return w.fail(ctx, operationDelete, cmd.Actor(), newPersistenceError(StageDeleting, err))
	}

	return w.finish(ctx, uow, operationDelete, cmd.Actor(), MsgOrderDeleted, nil)
}
