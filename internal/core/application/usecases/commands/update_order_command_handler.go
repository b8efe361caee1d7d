package commands

import (
	"context"
	"errors"
	"fmt"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/pkg/errs"
)

const operationUpdate = "update_order"

// UpdateOrderCommandHandler runs the edit workflow in one transaction.
//
// The status is captured right after loading the order and before anything
// is changed, so the movement compares the stored status with the submitted one.
type UpdateOrderCommandHandler struct {
	workflow orderWorkflow
}

func NewUpdateOrderCommandHandler(deps WorkflowDeps) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{workflow: newOrderWorkflow(deps, "UpdateOrderCommandHandler")}
}

// Handle returns the order id, or one of *ValidationErrors, errs.ObjectNotFoundError,
// errs.AccessDeniedError, errs.VersionIsInvalidError, *PersistenceError.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}
	w := h.workflow
	actor := cmd.Actor()

	uow := w.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, w.fail(ctx, operationUpdate, actor, newPersistenceError(StageBegin, err))
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := loadOwned(ctx, uow, cmd.OrderID(), actor)
	if err != nil {
		return kernel.UUID{}, w.fail(ctx, operationUpdate, actor, err)
	}

	if v := cmd.ExpectedVersion(); v != nil && *v != o.Version() {
		return kernel.UUID{}, w.fail(ctx, operationUpdate, actor, errs.NewVersionIsInvalidErrorWithCause(
			"version", fmt.Errorf("expected %d, stored %d", *v, o.Version())))
	}

	statusBefore := o.Status()

	existing, err := uow.LineItemRepository().ListByOrder(ctx, o.ID())
	if err != nil {
		return kernel.UUID{}, w.fail(ctx, operationUpdate, actor, newPersistenceError(StageLoading, err))
	}

	sub, err := w.validator.Validate(ctx, uow.CatalogRepository(), actor, cmd.Header(), cmd.Lines(), existing, true)
	if err != nil {
		return kernel.UUID{}, w.fail(ctx, operationUpdate, actor, err)
	}

	if err = o.Edit(sub.SupplierID, sub.Description, sub.ExpectedDelivery, sub.Status); err != nil {
		return kernel.UUID{}, w.fail(ctx, operationUpdate, actor, err)
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		if !errors.Is(err, errs.ErrVersionIsInvalid) {
			err = newPersistenceError(StageHeader, err)
		}
		return kernel.UUID{}, w.fail(ctx, operationUpdate, actor, err)
	}

	if err = w.applyLines(ctx, uow, o, actor, sub, existing); err != nil {
		return kernel.UUID{}, w.fail(ctx, operationUpdate, actor, newPersistenceError(StageLineItems, err))
	}

	if _, err = w.recomputeTotal(ctx, uow, o); err != nil {
		return kernel.UUID{}, w.fail(ctx, operationUpdate, actor, newPersistenceError(StageRecomputing, err))
	}

	_, auditErr := w.recorder.RecordEdit(ctx, uow, o, statusBefore, actor)
	if auditErr != nil && !isAuditWrite(auditErr) {
		return kernel.UUID{}, w.fail(ctx, operationUpdate, actor, auditErr)
	}

	if err = w.finish(ctx, uow, operationUpdate, actor, MsgOrderUpdated, auditErr); err != nil {
		return kernel.UUID{}, err
	}
	return o.ID(), nil
}
