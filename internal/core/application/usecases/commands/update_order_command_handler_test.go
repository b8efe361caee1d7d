package commands_test

import (
	"errors"
	"testing"
	"time"

	"purchasing/internal/core/application/usecases/commands"
	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/movement"
	"purchasing/internal/core/domain/model/order"
	"purchasing/internal/core/ports"
	"purchasing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storedOrder(t *testing.T, owner kernel.UUID, status order.Status, version int64) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(kernel.NewUUID(), owner, kernel.NewUUID(), "Brake pads", nil, status,
		fixedNow.Add(-48*time.Hour), money(t, "35.50"), version)
	require.NoError(t, err)
	return o
}

func headerFor(o *order.Order, status string) commands.HeaderInput {
	return commands.HeaderInput{
		SupplierID:  o.SupplierID().String(),
		Description: o.Description(),
		Status:      status,
	}
}

func TestUpdateOrderCommandHandler_Handle_StatusChange(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	f.ownsEverything()

	actor := kernel.NewUUID()
	o := storedOrder(t, actor, order.Pending, 3)
	lineA := storedLine(t, o.ID(), actor, 3, "10.00")
	lineB := storedLine(t, o.ID(), actor, 1, "5.50")

	cmd, err := commands.NewUpdateOrderCommand(o.ID(), actor, headerFor(o, "in_progress"), nil, nil)
	require.NoError(t, err)

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		f.lines.On("ListByOrder", ctx, o.ID()).Return([]*order.LineItem{lineA, lineB}, nil).Once(),
		f.orders.On("Update", ctx, mock.MatchedBy(func(got *order.Order) bool {
			return got.Status() == order.InProgress
		})).Return(nil).Once(),
		f.lines.On("ListByOrder", ctx, o.ID()).Return([]*order.LineItem{lineA, lineB}, nil).Once(),
		f.orders.On("SaveTotal", ctx, mock.Anything).Return(nil).Once(),
		f.uow.On("SavePoint", ctx, mock.Anything).Return(nil).Once(),
		f.movements.On("Add", ctx, mock.MatchedBy(func(m *movement.Movement) bool {
			return m.Kind() == movement.StatusChange &&
				m.Previous() != nil && *m.Previous() == order.Pending &&
				m.Next() == order.InProgress &&
				m.Note() == "Status changed from Pending to In Progress"
		})).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)
	f.observer.On("WorkflowFinished", "update_order", commands.OutcomeDone).Once()
	f.notifier.On("Notify", ctx, ports.Notification{
		Recipient: actor, Level: ports.LevelSuccess, Message: commands.MsgOrderUpdated,
	}).Once()

	h := commands.NewUpdateOrderCommandHandler(f.deps())
	_, err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	f.lines.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_DataChangeAddsUpdatesAndDeletes(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	f.ownsEverything()

	actor := kernel.NewUUID()
	o := storedOrder(t, actor, order.InProgress, 0)
	keep := storedLine(t, o.ID(), actor, 3, "10.00")
	drop := storedLine(t, o.ID(), actor, 1, "5.50")
	added := storedLine(t, o.ID(), actor, 2, "7.25")

	lines := []commands.LineInput{
		{ID: keep.ID().String(), ItemID: keep.ItemID().String(), Quantity: 4, UnitPrice: "10.00"},
		{ID: drop.ID().String(), Delete: true},
		{ItemID: added.ItemID().String(), Quantity: 2, UnitPrice: "7.25"},
		{Delete: true},
	}
	cmd, err := commands.NewUpdateOrderCommand(o.ID(), actor, headerFor(o, "in_progress"), lines, nil)
	require.NoError(t, err)

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		f.lines.On("ListByOrder", ctx, o.ID()).Return([]*order.LineItem{keep, drop}, nil).Once(),
		f.orders.On("Update", ctx, o).Return(nil).Once(),
		f.lines.On("Add", ctx, mock.MatchedBy(func(l *order.LineItem) bool {
			return l.ItemID().IsEqual(added.ItemID()) && l.Quantity() == 2
		})).Return(nil).Once(),
		f.lines.On("Update", ctx, mock.MatchedBy(func(l *order.LineItem) bool {
			return l.ID().IsEqual(keep.ID()) && l.Quantity() == 4
		})).Return(nil).Once(),
		f.lines.On("Delete", ctx, drop.ID()).Return(nil).Once(),
		f.lines.On("ListByOrder", ctx, o.ID()).Return([]*order.LineItem{keep, added}, nil).Once(),
		f.orders.On("SaveTotal", ctx, mock.MatchedBy(func(got *order.Order) bool {
			return got.Total().String() == "54.50"
		})).Return(nil).Once(),
		f.uow.On("SavePoint", ctx, mock.Anything).Return(nil).Once(),
		f.movements.On("Add", ctx, mock.MatchedBy(func(m *movement.Movement) bool {
			return m.Kind() == movement.DataChange && m.Note() == "Order data updated. Total: 54.50"
		})).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)
	f.observer.On("WorkflowFinished", "update_order", commands.OutcomeDone).Once()
	f.notifier.On("Notify", ctx, mock.Anything).Once()

	h := commands.NewUpdateOrderCommandHandler(f.deps())
	_, err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	f.assertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_LineWriteRollsBack(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	f.ownsEverything()

	actor := kernel.NewUUID()
	o := storedOrder(t, actor, order.Pending, 2)
	line := storedLine(t, o.ID(), actor, 3, "10.00")
	lines := []commands.LineInput{
		{ID: line.ID().String(), ItemID: line.ItemID().String(), Quantity: 5, UnitPrice: "10.00"},
	}
	cmd, err := commands.NewUpdateOrderCommand(o.ID(), actor, headerFor(o, "in_progress"), lines, nil)
	require.NoError(t, err)

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		f.lines.On("ListByOrder", ctx, o.ID()).Return([]*order.LineItem{line}, nil).Once(),
		f.orders.On("Update", ctx, o).Return(nil).Once(),
		// the row vanished under a concurrent request
		f.lines.On("Update", ctx, mock.Anything).Return(errs.NewObjectNotFoundError("line_item", line.ID())).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)
	f.observer.On("WorkflowFinished", "update_order", commands.OutcomeFailed).Once()
	f.notifier.On("Notify", ctx, ports.Notification{
		Recipient: actor, Level: ports.LevelError, Message: commands.MsgOrderSaveFailed,
	}).Once()

	h := commands.NewUpdateOrderCommandHandler(f.deps())
	_, err = h.Handle(ctx, cmd)

	var persistenceErr *commands.PersistenceError
	require.ErrorAs(t, err, &persistenceErr)
	assert.Equal(t, commands.StageLineItems, persistenceErr.Stage)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	f.uow.AssertNotCalled(t, "SavePoint", mock.Anything, mock.Anything)
	f.movements.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	f.orders.AssertNotCalled(t, "SaveTotal", mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_TotalWriteRollsBack(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	f.ownsEverything()

	actor := kernel.NewUUID()
	o := storedOrder(t, actor, order.Pending, 0)
	line := storedLine(t, o.ID(), actor, 3, "10.00")
	cmd, err := commands.NewUpdateOrderCommand(o.ID(), actor, headerFor(o, "pending"), nil, nil)
	require.NoError(t, err)

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		f.lines.On("ListByOrder", ctx, o.ID()).Return([]*order.LineItem{line}, nil).Once(),
		f.orders.On("Update", ctx, o).Return(nil).Once(),
		f.lines.On("ListByOrder", ctx, o.ID()).Return([]*order.LineItem{line}, nil).Once(),
		f.orders.On("SaveTotal", ctx, mock.Anything).Return(errs.NewValueIsInvalidError("total")).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)
	f.observer.On("WorkflowFinished", "update_order", commands.OutcomeFailed).Once()
	f.notifier.On("Notify", ctx, ports.Notification{
		Recipient: actor, Level: ports.LevelError, Message: commands.MsgOrderSaveFailed,
	}).Once()

	h := commands.NewUpdateOrderCommandHandler(f.deps())
	_, err = h.Handle(ctx, cmd)

	var persistenceErr *commands.PersistenceError
	require.ErrorAs(t, err, &persistenceErr)
	assert.Equal(t, commands.StageRecomputing, persistenceErr.Stage)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	f.movements.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_AuditFailureStillCommits(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	f.ownsEverything()

	actor := kernel.NewUUID()
	o := storedOrder(t, actor, order.Pending, 1)
	line := storedLine(t, o.ID(), actor, 3, "10.00")
	cmd, err := commands.NewUpdateOrderCommand(o.ID(), actor, headerFor(o, "finalized"), nil, nil)
	require.NoError(t, err)

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		f.lines.On("ListByOrder", ctx, o.ID()).Return([]*order.LineItem{line}, nil).Once(),
		f.orders.On("Update", ctx, o).Return(nil).Once(),
		f.lines.On("ListByOrder", ctx, o.ID()).Return([]*order.LineItem{line}, nil).Once(),
		f.orders.On("SaveTotal", ctx, mock.Anything).Return(nil).Once(),
		f.uow.On("SavePoint", ctx, mock.Anything).Return(nil).Once(),
		f.movements.On("Add", ctx, mock.Anything).Return(errors.New("disk full")).Once(),
		f.uow.On("RollbackTo", ctx, mock.Anything).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)
	f.observer.On("AuditWriteFailed", "status_change").Once()
	f.observer.On("WorkflowFinished", "update_order", commands.OutcomeDone).Once()
	f.notifier.On("Notify", ctx, ports.Notification{
		Recipient: actor, Level: ports.LevelSuccess, Message: commands.MsgOrderUpdated,
	}).Once()
	f.notifier.On("Notify", ctx, ports.Notification{
		Recipient: actor, Level: ports.LevelWarning, Message: commands.MsgAuditNotRecorded,
	}).Once()

	h := commands.NewUpdateOrderCommandHandler(f.deps())
	id, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, id.IsEqual(o.ID()))
	f.assertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	f := newFixture()

	actor, id := kernel.NewUUID(), kernel.NewUUID()
	cmd, _ := commands.NewUpdateOrderCommand(id, actor, commands.HeaderInput{}, nil, nil)

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.orders.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("order", id.String())).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)
	f.observer.On("WorkflowFinished", "update_order", commands.OutcomeNotFound).Once()
	f.notifier.On("Notify", ctx, ports.Notification{
		Recipient: actor, Level: ports.LevelError, Message: commands.MsgOrderNotFound,
	}).Once()

	h := commands.NewUpdateOrderCommandHandler(f.deps())
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	f.assertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_NotOwner(t *testing.T) {
	ctx := t.Context()
	f := newFixture()

	o := storedOrder(t, kernel.NewUUID(), order.Pending, 0)
	intruder := kernel.NewUUID()
	cmd, _ := commands.NewUpdateOrderCommand(o.ID(), intruder, headerFor(o, "finalized"), nil, nil)

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)
	f.observer.On("WorkflowFinished", "update_order", commands.OutcomeDenied).Once()
	f.notifier.On("Notify", ctx, ports.Notification{
		Recipient: intruder, Level: ports.LevelError, Message: commands.MsgOrderForbidden,
	}).Once()

	h := commands.NewUpdateOrderCommandHandler(f.deps())
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrAccessDenied)
	assert.Equal(t, order.Pending, o.Status())
	f.orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_StaleVersion(t *testing.T) {
	ctx := t.Context()
	f := newFixture()

	actor := kernel.NewUUID()
	o := storedOrder(t, actor, order.Pending, 5)
	stale := int64(4)
	cmd, _ := commands.NewUpdateOrderCommand(o.ID(), actor, headerFor(o, "finalized"), nil, &stale)

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)
	f.observer.On("WorkflowFinished", "update_order", commands.OutcomeConflict).Once()
	f.notifier.On("Notify", ctx, mock.MatchedBy(func(n ports.Notification) bool {
		return n.Message == commands.MsgOrderConflict
	})).Once()

	h := commands.NewUpdateOrderCommandHandler(f.deps())
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	assert.Contains(t, err.Error(), "expected 4, stored 5")
	f.assertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_RemovingEveryLineIsRejected(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	f.ownsEverything()

	actor := kernel.NewUUID()
	o := storedOrder(t, actor, order.Pending, 0)
	only := storedLine(t, o.ID(), actor, 1, "5.50")
	lines := []commands.LineInput{{ID: only.ID().String(), Delete: true}}
	cmd, _ := commands.NewUpdateOrderCommand(o.ID(), actor, headerFor(o, "pending"), lines, nil)

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		f.lines.On("ListByOrder", ctx, o.ID()).Return([]*order.LineItem{only}, nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)
	f.observer.On("WorkflowFinished", "update_order", commands.OutcomeInvalid).Once()

	h := commands.NewUpdateOrderCommandHandler(f.deps())
	_, err := h.Handle(ctx, cmd)

	var invalid *commands.ValidationErrors
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, []string{"Please submit at least 1 item."}, invalid.NonField)
	f.lines.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_StatusIsRequired(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	f.ownsEverything()

	actor := kernel.NewUUID()
	o := storedOrder(t, actor, order.Pending, 0)
	cmd, _ := commands.NewUpdateOrderCommand(o.ID(), actor, headerFor(o, ""), nil, nil)

	f.uow.On("Begin", ctx).Return(nil).Once()
	f.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
	f.lines.On("ListByOrder", ctx, o.ID()).Return([]*order.LineItem{storedLine(t, o.ID(), actor, 1, "1.00")}, nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()
	f.observer.On("WorkflowFinished", "update_order", commands.OutcomeInvalid).Once()

	h := commands.NewUpdateOrderCommandHandler(f.deps())
	_, err := h.Handle(ctx, cmd)

	var invalid *commands.ValidationErrors
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "This field is required.", invalid.Header["status"])
	f.assertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	f := newFixture()

	actor := kernel.NewUUID()
	o := storedOrder(t, actor, order.Finalized, 0)
	cmd, err := commands.NewDeleteOrderCommand(o.ID(), actor)
	require.NoError(t, err)

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		f.orders.On("Delete", ctx, o.ID()).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)
	f.observer.On("WorkflowFinished", "delete_order", commands.OutcomeDone).Once()
	f.notifier.On("Notify", ctx, ports.Notification{
		Recipient: actor, Level: ports.LevelSuccess, Message: commands.MsgOrderDeleted,
	}).Once()

	h := commands.NewDeleteOrderCommandHandler(f.deps())
	require.NoError(t, h.Handle(ctx, cmd))
	f.assertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_NotOwner(t *testing.T) {
	ctx := t.Context()
	f := newFixture()

	o := storedOrder(t, kernel.NewUUID(), order.Pending, 0)
	intruder := kernel.NewUUID()
	cmd, _ := commands.NewDeleteOrderCommand(o.ID(), intruder)

	f.uow.On("Begin", ctx).Return(nil).Once()
	f.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()
	f.observer.On("WorkflowFinished", "delete_order", commands.OutcomeDenied).Once()
	f.notifier.On("Notify", ctx, mock.Anything).Once()

	h := commands.NewDeleteOrderCommandHandler(f.deps())
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrAccessDenied)
	f.orders.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	f.assertExpectations(t)
}
