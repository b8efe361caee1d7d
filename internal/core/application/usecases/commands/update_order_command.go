package commands

import (
	"errors"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand carries an edit of an existing order. Lines not mentioned
// in the submission are kept as they are.
//
// expectedVersion is optional. When set, the edit is rejected with
// errs.VersionIsInvalidError if the stored order moved on in the meantime;
// when nil the last write wins.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	actor           kernel.UUID
	header          HeaderInput
	lines           []LineInput
	expectedVersion *int64

	guard guard.ConstructorGuard
}

func NewUpdateOrderCommand(
	orderID, actor kernel.UUID,
	header HeaderInput,
	lines []LineInput,
	expectedVersion *int64,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		header:          header,
		lines:           lines,
		expectedVersion: expectedVersion,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		actor.Validate(),
	); err != nil {
		return UpdateOrderCommand{}, err
	}
	cmd.orderID = orderID
	cmd.actor = actor

	return cmd, nil
}

func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) OrderID() kernel.UUID { return c.orderID }
func (c UpdateOrderCommand) Actor() kernel.UUID { return c.actor }
func (c UpdateOrderCommand) Header() HeaderInput { return c.header }
func (c UpdateOrderCommand) Lines() []LineInput { return c.lines }
func (c UpdateOrderCommand) ExpectedVersion() *int64 { return c.expectedVersion }
