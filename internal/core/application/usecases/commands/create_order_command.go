package commands

import (
	"errors"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand carries a raw order submission. Field-level checks need
// the catalog, so they run in the handler through OrderValidator.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), actor,
//	    HeaderInput{SupplierID: s, Description: "Brake pads"},
//	    []LineInput{{ItemID: a, Quantity: 3, UnitPrice: "10.00"}})
//	if err != nil {
//	    return err
//	}
//	id, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   kernel.UUID
	header  HeaderInput
	lines   []LineInput

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(orderID, actor kernel.UUID, header HeaderInput, lines []LineInput) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		header: header,
		lines:  lines,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID { return c.orderID }
func (c CreateOrderCommand) Actor() kernel.UUID { return c.actor }
func (c CreateOrderCommand) Header() HeaderInput { return c.header }
func (c CreateOrderCommand) Lines() []LineInput { return c.lines }

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setActor(actor kernel.UUID) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
