package services

import (
	"errors"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/order"
	"purchasing/internal/pkg/errs"
)

// ErrForeignLineItem is returned when a line item of another order is passed in.
var ErrForeignLineItem = errors.New("line item belongs to another order")

// OrderTotalizer computes Σ(quantity × unit price) over the line items of one order.
//
// Every line counts regardless of its status, Rejected included. The input must
// be the set read back from storage after all line writes of the transaction,
// never the request payload.
//
// Example usage:
//
//	totalizer := services.NewOrderTotalizer()
//	lines, _ := uow.LineItemRepository().ListByOrder(ctx, o.ID())
//	total, err := totalizer.Total(o.ID(), lines)
//	if err != nil {
//	    return err
//	}
//	_ = o.SetTotal(total)
type OrderTotalizer struct{}

func NewOrderTotalizer() OrderTotalizer {
	return OrderTotalizer{}
}

// Total is deterministic and idempotent: the same lines always give the same value.
func (OrderTotalizer) Total(orderID kernel.UUID, lines []*order.LineItem) (kernel.Money, error) {
	total := kernel.ZeroMoney()
	for _, l := range lines {
		if err := l.Validate(); err != nil {
			return kernel.Money{}, err
		}
		if !l.OrderID().IsEqual(orderID) {
			return kernel.Money{}, errs.NewValueIsInvalidErrorWithCause("line_item", ErrForeignLineItem)
		}
		total = total.Add(l.Subtotal())
	}
	return total, nil
}
