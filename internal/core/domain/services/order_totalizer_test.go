package services_test

import (
	"testing"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/order"
	"purchasing/internal/core/domain/services"
	"purchasing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(t *testing.T, orderID kernel.UUID, status order.LineStatus, qty int, price string) *order.LineItem {
	t.Helper()
	p, err := kernel.MoneyFromString(price)
	require.NoError(t, err)
	l, err := order.NewLineItem(kernel.NewUUID(), orderID, kernel.NewUUID(), kernel.NewUUID(), nil, status, qty, p)
	require.NoError(t, err)
	return l
}

func TestOrderTotalizer_Total(t *testing.T) {
	totalizer := services.NewOrderTotalizer()
	orderID := kernel.NewUUID()

	t.Run("sums quantity times price exactly", func(t *testing.T) {
		lines := []*order.LineItem{
			line(t, orderID, order.LinePending, 3, "10.00"),
			line(t, orderID, order.LinePending, 1, "5.50"),
		}

		total, err := totalizer.Total(orderID, lines)

		require.NoError(t, err)
		assert.Equal(t, "35.50", total.String())
	})

	t.Run("is idempotent", func(t *testing.T) {
		lines := []*order.LineItem{
			line(t, orderID, order.LineApproved, 7, "0.10"),
			line(t, orderID, order.LineDelivered, 3, "33.33"),
		}

		first, err := totalizer.Total(orderID, lines)
		require.NoError(t, err)
		second, err := totalizer.Total(orderID, lines)
		require.NoError(t, err)

		assert.True(t, first.IsEqual(second))
		assert.Equal(t, "100.69", first.String())
	})

	t.Run("rejected lines still count", func(t *testing.T) {
		lines := []*order.LineItem{
			line(t, orderID, order.LineRejected, 2, "1.25"),
		}

		total, err := totalizer.Total(orderID, lines)

		require.NoError(t, err)
		assert.Equal(t, "2.50", total.String())
	})

	t.Run("empty set is zero", func(t *testing.T) {
		total, err := totalizer.Total(orderID, nil)

		require.NoError(t, err)
		assert.Equal(t, "0.00", total.String())
	})

	t.Run("line of another order is rejected", func(t *testing.T) {
		_, err := totalizer.Total(orderID, []*order.LineItem{line(t, kernel.NewUUID(), order.LinePending, 1, "1.00")})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), services.ErrForeignLineItem.Error())
	})
}
