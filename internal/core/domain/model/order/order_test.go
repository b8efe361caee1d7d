package order_test

import (
	"testing"
	"time"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/order"
	"purchasing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var createdAt = time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)

func newOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"Brake pads", nil, order.Pending, createdAt)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	id, owner, supplier := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	delivery := time.Date(2025, 3, 20, 17, 45, 0, 0, time.UTC)

	t.Run("should create valid order", func(t *testing.T) {
		o, err := order.NewOrder(id, owner, supplier, "  Brake pads  ", &delivery, order.Pending, createdAt)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.IsOwnedBy(owner))
		assert.True(t, o.SupplierID().IsEqual(supplier))
		assert.Equal(t, "Brake pads", o.Description())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, "0.00", o.Total().String())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Equal(t, time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC), *o.ExpectedDelivery())
		assert.Zero(t, o.Version())
	})

	t.Run("should accept missing delivery date", func(t *testing.T) {
		o, err := order.NewOrder(id, owner, supplier, "Brake pads", nil, order.Pending, createdAt)

		require.NoError(t, err)
		assert.Nil(t, o.ExpectedDelivery())
	})

	t.Run("should join every validation error", func(t *testing.T) {
		var zero kernel.UUID

		o, err := order.NewOrder(zero, zero, zero, "   ", nil, order.Unknown, time.Time{})

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "value is required: owner")
		assert.Contains(t, err.Error(), "value is required: supplier")
		assert.Contains(t, err.Error(), "value is required: description")
		assert.Contains(t, err.Error(), "value is invalid: status")
		assert.Contains(t, err.Error(), "value is required: created_at")
	})
}

func TestOrder_Validate(t *testing.T) {
	var nilOrder *order.Order
	var zero order.Order

	assert.Equal(t, order.ErrOrderIsNotConstructed, nilOrder.Validate())
	assert.Equal(t, order.ErrOrderIsNotConstructed, zero.Validate())
	assert.NoError(t, newOrder(t).Validate())
}

func TestOrder_Edit(t *testing.T) {
	t.Run("should replace header fields and keep identity", func(t *testing.T) {
		o := newOrder(t)
		supplier := kernel.NewUUID()

		err := o.Edit(supplier, "Brake pads and discs", nil, order.InProgress)

		require.NoError(t, err)
		assert.True(t, o.SupplierID().IsEqual(supplier))
		assert.Equal(t, "Brake pads and discs", o.Description())
		assert.Equal(t, order.InProgress, o.Status())
		assert.Equal(t, createdAt, o.CreatedAt())
	})

	t.Run("should leave order unchanged on error", func(t *testing.T) {
		o := newOrder(t)
		before := *o

		err := o.Edit(kernel.NewUUID(), "", nil, order.Finalized)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, before, *o)
	})
}

func TestOrder_SetTotal(t *testing.T) {
	o := newOrder(t)
	total, _ := kernel.MoneyFromString("35.50")

	require.NoError(t, o.SetTotal(total))
	assert.Equal(t, "35.50", o.Total().String())

	assert.ErrorIs(t, o.SetTotal(kernel.Money{}), errs.ErrValueIsRequired)
}

func TestRestoreOrder(t *testing.T) {
	total, _ := kernel.MoneyFromString("12.00")

	o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"Filters", nil, order.Finalized, createdAt, total, 4)

	require.NoError(t, err)
	assert.Equal(t, "12.00", o.Total().String())
	assert.Equal(t, int64(4), o.Version())

	o.AdvanceVersion()
	assert.Equal(t, int64(5), o.Version())
}
