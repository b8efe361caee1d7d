package movement_test

import (
	"testing"
	"time"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/movement"
	"purchasing/internal/core/domain/model/order"
	"purchasing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)

func newOrder(t *testing.T, status order.Status, total string) *order.Order {
	t.Helper()
	m, err := kernel.MoneyFromString(total)
	require.NoError(t, err)
	o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"Brake pads", nil, status, now, m, 1)
	require.NoError(t, err)
	return o
}

func TestClassify(t *testing.T) {
	assert.Equal(t, movement.StatusChange, movement.Classify(order.Pending, order.InProgress))
	assert.Equal(t, movement.StatusChange, movement.Classify(order.Finalized, order.Pending))
	assert.Equal(t, movement.DataChange, movement.Classify(order.Pending, order.Pending))
}

func TestNewCreation(t *testing.T) {
	o := newOrder(t, order.Pending, "35.50")
	actor := o.Owner()

	m, err := movement.NewCreation(kernel.NewUUID(), o, 2, actor, now)

	require.NoError(t, err)
	require.NoError(t, m.Validate())
	assert.Equal(t, movement.Creation, m.Kind())
	assert.Nil(t, m.Previous())
	assert.Equal(t, order.Pending, m.Next())
	assert.Equal(t, "Order created with 2 item(s). Total: 35.50", m.Note())
	assert.True(t, m.OrderID().IsEqual(o.ID()))
	assert.True(t, m.Actor().IsEqual(actor))
}

func TestNewEdit(t *testing.T) {
	t.Run("status change uses human labels", func(t *testing.T) {
		o := newOrder(t, order.InProgress, "35.50")

		m, err := movement.NewEdit(kernel.NewUUID(), o, order.Pending, o.Owner(), now)

		require.NoError(t, err)
		assert.Equal(t, movement.StatusChange, m.Kind())
		require.NotNil(t, m.Previous())
		assert.Equal(t, order.Pending, *m.Previous())
		assert.Equal(t, order.InProgress, m.Next())
		assert.Equal(t, "Status changed from Pending to In Progress", m.Note())
	})

	t.Run("unchanged status is a data change", func(t *testing.T) {
		o := newOrder(t, order.Pending, "12.00")

		m, err := movement.NewEdit(kernel.NewUUID(), o, order.Pending, o.Owner(), now)

		require.NoError(t, err)
		assert.Equal(t, movement.DataChange, m.Kind())
		assert.Equal(t, "Order data updated. Total: 12.00", m.Note())
	})

	t.Run("unconstructed order is rejected", func(t *testing.T) {
		_, err := movement.NewEdit(kernel.NewUUID(), &order.Order{}, order.Pending, kernel.NewUUID(), now)

		assert.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}

func TestRestore(t *testing.T) {
	t.Run("edit kinds need a previous status", func(t *testing.T) {
		_, err := movement.Restore(kernel.NewUUID(), kernel.NewUUID(), movement.DataChange,
			nil, order.Pending, "x", kernel.NewUUID(), now)

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("kind codes round trip", func(t *testing.T) {
		for _, k := range []movement.Kind{movement.Creation, movement.StatusChange, movement.DataChange} {
			parsed, err := movement.ParseKind(k.Code())
			require.NoError(t, err)
			assert.Equal(t, k, parsed)
		}
		_, err := movement.ParseKind("deleted")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
