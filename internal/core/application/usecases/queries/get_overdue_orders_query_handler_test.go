package queries_test

import (
	"context"
	"testing"

	"purchasing/internal/core/application/usecases/queries"
	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOverdueOrdersQueryHandler_AllOwnersOpenOrdersOnly(t *testing.T) {
	s := newStore(t)
	supplier, item := s.supplier("Alfa"), s.item("Pad")
	line := lineSpec{item: item, qty: 1, price: "1.00"}

	late := s.order(supplier, order.Pending, *day(2, 1), day(3, 1), line)
	s.order(supplier, order.Finalized, *day(2, 1), day(2, 20), line)
	s.order(supplier, order.InProgress, *day(2, 1), day(3, 10), line)
	s.order(supplier, order.Pending, *day(2, 1), nil, line)

	other := s.as(kernel.NewUUID())
	otherLate := other.order(other.supplier("Beta"), order.InProgress, *day(1, 1), day(2, 28),
		lineSpec{item: other.item("X"), qty: 1, price: "1.00"})

	got, err := queries.NewGetOverdueOrdersQueryHandler(s.db).Handle(context.Background(),
		queries.NewGetOverdueOrdersQuery(fixedNow))

	require.NoError(t, err)
	require.Len(t, got, 2, "due today is not overdue yet")
	assert.True(t, got[0].ID.IsEqual(otherLate.ID()))
	assert.Equal(t, 10, got[0].DaysLate)
	assert.Equal(t, "Beta", got[0].SupplierName)
	assert.True(t, got[1].ID.IsEqual(late.ID()))
	assert.True(t, got[1].Owner.IsEqual(s.owner))
	assert.Equal(t, 9, got[1].DaysLate)
}

func TestGetOverdueOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	err := queries.GetOverdueOrdersQuery{}.Validate()

	require.ErrorIs(t, err, queries.ErrGetOverdueOrdersQueryIsNotConstructed)
}
