package queries_test

import (
	"context"
	"testing"
	"time"

	"purchasing/internal/adapters/out/postgres/catalogrepo"
	"purchasing/internal/adapters/out/postgres/dbtest"
	"purchasing/internal/adapters/out/postgres/movementrepo"
	"purchasing/internal/adapters/out/postgres/orderrepo"
	"purchasing/internal/core/domain/model/catalog"
	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/movement"
	"purchasing/internal/core/domain/model/order"
	"purchasing/internal/core/domain/services"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var fixedNow = time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)

func day(month time.Month, d int) *time.Time {
	t := time.Date(2025, month, d, 0, 0, 0, 0, time.UTC)
	return &t
}

// store writes rows straight through the repositories for one owner.
type store struct {
	t        *testing.T
	db       *gorm.DB
	owner    kernel.UUID
	category kernel.UUID
}

func newStore(t *testing.T) *store {
	t.Helper()
	return &store{t: t, db: dbtest.SQLite(t), owner: kernel.NewUUID()}
}

// as returns a store writing for another owner into the same database.
func (s *store) as(owner kernel.UUID) *store {
	return &store{t: s.t, db: s.db, owner: owner}
}

func (s *store) entry(kind catalog.Kind, values map[string]string) kernel.UUID {
	s.t.Helper()
	p, ok := catalog.PolicyOf(kind)
	require.True(s.t, ok)
	e, err := catalog.NewEntry(kernel.NewUUID(), s.owner, p, values)
	require.NoError(s.t, err)
	require.NoError(s.t, catalogrepo.NewGormCatalogRepository(s.db).Add(context.Background(), e))
	return e.ID()
}

func (s *store) supplier(name string) kernel.UUID {
	return s.entry(catalog.Supplier, map[string]string{
		"name": name, "cnpj": "00.000.000/0001-00", "city": "Curitiba", "state": "PR",
	})
}

func (s *store) fleet(prefix string) kernel.UUID {
	return s.entry(catalog.Fleet, map[string]string{"prefix": prefix, "description": "Truck", "year": "2020"})
}

func (s *store) item(name string) kernel.UUID {
	if s.category.Validate() != nil {
		s.category = s.entry(catalog.ItemCategory, map[string]string{"name": "Parts"})
	}
	return s.entry(catalog.Item, map[string]string{"name": name, "category_id": s.category.String()})
}

type lineSpec struct {
	item  kernel.UUID
	fleet *kernel.UUID
	qty   int
	price string
}

// order stores a header with its lines and the derived total, plus the
// Creation movement the workflow would have written.
func (s *store) order(
	supplier kernel.UUID, status order.Status, created time.Time, delivery *time.Time, lines ...lineSpec,
) *order.Order {
	s.t.Helper()
	ctx := context.Background()

	o, err := order.NewOrder(kernel.NewUUID(), s.owner, supplier, "Order", delivery, status, created)
	require.NoError(s.t, err)
	require.NoError(s.t, orderrepo.NewGormOrderRepository(s.db).Add(ctx, o))

	lineRepo := orderrepo.NewGormLineItemRepository(s.db)
	stored := make([]*order.LineItem, 0, len(lines))
	for _, spec := range lines {
		price, priceErr := kernel.MoneyFromString(spec.price)
		require.NoError(s.t, priceErr)
		l, lineErr := order.NewLineItem(kernel.NewUUID(), o.ID(), s.owner, spec.item, spec.fleet,
			order.LinePending, spec.qty, price)
		require.NoError(s.t, lineErr)
		require.NoError(s.t, lineRepo.Add(ctx, l))
		stored = append(stored, l)
	}

	total, err := services.NewOrderTotalizer().Total(o.ID(), stored)
	require.NoError(s.t, err)
	require.NoError(s.t, o.SetTotal(total))
	require.NoError(s.t, orderrepo.NewGormOrderRepository(s.db).SaveTotal(ctx, o))

	m, err := movement.NewCreation(kernel.NewUUID(), o, len(stored), s.owner, created)
	require.NoError(s.t, err)
	require.NoError(s.t, movementrepo.NewGormMovementRepository(s.db).Add(ctx, m))
	return o
}
