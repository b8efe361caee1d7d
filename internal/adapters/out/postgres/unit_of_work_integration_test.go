package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "purchasing/internal/adapters/out/postgres"
	"purchasing/internal/adapters/out/postgres/dbtest"
	"purchasing/internal/core/domain/model/catalog"
	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/movement"
	"purchasing/internal/core/domain/model/order"
	"purchasing/internal/core/ports"
	"purchasing/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite runs the GORM unit of work against a real
// PostgreSQL database with the SQL migrations applied.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	pg      *dbtest.Container
	factory ports.UnitOfWorkFactory

	owner    kernel.UUID
	supplier kernel.UUID
	item     kernel.UUID
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	pg, err := dbtest.StartPostgres(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(pg.DB)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

// SetupTest empties the schema and stores one supplier and one item owned by
// suite.owner.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	ctx := context.Background()
	suite.Require().NoError(suite.pg.Truncate())

	suite.owner = kernel.NewUUID()
	repo := suite.factory.Create().CatalogRepository()

	supplier := suite.entry(catalog.Supplier, map[string]string{
		"name": "Auto Peças Lima", "cnpj": "12.345.678/0001-90", "city": "Recife", "state": "PE",
	})
	suite.Require().NoError(repo.Add(ctx, supplier))
	suite.supplier = supplier.ID()

	category := suite.entry(catalog.ItemCategory, map[string]string{"name": "Brakes"})
	suite.Require().NoError(repo.Add(ctx, category))

	item := suite.entry(catalog.Item, map[string]string{"name": "Brake pad", "category_id": category.ID().String()})
	suite.Require().NoError(repo.Add(ctx, item))
	suite.item = item.ID()
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactory_CreatesSeparateInstances() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.LineItemRepository())
	suite.NotNil(uow1.MovementRepository())
	suite.NotNil(uow1.CatalogRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Begin on an open transaction should be a no-op")
	suite.Require().NoError(uow.Commit(ctx))

	suite.ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
	suite.ErrorIs(uow.SavePoint(ctx, "sp"), gorm.ErrInvalidTransaction)
	suite.ErrorIs(uow.RollbackTo(ctx, "sp"), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsHeaderAndLines() {
	ctx := context.Background()
	o := suite.newOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.LineItemRepository().Add(ctx, suite.newLine(o, 3, "10.00")))
	suite.Require().NoError(uow.LineItemRepository().Add(ctx, suite.newLine(o, 1, "5.50")))

	lines, err := uow.LineItemRepository().ListByOrder(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Len(lines, 2, "lines written in the transaction should be readable before commit")
	suite.Require().NoError(uow.Commit(ctx))

	stored, err := suite.factory.Create().LineItemRepository().ListByOrder(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Len(stored, 2)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsEverything() {
	ctx := context.Background()
	o := suite.newOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.LineItemRepository().Add(ctx, suite.newLine(o, 2, "4.00")))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

// A failed movement insert is undone alone; the order written before the
// savepoint still commits.
func (suite *UnitOfWorkIntegrationTestSuite) TestRollbackTo_KeepsEarlierWrites() {
	ctx := context.Background()
	o := suite.newOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.SavePoint(ctx, "status_movement"))

	orphan, err := order.NewOrder(kernel.NewUUID(), suite.owner, suite.supplier, "never stored", nil,
		order.Pending, time.Now())
	suite.Require().NoError(err)
	m, err := movement.NewCreation(kernel.NewUUID(), orphan, 1, suite.owner, time.Now())
	suite.Require().NoError(err)

	err = uow.MovementRepository().Add(ctx, m)
	suite.Require().Error(err, "movement for a missing order must violate the foreign key")
	suite.Require().NoError(uow.RollbackTo(ctx, "status_movement"))
	suite.Require().NoError(uow.Commit(ctx))

	stored, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(stored.IsEqual(o))

	movements, err := suite.factory.Create().MovementRepository().ListByOrder(ctx, orphan.ID())
	suite.Require().NoError(err)
	suite.Empty(movements)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestDeleteOrder_CascadesLinesAndMovements() {
	ctx := context.Background()
	o := suite.newOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.LineItemRepository().Add(ctx, suite.newLine(o, 1, "1.00")))
	m, err := movement.NewCreation(kernel.NewUUID(), o, 1, suite.owner, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.MovementRepository().Add(ctx, m))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(suite.factory.Create().OrderRepository().Delete(ctx, o.ID()))

	var lines, movements int64
	suite.Require().NoError(suite.pg.DB.Table("order_line_items").Where("order_id = ?", o.ID().Bytes()).Count(&lines).Error)
	suite.Require().NoError(suite.pg.DB.Table("order_movements").Where("order_id = ?", o.ID().Bytes()).Count(&movements).Error)
	suite.Zero(lines)
	suite.Zero(movements)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestDeleteSupplier_CascadesOrders() {
	ctx := context.Background()
	o := suite.newOrder()
	suite.Require().NoError(suite.factory.Create().OrderRepository().Add(ctx, o))

	suite.Require().NoError(suite.factory.Create().CatalogRepository().Delete(ctx, catalog.Supplier, suite.supplier))

	_, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestDeleteFleet_ClearsLineReference() {
	ctx := context.Background()
	repo := suite.factory.Create().CatalogRepository()
	fleet := suite.entry(catalog.Fleet, map[string]string{"prefix": "TR-01", "description": "Truck", "year": "2019"})
	suite.Require().NoError(repo.Add(ctx, fleet))

	o := suite.newOrder()
	suite.Require().NoError(suite.factory.Create().OrderRepository().Add(ctx, o))
	fleetID := fleet.ID()
	price, err := kernel.MoneyFromString("12.00")
	suite.Require().NoError(err)
	line, err := order.NewLineItem(kernel.NewUUID(), o.ID(), suite.owner, suite.item, &fleetID, order.LinePending, 1, price)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.factory.Create().LineItemRepository().Add(ctx, line))

	suite.Require().NoError(repo.Delete(ctx, catalog.Fleet, fleet.ID()))

	lines, err := suite.factory.Create().LineItemRepository().ListByOrder(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Require().Len(lines, 1)
	suite.Nil(lines[0].FleetID())
}

func (suite *UnitOfWorkIntegrationTestSuite) entry(kind catalog.Kind, values map[string]string) *catalog.Entry {
	p, ok := catalog.PolicyOf(kind)
	suite.Require().True(ok)
	e, err := catalog.NewEntry(kernel.NewUUID(), suite.owner, p, values)
	suite.Require().NoError(err)
	return e
}

func (suite *UnitOfWorkIntegrationTestSuite) newOrder() *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), suite.owner, suite.supplier, "Brake service", nil,
		order.Pending, time.Now().UTC())
	suite.Require().NoError(err)
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) newLine(o *order.Order, qty int, price string) *order.LineItem {
	p, err := kernel.MoneyFromString(price)
	suite.Require().NoError(err)
	l, err := order.NewLineItem(kernel.NewUUID(), o.ID(), suite.owner, suite.item, nil, order.LinePending, qty, p)
	suite.Require().NoError(err)
	return l
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
