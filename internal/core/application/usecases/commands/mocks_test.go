package commands_test

import (
	"context"
	"time"

	"purchasing/internal/core/application/usecases/commands"
	"purchasing/internal/core/domain/model/catalog"
	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/movement"
	"purchasing/internal/core/domain/model/order"
	"purchasing/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}
func (m *MockOrderRepository) SaveTotal(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}
func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockLineItemRepository struct{ mock.Mock }

func (m *MockLineItemRepository) Add(ctx context.Context, l *order.LineItem) error {
	return m.Called(ctx, l).Error(0)
}
func (m *MockLineItemRepository) Update(ctx context.Context, l *order.LineItem) error {
	return m.Called(ctx, l).Error(0)
}
func (m *MockLineItemRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockLineItemRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*order.LineItem, error) {
	args := m.Called(ctx, orderID)
	lines, _ := args.Get(0).([]*order.LineItem)
	return lines, args.Error(1)
}

type MockMovementRepository struct{ mock.Mock }

func (m *MockMovementRepository) Add(ctx context.Context, mv *movement.Movement) error {
	return m.Called(ctx, mv).Error(0)
}
func (m *MockMovementRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*movement.Movement, error) {
	args := m.Called(ctx, orderID)
	ms, _ := args.Get(0).([]*movement.Movement)
	return ms, args.Error(1)
}

type MockCatalogRepository struct{ mock.Mock }

func (m *MockCatalogRepository) OwnedBy(
	ctx context.Context, kind catalog.Kind, owner kernel.UUID, ids []kernel.UUID,
) (map[kernel.UUID]struct{}, error) {
	args := m.Called(ctx, kind, owner, ids)
	if fn, ok := args.Get(0).(func([]kernel.UUID) map[kernel.UUID]struct{}); ok {
		return fn(ids), args.Error(1)
	}
	owned, _ := args.Get(0).(map[kernel.UUID]struct{})
	return owned, args.Error(1)
}
func (m *MockCatalogRepository) Add(ctx context.Context, e *catalog.Entry) error {
	return m.Called(ctx, e).Error(0)
}
func (m *MockCatalogRepository) Update(ctx context.Context, e *catalog.Entry) error {
	return m.Called(ctx, e).Error(0)
}
func (m *MockCatalogRepository) Delete(ctx context.Context, kind catalog.Kind, id kernel.UUID) error {
	return m.Called(ctx, kind, id).Error(0)
}
func (m *MockCatalogRepository) Get(ctx context.Context, kind catalog.Kind, id kernel.UUID) (*catalog.Entry, error) {
	args := m.Called(ctx, kind, id)
	e, _ := args.Get(0).(*catalog.Entry)
	return e, args.Error(1)
}
func (m *MockCatalogRepository) List(ctx context.Context, kind catalog.Kind, owner kernel.UUID) ([]*catalog.Entry, error) {
	args := m.Called(ctx, kind, owner)
	es, _ := args.Get(0).([]*catalog.Entry)
	return es, args.Error(1)
}

// ownsAll answers OwnedBy by echoing every requested id.
func ownsAll(ids []kernel.UUID) map[kernel.UUID]struct{} {
	owned := make(map[kernel.UUID]struct{}, len(ids))
	for _, id := range ids {
		owned[id] = struct{}{}
	}
	return owned
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error { return m.Called(ctx).Error(0) }
func (m *MockOrderUoW) Commit(ctx context.Context) error { return m.Called(ctx).Error(0) }
func (m *MockOrderUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }
func (m *MockOrderUoW) SavePoint(ctx context.Context, name string) error {
	return m.Called(ctx, name).Error(0)
}
func (m *MockOrderUoW) RollbackTo(ctx context.Context, name string) error {
	return m.Called(ctx, name).Error(0)
}
func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}
func (m *MockOrderUoW) LineItemRepository() ports.LineItemRepository {
	return m.Called().Get(0).(ports.LineItemRepository)
}
func (m *MockOrderUoW) MovementRepository() ports.MovementRepository {
	return m.Called().Get(0).(ports.MovementRepository)
}
func (m *MockOrderUoW) CatalogRepository() ports.CatalogRepository {
	return m.Called().Get(0).(ports.CatalogRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockCatalogUoW struct{ mock.Mock }

func (m *MockCatalogUoW) Begin(ctx context.Context) error { return m.Called(ctx).Error(0) }
func (m *MockCatalogUoW) Commit(ctx context.Context) error { return m.Called(ctx).Error(0) }
func (m *MockCatalogUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }
func (m *MockCatalogUoW) CatalogRepository() ports.CatalogRepository {
	return m.Called().Get(0).(ports.CatalogRepository)
}

type MockCatalogUoWFactory struct{ mock.Mock }

func (m *MockCatalogUoWFactory) Create() commands.CatalogUoW {
	return m.Called().Get(0).(commands.CatalogUoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Notify(ctx context.Context, n ports.Notification) {
	m.Called(ctx, n)
}

type MockObserver struct{ mock.Mock }

func (m *MockObserver) WorkflowFinished(operation, outcome string) {
	m.Called(operation, outcome)
}
func (m *MockObserver) AuditWriteFailed(kind string) {
	m.Called(kind)
}

// fixture wires one unit of work with all repositories.
type fixture struct {
	orders    *MockOrderRepository
	lines     *MockLineItemRepository
	movements *MockMovementRepository
	catalog   *MockCatalogRepository
	uow       *MockOrderUoW
	factory   *MockOrderUoWFactory
	notifier  *MockNotifier
	observer  *MockObserver
}

func newFixture() *fixture {
	f := &fixture{
		orders:    new(MockOrderRepository),
		lines:     new(MockLineItemRepository),
		movements: new(MockMovementRepository),
		catalog:   new(MockCatalogRepository),
		uow:       new(MockOrderUoW),
		factory:   new(MockOrderUoWFactory),
		notifier:  new(MockNotifier),
		observer:  new(MockObserver),
	}
	f.factory.On("Create").Return(f.uow).Once()
	f.uow.On("OrderRepository").Return(f.orders).Maybe()
	f.uow.On("LineItemRepository").Return(f.lines).Maybe()
	f.uow.On("MovementRepository").Return(f.movements).Maybe()
	f.uow.On("CatalogRepository").Return(f.catalog).Maybe()
	return f
}

func (f *fixture) deps() commands.WorkflowDeps {
	return commands.WorkflowDeps{
		UoWFactory: f.factory,
		Notifier:   f.notifier,
		Observer:   f.observer,
		Clock:      func() time.Time { return fixedNow },
	}
}

func (f *fixture) ownsEverything() {
	f.catalog.On("OwnedBy", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(ownsAll, nil)
}

func (f *fixture) assertExpectations(t mock.TestingT) {
	f.orders.AssertExpectations(t)
	f.lines.AssertExpectations(t)
	f.movements.AssertExpectations(t)
	f.uow.AssertExpectations(t)
	f.factory.AssertExpectations(t)
	f.notifier.AssertExpectations(t)
	f.observer.AssertExpectations(t)
}
