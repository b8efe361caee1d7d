package commands_test

import (
	"testing"

	"purchasing/internal/core/application/usecases/commands"
	"purchasing/internal/core/domain/model/catalog"
	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCatalogFixture() (*MockCatalogUoWFactory, *MockCatalogUoW, *MockCatalogRepository) {
	repo := new(MockCatalogRepository)
	uow := new(MockCatalogUoW)
	uow.On("CatalogRepository").Return(repo).Maybe()
	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()
	return factory, uow, repo
}

func supplierValues() map[string]string {
	return map[string]string{
		"name":  "Auto Parts Ltda",
		"cnpj":  "12.345.678/0001-90",
		"email": "sales@autoparts.example",
		"city":  "Campinas",
		"state": "SP",
	}
}

func TestNewCreateCatalogEntryCommand_UnknownResource(t *testing.T) {
	_, err := commands.NewCreateCatalogEntryCommand("warehouses", kernel.NewUUID(), nil)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCatalogEntryCommandHandler_Save_Create(t *testing.T) {
	ctx := t.Context()
	factory, uow, repo := newCatalogFixture()
	actor := kernel.NewUUID()

	cmd, err := commands.NewCreateCatalogEntryCommand("suppliers", actor, supplierValues())
	require.NoError(t, err)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("Add", ctx, mock.MatchedBy(func(e *catalog.Entry) bool {
			return e.Kind() == catalog.Supplier && e.IsOwnedBy(actor) && e.Value("name") == "Auto Parts Ltda"
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCatalogEntryCommandHandler(factory)
	entry, err := h.Save(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, entry.ID().IsEqual(cmd.ID()))
	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestCatalogEntryCommandHandler_Save_FieldErrors(t *testing.T) {
	ctx := t.Context()
	factory, uow, repo := newCatalogFixture()

	values := supplierValues()
	values["email"] = "not-an-email"
	delete(values, "city")
	cmd, _ := commands.NewCreateCatalogEntryCommand("suppliers", kernel.NewUUID(), values)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewCatalogEntryCommandHandler(factory)
	_, err := h.Save(ctx, cmd)

	var fieldErrs catalog.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, "Enter a valid email address.", fieldErrs["email"])
	assert.Equal(t, "This field is required.", fieldErrs["city"])
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestCatalogEntryCommandHandler_Save_ForeignCategory(t *testing.T) {
	ctx := t.Context()
	factory, uow, repo := newCatalogFixture()
	actor, category := kernel.NewUUID(), kernel.NewUUID()

	cmd, _ := commands.NewCreateCatalogEntryCommand("items", actor, map[string]string{
		"name": "Brake pad", "category_id": category.String(),
	})

	uow.On("Begin", ctx).Return(nil).Once()
	repo.On("OwnedBy", ctx, catalog.ItemCategory, actor, []kernel.UUID{category}).
		Return(map[kernel.UUID]struct{}{}, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewCatalogEntryCommandHandler(factory)
	_, err := h.Save(ctx, cmd)

	var fieldErrs catalog.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, "Select a valid choice. That choice is not one of the available choices.", fieldErrs["category_id"])
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestCatalogEntryCommandHandler_Save_UpdateByOtherUserIsDenied(t *testing.T) {
	ctx := t.Context()
	factory, uow, repo := newCatalogFixture()
	owner, intruder, id := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()

	stored := catalog.RestoreEntry(id, owner, catalog.Fleet, map[string]string{
		"prefix": "TR-01", "description": "Truck", "year": "2019",
	})
	cmd, _ := commands.NewUpdateCatalogEntryCommand("fleets", id, intruder, map[string]string{
		"prefix": "TR-02", "description": "Truck", "year": "2020",
	})

	uow.On("Begin", ctx).Return(nil).Once()
	repo.On("Get", ctx, catalog.Fleet, id).Return(stored, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewCatalogEntryCommandHandler(factory)
	_, err := h.Save(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrAccessDenied)
	assert.Equal(t, "TR-01", stored.Value("prefix"))
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCatalogEntryCommandHandler_Delete(t *testing.T) {
	ctx := t.Context()
	factory, uow, repo := newCatalogFixture()
	owner, id := kernel.NewUUID(), kernel.NewUUID()

	stored := catalog.RestoreEntry(id, owner, catalog.ItemCategory, map[string]string{"name": "Brakes"})
	cmd, err := commands.NewDeleteCatalogEntryCommand("item-categories", id, owner)
	require.NoError(t, err)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("Get", ctx, catalog.ItemCategory, id).Return(stored, nil).Once(),
		repo.On("Delete", ctx, catalog.ItemCategory, id).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCatalogEntryCommandHandler(factory)
	require.NoError(t, h.Delete(ctx, cmd))
	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestCatalogEntryCommandHandler_Delete_NotFound(t *testing.T) {
	ctx := t.Context()
	factory, uow, repo := newCatalogFixture()
	id := kernel.NewUUID()
	cmd, _ := commands.NewDeleteCatalogEntryCommand("suppliers", id, kernel.NewUUID())

	uow.On("Begin", ctx).Return(nil).Once()
	repo.On("Get", ctx, catalog.Supplier, id).Return(nil, errs.NewObjectNotFoundError("supplier", id.String())).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewCatalogEntryCommandHandler(factory)
	err := h.Delete(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
