package commands

import (
	"errors"

	"purchasing/internal/core/domain/model/catalog"
	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/pkg/guard"
)

var ErrCatalogCommandIsNotConstructed = errors.New(
	"catalog command must be created via its constructor",
)

// SaveCatalogEntryCommand creates or replaces a catalog entry of any kind. The
// policy looked up from the resource name decides which fields are read.
type SaveCatalogEntryCommand struct { //nolint:recvcheck //using for validation
	policy catalog.Policy
	id     kernel.UUID
	create bool
	actor  kernel.UUID
	values map[string]string

	guard guard.ConstructorGuard
}

// NewCreateCatalogEntryCommand prepares a new entry of resource (e.g. "suppliers").
func NewCreateCatalogEntryCommand(resource string, actor kernel.UUID, values map[string]string) (SaveCatalogEntryCommand, error) {
	return newSaveCatalogEntryCommand(resource, kernel.NewUUID(), true, actor, values)
}

// NewUpdateCatalogEntryCommand prepares a full replacement of the editable fields of id.
func NewUpdateCatalogEntryCommand(
	resource string, id, actor kernel.UUID, values map[string]string,
) (SaveCatalogEntryCommand, error) {
	return newSaveCatalogEntryCommand(resource, id, false, actor, values)
}

func newSaveCatalogEntryCommand(
	resource string, id kernel.UUID, create bool, actor kernel.UUID, values map[string]string,
) (SaveCatalogEntryCommand, error) {
	p, err := catalog.PolicyFor(resource)
	if err != nil {
		return SaveCatalogEntryCommand{}, err
	}
	if err = errors.Join(id.Validate(), actor.Validate()); err != nil {
		return SaveCatalogEntryCommand{}, err
	}
	return SaveCatalogEntryCommand{
		policy: p,
		id:     id,
		create: create,
		actor:  actor,
		values: values,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c SaveCatalogEntryCommand) Validate() error {
	return c.guard.Validate(ErrCatalogCommandIsNotConstructed)
}

func (c SaveCatalogEntryCommand) Policy() catalog.Policy { return c.policy }
func (c SaveCatalogEntryCommand) ID() kernel.UUID { return c.id }
func (c SaveCatalogEntryCommand) IsCreate() bool { return c.create }
func (c SaveCatalogEntryCommand) Actor() kernel.UUID { return c.actor }
func (c SaveCatalogEntryCommand) Values() map[string]string { return c.values }

// DeleteCatalogEntryCommand removes a catalog entry. Dependent rows follow the
// store's referential rules: orders go with their supplier, line items with
// their item, fleet references on line items are cleared.
type DeleteCatalogEntryCommand struct { //nolint:recvcheck //using for validation
	policy catalog.Policy
	id     kernel.UUID
	actor  kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteCatalogEntryCommand(resource string, id, actor kernel.UUID) (DeleteCatalogEntryCommand, error) {
	p, err := catalog.PolicyFor(resource)
	if err != nil {
		return DeleteCatalogEntryCommand{}, err
	}
	if err = errors.Join(id.Validate(), actor.Validate()); err != nil {
		return DeleteCatalogEntryCommand{}, err
	}
	return DeleteCatalogEntryCommand{policy: p, id: id, actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteCatalogEntryCommand) Validate() error {
	return c.guard.Validate(ErrCatalogCommandIsNotConstructed)
}

func (c DeleteCatalogEntryCommand) Policy() catalog.Policy { return c.policy }
func (c DeleteCatalogEntryCommand) ID() kernel.UUID { return c.id }
func (c DeleteCatalogEntryCommand) Actor() kernel.UUID { return c.actor }
