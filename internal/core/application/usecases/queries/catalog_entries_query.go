package queries

import (
	"errors"

	"purchasing/internal/core/domain/model/catalog"
	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/pkg/guard"
)

var ErrCatalogQueryIsNotConstructed = errors.New(
	"catalog query must be created via its constructor",
)

// ListCatalogEntriesQuery lists the entries of one resource owned by the actor.
type ListCatalogEntriesQuery struct {
	policy catalog.Policy
	owner  kernel.UUID

	guard guard.ConstructorGuard
}

// NewListCatalogEntriesQuery fails with errs.ObjectNotFoundError for unknown resources.
func NewListCatalogEntriesQuery(resource string, owner kernel.UUID) (ListCatalogEntriesQuery, error) {
	p, err := catalog.PolicyFor(resource)
	if err != nil {
		return ListCatalogEntriesQuery{}, err
	}
	if err = owner.Validate(); err != nil {
		return ListCatalogEntriesQuery{}, err
	}
	return ListCatalogEntriesQuery{policy: p, owner: owner, guard: guard.NewConstructorGuard()}, nil
}

func (q ListCatalogEntriesQuery) Validate() error {
	return q.guard.Validate(ErrCatalogQueryIsNotConstructed)
}

func (q ListCatalogEntriesQuery) Policy() catalog.Policy { return q.policy }
func (q ListCatalogEntriesQuery) Owner() kernel.UUID { return q.owner }

// GetCatalogEntryQuery reads one entry. Entries of other owners are reported
// as missing.
type GetCatalogEntryQuery struct {
	policy catalog.Policy
	id     kernel.UUID
	owner  kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetCatalogEntryQuery(resource string, id, owner kernel.UUID) (GetCatalogEntryQuery, error) {
	p, err := catalog.PolicyFor(resource)
	if err != nil {
		return GetCatalogEntryQuery{}, err
	}
	if err = errors.Join(id.Validate(), owner.Validate()); err != nil {
		return GetCatalogEntryQuery{}, err
	}
	return GetCatalogEntryQuery{policy: p, id: id, owner: owner, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCatalogEntryQuery) Validate() error {
	return q.guard.Validate(ErrCatalogQueryIsNotConstructed)
}

func (q GetCatalogEntryQuery) Policy() catalog.Policy { return q.policy }
func (q GetCatalogEntryQuery) ID() kernel.UUID { return q.id }
func (q GetCatalogEntryQuery) Owner() kernel.UUID { return q.owner }
