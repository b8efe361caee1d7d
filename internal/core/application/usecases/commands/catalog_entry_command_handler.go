package commands

import (
	"context"

	"purchasing/internal/core/domain/model/catalog"
	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/ports"
	"purchasing/internal/pkg/errs"
)

// CatalogEntryCommandHandler is the single write handler for every catalog kind.
// What it may touch is read from the command's policy, never from the kind itself.
type CatalogEntryCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewCatalogEntryCommandHandler(uowFactory CatalogUoWFactory) CatalogEntryCommandHandler {
	return CatalogEntryCommandHandler{uowFactory: uowFactory}
}

// Save creates or replaces an entry. Field problems come back as catalog.FieldErrors.
func (h *CatalogEntryCommandHandler) Save(ctx context.Context, cmd SaveCatalogEntryCommand) (*catalog.Entry, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CatalogRepository()
	p := cmd.Policy()

	var entry *catalog.Entry
	if cmd.IsCreate() {
		created, err := catalog.NewEntry(cmd.ID(), cmd.Actor(), p, cmd.Values())
		if err != nil {
			return nil, err
		}
		entry = created
	} else {
		stored, err := h.loadMutable(ctx, repo, p, cmd.ID(), cmd.Actor())
		if err != nil {
			return nil, err
		}
		if err = stored.Replace(p, cmd.Values()); err != nil {
			return nil, err
		}
		entry = stored
	}

	if err := checkReferences(ctx, repo, p, entry, cmd.Actor()); err != nil {
		return nil, err
	}

	var err error
	if cmd.IsCreate() {
		err = repo.Add(ctx, entry)
	} else {
		err = repo.Update(ctx, entry)
	}
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return entry, nil
}

func (h *CatalogEntryCommandHandler) Delete(ctx context.Context, cmd DeleteCatalogEntryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CatalogRepository()
	if _, err := h.loadMutable(ctx, repo, cmd.Policy(), cmd.ID(), cmd.Actor()); err != nil {
		return err
	}
	if err := repo.Delete(ctx, cmd.Policy().Kind, cmd.ID()); err != nil {
		return err
	}
	return uow.Commit(ctx)
}

func (h *CatalogEntryCommandHandler) loadMutable(
	ctx context.Context, repo ports.CatalogRepository, p catalog.Policy, id, actor kernel.UUID,
) (*catalog.Entry, error) {
	entry, err := repo.Get(ctx, p.Kind, id)
	if err != nil {
		return nil, err
	}
	if p.OwnerEnforced && !entry.IsOwnedBy(actor) {
		return nil, errs.NewAccessDeniedError(p.Name, id.String())
	}
	return entry, nil
}

// checkReferences requires every reference field to point at an entry owned by actor.
func checkReferences(
	ctx context.Context, reader ports.CatalogReader, p catalog.Policy, entry *catalog.Entry, actor kernel.UUID,
) error {
	fieldErrs := catalog.FieldErrors{}
	for _, f := range p.References() {
		raw := entry.Value(f.Name)
		if raw == "" {
			continue
		}
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			fieldErrs[f.Name] = msgInvalidChoice
			continue
		}
		owned, err := reader.OwnedBy(ctx, f.Ref, actor, []kernel.UUID{id})
		if err != nil {
			return err
		}
		if _, ok := owned[id]; !ok {
			fieldErrs[f.Name] = msgInvalidChoice
		}
	}
	if len(fieldErrs) > 0 {
		return fieldErrs
	}
	return nil
}
