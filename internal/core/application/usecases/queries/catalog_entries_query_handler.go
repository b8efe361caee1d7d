package queries

import (
	"context"

	"purchasing/internal/core/domain/model/catalog"
	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/pkg/errs"
)

// CatalogEntryReader is the read half of ports.CatalogRepository.
type CatalogEntryReader interface {
	Get(ctx context.Context, kind catalog.Kind, id kernel.UUID) (*catalog.Entry, error)
	List(ctx context.Context, kind catalog.Kind, owner kernel.UUID) ([]*catalog.Entry, error)
}

// CatalogEntriesQueryHandler serves both catalog reads for every resource.
type CatalogEntriesQueryHandler struct {
	reader CatalogEntryReader
}

func NewCatalogEntriesQueryHandler(reader CatalogEntryReader) CatalogEntriesQueryHandler {
	return CatalogEntriesQueryHandler{reader: reader}
}

func (h CatalogEntriesQueryHandler) List(ctx context.Context, query ListCatalogEntriesQuery) ([]*catalog.Entry, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.reader.List(ctx, query.Policy().Kind, query.Owner())
}

func (h CatalogEntriesQueryHandler) Get(ctx context.Context, query GetCatalogEntryQuery) (*catalog.Entry, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entry, err := h.reader.Get(ctx, query.Policy().Kind, query.ID())
	if err != nil {
		return nil, err
	}
	if !entry.IsOwnedBy(query.Owner()) {
		return nil, errs.NewObjectNotFoundError(query.Policy().Name, query.ID().String())
	}
	return entry, nil
}
