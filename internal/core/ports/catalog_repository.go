package ports

import (
	"context"

	"purchasing/internal/core/domain/model/catalog"
	"purchasing/internal/core/domain/model/kernel"
)

// CatalogReader answers ownership questions about catalog entries. The owner
// is always passed explicitly.
type CatalogReader interface {
	// OwnedBy returns the subset of ids that exist as kind and belong to owner.
	//
	// Example:
	//   owned, err := reader.OwnedBy(ctx, catalog.Item, actor, []kernel.UUID{a, b})
	//   if _, ok := owned[a]; !ok {
	//       // a is missing or belongs to someone else
	//   }
	OwnedBy(ctx context.Context, kind catalog.Kind, owner kernel.UUID, ids []kernel.UUID) (map[kernel.UUID]struct{}, error)
}

// CatalogRepository stores catalog entries of every kind.
type CatalogRepository interface {
	CatalogReader

	Add(ctx context.Context, entry *catalog.Entry) error
	Update(ctx context.Context, entry *catalog.Entry) error
	Delete(ctx context.Context, kind catalog.Kind, id kernel.UUID) error

	// Get returns errs.ObjectNotFoundError when no entry of kind has id.
	Get(ctx context.Context, kind catalog.Kind, id kernel.UUID) (*catalog.Entry, error)

	// List returns the entries of kind owned by owner, ordered by their label field.
	List(ctx context.Context, kind catalog.Kind, owner kernel.UUID) ([]*catalog.Entry, error)
}
