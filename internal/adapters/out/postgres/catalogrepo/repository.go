package catalogrepo

import (
	"context"
	"errors"

	"purchasing/internal/adapters/out/postgres/pgerr"
	"purchasing/internal/core/domain/model/catalog"
	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCatalogRepository implements ports.CatalogRepository using GORM.
type GormCatalogRepository struct {
	db *gorm.DB
}

func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// OwnedBy runs one query per call regardless of len(ids).
func (r *GormCatalogRepository) OwnedBy(
	ctx context.Context, kind catalog.Kind, owner kernel.UUID, ids []kernel.UUID,
) (map[kernel.UUID]struct{}, error) {
	owned := make(map[kernel.UUID]struct{}, len(ids))
	if len(ids) == 0 {
		return owned, nil
	}

	model, err := modelOf(kind)
	if err != nil {
		return nil, err
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}

	var found []uuid.UUID
	if err = r.db.WithContext(ctx).Model(model).
		Where("owner_id = ? AND id IN ?", owner.Bytes(), raw).
		Pluck("id", &found).Error; err != nil {
		return nil, err
	}

	for _, id := range found {
		kid, idErr := kernel.UUIDFromGoogle(id)
		if idErr != nil {
			return nil, idErr
		}
		owned[kid] = struct{}{}
	}
	return owned, nil
}

func (r *GormCatalogRepository) Add(ctx context.Context, entry *catalog.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto, err := fromEntry(entry)
	if err != nil {
		return err
	}
	if err = r.db.WithContext(ctx).Omit(clause.Associations).Create(dto).Error; err != nil {
		return pgerr.Classify(err, entry.Kind().String(), entry.ID().String())
	}
	return nil
}

// Update replaces every editable column, including ones cleared to empty.
func (r *GormCatalogRepository) Update(ctx context.Context, entry *catalog.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto, err := fromEntry(entry)
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Model(dto).
		Where("id = ?", entry.ID().Bytes()).
		Select("*").
		Omit("id", "owner_id", "created_at", clause.Associations).
		Updates(dto)
	if result.Error != nil {
		return pgerr.Classify(result.Error, entry.Kind().String(), entry.ID().String())
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(entry.Kind().String(), entry.ID().String())
	}
	return nil
}

// Delete removes the entry. Dependent rows follow the foreign key rules
// declared on the DTOs.
func (r *GormCatalogRepository) Delete(ctx context.Context, kind catalog.Kind, id kernel.UUID) error {
	model, err := modelOf(kind)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(model, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(kind.String(), id.String())
	}
	return nil
}

func (r *GormCatalogRepository) Get(ctx context.Context, kind catalog.Kind, id kernel.UUID) (*catalog.Entry, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	switch kind {
	case catalog.Supplier:
		return get[SupplierDTO](ctx, r.db, kind, id)
	case catalog.Fleet:
		return get[FleetDTO](ctx, r.db, kind, id)
	case catalog.ItemCategory:
		return get[ItemCategoryDTO](ctx, r.db, kind, id)
	case catalog.Item:
		return get[ItemDTO](ctx, r.db, kind, id)
	}
	_, err := modelOf(kind)
	return nil, err
}

func (r *GormCatalogRepository) List(ctx context.Context, kind catalog.Kind, owner kernel.UUID) ([]*catalog.Entry, error) {
	p, ok := catalog.PolicyOf(kind)
	if !ok {
		_, err := modelOf(kind)
		return nil, err
	}

	switch kind {
	case catalog.Supplier:
		return list[SupplierDTO](ctx, r.db, owner, p.Label)
	case catalog.Fleet:
		return list[FleetDTO](ctx, r.db, owner, p.Label)
	case catalog.ItemCategory:
		return list[ItemCategoryDTO](ctx, r.db, owner, p.Label)
	default:
		return list[ItemDTO](ctx, r.db, owner, p.Label)
	}
}

func get[T row](ctx context.Context, db *gorm.DB, kind catalog.Kind, id kernel.UUID) (*catalog.Entry, error) {
	var dto T
	if err := db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(kind.String(), id.String())
		}
		return nil, err
	}
	return dto.toEntry()
}

func list[T row](ctx context.Context, db *gorm.DB, owner kernel.UUID, orderBy string) ([]*catalog.Entry, error) {
	var dtos []T
	if err := db.WithContext(ctx).
		Where("owner_id = ?", owner.Bytes()).
		Order(clause.OrderByColumn{Column: clause.Column{Name: orderBy}}).
		Order("id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	entries := make([]*catalog.Entry, 0, len(dtos))
	for _, dto := range dtos {
		e, err := dto.toEntry()
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}
