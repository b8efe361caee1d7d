// Package catalogrepo stores suppliers, fleets, item categories and items.
// Each kind has its own table; the repository dispatches on catalog.Kind.
package catalogrepo

import (
	"fmt"
	"strconv"
	"time"

	"purchasing/internal/adapters/out/postgres/orderrepo"
	"purchasing/internal/core/domain/model/catalog"
	"purchasing/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// SupplierDTO is the suppliers row. Deleting a supplier deletes its orders.
type SupplierDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(100);not null"`
	CNPJ      string    `gorm:"column:cnpj;type:varchar(18);not null"`
	Phone     string    `gorm:"type:varchar(20)"`
	Email     string    `gorm:"type:varchar(254)"`
	City      string    `gorm:"type:varchar(100);not null"`
	State     string    `gorm:"type:varchar(100);not null"`
	CreatedAt time.Time `gorm:"not null"`

	Orders []orderrepo.OrderDTO `gorm:"foreignKey:SupplierID;constraint:OnDelete:CASCADE"`
}

func (SupplierDTO) TableName() string {
	return "suppliers"
}

// FleetDTO is the fleets row. Deleting a fleet clears it on line items.
type FleetDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Prefix      string    `gorm:"type:varchar(10);not null"`
	Description string    `gorm:"type:varchar(255);not null"`
	Year        int       `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`

	LineItems []orderrepo.LineItemDTO `gorm:"foreignKey:FleetID;constraint:OnDelete:SET NULL"`
}

func (FleetDTO) TableName() string {
	return "fleets"
}

// ItemCategoryDTO is the item_categories row. Deleting a category deletes its items.
type ItemCategoryDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(100);not null"`
	CreatedAt time.Time `gorm:"not null"`

	Items []ItemDTO `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

func (ItemCategoryDTO) TableName() string {
	return "item_categories"
}

// ItemDTO is the items row. Deleting an item deletes the line items that use it.
type ItemDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name       string    `gorm:"type:varchar(100);not null"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt  time.Time `gorm:"not null"`

	LineItems []orderrepo.LineItemDTO `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE"`
}

func (ItemDTO) TableName() string {
	return "items"
}

// row is implemented by every catalog DTO.
type row interface {
	SupplierDTO | FleetDTO | ItemCategoryDTO | ItemDTO
	toEntry() (*catalog.Entry, error)
}

func (d SupplierDTO) toEntry() (*catalog.Entry, error) {
	return restore(d.ID, d.OwnerID, catalog.Supplier, map[string]string{
		"name":  d.Name,
		"cnpj":  d.CNPJ,
		"phone": d.Phone,
		"email": d.Email,
		"city":  d.City,
		"state": d.State,
	})
}

func (d FleetDTO) toEntry() (*catalog.Entry, error) {
	return restore(d.ID, d.OwnerID, catalog.Fleet, map[string]string{
		"prefix":      d.Prefix,
		"description": d.Description,
		"year":        strconv.Itoa(d.Year),
	})
}

func (d ItemCategoryDTO) toEntry() (*catalog.Entry, error) {
	return restore(d.ID, d.OwnerID, catalog.ItemCategory, map[string]string{
		"name": d.Name,
	})
}

func (d ItemDTO) toEntry() (*catalog.Entry, error) {
	return restore(d.ID, d.OwnerID, catalog.Item, map[string]string{
		"name":        d.Name,
		"category_id": d.CategoryID.String(),
	})
}

func restore(id, owner uuid.UUID, kind catalog.Kind, values map[string]string) (*catalog.Entry, error) {
	entryID, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return nil, err
	}
	ownerID, err := kernel.UUIDFromGoogle(owner)
	if err != nil {
		return nil, err
	}
	return catalog.RestoreEntry(entryID, ownerID, kind, values), nil
}

// fromEntry builds the DTO for e. The result is a pointer ready for gorm.
func fromEntry(e *catalog.Entry) (any, error) {
	id, owner := e.ID().Bytes(), e.Owner().Bytes()

	switch e.Kind() {
	case catalog.Supplier:
		return &SupplierDTO{
			ID:      id,
			OwnerID: owner,
			Name:    e.Value("name"),
			CNPJ:    e.Value("cnpj"),
			Phone:   e.Value("phone"),
			Email:   e.Value("email"),
			City:    e.Value("city"),
			State:   e.Value("state"),
		}, nil
	case catalog.Fleet:
		year, err := strconv.Atoi(e.Value("year"))
		if err != nil {
			return nil, fmt.Errorf("fleet year: %w", err)
		}
		return &FleetDTO{
			ID:          id,
			OwnerID:     owner,
			Prefix:      e.Value("prefix"),
			Description: e.Value("description"),
			Year:        year,
		}, nil
	case catalog.ItemCategory:
		return &ItemCategoryDTO{ID: id, OwnerID: owner, Name: e.Value("name")}, nil
	case catalog.Item:
		category, err := uuid.Parse(e.Value("category_id"))
		if err != nil {
			return nil, fmt.Errorf("item category: %w", err)
		}
		return &ItemDTO{ID: id, OwnerID: owner, Name: e.Value("name"), CategoryID: category}, nil
	default:
		return nil, fmt.Errorf("unsupported catalog kind %d", e.Kind())
	}
}

// modelOf returns an empty DTO used to address the table of kind.
func modelOf(kind catalog.Kind) (any, error) {
	switch kind {
	case catalog.Supplier:
		return &SupplierDTO{}, nil
	case catalog.Fleet:
		return &FleetDTO{}, nil
	case catalog.ItemCategory:
		return &ItemCategoryDTO{}, nil
	case catalog.Item:
		return &ItemDTO{}, nil
	default:
		return nil, fmt.Errorf("unsupported catalog kind %d", kind)
	}
}
