package postgres

import (
	"embed"
	"errors"
	"fmt"

	"purchasing/internal/adapters/out/postgres/catalogrepo"
	"purchasing/internal/adapters/out/postgres/movementrepo"
	"purchasing/internal/adapters/out/postgres/orderrepo"
	"purchasing/internal/adapters/out/postgres/userrepo"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Models lists every DTO in foreign-key order. AutoMigrate uses it in
// development and tests; production runs the SQL migrations.
func Models() []any {
	return []any{
		&userrepo.UserDTO{},
		&catalogrepo.SupplierDTO{},
		&catalogrepo.FleetDTO{},
		&catalogrepo.ItemCategoryDTO{},
		&catalogrepo.ItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.LineItemDTO{},
		&movementrepo.MovementDTO{},
	}
}

// AutoMigrate creates or extends the schema from the DTOs.
func AutoMigrate(db *gorm.DB) error {
	for _, m := range Models() {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("automigrate %T: %w", m, err)
		}
	}
	return nil
}

// Migrate applies the embedded SQL migrations. An up-to-date schema is not an error.
func Migrate(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	source, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return fmt.Errorf("open migrations: %w", err)
	}
	driver, err := migratepg.WithInstance(sqlDB, &migratepg.Config{})
	if err != nil {
		return fmt.Errorf("migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return err
	}
	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
