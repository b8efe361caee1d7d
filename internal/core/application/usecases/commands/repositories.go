// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"purchasing/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks only for the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// SavePointer scopes a group of writes inside an open transaction so they
	// can be undone alone.
	SavePointer interface {
		SavePoint(ctx context.Context, name string) error
		RollbackTo(ctx context.Context, name string) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	LineItemRepoFactory interface {
		LineItemRepository() ports.LineItemRepository
	}

	MovementRepoFactory interface {
		MovementRepository() ports.MovementRepository
	}

	CatalogRepoFactory interface {
		CatalogRepository() ports.CatalogRepository
	}

	// MovementUoW is what the status transition recorder needs.
	MovementUoW interface {
		SavePointer
		MovementRepoFactory
	}

	// OrderUoW spans the whole order aggregate: header, line items, audit
	// trail and the catalog lookups used by validation.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orders := uow.OrderRepository()
	//   lines := uow.LineItemRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		SavePointer
		OrderRepoFactory
		LineItemRepoFactory
		MovementRepoFactory
		CatalogRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CatalogUoW manages transactions for catalog-only operations.
	CatalogUoW interface {
		TxManager
		CatalogRepoFactory
	}

	// CatalogUoWFactory creates new catalog unit of work instances.
	CatalogUoWFactory interface {
		Create() CatalogUoW
	}
)
