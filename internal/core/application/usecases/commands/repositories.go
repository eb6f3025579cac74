// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, locking, transaction
// management, and persistence, with side effects emitted after commit.
package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderUoW manages transactions for order operations. Every command in
	// this package writes only order aggregates, so this is the sole unit
	// of work shape handlers depend on.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   repo := uow.OrderRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OrderLockProvider serializes transition and reconciliation requests
	// for a single order: at most one in flight per order.
	OrderLockProvider interface {
		Lock(orderID kernel.UUID) (unlock func())
	}

	// GroupLockProvider acquires the locks of every order in a customer
	// group at once, for all-or-nothing group delivery.
	GroupLockProvider interface {
		LockAll(orderIDs []kernel.UUID) (unlock func())
	}
)
