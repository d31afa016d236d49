// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"
	"time"

	"dispatch/internal/core/ports"
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

	// CenterRepoFactory provides access to center repository within a transaction.
	CenterRepoFactory interface {
		CenterRepository() ports.CenterRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CenterUoW manages transactions for center-only operations.
	CenterUoW interface {
		TxManager
		CenterRepoFactory
	}

	// CenterUoWFactory creates new center unit of work instances.
	CenterUoWFactory interface {
		Create() CenterUoW
	}

	// AssignmentUoW manages the transaction of a batch assignment across both
	// aggregate types, serialized by LockAssignments.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   err = uow.LockAssignments(ctx)
	//   orderRepo := uow.OrderRepository()
	//   centerRepo := uow.CenterRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	AssignmentUoW interface {
		TxManager
		LockAssignments(ctx context.Context) error
		CenterRepoFactory
		OrderRepoFactory
	}

	// AssignmentUoWFactory creates new unit of work instances for batch assignment.
	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}
)

// BatchRecorder receives the outcome of every batch assignment.
type BatchRecorder interface {
	ObserveBatch(assigned, rejected int, duration time.Duration)
	ObserveFailure(reason string)
}
