// Package postgres provides GORM-based implementation of the Unit of Work pattern.
// The Unit of Work maintains the aggregates affected by a business transaction
// and coordinates writing out their changes atomically.
//
// Key Features:
//   - Transaction management across the center and order repositories
//   - Aggregate tracking, reported to CommitObservers after a successful commit
//   - A transaction-scoped advisory lock that serializes batch assignments
//
// Basic Transaction Management:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.CenterRepository().Add(ctx, c); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Batch Assignment:
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	// Blocks while another batch holds the lock, in this or any other process
//	if err := uow.LockAssignments(ctx); err != nil {
//	    return err
//	}
//
//	orders, err := uow.OrderRepository().GetAllPending(ctx)
//	// ... assign and update
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance provides isolated transactions
//   - Multiple goroutines should use separate UnitOfWork instances
package postgres

import (
	"context"

	"dispatch/internal/adapters/out/postgres/centerrepo"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/core/domain/model/center"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"

	"gorm.io/gorm"
)

// assignmentLockKey identifies the advisory lock taken by every batch assignment.
const assignmentLockKey int64 = 0x6469_7370_6174_6368

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.ID
	Aggregate any
}

// CommitObserver is told which aggregates a successful commit wrote, keyed by kind.
type CommitObserver interface {
	ObserveCommittedWrites(writes map[string]int)
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// Factory ensures each business operation gets a fresh unit of work instance
// with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db        *gorm.DB
	observers []CommitObserver
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db, metrics)
func NewGormUnitOfWorkFactory(db *gorm.DB, observers ...CommitObserver) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, observers: observers}
}

// Create produces a new UnitOfWork instance with its own transaction state
// and aggregate tracking.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return f.CreateGorm()
}

// CreateGorm is Create returning the concrete type, for callers that narrow the
// unit of work to a smaller interface.
func (f *GormUnitOfWorkFactory) CreateGorm() *GormUnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		observers:         f.observers,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions and tracks aggregate changes
// for business operations.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	observers         []CommitObserver
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Multiple calls to Begin on the same instance are safe and will not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	uow.resetTracking()
	return nil
}

// Commit finalizes all changes made within the current transaction and reports
// the tracked writes to the observers. Tracking restarts with the next transaction.
// Returns gorm.ErrInvalidTransaction if no transaction is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		uow.resetTracking()
		return err
	}

	writes := uow.TrackedWrites()
	uow.resetTracking()
	if len(writes) > 0 {
		for _, o := range uow.observers {
			o.ObserveCommittedWrites(writes)
		}
	}
	return nil
}

// Rollback discards all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction if no transaction is active, which makes
// a deferred Rollback after Commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.resetTracking()
	return err
}

// LockAssignments takes the batch assignment advisory lock inside the current
// transaction. Postgres releases it on commit or rollback.
func (uow *GormUnitOfWork) LockAssignments(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	return uow.tx.WithContext(ctx).Exec("SELECT pg_advisory_xact_lock(?)", assignmentLockKey).Error
}

// CenterRepository provides center persistence bound to the current transaction,
// or to the main connection when none is active.
func (uow *GormUnitOfWork) CenterRepository() ports.CenterRepository {
	return centerrepo.NewGormCenterRepository(uow.conn(), uow)
}

// OrderRepository provides order persistence bound to the current transaction,
// or to the main connection when none is active.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// TrackAggregate registers a domain aggregate as modified within this unit of work.
// Called by the repositories after every successful write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.ID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedWrites counts the writes of the current transaction by aggregate kind.
func (uow *GormUnitOfWork) TrackedWrites() map[string]int {
	writes := make(map[string]int)
	for _, t := range uow.trackedAggregates {
		writes[aggregateKind(t.Aggregate)]++
	}
	return writes
}

func (uow *GormUnitOfWork) resetTracking() {
	uow.trackedAggregates = uow.trackedAggregates[:0]
}

func aggregateKind(aggregate any) string {
	switch aggregate.(type) {
	case *center.Center:
		return "center"
	case *order.Order:
		return "order"
	default:
		return "other"
	}
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
