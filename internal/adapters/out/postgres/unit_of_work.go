// Package postgres provides the GORM-based Unit of Work. Every repository
// handed out by a unit of work shares its transaction, so an order transition,
// the driver assignment it triggers and the delegation timeline it advances
// commit or roll back together.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//	if err := uow.AssignmentRepository().Add(ctx, a); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// A unit of work is not safe for concurrent use. Each goroutine creates its own.
package postgres

import (
	"context"

	"mealflow/internal/adapters/out/postgres/assignmentrepo"
	"mealflow/internal/adapters/out/postgres/chefrepo"
	"mealflow/internal/adapters/out/postgres/delegationrepo"
	"mealflow/internal/adapters/out/postgres/driverrepo"
	"mealflow/internal/adapters/out/postgres/orderrepo"
	"mealflow/internal/adapters/out/postgres/reassignmentrepo"
	"mealflow/internal/adapters/out/postgres/subscriptionrepo"
	"mealflow/internal/core/ports"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection
// pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates one database transaction. Repositories obtained
// before Begin run on the pool directly.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin starts the transaction. Calling it twice keeps the first one.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "begin transaction")
	}
	uow.tx = tx
	return nil
}

func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		return errors.Wrap(err, "commit transaction")
	}
	return nil
}

// Rollback discards the transaction. After a successful Commit it returns
// gorm.ErrInvalidTransaction, which the deferred rollback in handlers ignores.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn())
}

func (uow *GormUnitOfWork) ChefRepository() ports.ChefRepository {
	return chefrepo.NewGormChefRepository(uow.conn())
}

func (uow *GormUnitOfWork) DriverRepository() ports.DriverRepository {
	return driverrepo.NewGormDriverRepository(uow.conn())
}

func (uow *GormUnitOfWork) AssignmentRepository() ports.AssignmentRepository {
	return assignmentrepo.NewGormAssignmentRepository(uow.conn())
}

func (uow *GormUnitOfWork) SubscriptionRepository() ports.SubscriptionRepository {
	return subscriptionrepo.NewGormSubscriptionRepository(uow.conn())
}

func (uow *GormUnitOfWork) DelegationRepository() ports.DelegationRepository {
	return delegationrepo.NewGormDelegationRepository(uow.conn())
}

func (uow *GormUnitOfWork) ReassignmentRepository() ports.ReassignmentRepository {
	return reassignmentrepo.NewGormReassignmentRepository(uow.conn())
}
