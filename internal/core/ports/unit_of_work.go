package ports

import (
	"context"
)

type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork binds every repository to one database transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	ChefRepository() ChefRepository
	DriverRepository() DriverRepository
	AssignmentRepository() AssignmentRepository
	SubscriptionRepository() SubscriptionRepository
	DelegationRepository() DelegationRepository
	ReassignmentRepository() ReassignmentRepository
}
