// Package commands contains the operations that change orchestration state.
// Every handler validates its command, runs inside one unit of work and
// publishes notifications only after the commit succeeded.
package commands

import (
	"context"
	"time"

	"mealflow/internal/core/application/notifications"
	"mealflow/internal/core/ports"
)

// Unit of Work interfaces. Handlers depend on the narrowest role they need;
// the composition root adapts the gorm unit of work to each of them.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	ChefRepoFactory interface {
		ChefRepository() ports.ChefRepository
	}

	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	AssignmentRepoFactory interface {
		AssignmentRepository() ports.AssignmentRepository
	}

	SubscriptionRepoFactory interface {
		SubscriptionRepository() ports.SubscriptionRepository
	}

	DelegationRepoFactory interface {
		DelegationRepository() ports.DelegationRepository
	}

	ReassignmentRepoFactory interface {
		ReassignmentRepository() ports.ReassignmentRepository
	}

	// DriverUoW covers driver-only operations such as the nightly earnings
	// reset.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// UoW spans every aggregate. Order transitions, driver assignment and chef
	// delegation all touch several of them in one transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   assignmentRepo := uow.AssignmentRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		ChefRepoFactory
		DriverRepoFactory
		AssignmentRepoFactory
		SubscriptionRepoFactory
		DelegationRepoFactory
		ReassignmentRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)

// EventPublisher receives events after a successful commit. Implementations
// must not report failures back to the handler.
type EventPublisher interface {
	Publish(ctx context.Context, event notifications.Event)
}

// Clock returns the current time. Handlers take it as a dependency so tests
// can pin timestamps.
type Clock func() time.Time
