package queries_test

import (
	"context"
	"time"

	"mealflow/internal/core/application/usecases/queries"
	"mealflow/internal/core/domain/model/assignment"
	"mealflow/internal/core/domain/model/delegation"
	"mealflow/internal/core/domain/model/kernel"
	"mealflow/internal/core/domain/model/subscription"

	"github.com/stretchr/testify/mock"
)

type MockAssignmentRepository struct{ mock.Mock }

func (m *MockAssignmentRepository) Add(ctx context.Context, a *assignment.Assignment) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockAssignmentRepository) Update(ctx context.Context, a *assignment.Assignment) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockAssignmentRepository) Get(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assignment.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) GetActiveForTarget(ctx context.Context, target assignment.Target) (*assignment.Assignment, error) {
	args := m.Called(ctx, target)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assignment.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) CountActiveByDrivers(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]int, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[kernel.UUID]int), args.Error(1)
}

func (m *MockAssignmentRepository) ListByDriverInWindow(
	ctx context.Context,
	driverID kernel.UUID,
	from, to time.Time,
) ([]*assignment.Assignment, error) {
	args := m.Called(ctx, driverID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*assignment.Assignment), args.Error(1)
}

type MockSubscriptionRepository struct{ mock.Mock }

func (m *MockSubscriptionRepository) Add(ctx context.Context, s *subscription.Subscription) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockSubscriptionRepository) Update(ctx context.Context, s *subscription.Subscription) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockSubscriptionRepository) Get(ctx context.Context, id kernel.UUID) (*subscription.Subscription, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*subscription.Subscription), args.Error(1)
}

type MockDelegationRepository struct{ mock.Mock }

func (m *MockDelegationRepository) Add(ctx context.Context, d *delegation.Delegation) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDelegationRepository) Update(ctx context.Context, d *delegation.Delegation) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDelegationRepository) GetBySubscription(ctx context.Context, id kernel.UUID) (*delegation.Delegation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delegation.Delegation), args.Error(1)
}

func (m *MockDelegationRepository) CountByChefs(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]int, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[kernel.UUID]int), args.Error(1)
}

type MockAdviceCache struct{ mock.Mock }

func (m *MockAdviceCache) Get(ctx context.Context, key string) ([]queries.ClusterAdvice, bool, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]queries.ClusterAdvice), args.Bool(1), args.Error(2)
}

func (m *MockAdviceCache) Set(ctx context.Context, key string, advice []queries.ClusterAdvice) error {
	return m.Called(ctx, key, advice).Error(0)
}
