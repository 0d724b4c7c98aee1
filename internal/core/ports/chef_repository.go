package ports

import (
	"context"

	"mealflow/internal/core/domain/model/chef"
	"mealflow/internal/core/domain/model/kernel"
)

type ChefRepository interface {
	Add(ctx context.Context, aggregate *chef.Chef) error
	Update(ctx context.Context, aggregate *chef.Chef) error
	Get(ctx context.Context, id kernel.UUID) (*chef.Chef, error)

	// ListActive returns active chefs ordered by name.
	ListActive(ctx context.Context) ([]*chef.Chef, error)
}
