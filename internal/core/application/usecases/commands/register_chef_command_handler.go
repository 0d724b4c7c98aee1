package commands

import (
	"context"

	"mealflow/internal/core/domain/model/chef"
)

type RegisterChefCommandHandler struct {
	uowFactory UoWFactory
}

// NewRegisterChefCommandHandler creates a handler that registers chefs.
func NewRegisterChefCommandHandler(uowFactory UoWFactory) RegisterChefCommandHandler {
	return RegisterChefCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle stores a new chef.
func (h RegisterChefCommandHandler) Handle(ctx context.Context, cmd RegisterChefCommand) (*chef.Chef, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	c, err := chef.NewChef(cmd.ChefID(), cmd.Name(), cmd.Capacity(), cmd.Kitchen())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ChefRepository().Add(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}
