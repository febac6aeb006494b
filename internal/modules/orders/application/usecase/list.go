package usecase

import (
	"context"

	"savoria/internal/modules/orders/application/port"
	"savoria/internal/modules/orders/domain"
)

// ListOrdersUseCase serves the admin order list, newest first.
type ListOrdersUseCase struct {
	repo port.Repository
}

func NewListOrdersUseCase(repo port.Repository) *ListOrdersUseCase {
	return &ListOrdersUseCase{repo: repo}
}

func (uc *ListOrdersUseCase) Execute(ctx context.Context) (domain.List, error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		return domain.List{}, err
	}
	return domain.List{Items: items, Total: len(items)}, nil
}

// FetchOrders adapts the usecase to the realtime feed's snapshot port.
func (uc *ListOrdersUseCase) FetchOrders(ctx context.Context) (domain.List, error) {
	return uc.Execute(ctx)
}
