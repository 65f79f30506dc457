package repository

import (
	"context"

	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain/entity"
)

// LostItemRepository puerto de persistencia de objetos perdidos.
//
//go:generate mockgen -destination=../../mocks/mock_lost_item_repository.go -package=mocks -source=lost_item_repository.go LostItemRepository
type LostItemRepository interface {
	Create(ctx context.Context, item *entity.LostItem) error
	GetByID(ctx context.Context, id string) (*entity.LostItem, error)
	List(ctx context.Context, status string, limit, offset int) ([]*entity.LostItem, error)
	Update(ctx context.Context, item *entity.LostItem) error
	Delete(ctx context.Context, id string) error
}
