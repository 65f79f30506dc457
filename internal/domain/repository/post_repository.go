package repository

import (
	"context"

	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain/entity"
)

// PostRepository puerto de persistencia del tablón. List ordena fijados primero y luego por fecha desc.
//
//go:generate mockgen -destination=../../mocks/mock_post_repository.go -package=mocks -source=post_repository.go PostRepository
type PostRepository interface {
	Create(ctx context.Context, p *entity.Post) error
	GetByID(ctx context.Context, id string) (*entity.Post, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Post, error)
	Update(ctx context.Context, p *entity.Post) error
	Delete(ctx context.Context, id string) error
}
