package repository

import (
	"context"

	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
//
//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks -source=user_repository.go UserRepository
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, user *entity.User) error
}
