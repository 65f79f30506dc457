package repository

import (
	"context"

	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain/entity"
)

// ObjectStore almacenamiento de archivos subidos.
//
//go:generate mockgen -destination=../../mocks/mock_object_store.go -package=mocks -source=object_store.go ObjectStore
type ObjectStore interface {
	Put(ctx context.Context, obj *entity.StoredObject) error
	Get(ctx context.Context, id string) (*entity.StoredObject, error)
	Delete(ctx context.Context, id string) error
}
