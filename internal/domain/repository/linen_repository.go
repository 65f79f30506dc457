package repository

import (
	"context"

	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain/entity"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain/linen"
)

// LinenRepository almacén de documentos de entradas y devoluciones de lencería.
// Los documentos se guardan tal cual (JSONB); la normalización ocurre al leer/agregar.
//
//go:generate mockgen -destination=../../mocks/mock_linen_repository.go -package=mocks -source=linen_repository.go LinenRepository
type LinenRepository interface {
	Create(ctx context.Context, ev *entity.LinenEvent) error
	// ListDocuments devuelve los cuerpos crudos del tipo indicado cuya fecha cae en la ventana.
	ListDocuments(ctx context.Context, kind linen.Kind, w linen.Window) ([]linen.Document, error)
	// List devuelve eventos (de un tipo o de ambos si kind == "") del más nuevo al más viejo.
	List(ctx context.Context, kind linen.Kind, w linen.Window, limit, offset int) ([]*entity.LinenEvent, error)
	GetByID(ctx context.Context, kind linen.Kind, id string) (*entity.LinenEvent, error)
	Delete(ctx context.Context, kind linen.Kind, id string) error
}
