package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain/entity"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain/repository"
)

var _ repository.ObjectStore = (*ObjectStore)(nil)

// ObjectStore guarda los archivos subidos en la tabla stored_objects (bytea).
// Las fotos son pequeñas (límite configurable) y así se evita un servicio de almacenamiento aparte.
type ObjectStore struct {
	db Querier
}

// NewObjectStore construye el almacén.
func NewObjectStore(db Querier) *ObjectStore {
	return &ObjectStore{db: db}
}

// Put guarda el objeto.
func (s *ObjectStore) Put(ctx context.Context, obj *entity.StoredObject) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO stored_objects (id, name, content_type, size, data, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		obj.ID, obj.Name, obj.ContentType, obj.Size, obj.Data, obj.CreatedBy, obj.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert object: %w", err)
	}
	return nil
}

// Get obtiene el objeto con sus bytes; nil, nil si no existe.
func (s *ObjectStore) Get(ctx context.Context, id string) (*entity.StoredObject, error) {
	var o entity.StoredObject
	err := s.db.QueryRow(ctx, `
		SELECT id, name, content_type, size, data, created_by, created_at
		FROM stored_objects WHERE id = $1`, id).
		Scan(&o.ID, &o.Name, &o.ContentType, &o.Size, &o.Data, &o.CreatedBy, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get object: %w", err)
	}
	return &o, nil
}

// Delete elimina el objeto.
func (s *ObjectStore) Delete(ctx context.Context, id string) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM stored_objects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete object: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
