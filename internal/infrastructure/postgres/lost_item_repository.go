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

var _ repository.LostItemRepository = (*LostItemRepo)(nil)

const lostItemColumns = `id, item_name, found_location, found_date, description, status, owner_name,
	photo_url, created_by, created_by_name, created_at, updated_at`

// LostItemRepo implementación del puerto LostItemRepository sobre PostgreSQL.
type LostItemRepo struct {
	db Querier
}

// NewLostItemRepository construye el adaptador.
func NewLostItemRepository(db Querier) *LostItemRepo {
	return &LostItemRepo{db: db}
}

// Create persiste un objeto perdido.
func (r *LostItemRepo) Create(ctx context.Context, l *entity.LostItem) error {
	query := `INSERT INTO lost_items (` + lostItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.Exec(ctx, query,
		l.ID, l.ItemName, l.FoundLocation, l.FoundDate, l.Description, l.Status, l.OwnerName,
		l.PhotoURL, l.CreatedBy, l.CreatedByName, l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert lost item: %w", err)
	}
	return nil
}

// GetByID obtiene un objeto; nil, nil si no existe.
func (r *LostItemRepo) GetByID(ctx context.Context, id string) (*entity.LostItem, error) {
	l, err := scanLostItem(r.db.QueryRow(ctx, `SELECT `+lostItemColumns+` FROM lost_items WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lost item: %w", err)
	}
	return l, nil
}

// List objetos por fecha de hallazgo descendente; status vacío = todos.
func (r *LostItemRepo) List(ctx context.Context, status string, limit, offset int) ([]*entity.LostItem, error) {
	limit, offset = clampPage(limit, offset)
	query := `SELECT ` + lostItemColumns + ` FROM lost_items
		WHERE ($1::text = '' OR status = $1::text)
		ORDER BY found_date DESC, created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list lost items: %w", err)
	}
	defer rows.Close()
	var list []*entity.LostItem
	for rows.Next() {
		l, err := scanLostItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lost item: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

// Update actualiza estado y dueño.
func (r *LostItemRepo) Update(ctx context.Context, l *entity.LostItem) error {
	query := `UPDATE lost_items SET item_name = $2, found_location = $3, found_date = $4, description = $5,
		status = $6, owner_name = $7, photo_url = $8, updated_at = $9
		WHERE id = $1`
	tag, err := r.db.Exec(ctx, query,
		l.ID, l.ItemName, l.FoundLocation, l.FoundDate, l.Description, l.Status, l.OwnerName, l.PhotoURL, l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update lost item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un objeto.
func (r *LostItemRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM lost_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete lost item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanLostItem(row pgx.Row) (*entity.LostItem, error) {
	var l entity.LostItem
	err := row.Scan(&l.ID, &l.ItemName, &l.FoundLocation, &l.FoundDate, &l.Description, &l.Status, &l.OwnerName,
		&l.PhotoURL, &l.CreatedBy, &l.CreatedByName, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}
