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

var _ repository.PostRepository = (*PostRepo)(nil)

const postColumns = `id, title, content, pinned, author_id, author_name, created_at, updated_at`

// PostRepo tablón del personal sobre PostgreSQL.
type PostRepo struct {
	db Querier
}

// NewPostRepository construye el adaptador.
func NewPostRepository(db Querier) *PostRepo {
	return &PostRepo{db: db}
}

// Create persiste un aviso.
func (r *PostRepo) Create(ctx context.Context, p *entity.Post) error {
	_, err := r.db.Exec(ctx, `INSERT INTO board_posts (`+postColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.ID, p.Title, p.Content, p.Pinned, p.AuthorID, p.AuthorName, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert post: %w", err)
	}
	return nil
}

// GetByID obtiene un aviso; nil, nil si no existe.
func (r *PostRepo) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	p, err := scanPost(r.db.QueryRow(ctx, `SELECT `+postColumns+` FROM board_posts WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get post: %w", err)
	}
	return p, nil
}

// List fijados primero, luego del más nuevo al más viejo.
func (r *PostRepo) List(ctx context.Context, limit, offset int) ([]*entity.Post, error) {
	limit, offset = clampPage(limit, offset)
	rows, err := r.db.Query(ctx, `SELECT `+postColumns+` FROM board_posts
		ORDER BY pinned DESC, created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update actualiza título, contenido y fijado.
func (r *PostRepo) Update(ctx context.Context, p *entity.Post) error {
	tag, err := r.db.Exec(ctx, `UPDATE board_posts SET title = $2, content = $3, pinned = $4, updated_at = $5 WHERE id = $1`,
		p.ID, p.Title, p.Content, p.Pinned, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un aviso.
func (r *PostRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM board_posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanPost(row pgx.Row) (*entity.Post, error) {
	var p entity.Post
	if err := row.Scan(&p.ID, &p.Title, &p.Content, &p.Pinned, &p.AuthorID, &p.AuthorName, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}
