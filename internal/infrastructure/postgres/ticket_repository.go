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

var _ repository.TicketRepository = (*TicketRepo)(nil)

const ticketColumns = `id, title, location, description, priority, status, photo_url,
	created_by, created_by_name, assignee, created_at, updated_at`

// TicketRepo implementación del puerto TicketRepository sobre PostgreSQL.
type TicketRepo struct {
	db Querier
}

// NewTicketRepository construye el adaptador.
func NewTicketRepository(db Querier) *TicketRepo {
	return &TicketRepo{db: db}
}

// Create persiste un ticket.
func (r *TicketRepo) Create(ctx context.Context, t *entity.Ticket) error {
	query := `INSERT INTO tickets (` + ticketColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.Exec(ctx, query,
		t.ID, t.Title, t.Location, t.Description, t.Priority, t.Status, t.PhotoURL,
		t.CreatedBy, t.CreatedByName, t.Assignee, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert ticket: %w", err)
	}
	return nil
}

// GetByID obtiene un ticket; nil, nil si no existe.
func (r *TicketRepo) GetByID(ctx context.Context, id string) (*entity.Ticket, error) {
	t, err := scanTicket(r.db.QueryRow(ctx, `SELECT `+ticketColumns+` FROM tickets WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ticket: %w", err)
	}
	return t, nil
}

// List tickets del más nuevo al más viejo; status vacío = todos.
func (r *TicketRepo) List(ctx context.Context, status string, limit, offset int) ([]*entity.Ticket, error) {
	limit, offset = clampPage(limit, offset)
	query := `SELECT ` + ticketColumns + ` FROM tickets
		WHERE ($1::text = '' OR status = $1::text)
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	defer rows.Close()
	var list []*entity.Ticket
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// Update actualiza estado, responsable y textos.
func (r *TicketRepo) Update(ctx context.Context, t *entity.Ticket) error {
	query := `UPDATE tickets SET title = $2, location = $3, description = $4, priority = $5,
		status = $6, photo_url = $7, assignee = $8, updated_at = $9
		WHERE id = $1`
	tag, err := r.db.Exec(ctx, query,
		t.ID, t.Title, t.Location, t.Description, t.Priority, t.Status, t.PhotoURL, t.Assignee, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update ticket: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un ticket.
func (r *TicketRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM tickets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete ticket: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanTicket(row pgx.Row) (*entity.Ticket, error) {
	var t entity.Ticket
	err := row.Scan(&t.ID, &t.Title, &t.Location, &t.Description, &t.Priority, &t.Status, &t.PhotoURL,
		&t.CreatedBy, &t.CreatedByName, &t.Assignee, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
