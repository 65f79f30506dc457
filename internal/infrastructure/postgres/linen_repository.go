package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain/entity"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain/linen"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain/repository"
)

var _ repository.LinenRepository = (*LinenRepo)(nil)

// LinenRepo almacén de documentos de lencería sobre la tabla linen_events (JSONB).
type LinenRepo struct {
	db Querier
}

// NewLinenRepository construye el adaptador.
func NewLinenRepository(db Querier) *LinenRepo {
	return &LinenRepo{db: db}
}

// Create guarda el documento tal cual. event_date se copia de la fecha resuelta del cuerpo.
func (r *LinenRepo) Create(ctx context.Context, ev *entity.LinenEvent) error {
	body, err := json.Marshal(ev.Body)
	if err != nil {
		return fmt.Errorf("marshal linen body: %w", err)
	}
	query := `
		INSERT INTO linen_events (id, kind, event_date, body, total_quantity, created_by, created_by_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = r.db.Exec(ctx, query,
		ev.ID, string(ev.Kind), ev.Date, body, ev.TotalQuantity, ev.CreatedBy, ev.CreatedByName, ev.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert linen event: %w", err)
	}
	return nil
}

// ListDocuments cuerpos crudos del tipo indicado dentro de la ventana, en orden cronológico.
func (r *LinenRepo) ListDocuments(ctx context.Context, kind linen.Kind, w linen.Window) ([]linen.Document, error) {
	const query = `
		SELECT body FROM linen_events
		WHERE kind = $1
		  AND ($2::text = '' OR event_date >= $2::text)
		  AND ($3::text = '' OR event_date <= $3::text)
		ORDER BY event_date, created_at`
	rows, err := r.db.Query(ctx, query, string(kind), w.StartDate, w.EndDate)
	if err != nil {
		return nil, fmt.Errorf("list linen documents: %w", err)
	}
	defer rows.Close()

	var docs []linen.Document
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan linen document: %w", err)
		}
		doc, err := decodeBody(raw)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

// List eventos del más nuevo al más viejo. kind vacío = ambos tipos.
func (r *LinenRepo) List(ctx context.Context, kind linen.Kind, w linen.Window, limit, offset int) ([]*entity.LinenEvent, error) {
	limit, offset = clampPage(limit, offset)
	const query = `
		SELECT id, kind, event_date, body, total_quantity, created_by, created_by_name, created_at
		FROM linen_events
		WHERE ($1::text = '' OR kind = $1::text)
		  AND ($2::text = '' OR event_date >= $2::text)
		  AND ($3::text = '' OR event_date <= $3::text)
		ORDER BY event_date DESC, created_at DESC
		LIMIT $4 OFFSET $5`
	rows, err := r.db.Query(ctx, query, string(kind), w.StartDate, w.EndDate, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list linen events: %w", err)
	}
	defer rows.Close()

	var list []*entity.LinenEvent
	for rows.Next() {
		ev, err := scanLinenEvent(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, ev)
	}
	return list, rows.Err()
}

// GetByID obtiene un evento; nil, nil si no existe.
func (r *LinenRepo) GetByID(ctx context.Context, kind linen.Kind, id string) (*entity.LinenEvent, error) {
	const query = `
		SELECT id, kind, event_date, body, total_quantity, created_by, created_by_name, created_at
		FROM linen_events WHERE kind = $1 AND id = $2`
	ev, err := scanLinenEvent(r.db.QueryRow(ctx, query, string(kind), id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return ev, nil
}

// Delete elimina un evento del tipo indicado.
func (r *LinenRepo) Delete(ctx context.Context, kind linen.Kind, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM linen_events WHERE kind = $1 AND id = $2`, string(kind), id)
	if err != nil {
		return fmt.Errorf("delete linen event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanLinenEvent(row pgx.Row) (*entity.LinenEvent, error) {
	var (
		ev   entity.LinenEvent
		kind string
		raw  []byte
	)
	if err := row.Scan(&ev.ID, &kind, &ev.Date, &raw, &ev.TotalQuantity, &ev.CreatedBy, &ev.CreatedByName, &ev.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan linen event: %w", err)
	}
	body, err := decodeBody(raw)
	if err != nil {
		return nil, err
	}
	ev.Kind = linen.Kind(kind)
	ev.Body = body
	return &ev, nil
}

// decodeBody usa json.Number para no perder precisión en cantidades; ParseQuantity las entiende.
func decodeBody(raw []byte) (linen.Document, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var doc linen.Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode linen body: %w", err)
	}
	return doc, nil
}
