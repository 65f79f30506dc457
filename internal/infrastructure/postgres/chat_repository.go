package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain/entity"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain/repository"
)

var _ repository.ChatRepository = (*ChatRepo)(nil)

// ChatRepo mensajes de chat sobre PostgreSQL.
type ChatRepo struct {
	db Querier
}

// NewChatRepository construye el adaptador.
func NewChatRepository(db Querier) *ChatRepo {
	return &ChatRepo{db: db}
}

// Create persiste un mensaje.
func (r *ChatRepo) Create(ctx context.Context, m *entity.ChatMessage) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO chat_messages (id, room, text, sender_id, sender_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		m.ID, m.Room, m.Text, m.SenderID, m.SenderName, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert chat message: %w", err)
	}
	return nil
}

// ListAfter los primeros limit mensajes posteriores a after, en orden ascendente.
// after cero = desde el principio; en ese caso se devuelven los últimos limit mensajes.
func (r *ChatRepo) ListAfter(ctx context.Context, room string, after time.Time, limit int) ([]*entity.ChatMessage, error) {
	limit, _ = clampPage(limit, 0)
	var query string
	args := []any{room, limit}
	if after.IsZero() {
		query = `
			SELECT id, room, text, sender_id, sender_name, created_at FROM (
				SELECT id, room, text, sender_id, sender_name, created_at
				FROM chat_messages WHERE room = $1
				ORDER BY created_at DESC LIMIT $2
			) last ORDER BY created_at ASC`
	} else {
		query = `
			SELECT id, room, text, sender_id, sender_name, created_at
			FROM chat_messages WHERE room = $1 AND created_at > $3
			ORDER BY created_at ASC LIMIT $2`
		args = append(args, after)
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list chat messages: %w", err)
	}
	defer rows.Close()
	var list []*entity.ChatMessage
	for rows.Next() {
		var m entity.ChatMessage
		if err := rows.Scan(&m.ID, &m.Room, &m.Text, &m.SenderID, &m.SenderName, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan chat message: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
