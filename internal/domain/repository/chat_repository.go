package repository

import (
	"context"
	"time"

	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain/entity"
)

// ChatRepository puerto de persistencia de mensajes. ListAfter ordena ascendente por fecha.
//
//go:generate mockgen -destination=../../mocks/mock_chat_repository.go -package=mocks -source=chat_repository.go ChatRepository
type ChatRepository interface {
	Create(ctx context.Context, m *entity.ChatMessage) error
	ListAfter(ctx context.Context, room string, after time.Time, limit int) ([]*entity.ChatMessage, error)
}
