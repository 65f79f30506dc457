// Package chat sala de chat del personal: mensajes persistidos más difusión en vivo.
package chat

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/application/dto"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain/entity"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain/repository"
)

const (
	defaultHistory = 50
	maxHistory     = 200
)

var roomPattern = regexp.MustCompile(`^[a-z0-9_-]{1,32}$`)

// UseCase envío e historial de mensajes.
type UseCase struct {
	repo repository.ChatRepository
	hub  *Hub
	now  func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.ChatRepository, hub *Hub) *UseCase {
	return &UseCase{repo: repo, hub: hub, now: time.Now}
}

// Room normaliza el nombre de sala; vacío = DefaultChatRoom.
func Room(raw string) (string, error) {
	room := strings.ToLower(strings.TrimSpace(raw))
	if room == "" {
		return entity.DefaultChatRoom, nil
	}
	if !roomPattern.MatchString(room) {
		return "", fmt.Errorf("%w: sala %q", domain.ErrInvalidInput, raw)
	}
	return room, nil
}

// Send guarda el mensaje y lo difunde a la sala.
func (uc *UseCase) Send(ctx context.Context, actor dto.Actor, room string, in dto.SendMessageRequest) (*dto.ChatMessageResponse, error) {
	room, err := Room(room)
	if err != nil {
		return nil, err
	}
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, fmt.Errorf("%w: mensaje vacío", domain.ErrInvalidInput)
	}
	if len([]rune(text)) > entity.MaxChatMessageRunes {
		return nil, fmt.Errorf("%w: el mensaje supera %d caracteres", domain.ErrInvalidInput, entity.MaxChatMessageRunes)
	}
	m := &entity.ChatMessage{
		ID:         uuid.New().String(),
		Room:       room,
		Text:       text,
		SenderID:   actor.UserID,
		SenderName: actor.Name,
		CreatedAt:  uc.now().UTC().Truncate(time.Microsecond), // precisión de timestamptz
	}
	if err := uc.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	out := toResponse(m)
	uc.hub.Broadcast(room, out)
	return &out, nil
}

// History mensajes de la sala en orden ascendente. Sin after devuelve los últimos limit.
func (uc *UseCase) History(ctx context.Context, room string, in dto.ChatHistoryRequest) ([]dto.ChatMessageResponse, error) {
	room, err := Room(room)
	if err != nil {
		return nil, err
	}
	var after time.Time
	if s := strings.TrimSpace(in.After); s != "" {
		if after, err = time.Parse(time.RFC3339Nano, s); err != nil {
			return nil, fmt.Errorf("%w: after debe ser RFC3339", domain.ErrInvalidInput)
		}
	}
	limit := in.Limit
	if limit <= 0 {
		limit = defaultHistory
	}
	if limit > maxHistory {
		limit = maxHistory
	}
	list, err := uc.repo.ListAfter(ctx, room, after, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ChatMessageResponse, 0, len(list))
	for _, m := range list {
		out = append(out, toResponse(m))
	}
	return out, nil
}

// EventID identificador SSE de un mensaje: su createdAt en RFC3339Nano.
// El navegador lo devuelve en Last-Event-ID al reconectar y sirve de cursor para Replay.
func EventID(msg dto.ChatMessageResponse) string {
	return msg.CreatedAt.UTC().Format(time.RFC3339Nano)
}

// Replay mensajes posteriores a lastEventID (hasta maxHistory).
// Un id vacío o que no es un EventID no reenvía nada: el cliente sigue en vivo.
func (uc *UseCase) Replay(ctx context.Context, room, lastEventID string) ([]dto.ChatMessageResponse, error) {
	id := strings.TrimSpace(lastEventID)
	if id == "" {
		return nil, nil
	}
	if _, err := time.Parse(time.RFC3339Nano, id); err != nil {
		return nil, nil
	}
	return uc.History(ctx, room, dto.ChatHistoryRequest{After: id, Limit: maxHistory})
}

// Subscribe abre una suscripción en vivo a la sala.
func (uc *UseCase) Subscribe(room string) (*Subscription, error) {
	room, err := Room(room)
	if err != nil {
		return nil, err
	}
	return uc.hub.Subscribe(room), nil
}

func toResponse(m *entity.ChatMessage) dto.ChatMessageResponse {
	return dto.ChatMessageResponse{
		ID:         m.ID,
		Room:       m.Room,
		Text:       m.Text,
		SenderID:   m.SenderID,
		SenderName: m.SenderName,
		CreatedAt:  m.CreatedAt,
	}
}
