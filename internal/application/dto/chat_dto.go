package dto

import "time"

// SendMessageRequest nuevo mensaje de chat.
type SendMessageRequest struct {
	Text string `json:"text"`
}

// ChatMessageResponse salida de un mensaje.
type ChatMessageResponse struct {
	ID         string    `json:"id"`
	Room       string    `json:"room"`
	Text       string    `json:"text"`
	SenderID   string    `json:"sender_id"`
	SenderName string    `json:"sender_name"`
	CreatedAt  time.Time `json:"created_at"`
}

// ChatHistoryRequest GET /api/chat/rooms/:room/messages. After en RFC3339; vacío = últimos mensajes.
type ChatHistoryRequest struct {
	After string `query:"after"`
	Limit int    `query:"limit"`
}
