package entity

import "time"

// DefaultChatRoom sala usada cuando no se indica otra.
const DefaultChatRoom = "general"

// MaxChatMessageRunes longitud máxima del texto de un mensaje.
const MaxChatMessageRunes = 1000

// ChatMessage mensaje de la sala de chat del personal.
type ChatMessage struct {
	ID         string
	Room       string
	Text       string
	SenderID   string
	SenderName string
	CreatedAt  time.Time
}
