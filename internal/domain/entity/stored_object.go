package entity

import "time"

// StoredObject archivo subido (fotos de tickets y objetos perdidos).
type StoredObject struct {
	ID          string
	Name        string
	ContentType string
	Size        int64
	Data        []byte
	CreatedBy   string
	CreatedAt   time.Time
}
