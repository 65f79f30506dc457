package dto

import "time"

// CreateLostItemRequest campos de formulario (multipart) de un objeto perdido.
type CreateLostItemRequest struct {
	ItemName      string `form:"item_name" json:"item_name"`
	FoundLocation string `form:"found_location" json:"found_location"`
	FoundDate     string `form:"found_date" json:"found_date"`
	Description   string `form:"description" json:"description"`
}

// UpdateLostItemStatusRequest devolución o descarte.
type UpdateLostItemStatusRequest struct {
	Status    string `json:"status"`
	OwnerName string `json:"owner_name"`
}

// LostItemResponse salida de un objeto perdido.
type LostItemResponse struct {
	ID            string    `json:"id"`
	ItemName      string    `json:"item_name"`
	FoundLocation string    `json:"found_location"`
	FoundDate     string    `json:"found_date"`
	Description   string    `json:"description"`
	Status        string    `json:"status"`
	OwnerName     string    `json:"owner_name,omitempty"`
	PhotoURL      string    `json:"photo_url,omitempty"`
	CreatedBy     string    `json:"created_by"`
	CreatedByName string    `json:"created_by_name"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// LostItemListRequest filtros de GET /api/lost-items.
type LostItemListRequest struct {
	Status string `query:"status"`
	PageRequest
}

// LostItemListResponse página de objetos perdidos.
type LostItemListResponse struct {
	Items []LostItemResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
