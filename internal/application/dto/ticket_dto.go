package dto

import "time"

// CreateTicketRequest campos de formulario (multipart) de un ticket.
type CreateTicketRequest struct {
	Title       string `form:"title" json:"title"`
	Location    string `form:"location" json:"location"`
	Description string `form:"description" json:"description"`
	Priority    string `form:"priority" json:"priority"`
}

// UpdateTicketStatusRequest cambio de estado y responsable.
type UpdateTicketStatusRequest struct {
	Status   string `json:"status"`
	Assignee string `json:"assignee"`
}

// TicketResponse salida de un ticket.
type TicketResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Location      string    `json:"location"`
	Description   string    `json:"description"`
	Priority      string    `json:"priority"`
	Status        string    `json:"status"`
	PhotoURL      string    `json:"photo_url,omitempty"`
	CreatedBy     string    `json:"created_by"`
	CreatedByName string    `json:"created_by_name"`
	Assignee      string    `json:"assignee,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TicketListRequest filtros de GET /api/tickets.
type TicketListRequest struct {
	Status string `query:"status"`
	PageRequest
}

// TicketListResponse página de tickets.
type TicketListResponse struct {
	Items []TicketResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
