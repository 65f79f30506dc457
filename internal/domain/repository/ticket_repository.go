package repository

import (
	"context"

	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain/entity"
)

// TicketRepository puerto de persistencia de tickets de mantenimiento.
//
//go:generate mockgen -destination=../../mocks/mock_ticket_repository.go -package=mocks -source=ticket_repository.go TicketRepository
type TicketRepository interface {
	Create(ctx context.Context, t *entity.Ticket) error
	GetByID(ctx context.Context, id string) (*entity.Ticket, error)
	List(ctx context.Context, status string, limit, offset int) ([]*entity.Ticket, error)
	Update(ctx context.Context, t *entity.Ticket) error
	Delete(ctx context.Context, id string) error
}
