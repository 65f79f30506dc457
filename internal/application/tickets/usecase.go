// Package tickets casos de uso de tickets de mantenimiento.
package tickets

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/application/dto"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/application/files"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain/entity"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain/repository"
)

// UseCase alta, listado, cambio de estado y borrado de tickets.
type UseCase struct {
	repo  repository.TicketRepository
	tx    repository.TxRunner
	files *files.Service
	now   func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.TicketRepository, tx repository.TxRunner, fs *files.Service) *UseCase {
	return &UseCase{repo: repo, tx: tx, files: fs, now: time.Now}
}

// Create guarda el ticket y su foto (opcional) en la misma transacción.
func (uc *UseCase) Create(ctx context.Context, actor dto.Actor, in dto.CreateTicketRequest, photo *dto.FileUpload) (*dto.TicketResponse, error) {
	title := strings.TrimSpace(in.Title)
	location := strings.TrimSpace(in.Location)
	if title == "" || location == "" {
		return nil, fmt.Errorf("%w: title y location son obligatorios", domain.ErrInvalidInput)
	}
	priority := strings.ToLower(strings.TrimSpace(in.Priority))
	if priority == "" {
		priority = entity.TicketPriorityNormal
	}
	if !entity.ValidTicketPriority(priority) {
		return nil, fmt.Errorf("%w: prioridad %q", domain.ErrInvalidInput, in.Priority)
	}

	var obj *entity.StoredObject
	if photo != nil {
		var err error
		if obj, err = uc.files.NewPhoto(actor, photo); err != nil {
			return nil, err
		}
	}

	now := uc.now().UTC()
	t := &entity.Ticket{
		ID:            uuid.New().String(),
		Title:         title,
		Location:      location,
		Description:   strings.TrimSpace(in.Description),
		Priority:      priority,
		Status:        entity.TicketStatusOpen,
		CreatedBy:     actor.UserID,
		CreatedByName: actor.Name,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if obj != nil {
		t.PhotoURL = uc.files.URL(obj.ID)
	}

	err := uc.tx.Run(ctx, func(repos repository.TxRepos) error {
		if obj != nil {
			if err := repos.Objects.Put(ctx, obj); err != nil {
				return err
			}
		}
		return repos.Tickets.Create(ctx, t)
	})
	if err != nil {
		return nil, err
	}
	out := toResponse(t)
	return &out, nil
}

// List tickets filtrados por estado (vacío = todos), del más nuevo al más viejo.
func (uc *UseCase) List(ctx context.Context, in dto.TicketListRequest) (*dto.TicketListResponse, error) {
	status := strings.TrimSpace(in.Status)
	if status != "" && !entity.ValidTicketStatus(status) {
		return nil, fmt.Errorf("%w: estado %q", domain.ErrInvalidInput, status)
	}
	page := in.PageRequest
	page.DefaultPage()
	list, err := uc.repo.List(ctx, status, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.TicketListResponse{
		Items: make([]dto.TicketResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, t := range list {
		out.Items = append(out.Items, toResponse(t))
	}
	return out, nil
}

// Get devuelve un ticket o ErrNotFound.
func (uc *UseCase) Get(ctx context.Context, id string) (*dto.TicketResponse, error) {
	t, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toResponse(t)
	return &out, nil
}

// UpdateStatus aplica la transición; una transición no permitida devuelve ErrInvalidTransition.
func (uc *UseCase) UpdateStatus(ctx context.Context, id string, in dto.UpdateTicketStatusRequest) (*dto.TicketResponse, error) {
	status := strings.TrimSpace(in.Status)
	if !entity.ValidTicketStatus(status) {
		return nil, fmt.Errorf("%w: estado %q", domain.ErrInvalidInput, in.Status)
	}
	t, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !t.CanTransition(status) {
		return nil, fmt.Errorf("%w: %s → %s", domain.ErrInvalidTransition, t.Status, status)
	}
	t.Status = status
	if a := strings.TrimSpace(in.Assignee); a != "" {
		t.Assignee = a
	}
	t.UpdatedAt = uc.now().UTC()
	if err := uc.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	out := toResponse(t)
	return &out, nil
}

// Delete borra el ticket y su foto. Solo el autor o un admin.
func (uc *UseCase) Delete(ctx context.Context, actor dto.Actor, id string) error {
	t, err := uc.load(ctx, id)
	if err != nil {
		return err
	}
	if !actor.CanModify(t.CreatedBy) {
		return domain.ErrForbidden
	}
	photoID := uc.files.ObjectID(t.PhotoURL)
	return uc.tx.Run(ctx, func(repos repository.TxRepos) error {
		if err := repos.Tickets.Delete(ctx, t.ID); err != nil {
			return err
		}
		if photoID == "" {
			return nil
		}
		if err := repos.Objects.Delete(ctx, photoID); err != nil && !errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return nil
	})
}

func (uc *UseCase) load(ctx context.Context, id string) (*entity.Ticket, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	return t, nil
}

func toResponse(t *entity.Ticket) dto.TicketResponse {
	return dto.TicketResponse{
		ID:            t.ID,
		Title:         t.Title,
		Location:      t.Location,
		Description:   t.Description,
		Priority:      t.Priority,
		Status:        t.Status,
		PhotoURL:      t.PhotoURL,
		CreatedBy:     t.CreatedBy,
		CreatedByName: t.CreatedByName,
		Assignee:      t.Assignee,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}
