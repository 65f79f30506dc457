// Package lostitems casos de uso de objetos perdidos.
package lostitems

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

const dateLayout = "2006-01-02"

// UseCase registro, devolución y descarte de objetos perdidos.
type UseCase struct {
	repo  repository.LostItemRepository
	tx    repository.TxRunner
	files *files.Service
	now   func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.LostItemRepository, tx repository.TxRunner, fs *files.Service) *UseCase {
	return &UseCase{repo: repo, tx: tx, files: fs, now: time.Now}
}

// Create guarda el objeto (estado stored) y su foto en la misma transacción.
func (uc *UseCase) Create(ctx context.Context, actor dto.Actor, in dto.CreateLostItemRequest, photo *dto.FileUpload) (*dto.LostItemResponse, error) {
	name := strings.TrimSpace(in.ItemName)
	location := strings.TrimSpace(in.FoundLocation)
	date := strings.TrimSpace(in.FoundDate)
	if name == "" || location == "" {
		return nil, fmt.Errorf("%w: item_name y found_location son obligatorios", domain.ErrInvalidInput)
	}
	if d, err := time.Parse(dateLayout, date); err != nil || d.Format(dateLayout) != date {
		return nil, fmt.Errorf("%w: found_date debe tener formato YYYY-MM-DD", domain.ErrInvalidInput)
	}

	var obj *entity.StoredObject
	if photo != nil {
		var err error
		if obj, err = uc.files.NewPhoto(actor, photo); err != nil {
			return nil, err
		}
	}

	now := uc.now().UTC()
	item := &entity.LostItem{
		ID:            uuid.New().String(),
		ItemName:      name,
		FoundLocation: location,
		FoundDate:     date,
		Description:   strings.TrimSpace(in.Description),
		Status:        entity.LostItemStatusStored,
		CreatedBy:     actor.UserID,
		CreatedByName: actor.Name,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if obj != nil {
		item.PhotoURL = uc.files.URL(obj.ID)
	}

	err := uc.tx.Run(ctx, func(repos repository.TxRepos) error {
		if obj != nil {
			if err := repos.Objects.Put(ctx, obj); err != nil {
				return err
			}
		}
		return repos.LostItems.Create(ctx, item)
	})
	if err != nil {
		return nil, err
	}
	out := toResponse(item)
	return &out, nil
}

// List objetos filtrados por estado (vacío = todos).
func (uc *UseCase) List(ctx context.Context, in dto.LostItemListRequest) (*dto.LostItemListResponse, error) {
	status := strings.TrimSpace(in.Status)
	if status != "" && !entity.ValidLostItemStatus(status) {
		return nil, fmt.Errorf("%w: estado %q", domain.ErrInvalidInput, status)
	}
	page := in.PageRequest
	page.DefaultPage()
	list, err := uc.repo.List(ctx, status, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.LostItemListResponse{
		Items: make([]dto.LostItemResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, it := range list {
		out.Items = append(out.Items, toResponse(it))
	}
	return out, nil
}

// Get devuelve un objeto o ErrNotFound.
func (uc *UseCase) Get(ctx context.Context, id string) (*dto.LostItemResponse, error) {
	item, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toResponse(item)
	return &out, nil
}

// UpdateStatus devuelve (con ownerName obligatorio) o descarta un objeto guardado.
func (uc *UseCase) UpdateStatus(ctx context.Context, id string, in dto.UpdateLostItemStatusRequest) (*dto.LostItemResponse, error) {
	status := strings.TrimSpace(in.Status)
	if !entity.ValidLostItemStatus(status) {
		return nil, fmt.Errorf("%w: estado %q", domain.ErrInvalidInput, in.Status)
	}
	owner := strings.TrimSpace(in.OwnerName)
	if status == entity.LostItemStatusReturned && owner == "" {
		return nil, fmt.Errorf("%w: owner_name es obligatorio al devolver", domain.ErrInvalidInput)
	}
	item, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !item.CanTransition(status) {
		return nil, fmt.Errorf("%w: %s → %s", domain.ErrInvalidTransition, item.Status, status)
	}
	item.Status = status
	if status == entity.LostItemStatusReturned {
		item.OwnerName = owner
	}
	item.UpdatedAt = uc.now().UTC()
	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	out := toResponse(item)
	return &out, nil
}

// Delete borra el objeto y su foto. Solo admin.
func (uc *UseCase) Delete(ctx context.Context, actor dto.Actor, id string) error {
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}
	item, err := uc.load(ctx, id)
	if err != nil {
		return err
	}
	photoID := uc.files.ObjectID(item.PhotoURL)
	return uc.tx.Run(ctx, func(repos repository.TxRepos) error {
		if err := repos.LostItems.Delete(ctx, item.ID); err != nil {
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

func (uc *UseCase) load(ctx context.Context, id string) (*entity.LostItem, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

func toResponse(l *entity.LostItem) dto.LostItemResponse {
	return dto.LostItemResponse{
		ID:            l.ID,
		ItemName:      l.ItemName,
		FoundLocation: l.FoundLocation,
		FoundDate:     l.FoundDate,
		Description:   l.Description,
		Status:        l.Status,
		OwnerName:     l.OwnerName,
		PhotoURL:      l.PhotoURL,
		CreatedBy:     l.CreatedBy,
		CreatedByName: l.CreatedByName,
		CreatedAt:     l.CreatedAt,
		UpdatedAt:     l.UpdatedAt,
	}
}
