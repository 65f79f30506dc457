// Package board tablón de avisos del personal.
package board

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/application/dto"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain/entity"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain/repository"
)

// MaxTitleRunes longitud máxima del título.
const MaxTitleRunes = 200

// UseCase CRUD de avisos. Solo un admin fija avisos.
type UseCase struct {
	repo repository.PostRepository
	now  func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.PostRepository) *UseCase {
	return &UseCase{repo: repo, now: time.Now}
}

// Create publica un aviso.
func (uc *UseCase) Create(ctx context.Context, actor dto.Actor, in dto.CreatePostRequest) (*dto.PostResponse, error) {
	title, content, err := validate(in.Title, in.Content)
	if err != nil {
		return nil, err
	}
	if in.Pinned && !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	now := uc.now().UTC()
	p := &entity.Post{
		ID:         uuid.New().String(),
		Title:      title,
		Content:    content,
		Pinned:     in.Pinned,
		AuthorID:   actor.UserID,
		AuthorName: actor.Name,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	out := toResponse(p)
	return &out, nil
}

// List avisos fijados primero y luego del más nuevo al más viejo.
func (uc *UseCase) List(ctx context.Context, page dto.PageRequest) (*dto.PostListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.PostListResponse{
		Items: make([]dto.PostResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, p := range list {
		out.Items = append(out.Items, toResponse(p))
	}
	return out, nil
}

// Get devuelve un aviso o ErrNotFound.
func (uc *UseCase) Get(ctx context.Context, id string) (*dto.PostResponse, error) {
	p, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toResponse(p)
	return &out, nil
}

// Update edita un aviso (autor o admin). Cambiar Pinned requiere admin.
func (uc *UseCase) Update(ctx context.Context, actor dto.Actor, id string, in dto.UpdatePostRequest) (*dto.PostResponse, error) {
	p, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanModify(p.AuthorID) {
		return nil, domain.ErrForbidden
	}
	title, content := p.Title, p.Content
	if in.Title != nil {
		title = *in.Title
	}
	if in.Content != nil {
		content = *in.Content
	}
	if p.Title, p.Content, err = validate(title, content); err != nil {
		return nil, err
	}
	if in.Pinned != nil && *in.Pinned != p.Pinned {
		if !actor.IsAdmin() {
			return nil, domain.ErrForbidden
		}
		p.Pinned = *in.Pinned
	}
	p.UpdatedAt = uc.now().UTC()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	out := toResponse(p)
	return &out, nil
}

// Delete borra un aviso (autor o admin).
func (uc *UseCase) Delete(ctx context.Context, actor dto.Actor, id string) error {
	p, err := uc.load(ctx, id)
	if err != nil {
		return err
	}
	if !actor.CanModify(p.AuthorID) {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(ctx, p.ID)
}

func validate(title, content string) (string, string, error) {
	title, content = strings.TrimSpace(title), strings.TrimSpace(content)
	if title == "" || content == "" {
		return "", "", fmt.Errorf("%w: title y content son obligatorios", domain.ErrInvalidInput)
	}
	if len([]rune(title)) > MaxTitleRunes {
		return "", "", fmt.Errorf("%w: el título supera %d caracteres", domain.ErrInvalidInput, MaxTitleRunes)
	}
	return title, content, nil
}

func (uc *UseCase) load(ctx context.Context, id string) (*entity.Post, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func toResponse(p *entity.Post) dto.PostResponse {
	return dto.PostResponse{
		ID:         p.ID,
		Title:      p.Title,
		Content:    p.Content,
		Pinned:     p.Pinned,
		AuthorID:   p.AuthorID,
		AuthorName: p.AuthorName,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
