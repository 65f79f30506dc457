// Package files almacenamiento de fotos: política de subida, URL pública y descarga.
package files

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/application/dto"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain/entity"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain/repository"
)

// DownloadPath prefijo de la ruta pública de descarga.
const DownloadPath = "/api/files/"

// Service valida y guarda archivos en el ObjectStore.
type Service struct {
	store    repository.ObjectStore
	maxBytes int64
	baseURL  string
	now      func() time.Time
}

// NewService construye el servicio. baseURL vacío = URLs relativas.
func NewService(store repository.ObjectStore, maxBytes int64, baseURL string) *Service {
	return &Service{store: store, maxBytes: maxBytes, baseURL: strings.TrimRight(baseURL, "/"), now: time.Now}
}

// MaxBytes límite de subida configurado.
func (s *Service) MaxBytes() int64 { return s.maxBytes }

// NewPhoto valida una foto y arma el objeto a guardar (con ID nuevo).
// Solo image/*; si el cliente no declara tipo se detecta por contenido.
func (s *Service) NewPhoto(actor dto.Actor, up *dto.FileUpload) (*entity.StoredObject, error) {
	if up == nil || len(up.Data) == 0 {
		return nil, fmt.Errorf("%w: archivo vacío", domain.ErrInvalidInput)
	}
	if int64(len(up.Data)) > s.maxBytes {
		return nil, fmt.Errorf("%w: máximo %d bytes", domain.ErrPayloadTooLarge, s.maxBytes)
	}
	ct := strings.ToLower(strings.TrimSpace(up.ContentType))
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	if ct == "" || ct == "application/octet-stream" {
		ct = http.DetectContentType(up.Data)
	}
	if !strings.HasPrefix(ct, "image/") {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedMedia, ct)
	}
	return &entity.StoredObject{
		ID:          uuid.New().String(),
		Name:        up.Name,
		ContentType: ct,
		Size:        int64(len(up.Data)),
		Data:        up.Data,
		CreatedBy:   actor.UserID,
		CreatedAt:   s.now().UTC(),
	}, nil
}

// Upload valida y guarda una foto suelta.
func (s *Service) Upload(ctx context.Context, actor dto.Actor, up *dto.FileUpload) (*dto.StoredFileResponse, error) {
	obj, err := s.NewPhoto(actor, up)
	if err != nil {
		return nil, err
	}
	if err := s.store.Put(ctx, obj); err != nil {
		return nil, err
	}
	return &dto.StoredFileResponse{ID: obj.ID, URL: s.URL(obj.ID), ContentType: obj.ContentType, Size: obj.Size}, nil
}

// Get devuelve el archivo o ErrNotFound.
func (s *Service) Get(ctx context.Context, id string) (*entity.StoredObject, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}
	obj, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, domain.ErrNotFound
	}
	return obj, nil
}

// URL de descarga de un objeto.
func (s *Service) URL(id string) string {
	return s.baseURL + DownloadPath + id
}

// ObjectID extrae el ID de una URL generada por URL; "" si no es propia.
func (s *Service) ObjectID(url string) string {
	i := strings.LastIndex(url, DownloadPath)
	if i < 0 {
		return ""
	}
	id := url[i+len(DownloadPath):]
	if _, err := uuid.Parse(id); err != nil {
		return ""
	}
	return id
}
