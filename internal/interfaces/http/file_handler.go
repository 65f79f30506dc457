package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/application/files"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain"
)

// FileHandler subida y descarga de fotos.
type FileHandler struct {
	svc *files.Service
}

// NewFileHandler construye el handler.
func NewFileHandler(svc *files.Service) *FileHandler {
	return &FileHandler{svc: svc}
}

// Upload godoc
// @Summary      Subir foto
// @Tags         files
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file  true  "Imagen"
// @Success      201  {object}  dto.StoredFileResponse
// @Failure      413  {object}  dto.ErrorResponse
// @Failure      415  {object}  dto.ErrorResponse
// @Router       /api/files [post]
func (h *FileHandler) Upload(c *fiber.Ctx) error {
	up, err := formPhoto(c, "file", h.svc.MaxBytes())
	if err != nil {
		return respondError(c, err)
	}
	if up == nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	out, err := h.svc.Upload(c.UserContext(), CurrentActor(c), up)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Download godoc
// @Summary      Descargar archivo (público)
// @Tags         files
// @Produce      octet-stream
// @Param        id  path  string  true  "ID"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/files/{id} [get]
func (h *FileHandler) Download(c *fiber.Ctx) error {
	obj, err := h.svc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, obj.ContentType)
	c.Set(fiber.HeaderCacheControl, "private, max-age=86400")
	return c.Send(obj.Data)
}
