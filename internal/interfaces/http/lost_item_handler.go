package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/application/dto"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/application/lostitems"
)

// LostItemHandler objetos perdidos.
type LostItemHandler struct {
	uc       *lostitems.UseCase
	maxPhoto int64
}

// NewLostItemHandler construye el handler.
func NewLostItemHandler(uc *lostitems.UseCase, maxPhoto int64) *LostItemHandler {
	return &LostItemHandler{uc: uc, maxPhoto: maxPhoto}
}

// Create godoc
// @Summary      Registrar objeto perdido
// @Tags         lost-items
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        item_name       formData  string  true   "Objeto"
// @Param        found_location  formData  string  true   "Dónde se encontró"
// @Param        found_date      formData  string  true   "YYYY-MM-DD"
// @Param        description     formData  string  false  "Detalle"
// @Param        photo           formData  file    false  "Foto (image/*)"
// @Success      201  {object}  dto.LostItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/lost-items [post]
func (h *LostItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLostItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	photo, err := formPhoto(c, "photo", h.maxPhoto)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), CurrentActor(c), in, photo)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar objetos perdidos
// @Tags         lost-items
// @Produce      json
// @Security     BearerAuth
// @Param        status  query  string  false  "stored | returned | discarded"
// @Success      200  {object}  dto.LostItemListResponse
// @Router       /api/lost-items [get]
func (h *LostItemHandler) List(c *fiber.Ctx) error {
	var in dto.LostItemListRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.List(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle de un objeto perdido
// @Tags         lost-items
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID"
// @Success      200  {object}  dto.LostItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/lost-items/{id} [get]
func (h *LostItemHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Devolver o descartar un objeto
// @Tags         lost-items
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                           true  "ID"
// @Param        body  body  dto.UpdateLostItemStatusRequest  true  "status, owner_name"
// @Success      200  {object}  dto.LostItemResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/lost-items/{id}/status [patch]
func (h *LostItemHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateLostItemStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateStatus(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar objeto perdido (admin)
// @Tags         lost-items
// @Security     BearerAuth
// @Param        id  path  string  true  "ID"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/lost-items/{id} [delete]
func (h *LostItemHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), CurrentActor(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
