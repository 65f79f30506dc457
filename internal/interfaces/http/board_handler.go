package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/application/board"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/application/dto"
)

// BoardHandler tablón de avisos.
type BoardHandler struct {
	uc *board.UseCase
}

// NewBoardHandler construye el handler.
func NewBoardHandler(uc *board.UseCase) *BoardHandler {
	return &BoardHandler{uc: uc}
}

// Create godoc
// @Summary      Publicar aviso
// @Tags         board
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreatePostRequest  true  "title, content, pinned"
// @Success      201  {object}  dto.PostResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/board/posts [post]
func (h *BoardHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePostRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), CurrentActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar avisos (fijados primero)
// @Tags         board
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "máx. 100"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {object}  dto.PostListResponse
// @Router       /api/board/posts [get]
func (h *BoardHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.List(c.UserContext(), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle de un aviso
// @Tags         board
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID"
// @Success      200  {object}  dto.PostResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/board/posts/{id} [get]
func (h *BoardHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar aviso (autor o admin)
// @Tags         board
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                 true  "ID"
// @Param        body  body  dto.UpdatePostRequest  true  "campos a cambiar"
// @Success      200  {object}  dto.PostResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/board/posts/{id} [put]
func (h *BoardHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePostRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), CurrentActor(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar aviso (autor o admin)
// @Tags         board
// @Security     BearerAuth
// @Param        id  path  string  true  "ID"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/board/posts/{id} [delete]
func (h *BoardHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), CurrentActor(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
