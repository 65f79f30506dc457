package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/application/dto"
	linenapp "github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/application/linen"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain/linen"
)

// LinenHandler entradas, devoluciones, historial y reportes de lencería.
type LinenHandler struct {
	entries *linenapp.EntryUseCase
	history *linenapp.HistoryUseCase
	reports *linenapp.ReportUseCase
	catalog linen.Catalog
}

// NewLinenHandler construye el handler.
func NewLinenHandler(entries *linenapp.EntryUseCase, history *linenapp.HistoryUseCase, reports *linenapp.ReportUseCase, catalog linen.Catalog) *LinenHandler {
	return &LinenHandler{entries: entries, history: history, reports: reports, catalog: catalog}
}

// Catalog godoc
// @Summary      Catálogo de categorías
// @Tags         linen
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.LinenCatalogResponse
// @Router       /api/linen/catalog [get]
func (h *LinenHandler) Catalog(c *fiber.Ctx) error {
	return c.JSON(dto.LinenCatalogResponse{Categories: h.catalog.Names()})
}

// RecordIncoming godoc
// @Summary      Registrar entrada de lencería
// @Tags         linen
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.LinenEntryRequest  true  "date, items, note"
// @Success      201   {object}  dto.LinenEventResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/linen/incoming [post]
func (h *LinenHandler) RecordIncoming(c *fiber.Ctx) error {
	return h.record(c, linen.KindIncoming)
}

// RecordReturn godoc
// @Summary      Registrar devolución de lencería
// @Tags         linen
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.LinenEntryRequest  true  "date, items, note"
// @Success      201   {object}  dto.LinenEventResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/linen/returns [post]
func (h *LinenHandler) RecordReturn(c *fiber.Ctx) error {
	return h.record(c, linen.KindReturned)
}

func (h *LinenHandler) record(c *fiber.Ctx, kind linen.Kind) error {
	var in dto.LinenEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.entries.Record(c.UserContext(), CurrentActor(c), kind, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Delete godoc
// @Summary      Borrar entrada o devolución (admin)
// @Tags         linen
// @Security     BearerAuth
// @Param        kind  path  string  true  "incoming | returns"
// @Param        id    path  string  true  "ID del evento"
// @Success      204
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/linen/{kind}/{id} [delete]
func (h *LinenHandler) Delete(c *fiber.Ctx) error {
	kind, err := linenapp.ParseKind(c.Params("kind"))
	if err != nil || kind == "" {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ruta no encontrada"})
	}
	if err := h.entries.Delete(c.UserContext(), CurrentActor(c), kind, c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// History godoc
// @Summary      Historial combinado de entradas y devoluciones
// @Tags         linen
// @Produce      json
// @Security     BearerAuth
// @Param        start   query  string  false  "YYYY-MM-DD"
// @Param        end     query  string  false  "YYYY-MM-DD"
// @Param        kind    query  string  false  "incoming | returned"
// @Param        limit   query  int     false  "máx. 100"
// @Param        offset  query  int     false  "desplazamiento"
// @Success      200  {object}  dto.LinenHistoryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/linen/history [get]
func (h *LinenHandler) History(c *fiber.Ctx) error {
	var in dto.LinenHistoryRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.history.List(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Report godoc
// @Summary      Reporte agregado por categoría
// @Tags         linen
// @Produce      json
// @Security     BearerAuth
// @Param        month  query  string  false  "YYYY-MM"
// @Param        start  query  string  false  "YYYY-MM-DD"
// @Param        end    query  string  false  "YYYY-MM-DD"
// @Success      200  {object}  dto.LinenReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/linen/report [get]
func (h *LinenHandler) Report(c *fiber.Ctx) error {
	var in dto.LinenReportRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.reports.Report(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar reporte (admin)
// @Tags         linen
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        format  query  string  false  "xlsx | pdf"
// @Param        month   query  string  false  "YYYY-MM"
// @Param        start   query  string  false  "YYYY-MM-DD"
// @Param        end     query  string  false  "YYYY-MM-DD"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/linen/report/export [get]
func (h *LinenHandler) Export(c *fiber.Ctx) error {
	var in dto.LinenReportRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	file, err := h.reports.Export(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+file.Filename+`"`)
	return c.Send(file.Data)
}
