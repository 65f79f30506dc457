package dto

import (
	"time"

	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain/linen"
)

// LinenItemInput línea de un formulario de entrada/devolución.
// Quantity acepta número o texto numérico ("3").
type LinenItemInput struct {
	Name     string `json:"name"`
	Quantity any    `json:"quantity"`
}

// LinenEntryRequest cuerpo de POST /api/linen/incoming y /api/linen/returns.
type LinenEntryRequest struct {
	Date  string           `json:"date"`
	Items []LinenItemInput `json:"items"`
	Note  string           `json:"note"`
}

// LinenHistoryItem línea de un evento; DisplayName es el nombre normalizado para agrupar.
type LinenHistoryItem struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Quantity    int64  `json:"quantity"`
}

// LinenEventResponse evento guardado.
type LinenEventResponse struct {
	ID            string             `json:"id"`
	Kind          linen.Kind         `json:"kind"`
	Date          string             `json:"date"`
	Items         []LinenHistoryItem `json:"items"`
	TotalQuantity int64              `json:"total_quantity"`
	Note          string             `json:"note,omitempty"`
	CreatedBy     string             `json:"created_by"`
	CreatedByName string             `json:"created_by_name"`
	CreatedAt     time.Time          `json:"created_at"`
}

// LinenHistoryRequest filtros de GET /api/linen/history.
type LinenHistoryRequest struct {
	Start  string `query:"start"`
	End    string `query:"end"`
	Kind   string `query:"kind"`
	Limit  int    `query:"limit"`
	Offset int    `query:"offset"`
}

// LinenHistoryResponse página del historial combinado.
type LinenHistoryResponse struct {
	Items []LinenEventResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}

// LinenReportRequest ventana del reporte: month (YYYY-MM) o start/end (YYYY-MM-DD).
type LinenReportRequest struct {
	Month  string `query:"month"`
	Start  string `query:"start"`
	End    string `query:"end"`
	Format string `query:"format"`
}

// LinenReportResponse reporte agregado más la ventana aplicada.
type LinenReportResponse struct {
	Window      linen.Window `json:"window"`
	Report      linen.Report `json:"report"`
	GeneratedAt time.Time    `json:"generated_at"`
}

// LinenCatalogResponse catálogo ordenado.
type LinenCatalogResponse struct {
	Categories []string `json:"categories"`
}

// ExportFile archivo generado para descarga.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}
