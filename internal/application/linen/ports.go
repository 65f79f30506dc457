// Package linen casos de uso de lencería: registro de entradas/devoluciones,
// historial combinado, reporte agregado y exportación.
package linen

import (
	"context"

	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain/linen"
)

// Recorder métricas de negocio de lencería (lo implementa infrastructure/metrics).
type Recorder interface {
	UnmatchedLinenName(kind linen.Kind)
	LinenReportGenerated(format string)
}

// NopRecorder Recorder que no registra nada.
type NopRecorder struct{}

func (NopRecorder) UnmatchedLinenName(linen.Kind) {}
func (NopRecorder) LinenReportGenerated(string) {}

// ReportRenderer convierte un reporte en un archivo descargable (xlsx, pdf).
type ReportRenderer interface {
	Format() string
	ContentType() string
	Render(ctx context.Context, title string, w linen.Window, r linen.Report) ([]byte, error)
}
