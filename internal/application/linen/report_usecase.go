package linen

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/application/dto"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain/linen"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain/repository"
)

// FormatJSON formato del reporte servido por la API.
const FormatJSON = "json"

// ReportUseCase reporte agregado por categoría y sus exportaciones.
type ReportUseCase struct {
	repo      repository.LinenRepository
	agg       *linen.Aggregator
	renderers map[string]ReportRenderer
	recorder  Recorder
	now       func() time.Time
}

// NewReportUseCase construye el caso de uso con los formatos de exportación disponibles.
func NewReportUseCase(repo repository.LinenRepository, agg *linen.Aggregator, recorder Recorder, renderers ...ReportRenderer) *ReportUseCase {
	if recorder == nil {
		recorder = NopRecorder{}
	}
	m := make(map[string]ReportRenderer, len(renderers))
	for _, r := range renderers {
		m[r.Format()] = r
	}
	return &ReportUseCase{repo: repo, agg: agg, renderers: m, recorder: recorder, now: time.Now}
}

// Report lee ambas secuencias en paralelo y las agrega dentro de la ventana.
func (uc *ReportUseCase) Report(ctx context.Context, in dto.LinenReportRequest) (*dto.LinenReportResponse, error) {
	w, err := ParseWindow(in.Month, in.Start, in.End)
	if err != nil {
		return nil, err
	}
	report, err := uc.build(ctx, w)
	if err != nil {
		return nil, err
	}
	uc.recorder.LinenReportGenerated(FormatJSON)
	return &dto.LinenReportResponse{Window: w, Report: report, GeneratedAt: uc.now().UTC()}, nil
}

// Export genera el reporte en el formato pedido (xlsx, pdf).
func (uc *ReportUseCase) Export(ctx context.Context, in dto.LinenReportRequest) (*dto.ExportFile, error) {
	format := strings.ToLower(strings.TrimSpace(in.Format))
	if format == "" {
		format = "xlsx"
	}
	renderer, ok := uc.renderers[format]
	if !ok {
		return nil, fmt.Errorf("%w: formato no soportado %q", domain.ErrInvalidInput, in.Format)
	}
	w, err := ParseWindow(in.Month, in.Start, in.End)
	if err != nil {
		return nil, err
	}
	report, err := uc.build(ctx, w)
	if err != nil {
		return nil, err
	}
	data, err := renderer.Render(ctx, ReportTitle(w), w, report)
	if err != nil {
		return nil, fmt.Errorf("exportar reporte %s: %w", format, err)
	}
	uc.recorder.LinenReportGenerated(format)
	return &dto.ExportFile{
		Filename:    ReportFileStem(w) + "." + format,
		ContentType: renderer.ContentType(),
		Data:        data,
	}, nil
}

// Window atajo para clientes que ya traen la ventana (CLI).
func (uc *ReportUseCase) Window(ctx context.Context, w linen.Window) (linen.Report, error) {
	return uc.build(ctx, w)
}

func (uc *ReportUseCase) build(ctx context.Context, w linen.Window) (linen.Report, error) {
	var incoming, returned []linen.Document
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		docs, err := uc.repo.ListDocuments(gctx, linen.KindIncoming, w)
		if err != nil {
			return fmt.Errorf("leer entradas: %w", err)
		}
		incoming = docs
		return nil
	})
	g.Go(func() error {
		docs, err := uc.repo.ListDocuments(gctx, linen.KindReturned, w)
		if err != nil {
			return fmt.Errorf("leer devoluciones: %w", err)
		}
		returned = docs
		return nil
	})
	if err := g.Wait(); err != nil {
		return linen.Report{}, err
	}
	return uc.agg.Aggregate(incoming, returned, w, nil), nil
}

// ReportTitle título legible del reporte.
func ReportTitle(w linen.Window) string {
	switch {
	case w.StartDate == "" && w.EndDate == "":
		return "린넨 입출고 현황 (전체 기간)"
	default:
		return fmt.Sprintf("린넨 입출고 현황 %s ~ %s", orDash(w.StartDate), orDash(w.EndDate))
	}
}

// ReportFileStem nombre de archivo sin extensión, p. ej. linen-report_2024-05-01_2024-05-31.
func ReportFileStem(w linen.Window) string {
	start, end := w.StartDate, w.EndDate
	if start == "" {
		start = "begin"
	}
	if end == "" {
		end = "now"
	}
	return fmt.Sprintf("linen-report_%s_%s", start, end)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
