// Package excel exportación del reporte de lencería a xlsx con excelize.
package excel

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	linenapp "github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/application/linen"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain/linen"
)

// SheetName nombre de la hoja del reporte.
const SheetName = "린넨 현황"

// TotalLabel etiqueta de la fila de totales.
const TotalLabel = "합계"

// header fila de encabezado de la tabla; la tabla empieza en la fila 4.
var header = []interface{}{"품목", "입고", "반납", "차이"}

const tableStartRow = 4

// ReportRenderer genera el xlsx de un reporte.
type ReportRenderer struct{}

var _ linenapp.ReportRenderer = (*ReportRenderer)(nil)

// NewReportRenderer construye el renderer.
func NewReportRenderer() *ReportRenderer { return &ReportRenderer{} }

func (r *ReportRenderer) Format() string { return "xlsx" }

func (r *ReportRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Render escribe título, ventana, una fila por categoría y la fila de totales.
func (r *ReportRenderer) Render(_ context.Context, title string, w linen.Window, rep linen.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if err := f.SetSheetName(sheet, SheetName); err != nil {
		return nil, fmt.Errorf("excel: renombrar hoja: %w", err)
	}
	sheet = SheetName

	if err := f.SetCellValue(sheet, "A1", title); err != nil {
		return nil, fmt.Errorf("excel: título: %w", err)
	}
	if err := f.SetCellValue(sheet, "A2", "기간: "+w.String()); err != nil {
		return nil, fmt.Errorf("excel: ventana: %w", err)
	}

	row := tableStartRow
	if err := setRow(f, sheet, row, header); err != nil {
		return nil, err
	}
	for _, line := range rep.PerCategory {
		row++
		if err := setRow(f, sheet, row, []interface{}{line.Name, line.Incoming, line.Returned, line.Net}); err != nil {
			return nil, err
		}
	}
	row++
	totals := rep.Totals()
	if err := setRow(f, sheet, row, []interface{}{TotalLabel, totals.Incoming, totals.Returned, totals.Net}); err != nil {
		return nil, err
	}

	if err := applyStyles(f, sheet, row); err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("excel: escribir archivo: %w", err)
	}
	return buf.Bytes(), nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("excel: celda fila %d: %w", row, err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("excel: fila %d: %w", row, err)
	}
	return nil
}

// applyStyles negrita en título, encabezado y totales; anchos de columna fijos.
func applyStyles(f *excelize.File, sheet string, totalRow int) error {
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("excel: estilo: %w", err)
	}
	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return fmt.Errorf("excel: estilo: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", "A1", titleStyle); err != nil {
		return err
	}
	headerStart, _ := excelize.CoordinatesToCellName(1, tableStartRow)
	headerEnd, _ := excelize.CoordinatesToCellName(len(header), tableStartRow)
	if err := f.SetCellStyle(sheet, headerStart, headerEnd, bold); err != nil {
		return err
	}
	totalStart, _ := excelize.CoordinatesToCellName(1, totalRow)
	totalEnd, _ := excelize.CoordinatesToCellName(len(header), totalRow)
	if err := f.SetCellStyle(sheet, totalStart, totalEnd, bold); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "A", "A", 22); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "B", "D", 10)
}
