package main

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain/linen"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	totalStyle  = lipgloss.NewStyle().Bold(true)
	negStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

// renderTable dibuja el reporte alineando por ancho visible (el hangul ocupa dos celdas).
func renderTable(title string, w linen.Window, rep linen.Report) string {
	headers := []string{"품목", "입고", "반납", "차이"}
	rows := make([][]string, 0, len(rep.PerCategory)+1)
	for _, l := range rep.PerCategory {
		rows = append(rows, totalsCells(l.Name, l.CategoryTotals))
	}
	totals := totalsCells("합계", rep.Totals())

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, r := range append(rows, totals) {
		for i, cell := range r {
			if cw := lipgloss.Width(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(title))
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render("기간: " + w.String()))
	sb.WriteString("\n\n")
	sb.WriteString(renderRow(headers, widths, headerStyle, nil))
	for i, r := range rows {
		sb.WriteString(renderRow(r, widths, lipgloss.NewStyle(), &rep.PerCategory[i].CategoryTotals))
	}
	total := rep.Totals()
	sb.WriteString(renderRow(totals, widths, totalStyle, &total))
	return sb.String()
}

func totalsCells(name string, t linen.CategoryTotals) []string {
	return []string{
		name,
		strconv.FormatInt(t.Incoming, 10),
		strconv.FormatInt(t.Returned, 10),
		strconv.FormatInt(t.Net, 10),
	}
}

// renderRow la primera columna a la izquierda y las cantidades a la derecha.
func renderRow(cells []string, widths []int, style lipgloss.Style, t *linen.CategoryTotals) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		align := lipgloss.Right
		if i == 0 {
			align = lipgloss.Left
		}
		s := style.Width(widths[i]).Align(align)
		if i == len(cells)-1 && t != nil && t.Net < 0 {
			s = s.Inherit(negStyle)
		}
		parts[i] = s.Render(cell)
	}
	return strings.Join(parts, "  ") + "\n"
}
