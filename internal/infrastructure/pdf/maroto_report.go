// Package pdf genera el reporte de lencería en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título                  │  Fecha de generación      │
//	│  Período del reporte                                         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: 품목 | 입고 | 반납 | 차이                               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: 합계                                               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/johnfercher/maroto/v2/pkg/repository"

	linenapp "github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/application/linen"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain/linen"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 170, Green: 30, Blue: 30}
)

const (
	defaultFamily = "helvetica"
	customFamily  = "haru-ko"
	totalLabel    = "합계"
)

// ── Renderer ──────────────────────────────────────────────────────────────────

// Options configuración del renderer.
// FontFile es un TTF con glifos hangul; sin él se usa helvetica (solo texto latino).
type Options struct {
	FontFile string
	Author   string
}

// ReportRenderer implementa linen.ReportRenderer usando Maroto v2.
type ReportRenderer struct {
	opts Options
	now  func() time.Time
}

var _ linenapp.ReportRenderer = (*ReportRenderer)(nil)

// NewReportRenderer construye el renderer.
func NewReportRenderer(opts Options) *ReportRenderer {
	return &ReportRenderer{opts: opts, now: time.Now}
}

func (g *ReportRenderer) Format() string      { return "pdf" }
func (g *ReportRenderer) ContentType() string { return "application/pdf" }

// Render genera el PDF y devuelve sus bytes.
func (g *ReportRenderer) Render(_ context.Context, title string, w linen.Window, rep linen.Report) ([]byte, error) {
	family := defaultFamily
	b := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(12).WithBottomMargin(12).
		WithTitle(title, true)
	if g.opts.Author != "" {
		b = b.WithAuthor(g.opts.Author, true)
	}
	if g.opts.FontFile != "" {
		fonts, err := repository.New().
			AddUTF8Font(customFamily, fontstyle.Normal, g.opts.FontFile).
			AddUTF8Font(customFamily, fontstyle.Bold, g.opts.FontFile).
			Load()
		if err != nil {
			return nil, fmt.Errorf("pdf: cargar fuente %s: %w", g.opts.FontFile, err)
		}
		b = b.WithCustomFonts(fonts)
		family = customFamily
	}
	cfg := b.WithDefaultFont(&props.Font{Family: family, Size: 9}).Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(title, g.now()))
	m.AddRows(windowRow(w))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(rep.PerCategory) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(rep.Totals()))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y fecha de generación (der).
func headerRow(title string, generated time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New(generated.Format("2006-01-02 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

func windowRow(w linen.Window) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("%s ~ %s", nonEmpty(w.StartDate, "-"), nonEmpty(w.EndDate, "-")), props.Text{
			Size: 9, Color: colorGray, Top: 1,
		}),
	))
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("품목", 6, align.Left),
		h("입고", 2, align.Right),
		h("반납", 2, align.Right),
		h("차이", 2, align.Right),
	)
}

// tableRows: una fila por categoría; la diferencia negativa va en rojo.
func tableRows(lines []linen.CategoryLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		netProps := props.Text{Size: 9, Align: align.Right, Top: 1, Right: 1}
		if l.Net < 0 {
			netProps.Color = colorRed
		}
		result = append(result, row.New(7).Add(
			col.New(6).Add(text.New(l.Name, props.Text{Size: 9, Top: 1, Left: 1})),
			col.New(2).Add(text.New(formatCount(l.Incoming), props.Text{Size: 9, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(formatCount(l.Returned), props.Text{Size: 9, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(formatCount(l.Net), netProps)),
		))
	}
	return result
}

func totalsRow(t linen.CategoryTotals) core.Row {
	cell := func(s string, a align.Type) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: a,
			Color: colorPrimary, Top: 1, Left: 1, Right: 1,
		})
	}
	return row.New(9).Add(
		col.New(6).Add(cell(totalLabel, align.Left)),
		col.New(2).Add(cell(formatCount(t.Incoming), align.Right)),
		col.New(2).Add(cell(formatCount(t.Returned), align.Right)),
		col.New(2).Add(cell(formatCount(t.Net), align.Right)),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatCount inserta comas de miles. Ej: 25000 → "25,000", -1200 → "-1,200".
func formatCount(n int64) string {
	s := strconv.FormatInt(n, 10)
	sign := ""
	if n < 0 {
		sign, s = "-", s[1:]
	}
	if len(s) <= 3 {
		return sign + s
	}
	buf := make([]byte, 0, len(s)+len(s)/3)
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	return sign + string(buf)
}
