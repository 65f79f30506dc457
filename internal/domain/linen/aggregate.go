package linen

import "fmt"

// Kind sentido del movimiento de lencería.
type Kind string

const (
	KindIncoming Kind = "incoming" // entrada desde la lavandería
	KindReturned Kind = "returned" // devolución a la lavandería
)

// Valid informa si k es un tipo conocido.
func (k Kind) Valid() bool {
	return k == KindIncoming || k == KindReturned
}

// RawLinenRecord línea ya normalizada extraída de un documento.
type RawLinenRecord struct {
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
	Kind     Kind   `json:"kind"`
}

// Window rango de fechas inclusivo "YYYY-MM-DD". Un extremo vacío no limita.
type Window struct {
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

// Contains informa si date cae dentro de la ventana.
// Las fechas tienen formato fijo, así que basta la comparación lexicográfica.
// Un documento sin fecha nunca está dentro.
func (w Window) Contains(date string) bool {
	if date == "" {
		return false
	}
	if w.StartDate != "" && date < w.StartDate {
		return false
	}
	if w.EndDate != "" && date > w.EndDate {
		return false
	}
	return true
}

// String representación legible, usada en nombres de archivo y logs.
func (w Window) String() string {
	start, end := w.StartDate, w.EndDate
	if start == "" {
		start = "*"
	}
	if end == "" {
		end = "*"
	}
	return fmt.Sprintf("%s..%s", start, end)
}

// DateFunc extrae la fecha de un documento.
type DateFunc func(Document) string

// CategoryTotals totales de una categoría. Net = Incoming - Returned.
type CategoryTotals struct {
	Incoming int64 `json:"incoming"`
	Returned int64 `json:"returned"`
	Net      int64 `json:"net"`
}

// CategoryLine fila del reporte para una categoría del catálogo.
type CategoryLine struct {
	Name string `json:"name"`
	CategoryTotals
}

// Report resultado de Aggregate: denso sobre el catálogo y en orden de catálogo.
type Report struct {
	PerCategory   []CategoryLine `json:"per_category"`
	TotalIncoming int64          `json:"total_incoming"`
	TotalReturned int64          `json:"total_returned"`
	TotalNet      int64          `json:"total_net"`
}

// Totals devuelve los totales generales como CategoryTotals (fila "합계" de las exportaciones).
func (r Report) Totals() CategoryTotals {
	return CategoryTotals{Incoming: r.TotalIncoming, Returned: r.TotalReturned, Net: r.TotalNet}
}

// Aggregator normaliza y agrega registros contra un catálogo fijo.
// No guarda estado entre llamadas; una instancia se comparte entre goroutines.
type Aggregator struct {
	catalog Catalog
}

// NewAggregator construye el agregador con el catálogo inyectado.
func NewAggregator(catalog Catalog) *Aggregator {
	return &Aggregator{catalog: catalog}
}

// Catalog devuelve el catálogo configurado.
func (a *Aggregator) Catalog() Catalog { return a.catalog }

// Normalize atajo a Catalog.Normalize.
func (a *Aggregator) Normalize(raw string) string {
	return a.catalog.Normalize(raw)
}

// ExtractRecords convierte líneas crudas en registros normalizados.
// Las cantidades inválidas valen 0; las líneas sin nombre se descartan. Nunca falla.
func (a *Aggregator) ExtractRecords(items []Document, kind Kind) []RawLinenRecord {
	qtyFields := IncomingQuantityFields
	if kind == KindReturned {
		qtyFields = ReturnedQuantityFields
	}
	out := make([]RawLinenRecord, 0, len(items))
	for _, item := range items {
		name := a.catalog.Normalize(NameFields.ResolveString(item))
		if name == "" {
			continue
		}
		qty, _ := qtyFields.Resolve(item)
		out = append(out, RawLinenRecord{
			Name:     name,
			Quantity: ParseQuantity(qty),
			Kind:     kind,
		})
	}
	return out
}

// Aggregate filtra los documentos por ventana, extrae sus líneas y suma por categoría.
// dateOf nil usa DefaultDateOf. Los nombres fuera del catálogo no aparecen en el reporte.
func (a *Aggregator) Aggregate(incoming, returned []Document, w Window, dateOf DateFunc) Report {
	if dateOf == nil {
		dateOf = DefaultDateOf
	}
	in := make(map[string]int64, a.catalog.Len())
	out := make(map[string]int64, a.catalog.Len())

	for _, rec := range a.ExtractRecords(a.linesInWindow(incoming, w, dateOf), KindIncoming) {
		in[rec.Name] += rec.Quantity
	}
	for _, rec := range a.ExtractRecords(a.linesInWindow(returned, w, dateOf), KindReturned) {
		out[rec.Name] += rec.Quantity
	}

	report := Report{PerCategory: make([]CategoryLine, 0, a.catalog.Len())}
	for _, name := range a.catalog.names {
		line := CategoryLine{
			Name: name,
			CategoryTotals: CategoryTotals{
				Incoming: in[name],
				Returned: out[name],
				Net:      in[name] - out[name],
			},
		}
		report.PerCategory = append(report.PerCategory, line)
		report.TotalIncoming += line.Incoming
		report.TotalReturned += line.Returned
	}
	report.TotalNet = report.TotalIncoming - report.TotalReturned
	return report
}

// linesInWindow aplana los documentos dentro de la ventana en sus líneas.
func (a *Aggregator) linesInWindow(docs []Document, w Window, dateOf DateFunc) []Document {
	var lines []Document
	for _, doc := range docs {
		if !w.Contains(dateOf(doc)) {
			continue
		}
		lines = append(lines, ItemsOf(doc)...)
	}
	return lines
}

// ItemsOf devuelve las líneas de un documento: el arreglo "items" (o alias) si existe;
// si no, el propio documento es una línea (formato plano antiguo).
// Los elementos del arreglo que no son objetos se ignoran.
func ItemsOf(doc Document) []Document {
	v, ok := ItemsFields.Resolve(doc)
	if !ok {
		if doc == nil {
			return nil
		}
		return []Document{doc}
	}
	switch items := v.(type) {
	case []Document:
		return items
	case []any:
		out := make([]Document, 0, len(items))
		for _, it := range items {
			if m, isMap := it.(map[string]any); isMap {
				out = append(out, m)
			}
		}
		return out
	default:
		return nil
	}
}
