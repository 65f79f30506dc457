package linen

import (
	"fmt"
	"strings"
	"time"
)

// Document documento crudo tal como lo guarda el almacén de documentos (JSONB decodificado).
type Document = map[string]any

// FieldAliases lista ordenada de nombres de campo aceptados para un mismo dato lógico.
// Los formularios antiguos guardaron el mismo valor bajo nombres distintos.
type FieldAliases []string

// Alias conocidos por dato lógico. El orden importa: gana el primero presente.
var (
	NameFields             = FieldAliases{"name", "linenType", "type", "item", "itemName"}
	IncomingQuantityFields = FieldAliases{"quantity", "count", "qty", "incomingQuantity", "receivedQuantity"}
	ReturnedQuantityFields = FieldAliases{"returnQuantity", "returnedQuantity", "quantity", "count", "qty"}
	DateFields             = FieldAliases{"date", "receivedDate", "returnDate", "incomingDate"}
	ItemsFields            = FieldAliases{"items", "linens", "lines"}
)

// Resolve devuelve el valor del primer alias presente en doc.
// Presente = clave existente, valor no nulo y, si es texto, no vacío tras recortar espacios.
func (a FieldAliases) Resolve(doc Document) (any, bool) {
	if doc == nil {
		return nil, false
	}
	for _, field := range a {
		v, ok := doc[field]
		if !ok || v == nil {
			continue
		}
		if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
			continue
		}
		return v, true
	}
	return nil, false
}

// ResolveString como Resolve pero convierte el valor a texto.
func (a FieldAliases) ResolveString(doc Document) string {
	v, ok := a.Resolve(doc)
	if !ok {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case time.Time:
		return t.Format("2006-01-02")
	default:
		return fmt.Sprint(t)
	}
}

// DefaultDateOf obtiene la fecha "YYYY-MM-DD" de un documento de entrada o devolución.
func DefaultDateOf(doc Document) string {
	return strings.TrimSpace(DateFields.ResolveString(doc))
}
