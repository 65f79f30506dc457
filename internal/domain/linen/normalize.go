package linen

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize mapea una etiqueta libre a su nombre canónico.
//
//   - "" → "".
//   - Se eliminan TODOS los espacios (no solo los extremos) para formar la clave.
//   - Se recorre el catálogo en orden; gana la primera entrada cuya clave está contenida
//     en la clave de la etiqueta (coincidencia por subcadena, no igualdad).
//   - Sin coincidencia se devuelve la etiqueta original sin modificar.
//
// La coincidencia por subcadena puede dar falsos positivos con textos que contienen
// un nombre de categoría; se mantiene así a propósito.
func (c Catalog) Normalize(raw string) string {
	if raw == "" {
		return ""
	}
	key := compareKey(raw)
	if key == "" {
		return raw
	}
	for i, k := range c.keys {
		if strings.Contains(key, k) {
			return c.names[i]
		}
	}
	return raw
}

// compareKey lleva el texto a NFC (hangul compuesto) y quita cualquier espacio.
func compareKey(s string) string {
	s = norm.NFC.String(s)
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '\uFEFF' {
			return -1
		}
		return r
	}, s)
}
