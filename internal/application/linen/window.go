package linen

import (
	"fmt"
	"strings"
	"time"

	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain/linen"
)

const (
	dateLayout  = "2006-01-02"
	monthLayout = "2006-01"
)

// ParseWindow construye la ventana del reporte.
//   - month "YYYY-MM" → primer..último día del mes.
//   - start/end "YYYY-MM-DD", cualquiera puede faltar.
//   - month junto con start/end, fechas mal formadas o start > end → ErrInvalidInput.
func ParseWindow(month, start, end string) (linen.Window, error) {
	month, start, end = strings.TrimSpace(month), strings.TrimSpace(start), strings.TrimSpace(end)
	if month != "" {
		if start != "" || end != "" {
			return linen.Window{}, fmt.Errorf("%w: use month o start/end, no ambos", domain.ErrInvalidInput)
		}
		first, err := time.Parse(monthLayout, month)
		if err != nil {
			return linen.Window{}, fmt.Errorf("%w: month debe tener formato YYYY-MM", domain.ErrInvalidInput)
		}
		last := first.AddDate(0, 1, -1)
		return linen.Window{StartDate: first.Format(dateLayout), EndDate: last.Format(dateLayout)}, nil
	}
	for _, d := range []string{start, end} {
		if d != "" && !ValidDate(d) {
			return linen.Window{}, fmt.Errorf("%w: fecha %q debe tener formato YYYY-MM-DD", domain.ErrInvalidInput, d)
		}
	}
	if start != "" && end != "" && start > end {
		return linen.Window{}, fmt.Errorf("%w: start posterior a end", domain.ErrInvalidInput)
	}
	return linen.Window{StartDate: start, EndDate: end}, nil
}

// ValidDate informa si s es una fecha de calendario válida "YYYY-MM-DD".
func ValidDate(s string) bool {
	t, err := time.Parse(dateLayout, s)
	return err == nil && t.Format(dateLayout) == s
}

// ParseKind acepta las variantes de ruta y query para el tipo de movimiento.
// "" devuelve "" (ambos tipos).
func ParseKind(s string) (linen.Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return "", nil
	case "incoming", "in":
		return linen.KindIncoming, nil
	case "returned", "returns", "return", "out":
		return linen.KindReturned, nil
	default:
		return "", fmt.Errorf("%w: kind desconocido %q", domain.ErrInvalidInput, s)
	}
}
