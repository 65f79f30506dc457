package linen

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseQuantity convierte una cantidad cruda a entero. Nunca falla:
//
//   - números (enteros, flotantes, json.Number, decimal.Decimal) → parte entera;
//   - texto numérico ("3", " 12 ", "2.5") → parte entera tras recortar espacios;
//   - cualquier otra cosa (ausente, vacío, "abc", bool, NaN) → 0;
//   - valores fuera del rango de int64 → 0.
//
// No se valida el rango: los ajustes negativos se suman tal cual.
func ParseQuantity(v any) int64 {
	switch t := v.(type) {
	case nil:
		return 0
	case int:
		return int64(t)
	case int8:
		return int64(t)
	case int16:
		return int64(t)
	case int32:
		return int64(t)
	case int64:
		return t
	case uint:
		return unsignedQuantity(uint64(t))
	case uint8:
		return int64(t)
	case uint16:
		return int64(t)
	case uint32:
		return int64(t)
	case uint64:
		return unsignedQuantity(t)
	case float32:
		return floatQuantity(float64(t))
	case float64:
		return floatQuantity(t)
	case decimal.Decimal:
		return decimalQuantity(t)
	case json.Number:
		return stringQuantity(t.String())
	case string:
		return stringQuantity(t)
	default:
		return 0
	}
}

var (
	maxQuantity = decimal.NewFromInt(math.MaxInt64)
	minQuantity = decimal.NewFromInt(math.MinInt64)
)

func unsignedQuantity(u uint64) int64 {
	if u > math.MaxInt64 {
		return 0
	}
	return int64(u)
}

// decimalQuantity trunca hacia cero; IntPart no está definido fuera de int64.
func decimalQuantity(d decimal.Decimal) int64 {
	d = d.Truncate(0)
	if d.GreaterThan(maxQuantity) || d.LessThan(minQuantity) {
		return 0
	}
	return d.IntPart()
}

func floatQuantity(f float64) int64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return decimalQuantity(decimal.NewFromFloat(f))
}

func stringQuantity(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	return decimalQuantity(d)
}
