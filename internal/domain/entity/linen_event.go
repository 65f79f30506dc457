package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain/linen"
)

// LinenEvent documento de entrada o devolución de lencería tal como se guarda (JSONB).
// Body conserva el documento original; Date se extrae al guardar para filtrar en SQL.
type LinenEvent struct {
	ID            string
	Kind          linen.Kind
	Date          string // YYYY-MM-DD
	Body          linen.Document
	TotalQuantity decimal.Decimal // suma de las cantidades de las líneas (columna NUMERIC)
	CreatedBy     string
	CreatedByName string
	CreatedAt     time.Time
}
