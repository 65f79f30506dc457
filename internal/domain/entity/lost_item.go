package entity

import "time"

// Estados de un objeto perdido.
const (
	LostItemStatusStored    = "stored"
	LostItemStatusReturned  = "returned"
	LostItemStatusDiscarded = "discarded"
)

// LostItem objeto olvidado por un huésped y guardado por el personal.
type LostItem struct {
	ID            string
	ItemName      string
	FoundLocation string
	FoundDate     string // YYYY-MM-DD
	Description   string
	Status        string
	OwnerName     string // se completa al devolverlo
	PhotoURL      string
	CreatedBy     string
	CreatedByName string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CanTransition solo un objeto guardado puede devolverse o descartarse.
func (l *LostItem) CanTransition(to string) bool {
	return l.Status == LostItemStatusStored &&
		(to == LostItemStatusReturned || to == LostItemStatusDiscarded)
}

// ValidLostItemStatus informa si s es un estado conocido.
func ValidLostItemStatus(s string) bool {
	return s == LostItemStatusStored || s == LostItemStatusReturned || s == LostItemStatusDiscarded
}
