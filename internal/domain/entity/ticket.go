package entity

import "time"

// Estados de un ticket de mantenimiento.
const (
	TicketStatusOpen       = "open"
	TicketStatusInProgress = "in_progress"
	TicketStatusDone       = "done"
)

// Prioridades de un ticket.
const (
	TicketPriorityLow    = "low"
	TicketPriorityNormal = "normal"
	TicketPriorityHigh   = "high"
)

// Ticket incidencia de mantenimiento reportada por el personal (habitación, avería, foto).
type Ticket struct {
	ID            string
	Title         string
	Location      string
	Description   string
	Priority      string
	Status        string
	PhotoURL      string
	CreatedBy     string
	CreatedByName string
	Assignee      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

var ticketTransitions = map[string][]string{
	TicketStatusOpen:       {TicketStatusInProgress, TicketStatusDone},
	TicketStatusInProgress: {TicketStatusDone},
}

// CanTransition informa si el ticket puede pasar al estado to. done es terminal.
func (t *Ticket) CanTransition(to string) bool {
	for _, s := range ticketTransitions[t.Status] {
		if s == to {
			return true
		}
	}
	return false
}

// ValidTicketPriority informa si p es una prioridad conocida.
func ValidTicketPriority(p string) bool {
	return p == TicketPriorityLow || p == TicketPriorityNormal || p == TicketPriorityHigh
}

// ValidTicketStatus informa si s es un estado conocido.
func ValidTicketStatus(s string) bool {
	return s == TicketStatusOpen || s == TicketStatusInProgress || s == TicketStatusDone
}
