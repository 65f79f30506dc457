package repository

import "context"

// TxRepos repositorios atados a una misma transacción.
type TxRepos struct {
	Objects   ObjectStore
	Tickets   TicketRepository
	LostItems LostItemRepository
}

// TxRunner ejecuta fn dentro de una transacción: Commit si fn devuelve nil, Rollback si no.
// Se usa cuando un registro y su foto deben guardarse juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos TxRepos) error) error
}
