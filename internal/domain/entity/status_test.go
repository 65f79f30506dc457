package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain/entity"
)

func TestTicket_CanTransition(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{entity.TicketStatusOpen, entity.TicketStatusInProgress, true},
		{entity.TicketStatusOpen, entity.TicketStatusDone, true},
		{entity.TicketStatusInProgress, entity.TicketStatusDone, true},
		{entity.TicketStatusInProgress, entity.TicketStatusOpen, false},
		{entity.TicketStatusDone, entity.TicketStatusOpen, false},
		{entity.TicketStatusDone, entity.TicketStatusInProgress, false},
		{entity.TicketStatusOpen, entity.TicketStatusOpen, false},
	}
	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			tk := &entity.Ticket{Status: tt.from}
			assert.Equal(t, tt.want, tk.CanTransition(tt.to))
		})
	}
}

func TestLostItem_CanTransition(t *testing.T) {
	stored := &entity.LostItem{Status: entity.LostItemStatusStored}
	assert.True(t, stored.CanTransition(entity.LostItemStatusReturned))
	assert.True(t, stored.CanTransition(entity.LostItemStatusDiscarded))
	assert.False(t, stored.CanTransition(entity.LostItemStatusStored))

	returned := &entity.LostItem{Status: entity.LostItemStatusReturned}
	assert.False(t, returned.CanTransition(entity.LostItemStatusDiscarded))
}

func TestValidTicketPriority(t *testing.T) {
	assert.True(t, entity.ValidTicketPriority(entity.TicketPriorityHigh))
	assert.False(t, entity.ValidTicketPriority("urgent"))
}
