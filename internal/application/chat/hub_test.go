package chat_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/application/chat"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/application/dto"
)

type gauge struct {
	mu sync.Mutex
	n  int
}

func (g *gauge) ChatSubscribed()   { g.mu.Lock(); g.n++; g.mu.Unlock() }
func (g *gauge) ChatUnsubscribed() { g.mu.Lock(); g.n--; g.mu.Unlock() }

func TestHub_DifundePorSala(t *testing.T) {
	g := &gauge{}
	hub := chat.NewHub(4, g)
	defer hub.Close()

	a := hub.Subscribe("general")
	b := hub.Subscribe("general")
	c := hub.Subscribe("front-desk")
	assert.Equal(t, 3, g.n)

	n := hub.Broadcast("general", dto.ChatMessageResponse{ID: "1", Text: "안녕하세요"})
	assert.Equal(t, 2, n)

	assert.Equal(t, "1", (<-a.C).ID)
	assert.Equal(t, "1", (<-b.C).ID)
	select {
	case m := <-c.C:
		t.Fatalf("otra sala recibió %v", m)
	default:
	}
}

func TestHub_ExpulsaSuscriptorLento(t *testing.T) {
	g := &gauge{}
	hub := chat.NewHub(1, g)
	defer hub.Close()

	slow := hub.Subscribe("general")
	fast := hub.Subscribe("general")

	assert.Equal(t, 2, hub.Broadcast("general", dto.ChatMessageResponse{ID: "1"}))
	<-fast.C

	assert.Equal(t, 1, hub.Broadcast("general", dto.ChatMessageResponse{ID: "2"}), "slow tiene el buffer lleno")
	assert.Equal(t, 1, hub.Subscribers("general"))
	assert.Equal(t, 1, g.n)

	// slow conserva lo ya entregado y luego ve el canal cerrado
	m, ok := <-slow.C
	require.True(t, ok)
	assert.Equal(t, "1", m.ID)
	_, ok = <-slow.C
	assert.False(t, ok)

	assert.Equal(t, "2", (<-fast.C).ID)
}

func TestSubscription_CloseIdempotente(t *testing.T) {
	g := &gauge{}
	hub := chat.NewHub(1, g)

	s := hub.Subscribe("general")
	s.Close()
	s.Close()
	_, ok := <-s.C
	assert.False(t, ok)
	assert.Equal(t, 0, g.n)
	assert.Equal(t, 0, hub.Subscribers("general"))

	hub.Close()
	late := hub.Subscribe("general")
	_, ok = <-late.C
	assert.False(t, ok)
	late.Close()
}

func TestHub_Concurrente(t *testing.T) {
	hub := chat.NewHub(64, nil)
	defer hub.Close()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		s := hub.Subscribe("general")
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range s.C {
			}
		}()
	}
	for i := 0; i < 100; i++ {
		hub.Broadcast("general", dto.ChatMessageResponse{ID: "x"})
	}
	hub.Close()
	wg.Wait()
}
