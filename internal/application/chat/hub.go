package chat

import (
	"sync"

	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/application/dto"
)

// DefaultBuffer mensajes pendientes por suscriptor antes de considerarlo lento.
const DefaultBuffer = 32

// Observer recibe altas y bajas de suscriptores (métricas).
type Observer interface {
	ChatSubscribed()
	ChatUnsubscribed()
}

type nopObserver struct{}

func (nopObserver) ChatSubscribed()   {}
func (nopObserver) ChatUnsubscribed() {}

// Hub difunde mensajes a los suscriptores en vivo de cada sala.
// Broadcast nunca bloquea: un suscriptor con el buffer lleno se expulsa y su canal se cierra.
type Hub struct {
	mu     sync.Mutex
	rooms  map[string]map[*Subscription]struct{}
	buffer int
	obs    Observer
	closed bool
}

// Subscription conexión en vivo a una sala. C se cierra al desuscribir, al expulsar o al cerrar el hub.
type Subscription struct {
	C    <-chan dto.ChatMessageResponse
	ch   chan dto.ChatMessageResponse
	room string
	hub  *Hub
}

// NewHub construye el hub. buffer <= 0 usa DefaultBuffer; obs puede ser nil.
func NewHub(buffer int, obs Observer) *Hub {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	if obs == nil {
		obs = nopObserver{}
	}
	return &Hub{rooms: make(map[string]map[*Subscription]struct{}), buffer: buffer, obs: obs}
}

// Subscribe abre una suscripción a room. Con el hub cerrado devuelve una suscripción ya cerrada.
func (h *Hub) Subscribe(room string) *Subscription {
	ch := make(chan dto.ChatMessageResponse, h.buffer)
	s := &Subscription{C: ch, ch: ch, room: room, hub: h}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		close(ch)
		return s
	}
	subs, ok := h.rooms[room]
	if !ok {
		subs = make(map[*Subscription]struct{})
		h.rooms[room] = subs
	}
	subs[s] = struct{}{}
	h.obs.ChatSubscribed()
	return s
}

// Close desuscribe. Idempotente.
func (s *Subscription) Close() {
	s.hub.mu.Lock()
	defer s.hub.mu.Unlock()
	s.hub.removeLocked(s)
}

// Broadcast entrega msg a los suscriptores de room y devuelve cuántos lo recibieron.
func (h *Hub) Broadcast(room string, msg dto.ChatMessageResponse) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	delivered := 0
	for s := range h.rooms[room] {
		select {
		case s.ch <- msg:
			delivered++
		default:
			h.removeLocked(s)
		}
	}
	return delivered
}

// Subscribers número de suscriptores de una sala.
func (h *Hub) Subscribers(room string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.rooms[room])
}

// Close cierra todas las suscripciones; las siguientes nacen cerradas.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, subs := range h.rooms {
		for s := range subs {
			h.removeLocked(s)
		}
	}
	h.closed = true
}

// removeLocked quita s de su sala y cierra su canal si seguía registrado.
func (h *Hub) removeLocked(s *Subscription) {
	subs, ok := h.rooms[s.room]
	if !ok {
		return
	}
	if _, ok := subs[s]; !ok {
		return
	}
	delete(subs, s)
	if len(subs) == 0 {
		delete(h.rooms, s.room)
	}
	close(s.ch)
	h.obs.ChatUnsubscribed()
}
