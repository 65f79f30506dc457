package http

import (
	"bufio"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/application/chat"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/application/dto"
)

// heartbeat intervalo de comentarios SSE para detectar clientes caídos.
const heartbeat = 15 * time.Second

// ChatHandler mensajes de chat e stream en vivo (server-sent events).
type ChatHandler struct {
	uc *chat.UseCase
}

// NewChatHandler construye el handler.
func NewChatHandler(uc *chat.UseCase) *ChatHandler {
	return &ChatHandler{uc: uc}
}

// Send godoc
// @Summary      Enviar mensaje
// @Tags         chat
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        room  path  string                  true  "Sala"
// @Param        body  body  dto.SendMessageRequest  true  "text"
// @Success      201  {object}  dto.ChatMessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/chat/rooms/{room}/messages [post]
func (h *ChatHandler) Send(c *fiber.Ctx) error {
	var in dto.SendMessageRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Send(c.UserContext(), CurrentActor(c), c.Params("room"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// History godoc
// @Summary      Mensajes de una sala (ascendente)
// @Tags         chat
// @Produce      json
// @Security     BearerAuth
// @Param        room   path   string  true   "Sala"
// @Param        after  query  string  false  "RFC3339"
// @Param        limit  query  int     false  "máx. 200"
// @Success      200  {array}  dto.ChatMessageResponse
// @Router       /api/chat/rooms/{room}/messages [get]
func (h *ChatHandler) History(c *fiber.Ctx) error {
	var in dto.ChatHistoryRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.History(c.UserContext(), c.Params("room"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Stream godoc
// @Summary      Mensajes en vivo (text/event-stream)
// @Description  Al reconectar, el header Last-Event-ID reenvía los mensajes perdidos.
// @Tags         chat
// @Produce      text/event-stream
// @Security     BearerAuth
// @Param        room           path    string  true   "Sala"
// @Param        Last-Event-ID  header  string  false  "id del último evento recibido"
// @Success      200
// @Router       /api/chat/rooms/{room}/stream [get]
func (h *ChatHandler) Stream(c *fiber.Ctx) error {
	room := c.Params("room")
	// Suscribir antes de leer el historial: lo que llegue entre ambos pasos no se pierde.
	sub, err := h.uc.Subscribe(room)
	if err != nil {
		return respondError(c, err)
	}
	missed, err := h.uc.Replay(c.UserContext(), room, c.Get("Last-Event-ID"))
	if err != nil {
		sub.Close()
		return respondError(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	// fasthttp fija un único WriteTimeout para toda la respuesta; el stream lo renueva en cada escritura.
	conn := c.Context().Conn()
	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		defer sub.Close()
		ticker := time.NewTicker(heartbeat)
		defer ticker.Stop()

		write := func(f func() error) bool {
			if conn != nil {
				_ = conn.SetWriteDeadline(time.Now().Add(2 * heartbeat))
			}
			if f() != nil {
				return false
			}
			return w.Flush() == nil
		}

		if !write(func() error { _, err := fmt.Fprint(w, ": connected\n\n"); return err }) {
			return
		}
		sent := make(map[string]struct{}, len(missed))
		for _, msg := range missed {
			msg := msg
			if !write(func() error { return writeEvent(w, msg) }) {
				return
			}
			sent[msg.ID] = struct{}{}
		}
		for {
			select {
			case msg, ok := <-sub.C:
				if !ok {
					return
				}
				if _, dup := sent[msg.ID]; dup {
					continue
				}
				if !write(func() error { return writeEvent(w, msg) }) {
					return
				}
			case <-ticker.C:
				if !write(func() error { _, err := fmt.Fprint(w, ": ping\n\n"); return err }) {
					return
				}
			}
		}
	})
	return nil
}

func writeEvent(w *bufio.Writer, msg dto.ChatMessageResponse) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "id: %s\nevent: message\ndata: %s\n\n", chat.EventID(msg), data)
	return err
}
