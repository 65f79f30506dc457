package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/application/auth"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/application/board"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/application/chat"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/application/files"
	linenapp "github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/application/linen"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/application/lostitems"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/application/tickets"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain/entity"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain/linen"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	LinenEntries *linenapp.EntryUseCase
	LinenHistory *linenapp.HistoryUseCase
	LinenReports *linenapp.ReportUseCase
	Catalog      linen.Catalog
	TicketUC     *tickets.UseCase
	LostItemUC   *lostitems.UseCase
	BoardUC      *board.UseCase
	ChatUC       *chat.UseCase
	Files        *files.Service
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Descarga de archivos (pública, como la URL de descarga de un proveedor de storage)
	fileHandler := NewFileHandler(deps.Files)
	api.Get("/files/:id", fileHandler.Download)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	protected.Get("/auth/me", authHandler.Me)
	protected.Post("/files", fileHandler.Upload)

	// Lencería
	linenGroup := protected.Group("/linen")
	linenHandler := NewLinenHandler(deps.LinenEntries, deps.LinenHistory, deps.LinenReports, deps.Catalog)
	linenGroup.Get("/catalog", linenHandler.Catalog)
	linenGroup.Post("/incoming", linenHandler.RecordIncoming)
	linenGroup.Post("/returns", linenHandler.RecordReturn)
	linenGroup.Get("/history", linenHandler.History)
	linenGroup.Get("/report", linenHandler.Report)
	linenGroup.Get("/report/export", adminOnly, linenHandler.Export)
	linenGroup.Delete("/:kind/:id", adminOnly, linenHandler.Delete)

	// Tickets de mantenimiento
	ticketGroup := protected.Group("/tickets")
	ticketHandler := NewTicketHandler(deps.TicketUC, deps.Files.MaxBytes())
	ticketGroup.Post("/", ticketHandler.Create)
	ticketGroup.Get("/", ticketHandler.List)
	ticketGroup.Get("/:id", ticketHandler.GetByID)
	ticketGroup.Patch("/:id/status", ticketHandler.UpdateStatus)
	ticketGroup.Delete("/:id", ticketHandler.Delete)

	// Objetos perdidos
	lostGroup := protected.Group("/lost-items")
	lostHandler := NewLostItemHandler(deps.LostItemUC, deps.Files.MaxBytes())
	lostGroup.Post("/", lostHandler.Create)
	lostGroup.Get("/", lostHandler.List)
	lostGroup.Get("/:id", lostHandler.GetByID)
	lostGroup.Patch("/:id/status", lostHandler.UpdateStatus)
	lostGroup.Delete("/:id", adminOnly, lostHandler.Delete)

	// Tablón
	boardGroup := protected.Group("/board/posts")
	boardHandler := NewBoardHandler(deps.BoardUC)
	boardGroup.Post("/", boardHandler.Create)
	boardGroup.Get("/", boardHandler.List)
	boardGroup.Get("/:id", boardHandler.GetByID)
	boardGroup.Put("/:id", boardHandler.Update)
	boardGroup.Delete("/:id", boardHandler.Delete)

	// Chat
	chatGroup := protected.Group("/chat/rooms/:room")
	chatHandler := NewChatHandler(deps.ChatUC)
	chatGroup.Post("/messages", chatHandler.Send)
	chatGroup.Get("/messages", chatHandler.History)
	chatGroup.Get("/stream", chatHandler.Stream)
}
