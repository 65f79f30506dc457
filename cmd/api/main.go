package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/application/auth"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/application/board"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/application/chat"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/application/files"
	linenapp "github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/application/linen"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/application/lostitems"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/application/tickets"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain/linen"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/infrastructure/excel"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/infrastructure/metrics"
	infrapdf "github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/infrastructure/pdf"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/infrastructure/postgres"
	httpRouter "github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/interfaces/http"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/pkg/config"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	catalog, err := linen.LoadCatalog(cfg.Linen.CatalogFile)
	if err != nil {
		log.Fatal().Err(err).Msg("catálogo de lencería")
	}
	log.Info().Int("categorias", catalog.Len()).Str("archivo", cfg.Linen.CatalogFile).Msg("catálogo cargado")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		if v, err := postgres.MigrationVersion(ctx, pool); err == nil {
			log.Info().Int64("version", v).Msg("esquema al día")
		}
	}

	m := metrics.New()

	userRepo := postgres.NewUserRepository(pool)
	linenRepo := postgres.NewLinenRepository(pool)
	ticketRepo := postgres.NewTicketRepository(pool)
	lostRepo := postgres.NewLostItemRepository(pool)
	postRepo := postgres.NewPostRepository(pool)
	chatRepo := postgres.NewChatRepository(pool)
	objectStore := postgres.NewObjectStore(pool)
	txRunner := postgres.NewTxRunner(pool)

	agg := linen.NewAggregator(catalog)
	fileSvc := files.NewService(objectStore, cfg.Storage.MaxUploadBytes(), cfg.Storage.PublicBaseURL)
	hub := chat.NewHub(chat.DefaultBuffer, m)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	reportUC := linenapp.NewReportUseCase(linenRepo, agg, m,
		excel.NewReportRenderer(),
		infrapdf.NewReportRenderer(infrapdf.Options{FontFile: cfg.Linen.PDFFontFile, Author: cfg.App.Name}),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    int(cfg.Storage.MaxUploadBytes()) + 1<<20,
	})
	app.Use(recover.New())
	app.Use(httpRouter.AccessLog(log.Component("http")))
	if cfg.Metrics.Enabled {
		app.Use(httpRouter.Metrics(m))
		app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))
	}

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "HARU Ops API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		LinenEntries: linenapp.NewEntryUseCase(linenRepo, agg, m, log.Component("linen")),
		LinenHistory: linenapp.NewHistoryUseCase(linenRepo, agg),
		LinenReports: reportUC,
		Catalog:      catalog,
		TicketUC:     tickets.NewUseCase(ticketRepo, txRunner, fileSvc),
		LostItemUC:   lostitems.NewUseCase(lostRepo, txRunner, fileSvc),
		BoardUC:      board.NewUseCase(postRepo),
		ChatUC:       chat.NewUseCase(chatRepo, hub),
		Files:        fileSvc,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	// Cerrar el hub primero termina los streams SSE abiertos.
	hub.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
