package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/tu-usuario/diario-cuidado/internal/application/auth"
	"github.com/tu-usuario/diario-cuidado/internal/application/usecase"
	"github.com/tu-usuario/diario-cuidado/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/diario-cuidado/internal/interfaces/http"
	"github.com/tu-usuario/diario-cuidado/migrations"
	"github.com/tu-usuario/diario-cuidado/pkg/config"
	"github.com/tu-usuario/diario-cuidado/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Migraciones con goose sobre database/sql (driver pgx stdlib).
	migrationDB, err := sql.Open("pgx", cfg.DB.ConnectionString())
	if err != nil {
		log.Fatal().Err(err).Msg("abrir conexión para migraciones")
	}
	if err := migrations.Migrate(migrationDB); err != nil {
		log.Fatal().Err(err).Msg("aplicar migraciones")
	}
	if err := migrationDB.Close(); err != nil {
		log.Error().Err(err).Msg("cerrar conexión de migraciones")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	entryRepo := postgres.NewCategoryEntryRepository(pool)
	cardRepo := postgres.NewCardRepository(pool)
	fieldRepo := postgres.NewCardFieldEntryRepository(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	clientUC := usecase.NewClientUseCase(clientRepo, userRepo)
	entryUC := usecase.NewCategoryEntryUseCase(entryRepo, clientRepo, userRepo)
	cardUC := usecase.NewCardUseCase(cardRepo, clientRepo, userRepo)
	fieldUC := usecase.NewCardFieldUseCase(fieldRepo, cardRepo, clientRepo, userRepo)
	userAdminUC := usecase.NewUserAdminUseCase(userRepo, clientRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Diario de Cuidado API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ClientUC:    clientUC,
		EntryUC:     entryUC,
		CardUC:      cardUC,
		FieldUC:     fieldUC,
		UserAdminUC: userAdminUC,
		JWTSecret:   cfg.JWT.Secret,
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
