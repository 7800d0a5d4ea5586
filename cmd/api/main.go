package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/estudiolens/fotoestudio-api/internal/application/analytics"
	"github.com/estudiolens/fotoestudio-api/internal/application/auth"
	appbooking "github.com/estudiolens/fotoestudio-api/internal/application/booking"
	infrapdf "github.com/estudiolens/fotoestudio-api/internal/infrastructure/pdf"
	"github.com/estudiolens/fotoestudio-api/internal/infrastructure/postgres"
	httpRouter "github.com/estudiolens/fotoestudio-api/internal/interfaces/http"
	"github.com/estudiolens/fotoestudio-api/pkg/config"
	"github.com/estudiolens/fotoestudio-api/pkg/logger"
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

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	userRepo := postgres.NewUserRepository(pool)
	bookingRepo := postgres.NewBookingRepository(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, auth.AdminConfig{
		Email:       cfg.Admin.Email,
		Password:    cfg.Admin.Password,
		DisplayName: cfg.Admin.DisplayName,
	})

	// Bootstrap de la cuenta administrativa: idempotente por email.
	// Un fallo aquí se registra y se sigue; nunca bloquea el arranque.
	if err := authUC.EnsureAdminAccount(); err != nil {
		log.Warn().Err(err).Msg("bootstrap de cuenta admin")
	}

	receiptGen := infrapdf.NewMarotoReceiptGenerator()
	bookingUC := appbooking.NewBookingUseCase(bookingRepo, userRepo, receiptGen)
	dashboardUC := analytics.NewDashboardUseCase(bookingRepo, userRepo)

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
		Title:    "FotoEstudio API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		BookingUC:   bookingUC,
		DashboardUC: dashboardUC,
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
