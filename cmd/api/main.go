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

	_ "github.com/jhoicas/mockshop-api/docs"
	"github.com/jhoicas/mockshop-api/internal/application/auth"
	"github.com/jhoicas/mockshop-api/internal/application/usecase"
	"github.com/jhoicas/mockshop-api/internal/infrastructure/memory"
	httpRouter "github.com/jhoicas/mockshop-api/internal/interfaces/http"
	"github.com/jhoicas/mockshop-api/pkg/config"
	"github.com/jhoicas/mockshop-api/pkg/logger"
	"github.com/jhoicas/mockshop-api/pkg/token"
)

// @title        Mockshop API
// @version      1.0
// @description  Servidor mock de comercio para ejercitar suites de prueba de APIs: usuarios, productos, órdenes, login con cuentas de prueba y helpers de reset.
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
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

	// Stores en memoria: todo el estado vive en el proceso y se restaura
	// con POST /test/reset.
	userStore := memory.NewUserStore()
	productStore := memory.NewProductStore()
	orderStore := memory.NewOrderStore()
	accountStore := memory.NewAccountStore()
	sessionStore := memory.NewSessionStore()

	gen := token.NewGenerator()
	userUC := usecase.NewUserUseCase(userStore)
	productUC := usecase.NewProductUseCase(productStore)
	orderUC := usecase.NewOrderUseCase(orderStore, productStore, gen)
	resetUC := usecase.NewResetUseCase(userStore, productStore, orderStore, sessionStore)
	authUC := auth.NewAuthUseCase(accountStore, sessionStore, gen, auth.Config{
		TTL: time.Duration(cfg.Session.TTLHours) * time.Hour,
	})

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
		Title:    "Mockshop API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		UserUC:    userUC,
		ProductUC: productUC,
		OrderUC:   orderUC,
		AuthUC:    authUC,
		ResetUC:   resetUC,
		Accounts:  accountStore,
		Log:       log,
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
