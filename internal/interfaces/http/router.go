package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mockshop-api/internal/application/auth"
	"github.com/jhoicas/mockshop-api/internal/application/usecase"
	"github.com/jhoicas/mockshop-api/internal/domain/repository"
	"github.com/jhoicas/mockshop-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	UserUC    *usecase.UserUseCase
	ProductUC *usecase.ProductUseCase
	OrderUC   *usecase.OrderUseCase
	AuthUC    *auth.AuthUseCase
	ResetUC   *usecase.ResetUseCase
	Accounts  repository.AccountRepository
	Log       *logger.Logger
}

// Router registra las rutas de la API. Las rutas viven en la raíz (sin
// prefijo /api): los paths son parte del contrato que consumen las suites
// de prueba externas.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(RequestLogger(deps.Log))

	// Users (CRUD completo)
	userHandler := NewUserHandler(deps.UserUC)
	app.Get("/users", userHandler.List)
	app.Post("/users", userHandler.Create)
	app.Get("/users/:id", userHandler.GetByID)
	app.Put("/users/:id", userHandler.Update)
	app.Delete("/users/:id", userHandler.Delete)

	// Products (catálogo de solo lectura)
	productHandler := NewProductHandler(deps.ProductUC)
	app.Get("/products", productHandler.List)
	app.Get("/products/:id", productHandler.GetByID)

	// Orders (listar, consultar, crear)
	orderHandler := NewOrderHandler(deps.OrderUC)
	app.Get("/orders", orderHandler.List)
	app.Post("/orders", orderHandler.Create)
	app.Get("/orders/:id", orderHandler.GetByID)

	// Auth: login público, recurso protegido tras el middleware de sesión
	authHandler := NewAuthHandler(deps.AuthUC)
	app.Post("/login", authHandler.Login)
	app.Get("/protected", AuthMiddleware(deps.AuthUC), authHandler.Protected)

	// Auxiliares de prueba
	testHandler := NewTestHandler(deps.Accounts, deps.ResetUC)
	app.Get("/test/accounts", testHandler.Accounts)
	app.Post("/test/reset", testHandler.Reset)
}
