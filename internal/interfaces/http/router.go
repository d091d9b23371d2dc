package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/diario-cuidado/internal/application/auth"
	"github.com/tu-usuario/diario-cuidado/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ClientUC    *usecase.ClientUseCase
	EntryUC     *usecase.CategoryEntryUseCase
	CardUC      *usecase.CardUseCase
	FieldUC     *usecase.CardFieldUseCase
	UserAdminUC *usecase.UserAdminUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Clients: lectura para cualquier usuario autenticado (con scoping
	// por asignación dentro del caso de uso), escritura solo admin.
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Post("/", RequireAdmin(), clientHandler.Create)
	clients.Put("/:id", RequireAdmin(), clientHandler.Update)

	// Entradas de categoría (protegido)
	entries := protected.Group("/entries")
	entryHandler := NewEntryHandler(deps.EntryUC)
	entries.Post("/", entryHandler.Create)
	entries.Put("/:id", entryHandler.Update)
	entries.Delete("/:id", entryHandler.Delete)
	clients.Get("/:id/entries", entryHandler.List)

	// Plantillas de ficha: definición solo admin, lectura autenticada.
	cards := protected.Group("/cards")
	cardHandler := NewCardHandler(deps.CardUC)
	cards.Get("/:id", cardHandler.GetByID)
	cards.Post("/", RequireAdmin(), cardHandler.Create)
	cards.Put("/:id", RequireAdmin(), cardHandler.Update)
	cards.Delete("/:id", RequireAdmin(), cardHandler.Delete)
	cards.Put("/:id/clients", RequireAdmin(), cardHandler.Assign)
	clients.Get("/:id/cards", cardHandler.ListForClient)

	// Valores de campo de ficha (protegido)
	fieldHandler := NewFieldEntryHandler(deps.FieldUC)
	fieldEntries := protected.Group("/field-entries")
	fieldEntries.Post("/", fieldHandler.Upsert)
	fieldEntries.Patch("/:id/lock", RequireAdmin(), fieldHandler.SetLock)
	cards.Get("/:id/field-entries", fieldHandler.List)

	// Administración de usuarios (solo admin)
	users := protected.Group("/users", RequireAdmin())
	userHandler := NewUserHandler(deps.UserAdminUC)
	users.Get("/", userHandler.List)
	users.Put("/:id/role", userHandler.SetRole)
	users.Put("/:id/clients", userHandler.SetAssignedClients)
}
