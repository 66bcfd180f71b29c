package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Estoque-api/internal/application/auth"
	"github.com/jhoicas/Estoque-api/internal/application/catalog"
	"github.com/jhoicas/Estoque-api/internal/application/reporting"
	"github.com/jhoicas/Estoque-api/internal/application/stock"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.UseCase
	CatalogUC    *catalog.UseCase
	StockEngine  *stock.Engine
	DashboardUC  *reporting.DashboardUseCase
	MovementRepo repository.MovementRepository
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público): login y selección de perfil tras credencial ambigua
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/select-profile", authHandler.SelectProfile)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Impersonación de vista (solo gestor; validado en el caso de uso)
	protected.Post("/auth/impersonate", authHandler.Impersonate)
	protected.Post("/auth/restore", authHandler.Restore)

	manager := RequireRole(entity.RoleManager)
	anyRole := RequireRole(entity.RoleManager, entity.RoleCollaborator)

	// Items: lectura para ambos roles (el colaborador escanea y consulta),
	// escritura de catálogo solo para gestor
	itemHandler := NewItemHandler(deps.CatalogUC)
	items := protected.Group("/items")
	items.Get("/", anyRole, itemHandler.List)
	items.Get("/barcode/:code", anyRole, itemHandler.GetByBarcode)
	items.Get("/:id", anyRole, itemHandler.GetByID)
	items.Post("/", manager, itemHandler.Create)
	items.Put("/:id", manager, itemHandler.Update)

	// Mutaciones de stock: entrada solo gestor, checkout ambos roles
	stockHandler := NewStockHandler(deps.StockEngine)
	items.Post("/:id/stock", manager, stockHandler.AddStock)
	items.Post("/:id/checkout", anyRole, stockHandler.Checkout)

	// Usuarios (solo gestor)
	userHandler := NewUserHandler(deps.CatalogUC)
	users := protected.Group("/users", manager)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Put("/:id", userHandler.Update)
	users.Patch("/:id/status", userHandler.SetStatus)

	// Historial y dashboard (solo gestor)
	movementHandler := NewMovementHandler(deps.MovementRepo)
	protected.Get("/movements", manager, movementHandler.List)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", manager, dashboardHandler.Summary)
}
