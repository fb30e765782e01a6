package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/davidmtzc/inventra-api/internal/application/alerts"
	"github.com/davidmtzc/inventra-api/internal/application/auth"
	"github.com/davidmtzc/inventra-api/internal/application/inventory"
	"github.com/davidmtzc/inventra-api/internal/application/reports"
	"github.com/davidmtzc/inventra-api/internal/application/usecase"
	"github.com/davidmtzc/inventra-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC          *auth.AuthUseCase
	ProductUC       *usecase.ProductUseCase
	CategoryUC      *usecase.CategoryUseCase
	ApplyMovement   *inventory.ApplyMovementUseCase
	MovementHistory *inventory.MovementHistoryUseCase
	AlertLifecycle  *alerts.LifecycleUseCase
	AlertSweep      *alerts.SweepUseCase
	ReportUC        *reports.InventoryReportUseCase
	AlertRetention  time.Duration
	JWTSecret       string
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

	manageRoles := RequireRole(entity.RoleAdmin, entity.RoleManager)

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", manageRoles, categoryHandler.Create)
	categories.Get("/", categoryHandler.List)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.ApplyMovement)
	products.Post("/", manageRoles, productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", manageRoles, productHandler.Update)
	products.Delete("/:id", manageRoles, productHandler.Deactivate)
	products.Post("/:id/stock", productHandler.ApplyMovement)

	// Movements (protegido, solo lectura)
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.MovementHistory)
	movements.Get("/", movementHandler.List)
	movements.Get("/stats", movementHandler.Stats)
	movements.Get("/:id", movementHandler.GetByID)
	products.Get("/:id/movements", movementHandler.ListByProduct)

	// Alerts (protegido)
	alertsGroup := protected.Group("/alerts")
	alertHandler := NewAlertHandler(deps.AlertLifecycle, deps.AlertSweep, deps.AlertRetention)
	alertsGroup.Get("/", alertHandler.List)
	alertsGroup.Get("/unread-count", alertHandler.CountUnread)
	alertsGroup.Post("/generate", manageRoles, alertHandler.Generate)
	alertsGroup.Post("/purge", RequireRole(entity.RoleAdmin), alertHandler.Purge)
	alertsGroup.Get("/:id", alertHandler.GetByID)
	alertsGroup.Post("/:id/read", alertHandler.MarkRead)
	alertsGroup.Post("/:id/resolve", manageRoles, alertHandler.Resolve)

	// Reports (protegido)
	reportsGroup := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reportsGroup.Get("/inventory", reportHandler.Inventory)
}
