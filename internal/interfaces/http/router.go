package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-pos/internal/application/analytics"
	"github.com/jhoicas/tienda-pos/internal/application/auth"
	"github.com/jhoicas/tienda-pos/internal/application/inventory"
	"github.com/jhoicas/tienda-pos/internal/application/usecase"
	"github.com/jhoicas/tienda-pos/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	UserUC     *usecase.UserUseCase
	ProductUC  *usecase.ProductUseCase
	SaleUC     *inventory.SaleUseCase
	PurchaseUC *inventory.PurchaseUseCase
	PeriodUC   *inventory.PeriodUseCase
	ExpenseUC  *usecase.ExpenseUseCase
	ProfileUC  *usecase.BusinessProfileUseCase
	PnLUC      *analytics.PnLUseCase
	InsightUC  *analytics.InsightUseCase
	DocumentUC *analytics.DocumentUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authHandler := NewAuthHandler(deps.AuthUC, deps.UserUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)
	anyRole := RequireRole(entity.RoleAdmin, entity.RoleCajero)

	protected.Get("/auth/me", anyRole, authHandler.Me)
	protected.Post("/auth/register", adminOnly, authHandler.Register)

	// Catálogo: lectura para caja, escritura solo admin
	productHandler := NewProductHandler(deps.ProductUC)
	protected.Get("/categories", anyRole, productHandler.Categories)
	products := protected.Group("/products")
	products.Get("/", anyRole, productHandler.List)
	products.Get("/low-stock", anyRole, productHandler.LowStock)
	products.Get("/sku/next", adminOnly, productHandler.NextSKU)
	products.Get("/:id", anyRole, productHandler.GetByID)
	products.Post("/", adminOnly, productHandler.Create)
	products.Put("/:id", adminOnly, productHandler.Update)

	// Punto de venta
	saleHandler := NewSaleHandler(deps.SaleUC, deps.DocumentUC)
	sales := protected.Group("/sales", anyRole)
	sales.Post("/", saleHandler.Checkout)
	sales.Get("/", saleHandler.List)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Get("/:id/receipt", saleHandler.Receipt)

	// Compras e inventario inicial (admin)
	inventoryHandler := NewInventoryHandler(deps.PurchaseUC, deps.PeriodUC)
	purchases := protected.Group("/purchases", adminOnly)
	purchases.Post("/", inventoryHandler.CreatePurchase)
	purchases.Get("/", inventoryHandler.ListPurchases)

	periods := protected.Group("/inventory-periods", adminOnly)
	periods.Post("/", inventoryHandler.SetPeriod)
	periods.Get("/", inventoryHandler.ListPeriods)
	periods.Get("/active", inventoryHandler.ActivePeriod)

	// Gastos (admin)
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses := protected.Group("/expenses", adminOnly)
	expenses.Post("/", expenseHandler.Create)
	expenses.Get("/", expenseHandler.List)

	// Reportes (admin)
	analyticsHandler := NewAnalyticsHandler(deps.PnLUC, deps.DocumentUC)
	aiHandler := NewAIHandler(deps.InsightUC)
	reports := protected.Group("/reports", adminOnly)
	reports.Get("/pnl", analyticsHandler.PnL)
	reports.Get("/pnl/pdf", analyticsHandler.PnLPDF)
	reports.Post("/pnl/insight", aiHandler.Insight)
	reports.Get("/:kind/export", analyticsHandler.Export)

	// Configuración (admin)
	settingsHandler := NewSettingsHandler(deps.ProfileUC)
	settings := protected.Group("/settings", adminOnly)
	settings.Get("/business", settingsHandler.GetBusiness)
	settings.Put("/business", settingsHandler.UpdateBusiness)
}
