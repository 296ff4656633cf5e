package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/billing-pro/internal/application/auth"
	"github.com/tu-usuario/billing-pro/internal/application/catalog"
	"github.com/tu-usuario/billing-pro/internal/application/checkout"
	"github.com/tu-usuario/billing-pro/internal/application/reports"
	"github.com/tu-usuario/billing-pro/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	CheckoutUC *checkout.UseCase
	CatalogUC  *catalog.UseCase
	ReportsUC  *reports.UseCase
	JWTSecret  string
}

// Roles por nivel de acceso. cashier factura y consulta; manager además
// gestiona catálogo y reportes; admin además gestiona usuarios.
var (
	anyStaff  = []string{entity.RoleAdmin, entity.RoleManager, entity.RoleCashier}
	managerUp = []string{entity.RoleAdmin, entity.RoleManager}
	adminOnly = []string{entity.RoleAdmin}
)

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Punto de venta (cualquier operador)
	billingHandler := NewBillingHandler(deps.CheckoutUC)
	bills := protected.Group("/bills", RequireRole(anyStaff...))
	bills.Get("/price", billingHandler.PriceItem)
	bills.Post("/", billingHandler.Checkout)
	bills.Get("/", billingHandler.ListRecent)
	bills.Get("/customer", billingHandler.LookupCustomer)
	bills.Get("/:billNo", billingHandler.GetBill)
	bills.Get("/:billNo/document", billingHandler.Document)

	// Catálogo: la búsqueda y la consulta de ítems las usa la caja;
	// las mutaciones son de manager hacia arriba.
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	items := protected.Group("/items")
	items.Get("/search", RequireRole(anyStaff...), catalogHandler.SearchItems)
	items.Get("/", RequireRole(anyStaff...), catalogHandler.ListItems)
	items.Get("/:code", RequireRole(anyStaff...), catalogHandler.GetItem)
	items.Post("/", RequireRole(managerUp...), catalogHandler.CreateItem)
	items.Put("/:code", RequireRole(managerUp...), catalogHandler.UpdateItem)
	items.Post("/:code/soh", RequireRole(managerUp...), catalogHandler.AdjustSOH)
	items.Delete("/:code", RequireRole(managerUp...), catalogHandler.DeleteItem)

	catalogGroup := protected.Group("/catalog", RequireRole(managerUp...))
	catalogGroup.Get("/categories", catalogHandler.ListCategories)
	catalogGroup.Post("/categories", catalogHandler.AddCategory)
	catalogGroup.Get("/subcategories", catalogHandler.ListSubCategories)
	catalogGroup.Post("/subcategories", catalogHandler.AddSubCategory)
	catalogGroup.Get("/brands", catalogHandler.ListBrands)
	catalogGroup.Post("/brands", catalogHandler.AddBrand)

	vendors := protected.Group("/vendors", RequireRole(managerUp...))
	vendors.Post("/", catalogHandler.CreateVendor)
	vendors.Get("/", catalogHandler.ListVendors)
	vendors.Put("/:id", catalogHandler.UpdateVendor)
	vendors.Delete("/:id", catalogHandler.DeleteVendor)

	// Reportes (manager y admin)
	reportHandler := NewReportHandler(deps.ReportsUC)
	reportsGroup := protected.Group("/reports", RequireRole(managerUp...))
	reportsGroup.Get("/day-sales", reportHandler.DaySales)
	reportsGroup.Get("/day-sales/pdf", reportHandler.DaySalesPDF)

	// Usuarios (solo admin)
	userHandler := NewUserHandler(deps.AuthUC)
	users := protected.Group("/users", RequireRole(adminOnly...))
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Put("/:id/password", userHandler.ChangePassword)
	users.Delete("/:id", userHandler.Delete)
}
