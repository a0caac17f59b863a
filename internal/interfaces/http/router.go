package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Backoffice-api/internal/application/analytics"
	"github.com/jhoicas/Backoffice-api/internal/application/auth"
	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName        string
	AuthUC         *auth.AuthUseCase
	CallbackURL    string
	SecureCookies  bool
	ProductUC      *usecase.ProductUseCase
	CategoryUC     *usecase.CategoryUseCase
	ClientUC       *usecase.ClientUseCase
	SupplierUC     *usecase.SupplierUseCase
	CatalogUC      *usecase.CatalogUseCase
	NotificationUC *usecase.NotificationUseCase
	SaleUC         *usecase.SaleUseCase
	ReportUC       *analytics.ReportUseCase
	ExportUC       *analytics.ExportUseCase
	DashboardUC    *analytics.DashboardUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	// Auth (público)
	authGroup := app.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.CallbackURL, deps.SecureCookies)
	authGroup.Get("/google", authHandler.Google)
	authGroup.Get("/google/callback", authHandler.Callback)
	authGroup.Get("/success", authHandler.Success)
	authGroup.Get("/failure", authHandler.Failure)
	authGroup.Get("/verify", authHandler.Verify)
	authGroup.Get("/logout", authHandler.Logout)

	// Rutas protegidas (requieren Bearer Token)
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	sales := api.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Get("/", saleHandler.List)
	sales.Post("/", saleHandler.Create)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Put("/:id", saleHandler.Update)
	sales.Delete("/:id", saleHandler.Delete)

	NewCRUDHandler[dto.CreateCategoryRequest, dto.UpdateCategoryRequest, dto.CategoryResponse, dto.CategoryListResponse](deps.CategoryUC).
		Mount(api.Group("/categories"))
	NewCRUDHandler[dto.CreateClientRequest, dto.UpdateClientRequest, dto.ClientResponse, dto.ClientListResponse](deps.ClientUC).
		Mount(api.Group("/clients"))
	NewCRUDHandler[dto.CreateSupplierRequest, dto.UpdateSupplierRequest, dto.SupplierResponse, dto.SupplierListResponse](deps.SupplierUC).
		Mount(api.Group("/suppliers"))
	NewCRUDHandler[dto.CreateCatalogRequest, dto.UpdateCatalogRequest, dto.CatalogResponse, dto.CatalogListResponse](deps.CatalogUC).
		Mount(api.Group("/catalogs"))
	NewCRUDHandler[dto.CreateNotificationRequest, dto.UpdateNotificationRequest, dto.NotificationResponse, dto.NotificationListResponse](deps.NotificationUC).
		Mount(api.Group("/notifications"))

	// Reportes
	business := api.Group("/business")
	business.Get("/dashboard", NewDashboardHandler(deps.DashboardUC).GetSummary)
	NewBusinessHandler(deps.ReportUC, deps.ExportUC).Mount(business)
}
