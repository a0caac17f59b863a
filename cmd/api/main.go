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

	"github.com/jhoicas/Backoffice-api/internal/application/analytics"
	"github.com/jhoicas/Backoffice-api/internal/application/auth"
	"github.com/jhoicas/Backoffice-api/internal/application/usecase"
	"github.com/jhoicas/Backoffice-api/internal/infrastructure/excel"
	"github.com/jhoicas/Backoffice-api/internal/infrastructure/oauth"
	infrapdf "github.com/jhoicas/Backoffice-api/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/Backoffice-api/internal/interfaces/http"
	"github.com/jhoicas/Backoffice-api/pkg/config"
	"github.com/jhoicas/Backoffice-api/pkg/logger"
)

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
		Str("store", cfg.App.StoreDriver).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es obligatorio")
	}

	ctx := context.Background()
	repos, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar almacenamiento")
	}
	defer closeStore()

	reportUC := analytics.NewReportUseCase(analytics.Sources{
		Products:   repos.products,
		Categories: repos.categories,
		Clients:    repos.clients,
		Sales:      repos.sales,
	})
	exportUC := analytics.NewExportUseCase(reportUC, infrapdf.NewMarotoPDFGenerator(), excel.NewABCWriter())
	dashboardUC := analytics.NewDashboardUseCase(repos.products, repos.sales)

	if cfg.Google.ClientID == "" {
		log.Warn().Msg("GOOGLE_CLIENT_ID vacío: el login con Google no funcionará")
	}
	authUC := auth.NewAuthUseCase(
		oauth.NewGoogleProvider(cfg.Google.ClientID, cfg.Google.ClientSecret),
		auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		},
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger())

	// Swagger UI en http://localhost:<port>/docs si el archivo existe
	if cfg.App.SwaggerFile != "" {
		if _, err := os.Stat(cfg.App.SwaggerFile); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.App.SwaggerFile,
				Path:     "docs",
				Title:    "Backoffice API",
			}))
		} else {
			log.Warn().Str("file", cfg.App.SwaggerFile).Msg("swagger deshabilitado: archivo no encontrado")
		}
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AppName:        cfg.App.Name,
		AuthUC:         authUC,
		CallbackURL:    cfg.Google.CallbackURL,
		SecureCookies:  cfg.App.Env == "production",
		ProductUC:      usecase.NewProductUseCase(repos.products, repos.categories),
		CategoryUC:     usecase.NewCategoryUseCase(repos.categories),
		ClientUC:       usecase.NewClientUseCase(repos.clients),
		SupplierUC:     usecase.NewSupplierUseCase(repos.suppliers),
		CatalogUC:      usecase.NewCatalogUseCase(repos.catalogs),
		NotificationUC: usecase.NewNotificationUseCase(repos.notifications),
		SaleUC:         usecase.NewSaleUseCase(repos.sales, repos.clients, repos.products),
		ReportUC:       reportUC,
		ExportUC:       exportUC,
		DashboardUC:    dashboardUC,
		JWTSecret:      cfg.JWT.Secret,
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
