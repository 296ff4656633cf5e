package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/billing-pro/internal/application/auth"
	"github.com/tu-usuario/billing-pro/internal/application/catalog"
	"github.com/tu-usuario/billing-pro/internal/application/checkout"
	"github.com/tu-usuario/billing-pro/internal/application/reports"
	"github.com/tu-usuario/billing-pro/internal/infrastructure/document"
	infrapdf "github.com/tu-usuario/billing-pro/internal/infrastructure/pdf"
	"github.com/tu-usuario/billing-pro/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/billing-pro/internal/interfaces/http"
	"github.com/tu-usuario/billing-pro/pkg/config"
	"github.com/tu-usuario/billing-pro/pkg/logger"
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

	itemRepo := postgres.NewItemRepository(pool)
	billRepo := postgres.NewBillRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	vendorRepo := postgres.NewVendorRepository(pool)
	catalogRepo := postgres.NewCatalogRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	tz, err := time.LoadLocation(cfg.Store.Timezone)
	if err != nil {
		log.Warn().Str("timezone", cfg.Store.Timezone).Msg("zona horaria desconocida, usando UTC")
		tz = time.UTC
	}

	// Render de facturas: PDF con fallback automático a texto plano.
	renderer := document.NewRenderer(document.Config{
		Backend:     cfg.Document.Backend,
		FontPath:    cfg.Document.FontPath,
		StoreName:   cfg.Store.Name,
		AddressLine: cfg.Store.AddressLine,
		BankDetails: cfg.Store.BankDetails,
		LogoPath:    cfg.Store.LogoPath,
	}, log)

	checkoutUC := checkout.NewUseCase(txRunner, itemRepo, billRepo, renderer, checkout.Options{
		AtomicStock: cfg.Checkout.AtomicStock,
		Timezone:    tz,
	}, log)
	catalogUC := catalog.NewUseCase(itemRepo, catalogRepo, vendorRepo, log)

	reportGenerator := infrapdf.NewMarotoReportGenerator(cfg.Store.Name, cfg.Store.AddressLine)
	reportsUC := reports.NewUseCase(billRepo, reportGenerator, log)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		CheckoutUC: checkoutUC,
		CatalogUC:  catalogUC,
		ReportsUC:  reportsUC,
		JWTSecret:  cfg.JWT.Secret,
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
