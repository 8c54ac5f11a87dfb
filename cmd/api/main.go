package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	"github.com/coiffea/salon-api/internal/application/auth"
	"github.com/coiffea/salon-api/internal/application/loyalty"
	"github.com/coiffea/salon-api/internal/application/reporting"
	"github.com/coiffea/salon-api/internal/application/sales"
	"github.com/coiffea/salon-api/internal/application/usecase"
	"github.com/coiffea/salon-api/internal/domain/report"
	"github.com/coiffea/salon-api/internal/infrastructure/cache"
	"github.com/coiffea/salon-api/internal/infrastructure/export"
	infrapdf "github.com/coiffea/salon-api/internal/infrastructure/pdf"
	"github.com/coiffea/salon-api/internal/infrastructure/postgres"
	httpRouter "github.com/coiffea/salon-api/internal/interfaces/http"
	"github.com/coiffea/salon-api/pkg/config"
	"github.com/coiffea/salon-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("chargement de la configuration : " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("démarrage de l'application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connexion à PostgreSQL")
	}
	defer pool.Close()

	salonRepo := postgres.NewSalonRepository(pool)
	stylistRepo := postgres.NewStylistRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	prestationRepo := postgres.NewPrestationRepository(pool)
	productSaleRepo := postgres.NewProductSaleRepository(pool)
	redemptionRepo := postgres.NewRedemptionRepository(pool)
	salesTx := postgres.NewSalesTxRunner(pool)
	loyaltyTx := postgres.NewLoyaltyTxRunner(pool)

	defaultCommission, err := decimal.NewFromString(cfg.Salon.DefaultCommissionPct)
	if err != nil {
		log.Fatal().Err(err).Msg("SALON_DEFAULT_COMMISSION_PCT invalide")
	}

	settingsCache := cache.NewSettingsCache(salonRepo,
		time.Duration(cfg.Salon.SettingsCacheTTLSec)*time.Second)

	authUC := auth.NewAuthUseCase(salonRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, auth.TrialConfig{
		Days:                 cfg.Salon.TrialDays,
		DefaultCommissionPct: defaultCommission,
	})

	aggregator := report.NewAggregator(log.Zerolog())
	reportUC := reporting.NewReportUseCase(
		prestationRepo, productSaleRepo, redemptionRepo,
		stylistRepo, clientRepo, settingsCache, aggregator,
	)
	salesUC := sales.NewRecordSaleUseCase(salesTx, stylistRepo)
	loyaltyUC := loyalty.NewRedeemUseCase(loyaltyTx, stylistRepo)
	stylistUC := usecase.NewStylistUseCase(stylistRepo)
	clientUC := usecase.NewClientUseCase(clientRepo)
	settingsUC := usecase.NewSettingsUseCase(salonRepo, settingsCache)

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
		ReportUC:   reportUC,
		SalesUC:    salesUC,
		LoyaltyUC:  loyaltyUC,
		StylistUC:  stylistUC,
		ClientUC:   clientUC,
		SettingsUC: settingsUC,
		SalonRepo:  salonRepo,
		PDF:        infrapdf.NewMonthlyReportPDF(),
		CSV:        export.NewCSVExporter(),
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("serveur HTTP terminé")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("signal d'arrêt reçu, fermeture du serveur...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("arrêt du serveur")
	}

	log.Info().Msg("application arrêtée")
}
