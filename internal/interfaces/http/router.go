package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/coiffea/salon-api/internal/application/auth"
	"github.com/coiffea/salon-api/internal/application/loyalty"
	"github.com/coiffea/salon-api/internal/application/reporting"
	"github.com/coiffea/salon-api/internal/application/sales"
	"github.com/coiffea/salon-api/internal/application/usecase"
	"github.com/coiffea/salon-api/internal/domain/repository"
)

// RouterDeps dépendances du router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	ReportUC   *reporting.ReportUseCase
	SalesUC    *sales.RecordSaleUseCase
	LoyaltyUC  *loyalty.RedeemUseCase
	StylistUC  *usecase.StylistUseCase
	ClientUC   *usecase.ClientUseCase
	SettingsUC *usecase.SettingsUseCase
	SalonRepo  repository.SalonRepository
	PDF        MonthlyPDFGenerator
	CSV        ReportCSVExporter
	JWTSecret  string
}

// Router enregistre les routes de l'API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Routes protégées : Bearer JWT + barrière essai/abonnement
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.AuthUC))

	// Rapports
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/summary", reportHandler.Summary)
	reports.Get("/by-day", reportHandler.ByDay)
	reports.Get("/by-month", reportHandler.ByMonth)
	reports.Get("/points-usage", reportHandler.PointsUsage)

	// Ventes
	salesGroup := protected.Group("/sales")
	salesHandler := NewSalesHandler(deps.SalesUC)
	salesGroup.Post("/prestations", salesHandler.CreatePrestation)
	salesGroup.Post("/products", salesHandler.CreateProductSale)

	// Fidélité
	loyaltyGroup := protected.Group("/loyalty")
	loyaltyHandler := NewLoyaltyHandler(deps.LoyaltyUC)
	loyaltyGroup.Post("/redemptions", loyaltyHandler.Redeem)

	// Coiffeurs
	stylists := protected.Group("/stylists")
	stylistHandler := NewStylistHandler(deps.StylistUC)
	stylists.Post("/", stylistHandler.Create)
	stylists.Get("/", stylistHandler.List)
	stylists.Put("/:id", stylistHandler.Update)
	stylists.Delete("/:id", stylistHandler.Delete)
	stylists.Get("/:id/breakdown", reportHandler.StylistBreakdown)

	// Clients
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)

	// Réglages
	settings := protected.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/", settingsHandler.Get)
	settings.Put("/commission", settingsHandler.UpdateCommission)
	settings.Put("/hidden-periods", settingsHandler.ReplaceHiddenPeriods)

	// Exports
	exports := protected.Group("/exports")
	exportHandler := NewExportHandler(deps.ReportUC, deps.SalonRepo, deps.PDF, deps.CSV)
	exports.Get("/monthly.pdf", exportHandler.MonthlyPDF)
	exports.Get("/monthly.csv", exportHandler.MonthlyCSV)
	exports.Get("/points.csv", exportHandler.PointsCSV)
}
