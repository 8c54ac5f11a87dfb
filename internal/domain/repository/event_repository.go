package repository

import (
	"context"
	"time"

	"github.com/coiffea/salon-api/internal/domain/entity"
)

// Les collections d'événements sont append-only : création, lecture bornée
// dans le temps, jamais de mise à jour. Les corrections passent par des
// événements compensatoires ou par les périodes masquées.
//
// Les lectures prennent un contexte et des bornes [from, to) : la façade de
// rapports borne toujours le fetch aux mois concernés pour garder une
// latence d'agrégation prévisible sur les gros historiques.

// PrestationRepository port du journal des prestations.
type PrestationRepository interface {
	Create(p *entity.Prestation) error
	ListBySalon(ctx context.Context, salonID string, from, to time.Time) ([]entity.Prestation, error)
	ListByStylist(ctx context.Context, salonID, stylistID string, from, to time.Time) ([]entity.Prestation, error)
	// ListRecent dernières prestations du salon, de la plus récente à la
	// plus ancienne (vignette « dernières ventes » du résumé).
	ListRecent(ctx context.Context, salonID string, limit int) ([]entity.Prestation, error)
}

// ProductSaleRepository port du journal des ventes de produits.
type ProductSaleRepository interface {
	Create(p *entity.ProductSale) error
	ListBySalon(ctx context.Context, salonID string, from, to time.Time) ([]entity.ProductSale, error)
	ListByStylist(ctx context.Context, salonID, stylistID string, from, to time.Time) ([]entity.ProductSale, error)
}

// RedemptionRepository port du journal des dépenses de points.
type RedemptionRepository interface {
	Create(r *entity.PointsRedemption) error
	ListBySalon(ctx context.Context, salonID string, from, to time.Time) ([]entity.PointsRedemption, error)
}
