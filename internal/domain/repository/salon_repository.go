package repository

import (
	"github.com/shopspring/decimal"

	"github.com/coiffea/salon-api/internal/domain/entity"
)

// SalonRepository port de persistance du locataire et de ses réglages.
type SalonRepository interface {
	Create(salon *entity.Salon) error
	GetByID(id string) (*entity.Salon, error)
	GetByEmail(email string) (*entity.Salon, error)
	UpdateSubscription(id, status string) error

	// GetSettings lit les réglages de rapport du salon (commission par
	// défaut + périodes masquées). Consommé via le cache TTL.
	GetSettings(salonID string) (*entity.SalonSettings, error)
	UpdateDefaultCommission(salonID string, pct decimal.Decimal) error
	// ReplaceHiddenPeriods remplace l'ensemble des périodes masquées du
	// salon (l'ordre d'insertion est l'ordre de priorité du filtre).
	ReplaceHiddenPeriods(salonID string, periods []entity.HiddenPeriod) error
}

// StylistRepository port de persistance des coiffeurs.
type StylistRepository interface {
	Create(stylist *entity.Stylist) error
	GetByID(id string) (*entity.Stylist, error)
	// ListBySalon liste les coiffeurs du salon ; includeDeleted ajoute les
	// coiffeurs soft-supprimés (nécessaire aux rapports historiques).
	ListBySalon(salonID string, includeDeleted bool) ([]entity.Stylist, error)
	Update(stylist *entity.Stylist) error
	SoftDelete(id string) error
}

// ClientRepository port de persistance des clients du salon.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	ListBySalon(salonID string, limit, offset int) ([]entity.Client, error)
	// ListAll tous les clients du salon (enrichissement d'identité des
	// rapports de points ; volumétrie d'un salon, pas besoin de pagination).
	ListAll(salonID string) ([]entity.Client, error)
	Update(client *entity.Client) error
}
