package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/coiffea/salon-api/internal/domain/payment"
)

// TipServiceName nom de service réservé qui marque un pourboire.
//
// Règle métier confirmée (et volontairement asymétrique, ne pas « corriger ») :
//   - un pourboire en espèces est exclu des montants de chiffre d'affaires
//     (il part directement dans la caisse, pas dans le CA déclaré) ;
//   - un pourboire, quel que soit le moyen de paiement, n'est jamais compté
//     comme une prestation dans les compteurs.
const TipServiceName = "Pourboire"

// Prestation vente de service réalisée par un coiffeur. Immuable une fois
// créée ; les corrections passent par des événements compensatoires ou par
// les périodes masquées, jamais par une mutation de l'historique.
type Prestation struct {
	ID            string
	SalonID       string
	StylistID     string
	ClientID      string // vide pour un client de passage
	Amount        decimal.Decimal
	Payment       payment.Payment
	Timestamp     time.Time
	PointsPercent decimal.Decimal // pourcentage du montant converti en points
	PointsAwarded int64
	ServiceName   string
	CreatedAt     time.Time
}

// IsTip vrai si la prestation est un pourboire.
func (p *Prestation) IsTip() bool { return p.ServiceName == TipServiceName }

// ProductSale vente de produit : même structure qu'une prestation, sans
// points de fidélité ni sémantique de pourboire.
type ProductSale struct {
	ID          string
	SalonID     string
	StylistID   string
	ClientID    string
	ProductName string
	Amount      decimal.Decimal
	Payment     payment.Payment
	Timestamp   time.Time
	CreatedAt   time.Time
}

// PointsRedemption dépense de points de fidélité : débit append-only du
// grand livre, jamais modifié après coup.
type PointsRedemption struct {
	ID        string
	SalonID   string
	StylistID string
	ClientID  string
	Points    int64 // > 0
	Timestamp time.Time
	Reason    string
	CreatedAt time.Time
}
