package report

import (
	"github.com/shopspring/decimal"

	"github.com/coiffea/salon-api/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// Payout part du coiffeur sur un montant agrégé : montant × commission / 100.
// Aucun arrondi ici : l'arrondi d'affichage se fait à la frontière de
// présentation pour ne pas cumuler les erreurs entre niveaux d'agrégation.
func Payout(amount, commissionPct decimal.Decimal) decimal.Decimal {
	return amount.Mul(commissionPct).Div(hundred)
}

// ResolveCommission pourcentage applicable au coiffeur : son pourcentage
// propre s'il est défini, sinon la commission par défaut du salon.
func ResolveCommission(stylist *entity.Stylist, salonDefault decimal.Decimal) decimal.Decimal {
	if stylist != nil && stylist.CommissionPct != nil {
		return *stylist.CommissionPct
	}
	return salonDefault
}
