package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/coiffea/salon-api/internal/domain/payment"
)

// Bucket montant et nombre de transactions d'un compartiment d'agrégat.
type Bucket struct {
	Amount decimal.Decimal `json:"amount"`
	Count  int             `json:"count"`
}

// Methods ventilation par moyen de paiement. Le compartiment Mixed compte
// les transactions mixtes mais son montant reste à zéro en temps normal :
// les parts carte et espèces sont routées vers Card et Cash pour que la
// somme des montants par moyen retombe sur le total.
type Methods struct {
	Cash  Bucket `json:"cash"`
	Check Bucket `json:"check"`
	Card  Bucket `json:"card"`
	Mixed Bucket `json:"mixed"`
}

// Scope fenêtre d'agrégation (jour, mois ou plage explicite) : total
// toutes transactions et ventilation par moyen de paiement. Produit à la
// demande, jamais mis en cache au-delà d'une requête.
type Scope struct {
	Total   Bucket  `json:"total"`
	Methods Methods `json:"methods"`
}

// TipStats compteurs de pourboires d'un scope, tenus à part du chiffre
// d'affaires (voir entity.TipServiceName pour la règle d'inclusion).
type TipStats struct {
	TipCount         int             `json:"tipCount"`
	TipAmount        decimal.Decimal `json:"tipAmount"`
	NonCashTipAmount decimal.Decimal `json:"nonCashTipAmount"`
}

// Entry ligne dénormalisée d'un scope pour les vues de détail et les
// exports. Les parts mixtes ne sont renseignées que pour un paiement mixte.
type Entry struct {
	ID              string           `json:"id"`
	Kind            string           `json:"kind"` // "prestation" | "product"
	Name            string           `json:"name"`
	Amount          decimal.Decimal  `json:"amount"`
	PaymentMethod   payment.Kind     `json:"paymentMethod"`
	MixedCardAmount *decimal.Decimal `json:"mixedCardAmount,omitempty"`
	MixedCashAmount *decimal.Decimal `json:"mixedCashAmount,omitempty"`
	Timestamp       time.Time        `json:"timestamp"`
}

// bucketFor compartiment de ventilation du moyen de paiement donné.
func (m *Methods) bucketFor(k payment.Kind) *Bucket {
	switch k {
	case payment.KindCash:
		return &m.Cash
	case payment.KindCheck:
		return &m.Check
	case payment.KindCard:
		return &m.Card
	default:
		return &m.Mixed
	}
}

// addAmount ajoute un montant au total et à la ventilation du scope.
// Pour un paiement mixte cohérent, la part carte va dans Card et la part
// espèces dans Cash ; un mixte incohérent (splitOK faux) retombe en entier
// dans le compartiment Mixed pour préserver le total.
func (s *Scope) addAmount(amount decimal.Decimal, pay payment.Payment, splitOK bool) {
	s.Total.Amount = s.Total.Amount.Add(amount)
	if pay.Kind == payment.KindMixed {
		if splitOK {
			s.Methods.Card.Amount = s.Methods.Card.Amount.Add(pay.CardAmount)
			s.Methods.Cash.Amount = s.Methods.Cash.Amount.Add(pay.CashAmount)
		} else {
			s.Methods.Mixed.Amount = s.Methods.Mixed.Amount.Add(amount)
		}
		return
	}
	b := s.Methods.bucketFor(pay.Kind)
	b.Amount = b.Amount.Add(amount)
}

// addCount incrémente le total et le compteur du moyen de paiement. Les
// transactions mixtes sont comptées dans Mixed (pas dans Card ni Cash) pour
// que les compteurs par moyen restent des nombres de transactions réels.
func (s *Scope) addCount(kind payment.Kind) {
	s.Total.Count++
	s.Methods.bucketFor(kind).Count++
}
