// Package payment modélise le moyen de paiement d'une transaction comme un
// variant étiqueté : Cash | Check | Card | Mixed{carte, espèces}.
//
// L'invariant du paiement mixte (carte + espèces == montant total) est porté
// par le constructeur plutôt que par convention sur des champs optionnels.
package payment

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Kind identifie le moyen de paiement sur le fil (JSON et colonne DB).
type Kind string

const (
	KindCash  Kind = "cash"
	KindCheck Kind = "check"
	KindCard  Kind = "card"
	KindMixed Kind = "mixed"
)

// SplitEpsilon tolérance d'arrondi (un centime) entre la somme des parts
// d'un paiement mixte et le montant nominal de la transaction.
var SplitEpsilon = decimal.New(1, -2)

// Payment moyen de paiement d'une prestation ou d'une vente produit.
// CardAmount et CashAmount ne sont renseignés que pour Kind == KindMixed.
type Payment struct {
	Kind       Kind
	CardAmount decimal.Decimal
	CashAmount decimal.Decimal
}

// Cash paiement intégral en espèces.
func Cash() Payment { return Payment{Kind: KindCash} }

// Check paiement par chèque.
func Check() Payment { return Payment{Kind: KindCheck} }

// Card paiement par carte bancaire.
func Card() Payment { return Payment{Kind: KindCard} }

// Mixed paiement réparti entre carte et espèces.
func Mixed(cardAmount, cashAmount decimal.Decimal) Payment {
	return Payment{Kind: KindMixed, CardAmount: cardAmount, CashAmount: cashAmount}
}

// ParseKind valide la valeur reçue du client HTTP.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindCash, KindCheck, KindCard, KindMixed:
		return Kind(s), nil
	}
	return "", fmt.Errorf("moyen de paiement inconnu : %q", s)
}

// IsMixed vrai pour un paiement réparti carte + espèces.
func (p Payment) IsMixed() bool { return p.Kind == KindMixed }

// SplitConsistent vérifie que carte + espèces == total, à SplitEpsilon près.
// Ne concerne que les paiements mixtes ; vrai pour tous les autres.
func (p Payment) SplitConsistent(total decimal.Decimal) bool {
	if p.Kind != KindMixed {
		return true
	}
	diff := p.CardAmount.Add(p.CashAmount).Sub(total).Abs()
	return diff.LessThanOrEqual(SplitEpsilon)
}
