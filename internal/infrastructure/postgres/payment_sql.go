package postgres

import (
	"github.com/shopspring/decimal"

	"github.com/coiffea/salon-api/internal/domain/payment"
)

// Mapping du variant payment.Payment vers les colonnes SQL : méthode texte
// plus deux colonnes NUMERIC nullables, renseignées uniquement en mixte.

func paymentColumns(p payment.Payment) (method string, card, cash decimal.NullDecimal) {
	method = string(p.Kind)
	if p.Kind == payment.KindMixed {
		card = decimal.NullDecimal{Decimal: p.CardAmount, Valid: true}
		cash = decimal.NullDecimal{Decimal: p.CashAmount, Valid: true}
	}
	return method, card, cash
}

func paymentFromColumns(method string, card, cash decimal.NullDecimal) payment.Payment {
	kind := payment.Kind(method)
	if kind == payment.KindMixed {
		return payment.Mixed(card.Decimal, cash.Decimal)
	}
	return payment.Payment{Kind: kind}
}
