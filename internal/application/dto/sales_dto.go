package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePrestationRequest entrée pour enregistrer une vente de service.
// Pour un paiement "mixed", mixedCardAmount et mixedCashAmount sont requis
// et doivent sommer au montant.
type CreatePrestationRequest struct {
	StylistID       string           `json:"stylistId" validate:"required,uuid"`
	ClientID        string           `json:"clientId" validate:"omitempty,uuid"`
	Amount          decimal.Decimal  `json:"amount" validate:"required"`
	PaymentMethod   string           `json:"paymentMethod" validate:"required,oneof=cash check card mixed"`
	MixedCardAmount *decimal.Decimal `json:"mixedCardAmount,omitempty"`
	MixedCashAmount *decimal.Decimal `json:"mixedCashAmount,omitempty"`
	Timestamp       *time.Time       `json:"timestamp,omitempty"` // défaut : maintenant
	PointsPercent   *decimal.Decimal `json:"pointsPercent,omitempty"`
	ServiceName     string           `json:"serviceName,omitempty"`
}

// CreateProductSaleRequest entrée pour enregistrer une vente de produit.
type CreateProductSaleRequest struct {
	StylistID       string           `json:"stylistId" validate:"required,uuid"`
	ClientID        string           `json:"clientId" validate:"omitempty,uuid"`
	ProductName     string           `json:"productName" validate:"required"`
	Amount          decimal.Decimal  `json:"amount" validate:"required"`
	PaymentMethod   string           `json:"paymentMethod" validate:"required,oneof=cash check card mixed"`
	MixedCardAmount *decimal.Decimal `json:"mixedCardAmount,omitempty"`
	MixedCashAmount *decimal.Decimal `json:"mixedCashAmount,omitempty"`
	Timestamp       *time.Time       `json:"timestamp,omitempty"`
}

// PrestationResponse sortie après enregistrement d'une prestation.
type PrestationResponse struct {
	ID            string          `json:"id"`
	StylistID     string          `json:"stylistId"`
	ClientID      string          `json:"clientId,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"paymentMethod"`
	Timestamp     time.Time       `json:"timestamp"`
	PointsAwarded int64           `json:"pointsAwarded"`
	ServiceName   string          `json:"serviceName,omitempty"`
}

// RedeemPointsRequest entrée pour une dépense de points de fidélité.
type RedeemPointsRequest struct {
	StylistID string     `json:"stylistId" validate:"required,uuid"`
	ClientID  string     `json:"clientId" validate:"required,uuid"`
	Points    int64      `json:"points" validate:"required,gt=0"`
	Reason    string     `json:"reason,omitempty"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// RedeemPointsResponse sortie : solde restant du client après la dépense.
type RedeemPointsResponse struct {
	ID              string `json:"id"`
	ClientID        string `json:"clientId"`
	Points          int64  `json:"points"`
	RemainingPoints int64  `json:"remainingPoints"`
}
