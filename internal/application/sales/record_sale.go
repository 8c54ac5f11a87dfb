// Package sales enregistre les ventes (prestations et produits) dans le
// journal d'événements. Les enregistrements sont immuables : aucune mise à
// jour, les corrections passent par des événements compensatoires ou par
// les périodes masquées.
package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coiffea/salon-api/internal/application/dto"
	"github.com/coiffea/salon-api/internal/domain"
	"github.com/coiffea/salon-api/internal/domain/entity"
	"github.com/coiffea/salon-api/internal/domain/payment"
	"github.com/coiffea/salon-api/internal/domain/repository"
)

// RecordSaleUseCase enregistrement des ventes et attribution des points.
type RecordSaleUseCase struct {
	tx       TxRunner
	stylists repository.StylistRepository
	now      func() time.Time
}

// NewRecordSaleUseCase construit le cas d'utilisation.
func NewRecordSaleUseCase(tx TxRunner, stylists repository.StylistRepository) *RecordSaleUseCase {
	return &RecordSaleUseCase{tx: tx, stylists: stylists, now: time.Now}
}

// RecordPrestation enregistre une vente de service et crédite les points de
// fidélité du client (montant × pointsPercent / 100, arrondi à l'entier
// inférieur) dans la même transaction.
func (uc *RecordSaleUseCase) RecordPrestation(ctx context.Context, salonID string, in dto.CreatePrestationRequest) (*dto.PrestationResponse, error) {
	pay, err := buildPayment(in.PaymentMethod, in.Amount, in.MixedCardAmount, in.MixedCashAmount)
	if err != nil {
		return nil, err
	}
	if err := uc.checkStylist(salonID, in.StylistID); err != nil {
		return nil, err
	}

	ts := uc.now()
	if in.Timestamp != nil {
		ts = *in.Timestamp
	}
	pointsPercent := decimal.Zero
	if in.PointsPercent != nil {
		pointsPercent = *in.PointsPercent
	}
	// Pas de points sur un pourboire ni sur un client de passage.
	pointsAwarded := int64(0)
	if in.ClientID != "" && in.ServiceName != entity.TipServiceName {
		pointsAwarded = in.Amount.Mul(pointsPercent).Div(decimal.NewFromInt(100)).IntPart()
	}

	p := &entity.Prestation{
		ID:            uuid.New().String(),
		SalonID:       salonID,
		StylistID:     in.StylistID,
		ClientID:      in.ClientID,
		Amount:        in.Amount,
		Payment:       pay,
		Timestamp:     ts,
		PointsPercent: pointsPercent,
		PointsAwarded: pointsAwarded,
		ServiceName:   in.ServiceName,
		CreatedAt:     uc.now(),
	}

	err = uc.tx.Run(ctx, func(
		prestations repository.PrestationRepository,
		_ repository.ProductSaleRepository,
		clients repository.ClientRepository,
	) error {
		if err := prestations.Create(p); err != nil {
			return err
		}
		if p.ClientID == "" {
			return nil
		}
		client, err := clients.GetByID(p.ClientID)
		if err != nil {
			return err
		}
		if client == nil || client.SalonID != salonID {
			return domain.ErrClientNotFound
		}
		client.Points += pointsAwarded
		client.LastVisitAt = &ts
		client.UpdatedAt = uc.now()
		return clients.Update(client)
	})
	if err != nil {
		return nil, fmt.Errorf("enregistrer la prestation : %w", err)
	}

	return &dto.PrestationResponse{
		ID:            p.ID,
		StylistID:     p.StylistID,
		ClientID:      p.ClientID,
		Amount:        p.Amount,
		PaymentMethod: string(p.Payment.Kind),
		Timestamp:     p.Timestamp,
		PointsAwarded: p.PointsAwarded,
		ServiceName:   p.ServiceName,
	}, nil
}

// RecordProductSale enregistre une vente de produit (pas de points, pas de
// sémantique pourboire).
func (uc *RecordSaleUseCase) RecordProductSale(ctx context.Context, salonID string, in dto.CreateProductSaleRequest) (*dto.PrestationResponse, error) {
	pay, err := buildPayment(in.PaymentMethod, in.Amount, in.MixedCardAmount, in.MixedCashAmount)
	if err != nil {
		return nil, err
	}
	if in.ProductName == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkStylist(salonID, in.StylistID); err != nil {
		return nil, err
	}

	ts := uc.now()
	if in.Timestamp != nil {
		ts = *in.Timestamp
	}
	p := &entity.ProductSale{
		ID:          uuid.New().String(),
		SalonID:     salonID,
		StylistID:   in.StylistID,
		ClientID:    in.ClientID,
		ProductName: in.ProductName,
		Amount:      in.Amount,
		Payment:     pay,
		Timestamp:   ts,
		CreatedAt:   uc.now(),
	}

	err = uc.tx.Run(ctx, func(
		_ repository.PrestationRepository,
		products repository.ProductSaleRepository,
		_ repository.ClientRepository,
	) error {
		return products.Create(p)
	})
	if err != nil {
		return nil, fmt.Errorf("enregistrer la vente produit : %w", err)
	}

	return &dto.PrestationResponse{
		ID:            p.ID,
		StylistID:     p.StylistID,
		ClientID:      p.ClientID,
		Amount:        p.Amount,
		PaymentMethod: string(p.Payment.Kind),
		Timestamp:     p.Timestamp,
		ServiceName:   p.ProductName,
	}, nil
}

func (uc *RecordSaleUseCase) checkStylist(salonID, stylistID string) error {
	stylist, err := uc.stylists.GetByID(stylistID)
	if err != nil {
		return err
	}
	if stylist == nil || stylist.SalonID != salonID || !stylist.Active() {
		return domain.ErrStylistNotFound
	}
	return nil
}

// buildPayment valide le moyen de paiement et construit le variant. Pour un
// paiement mixte, les deux parts sont requises et doivent sommer au montant
// (l'invariant sur lequel s'appuie le moteur d'agrégation est contrôlé ici,
// à l'écriture, jamais à la lecture).
func buildPayment(method string, amount decimal.Decimal, cardPart, cashPart *decimal.Decimal) (payment.Payment, error) {
	if amount.IsNegative() {
		return payment.Payment{}, domain.ErrInvalidInput
	}
	kind, err := payment.ParseKind(method)
	if err != nil {
		return payment.Payment{}, domain.ErrInvalidInput
	}
	if kind != payment.KindMixed {
		return payment.Payment{Kind: kind}, nil
	}
	if cardPart == nil || cashPart == nil {
		return payment.Payment{}, domain.ErrInvalidInput
	}
	p := payment.Mixed(*cardPart, *cashPart)
	if !p.SplitConsistent(amount) {
		return payment.Payment{}, domain.ErrInvalidInput
	}
	return p, nil
}
