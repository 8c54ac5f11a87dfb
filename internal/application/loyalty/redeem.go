// Package loyalty gère le grand livre des points de fidélité côté débit :
// une dépense est un événement append-only, le solde du client est décrémenté
// dans la même transaction et ne descend jamais sous zéro.
package loyalty

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/coiffea/salon-api/internal/application/dto"
	"github.com/coiffea/salon-api/internal/domain"
	"github.com/coiffea/salon-api/internal/domain/entity"
	"github.com/coiffea/salon-api/internal/domain/repository"
)

// TxRunner transaction dépense de points + débit du solde client.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		redemptions repository.RedemptionRepository,
		clients repository.ClientRepository,
	) error) error
}

// RedeemUseCase dépense de points de fidélité.
type RedeemUseCase struct {
	tx       TxRunner
	stylists repository.StylistRepository
	now      func() time.Time
}

// NewRedeemUseCase construit le cas d'utilisation.
func NewRedeemUseCase(tx TxRunner, stylists repository.StylistRepository) *RedeemUseCase {
	return &RedeemUseCase{tx: tx, stylists: stylists, now: time.Now}
}

// Redeem dépense des points : refuse toute dépense supérieure au solde
// courant (ErrInsufficientPoints) puis ajoute l'événement au journal et
// débite le client atomiquement.
func (uc *RedeemUseCase) Redeem(ctx context.Context, salonID string, in dto.RedeemPointsRequest) (*dto.RedeemPointsResponse, error) {
	if in.Points <= 0 || in.ClientID == "" {
		return nil, domain.ErrInvalidInput
	}
	stylist, err := uc.stylists.GetByID(in.StylistID)
	if err != nil {
		return nil, err
	}
	if stylist == nil || stylist.SalonID != salonID || !stylist.Active() {
		return nil, domain.ErrStylistNotFound
	}

	ts := uc.now()
	if in.Timestamp != nil {
		ts = *in.Timestamp
	}
	redemption := &entity.PointsRedemption{
		ID:        uuid.New().String(),
		SalonID:   salonID,
		StylistID: in.StylistID,
		ClientID:  in.ClientID,
		Points:    in.Points,
		Timestamp: ts,
		Reason:    in.Reason,
		CreatedAt: uc.now(),
	}

	var remaining int64
	err = uc.tx.Run(ctx, func(
		redemptions repository.RedemptionRepository,
		clients repository.ClientRepository,
	) error {
		client, err := clients.GetByID(in.ClientID)
		if err != nil {
			return err
		}
		if client == nil || client.SalonID != salonID {
			return domain.ErrClientNotFound
		}
		if client.Points < in.Points {
			return domain.ErrInsufficientPoints
		}
		if err := redemptions.Create(redemption); err != nil {
			return err
		}
		client.Points -= in.Points
		client.UpdatedAt = uc.now()
		remaining = client.Points
		return clients.Update(client)
	})
	if err != nil {
		return nil, fmt.Errorf("dépenser des points : %w", err)
	}

	return &dto.RedeemPointsResponse{
		ID:              redemption.ID,
		ClientID:        redemption.ClientID,
		Points:          redemption.Points,
		RemainingPoints: remaining,
	}, nil
}
