package reporting

import (
	"context"
	"fmt"

	"github.com/coiffea/salon-api/internal/application/dto"
	"github.com/coiffea/salon-api/internal/domain/calendar"
	"github.com/coiffea/salon-api/internal/domain/entity"
	"github.com/coiffea/salon-api/internal/domain/report"
)

// PointsUsage rapport des dépenses de points groupées par coiffeur, pour le
// jour (paramètre day, AAAA-MM-JJ) et le mois (paramètre month, AAAA-MM) ;
// défaut : aujourd'hui et le mois en cours. Les dépenses tombant dans une
// période masquée sont exclues, comme dans tous les autres rapports.
func (uc *ReportUseCase) PointsUsage(ctx context.Context, salonID, dayParam, monthParam string) (*dto.PointsUsageResponse, error) {
	now := uc.now()
	dayRef := resolveDay(dayParam, now)
	monthRef := resolveMonth(monthParam, now)

	settings, err := uc.settings.Get(salonID)
	if err != nil {
		return nil, fmt.Errorf("rapport points : réglages : %w", err)
	}

	// Fenêtre de lecture : le mois de référence, élargi au jour demandé
	// s'il tombe dans un autre mois.
	my, mm := calendar.MonthOf(monthRef)
	from, to := calendar.MonthBounds(my, mm)
	dayStart, dayEnd := calendar.DayBounds(dayRef)
	if dayStart.Before(from) {
		from = dayStart
	}
	if dayEnd.After(to) {
		to = dayEnd
	}

	redemptions, err := uc.redemptions.ListBySalon(ctx, salonID, from, to)
	if err != nil {
		return nil, fmt.Errorf("rapport points : dépenses : %w", err)
	}
	visible := make([]entity.PointsRedemption, 0, len(redemptions))
	for _, r := range redemptions {
		if !report.Hidden(r.Timestamp, settings.HiddenPeriods) {
			visible = append(visible, r)
		}
	}

	stylists, err := uc.stylists.ListBySalon(salonID, true)
	if err != nil {
		return nil, fmt.Errorf("rapport points : coiffeurs : %w", err)
	}
	clients, err := uc.clients.ListAll(salonID)
	if err != nil {
		return nil, fmt.Errorf("rapport points : clients : %w", err)
	}

	daily, monthly := report.PointsUsage(visible, stylists, clients, dayRef, monthRef)

	return &dto.PointsUsageResponse{
		Day:     calendar.ISODate(dayRef),
		Month:   calendar.ISODate(monthRef)[:7],
		Daily:   daily,
		Monthly: monthly,
	}, nil
}
