package reporting

import (
	"context"
	"fmt"

	"github.com/coiffea/salon-api/internal/application/dto"
	"github.com/coiffea/salon-api/internal/domain"
	"github.com/coiffea/salon-api/internal/domain/calendar"
	"github.com/coiffea/salon-api/internal/domain/report"
)

// StylistBreakdown agrégats d'un coiffeur pour le jour demandé (paramètre
// date AAAA-MM-JJ, défaut aujourd'hui) et son mois, détail du jour inclus,
// avec la part de commission calculée sur les totaux du coiffeur.
func (uc *ReportUseCase) StylistBreakdown(ctx context.Context, salonID, stylistID, dateParam string) (*dto.StylistBreakdownResponse, error) {
	stylist, err := uc.stylists.GetByID(stylistID)
	if err != nil {
		return nil, fmt.Errorf("ventilation coiffeur : %w", err)
	}
	if stylist == nil || stylist.SalonID != salonID {
		return nil, domain.ErrStylistNotFound
	}

	ref := resolveDay(dateParam, uc.now())
	y, m := calendar.MonthOf(ref)
	from, to := calendar.MonthBounds(y, m)

	settings, err := uc.settings.Get(salonID)
	if err != nil {
		return nil, fmt.Errorf("ventilation coiffeur : réglages : %w", err)
	}
	prestations, err := uc.prestations.ListByStylist(ctx, salonID, stylistID, from, to)
	if err != nil {
		return nil, fmt.Errorf("ventilation coiffeur : prestations : %w", err)
	}
	products, err := uc.products.ListByStylist(ctx, salonID, stylistID, from, to)
	if err != nil {
		return nil, fmt.Errorf("ventilation coiffeur : ventes produits : %w", err)
	}

	res := uc.agg.Aggregate(report.Input{
		Prestations:   prestations,
		Products:      products,
		Ref:           ref,
		HiddenPeriods: settings.HiddenPeriods,
	})

	pct := report.ResolveCommission(stylist, settings.DefaultCommissionPct)

	return &dto.StylistBreakdownResponse{
		StylistID:          stylist.ID,
		StylistName:        stylist.Name,
		Date:               calendar.ISODate(ref),
		Daily:              res.Daily,
		Monthly:            res.Monthly,
		DailyPrestations:   res.DailyPrestations,
		MonthlyPrestations: res.MonthlyPrestations,
		DailyTips:          res.DailyTips,
		MonthlyTips:        res.MonthlyTips,
		DailyEntries:       res.DailyEntries,
		CommissionPct:      pct,
		DailyPayout:        report.Payout(res.Daily.Total.Amount, pct),
		MonthlyPayout:      report.Payout(res.Monthly.Total.Amount, pct),
	}, nil
}
