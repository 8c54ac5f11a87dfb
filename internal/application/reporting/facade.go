// Package reporting est la façade des rapports : elle résout l'instant de
// référence, borne les lectures du journal d'événements, lit les réglages
// du salon via le cache TTL et replie le tout dans le moteur d'agrégation.
//
// Chaque cas d'utilisation est idempotent et sans mutation : un échec de
// lecture remonte une erreur unique, jamais un scope à moitié calculé.
package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/coiffea/salon-api/internal/application/dto"
	"github.com/coiffea/salon-api/internal/domain/calendar"
	"github.com/coiffea/salon-api/internal/domain/entity"
	"github.com/coiffea/salon-api/internal/domain/report"
	"github.com/coiffea/salon-api/internal/domain/repository"
)

const lastPrestationsLimit = 10

// ReportUseCase façade des rapports du salon.
type ReportUseCase struct {
	prestations repository.PrestationRepository
	products    repository.ProductSaleRepository
	redemptions repository.RedemptionRepository
	stylists    repository.StylistRepository
	clients     repository.ClientRepository
	settings    SettingsProvider
	agg         *report.Aggregator
	now         func() time.Time
}

// NewReportUseCase construit la façade.
func NewReportUseCase(
	prestations repository.PrestationRepository,
	products repository.ProductSaleRepository,
	redemptions repository.RedemptionRepository,
	stylists repository.StylistRepository,
	clients repository.ClientRepository,
	settings SettingsProvider,
	agg *report.Aggregator,
) *ReportUseCase {
	return &ReportUseCase{
		prestations: prestations,
		products:    products,
		redemptions: redemptions,
		stylists:    stylists,
		clients:     clients,
		settings:    settings,
		agg:         agg,
		now:         time.Now,
	}
}

// Summary résumé financier du jour et du mois en cours pour tout le salon.
// from/to (AAAA-MM-JJ) activent en plus le scope de plage explicite.
func (uc *ReportUseCase) Summary(ctx context.Context, salonID, fromParam, toParam string) (*dto.SummaryResponse, error) {
	ref := uc.now()

	var rangeStart, rangeEnd *time.Time
	if fromParam != "" && toParam != "" {
		start := calendar.StartOfDay(resolveDay(fromParam, ref))
		_, end := calendar.DayBounds(resolveDay(toParam, ref))
		end = end.Add(-time.Nanosecond) // bornes incluses
		rangeStart, rangeEnd = &start, &end
	}

	// Fetch borné : le mois de référence, élargi à la plage explicite.
	fetchFrom, fetchTo := fetchBounds(ref, rangeStart, rangeEnd)

	settings, err := uc.settings.Get(salonID)
	if err != nil {
		return nil, fmt.Errorf("résumé : réglages du salon : %w", err)
	}
	prestations, err := uc.prestations.ListBySalon(ctx, salonID, fetchFrom, fetchTo)
	if err != nil {
		return nil, fmt.Errorf("résumé : prestations : %w", err)
	}
	products, err := uc.products.ListBySalon(ctx, salonID, fetchFrom, fetchTo)
	if err != nil {
		return nil, fmt.Errorf("résumé : ventes produits : %w", err)
	}

	res := uc.agg.Aggregate(report.Input{
		Prestations:   prestations,
		Products:      products,
		Ref:           ref,
		RangeStart:    rangeStart,
		RangeEnd:      rangeEnd,
		HiddenPeriods: settings.HiddenPeriods,
	})

	last, err := uc.lastPrestations(ctx, salonID, settings.HiddenPeriods)
	if err != nil {
		return nil, err
	}

	out := &dto.SummaryResponse{
		DailyAmount:         res.Daily.Total.Amount,
		DailyCount:          res.Daily.Total.Count,
		MonthlyAmount:       res.Monthly.Total.Amount,
		MonthlyCount:        res.Monthly.Total.Count,
		DailyPayments:       res.Daily,
		MonthlyPayments:     res.Monthly,
		DailyTips:           res.DailyTips,
		MonthlyTips:         res.MonthlyTips,
		DailyProductCount:   res.DailyProductCount,
		MonthlyProductCount: res.MonthlyProductCount,
		LastPrestations:     last,
		Range:               res.Range,
		RangeEntries:        res.RangeEntries,
	}
	return out, nil
}

// lastPrestations dernières ventes du salon pour la vignette du résumé,
// filtrées par les mêmes périodes masquées que les agrégats.
func (uc *ReportUseCase) lastPrestations(ctx context.Context, salonID string, hidden []entity.HiddenPeriod) ([]report.Entry, error) {
	recent, err := uc.prestations.ListRecent(ctx, salonID, lastPrestationsLimit)
	if err != nil {
		return nil, fmt.Errorf("résumé : dernières prestations : %w", err)
	}
	entries := make([]report.Entry, 0, len(recent))
	for i := range recent {
		p := &recent[i]
		if report.Hidden(p.Timestamp, hidden) {
			continue
		}
		e := report.Entry{
			ID:            p.ID,
			Kind:          "prestation",
			Name:          p.ServiceName,
			Amount:        p.Amount,
			PaymentMethod: p.Payment.Kind,
			Timestamp:     p.Timestamp,
		}
		if p.Payment.IsMixed() {
			card, cash := p.Payment.CardAmount, p.Payment.CashAmount
			e.MixedCardAmount, e.MixedCashAmount = &card, &cash
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// fetchBounds fenêtre de lecture du journal : le mois local de ref, étendu
// aux bornes de plage explicites si elles la débordent.
func fetchBounds(ref time.Time, rangeStart, rangeEnd *time.Time) (time.Time, time.Time) {
	y, m := calendar.MonthOf(ref)
	from, to := calendar.MonthBounds(y, m)
	if rangeStart != nil && rangeStart.Before(from) {
		from = *rangeStart
	}
	if rangeEnd != nil && rangeEnd.After(to) {
		to = *rangeEnd
	}
	return from, to
}
