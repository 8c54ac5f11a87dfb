package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/coiffea/salon-api/internal/application/dto"
	"github.com/coiffea/salon-api/internal/domain/calendar"
	"github.com/coiffea/salon-api/internal/domain/entity"
	"github.com/coiffea/salon-api/internal/domain/report"
)

// ByDay rapport jour par jour d'un mois : montant, nombre de transactions,
// masse des commissions et ventilation par moyen de paiement. Les règles
// d'inclusion (pourboires, périodes masquées, répartition mixte) passent
// toutes par le moteur d'agrégation, jamais re-dérivées ici.
func (uc *ReportUseCase) ByDay(ctx context.Context, salonID string, year, month int) (*dto.ByDayResponse, error) {
	y, m := resolveYearMonth(year, month, uc.now())
	from, to := calendar.MonthBounds(y, m)

	settings, err := uc.settings.Get(salonID)
	if err != nil {
		return nil, fmt.Errorf("rapport par jour : réglages : %w", err)
	}
	prestations, err := uc.prestations.ListBySalon(ctx, salonID, from, to)
	if err != nil {
		return nil, fmt.Errorf("rapport par jour : prestations : %w", err)
	}
	products, err := uc.products.ListBySalon(ctx, salonID, from, to)
	if err != nil {
		return nil, fmt.Errorf("rapport par jour : ventes produits : %w", err)
	}
	commissions, err := uc.commissionTable(salonID, settings)
	if err != nil {
		return nil, err
	}

	// Pré-répartition des événements par jour civil local.
	prestByDay := map[int][]entity.Prestation{}
	for _, p := range prestations {
		_, _, d := calendar.LocalDate(p.Timestamp)
		prestByDay[d] = append(prestByDay[d], p)
	}
	prodByDay := map[int][]entity.ProductSale{}
	for _, p := range products {
		_, _, d := calendar.LocalDate(p.Timestamp)
		prodByDay[d] = append(prodByDay[d], p)
	}

	daysInMonth := int(to.Add(-time.Hour).In(calendar.Location()).Day())
	days := make([]dto.DayRow, 0, daysInMonth)
	for d := 1; d <= daysInMonth; d++ {
		ref := time.Date(y, m, d, 12, 0, 0, 0, calendar.Location())
		res := uc.agg.Aggregate(report.Input{
			Prestations:   prestByDay[d],
			Products:      prodByDay[d],
			Ref:           ref,
			HiddenPeriods: settings.HiddenPeriods,
		})
		days = append(days, dto.DayRow{
			Date:    calendar.ISODate(ref),
			Amount:  res.Daily.Total.Amount,
			Count:   res.Daily.Total.Count,
			Salary:  uc.salary(prestByDay[d], prodByDay[d], ref, settings, commissions, false),
			Methods: res.Daily.Methods,
		})
	}

	return &dto.ByDayResponse{Year: y, Month: int(m), Days: days}, nil
}

// commissionTable pourcentage applicable par coiffeur (propre ou défaut du
// salon), coiffeurs soft-supprimés compris : leurs ventes passées comptent.
func (uc *ReportUseCase) commissionTable(salonID string, settings *entity.SalonSettings) (map[string]decimal.Decimal, error) {
	stylists, err := uc.stylists.ListBySalon(salonID, true)
	if err != nil {
		return nil, fmt.Errorf("table des commissions : %w", err)
	}
	table := make(map[string]decimal.Decimal, len(stylists))
	for i := range stylists {
		table[stylists[i].ID] = report.ResolveCommission(&stylists[i], settings.DefaultCommissionPct)
	}
	return table, nil
}

// salary masse des commissions : les événements de chaque coiffeur sont
// repliés séparément dans le moteur puis multipliés par son pourcentage.
// monthly choisit le scope mensuel plutôt que quotidien.
func (uc *ReportUseCase) salary(
	prestations []entity.Prestation,
	products []entity.ProductSale,
	ref time.Time,
	settings *entity.SalonSettings,
	commissions map[string]decimal.Decimal,
	monthly bool,
) decimal.Decimal {
	prestByStylist := map[string][]entity.Prestation{}
	for _, p := range prestations {
		prestByStylist[p.StylistID] = append(prestByStylist[p.StylistID], p)
	}
	prodByStylist := map[string][]entity.ProductSale{}
	for _, p := range products {
		prodByStylist[p.StylistID] = append(prodByStylist[p.StylistID], p)
	}

	total := decimal.Zero
	for stylistID, pct := range commissions {
		sp, spr := prestByStylist[stylistID], prodByStylist[stylistID]
		if len(sp) == 0 && len(spr) == 0 {
			continue
		}
		res := uc.agg.Aggregate(report.Input{
			Prestations:   sp,
			Products:      spr,
			Ref:           ref,
			HiddenPeriods: settings.HiddenPeriods,
		})
		amount := res.Daily.Total.Amount
		if monthly {
			amount = res.Monthly.Total.Amount
		}
		total = total.Add(report.Payout(amount, pct))
	}
	return total
}
