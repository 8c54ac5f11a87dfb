package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/coiffea/salon-api/internal/application/dto"
	"github.com/coiffea/salon-api/internal/domain/calendar"
	"github.com/coiffea/salon-api/internal/domain/entity"
	"github.com/coiffea/salon-api/internal/domain/report"
)

// ByMonth rapport mois par mois d'une année : montant, nombre de
// transactions et masse des commissions.
func (uc *ReportUseCase) ByMonth(ctx context.Context, salonID string, year int) (*dto.ByMonthResponse, error) {
	y := resolveYear(year, uc.now())
	from, _ := calendar.MonthBounds(y, time.January)
	_, to := calendar.MonthBounds(y, time.December)

	settings, err := uc.settings.Get(salonID)
	if err != nil {
		return nil, fmt.Errorf("rapport par mois : réglages : %w", err)
	}
	prestations, err := uc.prestations.ListBySalon(ctx, salonID, from, to)
	if err != nil {
		return nil, fmt.Errorf("rapport par mois : prestations : %w", err)
	}
	products, err := uc.products.ListBySalon(ctx, salonID, from, to)
	if err != nil {
		return nil, fmt.Errorf("rapport par mois : ventes produits : %w", err)
	}
	commissions, err := uc.commissionTable(salonID, settings)
	if err != nil {
		return nil, err
	}

	prestByMonth := map[time.Month][]entity.Prestation{}
	for _, p := range prestations {
		_, m, _ := calendar.LocalDate(p.Timestamp)
		prestByMonth[m] = append(prestByMonth[m], p)
	}
	prodByMonth := map[time.Month][]entity.ProductSale{}
	for _, p := range products {
		_, m, _ := calendar.LocalDate(p.Timestamp)
		prodByMonth[m] = append(prodByMonth[m], p)
	}

	months := make([]dto.MonthRow, 0, 12)
	for m := time.January; m <= time.December; m++ {
		ref := time.Date(y, m, 15, 12, 0, 0, 0, calendar.Location())
		res := uc.agg.Aggregate(report.Input{
			Prestations:   prestByMonth[m],
			Products:      prodByMonth[m],
			Ref:           ref,
			HiddenPeriods: settings.HiddenPeriods,
		})
		months = append(months, dto.MonthRow{
			Month:  int(m),
			Amount: res.Monthly.Total.Amount,
			Count:  res.Monthly.Total.Count,
			Salary: uc.salary(prestByMonth[m], prodByMonth[m], ref, settings, commissions, true),
		})
	}

	return &dto.ByMonthResponse{Year: y, Months: months}, nil
}
