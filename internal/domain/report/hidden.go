package report

import (
	"time"

	"github.com/coiffea/salon-api/internal/domain/calendar"
	"github.com/coiffea/salon-api/internal/domain/entity"
)

// Hidden vrai si l'instant tombe dans une période masquée du salon.
//
// Fonction pure, appelée à l'identique par chaque scope d'agrégation
// (quotidien, mensuel, plage) pour que les totaux restent cohérents entre
// les types de rapports. La première période dont le mois correspond décide,
// même si ses bornes excluent le jour : configurer plusieurs périodes pour
// un même mois n'est pas supporté (seule la première est lue).
func Hidden(t time.Time, periods []entity.HiddenPeriod) bool {
	if len(periods) == 0 {
		return false
	}
	monthKey := calendar.MonthKey(t)
	_, _, day := calendar.LocalDate(t)
	for _, p := range periods {
		if p.Month != monthKey {
			continue
		}
		lo, hi := p.StartDay, p.EndDay
		if lo > hi {
			lo, hi = hi, lo
		}
		return day >= lo && day <= hi
	}
	return false
}
