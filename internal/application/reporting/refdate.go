package reporting

import (
	"time"

	"github.com/coiffea/salon-api/internal/domain/calendar"
)

// Résolution des paramètres de date des endpoints de rapport. Un paramètre
// absent ou mal formé retombe sur « aujourd'hui » / « le mois en cours »
// plutôt que de renvoyer une erreur.

// resolveDay interprète "AAAA-MM-JJ" en instant de référence (midi local,
// pour rester loin des bascules d'heure). Défaut : now.
func resolveDay(param string, now time.Time) time.Time {
	if param == "" {
		return now
	}
	d, err := time.ParseInLocation("2006-01-02", param, calendar.Location())
	if err != nil {
		return now
	}
	return d.Add(12 * time.Hour)
}

// resolveMonth interprète "AAAA-MM" en instant de référence dans le mois.
// Défaut : now.
func resolveMonth(param string, now time.Time) time.Time {
	if param == "" {
		return now
	}
	m, err := time.ParseInLocation("2006-01", param, calendar.Location())
	if err != nil {
		return now
	}
	return m.Add(12 * time.Hour)
}

// resolveYearMonth valide les paramètres year/month des rapports par jour ;
// zéro ou hors bornes ⇒ mois en cours.
func resolveYearMonth(year, month int, now time.Time) (int, time.Month) {
	if year < 2000 || year > 2100 || month < 1 || month > 12 {
		y, m := calendar.MonthOf(now)
		return y, m
	}
	return year, time.Month(month)
}

// resolveYear valide le paramètre year du rapport annuel.
func resolveYear(year int, now time.Time) int {
	if year < 2000 || year > 2100 {
		y, _ := calendar.MonthOf(now)
		return y
	}
	return year
}
