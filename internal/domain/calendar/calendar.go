// Package calendar expose le calendrier métier du salon, ancré sur un fuseau
// unique (Europe/Paris). Toute résolution de date locale passe par ici pour
// que les rapports quotidien, mensuel et par plage restent cohérents entre
// eux, y compris les jours de changement d'heure.
package calendar

import (
	"fmt"
	"time"
)

// BusinessTimezone fuseau métier unique de l'application.
const BusinessTimezone = "Europe/Paris"

// location chargé une fois au démarrage. time.LoadLocation ne peut échouer
// que si la base tzdata est absente, auquel cas rien ne fonctionnerait.
var location = mustLoadLocation()

func mustLoadLocation() *time.Location {
	loc, err := time.LoadLocation(BusinessTimezone)
	if err != nil {
		panic("calendar: chargement du fuseau " + BusinessTimezone + ": " + err.Error())
	}
	return loc
}

// Location fuseau métier, pour les collaborateurs qui formatent des dates.
func Location() *time.Location { return location }

// LocalDate résout un instant absolu en date civile du fuseau métier.
func LocalDate(t time.Time) (year int, month time.Month, day int) {
	return t.In(location).Date()
}

// StartOfDay instant absolu correspondant à 00:00:00 locale du jour civil
// de t. time.Date recalcule le décalage au minuit obtenu, ce qui évite le
// décalage d'une heure les jours de passage heure d'été/heure d'hiver.
func StartOfDay(t time.Time) time.Time {
	y, m, d := LocalDate(t)
	return time.Date(y, m, d, 0, 0, 0, 0, location)
}

// SameDay vrai si a et b tombent le même jour civil local.
func SameDay(a, b time.Time) bool {
	ya, ma, da := LocalDate(a)
	yb, mb, db := LocalDate(b)
	return ya == yb && ma == mb && da == db
}

// SameMonth vrai si a et b tombent le même mois civil local.
func SameMonth(a, b time.Time) bool {
	ya, ma, _ := LocalDate(a)
	yb, mb, _ := LocalDate(b)
	return ya == yb && ma == mb
}

// ISODate date civile locale au format "AAAA-MM-JJ" pour l'affichage et
// les exports.
func ISODate(t time.Time) string {
	y, m, d := LocalDate(t)
	return fmt.Sprintf("%04d-%02d-%02d", y, m, d)
}

// MonthKey clé AAAAMM de la date civile locale (utilisée par les périodes
// masquées).
func MonthKey(t time.Time) int {
	y, m, _ := LocalDate(t)
	return y*100 + int(m)
}

// DayBounds bornes absolues [début, fin) du jour civil local de t.
func DayBounds(t time.Time) (start, end time.Time) {
	start = StartOfDay(t)
	y, m, d := start.Date()
	return start, time.Date(y, m, d+1, 0, 0, 0, 0, location)
}

// MonthBounds bornes absolues [début, fin) du mois civil donné.
func MonthBounds(year int, month time.Month) (start, end time.Time) {
	start = time.Date(year, month, 1, 0, 0, 0, 0, location)
	return start, time.Date(year, month+1, 1, 0, 0, 0, 0, location)
}

// MonthOf instant du premier jour du mois civil local de t (borne de fetch
// pour les rapports mensuels).
func MonthOf(t time.Time) (year int, month time.Month) {
	y, m, _ := LocalDate(t)
	return y, m
}
