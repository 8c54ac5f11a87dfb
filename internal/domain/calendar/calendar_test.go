package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coiffea/salon-api/internal/domain/calendar"
)

// paris raccourci pour construire des instants locaux dans les tests.
var paris = calendar.Location()

func TestLocalDate_ConversionDepuisUTC(t *testing.T) {
	// 23h30 UTC le 14 mars = 00h30 le 15 mars à Paris (UTC+1 en hiver).
	instant := time.Date(2024, time.March, 14, 23, 30, 0, 0, time.UTC)
	y, m, d := calendar.LocalDate(instant)
	assert.Equal(t, 2024, y)
	assert.Equal(t, time.March, m)
	assert.Equal(t, 15, d, "23h30 UTC doit déjà être le lendemain à Paris")
}

func TestStartOfDay_JourOrdinaire(t *testing.T) {
	instant := time.Date(2024, time.February, 10, 15, 42, 7, 0, paris)
	start := calendar.StartOfDay(instant)
	assert.Equal(t, time.Date(2024, time.February, 10, 0, 0, 0, 0, paris), start)
}

// Le 31 mars 2024, passage à l'heure d'été : 02h00 → 03h00. Le minuit local
// ne doit pas glisser d'une heure pour les instants situés après la bascule.
func TestStartOfDay_PassageHeureEte(t *testing.T) {
	instant := time.Date(2024, time.March, 31, 14, 0, 0, 0, paris)
	start := calendar.StartOfDay(instant)

	require.Equal(t, "2024-03-31", calendar.ISODate(start))
	assert.Equal(t, 0, start.In(paris).Hour(), "minuit local exact malgré le changement d'heure")
	// Ce jour-là ne compte que 23 heures.
	_, end := calendar.DayBounds(instant)
	assert.Equal(t, 23*time.Hour, end.Sub(start))
}

// Le 27 octobre 2024, retour à l'heure d'hiver : le jour compte 25 heures.
func TestStartOfDay_PassageHeureHiver(t *testing.T) {
	instant := time.Date(2024, time.October, 27, 23, 59, 0, 0, paris)
	start, end := calendar.DayBounds(instant)

	assert.Equal(t, "2024-10-27", calendar.ISODate(start))
	assert.Equal(t, 25*time.Hour, end.Sub(start))
}

// Un événement horodaté pile à minuit local un jour de bascule doit rester
// rattaché à ce jour-là.
func TestSameDay_MinuitJourDeBascule(t *testing.T) {
	midnight := time.Date(2024, time.March, 31, 0, 0, 0, 0, paris)
	noon := time.Date(2024, time.March, 31, 12, 0, 0, 0, paris)
	assert.True(t, calendar.SameDay(midnight, noon))
	assert.True(t, calendar.SameMonth(midnight, noon))
}

func TestSameMonth_FrontiereDeMois(t *testing.T) {
	// 31 mars 22h30 UTC = 1er avril 00h30 à Paris (UTC+2 en été).
	lastOfMarchUTC := time.Date(2024, time.March, 31, 22, 30, 0, 0, time.UTC)
	inMarch := time.Date(2024, time.March, 15, 12, 0, 0, 0, paris)
	assert.False(t, calendar.SameMonth(lastOfMarchUTC, inMarch),
		"en heure locale l'instant est déjà en avril")
}

func TestMonthKey(t *testing.T) {
	instant := time.Date(2024, time.March, 15, 10, 0, 0, 0, paris)
	assert.Equal(t, 202403, calendar.MonthKey(instant))
}

func TestMonthBounds(t *testing.T) {
	start, end := calendar.MonthBounds(2024, time.December)
	assert.Equal(t, time.Date(2024, time.December, 1, 0, 0, 0, 0, paris), start)
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, paris), end)
}

func TestISODate(t *testing.T) {
	instant := time.Date(2024, time.January, 5, 8, 0, 0, 0, paris)
	assert.Equal(t, "2024-01-05", calendar.ISODate(instant))
}
