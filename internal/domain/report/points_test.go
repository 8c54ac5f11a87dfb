package report_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coiffea/salon-api/internal/domain/entity"
	"github.com/coiffea/salon-api/internal/domain/report"
)

var (
	dayRef   = time.Date(2024, time.March, 15, 12, 0, 0, 0, paris)
	monthRef = dayRef

	stylists = []entity.Stylist{
		{ID: "s1", Name: "Émilie"},
		{ID: "s2", Name: "antoine"},
	}
	clients = []entity.Client{
		{ID: "c1", Name: "Marie Dupont"},
		{ID: "c2", Name: "Jean-Luc de la Fontaine"},
	}
)

func redemption(id, stylistID, clientID string, points int64, ts time.Time) entity.PointsRedemption {
	return entity.PointsRedemption{
		ID: id, StylistID: stylistID, ClientID: clientID, Points: points, Timestamp: ts,
	}
}

// Deux dépenses du même coiffeur le même jour fusionnent en un seul groupe
// dont TotalPoints est la somme, entrées de la plus récente à la plus
// ancienne.
func TestPointsUsage_FusionParCoiffeur(t *testing.T) {
	daily, _ := report.PointsUsage(
		[]entity.PointsRedemption{
			redemption("r1", "s1", "c1", 50, dayRef.Add(-3*time.Hour)),
			redemption("r2", "s1", "c2", 30, dayRef.Add(-1*time.Hour)),
		},
		stylists, clients, dayRef, monthRef,
	)

	require.Len(t, daily, 1)
	g := daily[0]
	assert.Equal(t, "Émilie", g.StylistName)
	assert.Equal(t, int64(80), g.TotalPoints)
	require.Len(t, g.Entries, 2)
	assert.Equal(t, "r2", g.Entries[0].ID, "la plus récente d'abord")
	assert.Equal(t, "r1", g.Entries[1].ID)
}

// Groupes ordonnés par nom de coiffeur, collation française insensible à la
// casse : "antoine" avant "Émilie".
func TestPointsUsage_OrdreDesGroupes(t *testing.T) {
	daily, _ := report.PointsUsage(
		[]entity.PointsRedemption{
			redemption("r1", "s1", "c1", 10, dayRef),
			redemption("r2", "s2", "c1", 10, dayRef),
		},
		stylists, clients, dayRef, monthRef,
	)

	require.Len(t, daily, 2)
	assert.Equal(t, "antoine", daily[0].StylistName)
	assert.Equal(t, "Émilie", daily[1].StylistName)
}

func TestPointsUsage_ScopesJourEtMois(t *testing.T) {
	earlier := time.Date(2024, time.March, 2, 9, 0, 0, 0, paris)
	daily, monthly := report.PointsUsage(
		[]entity.PointsRedemption{
			redemption("r-jour", "s1", "c1", 20, dayRef),
			redemption("r-mois", "s1", "c1", 40, earlier),
		},
		stylists, clients, dayRef, monthRef,
	)

	require.Len(t, daily, 1)
	assert.Equal(t, int64(20), daily[0].TotalPoints)
	require.Len(t, monthly, 1)
	assert.Equal(t, int64(60), monthly[0].TotalPoints)
}

// Coiffeur disparu : la dépense est ignorée, pas de groupe fabriqué.
// Client disparu : identité de repli "Client inconnu".
func TestPointsUsage_AnomaliesDIntegrite(t *testing.T) {
	daily, _ := report.PointsUsage(
		[]entity.PointsRedemption{
			redemption("r-orphelin", "s-disparu", "c1", 10, dayRef),
			redemption("r-sans-client", "s1", "c-disparu", 15, dayRef),
		},
		stylists, clients, dayRef, monthRef,
	)

	require.Len(t, daily, 1, "seul le coiffeur connu donne un groupe")
	e := daily[0].Entries[0]
	assert.Equal(t, report.UnknownClientName, e.ClientName)
	assert.Equal(t, report.UnknownClientName, e.ClientFirstName)
	assert.Empty(t, e.ClientLastName)
}

func TestSplitName(t *testing.T) {
	tests := []struct {
		full, first, last string
	}{
		{"Marie Dupont", "Marie", "Dupont"},
		{"Jean-Luc de la Fontaine", "Jean-Luc", "de la Fontaine"},
		{"Cher", "Cher", ""},
		{"", "", ""},
	}
	for _, tt := range tests {
		first, last := report.SplitName(tt.full)
		assert.Equal(t, tt.first, first)
		assert.Equal(t, tt.last, last)
	}
}
