package report_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/coiffea/salon-api/internal/domain/entity"
	"github.com/coiffea/salon-api/internal/domain/report"
)

// Commission de 40 % sur un agrégat mensuel de 1000 € ⇒ 400 €.
func TestPayout(t *testing.T) {
	got := report.Payout(dec(1000), dec(40))
	assert.True(t, got.Equal(dec(400)), "attendu 400, obtenu %s", got)
}

func TestPayout_PasDArrondiInterne(t *testing.T) {
	// 33,33 % de 100 € : la valeur exacte est conservée, l'arrondi
	// d'affichage appartient à la couche de présentation.
	got := report.Payout(dec(100), decimal.RequireFromString("33.33"))
	assert.True(t, got.Equal(decimal.RequireFromString("33.33")))
}

func TestResolveCommission(t *testing.T) {
	salonDefault := dec(30)
	own := dec(45)

	withOwn := &entity.Stylist{Name: "Léa", CommissionPct: &own}
	without := &entity.Stylist{Name: "Marc"}

	assert.True(t, report.ResolveCommission(withOwn, salonDefault).Equal(own))
	assert.True(t, report.ResolveCommission(without, salonDefault).Equal(salonDefault))
	assert.True(t, report.ResolveCommission(nil, salonDefault).Equal(salonDefault))
}
