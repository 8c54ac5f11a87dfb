package report_test

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coiffea/salon-api/internal/domain/calendar"
	"github.com/coiffea/salon-api/internal/domain/entity"
	"github.com/coiffea/salon-api/internal/domain/payment"
	"github.com/coiffea/salon-api/internal/domain/report"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

var paris = calendar.Location()

// ref : 15 mars 2024, 14h00 heure de Paris.
var ref = time.Date(2024, time.March, 15, 14, 0, 0, 0, paris)

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func prestation(id string, amount float64, pay payment.Payment, ts time.Time) entity.Prestation {
	return entity.Prestation{
		ID:        id,
		StylistID: "s1",
		Amount:    dec(amount),
		Payment:   pay,
		Timestamp: ts,
	}
}

func tip(id string, amount float64, pay payment.Payment, ts time.Time) entity.Prestation {
	p := prestation(id, amount, pay, ts)
	p.ServiceName = entity.TipServiceName
	return p
}

func product(id string, amount float64, pay payment.Payment, ts time.Time) entity.ProductSale {
	return entity.ProductSale{
		ID:        id,
		StylistID: "s1",
		Amount:    dec(amount),
		Payment:   pay,
		Timestamp: ts,
	}
}

func aggregate(in report.Input) report.Result {
	return report.NewAggregator(zerolog.Nop()).Aggregate(in)
}

// methodsSum somme des montants cash + chèque + carte d'un scope (le
// compartiment mixte doit rester à zéro quand les répartitions sont saines).
func methodsSum(s report.Scope) decimal.Decimal {
	return s.Methods.Cash.Amount.
		Add(s.Methods.Check.Amount).
		Add(s.Methods.Card.Amount)
}

// ──────────────────────────────────────────────────────────────────────────────
// Scopes et invariants
// ──────────────────────────────────────────────────────────────────────────────

func TestAggregate_ScopesJourMoisPlage(t *testing.T) {
	sameDay := ref.Add(-2 * time.Hour)
	sameMonth := time.Date(2024, time.March, 3, 10, 0, 0, 0, paris)
	otherMonth := time.Date(2024, time.February, 20, 10, 0, 0, 0, paris)

	rangeStart := time.Date(2024, time.February, 1, 0, 0, 0, 0, paris)
	rangeEnd := time.Date(2024, time.February, 29, 23, 59, 59, 0, paris)

	res := aggregate(report.Input{
		Prestations: []entity.Prestation{
			prestation("p-jour", 50, payment.Card(), sameDay),
			prestation("p-mois", 30, payment.Cash(), sameMonth),
			prestation("p-fevrier", 20, payment.Check(), otherMonth),
		},
		Ref:        ref,
		RangeStart: &rangeStart,
		RangeEnd:   &rangeEnd,
	})

	assert.True(t, res.Daily.Total.Amount.Equal(dec(50)))
	assert.Equal(t, 1, res.Daily.Total.Count)
	assert.True(t, res.Monthly.Total.Amount.Equal(dec(80)), "jour + mois, février exclu")
	assert.Equal(t, 2, res.Monthly.Total.Count)

	require.NotNil(t, res.Range)
	assert.True(t, res.Range.Total.Amount.Equal(dec(20)), "la plage est indépendante du mois de référence")
	assert.Equal(t, 1, res.Range.Total.Count)
	require.Len(t, res.RangeEntries, 1)
	assert.Equal(t, "p-fevrier", res.RangeEntries[0].ID)
}

// Invariant : le quotidien est un sous-ensemble du mensuel quand le jour de
// référence tombe dans le mois de référence.
func TestAggregate_QuotidienInclusDansMensuel(t *testing.T) {
	res := aggregate(report.Input{
		Prestations: []entity.Prestation{
			prestation("a", 10, payment.Cash(), ref),
			prestation("b", 25, payment.Card(), ref.AddDate(0, 0, -4)),
			prestation("c", 40, payment.Check(), ref.AddDate(0, 0, -10)),
		},
		Ref: ref,
	})

	assert.True(t, res.Daily.Total.Amount.LessThanOrEqual(res.Monthly.Total.Amount))
	assert.LessOrEqual(t, res.Daily.Total.Count, res.Monthly.Total.Count)
}

// Invariant : cash + chèque + carte == total (le montant du compartiment
// mixte reste à zéro quand les répartitions d'entrée sont cohérentes).
func TestAggregate_SommeDesMoyensEgaleTotal(t *testing.T) {
	res := aggregate(report.Input{
		Prestations: []entity.Prestation{
			prestation("a", 35, payment.Cash(), ref),
			prestation("b", 55.50, payment.Card(), ref),
			prestation("c", 12, payment.Check(), ref),
			prestation("d", 100, payment.Mixed(dec(60), dec(40)), ref),
		},
		Products: []entity.ProductSale{
			product("e", 18.90, payment.Mixed(dec(10), dec(8.90)), ref),
		},
		Ref: ref,
	})

	for name, scope := range map[string]report.Scope{"daily": res.Daily, "monthly": res.Monthly} {
		assert.True(t, scope.Methods.Mixed.Amount.IsZero(), name)
		assert.True(t, methodsSum(scope).Equal(scope.Total.Amount),
			"%s : la ventilation doit retomber sur le total", name)
	}
}

func TestAggregate_Idempotence(t *testing.T) {
	in := report.Input{
		Prestations: []entity.Prestation{
			prestation("a", 10, payment.Cash(), ref),
			tip("t", 5, payment.Card(), ref),
			prestation("m", 80, payment.Mixed(dec(50), dec(30)), ref),
		},
		Products: []entity.ProductSale{product("p", 12, payment.Card(), ref)},
		Ref:      ref,
	}
	first := aggregate(in)
	second := aggregate(in)
	assert.Equal(t, first, second, "deux passes identiques doivent produire le même résultat")
}

// ──────────────────────────────────────────────────────────────────────────────
// Pourboires
// ──────────────────────────────────────────────────────────────────────────────

// Un pourboire en espèces de 10 € : 0 au montant, 0 au compteur.
// Un pourboire carte de 10 € : 10 au montant, 0 au compteur.
func TestAggregate_AsymetriePourboires(t *testing.T) {
	res := aggregate(report.Input{
		Prestations: []entity.Prestation{
			tip("t-especes", 10, payment.Cash(), ref),
			tip("t-carte", 10, payment.Card(), ref),
		},
		Ref: ref,
	})

	assert.True(t, res.Daily.Total.Amount.Equal(dec(10)),
		"seul le pourboire carte entre dans le CA")
	assert.Equal(t, 0, res.Daily.Total.Count,
		"aucun pourboire ne compte comme prestation")
	assert.True(t, res.Daily.Methods.Card.Amount.Equal(dec(10)))
	assert.True(t, res.Daily.Methods.Cash.Amount.IsZero())

	assert.Equal(t, 2, res.DailyTips.TipCount)
	assert.True(t, res.DailyTips.TipAmount.Equal(dec(20)))
	assert.True(t, res.DailyTips.NonCashTipAmount.Equal(dec(10)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Paiements mixtes
// ──────────────────────────────────────────────────────────────────────────────

func TestAggregate_RepartitionMixte(t *testing.T) {
	res := aggregate(report.Input{
		Prestations: []entity.Prestation{
			prestation("m", 100, payment.Mixed(dec(60), dec(40)), ref),
		},
		Ref: ref,
	})

	d := res.Daily
	assert.True(t, d.Methods.Card.Amount.Equal(dec(60)))
	assert.True(t, d.Methods.Cash.Amount.Equal(dec(40)))
	assert.True(t, d.Total.Amount.Equal(dec(100)))
	assert.Equal(t, 1, d.Methods.Mixed.Count, "la transaction est comptée dans mixte")
	assert.Equal(t, 0, d.Methods.Card.Count)
	assert.Equal(t, 0, d.Methods.Cash.Count)
}

// Répartition incohérente : signalée, jamais levée ; le montant nominal
// retombe en entier dans le compartiment mixte pour préserver le total.
func TestAggregate_MixteIncoherentRetombeDansMixte(t *testing.T) {
	res := aggregate(report.Input{
		Prestations: []entity.Prestation{
			prestation("m", 100, payment.Mixed(dec(60), dec(20)), ref), // 80 ≠ 100
		},
		Ref: ref,
	})

	d := res.Daily
	assert.True(t, d.Total.Amount.Equal(dec(100)), "le total reste juste")
	assert.True(t, d.Methods.Card.Amount.IsZero())
	assert.True(t, d.Methods.Cash.Amount.IsZero())
	assert.True(t, d.Methods.Mixed.Amount.Equal(dec(100)))
}

// Un écart d'un centime (arrondi) reste une répartition valide.
func TestAggregate_MixteToleranceArrondi(t *testing.T) {
	res := aggregate(report.Input{
		Prestations: []entity.Prestation{
			prestation("m", 99.99, payment.Mixed(dec(50), dec(50)), ref),
		},
		Ref: ref,
	})
	assert.True(t, res.Daily.Methods.Card.Amount.Equal(dec(50)))
	assert.True(t, res.Daily.Methods.Cash.Amount.Equal(dec(50)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Périodes masquées
// ──────────────────────────────────────────────────────────────────────────────

func TestAggregate_PeriodeMasquee(t *testing.T) {
	p := prestation("x", 42, payment.Card(), ref) // 15 mars 2024

	hidden := []entity.HiddenPeriod{{Month: 202403, StartDay: 10, EndDay: 20}}

	with := aggregate(report.Input{Prestations: []entity.Prestation{p}, Ref: ref, HiddenPeriods: hidden})
	assert.True(t, with.Daily.Total.Amount.IsZero(), "événement masqué exclu du quotidien")
	assert.True(t, with.Monthly.Total.Amount.IsZero(), "et du mensuel")
	assert.Empty(t, with.DailyEntries)

	without := aggregate(report.Input{Prestations: []entity.Prestation{p}, Ref: ref})
	assert.True(t, without.Daily.Total.Amount.Equal(dec(42)), "inclus sans période active")
}

// ──────────────────────────────────────────────────────────────────────────────
// Produits et détail
// ──────────────────────────────────────────────────────────────────────────────

func TestAggregate_ProduitsComptesApart(t *testing.T) {
	res := aggregate(report.Input{
		Prestations: []entity.Prestation{prestation("p", 30, payment.Card(), ref)},
		Products: []entity.ProductSale{
			product("v1", 15, payment.Cash(), ref),
			product("v2", 22, payment.Card(), ref.AddDate(0, 0, -3)),
		},
		Ref: ref,
	})

	assert.Equal(t, 1, res.DailyProductCount)
	assert.Equal(t, 2, res.MonthlyProductCount)
	assert.True(t, res.Daily.Total.Amount.Equal(dec(45)), "prestations + produits")
	assert.True(t, res.DailyPrestations.Total.Amount.Equal(dec(30)),
		"le scope prestations seules exclut les produits")
	assert.Equal(t, 1, res.DailyPrestations.Total.Count)
}

func TestAggregate_DetailTrieDuPlusRecent(t *testing.T) {
	res := aggregate(report.Input{
		Prestations: []entity.Prestation{
			prestation("ancien", 10, payment.Cash(), ref.Add(-5*time.Hour)),
			prestation("recent", 20, payment.Card(), ref.Add(-1*time.Hour)),
			prestation("milieu", 30, payment.Check(), ref.Add(-3*time.Hour)),
		},
		Ref: ref,
	})

	require.Len(t, res.DailyEntries, 3)
	assert.Equal(t, "recent", res.DailyEntries[0].ID)
	assert.Equal(t, "milieu", res.DailyEntries[1].ID)
	assert.Equal(t, "ancien", res.DailyEntries[2].ID)
}

// Un événement à minuit local un jour de changement d'heure reste rattaché
// au bon jour dans les deux scopes.
func TestAggregate_MinuitJourDeBascule(t *testing.T) {
	dstRef := time.Date(2024, time.March, 31, 15, 0, 0, 0, paris)
	midnight := time.Date(2024, time.March, 31, 0, 0, 0, 0, paris)

	res := aggregate(report.Input{
		Prestations: []entity.Prestation{prestation("dst", 10, payment.Cash(), midnight)},
		Ref:         dstRef,
	})

	assert.Equal(t, 1, res.Daily.Total.Count)
	assert.Equal(t, 1, res.Monthly.Total.Count)
}
