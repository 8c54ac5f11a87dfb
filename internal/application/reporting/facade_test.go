package reporting

import (
	"context"
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
// Fakes en mémoire
// ──────────────────────────────────────────────────────────────────────────────

const testSalon = "salon-1"

type fakePrestations struct {
	items []entity.Prestation
}

func (f *fakePrestations) Create(p *entity.Prestation) error {
	f.items = append(f.items, *p)
	return nil
}

func (f *fakePrestations) ListBySalon(_ context.Context, salonID string, from, to time.Time) ([]entity.Prestation, error) {
	var out []entity.Prestation
	for _, p := range f.items {
		if p.SalonID == salonID && !p.Timestamp.Before(from) && p.Timestamp.Before(to) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePrestations) ListByStylist(ctx context.Context, salonID, stylistID string, from, to time.Time) ([]entity.Prestation, error) {
	all, _ := f.ListBySalon(ctx, salonID, from, to)
	var out []entity.Prestation
	for _, p := range all {
		if p.StylistID == stylistID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePrestations) ListRecent(_ context.Context, salonID string, limit int) ([]entity.Prestation, error) {
	var out []entity.Prestation
	for _, p := range f.items {
		if p.SalonID == salonID {
			out = append(out, p)
		}
	}
	// Ordre du plus récent au plus ancien, comme l'adaptateur SQL.
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].Timestamp.After(out[i].Timestamp) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeProducts struct {
	items []entity.ProductSale
}

func (f *fakeProducts) Create(p *entity.ProductSale) error {
	f.items = append(f.items, *p)
	return nil
}

func (f *fakeProducts) ListBySalon(_ context.Context, salonID string, from, to time.Time) ([]entity.ProductSale, error) {
	var out []entity.ProductSale
	for _, p := range f.items {
		if p.SalonID == salonID && !p.Timestamp.Before(from) && p.Timestamp.Before(to) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProducts) ListByStylist(ctx context.Context, salonID, stylistID string, from, to time.Time) ([]entity.ProductSale, error) {
	all, _ := f.ListBySalon(ctx, salonID, from, to)
	var out []entity.ProductSale
	for _, p := range all {
		if p.StylistID == stylistID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeRedemptions struct {
	items []entity.PointsRedemption
}

func (f *fakeRedemptions) Create(r *entity.PointsRedemption) error {
	f.items = append(f.items, *r)
	return nil
}

func (f *fakeRedemptions) ListBySalon(_ context.Context, salonID string, from, to time.Time) ([]entity.PointsRedemption, error) {
	var out []entity.PointsRedemption
	for _, r := range f.items {
		if r.SalonID == salonID && !r.Timestamp.Before(from) && r.Timestamp.Before(to) {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeStylists struct {
	items []entity.Stylist
}

func (f *fakeStylists) Create(s *entity.Stylist) error {
	f.items = append(f.items, *s)
	return nil
}

func (f *fakeStylists) GetByID(id string) (*entity.Stylist, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			s := f.items[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (f *fakeStylists) ListBySalon(salonID string, includeDeleted bool) ([]entity.Stylist, error) {
	var out []entity.Stylist
	for _, s := range f.items {
		if s.SalonID != salonID {
			continue
		}
		if !includeDeleted && !s.Active() {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeStylists) Update(*entity.Stylist) error { return nil }
func (f *fakeStylists) SoftDelete(string) error      { return nil }

type fakeClients struct {
	items []entity.Client
}

func (f *fakeClients) Create(c *entity.Client) error {
	f.items = append(f.items, *c)
	return nil
}

func (f *fakeClients) GetByID(id string) (*entity.Client, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			c := f.items[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeClients) ListBySalon(salonID string, _, _ int) ([]entity.Client, error) {
	return f.ListAll(salonID)
}

func (f *fakeClients) ListAll(salonID string) ([]entity.Client, error) {
	var out []entity.Client
	for _, c := range f.items {
		if c.SalonID == salonID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeClients) Update(*entity.Client) error { return nil }

type stubSettings struct {
	settings entity.SalonSettings
}

func (s stubSettings) Get(string) (*entity.SalonSettings, error) {
	cp := s.settings
	return &cp, nil
}

func (s stubSettings) Invalidate(string) {}

// ──────────────────────────────────────────────────────────────────────────────
// Construction
// ──────────────────────────────────────────────────────────────────────────────

// atLocal instant local Europe/Paris.
func atLocal(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, calendar.Location())
}

func prest(id, stylistID string, amount float64, pay payment.Payment, ts time.Time) entity.Prestation {
	return entity.Prestation{
		ID:        id,
		SalonID:   testSalon,
		StylistID: stylistID,
		Amount:    decimal.NewFromFloat(amount),
		Payment:   pay,
		Timestamp: ts,
	}
}

func buildUC(pr *fakePrestations, pd *fakeProducts, rd *fakeRedemptions,
	st *fakeStylists, cl *fakeClients, settings entity.SalonSettings, now time.Time) *ReportUseCase {
	uc := NewReportUseCase(pr, pd, rd, st, cl,
		stubSettings{settings: settings}, report.NewAggregator(zerolog.Nop()))
	uc.now = func() time.Time { return now }
	return uc
}

func emptyUCInputs() (*fakePrestations, *fakeProducts, *fakeRedemptions, *fakeStylists, *fakeClients) {
	return &fakePrestations{}, &fakeProducts{}, &fakeRedemptions{}, &fakeStylists{}, &fakeClients{}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Summary
// ──────────────────────────────────────────────────────────────────────────────

func TestSummary_JourEtMois(t *testing.T) {
	now := atLocal(2024, time.May, 15, 14)
	pr, pd, rd, st, cl := emptyUCInputs()
	pr.items = []entity.Prestation{
		prest("p1", "s1", 50, payment.Card(), atLocal(2024, time.May, 15, 10)),
		prest("p2", "s1", 30, payment.Cash(), atLocal(2024, time.May, 3, 11)),
		prest("p3", "s1", 99, payment.Card(), atLocal(2024, time.April, 20, 11)), // mois précédent
	}
	pd.items = []entity.ProductSale{{
		ID: "v1", SalonID: testSalon, StylistID: "s1", ProductName: "Shampoing",
		Amount: decimal.NewFromInt(20), Payment: payment.Cash(),
		Timestamp: atLocal(2024, time.May, 15, 12),
	}}

	uc := buildUC(pr, pd, rd, st, cl, entity.SalonSettings{}, now)
	out, err := uc.Summary(context.Background(), testSalon, "", "")
	require.NoError(t, err)

	assert.True(t, out.DailyAmount.Equal(decimal.NewFromInt(70)),
		"CA du jour = prestation 50 + produit 20, obtenu %s", out.DailyAmount)
	assert.Equal(t, 2, out.DailyCount)
	assert.True(t, out.MonthlyAmount.Equal(decimal.NewFromInt(100)),
		"CA du mois = 50 + 30 + 20, le mois précédent est exclu")
	assert.Equal(t, 3, out.MonthlyCount)
	assert.Equal(t, 1, out.DailyProductCount)
	assert.Equal(t, 1, out.MonthlyProductCount)
	assert.Nil(t, out.Range, "pas de scope de plage sans from/to")

	// Dernières prestations : p1 d'abord (la plus récente), p3 incluse
	// (la vignette n'est pas bornée au mois).
	require.Len(t, out.LastPrestations, 3)
	assert.Equal(t, "p1", out.LastPrestations[0].ID)
}

func TestSummary_PlageExplicite(t *testing.T) {
	now := atLocal(2024, time.May, 15, 14)
	pr, pd, rd, st, cl := emptyUCInputs()
	pr.items = []entity.Prestation{
		prest("p1", "s1", 40, payment.Card(), atLocal(2024, time.March, 10, 10)),
		prest("p2", "s1", 25, payment.Cash(), atLocal(2024, time.April, 2, 10)),
		prest("p3", "s1", 60, payment.Card(), atLocal(2024, time.May, 14, 10)),
	}

	uc := buildUC(pr, pd, rd, st, cl, entity.SalonSettings{}, now)
	out, err := uc.Summary(context.Background(), testSalon, "2024-03-01", "2024-04-30")
	require.NoError(t, err)

	require.NotNil(t, out.Range, "from/to fournis ⇒ scope de plage présent")
	assert.True(t, out.Range.Total.Amount.Equal(decimal.NewFromInt(65)),
		"la plage mars-avril couvre p1 et p2, pas p3")
	assert.Equal(t, 2, out.Range.Total.Count)
	require.Len(t, out.RangeEntries, 2)
	assert.Equal(t, "p2", out.RangeEntries[0].ID, "détail de plage du plus récent au plus ancien")
}

func TestSummary_PeriodeMasqueeFiltreLesDernieresVentes(t *testing.T) {
	now := atLocal(2024, time.May, 15, 14)
	pr, pd, rd, st, cl := emptyUCInputs()
	pr.items = []entity.Prestation{
		prest("visible", "s1", 50, payment.Card(), atLocal(2024, time.May, 15, 10)),
		prest("masquee", "s1", 80, payment.Card(), atLocal(2024, time.May, 10, 10)),
	}
	settings := entity.SalonSettings{
		HiddenPeriods: []entity.HiddenPeriod{{Month: 202405, StartDay: 8, EndDay: 12}},
	}

	uc := buildUC(pr, pd, rd, st, cl, settings, now)
	out, err := uc.Summary(context.Background(), testSalon, "", "")
	require.NoError(t, err)

	assert.True(t, out.MonthlyAmount.Equal(decimal.NewFromInt(50)),
		"la prestation du 10 mai tombe dans la période masquée")
	require.Len(t, out.LastPrestations, 1,
		"la vignette applique le même filtre que les agrégats")
	assert.Equal(t, "visible", out.LastPrestations[0].ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ByDay / ByMonth
// ──────────────────────────────────────────────────────────────────────────────

func TestByDay_MontantsEtCommissions(t *testing.T) {
	now := atLocal(2024, time.May, 20, 9)
	pr, pd, rd, st, cl := emptyUCInputs()
	pct := decimal.NewFromInt(40)
	st.items = []entity.Stylist{
		{ID: "s1", SalonID: testSalon, Name: "Émilie", CommissionPct: &pct},
		{ID: "s2", SalonID: testSalon, Name: "Antoine"}, // commission par défaut
	}
	pr.items = []entity.Prestation{
		prest("p1", "s1", 100, payment.Card(), atLocal(2024, time.May, 2, 10)),
		prest("p2", "s2", 50, payment.Cash(), atLocal(2024, time.May, 2, 11)),
		prest("p3", "s1", 70, payment.Check(), atLocal(2024, time.May, 9, 11)),
	}
	settings := entity.SalonSettings{DefaultCommissionPct: decimal.NewFromInt(30)}

	uc := buildUC(pr, pd, rd, st, cl, settings, now)
	out, err := uc.ByDay(context.Background(), testSalon, 2024, 5)
	require.NoError(t, err)

	assert.Equal(t, 2024, out.Year)
	assert.Equal(t, 5, out.Month)
	require.Len(t, out.Days, 31, "mai compte 31 lignes, y compris les jours vides")

	day2 := out.Days[1]
	assert.Equal(t, "2024-05-02", day2.Date)
	assert.True(t, day2.Amount.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, 2, day2.Count)
	// Commissions : 40 % de 100 (Émilie) + 30 % de 50 (défaut) = 55.
	assert.True(t, day2.Salary.Equal(decimal.NewFromInt(55)),
		"masse de commissions attendue 55, obtenu %s", day2.Salary)
	assert.True(t, day2.Methods.Card.Amount.Equal(decimal.NewFromInt(100)))
	assert.True(t, day2.Methods.Cash.Amount.Equal(decimal.NewFromInt(50)))

	day1 := out.Days[0]
	assert.True(t, day1.Amount.IsZero(), "jour sans vente ⇒ ligne à zéro")
	assert.Equal(t, 0, day1.Count)
}

func TestByDay_ParametresInvalides_RetombentSurLeMoisCourant(t *testing.T) {
	now := atLocal(2024, time.February, 10, 9)
	pr, pd, rd, st, cl := emptyUCInputs()

	uc := buildUC(pr, pd, rd, st, cl, entity.SalonSettings{}, now)
	out, err := uc.ByDay(context.Background(), testSalon, 0, 99)
	require.NoError(t, err)

	assert.Equal(t, 2024, out.Year)
	assert.Equal(t, 2, out.Month)
	assert.Len(t, out.Days, 29, "février 2024 est bissextile")
}

func TestByMonth_AnneeComplete(t *testing.T) {
	now := atLocal(2024, time.November, 10, 9)
	pr, pd, rd, st, cl := emptyUCInputs()
	st.items = []entity.Stylist{{ID: "s1", SalonID: testSalon, Name: "Émilie"}}
	pr.items = []entity.Prestation{
		prest("p1", "s1", 100, payment.Card(), atLocal(2024, time.March, 2, 10)),
		prest("p2", "s1", 200, payment.Card(), atLocal(2024, time.March, 20, 10)),
		prest("p3", "s1", 40, payment.Cash(), atLocal(2024, time.July, 5, 10)),
	}
	settings := entity.SalonSettings{DefaultCommissionPct: decimal.NewFromInt(30)}

	uc := buildUC(pr, pd, rd, st, cl, settings, now)
	out, err := uc.ByMonth(context.Background(), testSalon, 2024)
	require.NoError(t, err)

	require.Len(t, out.Months, 12)
	mars := out.Months[2]
	assert.Equal(t, 3, mars.Month)
	assert.True(t, mars.Amount.Equal(decimal.NewFromInt(300)))
	assert.Equal(t, 2, mars.Count)
	assert.True(t, mars.Salary.Equal(decimal.NewFromInt(90)), "30 % de 300")

	juillet := out.Months[6]
	assert.True(t, juillet.Amount.Equal(decimal.NewFromInt(40)))
	assert.True(t, out.Months[0].Amount.IsZero(), "janvier sans vente reste à zéro")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests StylistBreakdown
// ──────────────────────────────────────────────────────────────────────────────

func TestStylistBreakdown_CommissionEtScopes(t *testing.T) {
	now := atLocal(2024, time.May, 15, 14)
	pr, pd, rd, st, cl := emptyUCInputs()
	pct := decimal.NewFromInt(40)
	st.items = []entity.Stylist{{ID: "s1", SalonID: testSalon, Name: "Émilie", CommissionPct: &pct}}
	pr.items = []entity.Prestation{
		prest("p1", "s1", 100, payment.Card(), atLocal(2024, time.May, 15, 10)),
		prest("p2", "s1", 60, payment.Cash(), atLocal(2024, time.May, 3, 10)),
	}

	uc := buildUC(pr, pd, rd, st, cl, entity.SalonSettings{DefaultCommissionPct: decimal.NewFromInt(30)}, now)
	out, err := uc.StylistBreakdown(context.Background(), testSalon, "s1", "")
	require.NoError(t, err)

	assert.Equal(t, "Émilie", out.StylistName)
	assert.Equal(t, "2024-05-15", out.Date)
	assert.True(t, out.Daily.Total.Amount.Equal(decimal.NewFromInt(100)))
	assert.True(t, out.Monthly.Total.Amount.Equal(decimal.NewFromInt(160)))
	assert.True(t, out.CommissionPct.Equal(pct))
	assert.True(t, out.DailyPayout.Equal(decimal.NewFromInt(40)), "40 % de 100")
	assert.True(t, out.MonthlyPayout.Equal(decimal.NewFromInt(64)), "40 % de 160")
	require.Len(t, out.DailyEntries, 1)
}

func TestStylistBreakdown_CoiffeurAutreSalon_Introuvable(t *testing.T) {
	now := atLocal(2024, time.May, 15, 14)
	pr, pd, rd, st, cl := emptyUCInputs()
	st.items = []entity.Stylist{{ID: "s1", SalonID: "autre-salon", Name: "X"}}

	uc := buildUC(pr, pd, rd, st, cl, entity.SalonSettings{}, now)
	_, err := uc.StylistBreakdown(context.Background(), testSalon, "s1", "")
	assert.Error(t, err, "un coiffeur d'un autre salon ne doit jamais être exposé")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests PointsUsage
// ──────────────────────────────────────────────────────────────────────────────

func TestPointsUsage_FiltrePeriodeMasquee(t *testing.T) {
	now := atLocal(2024, time.May, 15, 14)
	pr, pd, rd, st, cl := emptyUCInputs()
	st.items = []entity.Stylist{{ID: "s1", SalonID: testSalon, Name: "Émilie"}}
	cl.items = []entity.Client{{ID: "c1", SalonID: testSalon, Name: "Durand", Points: 100}}
	rd.items = []entity.PointsRedemption{
		{ID: "r1", SalonID: testSalon, StylistID: "s1", ClientID: "c1",
			Points: 20, Timestamp: atLocal(2024, time.May, 15, 11)},
		{ID: "r2", SalonID: testSalon, StylistID: "s1", ClientID: "c1",
			Points: 30, Timestamp: atLocal(2024, time.May, 10, 11)}, // masquée
	}
	settings := entity.SalonSettings{
		HiddenPeriods: []entity.HiddenPeriod{{Month: 202405, StartDay: 8, EndDay: 12}},
	}

	uc := buildUC(pr, pd, rd, st, cl, settings, now)
	out, err := uc.PointsUsage(context.Background(), testSalon, "", "")
	require.NoError(t, err)

	assert.Equal(t, "2024-05-15", out.Day)
	assert.Equal(t, "2024-05", out.Month)
	require.Len(t, out.Monthly, 1)
	assert.Equal(t, int64(20), out.Monthly[0].TotalPoints,
		"la dépense du 10 mai est masquée, seule r1 compte")
	require.Len(t, out.Daily, 1)
	require.Len(t, out.Daily[0].Entries, 1)
	assert.Equal(t, "Durand", out.Daily[0].Entries[0].ClientName)
}
