// Package report contient le cœur du moteur de rapports : agrégation des
// ventes par scope et par moyen de paiement, filtre des périodes masquées,
// regroupement des dépenses de points et calcul des commissions.
//
// Tout est pur et sans effet de bord : le moteur lit un snapshot en mémoire
// des événements et ne modifie jamais rien ; deux appels identiques donnent
// exactement le même résultat.
package report

import (
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/coiffea/salon-api/internal/domain/calendar"
	"github.com/coiffea/salon-api/internal/domain/entity"
	"github.com/coiffea/salon-api/internal/domain/payment"
)

// Input snapshot d'événements et paramètres d'une passe d'agrégation.
// RangeStart et RangeEnd activent le scope de plage (bornes incluses) ;
// tous deux doivent être renseignés.
type Input struct {
	Prestations   []entity.Prestation
	Products      []entity.ProductSale
	Ref           time.Time
	RangeStart    *time.Time
	RangeEnd      *time.Time
	HiddenPeriods []entity.HiddenPeriod
}

// Result ensemble des scopes produits en une seule passe. Daily et Monthly
// couvrent prestations + produits ; DailyPrestations et MonthlyPrestations
// excluent les produits (ventilation CA coiffeur vs vente produit).
type Result struct {
	Daily   Scope  `json:"daily"`
	Monthly Scope  `json:"monthly"`
	Range   *Scope `json:"range,omitempty"`

	DailyPrestations   Scope `json:"dailyPrestations"`
	MonthlyPrestations Scope `json:"monthlyPrestations"`

	DailyTips   TipStats  `json:"dailyTips"`
	MonthlyTips TipStats  `json:"monthlyTips"`
	RangeTips   *TipStats `json:"rangeTips,omitempty"`

	DailyEntries []Entry `json:"dailyEntries"`
	RangeEntries []Entry `json:"rangeEntries,omitempty"`

	DailyProductCount   int `json:"dailyProductCount"`
	MonthlyProductCount int `json:"monthlyProductCount"`
}

// Aggregator moteur d'agrégation. Le logger ne sert qu'à signaler les
// données sales (répartition mixte incohérente) : le moteur ne lève jamais
// d'erreur, les rapports doivent rester disponibles.
type Aggregator struct {
	log zerolog.Logger
}

// NewAggregator construit le moteur. Passer zerolog.Nop() dans les tests.
func NewAggregator(log zerolog.Logger) *Aggregator {
	return &Aggregator{log: log}
}

// Aggregate replie prestations et produits en scopes quotidien, mensuel et
// plage optionnelle, en une seule passe sur le même jeu d'événements : les
// règles pourboire et périodes masquées sont appliquées une fois par
// événement, jamais re-dérivées par type de rapport.
func (a *Aggregator) Aggregate(in Input) Result {
	var res Result
	hasRange := in.RangeStart != nil && in.RangeEnd != nil
	if hasRange {
		res.Range = &Scope{}
		res.RangeTips = &TipStats{}
	}

	for i := range in.Prestations {
		a.foldPrestation(&res, &in, &in.Prestations[i], hasRange)
	}
	for i := range in.Products {
		a.foldProduct(&res, &in, &in.Products[i], hasRange)
	}

	// Détail trié du plus récent au plus ancien.
	sortEntriesDesc(res.DailyEntries)
	sortEntriesDesc(res.RangeEntries)
	return res
}

func (a *Aggregator) foldPrestation(res *Result, in *Input, p *entity.Prestation, hasRange bool) {
	if Hidden(p.Timestamp, in.HiddenPeriods) {
		return
	}

	isTip := p.IsTip()
	isCashTip := isTip && p.Payment.Kind == payment.KindCash
	splitOK := a.checkSplit(p.ID, "prestation", p.Amount, p.Payment)

	inDaily := calendar.SameDay(p.Timestamp, in.Ref)
	inMonthly := calendar.SameMonth(p.Timestamp, in.Ref)
	inRange := hasRange && withinRange(p.Timestamp, *in.RangeStart, *in.RangeEnd)

	apply := func(s *Scope, tips *TipStats) {
		// Règle pourboire, asymétrique à dessein : le montant d'un pourboire
		// en espèces n'entre pas dans le CA (il reste en caisse), mais un
		// pourboire carte ou chèque si ; aucun pourboire n'est compté comme
		// prestation dans les compteurs.
		if !isCashTip {
			s.addAmount(p.Amount, p.Payment, splitOK)
		}
		if !isTip {
			s.addCount(p.Payment.Kind)
		}
		if isTip {
			tips.TipCount++
			tips.TipAmount = tips.TipAmount.Add(p.Amount)
			if !isCashTip {
				tips.NonCashTipAmount = tips.NonCashTipAmount.Add(p.Amount)
			}
		}
	}

	if inDaily {
		apply(&res.Daily, &res.DailyTips)
		apply(&res.DailyPrestations, &TipStats{})
		res.DailyEntries = append(res.DailyEntries, prestationEntry(p))
	}
	if inMonthly {
		apply(&res.Monthly, &res.MonthlyTips)
		apply(&res.MonthlyPrestations, &TipStats{})
	}
	if inRange {
		apply(res.Range, res.RangeTips)
		res.RangeEntries = append(res.RangeEntries, prestationEntry(p))
	}
}

func (a *Aggregator) foldProduct(res *Result, in *Input, p *entity.ProductSale, hasRange bool) {
	if Hidden(p.Timestamp, in.HiddenPeriods) {
		return
	}

	splitOK := a.checkSplit(p.ID, "produit", p.Amount, p.Payment)

	inDaily := calendar.SameDay(p.Timestamp, in.Ref)
	inMonthly := calendar.SameMonth(p.Timestamp, in.Ref)
	inRange := hasRange && withinRange(p.Timestamp, *in.RangeStart, *in.RangeEnd)

	apply := func(s *Scope) {
		s.addAmount(p.Amount, p.Payment, splitOK)
		s.addCount(p.Payment.Kind)
	}

	if inDaily {
		apply(&res.Daily)
		res.DailyProductCount++
		res.DailyEntries = append(res.DailyEntries, productEntry(p))
	}
	if inMonthly {
		apply(&res.Monthly)
		res.MonthlyProductCount++
	}
	if inRange {
		apply(res.Range)
		res.RangeEntries = append(res.RangeEntries, productEntry(p))
	}
}

// checkSplit vérifie l'invariant carte + espèces == montant d'un paiement
// mixte. Une incohérence est signalée mais ne bloque jamais le rapport :
// le montant nominal retombe en entier dans le compartiment Mixed.
func (a *Aggregator) checkSplit(id, kind string, amount decimal.Decimal, pay payment.Payment) bool {
	if pay.SplitConsistent(amount) {
		return true
	}
	a.log.Warn().
		Str("id", id).
		Str("type", kind).
		Str("montant", amount.String()).
		Str("carte", pay.CardAmount.String()).
		Str("especes", pay.CashAmount.String()).
		Msg("répartition mixte incohérente, montant reporté dans le compartiment mixte")
	return false
}

func withinRange(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

func prestationEntry(p *entity.Prestation) Entry {
	e := Entry{
		ID:            p.ID,
		Kind:          "prestation",
		Name:          p.ServiceName,
		Amount:        p.Amount,
		PaymentMethod: p.Payment.Kind,
		Timestamp:     p.Timestamp,
	}
	if p.Payment.IsMixed() {
		card, cash := p.Payment.CardAmount, p.Payment.CashAmount
		e.MixedCardAmount, e.MixedCashAmount = &card, &cash
	}
	return e
}

func productEntry(p *entity.ProductSale) Entry {
	e := Entry{
		ID:            p.ID,
		Kind:          "product",
		Name:          p.ProductName,
		Amount:        p.Amount,
		PaymentMethod: p.Payment.Kind,
		Timestamp:     p.Timestamp,
	}
	if p.Payment.IsMixed() {
		card, cash := p.Payment.CardAmount, p.Payment.CashAmount
		e.MixedCardAmount, e.MixedCashAmount = &card, &cash
	}
	return e
}

func sortEntriesDesc(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})
}
