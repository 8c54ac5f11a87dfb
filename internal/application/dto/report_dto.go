package dto

import (
	"github.com/shopspring/decimal"

	"github.com/coiffea/salon-api/internal/domain/report"
)

// SummaryResponse réponse de GET /api/reports/summary : KPIs du jour et du
// mois en cours pour l'ensemble du salon, plus les dernières prestations.
type SummaryResponse struct {
	DailyAmount   decimal.Decimal `json:"dailyAmount"`
	DailyCount    int             `json:"dailyCount"`
	MonthlyAmount decimal.Decimal `json:"monthlyAmount"`
	MonthlyCount  int             `json:"monthlyCount"`

	DailyPayments   report.Scope `json:"dailyPayments"`
	MonthlyPayments report.Scope `json:"monthlyPayments"`

	DailyTips   report.TipStats `json:"dailyTips"`
	MonthlyTips report.TipStats `json:"monthlyTips"`

	DailyProductCount   int `json:"dailyProductCount"`
	MonthlyProductCount int `json:"monthlyProductCount"`

	LastPrestations []report.Entry `json:"lastPrestations"`

	// Renseignés uniquement quand une plage explicite from/to est demandée.
	Range        *report.Scope  `json:"range,omitempty"`
	RangeEntries []report.Entry `json:"rangeEntries,omitempty"`
}

// StylistBreakdownResponse réponse de GET /api/stylists/:id/breakdown :
// agrégats du coiffeur pour le jour demandé (défaut : aujourd'hui) et son
// mois, avec le détail du jour et la part de commission.
type StylistBreakdownResponse struct {
	StylistID   string `json:"stylistId"`
	StylistName string `json:"stylistName"`
	Date        string `json:"date"` // AAAA-MM-JJ effectivement utilisé

	Daily   report.Scope `json:"daily"`
	Monthly report.Scope `json:"monthly"`

	DailyPrestations   report.Scope `json:"dailyPrestations"`
	MonthlyPrestations report.Scope `json:"monthlyPrestations"`

	DailyTips   report.TipStats `json:"dailyTips"`
	MonthlyTips report.TipStats `json:"monthlyTips"`

	DailyEntries []report.Entry `json:"dailyEntries"`

	CommissionPct decimal.Decimal `json:"commissionPct"`
	DailyPayout   decimal.Decimal `json:"dailyPayout"`
	MonthlyPayout decimal.Decimal `json:"monthlyPayout"`
}

// DayRow ligne de GET /api/reports/by-day : un jour du mois demandé.
type DayRow struct {
	Date    string          `json:"date"` // AAAA-MM-JJ
	Amount  decimal.Decimal `json:"amount"`
	Count   int             `json:"count"`
	Salary  decimal.Decimal `json:"salary"` // masse des commissions du jour
	Methods report.Methods  `json:"methods"`
}

// ByDayResponse réponse de GET /api/reports/by-day?year&month.
type ByDayResponse struct {
	Year  int      `json:"year"`
	Month int      `json:"month"`
	Days  []DayRow `json:"days"`
}

// MonthRow ligne de GET /api/reports/by-month : un mois de l'année demandée.
type MonthRow struct {
	Month  int             `json:"month"` // 1..12
	Amount decimal.Decimal `json:"amount"`
	Count  int             `json:"count"`
	Salary decimal.Decimal `json:"salary"`
}

// ByMonthResponse réponse de GET /api/reports/by-month?year.
type ByMonthResponse struct {
	Year   int        `json:"year"`
	Months []MonthRow `json:"months"`
}

// PointsUsageResponse réponse de GET /api/reports/points-usage.
type PointsUsageResponse struct {
	Day     string               `json:"day"`   // AAAA-MM-JJ de référence
	Month   string               `json:"month"` // AAAA-MM de référence
	Daily   []report.PointsGroup `json:"daily"`
	Monthly []report.PointsGroup `json:"monthly"`
}
