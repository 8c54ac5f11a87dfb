// Package pdf génère le rapport mensuel imprimable du salon.
//
// Mise en page A4 :
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  EN-TÊTE : Nom du salon  │  Mois + date d'édition           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE : Jour | CA | Prestations | Espèces | Chèque |       │
//	│          Carte | Mixte | Commissions                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAUX : CA du mois / prestations / masse de commissions   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/coiffea/salon-api/internal/application/dto"
)

// ── Palette ───────────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 122, Green: 62, Blue: 92}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var frenchMonths = [...]string{"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre"}

// ── Générateur ────────────────────────────────────────────────────────────────

// MonthlyReportPDF génère le rapport mensuel avec Maroto v2.
type MonthlyReportPDF struct{}

// NewMonthlyReportPDF construit le générateur.
func NewMonthlyReportPDF() *MonthlyReportPDF { return &MonthlyReportPDF{} }

// Generate produit les octets du PDF à partir du détail jour par jour.
func (g *MonthlyReportPDF) Generate(_ context.Context, salonName string, report *dto.ByDayResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Rapport mensuel", true).
		WithAuthor(salonName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(salonName, report.Year, report.Month))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range dayRows(report.Days) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(report.Days))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf : génération du document : %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Sections ──────────────────────────────────────────────────────────────────

func headerRow(salonName string, year, month int) core.Row {
	monthLabel := fmt.Sprintf("%d-%02d", year, month)
	if month >= 1 && month <= 12 {
		monthLabel = fmt.Sprintf("%s %d", frenchMonths[month-1], year)
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New(salonName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Rapport mensuel d'activité", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(monthLabel, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 3,
				Color: colorPrimary,
			}),
			text.New("Édité le "+time.Now().Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 12, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Jour", 2, align.Left),
		h("CA", 2, align.Right),
		h("Prest.", 1, align.Center),
		h("Espèces", 2, align.Right),
		h("Chèque", 1, align.Right),
		h("Carte", 2, align.Right),
		h("Commissions", 2, align.Right),
	)
}

func dayRows(days []dto.DayRow) []core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{
			Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	result := make([]core.Row, 0, len(days))
	for _, d := range days {
		result = append(result, row.New(6).Add(
			cell(d.Date, 2, align.Left),
			cell(euros(d.Amount), 2, align.Right),
			cell(fmt.Sprintf("%d", d.Count), 1, align.Center),
			cell(euros(d.Methods.Cash.Amount), 2, align.Right),
			cell(euros(d.Methods.Check.Amount), 1, align.Right),
			cell(euros(d.Methods.Card.Amount.Add(d.Methods.Mixed.Amount)), 2, align.Right),
			cell(euros(d.Salary), 2, align.Right),
		))
	}
	return result
}

func totalsRow(days []dto.DayRow) core.Row {
	var amount, salary decimal.Decimal
	count := 0
	for _, d := range days {
		amount = amount.Add(d.Amount)
		salary = salary.Add(d.Salary)
		count += d.Count
	}
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}
	return row.New(20).Add(
		col.New(4),
		col.New(4).Add(
			label("CA du mois :"),
			label("Prestations :"),
			label("Masse de commissions :"),
		),
		col.New(4).Add(
			value(euros(amount)),
			value(fmt.Sprintf("%d", count)),
			value(euros(salary)),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// euros formate un montant avec deux décimales et le symbole €.
func euros(d decimal.Decimal) string {
	return d.StringFixed(2) + " €"
}
