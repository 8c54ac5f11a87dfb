// Package export produit les exports tableur (CSV, séparateur point-virgule
// comme attendu par Excel en locale française).
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/coiffea/salon-api/internal/application/dto"
)

// CSVExporter sérialise les rapports en CSV.
type CSVExporter struct{}

func NewCSVExporter() *CSVExporter { return &CSVExporter{} }

// MonthlyReport exporte le détail jour par jour d'un mois.
func (e *CSVExporter) MonthlyReport(report *dto.ByDayResponse) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = ';'

	header := []string{"jour", "ca", "prestations", "especes", "cheque", "carte", "mixte", "commissions"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("csv : en-tête : %w", err)
	}
	for _, d := range report.Days {
		rec := []string{
			d.Date,
			money(d.Amount),
			fmt.Sprintf("%d", d.Count),
			money(d.Methods.Cash.Amount),
			money(d.Methods.Check.Amount),
			money(d.Methods.Card.Amount),
			money(d.Methods.Mixed.Amount),
			money(d.Salary),
		}
		if err := w.Write(rec); err != nil {
			return nil, fmt.Errorf("csv : ligne %s : %w", d.Date, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// PointsUsage exporte les dépenses de points du mois, groupées par coiffeur.
func (e *CSVExporter) PointsUsage(report *dto.PointsUsageResponse) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = ';'

	header := []string{"coiffeur", "client", "points", "date", "motif"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("csv : en-tête : %w", err)
	}
	for _, g := range report.Monthly {
		for _, entry := range g.Entries {
			rec := []string{
				g.StylistName,
				entry.ClientName,
				fmt.Sprintf("%d", entry.Points),
				entry.Timestamp.Format("2006-01-02 15:04"),
				entry.Reason,
			}
			if err := w.Write(rec); err != nil {
				return nil, fmt.Errorf("csv : ligne : %w", err)
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// money formate un montant à deux décimales, virgule décimale.
func money(d decimal.Decimal) string {
	s := d.StringFixed(2)
	b := []byte(s)
	for i := range b {
		if b[i] == '.' {
			b[i] = ','
		}
	}
	return string(b)
}
