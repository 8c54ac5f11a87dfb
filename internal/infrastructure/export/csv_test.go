package export

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coiffea/salon-api/internal/application/dto"
	"github.com/coiffea/salon-api/internal/domain/report"
)

func TestMonthlyReportCSV(t *testing.T) {
	in := &dto.ByDayResponse{
		Year: 2024, Month: 5,
		Days: []dto.DayRow{
			{
				Date:   "2024-05-01",
				Amount: decimal.NewFromFloat(150.50),
				Count:  3,
				Salary: decimal.NewFromFloat(45.15),
				Methods: report.Methods{
					Cash: report.Bucket{Amount: decimal.NewFromInt(50)},
					Card: report.Bucket{Amount: decimal.NewFromFloat(100.50)},
				},
			},
		},
	}

	out, err := NewCSVExporter().MonthlyReport(in)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 2, "en-tête + une ligne de jour")
	assert.Equal(t, "jour;ca;prestations;especes;cheque;carte;mixte;commissions", lines[0])
	assert.Equal(t, "2024-05-01;150,50;3;50,00;0,00;100,50;0,00;45,15", lines[1],
		"montants à deux décimales, virgule décimale, séparateur point-virgule")
}

func TestPointsUsageCSV(t *testing.T) {
	in := &dto.PointsUsageResponse{
		Month: "2024-05",
		Monthly: []report.PointsGroup{{
			StylistName: "Émilie",
			Entries: []report.PointsEntry{{
				ClientName: "Durand",
				Points:     20,
				Reason:     "remise brushing",
				Timestamp:  time.Date(2024, 5, 15, 11, 30, 0, 0, time.UTC),
			}},
		}},
	}

	out, err := NewCSVExporter().PointsUsage(in)
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, "coiffeur;client;points;date;motif")
	assert.Contains(t, s, "Émilie;Durand;20;2024-05-15 11:30;remise brushing")
}
