package http

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/coiffea/salon-api/internal/application/dto"
	"github.com/coiffea/salon-api/internal/application/reporting"
	"github.com/coiffea/salon-api/internal/domain"
	"github.com/coiffea/salon-api/internal/domain/repository"
)

// MonthlyPDFGenerator port du générateur PDF du rapport mensuel.
type MonthlyPDFGenerator interface {
	Generate(ctx context.Context, salonName string, report *dto.ByDayResponse) ([]byte, error)
}

// ReportCSVExporter port des exports tableur.
type ReportCSVExporter interface {
	MonthlyReport(report *dto.ByDayResponse) ([]byte, error)
	PointsUsage(report *dto.PointsUsageResponse) ([]byte, error)
}

// ExportHandler exports PDF et CSV des rapports.
type ExportHandler struct {
	reports *reporting.ReportUseCase
	salons  repository.SalonRepository
	pdf     MonthlyPDFGenerator
	csv     ReportCSVExporter
}

// NewExportHandler construit le handler d'export.
func NewExportHandler(reports *reporting.ReportUseCase, salons repository.SalonRepository, pdf MonthlyPDFGenerator, csv ReportCSVExporter) *ExportHandler {
	return &ExportHandler{reports: reports, salons: salons, pdf: pdf, csv: csv}
}

// MonthlyPDF rapport mensuel imprimable (?year=&month=, défaut : mois courant).
func (h *ExportHandler) MonthlyPDF(c *fiber.Ctx) error {
	salonID := GetSalonID(c)
	report, err := h.reports.ByDay(c.Context(), salonID, c.QueryInt("year"), c.QueryInt("month"))
	if err != nil {
		return respondError(c, err)
	}
	salon, err := h.salons.GetByID(salonID)
	if err != nil {
		return respondError(c, err)
	}
	if salon == nil {
		return respondError(c, domain.ErrSalonNotFound)
	}
	out, err := h.pdf.Generate(c.Context(), salon.Name, report)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="rapport-%d-%02d.pdf"`, report.Year, report.Month))
	return c.Send(out)
}

// MonthlyCSV détail jour par jour en CSV.
func (h *ExportHandler) MonthlyCSV(c *fiber.Ctx) error {
	report, err := h.reports.ByDay(c.Context(), GetSalonID(c), c.QueryInt("year"), c.QueryInt("month"))
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.csv.MonthlyReport(report)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="rapport-%d-%02d.csv"`, report.Year, report.Month))
	return c.Send(out)
}

// PointsCSV dépenses de points du mois en CSV (?month=AAAA-MM).
func (h *ExportHandler) PointsCSV(c *fiber.Ctx) error {
	report, err := h.reports.PointsUsage(c.Context(), GetSalonID(c), c.Query("day"), c.Query("month"))
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.csv.PointsUsage(report)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="points-%s.csv"`, report.Month))
	return c.Send(out)
}
