package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/coiffea/salon-api/internal/application/reporting"
)

// ReportHandler expose les rapports financiers du salon.
type ReportHandler struct {
	uc *reporting.ReportUseCase
}

// NewReportHandler construit le handler de rapports.
func NewReportHandler(uc *reporting.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Summary KPIs du jour et du mois, dernières prestations, et agrégats d'une
// plage explicite si from/to (AAAA-MM-JJ) sont fournis ensemble.
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.Context(), GetSalonID(c), c.Query("from"), c.Query("to"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ByDay détail jour par jour d'un mois (?year=&month=, défaut : mois courant).
func (h *ReportHandler) ByDay(c *fiber.Ctx) error {
	out, err := h.uc.ByDay(c.Context(), GetSalonID(c), c.QueryInt("year"), c.QueryInt("month"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ByMonth détail mois par mois d'une année (?year=, défaut : année courante).
func (h *ReportHandler) ByMonth(c *fiber.Ctx) error {
	out, err := h.uc.ByMonth(c.Context(), GetSalonID(c), c.QueryInt("year"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// PointsUsage dépenses de points du jour et du mois, groupées par coiffeur
// (?day=AAAA-MM-JJ&month=AAAA-MM, défaut : aujourd'hui).
func (h *ReportHandler) PointsUsage(c *fiber.Ctx) error {
	out, err := h.uc.PointsUsage(c.Context(), GetSalonID(c), c.Query("day"), c.Query("month"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// StylistBreakdown agrégats d'un coiffeur pour un jour donné et son mois,
// avec la part de commission (?date=AAAA-MM-JJ, défaut : aujourd'hui).
func (h *ReportHandler) StylistBreakdown(c *fiber.Ctx) error {
	out, err := h.uc.StylistBreakdown(c.Context(), GetSalonID(c), c.Params("id"), c.Query("date"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
