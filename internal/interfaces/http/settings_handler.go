package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/coiffea/salon-api/internal/application/dto"
	"github.com/coiffea/salon-api/internal/application/usecase"
)

// SettingsHandler réglages de rapport du salon (commission par défaut et
// périodes masquées).
type SettingsHandler struct {
	uc *usecase.SettingsUseCase
}

// NewSettingsHandler construit le handler des réglages.
func NewSettingsHandler(uc *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// Get réglages courants.
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(GetSalonID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateCommission remplace la commission par défaut du salon.
func (h *SettingsHandler) UpdateCommission(c *fiber.Ctx) error {
	var in dto.UpdateSettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	if err := h.uc.UpdateCommission(GetSalonID(c), in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ReplaceHiddenPeriods remplace l'ensemble des périodes masquées. L'ordre de
// la liste est l'ordre de priorité du filtre.
func (h *SettingsHandler) ReplaceHiddenPeriods(c *fiber.Ctx) error {
	var in dto.ReplaceHiddenPeriodsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	for _, p := range in.Periods {
		if p.Month < 100 || p.StartDay < 1 || p.StartDay > 31 || p.EndDay < 1 || p.EndDay > 31 {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "période masquée invalide (month AAAAMM, jours 1..31)"})
		}
	}
	if err := h.uc.ReplaceHiddenPeriods(GetSalonID(c), in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
