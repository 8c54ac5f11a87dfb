package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/coiffea/salon-api/internal/application/dto"
	"github.com/coiffea/salon-api/internal/application/loyalty"
)

// LoyaltyHandler dépense de points de fidélité.
type LoyaltyHandler struct {
	uc *loyalty.RedeemUseCase
}

// NewLoyaltyHandler construit le handler de fidélité.
func NewLoyaltyHandler(uc *loyalty.RedeemUseCase) *LoyaltyHandler {
	return &LoyaltyHandler{uc: uc}
}

// Redeem dépense des points : refuse si le solde du client est insuffisant.
func (h *LoyaltyHandler) Redeem(c *fiber.Ctx) error {
	var in dto.RedeemPointsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	if in.StylistID == "" || in.ClientID == "" || in.Points <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "stylistId, clientId et points > 0 sont requis"})
	}
	out, err := h.uc.Redeem(c.Context(), GetSalonID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
