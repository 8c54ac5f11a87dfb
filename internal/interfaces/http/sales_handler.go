package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/coiffea/salon-api/internal/application/dto"
	"github.com/coiffea/salon-api/internal/application/sales"
)

// SalesHandler enregistrement des ventes (prestations et produits).
type SalesHandler struct {
	uc *sales.RecordSaleUseCase
}

// NewSalesHandler construit le handler de ventes.
func NewSalesHandler(uc *sales.RecordSaleUseCase) *SalesHandler {
	return &SalesHandler{uc: uc}
}

// CreatePrestation ajoute une prestation au journal et crédite les points du
// client dans la même transaction.
func (h *SalesHandler) CreatePrestation(c *fiber.Ctx) error {
	var in dto.CreatePrestationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	if in.StylistID == "" || !in.Amount.IsPositive() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "stylistId et un montant positif sont requis"})
	}
	out, err := h.uc.RecordPrestation(c.Context(), GetSalonID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CreateProductSale ajoute une vente de produit au journal.
func (h *SalesHandler) CreateProductSale(c *fiber.Ctx) error {
	var in dto.CreateProductSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	if in.StylistID == "" || in.ProductName == "" || !in.Amount.IsPositive() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "stylistId, productName et un montant positif sont requis"})
	}
	out, err := h.uc.RecordProductSale(c.Context(), GetSalonID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
