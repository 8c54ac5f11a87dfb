package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/coiffea/salon-api/internal/application/dto"
	"github.com/coiffea/salon-api/internal/application/usecase"
)

// StylistHandler gestion des coiffeurs du salon.
type StylistHandler struct {
	uc *usecase.StylistUseCase
}

// NewStylistHandler construit le handler des coiffeurs.
func NewStylistHandler(uc *usecase.StylistUseCase) *StylistHandler {
	return &StylistHandler{uc: uc}
}

// Create ajoute un coiffeur.
func (h *StylistHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStylistRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name est requis"})
	}
	out, err := h.uc.Create(GetSalonID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List coiffeurs actifs du salon.
func (h *StylistHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetSalonID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update nom et commission d'un coiffeur.
func (h *StylistHandler) Update(c *fiber.Ctx) error {
	var in dto.CreateStylistRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	out, err := h.uc.Update(GetSalonID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete soft delete : le coiffeur disparaît des listes mais reste visible
// dans les rapports historiques.
func (h *StylistHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetSalonID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
