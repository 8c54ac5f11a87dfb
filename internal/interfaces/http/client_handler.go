package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/coiffea/salon-api/internal/application/dto"
	"github.com/coiffea/salon-api/internal/application/usecase"
)

// ClientHandler gestion des clients du salon.
type ClientHandler struct {
	uc *usecase.ClientUseCase
}

// NewClientHandler construit le handler des clients.
func NewClientHandler(uc *usecase.ClientUseCase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

// Create ajoute un client.
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
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

// GetByID client par identifiant, avec son solde de points.
func (h *ClientHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(GetSalonID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List clients du salon, paginés (?limit=&offset=).
func (h *ClientHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "pagination invalide"})
	}
	page.DefaultPage()
	out, err := h.uc.List(GetSalonID(c), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
