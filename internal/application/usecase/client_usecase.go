package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/coiffea/salon-api/internal/application/dto"
	"github.com/coiffea/salon-api/internal/domain"
	"github.com/coiffea/salon-api/internal/domain/entity"
	"github.com/coiffea/salon-api/internal/domain/repository"
)

// ClientUseCase gestion des clients du salon (le solde de points n'est
// jamais modifié ici : il n'évolue que par les ventes et les dépenses).
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construit le cas d'utilisation.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create crée un client avec un solde de points à zéro.
func (uc *ClientUseCase) Create(salonID string, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	c := &entity.Client{
		ID:        uuid.New().String(),
		SalonID:   salonID,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	return toClientResponse(c), nil
}

// Get détail d'un client avec son solde de points.
func (uc *ClientUseCase) Get(salonID, id string) (*dto.ClientResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil || c.SalonID != salonID {
		return nil, domain.ErrClientNotFound
	}
	return toClientResponse(c), nil
}

// List liste paginée des clients du salon.
func (uc *ClientUseCase) List(salonID string, page dto.PageRequest) ([]*dto.ClientResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListBySalon(salonID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClientResponse, 0, len(list))
	for i := range list {
		out = append(out, toClientResponse(&list[i]))
	}
	return out, nil
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:          c.ID,
		Name:        c.Name,
		Email:       c.Email,
		Phone:       c.Phone,
		Points:      c.Points,
		LastVisitAt: c.LastVisitAt,
	}
}
