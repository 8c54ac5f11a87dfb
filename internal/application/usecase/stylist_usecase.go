package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/coiffea/salon-api/internal/application/dto"
	"github.com/coiffea/salon-api/internal/domain"
	"github.com/coiffea/salon-api/internal/domain/entity"
	"github.com/coiffea/salon-api/internal/domain/repository"
)

// StylistUseCase gestion des coiffeurs du salon.
type StylistUseCase struct {
	repo repository.StylistRepository
}

// NewStylistUseCase construit le cas d'utilisation.
func NewStylistUseCase(repo repository.StylistRepository) *StylistUseCase {
	return &StylistUseCase{repo: repo}
}

// Create crée un coiffeur. CommissionPct nil ⇒ commission par défaut du salon.
func (uc *StylistUseCase) Create(salonID string, in dto.CreateStylistRequest) (*dto.StylistResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	s := &entity.Stylist{
		ID:            uuid.New().String(),
		SalonID:       salonID,
		Name:          in.Name,
		CommissionPct: in.CommissionPct,
		CreatedAt:     time.Now(),
	}
	if err := uc.repo.Create(s); err != nil {
		return nil, err
	}
	return toStylistResponse(s), nil
}

// List liste les coiffeurs actifs du salon.
func (uc *StylistUseCase) List(salonID string) ([]*dto.StylistResponse, error) {
	list, err := uc.repo.ListBySalon(salonID, false)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.StylistResponse, 0, len(list))
	for i := range list {
		out = append(out, toStylistResponse(&list[i]))
	}
	return out, nil
}

// Update modifie nom et commission d'un coiffeur.
func (uc *StylistUseCase) Update(salonID, id string, in dto.CreateStylistRequest) (*dto.StylistResponse, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil || s.SalonID != salonID {
		return nil, domain.ErrStylistNotFound
	}
	if in.Name != "" {
		s.Name = in.Name
	}
	s.CommissionPct = in.CommissionPct
	if err := uc.repo.Update(s); err != nil {
		return nil, err
	}
	return toStylistResponse(s), nil
}

// Delete soft-supprime un coiffeur : ses événements passés restent dans les
// rapports historiques.
func (uc *StylistUseCase) Delete(salonID, id string) error {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if s == nil || s.SalonID != salonID {
		return domain.ErrStylistNotFound
	}
	return uc.repo.SoftDelete(id)
}

func toStylistResponse(s *entity.Stylist) *dto.StylistResponse {
	return &dto.StylistResponse{
		ID:            s.ID,
		Name:          s.Name,
		CommissionPct: s.CommissionPct,
		Deleted:       s.DeletedAt != nil,
	}
}
