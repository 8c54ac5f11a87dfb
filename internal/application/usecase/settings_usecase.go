package usecase

import (
	"github.com/coiffea/salon-api/internal/application/dto"
	"github.com/coiffea/salon-api/internal/application/reporting"
	"github.com/coiffea/salon-api/internal/domain"
	"github.com/coiffea/salon-api/internal/domain/repository"
)

// SettingsUseCase réglages de rapport du salon : commission par défaut et
// périodes masquées. Chaque écriture invalide le cache TTL pour que les
// rapports suivants voient la nouvelle valeur (contrat invalidation à
// l'écriture du SettingsProvider).
type SettingsUseCase struct {
	repo  repository.SalonRepository
	cache reporting.SettingsProvider
}

// NewSettingsUseCase construit le cas d'utilisation.
func NewSettingsUseCase(repo repository.SalonRepository, cache reporting.SettingsProvider) *SettingsUseCase {
	return &SettingsUseCase{repo: repo, cache: cache}
}

// Get réglages courants du salon.
func (uc *SettingsUseCase) Get(salonID string) (*dto.SettingsResponse, error) {
	s, err := uc.repo.GetSettings(salonID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrSalonNotFound
	}
	return &dto.SettingsResponse{
		DefaultCommissionPct: s.DefaultCommissionPct,
		HiddenPeriods:        dto.HiddenPeriodsToDTO(s.HiddenPeriods),
	}, nil
}

// UpdateCommission change la commission par défaut du salon.
func (uc *SettingsUseCase) UpdateCommission(salonID string, in dto.UpdateSettingsRequest) error {
	if in.DefaultCommissionPct.IsNegative() {
		return domain.ErrInvalidInput
	}
	if err := uc.repo.UpdateDefaultCommission(salonID, in.DefaultCommissionPct); err != nil {
		return err
	}
	uc.cache.Invalidate(salonID)
	return nil
}

// ReplaceHiddenPeriods remplace les périodes masquées du salon. L'ordre
// fourni est conservé : en cas de périodes multiples sur un même mois, la
// première l'emporte dans le filtre.
func (uc *SettingsUseCase) ReplaceHiddenPeriods(salonID string, in dto.ReplaceHiddenPeriodsRequest) error {
	for _, p := range in.Periods {
		if p.Month < 200001 || p.Month > 210012 ||
			p.StartDay < 1 || p.StartDay > 31 || p.EndDay < 1 || p.EndDay > 31 {
			return domain.ErrInvalidInput
		}
	}
	if err := uc.repo.ReplaceHiddenPeriods(salonID, dto.HiddenPeriodsFromDTO(in.Periods)); err != nil {
		return err
	}
	uc.cache.Invalidate(salonID)
	return nil
}
