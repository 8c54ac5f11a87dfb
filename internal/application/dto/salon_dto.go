package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/coiffea/salon-api/internal/domain/entity"
)

// RegisterRequest inscription d'un salon (le mot de passe est hashé dans le
// use case, jamais stocké en clair).
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest connexion admin du salon.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SalonResponse sortie d'un salon (sans hash de mot de passe).
type SalonResponse struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	TrialEndsAt        time.Time `json:"trialEndsAt"`
	SubscriptionStatus string    `json:"subscriptionStatus"`
}

// LoginResponse sortie avec token JWT.
type LoginResponse struct {
	Token string        `json:"token"`
	Salon SalonResponse `json:"salon"`
}

// CreateStylistRequest création d'un coiffeur.
type CreateStylistRequest struct {
	Name          string           `json:"name" validate:"required,min=1,max=200"`
	CommissionPct *decimal.Decimal `json:"commissionPct,omitempty"`
}

// StylistResponse sortie d'un coiffeur.
type StylistResponse struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	CommissionPct *decimal.Decimal `json:"commissionPct,omitempty"`
	Deleted       bool             `json:"deleted,omitempty"`
}

// CreateClientRequest création d'un client du salon.
type CreateClientRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=200"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone" validate:"omitempty,max=30"`
}

// ClientResponse sortie d'un client avec son solde de points.
type ClientResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email,omitempty"`
	Phone       string     `json:"phone,omitempty"`
	Points      int64      `json:"points"`
	LastVisitAt *time.Time `json:"lastVisitAt,omitempty"`
}

// HiddenPeriodDTO période masquée telle qu'échangée avec le front.
type HiddenPeriodDTO struct {
	Month    int `json:"month" validate:"required"` // AAAAMM
	StartDay int `json:"startDay" validate:"required,min=1,max=31"`
	EndDay   int `json:"endDay" validate:"required,min=1,max=31"`
}

// SettingsResponse réglages de rapport du salon.
type SettingsResponse struct {
	DefaultCommissionPct decimal.Decimal   `json:"defaultCommissionPct"`
	HiddenPeriods        []HiddenPeriodDTO `json:"hiddenPeriods"`
}

// UpdateSettingsRequest mise à jour de la commission par défaut.
type UpdateSettingsRequest struct {
	DefaultCommissionPct decimal.Decimal `json:"defaultCommissionPct" validate:"required"`
}

// ReplaceHiddenPeriodsRequest remplacement des périodes masquées.
type ReplaceHiddenPeriodsRequest struct {
	Periods []HiddenPeriodDTO `json:"periods" validate:"dive"`
}

// HiddenPeriodsFromDTO conversion vers les entités du domaine.
func HiddenPeriodsFromDTO(in []HiddenPeriodDTO) []entity.HiddenPeriod {
	out := make([]entity.HiddenPeriod, 0, len(in))
	for _, p := range in {
		out = append(out, entity.HiddenPeriod{Month: p.Month, StartDay: p.StartDay, EndDay: p.EndDay})
	}
	return out
}

// HiddenPeriodsToDTO conversion depuis les entités du domaine.
func HiddenPeriodsToDTO(in []entity.HiddenPeriod) []HiddenPeriodDTO {
	out := make([]HiddenPeriodDTO, 0, len(in))
	for _, p := range in {
		out = append(out, HiddenPeriodDTO{Month: p.Month, StartDay: p.StartDay, EndDay: p.EndDay})
	}
	return out
}
