package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stylist coiffeur rattaché à un salon.
//
// CommissionPct est optionnel : nil signifie « utiliser la commission par
// défaut du salon ». Jamais supprimé physiquement tant que des prestations
// le référencent (DeletedAt renseigné à la place).
type Stylist struct {
	ID            string
	SalonID       string
	Name          string
	CommissionPct *decimal.Decimal
	CreatedAt     time.Time
	DeletedAt     *time.Time
}

// Active vrai si le coiffeur n'est pas soft-supprimé.
func (s *Stylist) Active() bool { return s.DeletedAt == nil }
