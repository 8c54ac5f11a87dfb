package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Statuts d'abonnement Stripe (copiés tels quels depuis le webhook).
const (
	SubscriptionNone     = "none"     // jamais abonné, période d'essai seulement
	SubscriptionActive   = "active"   // abonnement en cours
	SubscriptionCanceled = "canceled" // résilié, accès coupé à la fin de l'essai
)

// Salon locataire de l'application : toutes les données (coiffeurs, clients,
// prestations, réglages) lui sont rattachées, sans visibilité croisée.
type Salon struct {
	ID                   string
	Name                 string
	Email                string // identifiant de connexion admin
	PasswordHash         string // bcrypt
	DefaultCommissionPct decimal.Decimal
	TrialEndsAt          time.Time
	SubscriptionStatus   string // SubscriptionNone | SubscriptionActive | SubscriptionCanceled
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// AccessAllowed vrai si le salon peut utiliser l'application à l'instant now :
// abonnement actif, ou période d'essai non expirée.
func (s *Salon) AccessAllowed(now time.Time) bool {
	if s.SubscriptionStatus == SubscriptionActive {
		return true
	}
	return now.Before(s.TrialEndsAt)
}

// HiddenPeriod fenêtre d'exclusion configurée par l'admin : les événements
// dont la date locale tombe dans [startDay, endDay] du mois donné sont
// exclus de tous les agrégats, sans suppression des enregistrements.
type HiddenPeriod struct {
	Month    int // AAAAMM, ex : 202403
	StartDay int
	EndDay   int // les bornes peuvent être données dans n'importe quel ordre
}

// SalonSettings réglages du salon lus à chaque rapport (via cache TTL).
type SalonSettings struct {
	DefaultCommissionPct decimal.Decimal
	HiddenPeriods        []HiddenPeriod
}
