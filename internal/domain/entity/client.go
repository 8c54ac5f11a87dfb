package entity

import "time"

// Client client final du salon, porteur du solde de points de fidélité.
//
// Points est un solde courant : il n'est modifié que par deux opérations,
// l'attribution (lors d'une prestation) et la dépense (PointsRedemption).
// Invariant : jamais négatif ; une dépense ne peut excéder le solde.
type Client struct {
	ID          string
	SalonID     string
	Name        string
	Email       string
	Phone       string
	Points      int64
	LastVisitAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
