package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/coiffea/salon-api/internal/domain/entity"
	"github.com/coiffea/salon-api/internal/domain/repository"
)

var _ repository.StylistRepository = (*StylistRepo)(nil)

// StylistRepo persistance des coiffeurs (utilisable avec pool ou tx).
type StylistRepo struct {
	q Querier
}

// NewStylistRepository construit l'adaptateur. Passer pool ou tx (Querier).
func NewStylistRepository(q Querier) *StylistRepo {
	return &StylistRepo{q: q}
}

// Create persiste un nouveau coiffeur.
func (r *StylistRepo) Create(s *entity.Stylist) error {
	query := `
		INSERT INTO stylists (id, salon_id, name, commission_pct, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.SalonID, s.Name, s.CommissionPct, s.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert stylist : %w", err)
	}
	return nil
}

// GetByID coiffeur par identifiant, soft-supprimés compris (nil si absent).
func (r *StylistRepo) GetByID(id string) (*entity.Stylist, error) {
	query := `
		SELECT id, salon_id, name, commission_pct, created_at, deleted_at
		FROM stylists WHERE id = $1`
	var s entity.Stylist
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.SalonID, &s.Name, &s.CommissionPct, &s.CreatedAt, &s.DeletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stylist : %w", err)
	}
	return &s, nil
}

// ListBySalon coiffeurs du salon triés par nom.
func (r *StylistRepo) ListBySalon(salonID string, includeDeleted bool) ([]entity.Stylist, error) {
	query := `
		SELECT id, salon_id, name, commission_pct, created_at, deleted_at
		FROM stylists WHERE salon_id = $1`
	if !includeDeleted {
		query += ` AND deleted_at IS NULL`
	}
	query += ` ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, salonID)
	if err != nil {
		return nil, fmt.Errorf("list stylists : %w", err)
	}
	defer rows.Close()
	var list []entity.Stylist
	for rows.Next() {
		var s entity.Stylist
		if err := rows.Scan(&s.ID, &s.SalonID, &s.Name, &s.CommissionPct, &s.CreatedAt, &s.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan stylist : %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Update met à jour nom et commission.
func (r *StylistRepo) Update(s *entity.Stylist) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE stylists SET name = $2, commission_pct = $3 WHERE id = $1`,
		s.ID, s.Name, s.CommissionPct)
	if err != nil {
		return fmt.Errorf("update stylist : %w", err)
	}
	return nil
}

// SoftDelete marque le coiffeur supprimé sans toucher à ses événements.
func (r *StylistRepo) SoftDelete(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE stylists SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("soft delete stylist : %w", err)
	}
	return nil
}
