package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/coiffea/salon-api/internal/domain"
	"github.com/coiffea/salon-api/internal/domain/entity"
	"github.com/coiffea/salon-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo persistance des clients (utilisable avec pool ou tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository construit l'adaptateur. Passer pool ou tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

const clientColumns = `id, salon_id, name, email, phone, points, last_visit_at, created_at, updated_at`

// Create persiste un nouveau client.
func (r *ClientRepo) Create(c *entity.Client) error {
	query := `
		INSERT INTO clients (` + clientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.SalonID, c.Name, c.Email, c.Phone, c.Points, c.LastVisitAt, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert client : %w", err)
	}
	return nil
}

// GetByID client par identifiant (nil si absent).
func (r *ClientRepo) GetByID(id string) (*entity.Client, error) {
	var c entity.Client
	err := r.q.QueryRow(context.Background(),
		`SELECT `+clientColumns+` FROM clients WHERE id = $1`, id).Scan(
		&c.ID, &c.SalonID, &c.Name, &c.Email, &c.Phone, &c.Points, &c.LastVisitAt, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client : %w", err)
	}
	return &c, nil
}

// ListBySalon liste paginée des clients du salon, triée par nom.
func (r *ClientRepo) ListBySalon(salonID string, limit, offset int) ([]entity.Client, error) {
	return r.list(
		`SELECT `+clientColumns+` FROM clients
		 WHERE salon_id = $1 ORDER BY name LIMIT $2 OFFSET $3`,
		salonID, limit, offset)
}

// ListAll tous les clients du salon (enrichissement des rapports de points).
func (r *ClientRepo) ListAll(salonID string) ([]entity.Client, error) {
	return r.list(`SELECT `+clientColumns+` FROM clients WHERE salon_id = $1 ORDER BY name`, salonID)
}

func (r *ClientRepo) list(query string, args ...any) ([]entity.Client, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list clients : %w", err)
	}
	defer rows.Close()
	var list []entity.Client
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(&c.ID, &c.SalonID, &c.Name, &c.Email, &c.Phone, &c.Points,
			&c.LastVisitAt, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan client : %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update met à jour l'identité et le solde de points du client.
func (r *ClientRepo) Update(c *entity.Client) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE clients SET name = $2, email = $3, phone = $4, points = $5,
		 last_visit_at = $6, updated_at = $7 WHERE id = $1`,
		c.ID, c.Name, c.Email, c.Phone, c.Points, c.LastVisitAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update client : %w", err)
	}
	return nil
}
