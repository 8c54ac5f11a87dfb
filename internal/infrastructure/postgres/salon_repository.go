package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/coiffea/salon-api/internal/domain"
	"github.com/coiffea/salon-api/internal/domain/entity"
	"github.com/coiffea/salon-api/internal/domain/repository"
)

var _ repository.SalonRepository = (*SalonRepo)(nil)

// SalonRepo persistance du locataire et de ses réglages de rapport.
// Prend le pool (et non un Querier) : ReplaceHiddenPeriods ouvre sa propre
// transaction delete + insert.
type SalonRepo struct {
	pool *pgxpool.Pool
}

// NewSalonRepository construit l'adaptateur.
func NewSalonRepository(pool *pgxpool.Pool) *SalonRepo {
	return &SalonRepo{pool: pool}
}

// Create persiste un nouveau salon.
func (r *SalonRepo) Create(s *entity.Salon) error {
	query := `
		INSERT INTO salons (id, name, email, password_hash, default_commission_pct,
		                    trial_ends_at, subscription_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(context.Background(), query,
		s.ID, s.Name, s.Email, s.PasswordHash, s.DefaultCommissionPct,
		s.TrialEndsAt, s.SubscriptionStatus, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert salon : %w", err)
	}
	return nil
}

const salonColumns = `id, name, email, password_hash, default_commission_pct,
	trial_ends_at, subscription_status, created_at, updated_at`

// GetByID salon par identifiant (nil si absent).
func (r *SalonRepo) GetByID(id string) (*entity.Salon, error) {
	return r.getBy(`SELECT `+salonColumns+` FROM salons WHERE id = $1`, id)
}

// GetByEmail salon par email de connexion admin (nil si absent).
func (r *SalonRepo) GetByEmail(email string) (*entity.Salon, error) {
	return r.getBy(`SELECT `+salonColumns+` FROM salons WHERE email = $1`, email)
}

func (r *SalonRepo) getBy(query string, arg any) (*entity.Salon, error) {
	var s entity.Salon
	err := r.pool.QueryRow(context.Background(), query, arg).Scan(
		&s.ID, &s.Name, &s.Email, &s.PasswordHash, &s.DefaultCommissionPct,
		&s.TrialEndsAt, &s.SubscriptionStatus, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get salon : %w", err)
	}
	return &s, nil
}

// UpdateSubscription change le statut d'abonnement (webhook de facturation).
func (r *SalonRepo) UpdateSubscription(id, status string) error {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE salons SET subscription_status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update subscription : %w", err)
	}
	return nil
}

// GetSettings réglages de rapport : commission par défaut + périodes
// masquées dans leur ordre de priorité.
func (r *SalonRepo) GetSettings(salonID string) (*entity.SalonSettings, error) {
	var s entity.SalonSettings
	err := r.pool.QueryRow(context.Background(),
		`SELECT default_commission_pct FROM salons WHERE id = $1`, salonID,
	).Scan(&s.DefaultCommissionPct)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSalonNotFound
		}
		return nil, fmt.Errorf("get settings : %w", err)
	}

	rows, err := r.pool.Query(context.Background(),
		`SELECT month, start_day, end_day FROM hidden_periods
		 WHERE salon_id = $1 ORDER BY position`, salonID)
	if err != nil {
		return nil, fmt.Errorf("get hidden periods : %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var p entity.HiddenPeriod
		if err := rows.Scan(&p.Month, &p.StartDay, &p.EndDay); err != nil {
			return nil, fmt.Errorf("scan hidden period : %w", err)
		}
		s.HiddenPeriods = append(s.HiddenPeriods, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &s, nil
}

// UpdateDefaultCommission change la commission par défaut du salon.
func (r *SalonRepo) UpdateDefaultCommission(salonID string, pct decimal.Decimal) error {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE salons SET default_commission_pct = $2, updated_at = NOW() WHERE id = $1`, salonID, pct)
	if err != nil {
		return fmt.Errorf("update commission : %w", err)
	}
	return nil
}

// ReplaceHiddenPeriods remplace l'ensemble des périodes masquées du salon
// dans une transaction, en conservant l'ordre fourni (colonne position).
func (r *SalonRepo) ReplaceHiddenPeriods(salonID string, periods []entity.HiddenPeriod) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction : %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM hidden_periods WHERE salon_id = $1`, salonID); err != nil {
		return fmt.Errorf("delete hidden periods : %w", err)
	}
	for i, p := range periods {
		_, err := tx.Exec(ctx,
			`INSERT INTO hidden_periods (salon_id, position, month, start_day, end_day)
			 VALUES ($1, $2, $3, $4, $5)`,
			salonID, i, p.Month, p.StartDay, p.EndDay)
		if err != nil {
			return fmt.Errorf("insert hidden period : %w", err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction : %w", err)
	}
	return nil
}
