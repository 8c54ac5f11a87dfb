package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/coiffea/salon-api/internal/domain/entity"
	"github.com/coiffea/salon-api/internal/domain/repository"
)

var _ repository.PrestationRepository = (*PrestationRepo)(nil)

// PrestationRepo journal append-only des prestations.
type PrestationRepo struct {
	q Querier
}

func NewPrestationRepository(q Querier) *PrestationRepo {
	return &PrestationRepo{q: q}
}

const prestationColumns = `id, salon_id, stylist_id, client_id, amount,
	payment_method, payment_card_amount, payment_cash_amount,
	occurred_at, points_percent, points_awarded, service_name, created_at`

// Create ajoute une prestation au journal. Aucun Update/Delete : les
// corrections passent par des événements compensatoires.
func (r *PrestationRepo) Create(p *entity.Prestation) error {
	method, card, cash := paymentColumns(p.Payment)
	query := `
		INSERT INTO prestations (` + prestationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.SalonID, p.StylistID, nullIfEmpty(p.ClientID), p.Amount,
		method, card, cash,
		p.Timestamp, p.PointsPercent, p.PointsAwarded, p.ServiceName, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert prestation : %w", err)
	}
	return nil
}

// ListBySalon prestations du salon sur [from, to), ordre chronologique.
func (r *PrestationRepo) ListBySalon(ctx context.Context, salonID string, from, to time.Time) ([]entity.Prestation, error) {
	return r.list(ctx,
		`SELECT `+prestationColumns+` FROM prestations
		 WHERE salon_id = $1 AND occurred_at >= $2 AND occurred_at < $3
		 ORDER BY occurred_at`,
		salonID, from, to)
}

// ListByStylist prestations d'un coiffeur sur [from, to).
func (r *PrestationRepo) ListByStylist(ctx context.Context, salonID, stylistID string, from, to time.Time) ([]entity.Prestation, error) {
	return r.list(ctx,
		`SELECT `+prestationColumns+` FROM prestations
		 WHERE salon_id = $1 AND stylist_id = $2 AND occurred_at >= $3 AND occurred_at < $4
		 ORDER BY occurred_at`,
		salonID, stylistID, from, to)
}

// ListRecent dernières prestations, de la plus récente à la plus ancienne.
func (r *PrestationRepo) ListRecent(ctx context.Context, salonID string, limit int) ([]entity.Prestation, error) {
	return r.list(ctx,
		`SELECT `+prestationColumns+` FROM prestations
		 WHERE salon_id = $1 ORDER BY occurred_at DESC LIMIT $2`,
		salonID, limit)
}

func (r *PrestationRepo) list(ctx context.Context, query string, args ...any) ([]entity.Prestation, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list prestations : %w", err)
	}
	defer rows.Close()
	var list []entity.Prestation
	for rows.Next() {
		p, err := scanPrestation(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func scanPrestation(row pgx.Row) (entity.Prestation, error) {
	var (
		p        entity.Prestation
		clientID *string
		method   string
		card     decimal.NullDecimal
		cash     decimal.NullDecimal
	)
	if err := row.Scan(&p.ID, &p.SalonID, &p.StylistID, &clientID, &p.Amount,
		&method, &card, &cash,
		&p.Timestamp, &p.PointsPercent, &p.PointsAwarded, &p.ServiceName, &p.CreatedAt); err != nil {
		return entity.Prestation{}, fmt.Errorf("scan prestation : %w", err)
	}
	if clientID != nil {
		p.ClientID = *clientID
	}
	p.Payment = paymentFromColumns(method, card, cash)
	return p, nil
}

// nullIfEmpty convertit la chaîne vide en NULL (client de passage).
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
