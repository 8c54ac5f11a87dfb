package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/coiffea/salon-api/internal/domain/entity"
	"github.com/coiffea/salon-api/internal/domain/repository"
)

var _ repository.RedemptionRepository = (*RedemptionRepo)(nil)

// RedemptionRepo grand livre append-only des dépenses de points.
type RedemptionRepo struct {
	q Querier
}

func NewRedemptionRepository(q Querier) *RedemptionRepo {
	return &RedemptionRepo{q: q}
}

const redemptionColumns = `id, salon_id, stylist_id, client_id, points, occurred_at, reason, created_at`

func (r *RedemptionRepo) Create(red *entity.PointsRedemption) error {
	query := `
		INSERT INTO points_redemptions (` + redemptionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		red.ID, red.SalonID, red.StylistID, red.ClientID,
		red.Points, red.Timestamp, red.Reason, red.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert dépense de points : %w", err)
	}
	return nil
}

func (r *RedemptionRepo) ListBySalon(ctx context.Context, salonID string, from, to time.Time) ([]entity.PointsRedemption, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+redemptionColumns+` FROM points_redemptions
		 WHERE salon_id = $1 AND occurred_at >= $2 AND occurred_at < $3
		 ORDER BY occurred_at`,
		salonID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list dépenses de points : %w", err)
	}
	defer rows.Close()
	var list []entity.PointsRedemption
	for rows.Next() {
		var red entity.PointsRedemption
		if err := rows.Scan(&red.ID, &red.SalonID, &red.StylistID, &red.ClientID,
			&red.Points, &red.Timestamp, &red.Reason, &red.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan dépense de points : %w", err)
		}
		list = append(list, red)
	}
	return list, rows.Err()
}
