package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/coiffea/salon-api/internal/domain/entity"
	"github.com/coiffea/salon-api/internal/domain/repository"
)

var _ repository.ProductSaleRepository = (*ProductSaleRepo)(nil)

// ProductSaleRepo journal append-only des ventes de produits.
type ProductSaleRepo struct {
	q Querier
}

func NewProductSaleRepository(q Querier) *ProductSaleRepo {
	return &ProductSaleRepo{q: q}
}

const productSaleColumns = `id, salon_id, stylist_id, client_id, product_name, amount,
	payment_method, payment_card_amount, payment_cash_amount, occurred_at, created_at`

func (r *ProductSaleRepo) Create(p *entity.ProductSale) error {
	method, card, cash := paymentColumns(p.Payment)
	query := `
		INSERT INTO product_sales (` + productSaleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.SalonID, p.StylistID, nullIfEmpty(p.ClientID), p.ProductName, p.Amount,
		method, card, cash, p.Timestamp, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert vente produit : %w", err)
	}
	return nil
}

func (r *ProductSaleRepo) ListBySalon(ctx context.Context, salonID string, from, to time.Time) ([]entity.ProductSale, error) {
	return r.list(ctx,
		`SELECT `+productSaleColumns+` FROM product_sales
		 WHERE salon_id = $1 AND occurred_at >= $2 AND occurred_at < $3
		 ORDER BY occurred_at`,
		salonID, from, to)
}

func (r *ProductSaleRepo) ListByStylist(ctx context.Context, salonID, stylistID string, from, to time.Time) ([]entity.ProductSale, error) {
	return r.list(ctx,
		`SELECT `+productSaleColumns+` FROM product_sales
		 WHERE salon_id = $1 AND stylist_id = $2 AND occurred_at >= $3 AND occurred_at < $4
		 ORDER BY occurred_at`,
		salonID, stylistID, from, to)
}

func (r *ProductSaleRepo) list(ctx context.Context, query string, args ...any) ([]entity.ProductSale, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ventes produits : %w", err)
	}
	defer rows.Close()
	var list []entity.ProductSale
	for rows.Next() {
		var (
			p        entity.ProductSale
			clientID *string
			method   string
			card     decimal.NullDecimal
			cash     decimal.NullDecimal
		)
		if err := rows.Scan(&p.ID, &p.SalonID, &p.StylistID, &clientID, &p.ProductName, &p.Amount,
			&method, &card, &cash, &p.Timestamp, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan vente produit : %w", err)
		}
		if clientID != nil {
			p.ClientID = *clientID
		}
		p.Payment = paymentFromColumns(method, card, cash)
		list = append(list, p)
	}
	return list, rows.Err()
}
