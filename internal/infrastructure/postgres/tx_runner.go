package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/coiffea/salon-api/internal/application/loyalty"
	"github.com/coiffea/salon-api/internal/application/sales"
	"github.com/coiffea/salon-api/internal/domain/repository"
)

var (
	_ sales.TxRunner   = (*SalesTxRunner)(nil)
	_ loyalty.TxRunner = (*LoyaltyTxRunner)(nil)
)

// SalesTxRunner transaction vente : journal + solde de points du client dans
// le même commit. Les adaptateurs sont reconstruits sur le tx via Querier.
type SalesTxRunner struct {
	pool *pgxpool.Pool
}

func NewSalesTxRunner(pool *pgxpool.Pool) *SalesTxRunner {
	return &SalesTxRunner{pool: pool}
}

func (r *SalesTxRunner) Run(ctx context.Context, fn func(
	prestations repository.PrestationRepository,
	products repository.ProductSaleRepository,
	clients repository.ClientRepository,
) error) error {
	return inTx(ctx, r.pool, func(tx pgx.Tx) error {
		return fn(NewPrestationRepository(tx), NewProductSaleRepository(tx), NewClientRepository(tx))
	})
}

// LoyaltyTxRunner transaction dépense de points : événement + débit du solde.
type LoyaltyTxRunner struct {
	pool *pgxpool.Pool
}

func NewLoyaltyTxRunner(pool *pgxpool.Pool) *LoyaltyTxRunner {
	return &LoyaltyTxRunner{pool: pool}
}

func (r *LoyaltyTxRunner) Run(ctx context.Context, fn func(
	redemptions repository.RedemptionRepository,
	clients repository.ClientRepository,
) error) error {
	return inTx(ctx, r.pool, func(tx pgx.Tx) error {
		return fn(NewRedemptionRepository(tx), NewClientRepository(tx))
	})
}

func inTx(ctx context.Context, pool *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx : %w", err)
	}
	defer tx.Rollback(ctx) // no-op après commit

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx : %w", err)
	}
	return nil
}
