package sales

import (
	"context"

	"github.com/coiffea/salon-api/internal/domain/repository"
)

// TxRunner exécute un callback dans une transaction : l'écriture d'une
// prestation et la mise à jour du solde de points du client doivent être
// atomiques (le journal est append-only, le solde est dérivé du journal).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		prestations repository.PrestationRepository,
		products repository.ProductSaleRepository,
		clients repository.ClientRepository,
	) error) error
}
