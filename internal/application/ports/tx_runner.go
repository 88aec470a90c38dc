package ports

import (
	"context"

	"github.com/jhoicas/tienda-pos/internal/domain/repository"
)

// TxRepos son los repositorios atados a una misma transacción.
type TxRepos struct {
	Products  repository.ProductRepository
	Sales     repository.SaleRepository
	Purchases repository.PurchaseRepository
	Periods   repository.InventoryPeriodRepository
}

// TxRunner ejecuta fn dentro de una transacción. Si fn devuelve error se
// hace rollback y nada de lo escrito con los repos de TxRepos persiste.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos TxRepos) error) error
}
