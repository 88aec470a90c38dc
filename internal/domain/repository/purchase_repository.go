package repository

import (
	"context"

	"github.com/jhoicas/tienda-pos/internal/domain/entity"
)

// PurchaseRepository persiste compras a proveedores con sus líneas.
type PurchaseRepository interface {
	Create(ctx context.Context, purchase *entity.Purchase) error
	ListWithItems(ctx context.Context) ([]*entity.Purchase, error)
}
