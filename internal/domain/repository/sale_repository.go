package repository

import (
	"context"

	"github.com/jhoicas/tienda-pos/internal/domain/entity"
)

// SaleRepository persiste ventas con sus líneas.
type SaleRepository interface {
	// Create inserta cabecera y líneas.
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	// ListWithItems devuelve el historial (más reciente primero) con líneas y nombre de producto.
	ListWithItems(ctx context.Context) ([]*entity.Sale, error)
}
