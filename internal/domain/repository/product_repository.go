package repository

import (
	"context"

	"github.com/jhoicas/tienda-pos/internal/domain/entity"
)

// ProductFilter filtra el listado del catálogo. Campos vacíos no filtran.
type ProductFilter struct {
	Query    string // nombre, SKU o categoría (sin distinguir tildes)
	Category string
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID y GetBySKU devuelven (nil, nil) si no existe.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// GetByIDForUpdate bloquea la fila hasta el fin de la transacción.
	GetByIDForUpdate(ctx context.Context, id string) (*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	// UpdateStockAndCost persiste solo stock y costo (motor de costeo y ventas).
	UpdateStockAndCost(ctx context.Context, product *entity.Product) error
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
	ListBelowMinStock(ctx context.Context) ([]*entity.Product, error)
	// ListSKUsByPrefix devuelve los SKU que empiezan con prefix + "-".
	ListSKUsByPrefix(ctx context.Context, prefix string) ([]string, error)
	Count(ctx context.Context) (int, error)
}
