package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un artículo del catálogo de la tienda.
// CostPrice es el costo promedio ponderado; lo recalcula cada compra.
// Stock baja con cada venta y nunca queda negativo.
type Product struct {
	ID          string
	Name        string
	SKU         string // único, con prefijo de categoría (CAR-0001)
	Description string
	Category    string
	CostPrice   decimal.Decimal
	SellPrice   decimal.Decimal
	Stock       int
	MinStock    int // punto de reorden
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// StockValue devuelve Stock × CostPrice (valoración del inventario final).
func (p *Product) StockValue() decimal.Decimal {
	return p.CostPrice.Mul(decimal.NewFromInt(int64(p.Stock)))
}

// BelowMinStock indica si el producto llegó a su punto de reorden.
func (p *Product) BelowMinStock() bool {
	return p.Stock <= p.MinStock
}
