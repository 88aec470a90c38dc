package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// Si SKU viene vacío se genera según la categoría.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	SKU         string          `json:"sku" validate:"omitempty,max=50"`
	Description string          `json:"description" validate:"max=500"`
	Category    string          `json:"category" validate:"required,max=100"`
	CostPrice   decimal.Decimal `json:"cost_price" validate:"gte=0"`
	SellPrice   decimal.Decimal `json:"sell_price" validate:"gte=0"`
	Stock       int             `json:"stock" validate:"gte=0"`
	MinStock    int             `json:"min_stock" validate:"gte=0"`
}

// UpdateProductRequest entrada para editar un producto. Campos nil no cambian.
// Stock y costo editables aquí son ajustes manuales del administrador.
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	SKU         *string          `json:"sku" validate:"omitempty,min=1,max=50"`
	Description *string          `json:"description" validate:"omitempty,max=500"`
	Category    *string          `json:"category" validate:"omitempty,min=1,max=100"`
	CostPrice   *decimal.Decimal `json:"cost_price" validate:"omitempty,gte=0"`
	SellPrice   *decimal.Decimal `json:"sell_price" validate:"omitempty,gte=0"`
	Stock       *int             `json:"stock" validate:"omitempty,gte=0"`
	MinStock    *int             `json:"min_stock" validate:"omitempty,gte=0"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	SKU         string          `json:"sku"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	CostPrice   decimal.Decimal `json:"cost_price"`
	SellPrice   decimal.Decimal `json:"sell_price"`
	Stock       int             `json:"stock"`
	MinStock    int             `json:"min_stock"`
	LowStock    bool            `json:"low_stock"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListRequest filtros del catálogo (query string).
type ProductListRequest struct {
	Query    string `query:"q"`
	Category string `query:"category"`
}

// NextSKUResponse vista previa del SKU que recibiría un producto nuevo.
type NextSKUResponse struct {
	Category string `json:"category"`
	Prefix   string `json:"prefix"`
	SKU      string `json:"sku"`
	Policy   string `json:"policy"`
}

// CategoryResponse categoría oficial con su prefijo de SKU.
type CategoryResponse struct {
	Name   string `json:"name"`
	Prefix string `json:"prefix"`
}

// LowStockItemResponse producto en o bajo su punto de reorden con la
// cantidad sugerida para volver a 1.5 × MinStock.
type LowStockItemResponse struct {
	Product       ProductResponse `json:"product"`
	Deficit       int             `json:"deficit"` // MinStock - Stock (0 si está justo en el punto)
	SuggestedQty  int             `json:"suggested_qty"`
	EstimatedCost decimal.Decimal `json:"estimated_cost"` // SuggestedQty × costo promedio
}
