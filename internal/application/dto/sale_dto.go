package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CheckoutRequest carrito a cobrar. Precio y costo se toman del catálogo
// al momento del cobro.
type CheckoutRequest struct {
	PaymentMethod string              `json:"payment_method" validate:"required,oneof=EFECTIVO TARJETA TRANSFERENCIA"`
	Items         []CheckoutItemInput `json:"items" validate:"required,min=1,dive"`
}

// CheckoutItemInput línea del carrito.
type CheckoutItemInput struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gt=0"`
}

// SaleItemResponse línea de venta.
type SaleItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// SaleResponse venta con sus líneas.
type SaleResponse struct {
	ID            string             `json:"id"`
	CreatedAt     time.Time          `json:"created_at"`
	TotalAmount   decimal.Decimal    `json:"total_amount"`
	PaymentMethod string             `json:"payment_method"`
	Items         []SaleItemResponse `json:"items"`
}
