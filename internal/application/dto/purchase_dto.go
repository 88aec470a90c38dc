package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePurchaseRequest orden de compra a proveedor.
type CreatePurchaseRequest struct {
	SupplierName string              `json:"supplier_name" validate:"required,max=200"`
	Items        []PurchaseItemInput `json:"items" validate:"required,min=1,dive"`
}

// PurchaseItemInput línea de compra: cantidad recibida y costo unitario pagado.
type PurchaseItemInput struct {
	ProductID string          `json:"product_id" validate:"required"`
	Quantity  int             `json:"quantity" validate:"gt=0"`
	UnitCost  decimal.Decimal `json:"unit_cost" validate:"gte=0"`
}

// PurchaseItemResponse línea de compra.
type PurchaseItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// PurchaseResponse compra con sus líneas.
type PurchaseResponse struct {
	ID           string                 `json:"id"`
	CreatedAt    time.Time              `json:"created_at"`
	SupplierName string                 `json:"supplier_name"`
	TotalAmount  decimal.Decimal        `json:"total_amount"`
	Items        []PurchaseItemResponse `json:"items"`
}
