package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase es una compra a proveedor. Al registrarse sube el stock y
// recalcula el costo promedio de cada producto referenciado.
type Purchase struct {
	ID           string
	CreatedAt    time.Time
	SupplierName string
	TotalAmount  decimal.Decimal
	Items        []PurchaseItem
}

// PurchaseItem es una línea de compra.
type PurchaseItem struct {
	PurchaseID  string
	ProductID   string
	ProductName string // se completa al leer el historial
	Quantity    int
	UnitCost    decimal.Decimal
}

// Subtotal devuelve Quantity × UnitCost.
func (i PurchaseItem) Subtotal() decimal.Decimal {
	return i.UnitCost.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
