package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago aceptados en caja.
const (
	PaymentCash     = "EFECTIVO"
	PaymentCard     = "TARJETA"
	PaymentTransfer = "TRANSFERENCIA"
)

// ValidPaymentMethod indica si m es uno de los métodos de pago aceptados.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentTransfer:
		return true
	}
	return false
}

// Sale es una venta registrada en caja. Inmutable una vez creada.
type Sale struct {
	ID            string
	CreatedAt     time.Time
	TotalAmount   decimal.Decimal
	PaymentMethod string
	Items         []SaleItem
}

// SaleItem es una línea de venta. UnitCost es la foto del costo promedio
// del producto al momento de vender.
type SaleItem struct {
	SaleID      string
	ProductID   string
	ProductName string // se completa al leer el historial
	Quantity    int
	UnitPrice   decimal.Decimal
	UnitCost    decimal.Decimal
}

// Subtotal devuelve Quantity × UnitPrice.
func (i SaleItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
