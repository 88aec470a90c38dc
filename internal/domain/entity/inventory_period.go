package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryPeriod es el inventario inicial contable de un período.
// Como máximo un registro tiene IsActive=true; es la base del costo de ventas.
type InventoryPeriod struct {
	ID         string
	CreatedAt  time.Time
	PeriodName string
	TotalValue decimal.Decimal
	IsActive   bool
}
