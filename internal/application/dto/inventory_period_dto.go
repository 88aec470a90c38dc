package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SetInventoryPeriodRequest abre un período con su inventario inicial.
type SetInventoryPeriodRequest struct {
	PeriodName string          `json:"period_name" validate:"required,max=100"`
	TotalValue decimal.Decimal `json:"total_value" validate:"gte=0"`
}

// InventoryPeriodResponse salida de un período.
type InventoryPeriodResponse struct {
	ID         string          `json:"id"`
	CreatedAt  time.Time       `json:"created_at"`
	PeriodName string          `json:"period_name"`
	TotalValue decimal.Decimal `json:"total_value"`
	IsActive   bool            `json:"is_active"`
}

// SetInventoryPeriodResponse período activado y cuántos se desactivaron.
type SetInventoryPeriodResponse struct {
	Period      InventoryPeriodResponse `json:"period"`
	Deactivated int                     `json:"deactivated"`
}
