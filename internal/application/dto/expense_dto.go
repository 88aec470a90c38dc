package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateExpenseRequest registro de un gasto. Category vacía equivale a SERVICIOS.
type CreateExpenseRequest struct {
	Description string          `json:"description" validate:"required,max=300"`
	Category    string          `json:"category" validate:"omitempty,max=50"`
	Amount      decimal.Decimal `json:"amount" validate:"gt=0"`
}

// ExpenseResponse salida de un gasto.
type ExpenseResponse struct {
	ID          string          `json:"id"`
	CreatedAt   time.Time       `json:"created_at"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
}
