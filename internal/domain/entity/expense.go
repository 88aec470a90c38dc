package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías de gasto conocidas. La categoría es texto libre; ADMIN separa
// los gastos administrativos de los de venta en el estado de resultados.
const (
	ExpenseServices    = "SERVICIOS"
	ExpenseRent        = "ALQUILER"
	ExpensePayroll     = "PLANILLA"
	ExpenseMaintenance = "MANTENIMIENTO"
	ExpenseAdmin       = "ADMIN"
	ExpenseOther       = "OTROS"
)

// Expense es un gasto operativo.
type Expense struct {
	ID          string
	CreatedAt   time.Time
	Description string
	Category    string
	Amount      decimal.Decimal
}
