package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PnLWarningDTO advertencia de calidad de datos del estado de resultados.
type PnLWarningDTO struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PnLReportDTO respuesta de GET /api/reports/pnl.
type PnLReportDTO struct {
	PeriodName        string          `json:"period_name"`
	Revenue           decimal.Decimal `json:"revenue"`            // ingresos por ventas
	InitialInventory  decimal.Decimal `json:"initial_inventory"`  // inventario inicial del período activo
	Purchases         decimal.Decimal `json:"purchases"`          // compras netas
	EndingInventory   decimal.Decimal `json:"ending_inventory"`   // stock actual × costo promedio
	RawCOGS           decimal.Decimal `json:"raw_cogs"`           // antes del recorte a 0
	COGS              decimal.Decimal `json:"cogs"`               // costo de ventas
	GrossProfit       decimal.Decimal `json:"gross_profit"`       // utilidad bruta
	SellingExpenses   decimal.Decimal `json:"selling_expenses"`   // gastos de venta
	AdminExpenses     decimal.Decimal `json:"admin_expenses"`     // gastos administrativos
	OperatingExpenses decimal.Decimal `json:"operating_expenses"` // total gastos operativos
	NetProfit         decimal.Decimal `json:"net_profit"`         // utilidad neta
	Warnings          []PnLWarningDTO `json:"warnings"`
	GeneratedAt       time.Time       `json:"generated_at"`
}

// InsightResponse análisis financiero generado por IA.
type InsightResponse struct {
	Insight     string       `json:"insight"`
	Report      PnLReportDTO `json:"report"`
	GeneratedAt time.Time    `json:"generated_at"`
}

// ExportRequest formato de exportación de listados.
type ExportRequest struct {
	Format string `query:"format" validate:"omitempty,oneof=pdf xlsx"`
}
