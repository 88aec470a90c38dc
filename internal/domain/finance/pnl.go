// Package finance calcula el estado de resultados (P&G) a partir de las
// ventas, compras, gastos, el inventario actual y el período inicial activo.
package finance

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-pos/internal/domain/entity"
)

// Códigos de advertencia de calidad de datos.
const (
	WarningCOGSClamped    = "COGS_CLAMPED"
	WarningNoActivePeriod = "NO_ACTIVE_PERIOD"
)

const currencyPlaces = 2

// Input reúne los registros que alimentan el estado de resultados.
// ActivePeriod es nil cuando no hay inventario inicial definido.
type Input struct {
	Sales        []*entity.Sale
	Expenses     []*entity.Expense
	Purchases    []*entity.Purchase
	Products     []*entity.Product
	ActivePeriod *entity.InventoryPeriod
}

// Statement es el estado de resultados calculado.
//
//	CostoVentas   = max(0, InvInicial + Compras - InvFinal)
//	UtilidadBruta = Ingresos - CostoVentas
//	UtilidadNeta  = UtilidadBruta - GastosOperativos
type Statement struct {
	PeriodName        string
	Revenue           decimal.Decimal
	InitialInventory  decimal.Decimal
	Purchases         decimal.Decimal
	EndingInventory   decimal.Decimal
	RawCOGS           decimal.Decimal // sin recorte; negativo delata datos faltantes
	COGS              decimal.Decimal
	GrossProfit       decimal.Decimal
	SellingExpenses   decimal.Decimal
	AdminExpenses     decimal.Decimal
	OperatingExpenses decimal.Decimal
	NetProfit         decimal.Decimal
	Warnings          []Warning
}

// Warning describe un problema de datos que no impide calcular el reporte.
type Warning struct {
	Code    string
	Message string
}

// Calculate deriva el estado de resultados. La aritmética es decimal y cada
// total se redondea a 2 decimales al final, no en cada suma.
func Calculate(in Input) Statement {
	revenue := decimal.Zero
	for _, s := range in.Sales {
		revenue = revenue.Add(s.TotalAmount)
	}

	purchases := decimal.Zero
	for _, p := range in.Purchases {
		purchases = purchases.Add(p.TotalAmount)
	}

	ending := decimal.Zero
	for _, p := range in.Products {
		ending = ending.Add(p.StockValue())
	}

	var warnings []Warning
	initial := decimal.Zero
	periodName := "Periodo no definido"
	if in.ActivePeriod != nil {
		initial = in.ActivePeriod.TotalValue
		periodName = in.ActivePeriod.PeriodName
	} else {
		warnings = append(warnings, Warning{
			Code:    WarningNoActivePeriod,
			Message: "no hay inventario inicial activo; el costo de ventas se calcula con inventario inicial 0",
		})
	}

	rawCOGS := initial.Add(purchases).Sub(ending)
	cogs := rawCOGS
	if rawCOGS.IsNegative() {
		cogs = decimal.Zero
		warnings = append(warnings, Warning{
			Code: WarningCOGSClamped,
			Message: "el inventario final supera al inicial más las compras; " +
				"el costo de ventas se reporta en 0. Revise el inventario inicial del período",
		})
	}

	selling, admin := decimal.Zero, decimal.Zero
	for _, e := range in.Expenses {
		if e.Category == entity.ExpenseAdmin {
			admin = admin.Add(e.Amount)
		} else {
			selling = selling.Add(e.Amount)
		}
	}
	opex := selling.Add(admin)

	gross := revenue.Sub(cogs)
	net := gross.Sub(opex)

	return Statement{
		PeriodName:        periodName,
		Revenue:           revenue.Round(currencyPlaces),
		InitialInventory:  initial.Round(currencyPlaces),
		Purchases:         purchases.Round(currencyPlaces),
		EndingInventory:   ending.Round(currencyPlaces),
		RawCOGS:           rawCOGS.Round(currencyPlaces),
		COGS:              cogs.Round(currencyPlaces),
		GrossProfit:       gross.Round(currencyPlaces),
		SellingExpenses:   selling.Round(currencyPlaces),
		AdminExpenses:     admin.Round(currencyPlaces),
		OperatingExpenses: opex.Round(currencyPlaces),
		NetProfit:         net.Round(currencyPlaces),
		Warnings:          warnings,
	}
}

// HasWarning indica si el estado trae la advertencia code.
func (s Statement) HasWarning(code string) bool {
	for _, w := range s.Warnings {
		if w.Code == code {
			return true
		}
	}
	return false
}
