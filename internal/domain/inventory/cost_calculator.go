package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-pos/internal/domain/entity"
)

// CurrencyPlaces es la precisión de moneda (centavos de lempira).
const CurrencyPlaces = 2

// CostCalculator implementa el costo promedio ponderado (servicio de dominio).
//
//	NuevoStock = StockActual + CantEntrada
//	NuevoCosto = ((StockActual * CostoActual) + (CantEntrada * CostoEntrada)) / NuevoStock
//
// El costo resultante se redondea a 2 decimales. Si no hay stock previo ni
// entrada, o el stock resultante no es positivo, se conserva el costo actual.
func CostCalculator(stockActual int, costoActual decimal.Decimal, cantEntrada int, costoEntrada decimal.Decimal) (int, decimal.Decimal) {
	newStock := stockActual + cantEntrada
	if (stockActual == 0 && cantEntrada == 0) || newStock <= 0 {
		return newStock, costoActual
	}
	current := decimal.NewFromInt(int64(stockActual)).Mul(costoActual)
	incoming := decimal.NewFromInt(int64(cantEntrada)).Mul(costoEntrada)
	newCost := current.Add(incoming).Div(decimal.NewFromInt(int64(newStock)))
	return newStock, newCost.Round(CurrencyPlaces)
}

// ApplyPurchase aplica una línea de compra al producto: suma stock y
// recalcula su costo promedio. Varias líneas del mismo producto se aplican
// en orden y el costo final refleja la ponderación acumulada.
func ApplyPurchase(p *entity.Product, quantity int, unitCost decimal.Decimal) {
	p.Stock, p.CostPrice = CostCalculator(p.Stock, p.CostPrice, quantity, unitCost)
}

// ApplySale descuenta la cantidad vendida. El llamador valida que alcance el stock.
func ApplySale(p *entity.Product, quantity int) {
	p.Stock -= quantity
}
