package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/tienda-pos/internal/domain/entity"
	"github.com/jhoicas/tienda-pos/internal/domain/inventory"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// 10 unidades a 80.00 + 5 a 100.00 → 15 unidades a 86.67.
func TestCostCalculator_EjemploPromedioPonderado(t *testing.T) {
	stock, cost := inventory.CostCalculator(10, dec("80.00"), 5, dec("100.00"))

	assert.Equal(t, 15, stock)
	assert.True(t, dec("86.67").Equal(cost), "costo esperado 86.67, obtenido %s", cost)
}

func TestCostCalculator_CantidadCeroNoCambiaNada(t *testing.T) {
	stock, cost := inventory.CostCalculator(12, dec("45.50"), 0, dec("999.99"))

	assert.Equal(t, 12, stock)
	assert.True(t, dec("45.50").Equal(cost))
}

func TestCostCalculator_SinStockNiEntradaConservaCosto(t *testing.T) {
	stock, cost := inventory.CostCalculator(0, dec("30.00"), 0, dec("10.00"))

	assert.Equal(t, 0, stock)
	assert.True(t, dec("30.00").Equal(cost))
}

func TestCostCalculator_SinStockPrevioTomaCostoEntrada(t *testing.T) {
	stock, cost := inventory.CostCalculator(0, dec("0"), 8, dec("12.345"))

	assert.Equal(t, 8, stock)
	assert.True(t, dec("12.35").Equal(cost), "se redondea a 2 decimales: %s", cost)
}

func TestCostCalculator_Propiedad(t *testing.T) {
	cases := []struct {
		s0       int
		c0       string
		qty      int
		unitCost string
	}{
		{1, "1.00", 2, "2.00"},
		{3, "10.10", 7, "9.90"},
		{100, "0.33", 1, "0.34"},
		{0, "5.00", 3, "7.77"},
		{15, "120.00", 15, "80.00"},
	}
	for _, tc := range cases {
		stock, cost := inventory.CostCalculator(tc.s0, dec(tc.c0), tc.qty, dec(tc.unitCost))

		want := decimal.NewFromInt(int64(tc.s0)).Mul(dec(tc.c0)).
			Add(decimal.NewFromInt(int64(tc.qty)).Mul(dec(tc.unitCost))).
			Div(decimal.NewFromInt(int64(tc.s0 + tc.qty))).Round(2)
		assert.Equal(t, tc.s0+tc.qty, stock)
		assert.True(t, want.Equal(cost), "s0=%d c0=%s qty=%d u=%s: want %s got %s",
			tc.s0, tc.c0, tc.qty, tc.unitCost, want, cost)
	}
}

// Dos líneas del mismo producto se aplican en orden y se acumulan.
func TestApplyPurchase_LineasRepetidasSeAcumulan(t *testing.T) {
	p := &entity.Product{Stock: 10, CostPrice: dec("80.00")}

	inventory.ApplyPurchase(p, 5, dec("100.00"))
	inventory.ApplyPurchase(p, 5, dec("60.00"))

	// (15 * 86.67 + 5 * 60) / 20 = 80.0025 → 80.00
	assert.Equal(t, 20, p.Stock)
	assert.True(t, dec("80.00").Equal(p.CostPrice), "obtenido %s", p.CostPrice)
}

func TestApplySale_DescuentaStock(t *testing.T) {
	p := &entity.Product{Stock: 4, CostPrice: dec("10")}

	inventory.ApplySale(p, 3)

	assert.Equal(t, 1, p.Stock)
	assert.True(t, dec("10").Equal(p.CostPrice), "vender no altera el costo")
}
