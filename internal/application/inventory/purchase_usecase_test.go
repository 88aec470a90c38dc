package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-pos/internal/application/dto"
	"github.com/jhoicas/tienda-pos/internal/application/inventory"
	"github.com/jhoicas/tienda-pos/internal/domain"
	"github.com/jhoicas/tienda-pos/internal/infrastructure/cache"
	"github.com/jhoicas/tienda-pos/internal/infrastructure/memory"
)

func newPurchases(store *memory.Store) *inventory.PurchaseUseCase {
	return inventory.NewPurchaseUseCase(store.TxRunner(), store.Purchases(), cache.Noop{}, zerolog.Nop())
}

func TestPurchase_RecalculaCostoPromedio(t *testing.T) {
	store := memory.New()
	addProduct(t, store, "p1", "Tajo de Res", 15, 80, 120)
	uc := newPurchases(store)

	out, err := uc.Create(context.Background(), dto.CreatePurchaseRequest{
		SupplierName: "  Distribuidora Central ",
		Items:        []dto.PurchaseItemInput{{ProductID: "p1", Quantity: 5, UnitCost: decimal.NewFromInt(100)}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Distribuidora Central", out.SupplierName)
	assert.True(t, out.TotalAmount.Equal(decimal.NewFromInt(500)))

	p, err := store.Products().GetByID(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, 20, p.Stock)
	assert.Equal(t, "85.00", p.CostPrice.StringFixed(2))
}

func TestPurchase_LineasRepetidasComponenElPromedio(t *testing.T) {
	store := memory.New()
	addProduct(t, store, "p1", "Leche", 0, 0, 32)
	uc := newPurchases(store)

	_, err := uc.Create(context.Background(), dto.CreatePurchaseRequest{
		SupplierName: "Lácteos del Valle",
		Items: []dto.PurchaseItemInput{
			{ProductID: "p1", Quantity: 10, UnitCost: decimal.NewFromInt(20)},
			{ProductID: "p1", Quantity: 10, UnitCost: decimal.NewFromInt(30)},
		},
	})
	require.NoError(t, err)

	p, err := store.Products().GetByID(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, 20, p.Stock)
	assert.Equal(t, "25.00", p.CostPrice.StringFixed(2))
}

func TestPurchase_CostoConFraccionDeCentavoSeRedondeaAntesDelPromedio(t *testing.T) {
	store := memory.New()
	addProduct(t, store, "p1", "Chicle", 1, 10, 15)
	uc := newPurchases(store)

	out, err := uc.Create(context.Background(), dto.CreatePurchaseRequest{
		SupplierName: "Dulcería La Ceiba",
		Items:        []dto.PurchaseItemInput{{ProductID: "p1", Quantity: 1, UnitCost: decimal.RequireFromString("0.005")}},
	})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "0.01", out.Items[0].UnitCost.StringFixed(2))

	// (1 × 10.00 + 1 × 0.01) / 2 = 5.005
	p, err := store.Products().GetByID(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "5.01", p.CostPrice.StringFixed(2))
}

func TestPurchase_ProductoInexistenteNoEscribeNada(t *testing.T) {
	store := memory.New()
	addProduct(t, store, "p1", "Leche", 10, 25, 32)
	uc := newPurchases(store)

	_, err := uc.Create(context.Background(), dto.CreatePurchaseRequest{
		SupplierName: "Proveedor",
		Items: []dto.PurchaseItemInput{
			{ProductID: "p1", Quantity: 10, UnitCost: decimal.NewFromInt(50)},
			{ProductID: "fantasma", Quantity: 1, UnitCost: decimal.NewFromInt(5)},
		},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	p, err := store.Products().GetByID(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, 10, p.Stock)
	assert.True(t, p.CostPrice.Equal(decimal.NewFromInt(25)))

	list, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list.Items)
}

func TestPurchase_Validaciones(t *testing.T) {
	uc := newPurchases(memory.New())

	cases := map[string]dto.CreatePurchaseRequest{
		"sin proveedor": {SupplierName: " ", Items: []dto.PurchaseItemInput{{ProductID: "p1", Quantity: 1}}},
		"sin líneas":    {SupplierName: "X"},
		"costo negativo": {SupplierName: "X", Items: []dto.PurchaseItemInput{
			{ProductID: "p1", Quantity: 1, UnitCost: decimal.NewFromInt(-1)},
		}},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := uc.Create(context.Background(), in)
			assert.Equal(t, domain.KindValidation, domain.KindOf(err))
		})
	}
}
