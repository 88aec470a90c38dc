package inventory_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-pos/internal/application/dto"
	"github.com/jhoicas/tienda-pos/internal/application/inventory"
	"github.com/jhoicas/tienda-pos/internal/domain"
	"github.com/jhoicas/tienda-pos/internal/domain/entity"
	"github.com/jhoicas/tienda-pos/internal/infrastructure/cache"
	"github.com/jhoicas/tienda-pos/internal/infrastructure/memory"
)

func addProduct(t *testing.T, store *memory.Store, id, name string, stock int, cost, sell int64) {
	t.Helper()
	err := store.Products().Create(context.Background(), &entity.Product{
		ID:        id,
		Name:      name,
		SKU:       "TST-" + id,
		Category:  "Abarrotes",
		CostPrice: decimal.NewFromInt(cost),
		SellPrice: decimal.NewFromInt(sell),
		Stock:     stock,
		MinStock:  1,
	})
	require.NoError(t, err)
}

func stockOf(t *testing.T, store *memory.Store, id string) int {
	t.Helper()
	p, err := store.Products().GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.Stock
}

func newSales(store *memory.Store) *inventory.SaleUseCase {
	return inventory.NewSaleUseCase(store.TxRunner(), store.Sales(), cache.Noop{}, zerolog.Nop())
}

func TestCheckout_DescuentaStockYCongelaPrecioYCosto(t *testing.T) {
	store := memory.New()
	addProduct(t, store, "p1", "Arroz 5lb", 10, 40, 55)
	addProduct(t, store, "p2", "Frijol 2lb", 4, 30, 42)
	uc := newSales(store)

	sale, err := uc.Checkout(context.Background(), dto.CheckoutRequest{
		PaymentMethod: entity.PaymentCash,
		Items: []dto.CheckoutItemInput{
			{ProductID: "p1", Quantity: 3},
			{ProductID: "p2", Quantity: 1},
		},
	})
	require.NoError(t, err)

	assert.True(t, sale.TotalAmount.Equal(decimal.NewFromInt(3*55+42)))
	require.Len(t, sale.Items, 2)
	assert.True(t, sale.Items[0].UnitPrice.Equal(decimal.NewFromInt(55)))
	assert.True(t, sale.Items[0].UnitCost.Equal(decimal.NewFromInt(40)))
	assert.Equal(t, 7, stockOf(t, store, "p1"))
	assert.Equal(t, 3, stockOf(t, store, "p2"))

	got, err := uc.GetByID(context.Background(), sale.ID)
	require.NoError(t, err)
	assert.Equal(t, sale.ID, got.ID)
}

func TestCheckout_StockInsuficienteNoGuardaNada(t *testing.T) {
	store := memory.New()
	addProduct(t, store, "p1", "Arroz 5lb", 10, 40, 55)
	addProduct(t, store, "p2", "Frijol 2lb", 2, 30, 42)
	uc := newSales(store)

	_, err := uc.Checkout(context.Background(), dto.CheckoutRequest{
		PaymentMethod: entity.PaymentCard,
		Items: []dto.CheckoutItemInput{
			{ProductID: "p1", Quantity: 5},
			{ProductID: "p2", Quantity: 3},
		},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))

	assert.Equal(t, 10, stockOf(t, store, "p1"), "la primera línea no debe quedar descontada")
	assert.Equal(t, 2, stockOf(t, store, "p2"))
	list, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list.Items)
}

func TestCheckout_LineasRepetidasSeAcumulan(t *testing.T) {
	store := memory.New()
	addProduct(t, store, "p1", "Leche", 5, 25, 32)
	uc := newSales(store)

	_, err := uc.Checkout(context.Background(), dto.CheckoutRequest{
		PaymentMethod: entity.PaymentCash,
		Items: []dto.CheckoutItemInput{
			{ProductID: "p1", Quantity: 3},
			{ProductID: "p1", Quantity: 3},
		},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))
	assert.Equal(t, 5, stockOf(t, store, "p1"))
}

func TestCheckout_Validaciones(t *testing.T) {
	store := memory.New()
	addProduct(t, store, "p1", "Leche", 5, 25, 32)
	uc := newSales(store)

	cases := map[string]dto.CheckoutRequest{
		"método inválido": {PaymentMethod: "CHEQUE", Items: []dto.CheckoutItemInput{{ProductID: "p1", Quantity: 1}}},
		"carrito vacío":   {PaymentMethod: entity.PaymentCash},
		"cantidad cero":   {PaymentMethod: entity.PaymentCash, Items: []dto.CheckoutItemInput{{ProductID: "p1"}}},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := uc.Checkout(context.Background(), in)
			require.Error(t, err)
			assert.Equal(t, domain.KindValidation, domain.KindOf(err))
		})
	}

	_, err := uc.Checkout(context.Background(), dto.CheckoutRequest{
		PaymentMethod: entity.PaymentTransfer,
		Items:         []dto.CheckoutItemInput{{ProductID: "no-existe", Quantity: 1}},
	})
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestCheckout_ConcurrenteNoSobrevende(t *testing.T) {
	store := memory.New()
	addProduct(t, store, "p1", "Tajo de Res", 15, 80, 120)
	uc := newSales(store)

	const buyers = 40
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		sold     int
		rejected int
	)
	for range buyers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Checkout(context.Background(), dto.CheckoutRequest{
				PaymentMethod: entity.PaymentCash,
				Items:         []dto.CheckoutItemInput{{ProductID: "p1", Quantity: 1}},
			})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				sold++
				return
			}
			if errors.Is(err, domain.ErrInsufficientStock) {
				rejected++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 15, sold)
	assert.Equal(t, buyers-15, rejected)
	assert.Equal(t, 0, stockOf(t, store, "p1"))
}

func TestCheckout_ContextoCanceladoNoEscribe(t *testing.T) {
	store := memory.New()
	addProduct(t, store, "p1", "Leche", 5, 25, 32)
	uc := newSales(store)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := uc.Checkout(ctx, dto.CheckoutRequest{
		PaymentMethod: entity.PaymentCash,
		Items:         []dto.CheckoutItemInput{{ProductID: "p1", Quantity: 1}},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 5, stockOf(t, store, "p1"))
}
