package analytics_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-pos/internal/application/analytics"
	"github.com/jhoicas/tienda-pos/internal/application/dto"
	"github.com/jhoicas/tienda-pos/internal/application/inventory"
	"github.com/jhoicas/tienda-pos/internal/application/usecase"
	"github.com/jhoicas/tienda-pos/internal/domain"
	"github.com/jhoicas/tienda-pos/internal/domain/entity"
	"github.com/jhoicas/tienda-pos/internal/domain/finance"
	"github.com/jhoicas/tienda-pos/internal/domain/repository"
	"github.com/jhoicas/tienda-pos/internal/infrastructure/cache"
	"github.com/jhoicas/tienda-pos/internal/infrastructure/memory"
)

type fixture struct {
	store     *memory.Store
	mr        *miniredis.Miniredis
	cache     *cache.RedisCache
	pnl       *analytics.PnLUseCase
	sales     *inventory.SaleUseCase
	purchases *inventory.PurchaseUseCase
	periods   *inventory.PeriodUseCase
	expenses  *usecase.ExpenseUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	rc := cache.NewRedisCache(client, time.Minute)

	store := memory.New()
	log := zerolog.Nop()
	src := analytics.Sources{
		Products:  store.Products(),
		Sales:     store.Sales(),
		Purchases: store.Purchases(),
		Expenses:  store.Expenses(),
		Periods:   store.Periods(),
	}
	return &fixture{
		store:     store,
		mr:        mr,
		cache:     rc,
		pnl:       analytics.NewPnLUseCase(src, rc, log),
		sales:     inventory.NewSaleUseCase(store.TxRunner(), store.Sales(), rc, log),
		purchases: inventory.NewPurchaseUseCase(store.TxRunner(), store.Purchases(), rc, log),
		periods:   inventory.NewPeriodUseCase(store.TxRunner(), store.Periods(), rc, log),
		expenses:  usecase.NewExpenseUseCase(store.Expenses(), rc, log),
	}
}

func (f *fixture) addBeef(t *testing.T) {
	t.Helper()
	require.NoError(t, f.store.Products().Create(context.Background(), &entity.Product{
		ID:        "res",
		Name:      "Tajo de Res",
		SKU:       "CAR-0001",
		Category:  "Carnes",
		CostPrice: decimal.NewFromInt(80),
		SellPrice: decimal.NewFromInt(120),
		Stock:     15,
		MinStock:  5,
	}))
}

// mes típico: inventario inicial 1200, compra 5@100, venta 3@120 y dos gastos.
func (f *fixture) playMonth(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	_, err := f.periods.SetActive(ctx, dto.SetInventoryPeriodRequest{PeriodName: "Octubre 2026", TotalValue: decimal.NewFromInt(1200)})
	require.NoError(t, err)
	_, err = f.purchases.Create(ctx, dto.CreatePurchaseRequest{
		SupplierName: "Carnes del Norte",
		Items:        []dto.PurchaseItemInput{{ProductID: "res", Quantity: 5, UnitCost: decimal.NewFromInt(100)}},
	})
	require.NoError(t, err)
	_, err = f.sales.Checkout(ctx, dto.CheckoutRequest{
		PaymentMethod: entity.PaymentCash,
		Items:         []dto.CheckoutItemInput{{ProductID: "res", Quantity: 3}},
	})
	require.NoError(t, err)
	_, err = f.expenses.Create(ctx, dto.CreateExpenseRequest{Description: "Energía", Amount: decimal.NewFromInt(25)})
	require.NoError(t, err)
	_, err = f.expenses.Create(ctx, dto.CreateExpenseRequest{Description: "Contador", Category: "admin", Amount: decimal.NewFromInt(40)})
	require.NoError(t, err)
}

func money(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestPnL_MesCompleto(t *testing.T) {
	f := newFixture(t)
	f.addBeef(t)
	f.playMonth(t)

	r, err := f.pnl.Report(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Octubre 2026", r.PeriodName)
	assert.True(t, r.Revenue.Equal(money("360")), "ingresos %s", r.Revenue)
	assert.True(t, r.InitialInventory.Equal(money("1200")))
	assert.True(t, r.Purchases.Equal(money("500")))
	assert.True(t, r.EndingInventory.Equal(money("1445")), "17 × 85")
	assert.True(t, r.COGS.Equal(money("255")), "costo de ventas %s", r.COGS)
	assert.True(t, r.GrossProfit.Equal(money("105")))
	assert.True(t, r.SellingExpenses.Equal(money("25")))
	assert.True(t, r.AdminExpenses.Equal(money("40")))
	assert.True(t, r.NetProfit.Equal(money("40")))
	assert.Empty(t, r.Warnings)
}

func TestPnL_SinPeriodoRecortaCostoYAdvierte(t *testing.T) {
	f := newFixture(t)
	f.addBeef(t)

	r, err := f.pnl.Report(context.Background())
	require.NoError(t, err)

	assert.True(t, r.RawCOGS.Equal(money("-1200")))
	assert.True(t, r.COGS.IsZero())
	codes := make([]string, 0, len(r.Warnings))
	for _, w := range r.Warnings {
		codes = append(codes, w.Code)
	}
	assert.ElementsMatch(t, []string{finance.WarningNoActivePeriod, finance.WarningCOGSClamped}, codes)
}

func TestPnL_CacheHastaLaProximaEscritura(t *testing.T) {
	f := newFixture(t)
	f.addBeef(t)
	ctx := context.Background()

	first, err := f.pnl.Report(ctx)
	require.NoError(t, err)
	assert.True(t, f.mr.Exists(analytics.PnLCacheKey(0)))
	assert.True(t, f.mr.TTL(analytics.PnLCacheKey(0)) > 0)

	// Escritura directa al almacén: la caché no se entera.
	require.NoError(t, f.store.Expenses().Create(ctx, &entity.Expense{
		ID: "directo", CreatedAt: time.Now(), Description: "Sin caso de uso", Category: entity.ExpenseOther, Amount: decimal.NewFromInt(999),
	}))
	cached, err := f.pnl.Report(ctx)
	require.NoError(t, err)
	assert.True(t, cached.OperatingExpenses.Equal(first.OperatingExpenses))
	assert.Equal(t, first.GeneratedAt.Unix(), cached.GeneratedAt.Unix())

	// Un gasto por el caso de uso avanza la generación.
	_, err = f.expenses.Create(ctx, dto.CreateExpenseRequest{Description: "Agua", Amount: decimal.NewFromInt(1)})
	require.NoError(t, err)
	gen, err := f.mr.Get(analytics.ReportsGenerationKey)
	require.NoError(t, err)
	assert.Equal(t, "1", gen)
	assert.False(t, f.mr.Exists(analytics.PnLCacheKey(1)))

	fresh, err := f.pnl.Report(ctx)
	require.NoError(t, err)
	assert.True(t, fresh.OperatingExpenses.Equal(money("1000")))
}

func TestPnL_EntradaCorruptaSeRecalcula(t *testing.T) {
	f := newFixture(t)
	f.addBeef(t)
	require.NoError(t, f.mr.Set(analytics.PnLCacheKey(0), "{no es json"))

	r, err := f.pnl.Report(context.Background())
	require.NoError(t, err)
	assert.True(t, r.EndingInventory.Equal(money("1200")))

	raw, err := f.mr.Get(analytics.PnLCacheKey(0))
	require.NoError(t, err)
	var stored dto.PnLReportDTO
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	assert.True(t, stored.EndingInventory.Equal(money("1200")))
}

// blockingExpenses entrega la lista de gastos y espera release antes de
// devolverla, dejando una escritura en medio del cálculo.
type blockingExpenses struct {
	repository.ExpenseRepository
	listed  chan struct{}
	release chan struct{}
}

func (b *blockingExpenses) List(ctx context.Context) ([]*entity.Expense, error) {
	items, err := b.ExpenseRepository.List(ctx)
	close(b.listed)
	<-b.release
	return items, err
}

func TestPnL_EscrituraDuranteElCalculoNoDejaReporteViejo(t *testing.T) {
	f := newFixture(t)
	f.addBeef(t)
	ctx := context.Background()

	slow := &blockingExpenses{
		ExpenseRepository: f.store.Expenses(),
		listed:            make(chan struct{}),
		release:           make(chan struct{}),
	}
	pnl := analytics.NewPnLUseCase(analytics.Sources{
		Products:  f.store.Products(),
		Sales:     f.store.Sales(),
		Purchases: f.store.Purchases(),
		Expenses:  slow,
		Periods:   f.store.Periods(),
	}, f.cache, zerolog.Nop())

	done := make(chan error, 1)
	go func() {
		_, err := pnl.Report(ctx)
		done <- err
	}()

	<-slow.listed
	_, err := f.expenses.Create(ctx, dto.CreateExpenseRequest{Description: "Alquiler", Category: "alquiler", Amount: decimal.NewFromInt(500)})
	require.NoError(t, err)
	close(slow.release)
	require.NoError(t, <-done)

	r, err := f.pnl.Report(ctx)
	require.NoError(t, err)
	assert.True(t, r.OperatingExpenses.Equal(money("500")), "gastos %s", r.OperatingExpenses)
}

func TestPnL_RedisCaidoNoImpideElReporte(t *testing.T) {
	f := newFixture(t)
	f.addBeef(t)
	f.mr.Close()

	r, err := f.pnl.Report(context.Background())
	require.NoError(t, err)
	assert.True(t, r.EndingInventory.Equal(money("1200")))
}

func TestPnL_ContextoCancelado(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.pnl.Load(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, domain.KindPersistence, domain.KindOf(err))
}
