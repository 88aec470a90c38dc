package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-pos/internal/application/ports"
	"github.com/jhoicas/tienda-pos/internal/domain"
	"github.com/jhoicas/tienda-pos/internal/domain/entity"
	"github.com/jhoicas/tienda-pos/internal/domain/repository"
	"github.com/jhoicas/tienda-pos/internal/infrastructure/memory"
)

func seedProduct(t *testing.T, s *memory.Store, id, sku string, stock int) {
	t.Helper()
	require.NoError(t, s.Products().Create(context.Background(), &entity.Product{
		ID: id, Name: "Producto " + id, SKU: sku, Category: "Abarrotes",
		CostPrice: decimal.NewFromInt(10), SellPrice: decimal.NewFromInt(15),
		Stock: stock, MinStock: 2,
	}))
}

func TestTxRunner_RevierteAnteError(t *testing.T) {
	s := memory.New()
	seedProduct(t, s, "p1", "ABA-0001", 10)
	ctx := context.Background()
	boom := errors.New("boom")

	err := s.TxRunner().Run(ctx, func(repos ports.TxRepos) error {
		p, err := repos.Products.GetByIDForUpdate(ctx, "p1")
		require.NoError(t, err)
		p.Stock = 0
		require.NoError(t, repos.Products.UpdateStockAndCost(ctx, p))
		require.NoError(t, repos.Sales.Create(ctx, &entity.Sale{ID: "s1", CreatedAt: time.Now(), PaymentMethod: entity.PaymentCash}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	p, err := s.Products().GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 10, p.Stock)
	sale, err := s.Sales().GetByID(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, sale)
}

func TestTxRunner_RevierteAntePanicoYLiberaElCandado(t *testing.T) {
	s := memory.New()
	seedProduct(t, s, "p1", "ABA-0001", 10)
	ctx := context.Background()

	assert.Panics(t, func() {
		_ = s.TxRunner().Run(ctx, func(repos ports.TxRepos) error {
			p, _ := repos.Products.GetByIDForUpdate(ctx, "p1")
			p.Stock = 1
			_ = repos.Products.UpdateStockAndCost(ctx, p)
			panic("falla inesperada")
		})
	})

	p, err := s.Products().GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 10, p.Stock)
}

func TestTxRunner_ConfirmaSinError(t *testing.T) {
	s := memory.New()
	seedProduct(t, s, "p1", "ABA-0001", 10)
	ctx := context.Background()

	err := s.TxRunner().Run(ctx, func(repos ports.TxRepos) error {
		p, err := repos.Products.GetByIDForUpdate(ctx, "p1")
		if err != nil {
			return err
		}
		p.Stock = 7
		return repos.Products.UpdateStockAndCost(ctx, p)
	})
	require.NoError(t, err)

	p, err := s.Products().GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 7, p.Stock)
}

func TestProducts_SKUUnicoSinImportarMayusculas(t *testing.T) {
	s := memory.New()
	seedProduct(t, s, "p1", "ABA-0001", 10)

	err := s.Products().Create(context.Background(), &entity.Product{ID: "p2", Name: "Otro", SKU: "aba-0001", Category: "Abarrotes"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDuplicate))

	seedProduct(t, s, "p3", "ABA-0002", 1)
	p3, err := s.Products().GetByID(context.Background(), "p3")
	require.NoError(t, err)
	p3.SKU = "ABA-0001"
	err = s.Products().Update(context.Background(), p3)
	assert.True(t, errors.Is(err, domain.ErrDuplicate))
}

func TestProducts_CopiasIndependientes(t *testing.T) {
	s := memory.New()
	seedProduct(t, s, "p1", "ABA-0001", 10)
	ctx := context.Background()

	p, err := s.Products().GetByID(ctx, "p1")
	require.NoError(t, err)
	p.Stock = 99

	again, err := s.Products().GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 10, again.Stock)
}

func TestProducts_FiltrosYPrefijos(t *testing.T) {
	s := memory.New()
	seedProduct(t, s, "p1", "ABA-0001", 10)
	seedProduct(t, s, "p2", "ABA-0002", 1)
	ctx := context.Background()

	skus, err := s.Products().ListSKUsByPrefix(ctx, "ABA")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"ABA-0001", "ABA-0002"}, skus)

	low, err := s.Products().ListBelowMinStock(ctx)
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, "p2", low[0].ID)

	found, err := s.Products().List(ctx, repository.ProductFilter{Query: "aba-0002"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "p2", found[0].ID)
}

func TestPeriods_RechazaSegundoActivo(t *testing.T) {
	s := memory.New()
	ctx := context.Background()
	require.NoError(t, s.Periods().Create(ctx, &entity.InventoryPeriod{ID: "a", PeriodName: "Enero", IsActive: true, CreatedAt: time.Now()}))

	err := s.Periods().Create(ctx, &entity.InventoryPeriod{ID: "b", PeriodName: "Febrero", IsActive: true, CreatedAt: time.Now()})
	assert.True(t, errors.Is(err, domain.ErrConflict))

	n, err := s.Periods().DeactivateAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	require.NoError(t, s.Periods().Create(ctx, &entity.InventoryPeriod{ID: "b", PeriodName: "Febrero", IsActive: true, CreatedAt: time.Now()}))

	active, err := s.Periods().GetActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Febrero", active.PeriodName)
}

func TestUsers_EmailUnico(t *testing.T) {
	s := memory.New()
	ctx := context.Background()
	require.NoError(t, s.Users().Create(ctx, &entity.User{ID: "u1", Email: "caja@tienda.local"}))

	err := s.Users().Create(ctx, &entity.User{ID: "u2", Email: "CAJA@tienda.local"})
	assert.True(t, errors.Is(err, domain.ErrEmailAlreadyExists))
}
