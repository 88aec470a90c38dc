package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-pos/internal/application/dto"
	"github.com/jhoicas/tienda-pos/internal/application/usecase"
	"github.com/jhoicas/tienda-pos/internal/domain"
	"github.com/jhoicas/tienda-pos/internal/domain/inventory"
	"github.com/jhoicas/tienda-pos/internal/infrastructure/cache"
	"github.com/jhoicas/tienda-pos/internal/infrastructure/memory"
)

func newProducts(store *memory.Store, gen *inventory.SKUGenerator) *usecase.ProductUseCase {
	return usecase.NewProductUseCase(store.Products(), gen, cache.Noop{}, zerolog.Nop())
}

func product(name, category, sku string) dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:      name,
		SKU:       sku,
		Category:  category,
		CostPrice: decimal.NewFromInt(10),
		SellPrice: decimal.NewFromInt(15),
		Stock:     5,
		MinStock:  2,
	}
}

func TestProduct_SKUSecuencialPorCategoria(t *testing.T) {
	uc := newProducts(memory.New(), inventory.NewSKUGenerator(inventory.SKUSequential))
	ctx := context.Background()

	a, err := uc.Create(ctx, product("Chuleta", "carnes", ""))
	require.NoError(t, err)
	assert.Equal(t, "CAR-0001", a.SKU)
	assert.Equal(t, "Carnes", a.Category)

	_, err = uc.Create(ctx, product("Costilla", "Carnes", "car-0007"))
	require.NoError(t, err)

	c, err := uc.Create(ctx, product("Molida", "Carnes", ""))
	require.NoError(t, err)
	assert.Equal(t, "CAR-0008", c.SKU)

	d, err := uc.Create(ctx, product("Queso", "lacteos", ""))
	require.NoError(t, err)
	assert.Equal(t, "LAC-0001", d.SKU)
	assert.Equal(t, "Lácteos", d.Category)

	next, err := uc.NextSKU(ctx, "Carnes")
	require.NoError(t, err)
	assert.Equal(t, "CAR-0009", next.SKU)
	assert.Equal(t, "sequential", next.Policy)
}

func TestProduct_SKUDuplicadoEnCreateYUpdate(t *testing.T) {
	uc := newProducts(memory.New(), inventory.NewSKUGenerator(inventory.SKUSequential))
	ctx := context.Background()

	a, err := uc.Create(ctx, product("Leche", "Lácteos", "LAC-0001"))
	require.NoError(t, err)
	b, err := uc.Create(ctx, product("Yogur", "Lácteos", ""))
	require.NoError(t, err)

	_, err = uc.Create(ctx, product("Otra leche", "Lácteos", " lac-0001 "))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDuplicate))

	taken := a.SKU
	_, err = uc.Update(ctx, b.ID, dto.UpdateProductRequest{SKU: &taken})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDuplicate))

	// Reasignar su propio SKU no es duplicado.
	own := a.SKU
	name := "Leche Entera"
	updated, err := uc.Update(ctx, a.ID, dto.UpdateProductRequest{SKU: &own, Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Leche Entera", updated.Name)
}

func TestProduct_SKUAleatorio(t *testing.T) {
	draws := []int{0, 0, 42}
	gen := inventory.NewSKUGeneratorWithRand(inventory.SKURandom, func(int) int {
		n := draws[0]
		draws = draws[1:]
		return n
	})
	uc := newProducts(memory.New(), gen)
	ctx := context.Background()

	a, err := uc.Create(ctx, product("Pan", "Panadería", ""))
	require.NoError(t, err)
	assert.Equal(t, "PAN-1000", a.SKU)

	b, err := uc.Create(ctx, product("Pan dulce", "Panadería", ""))
	require.NoError(t, err)
	assert.Equal(t, "PAN-1042", b.SKU, "el primer sorteo choca con PAN-1000")
}

func TestProduct_ValidacionesYNoEncontrado(t *testing.T) {
	uc := newProducts(memory.New(), inventory.NewSKUGenerator(inventory.SKUSequential))
	ctx := context.Background()

	_, err := uc.Create(ctx, product(" ", "Carnes", ""))
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))

	bad := product("Res", "Carnes", "")
	bad.SellPrice = decimal.NewFromInt(-1)
	_, err = uc.Create(ctx, bad)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))

	_, err = uc.GetByID(ctx, "no-existe")
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))

	empty := " "
	created, err := uc.Create(ctx, product("Res", "Carnes", ""))
	require.NoError(t, err)
	_, err = uc.Update(ctx, created.ID, dto.UpdateProductRequest{SKU: &empty})
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}

func TestProduct_StockBajoOrdenadoPorDeficit(t *testing.T) {
	uc := newProducts(memory.New(), inventory.NewSKUGenerator(inventory.SKUSequential))
	ctx := context.Background()

	pan := product("Pan", "Panadería", "")
	pan.Stock, pan.MinStock = 3, 5
	_, err := uc.Create(ctx, pan)
	require.NoError(t, err)

	leche := product("Leche", "Lácteos", "")
	leche.Stock, leche.MinStock = 2, 10
	_, err = uc.Create(ctx, leche)
	require.NoError(t, err)

	_, err = uc.Create(ctx, product("Jabón", "Higiene Personal", "")) // 5 de 2, no aparece
	require.NoError(t, err)

	low, err := uc.LowStock(ctx)
	require.NoError(t, err)
	require.Len(t, low.Items, 2)
	assert.Equal(t, "Leche", low.Items[0].Product.Name)
	assert.Equal(t, 8, low.Items[0].Deficit)
	assert.Equal(t, 13, low.Items[0].SuggestedQty)
	assert.True(t, low.Items[0].EstimatedCost.Equal(decimal.NewFromInt(130)))
	assert.Equal(t, "Pan", low.Items[1].Product.Name)
	assert.Equal(t, 5, low.Items[1].SuggestedQty)
}

func TestSeed_SoloConCatalogoVacio(t *testing.T) {
	store := memory.New()
	products := newProducts(store, inventory.NewSKUGenerator(inventory.SKUSequential))
	seed := usecase.NewSeedUseCase(products, zerolog.Nop())
	ctx := context.Background()

	n, err := seed.SeedCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	n, err = seed.SeedCatalog(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	total, err := store.Products().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, total)

	next, err := products.NextSKU(ctx, "Carnes")
	require.NoError(t, err)
	assert.Equal(t, "CAR-0002", next.SKU)
}
