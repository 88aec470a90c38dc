package usecase_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-pos/internal/application/dto"
	"github.com/jhoicas/tienda-pos/internal/application/usecase"
	"github.com/jhoicas/tienda-pos/internal/domain"
	"github.com/jhoicas/tienda-pos/internal/domain/entity"
	"github.com/jhoicas/tienda-pos/internal/infrastructure/cache"
	"github.com/jhoicas/tienda-pos/internal/infrastructure/memory"
)

func TestExpense_CategoriaEnMayusculasYPorDefecto(t *testing.T) {
	store := memory.New()
	uc := usecase.NewExpenseUseCase(store.Expenses(), cache.Noop{}, zerolog.Nop())
	ctx := context.Background()

	a, err := uc.Create(ctx, dto.CreateExpenseRequest{Description: "Alquiler local", Category: " alquiler ", Amount: decimal.RequireFromString("4500.455")})
	require.NoError(t, err)
	assert.Equal(t, entity.ExpenseRent, a.Category)
	assert.Equal(t, "4500.46", a.Amount.StringFixed(2))

	b, err := uc.Create(ctx, dto.CreateExpenseRequest{Description: "Luz", Amount: decimal.NewFromInt(800)})
	require.NoError(t, err)
	assert.Equal(t, entity.ExpenseServices, b.Category)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list.Items, 2)
}

func TestExpense_Validaciones(t *testing.T) {
	uc := usecase.NewExpenseUseCase(memory.New().Expenses(), cache.Noop{}, zerolog.Nop())

	_, err := uc.Create(context.Background(), dto.CreateExpenseRequest{Description: " ", Amount: decimal.NewFromInt(1)})
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))

	_, err = uc.Create(context.Background(), dto.CreateExpenseRequest{Description: "Agua", Amount: decimal.Zero})
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}

func TestBusinessProfile_DefectosHastaGuardar(t *testing.T) {
	store := memory.New()
	uc := usecase.NewBusinessProfileUseCase(store.BusinessProfile(), entity.BusinessProfile{Name: "Mi Tienda"}, zerolog.Nop())
	ctx := context.Background()

	got, err := uc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Mi Tienda", got.Name)

	_, err = uc.Update(ctx, dto.BusinessProfileRequest{Name: " Pulpería Lupita ", RTN: "08011999000001"})
	require.NoError(t, err)

	p, err := uc.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Pulpería Lupita", p.Name)
	assert.Equal(t, "08011999000001", p.RTN)

	_, err = uc.Update(ctx, dto.BusinessProfileRequest{})
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}
