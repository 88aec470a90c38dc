package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/tienda-pos/internal/application/analytics"
	"github.com/jhoicas/tienda-pos/internal/application/dto"
	"github.com/jhoicas/tienda-pos/internal/application/ports"
	"github.com/jhoicas/tienda-pos/internal/domain"
	"github.com/jhoicas/tienda-pos/internal/domain/entity"
	"github.com/jhoicas/tienda-pos/internal/domain/inventory"
	"github.com/jhoicas/tienda-pos/internal/domain/repository"
)

// ExpenseUseCase registra y lista gastos operativos.
type ExpenseUseCase struct {
	repo  repository.ExpenseRepository
	cache ports.ReportCache
	log   zerolog.Logger
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(repo repository.ExpenseRepository, cache ports.ReportCache, log zerolog.Logger) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo, cache: cache, log: log}
}

// Create registra un gasto. La categoría se guarda en mayúsculas; vacía
// equivale a SERVICIOS.
func (uc *ExpenseUseCase) Create(ctx context.Context, in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	description := strings.TrimSpace(in.Description)
	if description == "" {
		return nil, domain.Validation("la descripción del gasto es obligatoria")
	}
	if !in.Amount.IsPositive() {
		return nil, domain.Validation("el monto del gasto debe ser mayor que cero")
	}
	category := strings.ToUpper(strings.TrimSpace(in.Category))
	if category == "" {
		category = entity.ExpenseServices
	}

	expense := &entity.Expense{
		ID:          uuid.New().String(),
		CreatedAt:   time.Now(),
		Description: description,
		Category:    category,
		Amount:      in.Amount.Round(inventory.CurrencyPlaces),
	}
	if err := uc.repo.Create(ctx, expense); err != nil {
		return nil, domain.Persistence("registrar gasto", err)
	}
	uc.log.Info().Str("expense_id", expense.ID).Str("category", category).Str("amount", expense.Amount.StringFixed(2)).Msg("gasto registrado")
	analytics.InvalidateReports(ctx, uc.cache, uc.log)
	return toExpenseResponse(expense), nil
}

// List devuelve los gastos, más recientes primero.
func (uc *ExpenseUseCase) List(ctx context.Context) (dto.ListResponse[dto.ExpenseResponse], error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return dto.ListResponse[dto.ExpenseResponse]{}, domain.Persistence("listar gastos", err)
	}
	items := make([]dto.ExpenseResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toExpenseResponse(e))
	}
	return dto.NewList(items), nil
}

func toExpenseResponse(e *entity.Expense) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{
		ID:          e.ID,
		CreatedAt:   e.CreatedAt,
		Description: e.Description,
		Category:    e.Category,
		Amount:      e.Amount,
	}
}
