package repository

import (
	"context"

	"github.com/jhoicas/tienda-pos/internal/domain/entity"
)

// ExpenseRepository persiste gastos operativos.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.Expense) error
	List(ctx context.Context) ([]*entity.Expense, error)
}
