package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tienda-pos/internal/domain/entity"
	"github.com/jhoicas/tienda-pos/internal/domain/repository"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo persiste gastos.
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository construye el adaptador.
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

func (r *ExpenseRepo) Create(ctx context.Context, e *entity.Expense) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO expenses (id, created_at, description, category, amount) VALUES ($1, $2, $3, $4, $5)`,
		e.ID, e.CreatedAt, e.Description, e.Category, e.Amount,
	)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

func (r *ExpenseRepo) List(ctx context.Context) ([]*entity.Expense, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, created_at, description, category, amount FROM expenses ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*entity.Expense, error) {
		var e entity.Expense
		err := row.Scan(&e.ID, &e.CreatedAt, &e.Description, &e.Category, &e.Amount)
		return &e, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan expenses: %w", err)
	}
	return out, nil
}
