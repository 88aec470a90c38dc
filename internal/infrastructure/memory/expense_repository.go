package memory

import (
	"context"
	"slices"

	"github.com/jhoicas/tienda-pos/internal/domain/entity"
	"github.com/jhoicas/tienda-pos/internal/domain/repository"
)

type expenseRepo struct{ g guard }

var _ repository.ExpenseRepository = expenseRepo{}

func (r expenseRepo) Create(ctx context.Context, e *entity.Expense) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	defer r.g.write()()
	r.g.s.expenses = append(r.g.s.expenses, *e)
	return nil
}

func (r expenseRepo) List(ctx context.Context) ([]*entity.Expense, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	defer r.g.read()()
	out := make([]*entity.Expense, 0, len(r.g.s.expenses))
	for _, e := range r.g.s.expenses {
		out = append(out, &e)
	}
	slices.SortStableFunc(out, func(a, b *entity.Expense) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return out, nil
}
