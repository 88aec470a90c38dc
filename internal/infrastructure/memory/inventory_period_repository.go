package memory

import (
	"context"
	"slices"

	"github.com/jhoicas/tienda-pos/internal/domain"
	"github.com/jhoicas/tienda-pos/internal/domain/entity"
	"github.com/jhoicas/tienda-pos/internal/domain/repository"
)

type periodRepo struct{ g guard }

var _ repository.InventoryPeriodRepository = periodRepo{}

func (r periodRepo) DeactivateAll(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	defer r.g.write()()
	n := 0
	for i := range r.g.s.periods {
		if r.g.s.periods[i].IsActive {
			r.g.s.periods[i].IsActive = false
			n++
		}
	}
	return n, nil
}

// Create rechaza un segundo período activo, igual que el índice único parcial de PostgreSQL.
func (r periodRepo) Create(ctx context.Context, p *entity.InventoryPeriod) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	defer r.g.write()()
	if p.IsActive {
		for _, cur := range r.g.s.periods {
			if cur.IsActive {
				return domain.ErrConflict
			}
		}
	}
	r.g.s.periods = append(r.g.s.periods, *p)
	return nil
}

func (r periodRepo) GetActive(ctx context.Context) (*entity.InventoryPeriod, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	defer r.g.read()()
	var active *entity.InventoryPeriod
	for _, p := range r.g.s.periods {
		if p.IsActive && (active == nil || p.CreatedAt.After(active.CreatedAt)) {
			active = &p
		}
	}
	return active, nil
}

func (r periodRepo) List(ctx context.Context) ([]*entity.InventoryPeriod, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	defer r.g.read()()
	out := make([]*entity.InventoryPeriod, 0, len(r.g.s.periods))
	for _, p := range r.g.s.periods {
		out = append(out, &p)
	}
	slices.SortStableFunc(out, func(a, b *entity.InventoryPeriod) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return out, nil
}
