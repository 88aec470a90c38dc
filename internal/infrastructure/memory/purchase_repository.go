package memory

import (
	"context"
	"slices"

	"github.com/jhoicas/tienda-pos/internal/domain"
	"github.com/jhoicas/tienda-pos/internal/domain/entity"
	"github.com/jhoicas/tienda-pos/internal/domain/repository"
)

type purchaseRepo struct{ g guard }

var _ repository.PurchaseRepository = purchaseRepo{}

func (r purchaseRepo) Create(ctx context.Context, purchase *entity.Purchase) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	defer r.g.write()()
	s := r.g.s
	for _, it := range purchase.Items {
		if _, ok := s.products[it.ProductID]; !ok {
			return domain.NotFound("producto %s no encontrado", it.ProductID)
		}
	}
	stored := *purchase
	stored.Items = slices.Clone(purchase.Items)
	s.purchases = append(s.purchases, stored)
	return nil
}

func (r purchaseRepo) ListWithItems(ctx context.Context) ([]*entity.Purchase, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	defer r.g.read()()
	s := r.g.s
	out := make([]*entity.Purchase, 0, len(s.purchases))
	for _, p := range s.purchases {
		p.Items = slices.Clone(p.Items)
		for i := range p.Items {
			if prod, ok := s.products[p.Items[i].ProductID]; ok {
				p.Items[i].ProductName = prod.Name
			}
		}
		out = append(out, &p)
	}
	slices.SortStableFunc(out, func(a, b *entity.Purchase) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return out, nil
}
