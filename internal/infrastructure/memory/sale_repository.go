package memory

import (
	"context"
	"slices"

	"github.com/jhoicas/tienda-pos/internal/domain"
	"github.com/jhoicas/tienda-pos/internal/domain/entity"
	"github.com/jhoicas/tienda-pos/internal/domain/repository"
)

type saleRepo struct{ g guard }

var _ repository.SaleRepository = saleRepo{}

func (r saleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	defer r.g.write()()
	s := r.g.s
	for _, it := range sale.Items {
		if _, ok := s.products[it.ProductID]; !ok {
			return domain.NotFound("producto %s no encontrado", it.ProductID)
		}
	}
	stored := *sale
	stored.Items = slices.Clone(sale.Items)
	s.sales = append(s.sales, stored)
	return nil
}

func (r saleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	defer r.g.read()()
	for _, sale := range r.g.s.sales {
		if sale.ID == id {
			return r.withNames(sale), nil
		}
	}
	return nil, nil
}

func (r saleRepo) ListWithItems(ctx context.Context) ([]*entity.Sale, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	defer r.g.read()()
	out := make([]*entity.Sale, 0, len(r.g.s.sales))
	for _, sale := range r.g.s.sales {
		out = append(out, r.withNames(sale))
	}
	slices.SortStableFunc(out, func(a, b *entity.Sale) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return out, nil
}

// withNames copia la venta y completa el nombre actual de cada producto.
func (r saleRepo) withNames(sale entity.Sale) *entity.Sale {
	sale.Items = slices.Clone(sale.Items)
	for i := range sale.Items {
		if p, ok := r.g.s.products[sale.Items[i].ProductID]; ok {
			sale.Items[i].ProductName = p.Name
		}
	}
	return &sale
}
