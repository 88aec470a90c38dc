package memory

import (
	"context"
	"slices"
	"strings"

	"github.com/jhoicas/tienda-pos/internal/domain"
	"github.com/jhoicas/tienda-pos/internal/domain/entity"
	"github.com/jhoicas/tienda-pos/internal/domain/repository"
)

type productRepo struct{ g guard }

var _ repository.ProductRepository = productRepo{}

func (r productRepo) Create(ctx context.Context, p *entity.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	defer r.g.write()()
	s := r.g.s
	if _, ok := s.products[p.ID]; ok {
		return domain.Validation("el producto %s ya existe", p.ID)
	}
	if skuTaken(s, p.SKU, p.ID) {
		return domain.DuplicateSKU(p.SKU)
	}
	s.products[p.ID] = *p
	return nil
}

func (r productRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	defer r.g.read()()
	p, ok := r.g.s.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// GetByIDForUpdate no necesita bloqueo propio: Run ya tiene el candado exclusivo.
func (r productRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r productRepo) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	defer r.g.read()()
	for _, p := range r.g.s.products {
		if strings.EqualFold(p.SKU, sku) {
			return &p, nil
		}
	}
	return nil, nil
}

func (r productRepo) Update(ctx context.Context, p *entity.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	defer r.g.write()()
	s := r.g.s
	if _, ok := s.products[p.ID]; !ok {
		return domain.NotFound("producto %s no encontrado", p.ID)
	}
	if skuTaken(s, p.SKU, p.ID) {
		return domain.DuplicateSKU(p.SKU)
	}
	s.products[p.ID] = *p
	return nil
}

func (r productRepo) UpdateStockAndCost(ctx context.Context, p *entity.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	defer r.g.write()()
	s := r.g.s
	cur, ok := s.products[p.ID]
	if !ok {
		return domain.NotFound("producto %s no encontrado", p.ID)
	}
	cur.Stock = p.Stock
	cur.CostPrice = p.CostPrice
	cur.UpdatedAt = p.UpdatedAt
	s.products[p.ID] = cur
	return nil
}

func (r productRepo) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	defer r.g.read()()
	query := entity.FoldText(filter.Query)
	category := entity.FoldText(filter.Category)
	out := make([]*entity.Product, 0, len(r.g.s.products))
	for _, p := range r.g.s.products {
		if category != "" && entity.FoldText(p.Category) != category {
			continue
		}
		if query != "" && !matchesQuery(p, query) {
			continue
		}
		out = append(out, &p)
	}
	sortByName(out)
	return out, nil
}

func (r productRepo) ListBelowMinStock(ctx context.Context) ([]*entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	defer r.g.read()()
	var out []*entity.Product
	for _, p := range r.g.s.products {
		if p.BelowMinStock() {
			out = append(out, &p)
		}
	}
	sortByName(out)
	return out, nil
}

func (r productRepo) ListSKUsByPrefix(ctx context.Context, prefix string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	defer r.g.read()()
	head := strings.ToUpper(prefix) + "-"
	var out []string
	for _, p := range r.g.s.products {
		if strings.HasPrefix(strings.ToUpper(p.SKU), head) {
			out = append(out, p.SKU)
		}
	}
	slices.Sort(out)
	return out, nil
}

func (r productRepo) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	defer r.g.read()()
	return len(r.g.s.products), nil
}

func skuTaken(s *Store, sku, selfID string) bool {
	for id, p := range s.products {
		if id != selfID && strings.EqualFold(p.SKU, sku) {
			return true
		}
	}
	return false
}

func matchesQuery(p entity.Product, query string) bool {
	return strings.Contains(entity.FoldText(p.Name), query) ||
		strings.Contains(entity.FoldText(p.SKU), query) ||
		strings.Contains(entity.FoldText(p.Category), query)
}

func sortByName(list []*entity.Product) {
	slices.SortFunc(list, func(a, b *entity.Product) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(a.SKU, b.SKU)
	})
}
