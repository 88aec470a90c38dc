package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tienda-pos/internal/domain"
	"github.com/jhoicas/tienda-pos/internal/domain/entity"
	"github.com/jhoicas/tienda-pos/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, sku, description, category, cost_price, sell_price, stock, min_stock, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto. El índice products_sku_key es la última
// barrera contra SKU duplicados.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.SKU, p.Description, p.Category, p.CostPrice, p.SellPrice,
		p.Stock, p.MinStock, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "products_sku_key") {
			return domain.DuplicateSKU(p.SKU)
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	if !validID(id) {
		return nil, nil
	}
	return r.getOne(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
}

// GetByIDForUpdate bloquea la fila (SELECT FOR UPDATE) hasta el fin de la tx.
func (r *ProductRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	if !validID(id) {
		return nil, nil
	}
	return r.getOne(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1 FOR UPDATE`, id)
}

// GetBySKU obtiene un producto por SKU sin distinguir mayúsculas.
func (r *ProductRepo) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	return r.getOne(ctx, `SELECT `+productColumns+` FROM products WHERE upper(sku) = upper($1)`, sku)
}

func (r *ProductRepo) getOne(ctx context.Context, query string, arg any) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// Update persiste todos los campos editables.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, sku = $3, description = $4, category = $5, cost_price = $6,
		    sell_price = $7, stock = $8, min_stock = $9, updated_at = $10
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.SKU, p.Description, p.Category, p.CostPrice, p.SellPrice,
		p.Stock, p.MinStock, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "products_sku_key") {
			return domain.DuplicateSKU(p.SKU)
		}
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("producto %s no encontrado", p.ID)
	}
	return nil
}

// UpdateStockAndCost persiste solo stock y costo promedio.
func (r *ProductRepo) UpdateStockAndCost(ctx context.Context, p *entity.Product) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE products SET stock = $2, cost_price = $3, updated_at = $4 WHERE id = $1`,
		p.ID, p.Stock, p.CostPrice, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("producto %s no encontrado", p.ID)
	}
	return nil
}

// List lista el catálogo por nombre. La búsqueda ignora mayúsculas; la
// comparación sin tildes se completa en Go con FoldText.
func (r *ProductRepo) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY name, sku`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	all, err := collectProducts(rows)
	if err != nil {
		return nil, err
	}
	query := entity.FoldText(filter.Query)
	category := entity.FoldText(filter.Category)
	if query == "" && category == "" {
		return all, nil
	}
	out := all[:0]
	for _, p := range all {
		if category != "" && entity.FoldText(p.Category) != category {
			continue
		}
		if query != "" &&
			!strings.Contains(entity.FoldText(p.Name), query) &&
			!strings.Contains(entity.FoldText(p.SKU), query) &&
			!strings.Contains(entity.FoldText(p.Category), query) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// ListBelowMinStock lista los productos con stock <= min_stock.
func (r *ProductRepo) ListBelowMinStock(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, `SELECT `+productColumns+` FROM products WHERE stock <= min_stock ORDER BY name, sku`)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	return collectProducts(rows)
}

// ListSKUsByPrefix devuelve los SKU con el prefijo de categoría dado.
func (r *ProductRepo) ListSKUsByPrefix(ctx context.Context, prefix string) ([]string, error) {
	rows, err := r.q.Query(ctx,
		`SELECT sku FROM products WHERE upper(sku) LIKE upper($1) || '-%' ORDER BY sku`, prefix)
	if err != nil {
		return nil, fmt.Errorf("list skus: %w", err)
	}
	skus, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scan skus: %w", err)
	}
	return skus, nil
}

// Count devuelve el total de productos.
func (r *ProductRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM products`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.SKU, &p.Description, &p.Category, &p.CostPrice, &p.SellPrice,
		&p.Stock, &p.MinStock, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func collectProducts(rows pgx.Rows) ([]*entity.Product, error) {
	defer rows.Close()
	var out []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return out, nil
}
