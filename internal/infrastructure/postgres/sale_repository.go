package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tienda-pos/internal/domain"
	"github.com/jhoicas/tienda-pos/internal/domain/entity"
	"github.com/jhoicas/tienda-pos/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo persiste ventas (sales + sale_items).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create inserta cabecera y líneas en un solo batch. Debe llamarse dentro
// de una transacción para que el batch sea atómico con el descuento de stock.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	batch := &pgx.Batch{}
	batch.Queue(
		`INSERT INTO sales (id, created_at, total_amount, payment_method) VALUES ($1, $2, $3, $4)`,
		sale.ID, sale.CreatedAt, sale.TotalAmount, sale.PaymentMethod,
	)
	for i, it := range sale.Items {
		batch.Queue(
			`INSERT INTO sale_items (sale_id, line_no, product_id, quantity, unit_price, unit_cost)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			sale.ID, i+1, it.ProductID, it.Quantity, it.UnitPrice, it.UnitCost,
		)
	}
	if err := execBatch(ctx, r.q, batch); err != nil {
		if isForeignKeyViolation(err) {
			return domain.NotFound("la venta referencia un producto inexistente")
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta con sus líneas.
func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	if !validID(id) {
		return nil, nil
	}
	var s entity.Sale
	err := r.q.QueryRow(ctx,
		`SELECT id, created_at, total_amount, payment_method FROM sales WHERE id = $1`, id,
	).Scan(&s.ID, &s.CreatedAt, &s.TotalAmount, &s.PaymentMethod)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	items, err := r.items(ctx, `WHERE si.sale_id = $1`, id)
	if err != nil {
		return nil, err
	}
	s.Items = items[s.ID]
	return &s, nil
}

// ListWithItems devuelve todas las ventas (más recientes primero) con líneas
// y nombre de producto.
func (r *SaleRepo) ListWithItems(ctx context.Context) ([]*entity.Sale, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, created_at, total_amount, payment_method FROM sales ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	sales, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*entity.Sale, error) {
		var s entity.Sale
		err := row.Scan(&s.ID, &s.CreatedAt, &s.TotalAmount, &s.PaymentMethod)
		return &s, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan sales: %w", err)
	}
	items, err := r.items(ctx, ``)
	if err != nil {
		return nil, err
	}
	for _, s := range sales {
		s.Items = items[s.ID]
	}
	return sales, nil
}

func (r *SaleRepo) items(ctx context.Context, where string, args ...any) (map[string][]entity.SaleItem, error) {
	rows, err := r.q.Query(ctx, `
		SELECT si.sale_id, si.product_id, p.name, si.quantity, si.unit_price, si.unit_cost
		FROM sale_items si
		JOIN products p ON p.id = si.product_id
		`+where+`
		ORDER BY si.sale_id, si.line_no`, args...)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()
	out := make(map[string][]entity.SaleItem)
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.SaleID, &it.ProductID, &it.ProductName, &it.Quantity, &it.UnitPrice, &it.UnitCost); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		out[it.SaleID] = append(out[it.SaleID], it)
	}
	return out, rows.Err()
}

// execBatch envía el batch y revisa el resultado de cada sentencia.
func execBatch(ctx context.Context, q Querier, batch *pgx.Batch) error {
	br := q.SendBatch(ctx, batch)
	for range batch.Len() {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return err
		}
	}
	return br.Close()
}
