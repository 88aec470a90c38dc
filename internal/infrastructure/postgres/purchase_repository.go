package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tienda-pos/internal/domain"
	"github.com/jhoicas/tienda-pos/internal/domain/entity"
	"github.com/jhoicas/tienda-pos/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo persiste compras (purchases + purchase_items).
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador. Pasar pool o tx.
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// Create inserta cabecera y líneas en un batch.
func (r *PurchaseRepo) Create(ctx context.Context, p *entity.Purchase) error {
	batch := &pgx.Batch{}
	batch.Queue(
		`INSERT INTO purchases (id, created_at, supplier_name, total_amount) VALUES ($1, $2, $3, $4)`,
		p.ID, p.CreatedAt, p.SupplierName, p.TotalAmount,
	)
	for i, it := range p.Items {
		batch.Queue(
			`INSERT INTO purchase_items (purchase_id, line_no, product_id, quantity, unit_cost)
			 VALUES ($1, $2, $3, $4, $5)`,
			p.ID, i+1, it.ProductID, it.Quantity, it.UnitCost,
		)
	}
	if err := execBatch(ctx, r.q, batch); err != nil {
		if isForeignKeyViolation(err) {
			return domain.NotFound("la compra referencia un producto inexistente")
		}
		return fmt.Errorf("insert purchase: %w", err)
	}
	return nil
}

// ListWithItems devuelve todas las compras (más recientes primero) con líneas.
func (r *PurchaseRepo) ListWithItems(ctx context.Context) ([]*entity.Purchase, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, created_at, supplier_name, total_amount FROM purchases ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	purchases, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*entity.Purchase, error) {
		var p entity.Purchase
		err := row.Scan(&p.ID, &p.CreatedAt, &p.SupplierName, &p.TotalAmount)
		return &p, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan purchases: %w", err)
	}

	itemRows, err := r.q.Query(ctx, `
		SELECT pi.purchase_id, pi.product_id, p.name, pi.quantity, pi.unit_cost
		FROM purchase_items pi
		JOIN products p ON p.id = pi.product_id
		ORDER BY pi.purchase_id, pi.line_no`)
	if err != nil {
		return nil, fmt.Errorf("list purchase items: %w", err)
	}
	defer itemRows.Close()
	byID := make(map[string][]entity.PurchaseItem)
	for itemRows.Next() {
		var it entity.PurchaseItem
		if err := itemRows.Scan(&it.PurchaseID, &it.ProductID, &it.ProductName, &it.Quantity, &it.UnitCost); err != nil {
			return nil, fmt.Errorf("scan purchase item: %w", err)
		}
		byID[it.PurchaseID] = append(byID[it.PurchaseID], it)
	}
	if err := itemRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate purchase items: %w", err)
	}
	for _, p := range purchases {
		p.Items = byID[p.ID]
	}
	return purchases, nil
}
