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

var _ repository.InventoryPeriodRepository = (*InventoryPeriodRepo)(nil)

// InventoryPeriodRepo persiste initial_inventory.
type InventoryPeriodRepo struct {
	q Querier
}

// NewInventoryPeriodRepository construye el adaptador. Pasar pool o tx.
func NewInventoryPeriodRepository(q Querier) *InventoryPeriodRepo {
	return &InventoryPeriodRepo{q: q}
}

func (r *InventoryPeriodRepo) DeactivateAll(ctx context.Context) (int, error) {
	tag, err := r.q.Exec(ctx, `UPDATE initial_inventory SET is_active = false WHERE is_active`)
	if err != nil {
		return 0, fmt.Errorf("deactivate periods: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// Create inserta el período. Un segundo activo choca con initial_inventory_one_active.
func (r *InventoryPeriodRepo) Create(ctx context.Context, p *entity.InventoryPeriod) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO initial_inventory (id, created_at, period_name, total_value, is_active) VALUES ($1, $2, $3, $4, $5)`,
		p.ID, p.CreatedAt, p.PeriodName, p.TotalValue, p.IsActive,
	)
	if err != nil {
		if isUniqueViolation(err, "initial_inventory_one_active") {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert period: %w", err)
	}
	return nil
}

func (r *InventoryPeriodRepo) GetActive(ctx context.Context) (*entity.InventoryPeriod, error) {
	var p entity.InventoryPeriod
	err := r.q.QueryRow(ctx, `
		SELECT id, created_at, period_name, total_value, is_active
		FROM initial_inventory WHERE is_active
		ORDER BY created_at DESC LIMIT 1`,
	).Scan(&p.ID, &p.CreatedAt, &p.PeriodName, &p.TotalValue, &p.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get active period: %w", err)
	}
	return &p, nil
}

func (r *InventoryPeriodRepo) List(ctx context.Context) ([]*entity.InventoryPeriod, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, created_at, period_name, total_value, is_active
		FROM initial_inventory ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list periods: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*entity.InventoryPeriod, error) {
		var p entity.InventoryPeriod
		err := row.Scan(&p.ID, &p.CreatedAt, &p.PeriodName, &p.TotalValue, &p.IsActive)
		return &p, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan periods: %w", err)
	}
	return out, nil
}
