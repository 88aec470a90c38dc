package repository

import (
	"context"

	"github.com/jhoicas/tienda-pos/internal/domain/entity"
)

// InventoryPeriodRepository persiste los inventarios iniciales por período.
type InventoryPeriodRepository interface {
	// DeactivateAll desactiva todos los registros activos y devuelve cuántos cambió.
	DeactivateAll(ctx context.Context) (int, error)
	Create(ctx context.Context, period *entity.InventoryPeriod) error
	// GetActive devuelve el período activo más reciente o (nil, nil).
	GetActive(ctx context.Context) (*entity.InventoryPeriod, error)
	List(ctx context.Context) ([]*entity.InventoryPeriod, error)
}
