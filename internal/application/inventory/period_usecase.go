package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/tienda-pos/internal/application/analytics"
	"github.com/jhoicas/tienda-pos/internal/application/dto"
	"github.com/jhoicas/tienda-pos/internal/application/ports"
	"github.com/jhoicas/tienda-pos/internal/domain"
	"github.com/jhoicas/tienda-pos/internal/domain/entity"
	"github.com/jhoicas/tienda-pos/internal/domain/inventory"
	"github.com/jhoicas/tienda-pos/internal/domain/repository"
)

// PeriodUseCase administra el inventario inicial por período.
// Solo un período queda activo; es la base del costo de ventas.
type PeriodUseCase struct {
	txRunner   ports.TxRunner
	periodRepo repository.InventoryPeriodRepository
	cache      ports.ReportCache
	log        zerolog.Logger
}

// NewPeriodUseCase construye el caso de uso.
func NewPeriodUseCase(
	txRunner ports.TxRunner,
	periodRepo repository.InventoryPeriodRepository,
	cache ports.ReportCache,
	log zerolog.Logger,
) *PeriodUseCase {
	return &PeriodUseCase{txRunner: txRunner, periodRepo: periodRepo, cache: cache, log: log}
}

// SetActive desactiva todos los períodos y crea el nuevo como activo, en una
// sola transacción.
func (uc *PeriodUseCase) SetActive(ctx context.Context, in dto.SetInventoryPeriodRequest) (*dto.SetInventoryPeriodResponse, error) {
	name := strings.TrimSpace(in.PeriodName)
	if name == "" {
		return nil, domain.Validation("el nombre del período es obligatorio")
	}
	if in.TotalValue.IsNegative() {
		return nil, domain.Validation("el valor del inventario inicial no puede ser negativo")
	}

	period := &entity.InventoryPeriod{
		ID:         uuid.New().String(),
		CreatedAt:  time.Now(),
		PeriodName: name,
		TotalValue: in.TotalValue.Round(inventory.CurrencyPlaces),
		IsActive:   true,
	}
	var deactivated int
	err := uc.txRunner.Run(ctx, func(repos ports.TxRepos) error {
		n, err := repos.Periods.DeactivateAll(ctx)
		if err != nil {
			return err
		}
		deactivated = n
		return repos.Periods.Create(ctx, period)
	})
	if err != nil {
		return nil, domain.Persistence("definir inventario inicial", err)
	}

	uc.log.Info().
		Str("period_id", period.ID).
		Str("period_name", period.PeriodName).
		Int("deactivated", deactivated).
		Msg("inventario inicial activo actualizado")
	analytics.InvalidateReports(ctx, uc.cache, uc.log)
	return &dto.SetInventoryPeriodResponse{Period: toPeriodResponse(period), Deactivated: deactivated}, nil
}

// Active devuelve el período activo.
func (uc *PeriodUseCase) Active(ctx context.Context) (*dto.InventoryPeriodResponse, error) {
	p, err := uc.periodRepo.GetActive(ctx)
	if err != nil {
		return nil, domain.Persistence("obtener período activo", err)
	}
	if p == nil {
		return nil, domain.NotFound("no hay inventario inicial activo")
	}
	out := toPeriodResponse(p)
	return &out, nil
}

// History lista todos los períodos, más recientes primero.
func (uc *PeriodUseCase) History(ctx context.Context) (dto.ListResponse[dto.InventoryPeriodResponse], error) {
	list, err := uc.periodRepo.List(ctx)
	if err != nil {
		return dto.ListResponse[dto.InventoryPeriodResponse]{}, domain.Persistence("listar períodos", err)
	}
	items := make([]dto.InventoryPeriodResponse, 0, len(list))
	for _, p := range list {
		items = append(items, toPeriodResponse(p))
	}
	return dto.NewList(items), nil
}

func toPeriodResponse(p *entity.InventoryPeriod) dto.InventoryPeriodResponse {
	return dto.InventoryPeriodResponse{
		ID:         p.ID,
		CreatedAt:  p.CreatedAt,
		PeriodName: p.PeriodName,
		TotalValue: p.TotalValue,
		IsActive:   p.IsActive,
	}
}
