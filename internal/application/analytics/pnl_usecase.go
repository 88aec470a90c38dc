// Package analytics contiene los casos de uso de reportes: estado de
// resultados, análisis con IA y documentos exportables.
package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/tienda-pos/internal/application/dto"
	"github.com/jhoicas/tienda-pos/internal/application/ports"
	"github.com/jhoicas/tienda-pos/internal/domain"
	"github.com/jhoicas/tienda-pos/internal/domain/finance"
	"github.com/jhoicas/tienda-pos/internal/domain/repository"
)

// Sources agrupa los repositorios de solo lectura que alimentan el P&G.
type Sources struct {
	Products  repository.ProductRepository
	Sales     repository.SaleRepository
	Purchases repository.PurchaseRepository
	Expenses  repository.ExpenseRepository
	Periods   repository.InventoryPeriodRepository
}

// PnLUseCase genera el estado de resultados. Lee sus cinco fuentes en
// paralelo y cachea el resultado hasta la próxima escritura.
type PnLUseCase struct {
	src   Sources
	cache ports.ReportCache
	log   zerolog.Logger
	now   func() time.Time
}

// NewPnLUseCase construye el caso de uso.
func NewPnLUseCase(src Sources, cache ports.ReportCache, log zerolog.Logger) *PnLUseCase {
	return &PnLUseCase{src: src, cache: cache, log: log, now: time.Now}
}

// Report devuelve el estado de resultados, desde la caché si está vigente.
// Sin caché disponible se calcula y no se guarda.
func (uc *PnLUseCase) Report(ctx context.Context) (*dto.PnLReportDTO, error) {
	gen, cacheable := uc.generation(ctx)
	if cacheable {
		if cached := uc.fromCache(ctx, gen); cached != nil {
			return cached, nil
		}
	}
	in, err := uc.Load(ctx)
	if err != nil {
		return nil, err
	}
	report := ToPnLReport(finance.Calculate(in), uc.now())
	if cacheable {
		uc.toCache(ctx, gen, report)
	}
	for _, w := range report.Warnings {
		uc.log.Warn().Str("code", w.Code).Msg(w.Message)
	}
	return report, nil
}

// Load lee ventas, gastos, compras, productos y el período activo en paralelo.
func (uc *PnLUseCase) Load(ctx context.Context) (finance.Input, error) {
	var in finance.Input
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		in.Sales, err = uc.src.Sales.ListWithItems(gctx)
		return wrapSource("ventas", err)
	})
	g.Go(func() error {
		var err error
		in.Expenses, err = uc.src.Expenses.List(gctx)
		return wrapSource("gastos", err)
	})
	g.Go(func() error {
		var err error
		in.Purchases, err = uc.src.Purchases.ListWithItems(gctx)
		return wrapSource("compras", err)
	})
	g.Go(func() error {
		var err error
		in.Products, err = uc.src.Products.List(gctx, repository.ProductFilter{})
		return wrapSource("productos", err)
	})
	g.Go(func() error {
		var err error
		in.ActivePeriod, err = uc.src.Periods.GetActive(gctx)
		return wrapSource("inventario inicial", err)
	})

	if err := g.Wait(); err != nil {
		return finance.Input{}, err
	}
	return in, nil
}

func wrapSource(name string, err error) error {
	if err == nil {
		return nil
	}
	return domain.Persistence(fmt.Sprintf("estado de resultados (%s)", name), err)
}

func (uc *PnLUseCase) generation(ctx context.Context) (int64, bool) {
	if uc.cache == nil {
		return 0, false
	}
	gen, err := reportsGeneration(ctx, uc.cache)
	if err != nil {
		uc.log.Warn().Err(err).Msg("caché de reportes no disponible")
		return 0, false
	}
	return gen, true
}

func (uc *PnLUseCase) fromCache(ctx context.Context, gen int64) *dto.PnLReportDTO {
	raw, err := uc.cache.Get(ctx, PnLCacheKey(gen))
	if err != nil {
		uc.log.Warn().Err(err).Msg("caché de reportes no disponible")
		return nil
	}
	if raw == nil {
		return nil
	}
	var report dto.PnLReportDTO
	if err := json.Unmarshal(raw, &report); err != nil {
		uc.log.Warn().Err(err).Msg("entrada de caché corrupta, se recalcula")
		return nil
	}
	return &report
}

func (uc *PnLUseCase) toCache(ctx context.Context, gen int64, report *dto.PnLReportDTO) {
	raw, err := json.Marshal(report)
	if err != nil {
		return
	}
	if err := uc.cache.Set(ctx, PnLCacheKey(gen), raw); err != nil {
		uc.log.Warn().Err(err).Msg("no se pudo guardar el reporte en caché")
	}
}

// ToPnLReport convierte el estado calculado a su respuesta HTTP.
func ToPnLReport(s finance.Statement, generatedAt time.Time) *dto.PnLReportDTO {
	warnings := make([]dto.PnLWarningDTO, 0, len(s.Warnings))
	for _, w := range s.Warnings {
		warnings = append(warnings, dto.PnLWarningDTO{Code: w.Code, Message: w.Message})
	}
	return &dto.PnLReportDTO{
		PeriodName:        s.PeriodName,
		Revenue:           s.Revenue,
		InitialInventory:  s.InitialInventory,
		Purchases:         s.Purchases,
		EndingInventory:   s.EndingInventory,
		RawCOGS:           s.RawCOGS,
		COGS:              s.COGS,
		GrossProfit:       s.GrossProfit,
		SellingExpenses:   s.SellingExpenses,
		AdminExpenses:     s.AdminExpenses,
		OperatingExpenses: s.OperatingExpenses,
		NetProfit:         s.NetProfit,
		Warnings:          warnings,
		GeneratedAt:       generatedAt,
	}
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Febrero 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
