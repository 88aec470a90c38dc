package analytics

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/tienda-pos/internal/application/dto"
	"github.com/jhoicas/tienda-pos/internal/application/ports"
	"github.com/jhoicas/tienda-pos/internal/domain"
)

// insightTimeout limita cada llamada al proveedor de IA.
const insightTimeout = 10 * time.Second

// InsightUseCase pide al proveedor de IA un análisis breve del estado de
// resultados vigente.
type InsightUseCase struct {
	pnl *PnLUseCase
	llm ports.InsightService
	log zerolog.Logger
}

// NewInsightUseCase construye el caso de uso inyectando el puerto InsightService.
func NewInsightUseCase(pnl *PnLUseCase, llm ports.InsightService, log zerolog.Logger) *InsightUseCase {
	return &InsightUseCase{pnl: pnl, llm: llm, log: log}
}

// Generate calcula el P&G y lo envía al proveedor con un timeout de 10 s.
func (uc *InsightUseCase) Generate(ctx context.Context) (*dto.InsightResponse, error) {
	report, err := uc.pnl.Report(ctx)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, insightTimeout)
	defer cancel()

	text, err := uc.llm.FinancialInsight(ctx, *report)
	if err != nil {
		uc.log.Error().Err(err).Msg("análisis IA falló")
		return nil, domain.External("de análisis IA", err)
	}
	return &dto.InsightResponse{
		Insight:     text,
		Report:      *report,
		GeneratedAt: time.Now(),
	}, nil
}
