package ports

import (
	"context"

	"github.com/jhoicas/tienda-pos/internal/application/dto"
)

// InsightService define el puerto de salida hacia el proveedor de IA
// (Gemini, Anthropic, mock). La aplicación solo conoce este contrato.
type InsightService interface {
	// FinancialInsight redacta tres observaciones breves y una recomendación
	// sobre el estado de resultados. El contexto debe traer timeout.
	FinancialInsight(ctx context.Context, report dto.PnLReportDTO) (string, error)
}
