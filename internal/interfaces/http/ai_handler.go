package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-pos/internal/application/analytics"
)

// AIHandler expone el análisis financiero asistido por IA.
type AIHandler struct {
	uc *analytics.InsightUseCase
}

// NewAIHandler construye el handler.
func NewAIHandler(uc *analytics.InsightUseCase) *AIHandler {
	return &AIHandler{uc: uc}
}

// Insight godoc
// @Summary      Análisis del estado de resultados con IA
// @Description  Tres observaciones breves y una recomendación. Timeout interno de 10 s.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InsightResponse
// @Failure      502  {object}  dto.ErrorResponse  "proveedor de IA no disponible"
// @Failure      504  {object}  dto.ErrorResponse
// @Router       /api/reports/pnl/insight [post]
func (h *AIHandler) Insight(c *fiber.Ctx) error {
	out, err := h.uc.Generate(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
