package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-pos/internal/application/analytics"
	"github.com/jhoicas/tienda-pos/internal/application/dto"
)

// AnalyticsHandler maneja el estado de resultados y las exportaciones.
type AnalyticsHandler struct {
	pnl  *analytics.PnLUseCase
	docs *analytics.DocumentUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(pnl *analytics.PnLUseCase, docs *analytics.DocumentUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{pnl: pnl, docs: docs}
}

// PnL godoc
// @Summary      Estado de resultados (P&G)
// @Description  COGS = inventario inicial + compras − inventario final, nunca negativo.
// @Description  Si se recorta a 0 o no hay período activo se incluye una advertencia.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PnLReportDTO
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/reports/pnl [get]
func (h *AnalyticsHandler) PnL(c *fiber.Ctx) error {
	report, err := h.pnl.Report(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(report)
}

// PnLPDF godoc
// @Summary      Estado de resultados en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/reports/pnl/pdf [get]
func (h *AnalyticsHandler) PnLPDF(c *fiber.Ctx) error {
	doc, err := h.docs.PnLDocument(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return sendDocument(c, doc, false)
}

// Export godoc
// @Summary      Exportar listado de ventas, compras o gastos
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        kind    path   string  true   "sales | purchases | expenses"
// @Param        format  query  string  false  "pdf | xlsx"  default(pdf)
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/{kind}/export [get]
func (h *AnalyticsHandler) Export(c *fiber.Ctx) error {
	var in dto.ExportRequest
	if err := bindQuery(c, &in); err != nil {
		return respondError(c, err)
	}
	doc, err := h.docs.Export(c.UserContext(), c.Params("kind"), in.Format)
	if err != nil {
		return respondError(c, err)
	}
	return sendDocument(c, doc, false)
}
