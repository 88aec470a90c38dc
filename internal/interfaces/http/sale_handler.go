package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-pos/internal/application/analytics"
	"github.com/jhoicas/tienda-pos/internal/application/dto"
	"github.com/jhoicas/tienda-pos/internal/application/inventory"
)

// SaleHandler maneja el punto de venta.
type SaleHandler struct {
	uc   *inventory.SaleUseCase
	docs *analytics.DocumentUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *inventory.SaleUseCase, docs *analytics.DocumentUseCase) *SaleHandler {
	return &SaleHandler{uc: uc, docs: docs}
}

// Checkout godoc
// @Summary      Registrar venta
// @Description  Valida stock de todas las líneas y registra la venta en una sola transacción.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckoutRequest  true  "Carrito y método de pago"
// @Success      201   {object}  dto.SaleResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "stock insuficiente"
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Checkout(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := bindAndValidate(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Checkout(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Historial de ventas (más recientes primero)
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.SaleResponse]
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener venta
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Receipt godoc
// @Summary      Ticket PDF de la venta
// @Tags         sales
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/receipt [get]
func (h *SaleHandler) Receipt(c *fiber.Ctx) error {
	doc, err := h.docs.SaleReceipt(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return sendDocument(c, doc, true)
}

// sendDocument escribe un archivo generado; inline lo muestra en el navegador.
func sendDocument(c *fiber.Ctx, doc *analytics.Document, inline bool) error {
	disposition := "attachment"
	if inline {
		disposition = "inline"
	}
	c.Set(fiber.HeaderContentType, doc.ContentType)
	c.Set(fiber.HeaderContentDisposition, disposition+`; filename="`+doc.Filename+`"`)
	return c.Send(doc.Body)
}
