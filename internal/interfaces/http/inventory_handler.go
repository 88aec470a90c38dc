package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-pos/internal/application/dto"
	"github.com/jhoicas/tienda-pos/internal/application/inventory"
)

// InventoryHandler maneja compras (entradas de mercadería) e inventario inicial.
type InventoryHandler struct {
	purchases *inventory.PurchaseUseCase
	periods   *inventory.PeriodUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(purchases *inventory.PurchaseUseCase, periods *inventory.PeriodUseCase) *InventoryHandler {
	return &InventoryHandler{purchases: purchases, periods: periods}
}

// CreatePurchase godoc
// @Summary      Registrar compra
// @Description  Suma stock y recalcula el costo promedio ponderado de cada producto.
// @Tags         purchases
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePurchaseRequest  true  "Proveedor y líneas"
// @Success      201   {object}  dto.PurchaseResponse
// @Failure      404   {object}  dto.ErrorResponse  "producto inexistente"
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/purchases [post]
func (h *InventoryHandler) CreatePurchase(c *fiber.Ctx) error {
	var in dto.CreatePurchaseRequest
	if err := bindAndValidate(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.purchases.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListPurchases godoc
// @Summary      Historial de compras
// @Tags         purchases
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.PurchaseResponse]
// @Router       /api/purchases [get]
func (h *InventoryHandler) ListPurchases(c *fiber.Ctx) error {
	out, err := h.purchases.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetPeriod godoc
// @Summary      Definir inventario inicial activo
// @Description  Desactiva el período anterior y registra el nuevo como único activo.
// @Tags         inventory-periods
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetInventoryPeriodRequest  true  "Nombre y valor total"
// @Success      201   {object}  dto.SetInventoryPeriodResponse
// @Router       /api/inventory-periods [post]
func (h *InventoryHandler) SetPeriod(c *fiber.Ctx) error {
	var in dto.SetInventoryPeriodRequest
	if err := bindAndValidate(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.periods.SetActive(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ActivePeriod godoc
// @Summary      Inventario inicial activo
// @Tags         inventory-periods
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InventoryPeriodResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory-periods/active [get]
func (h *InventoryHandler) ActivePeriod(c *fiber.Ctx) error {
	out, err := h.periods.Active(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListPeriods godoc
// @Summary      Historial de inventarios iniciales
// @Tags         inventory-periods
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.InventoryPeriodResponse]
// @Router       /api/inventory-periods [get]
func (h *InventoryHandler) ListPeriods(c *fiber.Ctx) error {
	out, err := h.periods.History(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
