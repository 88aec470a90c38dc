package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-pos/internal/application/dto"
	"github.com/jhoicas/tienda-pos/internal/application/usecase"
)

// SettingsHandler maneja los datos del negocio que aparecen en los documentos.
type SettingsHandler struct {
	uc *usecase.BusinessProfileUseCase
}

func NewSettingsHandler(uc *usecase.BusinessProfileUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// GetBusiness godoc
// @Summary      Datos del negocio
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.BusinessProfileResponse
// @Router       /api/settings/business [get]
func (h *SettingsHandler) GetBusiness(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateBusiness godoc
// @Summary      Actualizar datos del negocio
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BusinessProfileRequest  true  "Nombre, dirección, teléfono y RTN"
// @Success      200   {object}  dto.BusinessProfileResponse
// @Router       /api/settings/business [put]
func (h *SettingsHandler) UpdateBusiness(c *fiber.Ctx) error {
	var in dto.BusinessProfileRequest
	if err := bindAndValidate(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
