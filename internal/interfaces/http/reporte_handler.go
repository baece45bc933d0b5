package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/camposoft/ganaderia-api/internal/application/dto"
	"github.com/camposoft/ganaderia-api/internal/application/usecase"
)

// ReporteHandler maneja los reportes agregados por finca.
type ReporteHandler struct {
	uc *usecase.ReporteUseCase
}

// NewReporteHandler construye el handler.
func NewReporteHandler(uc *usecase.ReporteUseCase) *ReporteHandler {
	return &ReporteHandler{uc: uc}
}

// Inventario GET /api/fincas/:id/reportes/inventario?include_inactivos=true
func (h *ReporteHandler) Inventario(c *fiber.Ctx) error {
	actor, _ := GetActor(c)
	idFinca, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return idInvalido(c, "id")
	}
	var incluirInactivos *bool
	if raw := flagInactivos(c); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Mensaje: "Datos inválidos", Detalle: "include_inactivos debe ser true o false"})
		}
		incluirInactivos = &v
	}
	inventario, err := h.uc.Inventario(c.Context(), actor, idFinca, incluirInactivos)
	if err != nil {
		return responderError(c, err)
	}
	return responderOK(c, fiber.StatusOK, fiber.Map{"inventario": inventario})
}

// Sanitario GET /api/fincas/:id/reportes/sanitario?dias=30
func (h *ReporteHandler) Sanitario(c *fiber.Ctx) error {
	actor, _ := GetActor(c)
	idFinca, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return idInvalido(c, "id")
	}
	var dias *int
	if raw := c.Query("dias"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Mensaje: "Datos inválidos", Detalle: "dias debe ser numérico"})
		}
		dias = &v
	}
	calendario, err := h.uc.Sanitario(c.Context(), actor, idFinca, dias)
	if err != nil {
		return responderError(c, err)
	}
	return responderOK(c, fiber.StatusOK, fiber.Map{"calendario": calendario})
}
