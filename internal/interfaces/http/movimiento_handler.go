package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/camposoft/ganaderia-api/internal/application/dto"
	"github.com/camposoft/ganaderia-api/internal/application/usecase"
)

// MovimientoHandler maneja el libro de movimientos de un semoviente.
type MovimientoHandler struct {
	uc *usecase.MovimientoUseCase
}

// NewMovimientoHandler construye el handler.
func NewMovimientoHandler(uc *usecase.MovimientoUseCase) *MovimientoHandler {
	return &MovimientoHandler{uc: uc}
}

// Crear POST /api/semovientes/:id/movimientos. Registra un Traslado, Venta o
// Muerte y aplica la transición de estado en la misma transacción.
func (h *MovimientoHandler) Crear(c *fiber.Ctx) error {
	actor, _ := GetActor(c)
	idSemoviente, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return idInvalido(c, "id")
	}
	var in dto.CrearMovimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	movimiento, err := h.uc.Crear(c.Context(), actor, idSemoviente, in)
	if err != nil {
		return responderError(c, err)
	}
	return responderOK(c, fiber.StatusCreated, fiber.Map{"movimiento": movimiento})
}

// Listar GET /api/semovientes/:id/movimientos
func (h *MovimientoHandler) Listar(c *fiber.Ctx) error {
	actor, _ := GetActor(c)
	idSemoviente, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return idInvalido(c, "id")
	}
	movimientos, err := h.uc.Listar(c.Context(), actor, idSemoviente)
	if err != nil {
		return responderError(c, err)
	}
	return responderOK(c, fiber.StatusOK, fiber.Map{"movimientos": movimientos})
}

// GuiaXML GET /api/semovientes/:id/movimientos/:idMovimiento/guia.xml
// Solo para movimientos de tipo Traslado.
func (h *MovimientoHandler) GuiaXML(c *fiber.Ctx) error {
	actor, _ := GetActor(c)
	idSemoviente, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return idInvalido(c, "id")
	}
	idMovimiento, err := strconv.ParseInt(c.Params("idMovimiento"), 10, 64)
	if err != nil {
		return idInvalido(c, "idMovimiento")
	}
	guia, err := h.uc.GuiaXML(c.Context(), actor, idSemoviente, idMovimiento)
	if err != nil {
		return responderError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	return c.Send(guia)
}
