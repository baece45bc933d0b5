package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/camposoft/ganaderia-api/internal/application/dto"
	"github.com/camposoft/ganaderia-api/internal/application/usecase"
)

// SemovienteHandler maneja el ciclo de vida de los animales y su ficha.
type SemovienteHandler struct {
	uc *usecase.SemovienteUseCase
}

// NewSemovienteHandler construye el handler.
func NewSemovienteHandler(uc *usecase.SemovienteUseCase) *SemovienteHandler {
	return &SemovienteHandler{uc: uc}
}

// Crear POST /api/semovientes. Registra también el movimiento de origen
// (Nacimiento o Compra) en el libro.
func (h *SemovienteHandler) Crear(c *fiber.Ctx) error {
	actor, _ := GetActor(c)
	var in dto.CrearSemovienteRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	semoviente, err := h.uc.Crear(c.Context(), actor, in)
	if err != nil {
		return responderError(c, err)
	}
	return responderOK(c, fiber.StatusCreated, fiber.Map{"semoviente": semoviente})
}

// Listar GET /api/semovientes?id_finca=&include_inactivos=true
func (h *SemovienteHandler) Listar(c *fiber.Ctx) error {
	actor, _ := GetActor(c)
	idFinca, err := strconv.ParseInt(c.Query("id_finca"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Mensaje: "Datos inválidos", Detalle: "id_finca es requerido y debe ser numérico"})
	}
	incluirInactivos, _ := strconv.ParseBool(flagInactivos(c))
	semovientes, err := h.uc.ListarPorFinca(c.Context(), actor, idFinca, incluirInactivos)
	if err != nil {
		return responderError(c, err)
	}
	return responderOK(c, fiber.StatusOK, fiber.Map{"semovientes": semovientes})
}

// ListarPorFinca GET /api/fincas/:id/semovientes?include_inactivos=true
func (h *SemovienteHandler) ListarPorFinca(c *fiber.Ctx) error {
	actor, _ := GetActor(c)
	idFinca, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return idInvalido(c, "id")
	}
	incluirInactivos, _ := strconv.ParseBool(flagInactivos(c))
	semovientes, err := h.uc.ListarPorFinca(c.Context(), actor, idFinca, incluirInactivos)
	if err != nil {
		return responderError(c, err)
	}
	return responderOK(c, fiber.StatusOK, fiber.Map{"semovientes": semovientes})
}

// GetPorID GET /api/semovientes/:id
func (h *SemovienteHandler) GetPorID(c *fiber.Ctx) error {
	actor, _ := GetActor(c)
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return idInvalido(c, "id")
	}
	semoviente, err := h.uc.GetPorID(c.Context(), actor, id)
	if err != nil {
		return responderError(c, err)
	}
	return responderOK(c, fiber.StatusOK, fiber.Map{"semoviente": semoviente})
}

// Actualizar PATCH /api/semovientes/:id
func (h *SemovienteHandler) Actualizar(c *fiber.Ctx) error {
	actor, _ := GetActor(c)
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return idInvalido(c, "id")
	}
	var in dto.ActualizarSemovienteRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	semoviente, err := h.uc.Actualizar(c.Context(), actor, id, in)
	if err != nil {
		return responderError(c, err)
	}
	return responderOK(c, fiber.StatusOK, fiber.Map{"semoviente": semoviente})
}

// CambiarEstado PATCH /api/semovientes/:id/estado. Corrección administrativa
// directa del estado; no pasa por el libro de movimientos.
func (h *SemovienteHandler) CambiarEstado(c *fiber.Ctx) error {
	actor, _ := GetActor(c)
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return idInvalido(c, "id")
	}
	var in dto.CambiarEstadoRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	semoviente, err := h.uc.CambiarEstado(c.Context(), actor, id, in)
	if err != nil {
		return responderError(c, err)
	}
	return responderOK(c, fiber.StatusOK, fiber.Map{"semoviente": semoviente})
}

// Eliminar DELETE /api/semovientes/:id
func (h *SemovienteHandler) Eliminar(c *fiber.Ctx) error {
	actor, _ := GetActor(c)
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return idInvalido(c, "id")
	}
	if err := h.uc.Eliminar(c.Context(), actor, id); err != nil {
		return responderError(c, err)
	}
	return soloOK(c)
}

// FichaCompleta GET /api/semovientes/:id/ficha-completa
func (h *SemovienteHandler) FichaCompleta(c *fiber.Ctx) error {
	actor, _ := GetActor(c)
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return idInvalido(c, "id")
	}
	ficha, err := h.uc.FichaCompleta(c.Context(), actor, id)
	if err != nil {
		return responderError(c, err)
	}
	return responderOK(c, fiber.StatusOK, fiber.Map{"ficha": ficha})
}

// FichaPDF GET /api/semovientes/:id/ficha.pdf
func (h *SemovienteHandler) FichaPDF(c *fiber.Ctx) error {
	actor, _ := GetActor(c)
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return idInvalido(c, "id")
	}
	pdf, err := h.uc.FichaPDF(c.Context(), actor, id)
	if err != nil {
		return responderError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="ficha-`+c.Params("id")+`.pdf"`)
	return c.Send(pdf)
}
