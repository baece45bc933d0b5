package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/camposoft/ganaderia-api/internal/application/dto"
	"github.com/camposoft/ganaderia-api/internal/application/usecase"
)

// RegistroMedicoHandler maneja el historial sanitario de un semoviente.
type RegistroMedicoHandler struct {
	uc *usecase.RegistroMedicoUseCase
}

// NewRegistroMedicoHandler construye el handler.
func NewRegistroMedicoHandler(uc *usecase.RegistroMedicoUseCase) *RegistroMedicoHandler {
	return &RegistroMedicoHandler{uc: uc}
}

// Listar GET /api/semovientes/:id/eventos
func (h *RegistroMedicoHandler) Listar(c *fiber.Ctx) error {
	actor, _ := GetActor(c)
	idSemoviente, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return idInvalido(c, "id")
	}
	registros, err := h.uc.Listar(c.Context(), actor, idSemoviente)
	if err != nil {
		return responderError(c, err)
	}
	return responderOK(c, fiber.StatusOK, fiber.Map{"registros": registros})
}

// Crear POST /api/semovientes/:id/eventos
func (h *RegistroMedicoHandler) Crear(c *fiber.Ctx) error {
	actor, _ := GetActor(c)
	idSemoviente, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return idInvalido(c, "id")
	}
	var in dto.CrearRegistroMedicoRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	registro, err := h.uc.Crear(c.Context(), actor, idSemoviente, in)
	if err != nil {
		return responderError(c, err)
	}
	return responderOK(c, fiber.StatusCreated, fiber.Map{"registro": registro})
}

// Actualizar PATCH /api/semovientes/:id/eventos/:idRegistro
func (h *RegistroMedicoHandler) Actualizar(c *fiber.Ctx) error {
	actor, _ := GetActor(c)
	idSemoviente, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return idInvalido(c, "id")
	}
	idRegistro, err := strconv.ParseInt(c.Params("idRegistro"), 10, 64)
	if err != nil {
		return idInvalido(c, "idRegistro")
	}
	var in dto.ActualizarRegistroMedicoRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	registro, err := h.uc.Actualizar(c.Context(), actor, idSemoviente, idRegistro, in)
	if err != nil {
		return responderError(c, err)
	}
	return responderOK(c, fiber.StatusOK, fiber.Map{"registro": registro})
}

// Eliminar DELETE /api/semovientes/:id/eventos/:idRegistro
func (h *RegistroMedicoHandler) Eliminar(c *fiber.Ctx) error {
	actor, _ := GetActor(c)
	idSemoviente, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return idInvalido(c, "id")
	}
	idRegistro, err := strconv.ParseInt(c.Params("idRegistro"), 10, 64)
	if err != nil {
		return idInvalido(c, "idRegistro")
	}
	if err := h.uc.Eliminar(c.Context(), actor, idSemoviente, idRegistro); err != nil {
		return responderError(c, err)
	}
	return soloOK(c)
}
