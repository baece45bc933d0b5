package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/camposoft/ganaderia-api/internal/application/dto"
	"github.com/camposoft/ganaderia-api/internal/application/usecase"
)

// FincaHandler maneja el CRUD de fincas y su registro de miembros.
type FincaHandler struct {
	fincas   *usecase.FincaUseCase
	miembros *usecase.MiembroUseCase
}

// NewFincaHandler construye el handler.
func NewFincaHandler(fincas *usecase.FincaUseCase, miembros *usecase.MiembroUseCase) *FincaHandler {
	return &FincaHandler{fincas: fincas, miembros: miembros}
}

// Crear POST /api/fincas (solo SuperAdmin)
func (h *FincaHandler) Crear(c *fiber.Ctx) error {
	actor, _ := GetActor(c)
	var in dto.CrearFincaRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	finca, err := h.fincas.Crear(c.Context(), actor, in)
	if err != nil {
		return responderError(c, err)
	}
	return responderOK(c, fiber.StatusCreated, fiber.Map{"finca": finca})
}

// Listar GET /api/fincas. SuperAdmin ve todas, el resto solo sus fincas.
func (h *FincaHandler) Listar(c *fiber.Ctx) error {
	actor, _ := GetActor(c)
	fincas, err := h.fincas.Listar(c.Context(), actor)
	if err != nil {
		return responderError(c, err)
	}
	return responderOK(c, fiber.StatusOK, fiber.Map{"fincas": fincas})
}

// GetPorID GET /api/fincas/:id
func (h *FincaHandler) GetPorID(c *fiber.Ctx) error {
	actor, _ := GetActor(c)
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return idInvalido(c, "id")
	}
	finca, err := h.fincas.GetPorID(c.Context(), actor, id)
	if err != nil {
		return responderError(c, err)
	}
	return responderOK(c, fiber.StatusOK, fiber.Map{"finca": finca})
}

// Actualizar PATCH /api/fincas/:id
func (h *FincaHandler) Actualizar(c *fiber.Ctx) error {
	actor, _ := GetActor(c)
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return idInvalido(c, "id")
	}
	var in dto.ActualizarFincaRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	finca, err := h.fincas.Actualizar(c.Context(), actor, id, in)
	if err != nil {
		return responderError(c, err)
	}
	return responderOK(c, fiber.StatusOK, fiber.Map{"finca": finca})
}

// Eliminar DELETE /api/fincas/:id (solo SuperAdmin)
func (h *FincaHandler) Eliminar(c *fiber.Ctx) error {
	actor, _ := GetActor(c)
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return idInvalido(c, "id")
	}
	if err := h.fincas.Eliminar(c.Context(), actor, id); err != nil {
		return responderError(c, err)
	}
	return soloOK(c)
}

// ListarMiembros GET /api/fincas/:id/miembros
func (h *FincaHandler) ListarMiembros(c *fiber.Ctx) error {
	actor, _ := GetActor(c)
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return idInvalido(c, "id")
	}
	miembros, err := h.miembros.Listar(c.Context(), actor, id)
	if err != nil {
		return responderError(c, err)
	}
	return responderOK(c, fiber.StatusOK, fiber.Map{"miembros": miembros})
}

// AsignarMiembro POST /api/fincas/:id/miembros. Upsert del rol del usuario.
func (h *FincaHandler) AsignarMiembro(c *fiber.Ctx) error {
	actor, _ := GetActor(c)
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return idInvalido(c, "id")
	}
	var in dto.AsignarMiembroRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	asignacion, err := h.miembros.Asignar(c.Context(), actor, id, in)
	if err != nil {
		return responderError(c, err)
	}
	return responderOK(c, fiber.StatusCreated, fiber.Map{"miembro": asignacion})
}

// RevocarMiembro DELETE /api/fincas/:id/miembros/:idUsuario?rol=Empleado
func (h *FincaHandler) RevocarMiembro(c *fiber.Ctx) error {
	actor, _ := GetActor(c)
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return idInvalido(c, "id")
	}
	idUsuario, err := strconv.ParseInt(c.Params("idUsuario"), 10, 64)
	if err != nil {
		return idInvalido(c, "idUsuario")
	}
	if err := h.miembros.Revocar(c.Context(), actor, id, idUsuario, c.Query("rol")); err != nil {
		return responderError(c, err)
	}
	return soloOK(c)
}
