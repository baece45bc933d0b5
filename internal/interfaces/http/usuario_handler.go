package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/camposoft/ganaderia-api/internal/application/dto"
	"github.com/camposoft/ganaderia-api/internal/application/usecase"
)

// UsuarioHandler maneja perfil propio y administración de cuentas.
type UsuarioHandler struct {
	uc *usecase.UsuarioUseCase
}

// NewUsuarioHandler construye el handler.
func NewUsuarioHandler(uc *usecase.UsuarioUseCase) *UsuarioHandler {
	return &UsuarioHandler{uc: uc}
}

// Perfil GET /api/usuarios/me
func (h *UsuarioHandler) Perfil(c *fiber.Ctx) error {
	actor, _ := GetActor(c)
	perfil, err := h.uc.Perfil(c.Context(), actor)
	if err != nil {
		return responderError(c, err)
	}
	return responderOK(c, fiber.StatusOK, fiber.Map{"perfil": perfil})
}

// ActualizarPerfil PATCH /api/usuarios/me
func (h *UsuarioHandler) ActualizarPerfil(c *fiber.Ctx) error {
	actor, _ := GetActor(c)
	var in dto.ActualizarPerfilRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	usuario, err := h.uc.ActualizarPerfil(c.Context(), actor, in)
	if err != nil {
		return responderError(c, err)
	}
	return responderOK(c, fiber.StatusOK, fiber.Map{"usuario": usuario})
}

// Listar GET /api/usuarios (solo SuperAdmin)
func (h *UsuarioHandler) Listar(c *fiber.Ctx) error {
	actor, _ := GetActor(c)
	usuarios, err := h.uc.Listar(c.Context(), actor)
	if err != nil {
		return responderError(c, err)
	}
	return responderOK(c, fiber.StatusOK, fiber.Map{"usuarios": usuarios})
}

// Actualizar PATCH /api/usuarios/:id (solo SuperAdmin)
func (h *UsuarioHandler) Actualizar(c *fiber.Ctx) error {
	actor, _ := GetActor(c)
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return idInvalido(c, "id")
	}
	var in dto.ActualizarUsuarioAdminRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	usuario, err := h.uc.ActualizarAdmin(c.Context(), actor, id, in)
	if err != nil {
		return responderError(c, err)
	}
	return responderOK(c, fiber.StatusOK, fiber.Map{"usuario": usuario})
}

// Eliminar DELETE /api/usuarios/:id
func (h *UsuarioHandler) Eliminar(c *fiber.Ctx) error {
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

// CambiarContrasenaPropia PATCH /api/usuarios/me/password
func (h *UsuarioHandler) CambiarContrasenaPropia(c *fiber.Ctx) error {
	actor, _ := GetActor(c)
	var in dto.CambiarContrasenaRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	if err := h.uc.CambiarContrasenaPropia(c.Context(), actor, in); err != nil {
		return responderError(c, err)
	}
	return soloOK(c)
}

// CambiarContrasena PATCH /api/usuarios/:id/password
func (h *UsuarioHandler) CambiarContrasena(c *fiber.Ctx) error {
	actor, _ := GetActor(c)
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return idInvalido(c, "id")
	}
	var in dto.CambiarPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	if err := h.uc.CambiarContrasenaDe(c.Context(), actor, id, in); err != nil {
		return responderError(c, err)
	}
	return soloOK(c)
}

// ResetearContrasena PATCH /api/usuarios/:id/password/reset (solo SuperAdmin)
func (h *UsuarioHandler) ResetearContrasena(c *fiber.Ctx) error {
	actor, _ := GetActor(c)
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return idInvalido(c, "id")
	}
	var in dto.ResetearContrasenaRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	if err := h.uc.ResetearContrasena(c.Context(), actor, id, in.Nueva); err != nil {
		return responderError(c, err)
	}
	return soloOK(c)
}
