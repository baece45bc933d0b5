package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/camposoft/ganaderia-api/internal/application/auth"
	"github.com/camposoft/ganaderia-api/internal/application/dto"
)

// AuthHandler maneja registro, login y refresh de tokens.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register POST /api/auth/register. Público para cuentas Usuario; crear
// SuperAdmin o asignar a una finca exige un token con permisos.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	var actor *dto.Actor
	if a, ok := GetActor(c); ok {
		actor = &a
	}
	usuario, err := h.uc.Register(c.Context(), actor, in)
	if err != nil {
		return responderError(c, err)
	}
	return responderOK(c, fiber.StatusCreated, fiber.Map{"usuario": usuario})
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	resp, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return responderOK(c, fiber.StatusOK, fiber.Map{
		"accessToken":  resp.AccessToken,
		"refreshToken": resp.RefreshToken,
		"usuario":      resp.Usuario,
	})
}

// Refresh POST /api/auth/refresh
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var in dto.RefreshRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	tokens, err := h.uc.Refresh(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return responderOK(c, fiber.StatusOK, fiber.Map{
		"accessToken":  tokens.AccessToken,
		"refreshToken": tokens.RefreshToken,
	})
}
