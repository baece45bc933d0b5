package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/camposoft/ganaderia-api/internal/application/dto"
	"github.com/camposoft/ganaderia-api/pkg/jwt"
)

// LocalActor key del actor autenticado en c.Locals.
const LocalActor = "actor"

// AuthMiddleware valida el Bearer Token JWT y deja el dto.Actor en c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := parseBearer(c, jwtSecret)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Mensaje: "No autorizado", Detalle: "token requerido o inválido"})
		}
		c.Locals(LocalActor, dto.Actor{IDUsuario: claims.IDUsuario, NombreUsuario: claims.NombreUsuario, Rol: claims.Rol})
		return c.Next()
	}
}

// OptionalAuthMiddleware como AuthMiddleware pero sin token sigue anónimo.
// Un token presente pero inválido sí rechaza.
func OptionalAuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Get("Authorization") == "" {
			return c.Next()
		}
		claims, ok := parseBearer(c, jwtSecret)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Mensaje: "No autorizado", Detalle: "token inválido o expirado"})
		}
		c.Locals(LocalActor, dto.Actor{IDUsuario: claims.IDUsuario, NombreUsuario: claims.NombreUsuario, Rol: claims.Rol})
		return c.Next()
	}
}

// RequireSuperAdmin corta con 403 si el actor no tiene rol global SuperAdmin.
// Debe ir después de AuthMiddleware.
func RequireSuperAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, ok := GetActor(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Mensaje: "No autorizado", Detalle: "token requerido"})
		}
		if !actor.EsSuperAdmin() {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Mensaje: "Operación no permitida", Detalle: "requiere rol SuperAdmin"})
		}
		return c.Next()
	}
}

// GetActor devuelve el actor del contexto (después del middleware de auth).
func GetActor(c *fiber.Ctx) (dto.Actor, bool) {
	v := c.Locals(LocalActor)
	if v == nil {
		return dto.Actor{}, false
	}
	a, ok := v.(dto.Actor)
	return a, ok
}

func parseBearer(c *fiber.Ctx, secret string) (*jwt.Claims, bool) {
	authHeader := c.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, false
	}
	tokenString := strings.TrimSpace(parts[1])
	if tokenString == "" {
		return nil, false
	}
	claims, err := jwt.Parse(secret, tokenString)
	if err != nil {
		return nil, false
	}
	return claims, true
}
