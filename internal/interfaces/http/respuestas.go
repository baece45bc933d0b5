package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/camposoft/ganaderia-api/internal/application/dto"
	"github.com/camposoft/ganaderia-api/internal/domain"
)

// Toda respuesta JSON de la API lleva el sobre {ok: bool, ...}. En éxito el
// payload viaja junto a ok:true; en error va {ok:false, mensaje, detalle?,
// issues?}. Las descargas binarias (PDF, XML) quedan fuera del sobre.

// responderOK agrega ok:true al payload y lo emite con el código dado.
func responderOK(c *fiber.Ctx, status int, payload fiber.Map) error {
	payload["ok"] = true
	return c.Status(status).JSON(payload)
}

// soloOK respuesta de éxito sin payload (borrados, cambios de contraseña).
func soloOK(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"ok": true})
}

// responderError mapea errores de dominio a códigos HTTP. Los errores no
// reconocidos se loguean y salen como 500 sin detalle interno.
func responderError(c *fiber.Ctx, err error) error {
	var val *domain.ValidacionError
	if errors.As(err, &val) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Mensaje: val.Mensaje, Issues: val.Issues})
	}
	switch {
	case errors.Is(err, domain.ErrEntradaInvalida), errors.Is(err, domain.ErrEstadoInvalido), errors.Is(err, domain.ErrReferenciaInvalida):
		return errorJSON(c, fiber.StatusBadRequest, "Datos inválidos", err)
	case errors.Is(err, domain.ErrCredencialesInvalidas), errors.Is(err, domain.ErrNoAutorizado):
		return errorJSON(c, fiber.StatusUnauthorized, "No autorizado", err)
	case errors.Is(err, domain.ErrProhibido):
		return errorJSON(c, fiber.StatusForbidden, "Operación no permitida", err)
	case errors.Is(err, domain.ErrNoEncontrado), errors.Is(err, domain.ErrUsuarioNoEncontrado):
		return errorJSON(c, fiber.StatusNotFound, "Recurso no encontrado", err)
	case errors.Is(err, domain.ErrDuplicado), errors.Is(err, domain.ErrConflicto):
		return errorJSON(c, fiber.StatusConflict, "Conflicto con el estado actual", err)
	}
	log.Error().Err(err).Str("path", c.Path()).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Mensaje: "Error interno del servidor"})
}

func errorJSON(c *fiber.Ctx, status int, mensaje string, err error) error {
	return c.Status(status).JSON(dto.ErrorResponse{Mensaje: mensaje, Detalle: err.Error()})
}

// cuerpoInvalido respuesta estándar cuando el JSON del body no parsea.
func cuerpoInvalido(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Mensaje: "Cuerpo de la petición inválido"})
}

// idInvalido respuesta estándar para params de ruta no numéricos.
func idInvalido(c *fiber.Ctx, nombre string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Mensaje: "Datos inválidos", Detalle: nombre + " debe ser numérico"})
}

// flagInactivos lee el flag de inactivos aceptando las dos grafías que usan
// los clientes: include_inactivos (documentada) e incluir_inactivos.
func flagInactivos(c *fiber.Ctx) string {
	if raw := c.Query("include_inactivos"); raw != "" {
		return raw
	}
	return c.Query("incluir_inactivos")
}
