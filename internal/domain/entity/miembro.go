package entity

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Roles por finca. Exactamente un rol por par (usuario, finca).
const (
	RolFincaAdmin       = "AdminFinca"
	RolFincaEmpleado    = "Empleado"
	RolFincaVeterinario = "Veterinario"
)

// MiembroFinca es la relación usuario↔finca con su único rol.
type MiembroFinca struct {
	IDUsuario int64
	IDFinca   int64
	Rol       string
}

// MiembroDetalle fila de listado de miembros (join con usuarios).
type MiembroDetalle struct {
	IDUsuario         int64
	NombreUsuario     string
	NombreCompleto    string
	CorreoElectronico string
	RolGlobal         string
	RolFinca          string
}

var titulo = cases.Title(language.Spanish)

// NormalizarRolFinca lleva un identificador de rol a su forma canónica
// ("empleado" -> "Empleado", "adminfinca" -> "AdminFinca"). Devuelve cadena
// vacía si el rol no existe. Los datos históricos traen casing inconsistente,
// por eso la normalización ocurre en el borde antes de cualquier comparación.
func NormalizarRolFinca(rol string) string {
	token := titulo.String(strings.ToLower(strings.TrimSpace(rol)))
	switch token {
	case "Adminfinca":
		// La mayúscula interna no sale del title case.
		return RolFincaAdmin
	case RolFincaEmpleado, RolFincaVeterinario:
		return token
	default:
		return ""
	}
}

// EsRolFincaValido valida un rol ya normalizado.
func EsRolFincaValido(rol string) bool {
	return rol == RolFincaAdmin || rol == RolFincaEmpleado || rol == RolFincaVeterinario
}
